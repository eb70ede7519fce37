package crawl

import (
	"context"

	"github.com/fwojciec/wiredoc"
	"github.com/temoto/robotstxt"
)

// DefaultUserAgent is the robots.txt group the updater identifies as.
const DefaultUserAgent = "wiredoc"

// robotsPolicy answers whether a docs path may be fetched. A nil policy
// allows everything.
type robotsPolicy struct {
	data  *robotstxt.RobotsData
	agent string
}

func (p *robotsPolicy) allowed(path string) bool {
	if p == nil || p.data == nil {
		return true
	}
	return p.data.TestAgent(path, p.agent)
}

// loadRobots fetches {BaseURL}/robots.txt once per update. A missing or
// unparsable file allows everything.
func (u *Updater) loadRobots(ctx context.Context) (*robotsPolicy, error) {
	if !u.CheckRobots {
		return nil, nil
	}
	if err := u.wait(ctx); err != nil {
		return nil, err
	}

	agent := u.UserAgent
	if agent == "" {
		agent = DefaultUserAgent
	}

	body, err := u.Fetcher.Fetch(ctx, u.siteURL("/robots.txt"))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !wiredoc.IsNotFound(err) {
			u.logger().Warn("robots.txt unavailable", "err", err)
		}
		return nil, nil
	}

	data, err := robotstxt.FromString(body)
	if err != nil {
		u.logger().Warn("robots.txt unparsable", "err", err)
		return nil, nil
	}
	return &robotsPolicy{data: data, agent: agent}, nil
}
