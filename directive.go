package wiredoc

import (
	"context"
	"strings"
)

// DirectivePrefix is the namespace prefix shared by all directives.
const DirectivePrefix = "wire:"

// Variant is a modifier form of a directive.
type Variant struct {
	Syntax      string `json:"syntax"`
	Description string `json:"description"`
}

// Directive represents a documented wire:* attribute.
type Directive struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Variants      []Variant `json:"variants"`
	Examples      []string  `json:"examples"`
	RelatedTopics []string  `json:"related_topics"`
}

// Validate returns an error if the directive contains invalid fields.
func (d *Directive) Validate() error {
	if BaseName(d.Name) == "" {
		return Errorf(EINVALID, "directive name required")
	}
	return nil
}

// Normalize replaces nil slices with empty ones.
func (d *Directive) Normalize() {
	if d.Variants == nil {
		d.Variants = []Variant{}
	}
	if d.Examples == nil {
		d.Examples = []string{}
	}
	if d.RelatedTopics == nil {
		d.RelatedTopics = []string{}
	}
}

// DirectiveService represents a service for managing directives.
type DirectiveService interface {
	// SaveDirective creates or fully overwrites a directive.
	SaveDirective(ctx context.Context, d *Directive) error

	// FindDirective retrieves a directive by name. The name may carry the
	// namespace prefix and modifiers: "wire:model.live" and "model" are
	// equivalent. Returns ENOTFOUND if the directive does not exist.
	FindDirective(ctx context.Context, name string) (*Directive, error)

	// FindDirectives retrieves all directives ordered by base name.
	FindDirectives(ctx context.Context) ([]*Directive, error)
}

// StripPrefix removes the namespace prefix from a directive name, if present.
func StripPrefix(name string) string {
	return strings.TrimPrefix(name, DirectivePrefix)
}

// StripModifiers removes a trailing dot-separated modifier chain.
// "wire:model.live.debounce" becomes "wire:model".
func StripModifiers(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// BaseName returns the storage key of a directive: the name with prefix
// and modifiers removed, lowercased.
func BaseName(name string) string {
	return StripModifiers(StripPrefix(strings.ToLower(strings.TrimSpace(name))))
}

// CanonicalName returns the prefixed base form of a directive name.
func CanonicalName(name string) string {
	base := BaseName(name)
	if base == "" {
		return ""
	}
	return DirectivePrefix + base
}

// knownDirectives seeds directive records during an update. Pages that
// document a directive are expected at /docs/{version}/wire-{base}.
var knownDirectives = []Directive{
	{
		Name:        "wire:model",
		Description: "Binds an input element to a component property.",
		Variants: []Variant{
			{Syntax: "wire:model", Description: "Syncs the property on the next network request."},
			{Syntax: "wire:model.live", Description: "Sends a request on every update."},
			{Syntax: "wire:model.blur", Description: "Sends a request when the input loses focus."},
			{Syntax: "wire:model.change", Description: "Sends a request when the input changes."},
			{Syntax: "wire:model.live.debounce.500ms", Description: "Debounces live updates."},
			{Syntax: "wire:model.live.throttle.500ms", Description: "Throttles live updates."},
			{Syntax: "wire:model.number", Description: "Casts the value to a number."},
			{Syntax: "wire:model.boolean", Description: "Casts the value to a boolean."},
			{Syntax: "wire:model.fill", Description: "Uses the initial value attribute."},
		},
	},
	{
		Name:        "wire:click",
		Description: "Calls a component action when an element is clicked.",
		Variants: []Variant{
			{Syntax: "wire:click", Description: "Calls the action on click."},
			{Syntax: "wire:click.prevent", Description: "Prevents the default browser behavior."},
			{Syntax: "wire:click.stop", Description: "Stops event propagation."},
			{Syntax: "wire:click.self", Description: "Only triggers when the element itself is clicked."},
			{Syntax: "wire:click.once", Description: "Triggers the action only once."},
			{Syntax: "wire:click.debounce", Description: "Debounces the action."},
			{Syntax: "wire:click.throttle", Description: "Throttles the action."},
			{Syntax: "wire:click.async", Description: "Runs the action in parallel with others."},
		},
	},
	{
		Name:        "wire:submit",
		Description: "Calls a component action when a form is submitted.",
		Variants: []Variant{
			{Syntax: "wire:submit", Description: "Calls the action and prevents the page reload."},
		},
	},
	{
		Name:        "wire:loading",
		Description: "Shows or hides elements while a network request is in flight.",
		Variants: []Variant{
			{Syntax: "wire:loading", Description: "Shows the element during requests."},
			{Syntax: "wire:loading.remove", Description: "Hides the element during requests."},
			{Syntax: "wire:loading.delay", Description: "Waits before showing the indicator."},
			{Syntax: "wire:loading.class", Description: "Adds classes during requests."},
			{Syntax: "wire:loading.attr", Description: "Adds attributes during requests."},
		},
	},
	{
		Name:        "wire:target",
		Description: "Scopes loading states to specific actions or properties.",
		Variants: []Variant{
			{Syntax: "wire:target", Description: "Limits wire:loading to the named action."},
			{Syntax: "wire:target.except", Description: "Excludes the named action."},
		},
	},
	{
		Name:        "wire:navigate",
		Description: "Navigates between pages without a full page reload.",
		Variants: []Variant{
			{Syntax: "wire:navigate", Description: "Fetches the page in the background."},
			{Syntax: "wire:navigate.hover", Description: "Prefetches the page on hover."},
		},
	},
	{
		Name:        "wire:poll",
		Description: "Refreshes a component on an interval.",
		Variants: []Variant{
			{Syntax: "wire:poll", Description: "Refreshes every 2.5 seconds."},
			{Syntax: "wire:poll.5s", Description: "Sets a custom interval."},
			{Syntax: "wire:poll.keep-alive", Description: "Keeps polling in background tabs."},
			{Syntax: "wire:poll.visible", Description: "Polls only while visible."},
		},
	},
	{
		Name:        "wire:dirty",
		Description: "Shows elements while client state differs from the server.",
		Variants: []Variant{
			{Syntax: "wire:dirty", Description: "Shows the element when state is dirty."},
			{Syntax: "wire:dirty.class", Description: "Toggles classes when state is dirty."},
			{Syntax: "wire:dirty.remove", Description: "Hides the element when state is dirty."},
		},
	},
	{
		Name:        "wire:confirm",
		Description: "Asks the user for confirmation before running an action.",
		Variants: []Variant{
			{Syntax: "wire:confirm", Description: "Shows a browser confirmation dialog."},
			{Syntax: "wire:confirm.prompt", Description: "Requires typing a confirmation value."},
		},
	},
	{
		Name:        "wire:key",
		Description: "Gives elements in loops a stable identity for morphing.",
		Variants: []Variant{
			{Syntax: "wire:key", Description: "Sets the element key."},
		},
	},
	{
		Name:        "wire:ignore",
		Description: "Prevents Livewire from updating an element.",
		Variants: []Variant{
			{Syntax: "wire:ignore", Description: "Ignores the element and its children."},
			{Syntax: "wire:ignore.self", Description: "Ignores only the element's attributes."},
		},
	},
	{
		Name:        "wire:init",
		Description: "Runs an action as soon as the component renders.",
		Variants: []Variant{
			{Syntax: "wire:init", Description: "Calls the action after the initial render."},
		},
	},
	{
		Name:        "wire:offline",
		Description: "Shows elements when the browser goes offline.",
		Variants: []Variant{
			{Syntax: "wire:offline", Description: "Shows the element while offline."},
			{Syntax: "wire:offline.class", Description: "Adds classes while offline."},
		},
	},
	{
		Name:        "wire:transition",
		Description: "Animates elements as they are shown or hidden.",
		Variants: []Variant{
			{Syntax: "wire:transition", Description: "Applies a default fade and scale."},
			{Syntax: "wire:transition.opacity", Description: "Fades only."},
		},
	},
	{
		Name:        "wire:stream",
		Description: "Streams content into an element during a request.",
		Variants: []Variant{
			{Syntax: "wire:stream", Description: "Appends streamed content."},
		},
	},
	{
		Name:        "wire:replace",
		Description: "Replaces an element instead of morphing it.",
		Variants: []Variant{
			{Syntax: "wire:replace", Description: "Replaces the element's children."},
			{Syntax: "wire:replace.self", Description: "Replaces the element itself."},
		},
	},
}

// KnownDirectives returns copies of the built-in directive records.
func KnownDirectives() []Directive {
	out := make([]Directive, len(knownDirectives))
	for i, d := range knownDirectives {
		d.Variants = append([]Variant(nil), d.Variants...)
		out[i] = d
	}
	return out
}
