// Package wiredoc provides an offline documentation corpus for Livewire.
// It scrapes documentation pages into structured JSON records, maintains
// a consolidated search index over them, and answers fuzzy lookups for
// topics and wire:* directives.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, http/).
package wiredoc
