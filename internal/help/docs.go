// Package help provides the inline documentation table for BenchScript:
// builtin entries for the language's keywords and functions, plus YAML doc
// packs merged over them. Lookup is by name, case-insensitive.
package help

import (
	"sort"
	"strings"
)

// Entry documents one language name.
type Entry struct {
	Name      string `yaml:"name"`
	Signature string `yaml:"signature"`
	Summary   string `yaml:"summary"`
	Category  string `yaml:"category"`
}

// String renders the entry on one line.
func (e Entry) String() string {
	head := e.Name
	if e.Signature != "" {
		head = e.Signature
	}
	if e.Summary == "" {
		return head
	}
	return head + " — " + e.Summary
}

// Docs is a name-keyed documentation table. The zero value is not usable;
// construct with New or Builtin.
type Docs struct {
	entries map[string]Entry
}

// New returns an empty documentation table.
func New() *Docs {
	return &Docs{entries: make(map[string]Entry)}
}

// Add inserts entries, overwriting any existing entry with the same name.
// Entries with empty names are ignored.
func (d *Docs) Add(entries ...Entry) {
	for _, e := range entries {
		key := normalize(e.Name)
		if key == "" {
			continue
		}
		d.entries[key] = e
	}
}

// Lookup finds the entry for name. Matching ignores case and surrounding
// whitespace.
func (d *Docs) Lookup(name string) (Entry, bool) {
	e, ok := d.entries[normalize(name)]
	return e, ok
}

// Names returns all documented names in sorted order.
func (d *Docs) Names() []string {
	names := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (d *Docs) Len() int {
	return len(d.entries)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
