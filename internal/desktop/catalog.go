// Package desktop discovers launchable applications from freedesktop
// .desktop files and normalizes them into a label-unique catalog.
package desktop

import (
	"sort"

	"github.com/atomicstack/popup-launcher/internal/logging/events"
)

// Entry is a launchable item: what the user sees and what gets executed.
type Entry struct {
	Label       string
	CommandLine string
}

// Catalog is an ordered, label-unique list of entries. It is read-only once
// built.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// NewCatalog builds a catalog from entries in order. A later entry replaces
// an earlier one with the same label, keeping the earlier position.
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		c.put(e)
	}
	return c
}

func (c *Catalog) put(e Entry) (Entry, bool) {
	if pos, ok := c.index[e.Label]; ok {
		prev := c.entries[pos]
		c.entries[pos] = e
		return prev, true
	}
	c.index[e.Label] = len(c.entries)
	c.entries = append(c.entries, e)
	return Entry{}, false
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Label returns the label at position i, or "" when i is out of range.
func (c *Catalog) Label(i int) string {
	e, _ := c.Entry(i)
	return e.Label
}

// Entry returns the entry at position i.
func (c *Catalog) Entry(i int) (Entry, bool) {
	if c == nil || i < 0 || i >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	dup := make([]Entry, len(c.entries))
	copy(dup, c.entries)
	return dup
}

// Lookup finds an entry by label.
func (c *Catalog) Lookup(label string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	pos, ok := c.index[label]
	if !ok {
		return Entry{}, false
	}
	return c.entries[pos], true
}

// EntryFromRecord normalizes a record. Records without an Exec template have
// nothing to launch and are rejected.
func EntryFromRecord(rec Record) (Entry, bool) {
	if rec.Exec == "" {
		return Entry{}, false
	}
	return Entry{Label: rec.Label(), CommandLine: StripFieldCodes(rec.Exec)}, true
}

// Build reads every source from disk and assembles the catalog.
func Build(sources []Source) *Catalog {
	return BuildWith(sources, ReadSource)
}

// BuildWith assembles a catalog using read to obtain each source's records.
// Sources are visited in ascending priority so user directories come last
// and win label collisions.
func BuildWith(sources []Source, read func(Source) []Record) *Catalog {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Kind < ordered[j].Kind
	})

	c := NewCatalog()
	for _, src := range ordered {
		events.Catalog.Source(src.Kind.String(), src.Dir)
		for _, rec := range read(src) {
			entry, ok := EntryFromRecord(rec)
			if !ok {
				events.Catalog.Skip(rec.Path, events.SkipNoExec, nil)
				continue
			}
			if prev, replaced := c.put(entry); replaced {
				events.Catalog.Override(entry.Label, prev.CommandLine, entry.CommandLine)
			}
		}
	}
	events.Catalog.Built(c.Len())
	return c
}
