package tlv

import (
	"fmt"
	"sort"
)

// UnknownName is the display name of a tag absent from a Table.
const UnknownName = "Unknown"

// Entry describes how one tag is named and decoded.
type Entry struct {
	Tag      uint32
	Name     string
	Strategy Strategy
}

// Table maps tags to entries for one protocol variant.
// A Table is immutable after construction and safe for concurrent use.
type Table struct {
	name    string
	framing Framing
	entries map[uint32]Entry
}

// NewTable constructs a Table.
// It panics on duplicate tags, because tables are package-level constants.
func NewTable(name string, framing Framing, entries ...Entry) *Table {
	t := &Table{
		name:    name,
		framing: framing,
		entries: make(map[uint32]Entry, len(entries)),
	}
	for _, entry := range entries {
		if _, ok := t.entries[entry.Tag]; ok {
			panic(fmt.Errorf("table %s: duplicate tag 0x%04X", name, entry.Tag))
		}
		t.entries[entry.Tag] = entry
	}
	return t
}

// Derive creates a new Table from this one, adding or replacing entries.
func (t *Table) Derive(name string, entries ...Entry) *Table {
	d := &Table{
		name:    name,
		framing: t.framing,
		entries: make(map[uint32]Entry, len(t.entries)+len(entries)),
	}
	for tag, entry := range t.entries {
		d.entries[tag] = entry
	}
	for _, entry := range entries {
		d.entries[entry.Tag] = entry
	}
	return d
}

// Name returns the table name, which identifies the protocol variant.
func (t *Table) Name() string {
	return t.name
}

// Framing returns the parameter framing.
func (t *Table) Framing() Framing {
	return t.framing
}

// Lookup finds the entry of a tag.
func (t *Table) Lookup(tag uint32) (entry Entry, ok bool) {
	entry, ok = t.entries[tag]
	return
}

// Resolve finds the entry of a tag.
// An unknown tag resolves to an Opaque entry, so that newer protocol revisions remain decodable.
func (t *Table) Resolve(tag uint32) Entry {
	if entry, ok := t.entries[tag]; ok {
		return entry
	}
	return Entry{Tag: tag, Name: UnknownName, Strategy: AsOpaque}
}

// Entries returns all entries sorted by tag.
func (t *Table) Entries() (list []Entry) {
	list = make([]Entry, 0, len(t.entries))
	for _, entry := range t.entries {
		list = append(list, entry)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Tag < list[j].Tag })
	return list
}

func (t *Table) String() string {
	return t.name
}
