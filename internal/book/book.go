package book

// AddressBook is the in-memory directory of contact records, keyed by name.
// It is the sole owner of its records and preserves insertion order so that
// listings are deterministic.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts the record keyed by its name. An existing entry with the same
// name is silently replaced and keeps its original position.
func (b *AddressBook) Add(rec *Record) {
	name := rec.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = rec
}

// Find returns the record for name, or ok=false when absent.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the entry for name, or fails with ContactNotFoundError.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return &ContactNotFoundError{Name: name}
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns a fresh snapshot of the records in insertion order.
func (b *AddressBook) All() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}
