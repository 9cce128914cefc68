package book

// AddressBook owns all records, keyed by the contact name string.
// A map alone would make the `all` listing flicker between runs (Go maps
// iterate in random order), so an order slice keeps insertion order
// deterministic. Replacing an existing record keeps its original slot.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts the record under its name, replacing any previous record with
// that name. Replacement is wholesale: phones and birthday are not merged.
func (b *AddressBook) Add(record *Record) {
	name := record.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	record, ok := b.records[name]
	return record, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return ErrNameNotFound
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

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len reports the number of stored records.
func (b *AddressBook) Len() int { return len(b.records) }
