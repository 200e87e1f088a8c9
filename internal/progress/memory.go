package progress

// MemoryPersister keeps the record in memory. Set SaveErr or LoadErr to
// simulate storage failures in tests.
type MemoryPersister struct {
	LoadErr error
	SaveErr error
	Saves   int

	rec   Record
	saved bool
}

// NewMemoryPersister returns a persister preloaded with rec.
func NewMemoryPersister(rec Record) *MemoryPersister {
	return &MemoryPersister{rec: rec.Clone(), saved: true}
}

// Load returns the last saved record.
func (m *MemoryPersister) Load() (Record, error) {
	if m.LoadErr != nil {
		return Record{}, m.LoadErr
	}
	if !m.saved {
		return Record{}, ErrNoRecord
	}
	return m.rec.Clone(), nil
}

// Save stores a copy of rec.
func (m *MemoryPersister) Save(rec Record) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.rec = rec.Clone()
	m.saved = true
	m.Saves++
	return nil
}

// Last returns the most recently saved record.
func (m *MemoryPersister) Last() Record {
	return m.rec.Clone()
}
