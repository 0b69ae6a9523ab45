package cart

// MemoryStorage keeps the snapshot in process memory. Useful for tests
// and for running the cart logic without a database.
type MemoryStorage struct {
	saved *Cart
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (m *MemoryStorage) Get() (*Cart, error) {
	if m.saved == nil {
		return nil, nil
	}
	c := *m.saved
	return &c, nil
}

func (m *MemoryStorage) Set(c Cart) error {
	m.saved = &c
	return nil
}

func (m *MemoryStorage) Remove() error {
	m.saved = nil
	return nil
}
