package chatbot

// Store exposes read-only configuration lookup for the chat pipeline. The
// real persistence layer lives outside this module; MemoryStore stands in for
// it in tests and single-process deployments.
type Store interface {
	FindByID(id string) (Config, bool)
	FindByOwner(ownerID string) (Config, bool)
	ListPublic() []Config
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Config
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied configs.
func NewMemoryStore(items []Config) *MemoryStore {
	return &MemoryStore{items: append([]Config(nil), items...)}
}

// FindByID looks up a configuration by identifier.
func (s *MemoryStore) FindByID(id string) (Config, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Config{}, false
}

// FindByOwner returns the first configuration owned by the given user.
func (s *MemoryStore) FindByOwner(ownerID string) (Config, bool) {
	for _, item := range s.items {
		if item.OwnerID == ownerID {
			return item, true
		}
	}
	return Config{}, false
}

// ListPublic returns every configuration flagged as publicly visible.
func (s *MemoryStore) ListPublic() []Config {
	var public []Config
	for _, item := range s.items {
		if item.IsPublic {
			public = append(public, item)
		}
	}
	return public
}
