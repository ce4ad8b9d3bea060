package store

type Storages struct {
	UserRepository  UserRepository
	ServiceRegistry ServiceRegistry
}

func NewStorages() *Storages {
	return &Storages{}
}
