package storage

import "fmt"

// Options выбирает реализацию хранилища.
type Options struct {
	Kind      string // memory, badger или redis
	DataDir   string
	RedisAddr string
}

// Open создаёт хранилище по Options.Kind.
func Open(opts Options) (Store, error) {
	switch opts.Kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "badger":
		return NewBadgerStore(opts.DataDir)
	case "redis":
		return NewRedisStore(opts.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown store kind %q", opts.Kind)
	}
}
