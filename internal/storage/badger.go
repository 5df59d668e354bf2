package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
)

var highScoresKey = []byte("highscores")

// BadgerStore хранит рекорды в BadgerDB в каталоге данных игры.
type BadgerStore struct {
	db      *badger.DB
	mu      sync.RWMutex
	isReady bool
}

// NewBadgerStore открывает (или создаёт) базу в dataPath/scores.
func NewBadgerStore(dataPath string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(filepath.Join(dataPath, "scores"))
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db, isReady: true}, nil
}

func (s *BadgerStore) Load(_ context.Context) ([]HighScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isReady {
		return nil, ErrStoreClosed
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(highScoresKey)
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores: %w", err)
	}
	return decode(data)
}

func (s *BadgerStore) Save(_ context.Context, scores []HighScore) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isReady {
		return ErrStoreClosed
	}

	data, err := encode(scores)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(highScoresKey, data)
	})
	if err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isReady {
		return nil
	}
	s.isReady = false
	return s.db.Close()
}
