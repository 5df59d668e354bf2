// Package storage хранит таблицу рекордов.
//
//go:generate mockgen -destination=mock/mock_store.go -package=storagemock go-polarity-shooter/internal/storage Store
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// MaxHighScores - сколько рекордов хранится.
const MaxHighScores = 5

// ErrStoreClosed возвращается после Close.
var ErrStoreClosed = errors.New("storage: store is closed")

// HighScore - одна запись таблицы рекордов.
type HighScore struct {
	Score    int `json:"score"`
	MaxChain int `json:"maxChain"`
}

// Store загружает и сохраняет таблицу рекордов целиком.
type Store interface {
	Load(ctx context.Context) ([]HighScore, error)
	Save(ctx context.Context, scores []HighScore) error
	Close() error
}

// Insert добавляет запись и возвращает первые MaxHighScores по убыванию счёта.
// При равном счёте более ранняя запись остаётся выше.
func Insert(scores []HighScore, entry HighScore) []HighScore {
	out := make([]HighScore, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, entry)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > MaxHighScores {
		out = out[:MaxHighScores]
	}
	return out
}

// Record загружает таблицу, вставляет запись и сохраняет результат.
func Record(ctx context.Context, store Store, entry HighScore) ([]HighScore, error) {
	scores, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load high scores: %w", err)
	}
	scores = Insert(scores, entry)
	if err := store.Save(ctx, scores); err != nil {
		return nil, fmt.Errorf("save high scores: %w", err)
	}
	return scores, nil
}

func encode(scores []HighScore) ([]byte, error) {
	if scores == nil {
		scores = []HighScore{}
	}
	data, err := json.Marshal(scores)
	if err != nil {
		return nil, fmt.Errorf("encode high scores: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]HighScore, error) {
	var scores []HighScore
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("decode high scores: %w", err)
	}
	return scores, nil
}
