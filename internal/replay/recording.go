// Package replay записывает и воспроизводит партии. Симуляция детерминирована,
// поэтому запись хранит только сид, настройки, таблицы врагов и покадровый ввод.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/input"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

const formatVersion = 1

var (
	ErrEmptyRecording = errors.New("replay: recording has no frames")
	ErrSeedMismatch   = errors.New("replay: game seed differs from recording")
	ErrHashMismatch   = errors.New("replay: final state hash differs")
	ErrBadVersion     = errors.New("replay: unsupported format version")
)

// Step - один кадр записи: шаг времени и снимок ввода.
type Step struct {
	DT          float64 `yaml:"dt"`
	input.Frame `yaml:",inline"`
}

// Recording - полная запись партии.
type Recording struct {
	Version    int           `yaml:"version"`
	Seed       int64         `yaml:"seed"`
	Tuning     config.Tuning    `yaml:"tuning"`
	Enemies    defs.Definitions `yaml:"enemies,omitempty"` // действующие таблицы, включая --enemies
	Restarted  bool             `yaml:"restarted,omitempty"` // запись начата после рестарта
	Steps      []Step           `yaml:"steps"`
	FinalScore int              `yaml:"final_score"`
	FinalHash  uint64           `yaml:"final_hash"`
}

// Encode пишет запись в YAML, сжатый zstd.
func Encode(w io.Writer, rec *Recording) error {
	body, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recording: %w", err)
	}
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create compressor: %w", err)
	}
	if _, err := enc.Write(body); err != nil {
		enc.Close()
		return fmt.Errorf("failed to compress recording: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush recording: %w", err)
	}
	return nil
}

// Decode читает запись, сохранённую Encode.
func Decode(r io.Reader) (*Recording, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	defer dec.Close()

	body, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress recording: %w", err)
	}
	var rec Recording
	if err := yaml.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse recording: %w", err)
	}
	if rec.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, rec.Version)
	}
	return &rec, nil
}

// SaveFile записывает запись в файл.
func SaveFile(path string, rec *Recording) error {
	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write replay file %s: %w", path, err)
	}
	return nil
}

// LoadFile читает запись из файла.
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
