package app

import (
	"bytes"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/event"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingListener_LogsWavesAndGameOver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	d := event.NewDispatcher()
	NewLoggingListener(logger).Attach(d)

	d.Emit(event.WaveSpawned, event.WaveData{Wave: 3, Pattern: "circle", Polarity: component.Black, Count: 5})
	d.Emit(event.EnemyDestroyed, event.EnemyData{Size: component.SizeSmall})
	d.Emit(event.GameOver, event.GameOverData{Score: 4200, MaxChain: 2, Wave: 7})

	out := buf.String()
	assert.Contains(t, out, "wave spawned")
	assert.Contains(t, out, "pattern=circle")
	assert.Contains(t, out, "polarity=BLACK")
	assert.Contains(t, out, "score=4200")
	assert.NotContains(t, out, "enemy destroyed", "kills are logged at debug level")
}
