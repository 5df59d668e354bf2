// internal/app/listener.go
package app

import (
	"go-polarity-shooter/internal/event"
	"log/slog"
)

// LoggingListener пишет события симуляции в структурный лог.
type LoggingListener struct {
	logger *slog.Logger
}

func NewLoggingListener(logger *slog.Logger) *LoggingListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingListener{logger: logger}
}

// Attach подписывает логгер на все события диспетчера.
func (l *LoggingListener) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l)
}

func (l *LoggingListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.WaveData:
		l.logger.Info("wave spawned", "wave", data.Wave, "pattern", data.Pattern,
			"polarity", data.Polarity.String(), "count", data.Count)
	case event.BossData:
		l.logger.Info(string(e.Type), "phase", data.Phase, "hp", data.HP, "max_hp", data.MaxHP, "attack", data.Attack)
	case event.ChainData:
		l.logger.Info(string(e.Type), "chain", data.Count, "polarity", data.Polarity.String())
	case event.GameOverData:
		l.logger.Info("game over", "score", data.Score, "max_chain", data.MaxChain, "wave", data.Wave)
	case event.EnemyData:
		l.logger.Debug("enemy destroyed", "size", data.Size.String(), "special", data.Special.String(),
			"points", data.Points, "boss", data.Boss)
	case event.PlayerData:
		if e.Type == event.PlayerHit {
			l.logger.Info("player hit", "lives", data.Lives)
		}
	default:
		switch e.Type {
		case event.GameStarted, event.BossDefeated, event.DifficultyRaised, event.MusicModeChanged:
			l.logger.Info(string(e.Type), "data", e.Data)
		}
	}
}
