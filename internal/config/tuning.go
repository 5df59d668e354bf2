// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StrictMode превращает предупреждения о некорректной конфигурации в panic.
// Включается флагом --strict и в тестах.
var StrictMode = false

// Tuning - параметры, которые можно переопределить YAML-файлом без пересборки.
type Tuning struct {
	Seed   int64        `yaml:"seed"`
	Player PlayerTuning `yaml:"player"`
	Spawn  SpawnTuning  `yaml:"spawn"`
	Limits LimitsTuning `yaml:"limits"`
}

type PlayerTuning struct {
	Lives         int     `yaml:"lives"`
	HitboxRadius  float64 `yaml:"hitbox_radius"`
	VisualRadius  float64 `yaml:"visual_radius"`
	ShieldRadius  float64 `yaml:"shield_radius"`
	Invincibility float64 `yaml:"invincibility_seconds"`
}

type SpawnTuning struct {
	BaseInterval      float64 `yaml:"base_interval"`
	MinInterval       float64 `yaml:"min_interval"`
	ScoreThreshold    int     `yaml:"score_threshold"`
	BossWaveInterval  int     `yaml:"boss_wave_interval"`
	PowerUpDropChance float64 `yaml:"powerup_drop_chance"`
}

type LimitsTuning struct {
	MaxBullets int `yaml:"max_bullets"`
	MaxEffects int `yaml:"max_effects"`
	MaxWrecks  int `yaml:"max_wrecks"`
}

// Default возвращает параметры по умолчанию.
func Default() Tuning {
	return Tuning{
		Seed: DefaultSeed,
		Player: PlayerTuning{
			Lives:         StartingLives,
			HitboxRadius:  PlayerHitboxRadius,
			VisualRadius:  PlayerVisualRadius,
			ShieldRadius:  PlayerShieldRadius,
			Invincibility: PlayerInvincibility,
		},
		Spawn: SpawnTuning{
			BaseInterval:      BaseSpawnInterval,
			MinInterval:       MinSpawnInterval,
			ScoreThreshold:    ScoreThreshold,
			BossWaveInterval:  BossWaveInterval,
			PowerUpDropChance: PowerUpDropChance,
		},
		Limits: LimitsTuning{
			MaxBullets: MaxBullets,
			MaxEffects: MaxEffects,
			MaxWrecks:  MaxWrecks,
		},
	}
}

// Validate проверяет, что параметры пригодны для симуляции.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.Lives <= 0 {
		errs = append(errs, fmt.Errorf("player.lives must be positive, got %d", t.Player.Lives))
	}
	if t.Player.HitboxRadius <= 0 || t.Player.VisualRadius <= 0 || t.Player.ShieldRadius <= 0 {
		errs = append(errs, errors.New("player radii must be positive"))
	}
	if t.Player.ShieldRadius < t.Player.HitboxRadius {
		errs = append(errs, errors.New("player.shield_radius must not be smaller than hitbox_radius"))
	}
	if t.Spawn.BaseInterval <= 0 || t.Spawn.MinInterval <= 0 {
		errs = append(errs, errors.New("spawn intervals must be positive"))
	}
	if t.Spawn.ScoreThreshold <= 0 {
		errs = append(errs, errors.New("spawn.score_threshold must be positive"))
	}
	if t.Spawn.BossWaveInterval <= 0 {
		errs = append(errs, errors.New("spawn.boss_wave_interval must be positive"))
	}
	if t.Spawn.PowerUpDropChance < 0 || t.Spawn.PowerUpDropChance > 1 {
		errs = append(errs, errors.New("spawn.powerup_drop_chance must be within [0,1]"))
	}
	if t.Limits.MaxBullets <= 0 || t.Limits.MaxEffects <= 0 || t.Limits.MaxWrecks <= 0 {
		errs = append(errs, errors.New("limits must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}

// Load читает YAML файл с параметрами поверх значений по умолчанию.
// Если path == "", пробует ENV POLARITY_CONFIG, а без него возвращает Default().
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		path = os.Getenv("POLARITY_CONFIG")
		if path == "" {
			return t, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}
