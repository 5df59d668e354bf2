// internal/event/types.go
package event

import "go-polarity-shooter/internal/component"

const (
	GameStarted      EventType = "GameStarted"
	GameOver         EventType = "GameOver"
	WaveSpawned      EventType = "WaveSpawned"      // Новая волна
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг уничтожен
	BossSpawned      EventType = "BossSpawned"
	BossPhaseChanged EventType = "BossPhaseChanged"
	BossWarning      EventType = "BossWarning" // Телеграф атаки босса
	BossDefeated     EventType = "BossDefeated"
	Shot             EventType = "Shot"
	Explosion        EventType = "Explosion"
	BulletAbsorbed   EventType = "BulletAbsorbed" // Пуля поглощена щитом
	PlayerHit        EventType = "PlayerHit"
	PolaritySwitched EventType = "PolaritySwitched"
	SpecialWeapon    EventType = "SpecialWeapon"
	PowerUpDropped   EventType = "PowerUpDropped"
	PowerUpCollected EventType = "PowerUpCollected"
	ChainIncreased   EventType = "ChainIncreased"
	ChainBroken      EventType = "ChainBroken"
	MusicModeChanged EventType = "MusicModeChanged"
	DifficultyRaised EventType = "DifficultyRaised"
)

// WaveData - данные события WaveSpawned.
type WaveData struct {
	Wave     int
	Pattern  string
	Polarity component.Polarity
	Count    int
}

// EnemyData - данные событий об уничтожении врага или босса.
type EnemyData struct {
	Pos      component.Vec2
	Polarity component.Polarity
	Size     component.EnemySize
	Special  component.SpecialKind
	Points   int
	Boss     bool
}

// ShotData - данные события Shot.
type ShotData struct {
	Owner    component.BulletOwner
	Polarity component.Polarity
}

// ChainData - данные событий цепочки.
type ChainData struct {
	Count    int
	Polarity component.Polarity
}

// PlayerData - состояние игрока после попадания или поглощения.
type PlayerData struct {
	Lives    int
	Energy   float64
	Polarity component.Polarity
}

// BossData - данные событий босса.
type BossData struct {
	Phase  int
	HP     int
	MaxHP  int
	Attack string
}

// GameOverData - итог партии.
type GameOverData struct {
	Score    int
	MaxChain int
	Wave     int
}
