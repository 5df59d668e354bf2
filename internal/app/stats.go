// internal/app/stats.go
package app

import "go-polarity-shooter/internal/component"

// Stats - снимок состояния для HUD, метрик и терминального интерфейса.
type Stats struct {
	Status      component.GameStatus
	Score       int
	Chain       int
	MaxChain    int
	Multiplier  int
	ChainQueue  []component.Polarity // последние убийства, старые первыми
	Lives       int
	Energy      float64 // шкала текущей полярности
	WhiteEnergy float64
	BlackEnergy float64
	Polarity    component.Polarity
	RapidFire   float64

	Entities int
	Bullets  int
	Enemies  int
	PowerUps int
	FPS      int

	Wave       int
	Difficulty int
	BossActive bool
	BossPhase  int
	BossHealth float64 // доля оставшегося здоровья
	Music      component.MusicMode
	GameTime   float64
}

// Stats собирает снимок текущего кадра.
func (g *Game) Stats() Stats {
	p := g.World.Player
	s := Stats{
		Status:      g.Status(),
		Score:       g.ScoreSystem.Score(),
		Chain:       g.ChainSystem.Count(),
		MaxChain:    g.ChainSystem.MaxChain(),
		Multiplier:  g.ChainSystem.Multiplier(),
		ChainQueue:  g.ChainSystem.Queue(),
		Lives:       p.Lives,
		Energy:      p.CurrentEnergy(),
		WhiteEnergy: p.Energy,
		BlackEnergy: p.BlackEnergy,
		Polarity:    p.Polarity(),
		RapidFire:   p.RapidFire.Timer,
		Entities:    g.World.EntityCount(),
		Bullets:     len(g.World.Bullets),
		Enemies:     len(g.World.Enemies),
		PowerUps:    len(g.World.PowerUps),
		FPS:         g.currentFPS,
		Wave:        g.SpawnSystem.Wave(),
		Difficulty:  g.SpawnSystem.DifficultyLevel(),
		BossActive:  g.SpawnSystem.BossActive(),
		Music:       g.MusicSystem.Mode(),
		GameTime:    g.gameTime,
	}
	if boss := g.World.ActiveBoss(); boss != nil {
		s.BossPhase = boss.Phase
		s.BossHealth = boss.Health.Fraction()
	}
	return s
}
