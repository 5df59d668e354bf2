// internal/system/player_system.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/entity"
	"go-polarity-shooter/internal/event"
)

// PlayerSystem отвечает за последствия столкновений для игрока: поглощение
// пуль щитом и попадания в ядро.
type PlayerSystem struct {
	ctx   *entity.SimContext
	chain *ChainSystem
}

func NewPlayerSystem(ctx *entity.SimContext, chain *ChainSystem) *PlayerSystem {
	return &PlayerSystem{ctx: ctx, chain: chain}
}

// Absorb заряжает шкалу полярности поглощённой пули.
func (s *PlayerSystem) Absorb(bullet *entity.Bullet) {
	player := s.ctx.Player()
	if player == nil {
		return
	}
	player.AddEnergy(bullet.Polarity(), config.AbsorbEnergy, config.MaxEnergy)

	s.ctx.World.AddEffect(component.Effect{
		Kind:     component.EffectAbsorb,
		Pos:      bullet.Pos,
		Polarity: bullet.Polarity(),
		Duration: config.EffectLifetime,
	})
	s.ctx.Events.Emit(event.BulletAbsorbed, event.PlayerData{
		Lives:    player.Lives,
		Energy:   player.CurrentEnergy(),
		Polarity: player.Polarity(),
	})
}

// ApplyHit снимает жизнь, если игрок не неуязвим. Возвращает true, если
// попадание засчитано.
func (s *PlayerSystem) ApplyHit() bool {
	player := s.ctx.Player()
	if player == nil || player.IsInvincible() || player.Lives <= 0 {
		return false
	}

	player.Lives--
	player.Invincible = player.InvincibilityAfter
	s.chain.BreakChain()

	s.ctx.World.AddEffect(component.Effect{
		Kind:      component.EffectExplosion,
		Pos:       player.Pos,
		Polarity:  player.Polarity().Opposite(),
		Size:      component.SizeMedium,
		Particles: defs.SizeDef(component.SizeMedium).Particles,
		Duration:  config.EffectLifetime,
	})
	s.ctx.Events.Emit(event.PlayerHit, event.PlayerData{
		Lives:    player.Lives,
		Energy:   player.CurrentEnergy(),
		Polarity: player.Polarity(),
	})
	return true
}
