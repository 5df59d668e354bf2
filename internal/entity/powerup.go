// internal/entity/powerup.go
package entity

import (
	"fmt"
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/defs"
	"go-polarity-shooter/internal/event"
	"log/slog"
)

// PowerUp - падающий бонус.
type PowerUp struct {
	id        EntityID
	Pos       component.Vec2
	Type      defs.PowerUpType
	radius    float64
	Lifetime  float64
	TimeAlive float64
}

func NewPowerUp(w *World, pos component.Vec2, t defs.PowerUpType) *PowerUp {
	return &PowerUp{
		id:       w.NewEntity(),
		Pos:      pos,
		Type:     t,
		radius:   config.PowerUpRadius,
		Lifetime: config.PowerUpLifetime,
	}
}

func (p *PowerUp) ID() EntityID                 { return p.id }
func (p *PowerUp) Kind() Kind                   { return KindPowerUp }
func (p *PowerUp) Position() component.Vec2     { return p.Pos }
func (p *PowerUp) Radius() float64              { return p.radius }
func (p *PowerUp) Polarity() component.Polarity { return component.White }
func (p *PowerUp) OnDestroy(*SimContext)        {}

func (p *PowerUp) Update(_ *SimContext, deltaTime float64) {
	p.TimeAlive += deltaTime
	p.Pos.Y -= config.PowerUpFallSpeed * deltaTime
}

// IsDead - бонус исчез по времени.
func (p *PowerUp) IsDead() bool {
	return p.TimeAlive >= p.Lifetime
}

// OutOfBounds - бонус упал ниже поля.
func (p *PowerUp) OutOfBounds(bounds component.Rect) bool {
	return p.Pos.Y < bounds.Bottom-p.radius
}

// Collect применяет эффект бонуса к игроку.
func (p *PowerUp) Collect(ctx *SimContext, player *Player) {
	switch p.Type {
	case defs.PowerUpShield:
		if player.Lives < config.MaxLives {
			player.Lives++
		}
	case defs.PowerUpRapidFire:
		player.RapidFire = component.RapidFire{Timer: config.RapidFireDuration, Multiplier: 2}
	case defs.PowerUpEnergy:
		player.AddEnergy(player.Polarity(), config.EnergyPowerUp, config.MaxEnergy)
	case defs.PowerUpScoreMultiplier:
		ctx.addScore(config.ScorePowerUp)
	default:
		if config.StrictMode {
			panic(fmt.Sprintf("unknown power-up type %q", p.Type))
		}
		slog.Warn("unknown power-up type, ignoring", "type", p.Type)
		return
	}
	ctx.emit(event.PowerUpCollected, p.Type)
}
