// internal/entity/world.go
package entity

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
)

// World хранит все живые объекты. Срезы упорядочены по времени появления,
// порядок обхода детерминирован.
type World struct {
	NextID   EntityID
	Player   *Player
	Entities []Entity // обновляемые сущности общего вида (игрок)
	Bullets  []*Bullet
	Enemies  []Hostile
	PowerUps []*PowerUp
	Effects  []component.Effect
	Wrecks   []component.Wreck

	MaxBullets int
	MaxEffects int
	MaxWrecks  int
}

func NewWorld() *World {
	return &World{
		NextID:     1,
		MaxBullets: config.MaxBullets,
		MaxEffects: config.MaxEffects,
		MaxWrecks:  config.MaxWrecks,
	}
}

func (w *World) NewEntity() EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Clear удаляет всё, кроме игрока.
func (w *World) Clear() {
	w.Bullets = nil
	w.Enemies = nil
	w.PowerUps = nil
	w.Effects = nil
	w.Wrecks = nil
	w.Entities = nil
	if w.Player != nil {
		w.Entities = append(w.Entities, w.Player)
	}
}

// SetPlayer регистрирует корабль игрока первой обновляемой сущностью.
func (w *World) SetPlayer(p *Player) {
	w.Player = p
	w.Entities = append([]Entity{p}, w.Entities...)
}

// AddBullet добавляет пулю; при переполнении вытесняется самая старая.
func (w *World) AddBullet(b *Bullet) {
	if w.MaxBullets > 0 && len(w.Bullets) >= w.MaxBullets {
		w.Bullets = append(w.Bullets[:0], w.Bullets[1:]...)
	}
	w.Bullets = append(w.Bullets, b)
}

func (w *World) RemoveBulletAt(i int) {
	if i < 0 || i >= len(w.Bullets) {
		return
	}
	w.Bullets = append(w.Bullets[:i], w.Bullets[i+1:]...)
}

// RemoveBullet удаляет пулю по ссылке, повторное удаление безопасно.
func (w *World) RemoveBullet(b *Bullet) {
	for i, other := range w.Bullets {
		if other == b {
			w.RemoveBulletAt(i)
			return
		}
	}
}

func (w *World) AddEnemy(h Hostile) {
	w.Enemies = append(w.Enemies, h)
}

func (w *World) RemoveEnemyAt(i int) {
	if i < 0 || i >= len(w.Enemies) {
		return
	}
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
}

func (w *World) RemoveEnemy(h Hostile) {
	for i, other := range w.Enemies {
		if other == h {
			w.RemoveEnemyAt(i)
			return
		}
	}
}

func (w *World) AddPowerUp(p *PowerUp) {
	w.PowerUps = append(w.PowerUps, p)
}

func (w *World) RemovePowerUpAt(i int) {
	if i < 0 || i >= len(w.PowerUps) {
		return
	}
	w.PowerUps = append(w.PowerUps[:i], w.PowerUps[i+1:]...)
}

// AddEffect добавляет визуальный эффект; при переполнении вытесняется самый старый.
func (w *World) AddEffect(e component.Effect) {
	if w.MaxEffects > 0 && len(w.Effects) >= w.MaxEffects {
		w.Effects = append(w.Effects[:0], w.Effects[1:]...)
	}
	w.Effects = append(w.Effects, e)
}

// AddWreck добавляет обломки; при переполнении вытесняются самые старые.
func (w *World) AddWreck(wr component.Wreck) {
	if w.MaxWrecks > 0 && len(w.Wrecks) >= w.MaxWrecks {
		w.Wrecks = append(w.Wrecks[:0], w.Wrecks[1:]...)
	}
	w.Wrecks = append(w.Wrecks, wr)
}

// ActiveBoss возвращает босса, если он на поле.
func (w *World) ActiveBoss() *Boss {
	for _, e := range w.Enemies {
		if b, ok := e.(*Boss); ok {
			return b
		}
	}
	return nil
}

// EnemyBulletCount считает вражеские пули.
func (w *World) EnemyBulletCount() int {
	n := 0
	for _, b := range w.Bullets {
		if b.Owner == component.OwnerEnemy {
			n++
		}
	}
	return n
}

// EntityCount - общее число объектов для HUD.
func (w *World) EntityCount() int {
	return len(w.Entities) + len(w.Bullets) + len(w.Enemies) + len(w.PowerUps)
}
