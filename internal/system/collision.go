// internal/system/collision.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/entity"
)

// CollisionContext определяет последствия столкновений, которые CollisionSystem
// требует от Game. Это помогает избежать циклических зависимостей.
type CollisionContext interface {
	// KillEnemy выполняет всё, что следует за уничтожением врага, включая его удаление из мира.
	KillEnemy(enemy entity.Hostile)
	AbsorbBullet(bullet *entity.Bullet)
	PlayerHit(bullet *entity.Bullet)
	CollectPowerUp(powerUp *entity.PowerUp)
}

// CollisionSystem применяет правила столкновений в фиксированном порядке:
// пули игрока по врагам, пули врагов по игроку, бонусы, расталкивание.
type CollisionSystem struct {
	world  *entity.World
	bounds component.Rect
	game   CollisionContext
}

func NewCollisionSystem(world *entity.World, bounds component.Rect, game CollisionContext) *CollisionSystem {
	return &CollisionSystem{world: world, bounds: bounds, game: game}
}

func (s *CollisionSystem) Update() {
	if s.world.Player == nil {
		return
	}
	s.playerBulletsVsEnemies()
	s.enemyBulletsVsPlayer()
	s.powerUpsVsPlayer()
	s.playerVsEnemies()
}

func (s *CollisionSystem) playerBulletsVsEnemies() {
	w := s.world
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		if i >= len(w.Bullets) {
			continue
		}
		bullet := w.Bullets[i]
		if bullet.Owner != component.OwnerPlayer {
			continue
		}

		for j := len(w.Enemies) - 1; j >= 0; j-- {
			enemy := w.Enemies[j]
			if !CheckCircleCollision(bullet.Pos, bullet.Radius(), enemy.Position(), enemy.Radius()) {
				continue
			}
			// своя полярность проходит насквозь
			if bullet.Polarity() == enemy.Polarity() {
				continue
			}

			enemy.Knockback(bullet.Direction().Mul(config.EnemyKnockback))
			enemy.TakeDamage(bullet.Damage)
			w.RemoveBulletAt(i)

			if enemy.IsDead() {
				s.game.KillEnemy(enemy)
			}
			break
		}
	}
}

func (s *CollisionSystem) enemyBulletsVsPlayer() {
	w := s.world
	player := w.Player
	for i := len(w.Bullets) - 1; i >= 0; i-- {
		if i >= len(w.Bullets) {
			continue
		}
		bullet := w.Bullets[i]
		if bullet.Owner != component.OwnerEnemy {
			continue
		}

		if CheckCircleCollision(bullet.Pos, bullet.Radius(), player.Pos, player.ShieldRadius) &&
			bullet.Polarity() == player.Polarity() {
			w.RemoveBulletAt(i)
			s.game.AbsorbBullet(bullet)
			continue
		}

		if CheckCircleCollision(bullet.Pos, bullet.Radius(), player.Pos, player.HitboxRadius) {
			w.RemoveBulletAt(i)
			if bullet.Polarity() != player.Polarity() {
				s.game.PlayerHit(bullet)
			}
		}
	}
}

func (s *CollisionSystem) powerUpsVsPlayer() {
	w := s.world
	player := w.Player
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		p := w.PowerUps[i]
		if !CheckCircleCollision(p.Pos, p.Radius(), player.Pos, player.VisualRadius) {
			continue
		}
		w.RemovePowerUpAt(i)
		s.game.CollectPowerUp(p)
	}
}

// playerVsEnemies выталкивает игрока из врагов, урона нет.
func (s *CollisionSystem) playerVsEnemies() {
	w := s.world
	player := w.Player
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		enemy := w.Enemies[i]
		if !CheckCircleCollision(player.Pos, player.VisualRadius, enemy.Position(), enemy.Radius()) {
			continue
		}
		d := player.Pos.Sub(enemy.Position())
		dist := d.Length()
		if dist == 0 {
			continue
		}
		push := player.VisualRadius + enemy.Radius() - dist
		player.Pos = player.Pos.Add(d.Mul(push / dist))
		player.Pos = s.bounds.Clamp(player.Pos, player.VisualRadius)
	}
}
