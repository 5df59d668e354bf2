// internal/component/projectile.go
package component

// BulletOwner - кто выпустил пулю.
type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
)

func (o BulletOwner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}
