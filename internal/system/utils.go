// internal/system/utils.go
package system

import (
	"go-polarity-shooter/internal/component"
	"go-polarity-shooter/internal/config"
	"go-polarity-shooter/internal/entity"
	"log/slog"
	"runtime/debug"
)

// CheckCircleCollision - пересечение кругов, касание не считается.
func CheckCircleCollision(p1 component.Vec2, r1 float64, p2 component.Vec2, r2 float64) bool {
	return p1.DistanceTo(p2) < r1+r2
}

// safeUpdate обновляет сущность, изолируя панику: сломанная сущность
// удаляется вызывающим, остальные продолжают обновляться.
func safeUpdate(ctx *entity.SimContext, e entity.Entity, deltaTime float64) (ok bool) {
	if config.StrictMode {
		e.Update(ctx, deltaTime)
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Error("entity update panicked, removing",
				"kind", e.Kind().String(), "id", e.ID(), "panic", r, "stack", string(debug.Stack()))
			ok = false
		}
	}()
	e.Update(ctx, deltaTime)
	return true
}
