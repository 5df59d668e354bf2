// internal/component/status_effect.go
package component

// RapidFire - временное удвоение скорострельности игрока.
type RapidFire struct {
	Timer      float64 // How much time is left for the effect.
	Multiplier float64 // Fire rate multiplier while active.
}

// Active reports whether the buff is still running.
func (r RapidFire) Active() bool {
	return r.Timer > 0
}
