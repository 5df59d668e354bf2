// internal/component/player.go
package component

// PlayerResources хранит ресурсы игрока, которыми управляет игровой цикл:
// жизни и две шкалы энергии (по одной на полярность).
type PlayerResources struct {
	Lives       int
	Energy      float64 // энергия WHITE
	BlackEnergy float64 // энергия BLACK
}

// EnergyFor возвращает шкалу энергии для полярности.
func (r *PlayerResources) EnergyFor(p Polarity) float64 {
	if p == Black {
		return r.BlackEnergy
	}
	return r.Energy
}

// AddEnergy добавляет энергию в шкалу полярности с ограничением сверху.
func (r *PlayerResources) AddEnergy(p Polarity, amount, max float64) {
	v := r.EnergyFor(p) + amount
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	r.setEnergy(p, v)
}

// ResetEnergy обнуляет шкалу полярности.
func (r *PlayerResources) ResetEnergy(p Polarity) {
	r.setEnergy(p, 0)
}

func (r *PlayerResources) setEnergy(p Polarity, v float64) {
	if p == Black {
		r.BlackEnergy = v
		return
	}
	r.Energy = v
}
