// internal/component/visual.go
package component

// EffectKind - тип короткоживущего визуального эффекта.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectAbsorb
	EffectPolarityFlash
	EffectSpecialWave
	EffectTelegraph
	EffectPhaseShift
	EffectMuzzleFlash
)

// Effect - визуальный эффект. Симуляция только ведёт таймер, рисует рендерер.
type Effect struct {
	Kind      EffectKind
	Pos       Vec2
	Polarity  Polarity
	Size      EnemySize
	Particles int     // количество частиц для взрыва
	Timer     float64 // Сколько времени эффект уже активен
	Duration  float64 // Общая продолжительность эффекта
}

// Progress возвращает долю прожитого времени в диапазоне [0,1].
func (e Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Wreck - обломки уничтоженного врага, дрейфуют вместе с фоном.
type Wreck struct {
	Pos      Vec2
	Radius   float64
	Rotation float64
	Polarity Polarity
}
