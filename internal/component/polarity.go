// internal/component/polarity.go
package component

// Polarity - полярность корабля, врага или пули.
type Polarity int

const (
	White Polarity = iota
	Black
)

// Opposite возвращает противоположную полярность.
func (p Polarity) Opposite() Polarity {
	if p == White {
		return Black
	}
	return White
}

func (p Polarity) String() string {
	if p == Black {
		return "BLACK"
	}
	return "WHITE"
}

// ParsePolarity разбирает строковое представление, неизвестные значения дают White.
func ParsePolarity(s string) (Polarity, bool) {
	switch s {
	case "WHITE", "white":
		return White, true
	case "BLACK", "black":
		return Black, true
	}
	return White, false
}
