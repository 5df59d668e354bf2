package component

// EnemySize - размер врага, влияет на радиус, очки и скорость.
type EnemySize int

const (
	SizeMedium EnemySize = iota
	SizeSmall
	SizeLarge
)

func (s EnemySize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

// MovementPattern - закон движения врага.
type MovementPattern int

const (
	MoveStraight MovementPattern = iota
	MoveSine
	MoveConverge
	MoveCircular
	MoveZigzag
)

func (m MovementPattern) String() string {
	switch m {
	case MoveSine:
		return "sine"
	case MoveConverge:
		return "converge"
	case MoveCircular:
		return "circular"
	case MoveZigzag:
		return "zigzag"
	default:
		return "straight"
	}
}

// SpecialKind - особое поведение врага. SpecialNone у обычных врагов.
type SpecialKind int

const (
	SpecialNone SpecialKind = iota
	SpecialSniper
	SpecialSprayer
	SpecialKamikaze
	SpecialTank
	SpecialDodger
)

// SpecialKinds - все особые типы в порядке равновероятного выбора.
var SpecialKinds = []SpecialKind{SpecialSniper, SpecialSprayer, SpecialKamikaze, SpecialTank, SpecialDodger}

func (k SpecialKind) String() string {
	switch k {
	case SpecialSniper:
		return "sniper"
	case SpecialSprayer:
		return "sprayer"
	case SpecialKamikaze:
		return "kamikaze"
	case SpecialTank:
		return "tank"
	case SpecialDodger:
		return "dodger"
	default:
		return "normal"
	}
}
