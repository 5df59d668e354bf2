package defs

// SpawnPattern - геометрия появления волны.
type SpawnPattern string

const (
	PatternTop         SpawnPattern = "top"
	PatternSides       SpawnPattern = "sides"
	PatternCircle      SpawnPattern = "circle"
	PatternDiagonal    SpawnPattern = "diagonal"
	PatternSurrounding SpawnPattern = "surrounding"
)

// SpawnPatterns определяет порядок шаблонов, индекс выбирается генератором.
var SpawnPatterns = []SpawnPattern{
	PatternTop,
	PatternSides,
	PatternCircle,
	PatternDiagonal,
	PatternSurrounding,
}

// Разметка шаблонов волн.
const (
	TopSpacing      = 100.0
	TopStartX       = -50.0
	TopOffsetY      = 50.0
	SideOffsetX     = 50.0
	CircleCount     = 5
	CircleRadius    = 250.0
	DiagonalX       = 220.0
	DiagonalY       = 320.0
	SurroundInnerX  = 100.0
	SurroundSlant   = 0.2
	SideSlantY      = -0.5
	DiagonalSlantX  = 0.5
	BossEntryOffset = 100.0
)

// SideRows - высоты появления врагов по бокам.
var SideRows = []float64{0, 100}
