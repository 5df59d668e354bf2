// pkg/render/painter.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point - вершина многоугольника в экранных координатах.
type Point struct {
	X, Y float32
}

// Painter рисует залитые и обведённые многоугольники через DrawTriangles,
// переиспользуя буферы вершин между вызовами.
type Painter struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewPainter() *Painter {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Painter{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
	}
}

// RegularPolygon строит правильный многоугольник; rotation - угол первой вершины
// от направления «вверх» по часовой стрелке.
func RegularPolygon(cx, cy, radius float32, sides int, rotation float64) []Point {
	pts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		angle := rotation + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = Point{
			X: cx + radius*float32(math.Sin(angle)),
			Y: cy - radius*float32(math.Cos(angle)),
		}
	}
	return pts
}

// Ship - вытянутый треугольник корабля, нос смотрит по rotation.
func Ship(cx, cy, radius float32, rotation float64) []Point {
	nose := RegularPolygon(cx, cy, radius, 1, rotation)[0]
	left := RegularPolygon(cx, cy, radius*0.8, 1, rotation+math.Pi*0.8)[0]
	right := RegularPolygon(cx, cy, radius*0.8, 1, rotation-math.Pi*0.8)[0]
	return []Point{nose, right, {X: cx, Y: cy}, left}
}

func buildPath(pts []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()
	return path
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

// FillPolygon заливает многоугольник.
func (p *Painter) FillPolygon(target *ebiten.Image, pts []Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	p.fillVs, p.fillIs = buildPath(pts).AppendVerticesAndIndicesForFilling(p.fillVs[:0], p.fillIs[:0])
	paint(p.fillVs, c)
	target.DrawTriangles(p.fillVs, p.fillIs, p.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokePolygon обводит многоугольник линией толщиной width.
func (p *Painter) StrokePolygon(target *ebiten.Image, pts []Point, width float32, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	p.strokeVs, p.strokeIs = buildPath(pts).AppendVerticesAndIndicesForStroke(p.strokeVs[:0], p.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(p.strokeVs, c)
	target.DrawTriangles(p.strokeVs, p.strokeIs, p.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
