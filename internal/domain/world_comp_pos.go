package domain

import "math"

// Tile - целочисленные координаты клетки сетки.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новый тайл со смещением.
func (t Tile) Shift(dx, dy int) Tile {
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Less - лексикографический порядок (сначала X, потом Y).
func (t Tile) Less(other Tile) bool {
	if t.X != other.X {
		return t.X < other.X
	}
	return t.Y < other.Y
}

// Rect - прямоугольник в тайлах: X, Y - левый верхний угол.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Contains проверяет попадание тайла внутрь прямоугольника.
func (r Rect) Contains(t Tile) bool {
	return t.X >= r.X && t.Y >= r.Y && t.X < r.X+r.W && t.Y < r.Y+r.H
}

// Overlaps - пересекаются ли прямоугольники хотя бы одной клеткой.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inset сжимает прямоугольник на n тайлов со всех сторон.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Empty - нулевая или отрицательная площадь.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Vec2 - вектор в мировых координатах.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero - строго нулевой вектор.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// DistSq - квадрат расстояния до o.
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }

// Angle - угол вектора, atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle - единичный вектор направления θ.
func FromAngle(theta float64) Vec2 {
	return Vec2{math.Cos(theta), math.Sin(theta)}
}

// Lerp - линейная интерполяция скаляров.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func floorDiv(v, size float64) int {
	if size <= 0 {
		size = 1
	}
	return int(math.Floor(v / size))
}
