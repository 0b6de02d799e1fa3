package lib

import (
	"fmt"
	"math"
)

/*
	Position in millimeters. Z is only meaningful for machine coordinates
	(tape pick height); report coordinates leave it at zero.
*/
type Position struct {
	X float64
	Y float64
	Z float64
}

func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

func Pos3(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

func (p Position) Scale(f float64) Position {
	return Position{X: p.X * f, Y: p.Y * f, Z: p.Z * f}
}

func (p Position) IsZero2D() bool {
	return p.X == 0 && p.Y == 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}

// Distance is the planar euclidean distance; Z is ignored.
func Distance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

/*
	Axis aligned bounding box.
*/
type Dimension struct {
	Min Position
	Max Position
}

func (d Dimension) Width() float64 {
	return d.Max.X - d.Min.X
}

func (d Dimension) Height() float64 {
	return d.Max.Y - d.Min.Y
}

/*
	Corners in the fixed order (min,min) (max,min) (min,max) (max,max).
*/
func (d Dimension) Corners() [4]Position {
	return [4]Position{
		{X: d.Min.X, Y: d.Min.Y},
		{X: d.Max.X, Y: d.Min.Y},
		{X: d.Min.X, Y: d.Max.Y},
		{X: d.Max.X, Y: d.Max.Y},
	}
}

func (d Dimension) extend(p Position) Dimension {
	d.Min.X = math.Min(d.Min.X, p.X)
	d.Min.Y = math.Min(d.Min.Y, p.Y)
	d.Max.X = math.Max(d.Max.X, p.X)
	d.Max.Y = math.Max(d.Max.Y, p.Y)
	return d
}
