package lib

/*
	Transform maps report coordinates to machine coordinates. The report Y
	axis is mirrored at the board's maximum Y, X is taken relative to the
	minimum X, and both are shifted by Offset.

		machine_x = report_x - min_x + offset_x
		machine_y = max_y - report_y + offset_y

	Every output mode goes through the same Transform.
*/
type Transform struct {
	MinX   float64
	MaxY   float64
	Offset Position
}

var DefaultOffset = Pos(10, 10)

/*
	NewTransform builds the transform for a board. A board origin (from a
	feeder configuration) replaces the offset.
*/
func NewTransform(board *Board, offset Position) Transform {
	if board.HasOrigin {
		offset = board.Origin
	}

	dim := board.Dimension()
	return Transform{MinX: dim.Min.X, MaxY: dim.Max.Y, Offset: offset}
}

func (t Transform) Apply(p Position) Position {
	return Position{
		X: p.X - t.MinX + t.Offset.X,
		Y: t.MaxY - p.Y + t.Offset.Y,
		Z: p.Z,
	}
}

func (t Transform) Inverse(p Position) Position {
	return Position{
		X: p.X - t.Offset.X + t.MinX,
		Y: t.MaxY - p.Y + t.Offset.Y,
		Z: p.Z,
	}
}

/*
	Machine space extent of a board: from the offset to the board size
	shifted by the offset.
*/
func (t Transform) Dimension(board *Board) Dimension {
	dim := board.Dimension()
	return Dimension{
		Min: Pos(t.Offset.X, t.Offset.Y),
		Max: Pos(dim.Width()+t.Offset.X, dim.Height()+t.Offset.Y),
	}
}
