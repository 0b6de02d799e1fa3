package lib

import (
	"fmt"
)

/*
	Board owns the parts of one report and their bounding box in report
	coordinates.
*/
type Board struct {
	parts  []*Part
	byName map[string]*Part
	dim    Dimension

	Origin    Position
	HasOrigin bool
}

func NewBoard(parts []*Part) (*Board, error) {
	if len(parts) == 0 {
		return nil, &Error{Kind: KindEmptyBoard, Context: "no parts in report"}
	}

	board := &Board{
		parts:  make([]*Part, 0, len(parts)),
		byName: make(map[string]*Part, len(parts)),
		dim:    Dimension{Min: parts[0].Pos, Max: parts[0].Pos},
	}
	board.dim.Min.Z, board.dim.Max.Z = 0, 0

	for _, part := range parts {
		if _, ok := board.byName[part.ComponentName]; ok {
			return nil, fmt.Errorf("duplicate component %q in report", part.ComponentName)
		}

		board.byName[part.ComponentName] = part
		board.parts = append(board.parts, part)
		board.dim = board.dim.extend(part.Pos)
	}

	return board, nil
}

func (b *Board) Parts() []*Part {
	return b.parts
}

func (b *Board) Dimension() Dimension {
	return b.dim
}

func (b *Board) FindPart(designator string) (*Part, bool) {
	part, ok := b.byName[designator]
	return part, ok
}

/*
	Number of parts per component key, in first-seen order of the keys.
*/
func (b *Board) CountByKey() ([]string, map[string]int) {
	keys := []string{}
	counts := make(map[string]int)
	for _, part := range b.parts {
		key := part.Key()
		if _, ok := counts[key]; !ok {
			keys = append(keys, key)
		}
		counts[key]++
	}

	return keys, counts
}
