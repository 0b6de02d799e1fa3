package lib

import (
	"fmt"
	"sort"
)

/*
	PnPConfig is the feeder registry. It owns the tapes; component keys
	refer to a tape by its index so that keys sharing a tape share its
	cursor.
*/
type PnPConfig struct {
	tapes            []*Tape
	tapeForComponent map[string]int

	Origin    Position
	HasOrigin bool
}

func NewPnPConfig() *PnPConfig {
	return &PnPConfig{
		tapeForComponent: make(map[string]int),
	}
}

/*
	AddTape registers a tape and binds the given component keys to it. A
	key that was bound before is rebound to the new tape.
*/
func (c *PnPConfig) AddTape(tape *Tape, keys ...string) int {
	idx := len(c.tapes)
	c.tapes = append(c.tapes, tape)
	for _, key := range keys {
		c.tapeForComponent[key] = idx
	}

	return idx
}

func (c *PnPConfig) SetOrigin(p Position) {
	c.Origin = Pos(p.X, p.Y)
	c.HasOrigin = true
}

func (c *PnPConfig) Tapes() []*Tape {
	return c.tapes
}

func (c *PnPConfig) TapeFor(key string) (*Tape, bool) {
	idx, ok := c.tapeForComponent[key]
	if !ok {
		return nil, false
	}
	return c.tapes[idx], true
}

func (c *PnPConfig) Keys() []string {
	keys := make([]string, 0, len(c.tapeForComponent))
	for key := range c.tapeForComponent {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

/*
	Keys bound to the tape at idx, sorted.
*/
func (c *PnPConfig) KeysFor(idx int) []string {
	keys := []string{}
	for key, i := range c.tapeForComponent {
		if i == idx {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return keys
}

/*
	Lookup finds the tape for a part, first by footprint@value and then by
	its designator (the form calibration logs use).
*/
func (c *PnPConfig) Lookup(part *Part) (*Tape, bool) {
	if tape, ok := c.TapeFor(part.Key()); ok {
		return tape, true
	}
	return c.TapeFor(part.ComponentName)
}

/*
	Resolve draws the next pick position for a part from its tape.
*/
func (c *PnPConfig) Resolve(part *Part) (Pick, *Tape, error) {
	tape, ok := c.Lookup(part)
	if !ok {
		return Pick{}, nil, &Error{
			Kind:    KindLookup,
			Context: fmt.Sprintf("no tape for %s (%s)", part.ComponentName, part.Key()),
			Part:    part,
		}
	}

	pick, err := tape.NextPosition()
	if err != nil {
		return Pick{}, tape, fmt.Errorf("%s: %w", part.ComponentName, err)
	}

	return pick, tape, nil
}

/*
	ApplyTo copies the calibrated board origin onto the board.
*/
func (c *PnPConfig) ApplyTo(board *Board) {
	if !c.HasOrigin {
		return
	}
	board.Origin = c.Origin
	board.HasOrigin = true
}
