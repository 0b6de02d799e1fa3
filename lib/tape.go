package lib

import (
	"fmt"
	"sync"
)

/*
	Tape is one feeder strip. Components are picked in order starting at
	the first position, each one spacing further along. The cursor is
	shared by every component key that maps to this tape.
*/
type Tape struct {
	Name string

	first    Position
	spacing  Position
	angle    float64
	hasAngle bool
	count    int
	hasCount bool

	lock   sync.Mutex
	cursor int
}

/*
	A resolved pick location on a tape.
*/
type Pick struct {
	Pos      Position
	Angle    float64
	HasAngle bool
	Index    int
}

func NewTape(name string) *Tape {
	return &Tape{Name: name}
}

func (t *Tape) SetFirstComponentPosition(p Position) {
	t.first = p
}

func (t *Tape) SetComponentSpacing(dx, dy float64) {
	t.spacing = Pos(dx, dy)
}

func (t *Tape) SetAngle(angle float64) {
	t.angle = angle
	t.hasAngle = true
}

func (t *Tape) SetNumberComponents(count int) {
	t.count = count
	t.hasCount = true
}

func (t *Tape) FirstPosition() Position {
	return t.first
}

func (t *Tape) Spacing() Position {
	return t.spacing
}

func (t *Tape) Angle() (float64, bool) {
	return t.angle, t.hasAngle
}

func (t *Tape) Count() (int, bool) {
	return t.count, t.hasCount
}

func (t *Tape) Cursor() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.cursor
}

/*
	Remaining components, or -1 for a tape without a count.
*/
func (t *Tape) Remaining() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.hasCount {
		return -1
	}
	if t.cursor >= t.count {
		return 0
	}
	return t.count - t.cursor
}

func (t *Tape) validate() error {
	if t.spacing.IsZero2D() && !(t.hasCount && t.count <= 1) {
		return fmt.Errorf("tape %q: spacing must be set when holding more than one component", t.Name)
	}
	if t.hasCount && t.count < 0 {
		return fmt.Errorf("tape %q: negative count %d", t.Name, t.count)
	}
	return nil
}

/*
	NextPosition returns the position of the next component and advances
	the cursor. An exhausted tape returns ErrFeederExhausted and leaves
	the cursor where it is.
*/
func (t *Tape) NextPosition() (Pick, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.hasCount && t.cursor >= t.count {
		return Pick{}, &Error{
			Kind:    KindFeederExhausted,
			Context: fmt.Sprintf("tape %q holds %d components", t.Name, t.count),
		}
	}

	pick := Pick{
		Pos:      t.PositionAt(t.cursor),
		Angle:    t.angle,
		HasAngle: t.hasAngle,
		Index:    t.cursor,
	}
	t.cursor++

	return pick, nil
}

/*
	Position of the component in slot i (0-based) of the tape.
*/
func (t *Tape) PositionAt(i int) Position {
	return t.first.Add(t.spacing.Scale(float64(i)))
}

/*
	Seek moves the cursor forward to a previously persisted position. The
	cursor never moves backwards: a reel does not grow components back.
*/
func (t *Tape) Seek(cursor int) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if cursor < t.cursor {
		return fmt.Errorf("tape %q: cannot rewind cursor from %d to %d", t.Name, t.cursor, cursor)
	}
	t.cursor = cursor
	return nil
}
