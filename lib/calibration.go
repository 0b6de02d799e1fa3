package lib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	reTapeLine  = regexp.MustCompile(`^tape(\d+):(\S+)\s+(\S+)\s+(\S+)\s+(\S+)`)
	reBoardLine = regexp.MustCompile(`^board:(\S+)\s+(\S+)\s+(\S+)\s+(\S+)`)
)

/*
	One line of an operator's calibration log. Either a measured tape slot

		tape3:0805@100n 108.0 20.0 2.5

	or a measured board reference part

		board:R101 54.2 37.9 1.7
*/
type CalibrationEntry struct {
	Board bool
	Slot  int
	Key   string
	Pos   Position
}

func (e CalibrationEntry) String() string {
	if e.Board {
		return fmt.Sprintf("board:%s %.3f %.3f %.3f", e.Key, e.Pos.X, e.Pos.Y, e.Pos.Z)
	}
	return fmt.Sprintf("tape%d:%s %.3f %.3f %.3f", e.Slot, e.Key, e.Pos.X, e.Pos.Y, e.Pos.Z)
}

func ParseCalibrationLine(text string) (CalibrationEntry, error) {
	text = strings.TrimSpace(text)

	if m := reTapeLine.FindStringSubmatch(text); m != nil {
		slot, err := strconv.Atoi(m[1])
		if err != nil {
			return CalibrationEntry{}, err
		}
		if slot < 1 {
			return CalibrationEntry{}, fmt.Errorf("tape slots start at 1, got %d", slot)
		}
		v, err := parseFloats(m[3:6], 3)
		if err != nil {
			return CalibrationEntry{}, err
		}
		return CalibrationEntry{Slot: slot, Key: m[2], Pos: Pos3(v[0], v[1], v[2])}, nil
	}

	if m := reBoardLine.FindStringSubmatch(text); m != nil {
		v, err := parseFloats(m[2:5], 3)
		if err != nil {
			return CalibrationEntry{}, err
		}
		return CalibrationEntry{Board: true, Key: m[1], Pos: Pos3(v[0], v[1], v[2])}, nil
	}

	return CalibrationEntry{}, errors.New("expected tape<N>:<key> x y z or board:<designator> x y z")
}

/*
	ParseCalibrationLog infers a configuration from measured machine
	positions.

	Slot 1 of a key becomes the first position of its tape; measuring it
	again moves the first position. Slot n > 1 sets the spacing to
	(measured - first) / (n - 1), assuming a uniform pitch. A board line
	sets the board origin to measured minus the part's report position;
	the last board line wins.

	A tape left without spacing holds a single component and is reported.

	Lines that cannot be used are returned as problems and skipped. The
	returned error is only set when reading fails.
*/
func ParseCalibrationLog(board *Board, r io.Reader) (*PnPConfig, []error, error) {
	config := NewPnPConfig()
	problems := []error{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		entry, err := ParseCalibrationLine(text)
		if err != nil {
			problems = append(problems, lineError(line, text, err))
			continue
		}

		if err := config.applyCalibration(board, entry); err != nil {
			err.Line = line
			problems = append(problems, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, problems, fmt.Errorf("failed to read calibration log: %w", err)
	}

	for _, tape := range config.Tapes() {
		if !tape.Spacing().IsZero2D() {
			continue
		}
		tape.SetNumberComponents(1)
		problems = append(problems, &Error{
			Kind:    KindConfig,
			Context: fmt.Sprintf("tape %q has no spacing, only its first component can be picked", tape.Name),
		})
	}

	return config, problems, nil
}

func ReadCalibrationLog(board *Board, src string) (*PnPConfig, []error, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()

	return ParseCalibrationLog(board, fp)
}

func (c *PnPConfig) applyCalibration(board *Board, entry CalibrationEntry) *Error {
	if entry.Board {
		part, ok := board.FindPart(entry.Key)
		if !ok {
			return &Error{Kind: KindLookup, Context: fmt.Sprintf("board reference %q not found", entry.Key)}
		}
		c.SetOrigin(entry.Pos.Sub(part.Pos))
		return nil
	}

	if entry.Slot == 1 {
		if tape, ok := c.TapeFor(entry.Key); ok {
			tape.SetFirstComponentPosition(entry.Pos)
			return nil
		}
		tape := NewTape(entry.Key)
		tape.SetFirstComponentPosition(entry.Pos)
		c.AddTape(tape, entry.Key)
		return nil
	}

	tape, ok := c.TapeFor(entry.Key)
	if !ok {
		return &Error{Kind: KindLookup, Context: fmt.Sprintf("tape%d:%s without tape1", entry.Slot, entry.Key)}
	}

	advance := float64(entry.Slot - 1)
	first := tape.FirstPosition()
	tape.SetComponentSpacing((entry.Pos.X-first.X)/advance, (entry.Pos.Y-first.Y)/advance)
	return nil
}
