package lib

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

/*
	Column names used by KiCad position files and JLCPCB CPL files.

		Ref,Val,Package,PosX,PosY,Rot,Side
		Designator,Comment,Footprint,Mid X,Mid Y,Rotation,Layer
*/
var cplColumns = map[string][]string{
	"designator": {"designator", "ref", "reference"},
	"value":      {"comment", "val", "value"},
	"footprint":  {"footprint", "package"},
	"x":          {"mid x", "posx", "pos x", "x"},
	"y":          {"mid y", "posy", "pos y", "y"},
	"rotation":   {"rotation", "rot"},
}

/*
	Read a component placement list (CSV with a header row).
*/
func ReadCPL(src string) ([]*Part, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return ParseCPL(fp)
}

func ParseCPL(r io.Reader) ([]*Part, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CPL header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	parts := []*Part{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, lineError(line, "", err)
		}
		if len(record) == 0 || strings.HasPrefix(record[0], "#") {
			continue
		}

		part, err := recordPart(index, record, 1)
		if err != nil {
			return nil, lineError(line, strings.Join(record, ","), err)
		}
		parts = append(parts, part)
	}

	return parts, nil
}

/*
	Map the known columns to their index in a header row. Rotation is
	optional.
*/
func columnIndex(header []string) (map[string]int, error) {
	index := map[string]int{}
	for name, aliases := range cplColumns {
		for i, column := range header {
			column = strings.ToLower(strings.Trim(strings.TrimSpace(column), "#"))
			column = strings.TrimSpace(column)
			for _, alias := range aliases {
				if column == alias {
					index[name] = i
				}
			}
		}
		if _, ok := index[name]; !ok && name != "rotation" {
			return nil, fmt.Errorf("placement header has no %s column", name)
		}
	}

	return index, nil
}

/*
	Build a part from one record; positions are multiplied by scale to
	get millimeters.
*/
func recordPart(index map[string]int, record []string, scale float64) (*Part, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	x, err := parseMillimeters(field("x"))
	if err != nil {
		return nil, err
	}
	y, err := parseMillimeters(field("y"))
	if err != nil {
		return nil, err
	}
	rotation := 0.0
	if s := field("rotation"); s != "" {
		if rotation, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, err
		}
	}

	return &Part{
		ComponentName: field("designator"),
		Value:         field("value"),
		Footprint:     field("footprint"),
		Pos:           Pos(x*scale, y*scale),
		Angle:         rotation,
	}, nil
}

func parseMillimeters(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(s, "mm"), 64)
}

/*
	Listing writes the machine space placements as CSV.
*/
type Listing struct {
	w *csv.Writer
}

func NewListing(w io.Writer) *Listing {
	return &Listing{w: csv.NewWriter(w)}
}

func (l *Listing) Init(dim Dimension) error {
	return l.w.Write([]string{"Designator", "Value", "Footprint", "Mid X", "Mid Y", "Rotation", "Tape", "Pick X", "Pick Y", "Pick Z"})
}

func (l *Listing) PrintPart(pl Placement) error {
	record := []string{
		pl.Part.ComponentName,
		pl.Part.Value,
		pl.Part.Footprint,
		formatMillimeters(pl.Pos.X),
		formatMillimeters(pl.Pos.Y),
		strconv.FormatFloat(pl.Part.Angle, 'f', -1, 64),
		"", "", "", "",
	}
	if pl.Pick != nil {
		record[6] = pl.Tape.Name
		record[7] = formatMillimeters(pl.Pick.Pos.X)
		record[8] = formatMillimeters(pl.Pick.Pos.Y)
		record[9] = formatMillimeters(pl.Pick.Pos.Z)
	}

	return l.w.Write(record)
}

func (l *Listing) Finish() error {
	l.w.Flush()
	return l.w.Error()
}

func formatMillimeters(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
