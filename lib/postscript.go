package lib

import (
	"bufio"
	"fmt"
	"io"
)

const mmToPoint = 72 / 25.4

/*
	PostScriptPrinter draws the board: a dot per part, a line from the
	pick position when a tape was resolved, and a ring around the part
	closest to each corner.
*/
type PostScriptPrinter struct {
	w       *bufio.Writer
	corners *CornerPartCollector
	machine map[*Part]Position
}

func NewPostScriptPrinter(w io.Writer, corners *CornerPartCollector) *PostScriptPrinter {
	return &PostScriptPrinter{w: bufio.NewWriter(w), corners: corners, machine: make(map[*Part]Position)}
}

func (p *PostScriptPrinter) Init(dim Dimension) error {
	margin := 10.0
	fmt.Fprintf(p.w, "%%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(p.w, "%%%%BoundingBox: %.0f %.0f %.0f %.0f\n",
		(dim.Min.X-margin)*mmToPoint, (dim.Min.Y-margin)*mmToPoint,
		(dim.Max.X+margin)*mmToPoint, (dim.Max.Y+margin)*mmToPoint)
	fmt.Fprintf(p.w, "%.6f %.6f scale\n0.1 setlinewidth\n", mmToPoint, mmToPoint)
	fmt.Fprintf(p.w, "/Helvetica findfont 1.5 scalefont setfont\n")
	fmt.Fprintf(p.w, "/part { 2 copy 0.4 0 360 arc fill moveto } def\n")
	fmt.Fprintf(p.w, "%.3f %.3f %.3f %.3f rectstroke\n", dim.Min.X, dim.Min.Y, dim.Width(), dim.Height())
	return nil
}

func (p *PostScriptPrinter) PrintPart(pl Placement) error {
	p.machine[pl.Part] = pl.Pos

	if pl.Pick != nil {
		fmt.Fprintf(p.w, "0.5 setgray %.3f %.3f moveto %.3f %.3f lineto stroke 0 setgray\n",
			pl.Pick.Pos.X, pl.Pick.Pos.Y, pl.Pos.X, pl.Pos.Y)
	}
	_, err := fmt.Fprintf(p.w, "%.3f %.3f part (%s) show\n", pl.Pos.X, pl.Pos.Y, psEscape(pl.Part.ComponentName))
	return err
}

func (p *PostScriptPrinter) Finish() error {
	if p.corners != nil {
		fmt.Fprintf(p.w, "1 0 0 setrgbcolor\n")
		for i := 0; i < 4; i++ {
			part, ok := p.corners.GetPart(i)
			if !ok {
				continue
			}
			pos := p.machine[part]
			fmt.Fprintf(p.w, "newpath %.3f %.3f 1.5 0 360 arc stroke\n", pos.X, pos.Y)
		}
	}

	fmt.Fprintln(p.w, "showpage")
	return p.w.Flush()
}

func psEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', ')', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
