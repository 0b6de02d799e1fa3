package lib

import (
	"bufio"
	"fmt"
	"io"
)

/*
	Machine dialect: Z heights in millimeters and feed rates in mm/min.
*/
type MachineSettings struct {
	ZDispensing float64 // just above the board
	ZHover      float64
	ZHighUp     float64 // high enough to separate the paste
	ZTravel     float64
	FeedRapid   float64
	FeedWork    float64
	FeedCorner  float64
	DwellMs     int // pause at every corner
}

func DefaultMachineSettings() MachineSettings {
	return MachineSettings{
		ZDispensing: 1.7,
		ZHover:      2.5,
		ZHighUp:     5.0,
		ZTravel:     10.0,
		FeedRapid:   20000,
		FeedWork:    4000,
		FeedCorner:  2000,
		DwellMs:     2000,
	}
}

/*
	DispenseGCode emits one solder paste dot per part.
*/
type DispenseGCode struct {
	w       *bufio.Writer
	InitMs  float64
	AreaMs  float64
	Machine MachineSettings
}

func NewDispenseGCode(w io.Writer, initMs, areaMs float64) *DispenseGCode {
	return &DispenseGCode{w: bufio.NewWriter(w), InitMs: initMs, AreaMs: areaMs, Machine: DefaultMachineSettings()}
}

func (g *DispenseGCode) Init(dim Dimension) error {
	fmt.Fprintf(g.w, "; rpt2pnp -d %.2f -D %.2f\n", g.InitMs, g.AreaMs)
	fmt.Fprintf(g.w, "; board %.3f x %.3f mm\n", dim.Width(), dim.Height())
	fmt.Fprintf(g.w, "G21\nG0 F%.0f\nG1 F%.0f\nG0 Z%.1f\n", g.Machine.FeedRapid, g.Machine.FeedWork, g.Machine.ZHighUp)
	return nil
}

func (g *DispenseGCode) PrintPart(pl Placement) error {
	_, err := fmt.Fprintf(g.w, "G0 X%.3f Y%.3f E%.3f Z%.1f ; comp=%s val=%s\n",
		pl.Pos.X, pl.Pos.Y, pl.Part.Angle, g.Machine.ZHover,
		pl.Part.ComponentName, pl.Part.Value)
	return err
}

func (g *DispenseGCode) Finish() error {
	fmt.Fprintln(g.w, ";done")
	return g.w.Flush()
}

/*
	CornerGCode visits the part closest to each board corner so the
	operator can check alignment. The collector must be fed by the job
	(JobOptions.Corners).
*/
type CornerGCode struct {
	w       *bufio.Writer
	corners *CornerPartCollector
	machine map[*Part]Position
	Machine MachineSettings
}

func NewCornerGCode(w io.Writer, corners *CornerPartCollector) *CornerGCode {
	return &CornerGCode{
		w:       bufio.NewWriter(w),
		corners: corners,
		machine: make(map[*Part]Position),
		Machine: DefaultMachineSettings(),
	}
}

func (g *CornerGCode) Init(dim Dimension) error {
	// X0 Y0 may be outside the reachable area, no need to go there
	fmt.Fprintf(g.w, "G21\nG1 F%.0f\nG0 Z%.1f\n", g.Machine.FeedCorner, g.Machine.ZHighUp)
	return nil
}

func (g *CornerGCode) PrintPart(pl Placement) error {
	g.machine[pl.Part] = pl.Pos
	return nil
}

func (g *CornerGCode) Finish() error {
	for i := 0; i < 4; i++ {
		part, ok := g.corners.GetPart(i)
		if !ok {
			fmt.Fprintf(g.w, "; corner %d: no part\n", i)
			continue
		}

		pos := g.machine[part]
		fmt.Fprintf(g.w, "G0 X%.3f Y%.3f Z%.1f ; comp=%s\n", pos.X, pos.Y, g.Machine.ZDispensing, part.ComponentName)
		fmt.Fprintf(g.w, "G4 P%d\nG0 Z%.1f\n", g.Machine.DwellMs, g.Machine.ZHighUp)
	}

	fmt.Fprintln(g.w, ";done")
	return g.w.Flush()
}

/*
	PlaceGCode picks every part from its tape and places it on the board.
	Rotation goes to the A axis, the vacuum nozzle is switched with M42.
*/
type PlaceGCode struct {
	w       *bufio.Writer
	Machine MachineSettings
}

func NewPlaceGCode(w io.Writer) *PlaceGCode {
	return &PlaceGCode{w: bufio.NewWriter(w), Machine: DefaultMachineSettings()}
}

func (g *PlaceGCode) Init(dim Dimension) error {
	fmt.Fprintf(g.w, "; rpt2pnp pick and place, board %.3f x %.3f mm\n", dim.Width(), dim.Height())
	fmt.Fprintf(g.w, "G21\nG90\nG0 F%.0f\nG1 F%.0f\nG0 Z%.1f\n", g.Machine.FeedRapid, g.Machine.FeedWork, g.Machine.ZTravel)
	return nil
}

func (g *PlaceGCode) PrintPart(pl Placement) error {
	if pl.Pick == nil {
		return fmt.Errorf("no pick position for %s", pl.Part.ComponentName)
	}

	rotation := pl.Part.Angle
	if pl.Pick.HasAngle {
		rotation -= pl.Pick.Angle
	}

	fmt.Fprintf(g.w, "; %s %s %s tape=%s #%d\n",
		pl.Part.ComponentName, pl.Part.Footprint, pl.Part.Value, pl.Tape.Name, pl.Pick.Index)
	travel := g.Machine.ZTravel
	fmt.Fprintf(g.w, "G0 X%.3f Y%.3f Z%.1f A0\n", pl.Pick.Pos.X, pl.Pick.Pos.Y, travel)
	fmt.Fprintf(g.w, "G1 Z%.3f\nM42 P1 S255\nG4 P100\nG0 Z%.1f\n", pl.Pick.Pos.Z, travel)
	fmt.Fprintf(g.w, "G0 X%.3f Y%.3f A%.3f\n", pl.Pos.X, pl.Pos.Y, rotation)
	_, err := fmt.Fprintf(g.w, "G1 Z%.3f\nM42 P1 S0\nG4 P100\nG0 Z%.1f\n", g.Machine.ZDispensing, travel)
	return err
}

func (g *PlaceGCode) Finish() error {
	fmt.Fprintln(g.w, ";done")
	return g.w.Flush()
}
