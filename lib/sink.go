package lib

/*
	A part on its way to the machine: the report part, its position in
	machine coordinates and, in pick-and-place mode, where to pick it.
*/
type Placement struct {
	Part *Part
	Pos  Position
	Pick *Pick
	Tape *Tape
}

/*
	Sink consumes the final part sequence. Init is called once with the
	board extent in machine coordinates, PrintPart once per part in order,
	Finish once after the last part.
*/
type Sink interface {
	Init(dim Dimension) error
	PrintPart(pl Placement) error
	Finish() error
}

type multiSink []Sink

/*
	MultiSink duplicates the part stream to all sinks, in order. The first
	error stops the stream.
*/
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Init(dim Dimension) error {
	for _, s := range m {
		if err := s.Init(dim); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) PrintPart(pl Placement) error {
	for _, s := range m {
		if err := s.PrintPart(pl); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Finish() error {
	for _, s := range m {
		if err := s.Finish(); err != nil {
			return err
		}
	}
	return nil
}

/*
	PlanRecorder keeps every placement, e.g. for a spreadsheet export.
*/
type PlanRecorder struct {
	Dimension  Dimension
	Placements []Placement
}

func (r *PlanRecorder) Init(dim Dimension) error {
	r.Dimension = dim
	r.Placements = nil
	return nil
}

func (r *PlanRecorder) PrintPart(pl Placement) error {
	r.Placements = append(r.Placements, pl)
	return nil
}

func (r *PlanRecorder) Finish() error {
	return nil
}
