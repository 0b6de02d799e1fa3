package lib

import (
	"errors"
	"fmt"
)

type JobOptions struct {
	// Offset of the board in machine coordinates, unless the
	// configuration carries a board origin.
	Offset Position

	Optimize bool
	Start    StartMode
	// Home position in machine coordinates, used with StartHome.
	Home Position

	// Resolve draws a pick position for every part from its tape.
	Resolve bool
	// ResolveOptional emits parts that cannot be resolved without a pick
	// position instead of skipping them. Used by previews.
	ResolveOptional bool

	// Corners, when set, observes every emitted part in report
	// coordinates.
	Corners *CornerPartCollector
}

func DefaultJobOptions() JobOptions {
	return JobOptions{
		Offset:   DefaultOffset,
		Optimize: true,
		Start:    StartHome,
	}
}

type Summary struct {
	Parts    int
	Emitted  int
	Skipped  int
	Problems []error
}

/*
	Run sequences the board's parts into the sink.

	Parts whose tape is missing or exhausted are reported in the summary
	and skipped, or with ResolveOptional emitted without a pick; the
	remaining parts are still emitted. Errors returned by the sink stop
	the run.
*/
func Run(board *Board, config *PnPConfig, sink Sink, opts JobOptions) (*Summary, error) {
	if board == nil || len(board.Parts()) == 0 {
		return nil, &Error{Kind: KindEmptyBoard, Context: "no parts to process"}
	}
	if opts.Resolve && config == nil {
		return nil, &Error{Kind: KindConfig, Context: "pick-and-place needs a feeder configuration"}
	}

	if config != nil {
		config.ApplyTo(board)
	}

	transform := NewTransform(board, opts.Offset)
	parts := board.Parts()
	if opts.Optimize {
		parts = OptimizeParts(parts, StartPosition(opts.Start, parts, opts.Home, transform))
	}

	if opts.Corners != nil {
		opts.Corners.SetCorners(board.Dimension())
	}

	summary := &Summary{Parts: len(parts)}
	if err := sink.Init(transform.Dimension(board)); err != nil {
		return summary, fmt.Errorf("init: %w", err)
	}

	for _, part := range parts {
		pl := Placement{Part: part, Pos: transform.Apply(part.Pos)}

		if opts.Resolve {
			pick, tape, err := config.Resolve(part)
			if err != nil {
				if !errors.Is(err, ErrFeederExhausted) && !errors.Is(err, ErrLookup) {
					return summary, err
				}
				summary.Problems = append(summary.Problems, err)
				if !opts.ResolveOptional {
					summary.Skipped++
					continue
				}
			} else {
				pl.Pick, pl.Tape = &pick, tape
			}
		}

		if opts.Corners != nil {
			opts.Corners.Update(part.Pos, part)
		}

		if err := sink.PrintPart(pl); err != nil {
			return summary, fmt.Errorf("%s: %w", part.ComponentName, err)
		}
		summary.Emitted++
	}

	if err := sink.Finish(); err != nil {
		return summary, fmt.Errorf("finish: %w", err)
	}

	return summary, nil
}
