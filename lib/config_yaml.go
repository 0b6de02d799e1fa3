package lib

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlLayout struct {
	Board struct {
		Origin []float64 `yaml:"origin"`
	} `yaml:"board"`
	Tapes []yamlTape `yaml:"tapes"`
}

type yamlTape struct {
	Components []string  `yaml:"components"`
	Origin     []float64 `yaml:"origin"`
	Spacing    []float64 `yaml:"spacing"`
	Angle      *float64  `yaml:"angle,omitempty"`
	Count      *int      `yaml:"count,omitempty"`
}

/*
	YAML form of the tape layout. It follows the same rules as the text
	form and produces an equivalent configuration.
*/
func ParsePnPConfigurationYAML(r io.Reader) (*PnPConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var layout yamlLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, &Error{Kind: KindConfig, Err: err}
	}

	config := NewPnPConfig()
	if layout.Board.Origin != nil {
		if len(layout.Board.Origin) != 2 {
			return nil, &Error{Kind: KindConfig, Context: "board origin needs 2 numbers"}
		}
		config.SetOrigin(Pos(layout.Board.Origin[0], layout.Board.Origin[1]))
	}

	for i, t := range layout.Tapes {
		if len(t.Components) == 0 {
			return nil, &Error{Kind: KindConfig, Context: fmt.Sprintf("tape %d: no components", i+1)}
		}

		tape := NewTape(t.Components[0])
		if t.Origin != nil {
			if len(t.Origin) != 3 {
				return nil, &Error{Kind: KindConfig, Context: fmt.Sprintf("tape %q: origin needs 3 numbers", tape.Name)}
			}
			tape.SetFirstComponentPosition(Pos3(t.Origin[0], t.Origin[1], t.Origin[2]))
		}
		if t.Spacing != nil {
			if len(t.Spacing) != 2 {
				return nil, &Error{Kind: KindConfig, Context: fmt.Sprintf("tape %q: spacing needs 2 numbers", tape.Name)}
			}
			if t.Spacing[0] == 0 && t.Spacing[1] == 0 {
				return nil, &Error{Kind: KindConfig, Context: fmt.Sprintf("tape %q: zero spacing", tape.Name)}
			}
			tape.SetComponentSpacing(t.Spacing[0], t.Spacing[1])
		}
		if t.Angle != nil {
			tape.SetAngle(*t.Angle)
		}
		if t.Count != nil {
			tape.SetNumberComponents(*t.Count)
		}

		if err := tape.validate(); err != nil {
			return nil, &Error{Kind: KindConfig, Context: err.Error()}
		}

		config.AddTape(tape, t.Components...)
	}

	return config, nil
}
