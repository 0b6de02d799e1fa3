package lib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

/*
	Declarative tape layout:

		Board:
		origin: 10 10
		Tape: 0805@100n 0805@1u
		origin: 100 20 2.5
		spacing: 4 0
		angle: 90
		count: 50

	A malformed number, a tape directive outside of a Tape: block, a Tape:
	without component keys or a zero spacing makes the whole configuration
	invalid. Unknown directives are ignored.
*/
func ParsePnPConfiguration(r io.Reader) (*PnPConfig, error) {
	config := NewPnPConfig()
	var current *Tape

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		directive, args := fields[0], fields[1:]
		switch directive {
		case "Board:":
			current = nil

		case "Tape:":
			if len(args) == 0 {
				return nil, configError(line, "tape without component keys")
			}
			current = NewTape(args[0])
			config.AddTape(current, args...)

		case "origin:":
			if current != nil {
				v, err := parseFloats(args, 3)
				if err != nil {
					return nil, configError(line, "tape origin: %s", err)
				}
				current.SetFirstComponentPosition(Pos3(v[0], v[1], v[2]))
			} else {
				v, err := parseFloats(args, 2)
				if err != nil {
					return nil, configError(line, "board origin: %s", err)
				}
				config.SetOrigin(Pos(v[0], v[1]))
			}

		case "spacing:":
			if current == nil {
				return nil, configError(line, "spacing without tape")
			}
			v, err := parseFloats(args, 2)
			if err != nil {
				return nil, configError(line, "spacing: %s", err)
			}
			if v[0] == 0 && v[1] == 0 {
				return nil, configError(line, "spacing: at least one of dx, dy needs to be set")
			}
			current.SetComponentSpacing(v[0], v[1])

		case "angle:":
			if current == nil {
				return nil, configError(line, "angle without tape")
			}
			v, err := parseFloats(args, 1)
			if err != nil {
				return nil, configError(line, "angle: %s", err)
			}
			current.SetAngle(v[0])

		case "count:":
			if current == nil {
				return nil, configError(line, "count without tape")
			}
			if len(args) < 1 {
				return nil, configError(line, "count: missing value")
			}
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, configError(line, "count: %s", err)
			}
			current.SetNumberComponents(count)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	for _, tape := range config.Tapes() {
		if err := tape.validate(); err != nil {
			return nil, &Error{Kind: KindConfig, Context: err.Error()}
		}
	}

	return config, nil
}

/*
	Read a tape layout from a file; .yaml and .yml files use the YAML form.
*/
func ReadPnPConfiguration(src string) (*PnPConfig, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	switch strings.ToLower(filepath.Ext(src)) {
	case ".yaml", ".yml":
		return ParsePnPConfigurationYAML(fp)
	}

	return ParsePnPConfiguration(fp)
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", args[i])
		}
		values[i] = v
	}

	return values, nil
}
