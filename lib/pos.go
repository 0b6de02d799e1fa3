package lib

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

/*
	Read a KiCad footprint position file. Both export formats are
	accepted: CSV and the whitespace separated ASCII form

		### Footprint positions - created on ...
		## Unit = mm, Angle = deg.
		# Ref     Val       Package             PosX       PosY       Rot  Side
		C1        100n      C_0805_2012Metric   140.9700   -93.9800   90.0000  top
		## End
*/
func ReadPos(src string) ([]*Part, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	if isCSVPos(data) {
		return ParseCPL(bytes.NewReader(data))
	}
	return ParsePos(bytes.NewReader(data))
}

// the first line that is not a "##" remark is the header
func isCSVPos(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "##") {
			continue
		}
		return strings.Contains(text, ",")
	}
	return false
}

/*
	ParsePos reads the ASCII position format. Values containing spaces are
	not supported, KiCad does not quote them.
*/
func ParsePos(r io.Reader) ([]*Part, error) {
	scanner := bufio.NewScanner(r)

	var index map[string]int
	scale := 1.0
	parts := []*Part{}
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "##") {
			if strings.Contains(strings.ToLower(text), "unit = in") {
				scale = 25.4
			}
			continue
		}

		if strings.HasPrefix(text, "#") {
			header := strings.Fields(strings.TrimPrefix(text, "#"))
			var err error
			if index, err = columnIndex(header); err != nil {
				return nil, lineError(line, text, err)
			}
			continue
		}

		if index == nil {
			return nil, lineError(line, text, fmt.Errorf("position row before the header"))
		}

		part, err := recordPart(index, strings.Fields(text), scale)
		if err != nil {
			return nil, lineError(line, text, err)
		}
		parts = append(parts, part)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read position file: %w", err)
	}
	if index == nil {
		return nil, fmt.Errorf("position file has no header")
	}

	return parts, nil
}
