package lib

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	PLACEMENTS_SHEET = "placements"
	TAPES_SHEET      = "tapes"
)

/*
	Write the resolved plan to an excel workbook: one row per placement in
	machine order, and one row per tape with its usage.
*/
func WritePlan(dst string, placements []Placement, config *PnPConfig) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(PLACEMENTS_SHEET); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := []interface{}{"#", "Designator", "Value", "Footprint", "X", "Y", "Rotation", "Tape", "Slot", "Pick X", "Pick Y", "Pick Z"}
	if err := f.SetSheetRow(PLACEMENTS_SHEET, "A1", &header); err != nil {
		return err
	}

	for i, pl := range placements {
		row := []interface{}{
			i + 1,
			pl.Part.ComponentName,
			pl.Part.Value,
			pl.Part.Footprint,
			pl.Pos.X,
			pl.Pos.Y,
			pl.Part.Angle,
		}
		if pl.Pick != nil {
			row = append(row, pl.Tape.Name, pl.Pick.Index+1, pl.Pick.Pos.X, pl.Pick.Pos.Y, pl.Pick.Pos.Z)
		}

		if err := f.SetSheetRow(PLACEMENTS_SHEET, "A"+strconv.Itoa(i+2), &row); err != nil {
			return err
		}
	}

	if config != nil {
		if _, err := f.NewSheet(TAPES_SHEET); err != nil {
			return err
		}

		header := []interface{}{"Tape", "Components", "Used", "Remaining"}
		if err := f.SetSheetRow(TAPES_SHEET, "A1", &header); err != nil {
			return err
		}

		for idx, tape := range config.Tapes() {
			row := []interface{}{tape.Name, strings.Join(config.KeysFor(idx), " "), tape.Cursor()}
			if remaining := tape.Remaining(); remaining >= 0 {
				row = append(row, remaining)
			}

			if err := f.SetSheetRow(TAPES_SHEET, "A"+strconv.Itoa(idx+2), &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(dst)
}
