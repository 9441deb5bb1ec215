package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kozaktomas/people-page/internal/people"
)

// SheetName is the worksheet holding the people table.
const SheetName = "People"

// XLSXContentType is the media type of the workbook written by WriteXLSX.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX writes list as a single sheet workbook. Born and Died are stored
// as numbers; parent cells hold the name or "-".
func WriteXLSX(w io.Writer, list []people.Person) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}
		row := []any{p.Name, p.Sex, p.Born, p.Died, parentName(p.MotherName), parentName(p.FatherName)}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
