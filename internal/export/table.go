// Package export turns the visible people list into tables: aligned plain
// text for the terminal and xlsx workbooks for download.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kozaktomas/people-page/internal/people"
)

// Header is the column order shared by every export format.
var Header = []string{"Name", "Sex", "Born", "Died", "Mother", "Father"}

// missing marks an unknown parent.
const missing = "-"

// Row returns the cells of one person in Header order.
func Row(p people.Person) []string {
	return []string{
		p.Name,
		p.Sex,
		strconv.Itoa(p.Born),
		strconv.Itoa(p.Died),
		parentName(p.MotherName),
		parentName(p.FatherName),
	}
}

func parentName(name string) string {
	if name == "" {
		return missing
	}
	return name
}

// Rows returns the header followed by one row per person.
func Rows(list []people.Person) [][]string {
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, Header)
	for _, p := range list {
		rows = append(rows, Row(p))
	}
	return rows
}

// WriteText writes list as a markdown style table whose columns are padded
// to the display width of their widest cell.
func WriteText(w io.Writer, list []people.Person) error {
	rows := Rows(list)

	widths := make([]int, len(Header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell), 3)
		}
	}

	for i, row := range rows {
		if _, err := io.WriteString(w, formatLine(row, widths)); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
		if i == 0 {
			sep := make([]string, len(widths))
			for j, width := range widths {
				sep[j] = strings.Repeat("-", width)
			}
			if _, err := io.WriteString(w, formatLine(sep, widths)); err != nil {
				return fmt.Errorf("writing table: %w", err)
			}
		}
	}
	return nil
}

func formatLine(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for i, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, widths[i]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
	return sb.String()
}
