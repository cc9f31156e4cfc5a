// Package spreadsheet decodes an uploaded workbook (.xlsx or legacy .xls)
// into raw rows keyed by the header row. The whole file is read in memory;
// both formats are compressed archives that need random access, so there is
// no streaming path.
package spreadsheet

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"painel_entregas/internal/domain/entities"
)

var (
	// ErrUnreadableFile means the bytes are not a spreadsheet this importer
	// can open, or the workbook has no usable sheet.
	ErrUnreadableFile = errors.New("unreadable spreadsheet file")
	// ErrNoDataRows means the first sheet has a header but no data rows
	// (distinct from "no valid rows after validation").
	ErrNoDataRows = errors.New("spreadsheet has no data rows")
)

// OLE compound-file magic, the container used by legacy .xls workbooks.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Parse decodes the first sheet of the workbook into raw rows. Later sheets
// are ignored. Columns with a blank header are dropped from every row, blank
// cells are omitted, and cell text in canonical number form is promoted to
// float64 so date serials and day fractions keep their numeric identity.
func Parse(data []byte, filename string) ([]entities.RawRow, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUnreadableFile)
	}

	var (
		rows [][]string
		err  error
	)
	if isLegacyWorkbook(data, filename) {
		rows, err = readXLS(data)
	} else {
		rows, err = readXLSX(data)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrNoDataRows
	}

	header := rows[0]
	out := make([]entities.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := entities.RawRow{}
		for idx, name := range header {
			name = strings.TrimSpace(name)
			if name == "" || idx >= len(cells) {
				continue
			}
			cell := strings.TrimSpace(cells[idx])
			if cell == "" {
				continue
			}
			row[name] = promoteNumeric(cell)
		}
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoDataRows
	}
	return out, nil
}

func isLegacyWorkbook(data []byte, filename string) bool {
	if strings.ToLower(filepath.Ext(filename)) == ".xls" {
		return true
	}
	return len(data) >= len(oleMagic) && bytes.Equal(data[:len(oleMagic)], oleMagic)
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no worksheet found", ErrUnreadableFile)
	}
	// RawCellValue keeps date cells as serial numbers and time cells as day
	// fractions instead of locale-formatted display text.
	rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("%w: no worksheet found", ErrUnreadableFile)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// promoteNumeric returns the cell as float64 when its text is a canonical
// number. Values with leading zeros (courier ids, tags) stay strings.
func promoteNumeric(cell string) any {
	if len(cell) > 1 && cell[0] == '0' && cell[1] != '.' {
		return cell
	}
	if len(cell) > 2 && strings.HasPrefix(cell, "-0") && cell[2] != '.' {
		return cell
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
