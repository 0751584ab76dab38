package surface

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
)

// filterDatabaseName is the built-in defined name Excel uses to record an
// auto-filter range.
const filterDatabaseName = "_xlnm._FilterDatabase"

// Xlsx adapts one sheet of an excelize workbook to the Surface interface.
// The workbook is mutated in place; saving it is the caller's concern.
type Xlsx struct {
	f         *excelize.File
	sheet     string
	selection *models.Region
	styles    map[styleKey]int
}

// NewXlsx wraps the named sheet of an open workbook.
func NewXlsx(f *excelize.File, sheet string) *Xlsx {
	return &Xlsx{f: f, sheet: sheet, styles: map[styleKey]int{}}
}

// SetSelection installs the caller's current selection. Workbook files carry
// no live selection, so the driving CLI supplies one explicitly.
func (x *Xlsx) SetSelection(r models.Region) { x.selection = &r }

// ParseRange parses an A1-style address ("B2" or "B2:D9") into a region.
// Corners may be given in any order.
func ParseRange(addr string) (models.Region, error) {
	parts := strings.SplitN(strings.TrimSpace(addr), ":", 2)
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Region{}, fmt.Errorf("malformed address %q: %w", addr, err)
	}
	c2, r2 := c1, r1
	if len(parts) == 2 {
		c2, r2, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return models.Region{}, fmt.Errorf("malformed address %q: %w", addr, err)
		}
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return models.BoundsRegion(r1, c1, r2, c2), nil
}

func (x *Xlsx) Dimensions() (int, int, error) {
	rows, err := x.f.GetRows(x.sheet)
	if err != nil {
		return 0, 0, err
	}
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return len(rows), cols, nil
}

func (x *Xlsx) ReadCells(r models.Region) ([][]string, error) {
	all, err := x.f.GetRows(x.sheet)
	if err != nil {
		return nil, err
	}
	g := models.NewGrid(all)
	out := make([][]string, r.Height)
	for i := 0; i < r.Height; i++ {
		out[i] = make([]string, r.Width)
		for j := 0; j < r.Width; j++ {
			out[i][j] = g.Cell(r.Top+i, r.Left+j)
		}
	}
	return out, nil
}

func (x *Xlsx) DeleteRow(row int) error {
	return x.f.RemoveRow(x.sheet, row)
}

func (x *Xlsx) DeleteColumn(col int) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return x.f.RemoveCol(x.sheet, name)
}

func (x *Xlsx) Selection() (models.Region, bool) {
	if x.selection == nil {
		return models.Region{}, false
	}
	return *x.selection, true
}

func (x *Xlsx) NamedRanges() []models.NamedRange {
	var out []models.NamedRange
	for _, dn := range x.f.GetDefinedName() {
		if strings.HasPrefix(dn.Name, "_xlnm") {
			continue
		}
		sheet, r, err := parseRef(dn.RefersTo)
		if err != nil || sheet != x.sheet {
			continue
		}
		out = append(out, models.NamedRange{Name: dn.Name, Region: r})
	}
	return out
}

func (x *Xlsx) ActiveFilter() (models.Filter, bool) {
	for _, dn := range x.f.GetDefinedName() {
		if dn.Name != filterDatabaseName {
			continue
		}
		sheet, r, err := parseRef(dn.RefersTo)
		if err != nil || sheet != x.sheet {
			continue
		}
		return models.Filter{
			Region:    r,
			RowHidden: func(row int) bool { return x.RowHidden(row) },
		}, true
	}
	return models.Filter{}, false
}

func (x *Xlsx) RowHidden(row int) bool {
	visible, err := x.f.GetRowVisible(x.sheet, row)
	return err == nil && !visible
}

func (x *Xlsx) ColumnHidden(col int) bool {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return false
	}
	visible, err := x.f.GetColVisible(x.sheet, name)
	return err == nil && !visible
}

func (x *Xlsx) HasFormula(row, col int) bool {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	formula, err := x.f.GetCellFormula(x.sheet, cell)
	return err == nil && formula != ""
}

// parseRef parses a defined-name reference like "Sheet1!$A$5:$C$8" into its
// sheet name and region.
func parseRef(ref string) (string, models.Region, error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", models.Region{}, fmt.Errorf("reference %q has no sheet qualifier", ref)
	}
	sheet := strings.Trim(ref[:idx], "'")
	addr := strings.ReplaceAll(ref[idx+1:], "$", "")
	r, err := ParseRange(addr)
	if err != nil {
		return "", models.Region{}, err
	}
	return sheet, r, nil
}

// bandingStyles maps the banding theme enum to built-in table style names.
var bandingStyles = map[string]string{
	"grey":   "TableStyleLight1",
	"blue":   "TableStyleLight9",
	"green":  "TableStyleLight11",
	"orange": "TableStyleLight10",
}

func (x *Xlsx) Bandings() []models.Banding {
	tables, err := x.f.GetTables(x.sheet)
	if err != nil {
		return nil
	}
	var out []models.Banding
	for _, t := range tables {
		r, err := ParseRange(strings.ReplaceAll(t.Range, "$", ""))
		if err != nil {
			continue
		}
		header := t.ShowHeaderRow == nil || *t.ShowHeaderRow
		out = append(out, models.Banding{Region: r, Theme: t.StyleName, Header: header})
	}
	return out
}

func (x *Xlsx) ApplyBanding(r models.Region, theme string, header, footer bool) error {
	style, ok := bandingStyles[theme]
	if !ok {
		style = bandingStyles["grey"]
	}
	stripes := true
	table := &excelize.Table{
		Range:          r.String(),
		Name:           fmt.Sprintf("Banding%d", len(x.Bandings())+1),
		StyleName:      style,
		ShowHeaderRow:  &header,
		ShowRowStripes: &stripes,
	}
	return x.f.AddTable(x.sheet, table)
}

func (x *Xlsx) Freeze(rows, cols int) error {
	topLeft, err := excelize.CoordinatesToCellName(cols+1, rows+1)
	if err != nil {
		return err
	}
	return x.f.SetPanes(x.sheet, &excelize.Panes{
		Freeze:      rows > 0 || cols > 0,
		XSplit:      cols,
		YSplit:      rows,
		TopLeftCell: topLeft,
		ActivePane:  "bottomRight",
	})
}

// pointsPerPixel converts a 96-DPI pixel height to row-height points.
const pointsPerPixel = 72.0 / 96.0

func (x *Xlsx) SetRowHeight(r models.Region, px float64) error {
	for row := r.Top; row <= r.Bottom(); row++ {
		if err := x.f.SetRowHeight(x.sheet, row, px*pointsPerPixel); err != nil {
			return err
		}
	}
	return nil
}

func (x *Xlsx) AutoResize(r models.Region) error {
	cells, err := x.ReadCells(r)
	if err != nil {
		return err
	}
	for j := 0; j < r.Width; j++ {
		longest := 0
		for i := 0; i < r.Height; i++ {
			if n := len([]rune(cells[i][j])); n > longest {
				longest = n
			}
		}
		width := float64(longest + 2)
		if width < 8 {
			width = 8
		} else if width > 80 {
			width = 80
		}
		name, err := excelize.ColumnNumberToName(r.Left + j)
		if err != nil {
			return err
		}
		if err := x.f.SetColWidth(x.sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}
