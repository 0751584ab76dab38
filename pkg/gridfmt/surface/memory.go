package surface

import (
	"fmt"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
)

// Memory is an in-memory Surface. It records every write it receives, which
// makes it the reference implementation of the interface semantics and the
// workhorse of the unit tests.
type Memory struct {
	cells [][]string
	attrs [][]models.VisualAttributes

	selection  *models.Region
	named      []models.NamedRange
	filter     *models.Filter
	hiddenRows map[int]bool
	hiddenCols map[int]bool
	formulas   map[[2]int]bool
	bandings   []models.Banding

	frozenRows int
	frozenCols int
	rowHeights map[int]float64
	resized    map[int]bool

	// failures maps an operation name to an injected error, for exercising
	// best-effort stage handling. Operation names: "delete-row",
	// "delete-column", "write", "banding", "freeze", "row-height",
	// "auto-resize".
	failures map[string]error
}

// NewMemory builds an in-memory sheet from possibly ragged rows, padded to a
// rectangle.
func NewMemory(rows [][]string) *Memory {
	g := models.NewGrid(rows)
	m := &Memory{
		cells:      g,
		hiddenRows: map[int]bool{},
		hiddenCols: map[int]bool{},
		formulas:   map[[2]int]bool{},
		rowHeights: map[int]float64{},
		resized:    map[int]bool{},
		failures:   map[string]error{},
	}
	m.attrs = make([][]models.VisualAttributes, g.Rows())
	for i := range m.attrs {
		m.attrs[i] = make([]models.VisualAttributes, g.Cols())
	}
	return m
}

// SetSelection sets the current selection.
func (m *Memory) SetSelection(r models.Region) { m.selection = &r }

// AddNamedRange registers a named range.
func (m *Memory) AddNamedRange(name string, r models.Region) {
	m.named = append(m.named, models.NamedRange{Name: name, Region: r})
}

// SetFilter installs an active filter.
func (m *Memory) SetFilter(f models.Filter) { m.filter = &f }

// HideRow marks a row hidden.
func (m *Memory) HideRow(row int) { m.hiddenRows[row] = true }

// HideColumn marks a column hidden.
func (m *Memory) HideColumn(col int) { m.hiddenCols[col] = true }

// MarkFormula marks a cell as holding a formula.
func (m *Memory) MarkFormula(row, col int) { m.formulas[[2]int{row, col}] = true }

// FailOn injects an error for the named operation.
func (m *Memory) FailOn(op string, err error) { m.failures[op] = err }

// Attrs returns the accumulated visual attributes of a cell (1-based).
func (m *Memory) Attrs(row, col int) models.VisualAttributes {
	return m.attrs[row-1][col-1]
}

// AttrsMatrix returns the full accumulated attribute matrix.
func (m *Memory) AttrsMatrix() [][]models.VisualAttributes { return m.attrs }

// Frozen returns the frozen row and column counts.
func (m *Memory) Frozen() (rows, cols int) { return m.frozenRows, m.frozenCols }

// RowHeight returns the recorded height of a row, or zero.
func (m *Memory) RowHeight(row int) float64 { return m.rowHeights[row] }

// ResizedColumns returns the count of columns auto-resized so far.
func (m *Memory) ResizedColumns() int { return len(m.resized) }

func (m *Memory) Dimensions() (int, int, error) {
	if len(m.cells) == 0 {
		return 0, 0, nil
	}
	return len(m.cells), len(m.cells[0]), nil
}

func (m *Memory) ReadCells(r models.Region) ([][]string, error) {
	out := make([][]string, r.Height)
	for i := 0; i < r.Height; i++ {
		out[i] = make([]string, r.Width)
		for j := 0; j < r.Width; j++ {
			out[i][j] = models.Grid(m.cells).Cell(r.Top+i, r.Left+j)
		}
	}
	return out, nil
}

func (m *Memory) WriteVisualAttributes(r models.Region, attrs models.VisualAttributes) error {
	if err := m.failures["write"]; err != nil {
		return err
	}
	for row := r.Top; row <= r.Bottom(); row++ {
		for col := r.Left; col <= r.Right(); col++ {
			if row < 1 || row > len(m.cells) || col < 1 || col > len(m.cells[0]) {
				continue
			}
			cellAttrs := attrs
			if attrs.Borders != nil {
				edges := resolveEdges(*attrs.Borders, r, row, col)
				cellAttrs.Borders = &edges
			}
			m.attrs[row-1][col-1] = m.attrs[row-1][col-1].Merge(cellAttrs)
		}
	}
	return nil
}

// resolveEdges maps region-level border flags to the edges one cell actually
// receives. Outer edges apply only on the region boundary, inner edges on
// every interior boundary, so writes over different partitions of the same
// area record identical per-cell state.
func resolveEdges(b models.BorderEdges, r models.Region, row, col int) models.BorderEdges {
	return models.BorderEdges{
		Top:    (b.Top && row == r.Top) || (b.InnerHorizontal && row > r.Top),
		Bottom: (b.Bottom && row == r.Bottom()) || (b.InnerHorizontal && row < r.Bottom()),
		Left:   (b.Left && col == r.Left) || (b.InnerVertical && col > r.Left),
		Right:  (b.Right && col == r.Right()) || (b.InnerVertical && col < r.Right()),
	}
}

func (m *Memory) DeleteRow(row int) error {
	if err := m.failures["delete-row"]; err != nil {
		return err
	}
	if row < 1 || row > len(m.cells) {
		return fmt.Errorf("row %d out of range", row)
	}
	m.cells = append(m.cells[:row-1], m.cells[row:]...)
	m.attrs = append(m.attrs[:row-1], m.attrs[row:]...)
	return nil
}

func (m *Memory) DeleteColumn(col int) error {
	if err := m.failures["delete-column"]; err != nil {
		return err
	}
	if len(m.cells) == 0 || col < 1 || col > len(m.cells[0]) {
		return fmt.Errorf("column %d out of range", col)
	}
	for i := range m.cells {
		m.cells[i] = append(m.cells[i][:col-1], m.cells[i][col:]...)
		m.attrs[i] = append(m.attrs[i][:col-1], m.attrs[i][col:]...)
	}
	return nil
}

func (m *Memory) Selection() (models.Region, bool) {
	if m.selection == nil {
		return models.Region{}, false
	}
	return *m.selection, true
}

func (m *Memory) NamedRanges() []models.NamedRange { return m.named }

func (m *Memory) ActiveFilter() (models.Filter, bool) {
	if m.filter == nil {
		return models.Filter{}, false
	}
	return *m.filter, true
}

func (m *Memory) RowHidden(row int) bool    { return m.hiddenRows[row] }
func (m *Memory) ColumnHidden(col int) bool { return m.hiddenCols[col] }

func (m *Memory) HasFormula(row, col int) bool { return m.formulas[[2]int{row, col}] }

func (m *Memory) Bandings() []models.Banding { return m.bandings }

func (m *Memory) ApplyBanding(r models.Region, theme string, header, footer bool) error {
	if err := m.failures["banding"]; err != nil {
		return err
	}
	m.bandings = append(m.bandings, models.Banding{Region: r, Theme: theme, Header: header, Footer: footer})
	return nil
}

func (m *Memory) Freeze(rows, cols int) error {
	if err := m.failures["freeze"]; err != nil {
		return err
	}
	m.frozenRows, m.frozenCols = rows, cols
	return nil
}

func (m *Memory) SetRowHeight(r models.Region, px float64) error {
	if err := m.failures["row-height"]; err != nil {
		return err
	}
	for row := r.Top; row <= r.Bottom(); row++ {
		m.rowHeights[row] = px
	}
	return nil
}

func (m *Memory) AutoResize(r models.Region) error {
	if err := m.failures["auto-resize"]; err != nil {
		return err
	}
	for col := r.Left; col <= r.Right(); col++ {
		m.resized[col] = true
	}
	return nil
}
