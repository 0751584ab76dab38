package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
)

func TestMemoryDeleteShiftsIndices(t *testing.T) {
	m := NewMemory([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})

	require.NoError(t, m.DeleteRow(2))
	require.NoError(t, m.DeleteColumn(1))

	rows, cols, err := m.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	cells, err := m.ReadCells(models.Region{Top: 1, Left: 1, Height: 2, Width: 2})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"b", "c"}, {"h", "i"}}, cells)

	assert.Error(t, m.DeleteRow(99))
	assert.Error(t, m.DeleteColumn(0))
}

func TestMemoryReadCellsPadsOutside(t *testing.T) {
	m := NewMemory([][]string{{"a"}})

	cells, err := m.ReadCells(models.Region{Top: 1, Left: 1, Height: 2, Width: 3})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "", ""}, {"", "", ""}}, cells)
}

func TestMemoryWriteLayersAttributes(t *testing.T) {
	m := NewMemory([][]string{{"a", "b"}})
	r := models.Region{Top: 1, Left: 1, Height: 1, Width: 2}

	require.NoError(t, m.WriteVisualAttributes(r, models.VisualAttributes{HAlign: models.AlignLeft}))
	require.NoError(t, m.WriteVisualAttributes(r, models.VisualAttributes{FontSize: 12}))

	got := m.Attrs(1, 2)
	assert.Equal(t, models.AlignLeft, got.HAlign, "later writes keep earlier fields")
	assert.Equal(t, 12.0, got.FontSize)
}

func TestMemoryWriteResolvesBorderEdges(t *testing.T) {
	m := NewMemory([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	})
	r := models.Region{Top: 1, Left: 1, Height: 3, Width: 3}

	require.NoError(t, m.WriteVisualAttributes(r, models.VisualAttributes{
		Borders: &models.BorderEdges{Top: true, Bottom: true, InnerVertical: true},
	}))

	corner := m.Attrs(1, 1)
	require.NotNil(t, corner.Borders)
	assert.Equal(t, models.BorderEdges{Top: true, Right: true}, *corner.Borders)

	center := m.Attrs(2, 2)
	require.NotNil(t, center.Borders)
	assert.Equal(t, models.BorderEdges{Left: true, Right: true}, *center.Borders,
		"interior cells receive inner edges only")

	assert.Equal(t, models.BorderEdges{Bottom: true, Left: true}, *m.Attrs(3, 3).Borders)
}

func TestSnapshotCapturesWholeSheet(t *testing.T) {
	m := NewMemory([][]string{{"a", ""}, {"", "d"}})

	g, err := Snapshot(m)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, "d", g.Cell(2, 2))

	empty, err := Snapshot(NewMemory(nil))
	require.NoError(t, err)
	assert.Zero(t, empty.Rows())
}
