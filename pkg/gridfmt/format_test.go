package gridfmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/surface"
)

func entireSheet() models.Target {
	return models.Target{Kind: models.TargetEntireSheet}
}

func TestRunPrunesEmptyLines(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"a", "", "b"},
		{"", "", ""},
		{"c", "", "d"},
		{"", "", ""},
	})
	cfg := Config{DeleteEmptyRows: true, DeleteEmptyColumns: true}

	res := Run(m, cfg, entireSheet(), Options{})

	assert.Empty(t, res.Errors)
	assert.Equal(t, 2, res.DeletedRows)
	assert.Equal(t, 1, res.DeletedCols)

	rows, cols, err := m.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	// Relative ordering of the surviving cells is unchanged.
	cells, err := m.ReadCells(models.Region{Top: 1, Left: 1, Height: 2, Width: 2})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, cells)
}

func TestRunPruneIdempotent(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"a", "", "b"},
		{"", "", ""},
		{"c", "", "d"},
	})
	cfg := Config{DeleteEmptyRows: true, DeleteEmptyColumns: true}

	first := Run(m, cfg, entireSheet(), Options{})
	assert.Equal(t, 1, first.DeletedRows)
	assert.Equal(t, 1, first.DeletedCols)

	second := Run(m, cfg, entireSheet(), Options{})
	assert.Zero(t, second.DeletedRows, "second pass deletes nothing")
	assert.Zero(t, second.DeletedCols)
}

// A row that becomes empty only once its last populated column is removed
// must still be caught: the row pass re-reads after the column pass.
func TestRunPruneRescansRowsAfterColumnDeletion(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"a", ""},
		{"", ""},
		{"b", ""},
	})
	cfg := Config{DeleteEmptyRows: true, DeleteEmptyColumns: true}

	res := Run(m, cfg, entireSheet(), Options{})

	assert.Equal(t, 1, res.DeletedCols)
	assert.Equal(t, 1, res.DeletedRows)
}

func TestRunPruneBestEffort(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"a", ""},
		{"b", ""},
	})
	m.FailOn("delete-column", errors.New("surface rejected the call"))
	cfg := Config{DeleteEmptyRows: true, DeleteEmptyColumns: true, HeaderBold: true}

	res := Run(m, cfg, entireSheet(), Options{})

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "prune:")
	assert.Zero(t, res.DeletedCols)

	// Later stages still ran.
	attrs := m.Attrs(1, 1)
	require.NotNil(t, attrs.FontBold)
	assert.True(t, *attrs.FontBold)
}

func TestRunResolutionFailureIsFatal(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"a", ""},
		{"", ""},
	})
	cfg := Config{
		DeleteEmptyRows:    true,
		DeleteEmptyColumns: true,
		HeaderBold:         true,
		Banding:            BandingConfig{Enabled: true},
	}

	res := Run(m, cfg, models.Target{Kind: models.TargetSelection}, Options{})

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "resolve:")
	assert.Equal(t, 1, res.DeletedRows, "pruning results gathered before the failure are kept")
	assert.Equal(t, 1, res.DeletedCols)
	assert.Empty(t, m.Bandings(), "no formatting applied after a fatal resolution failure")
	assert.Nil(t, m.Attrs(1, 1).FontBold)
}

func TestRunAppliesAttributes(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"h1", "h2"},
		{"1", "2"},
	})
	height := 24.0
	cfg := Config{
		HAlign:            models.AlignCenter,
		VAlign:            models.AlignMiddle,
		Borders:           BorderConfig{Enabled: true, Edges: models.BorderEdges{Top: true, Bottom: true, Left: true, Right: true}},
		HeaderBold:        true,
		RowHeight:         &height,
		AutoAdjust:        true,
		FreezeHeaderRow:   true,
		FreezeFirstColumn: true,
		Font:              FontConfig{Family: "Arial", Size: 11, Color: "#333333"},
		NumberFormat:      NumberFormatConfig{Kind: FormatNumber, Decimals: 2, ThousandsSeparator: true},
	}

	res := Run(m, cfg, entireSheet(), Options{})

	assert.Empty(t, res.Errors)

	header := m.Attrs(1, 1)
	assert.Equal(t, models.AlignCenter, header.HAlign)
	assert.Equal(t, models.AlignMiddle, header.VAlign)
	require.NotNil(t, header.Borders)
	assert.True(t, header.Borders.Top)
	require.NotNil(t, header.FontBold)
	assert.True(t, *header.FontBold)
	assert.Equal(t, "Arial", header.FontFamily)
	assert.Equal(t, "#,##0.00", header.NumberFormat)

	body := m.Attrs(2, 2)
	assert.Nil(t, body.FontBold, "header bolding touches only the first row")
	assert.Equal(t, models.AlignCenter, body.HAlign)

	frozenRows, frozenCols := m.Frozen()
	assert.Equal(t, 1, frozenRows)
	assert.Equal(t, 1, frozenCols)
	assert.Equal(t, 24.0, m.RowHeight(2))
	assert.Equal(t, 2, m.ResizedColumns())
}

func TestRunBandingGuard(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"h", "h"},
		{"1", "2"},
	})
	cfg := Config{Banding: BandingConfig{Enabled: true, Theme: ThemeBlue}}

	first := Run(m, cfg, entireSheet(), Options{})
	assert.Equal(t, "banding applied", first.BandingMessage)
	require.Len(t, m.Bandings(), 1)
	assert.Equal(t, "blue", m.Bandings()[0].Theme)

	second := Run(m, cfg, entireSheet(), Options{})
	assert.Equal(t, "banding already applied, skipped", second.BandingMessage)
	assert.Len(t, m.Bandings(), 1, "the second run performs no write")
}

func TestRunBandingFailureReported(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"h", "h"},
		{"1", "2"},
	})
	m.FailOn("banding", errors.New("banding rejected"))
	cfg := Config{Banding: BandingConfig{Enabled: true}}

	res := Run(m, cfg, entireSheet(), Options{})

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "banding:")
	assert.Equal(t, "banding failed", res.BandingMessage, "a failed write is not reported as applied")
	assert.Empty(t, m.Bandings())
}

func TestRunStageFailureContinues(t *testing.T) {
	m := surface.NewMemory([][]string{{"a", "b"}})
	m.FailOn("banding", errors.New("banding rejected"))
	m.FailOn("freeze", errors.New("freeze rejected"))
	cfg := Config{
		Banding:         BandingConfig{Enabled: true},
		FreezeHeaderRow: true,
		HeaderBold:      true,
		AutoAdjust:      true,
	}

	res := Run(m, cfg, entireSheet(), Options{})

	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "freeze:", "errors arrive in stage execution order")
	assert.Contains(t, res.Errors[1], "banding:")
	require.NotNil(t, m.Attrs(1, 1).FontBold)
	assert.Equal(t, 2, m.ResizedColumns(), "stages after the failures still ran")
}

// The chunked path must leave the surface in the same visual state as a
// single unchunked write.
func TestRunChunkedMatchesUnchunked(t *testing.T) {
	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = []string{"a", "b", "c"}
	}
	cfg := Config{
		HAlign:  models.AlignRight,
		Borders: BorderConfig{Enabled: true, Edges: models.BorderEdges{Top: true, Bottom: true, InnerHorizontal: true}},
		Font:    FontConfig{Size: 9},
	}

	plain := surface.NewMemory(rows)
	resPlain := Run(plain, cfg, entireSheet(), Options{})
	require.Empty(t, resPlain.Errors)

	chunked := surface.NewMemory(rows)
	resChunked := Run(chunked, cfg, entireSheet(), Options{LargeGridThreshold: 10, ChunkRows: 7})
	require.Empty(t, resChunked.Errors)

	assert.Equal(t, plain.AttrsMatrix(), chunked.AttrsMatrix())
}

// With only outer edges configured, band seams must stay invisible: interior
// rows carry no Top or Bottom edge, whether the write was chunked or not.
func TestRunChunkedOuterBordersOnly(t *testing.T) {
	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = []string{"a", "b", "c"}
	}
	cfg := Config{
		Borders: BorderConfig{Enabled: true, Edges: models.BorderEdges{Top: true, Bottom: true}},
	}

	plain := surface.NewMemory(rows)
	resPlain := Run(plain, cfg, entireSheet(), Options{})
	require.Empty(t, resPlain.Errors)

	chunked := surface.NewMemory(rows)
	resChunked := Run(chunked, cfg, entireSheet(), Options{LargeGridThreshold: 10, ChunkRows: 7})
	require.Empty(t, resChunked.Errors)

	assert.Equal(t, plain.AttrsMatrix(), chunked.AttrsMatrix())

	mid := chunked.Attrs(25, 1)
	require.NotNil(t, mid.Borders)
	assert.False(t, mid.Borders.Top, "interior rows carry no outer edge")
	assert.False(t, mid.Borders.Bottom)

	top := chunked.Attrs(1, 1)
	require.NotNil(t, top.Borders)
	assert.True(t, top.Borders.Top)
	bottom := chunked.Attrs(50, 3)
	require.NotNil(t, bottom.Borders)
	assert.True(t, bottom.Borders.Bottom)
}

func TestRowBands(t *testing.T) {
	r := models.Region{Top: 5, Left: 2, Height: 25, Width: 3}

	bands := rowBands(r, 10)

	require.Len(t, bands, 3)
	assert.Equal(t, models.Region{Top: 5, Left: 2, Height: 10, Width: 3}, bands[0])
	assert.Equal(t, models.Region{Top: 15, Left: 2, Height: 10, Width: 3}, bands[1])
	assert.Equal(t, models.Region{Top: 25, Left: 2, Height: 5, Width: 3}, bands[2])

	covered := 0
	for _, b := range bands {
		covered += b.Cells()
	}
	assert.Equal(t, r.Cells(), covered)

	assert.Equal(t, []models.Region{r}, rowBands(r, 100), "small regions stay whole")
}

func TestPreviewTarget(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"a", "", "b"},
		{"", "", ""},
		{"c", "", "d"},
	})

	preview, err := PreviewTarget(m, entireSheet())
	require.NoError(t, err)
	assert.Equal(t, 1, preview.RegionCount)
	assert.Equal(t, 9, preview.TotalCells)
	assert.Equal(t, 4, preview.NonEmptyCells)
}

func TestPreviewTargetCellCountSums(t *testing.T) {
	m := surface.NewMemory([][]string{
		{"x", "y"},
		{"", "z"},
	})

	preview, err := PreviewTarget(m, models.Target{
		Kind:      models.TargetConditional,
		Condition: &models.Condition{Type: models.CondNotBlank},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, preview.RegionCount)
	assert.Equal(t, 3, preview.TotalCells, "total equals the sum of height*width over all regions")
	assert.Equal(t, 3, preview.NonEmptyCells)
}

func TestPreviewTargetResolutionError(t *testing.T) {
	m := surface.NewMemory([][]string{{"a"}})

	_, err := PreviewTarget(m, models.Target{Kind: models.TargetNamedRange, Name: "nope"})

	assert.ErrorIs(t, err, ErrInvalidTarget)
}
