package surface

import (
	"github.com/xuri/excelize/v2"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
)

// cellEdges are the border edges one particular cell receives, derived from
// the region-level edge flags and the cell's position inside the region.
// Order: top, bottom, left, right.
type cellEdges [4]bool

// styleKey identifies a derived style: the style the cell already had plus
// the attribute overlay. Caching by key keeps repeated writes over large
// regions from registering one style per cell.
type styleKey struct {
	base       int
	hAlign     models.HorizontalAlign
	vAlign     models.VerticalAlign
	edges      cellEdges
	bold       int8
	family     string
	size       float64
	color      string
	background string
	numFmt     string
}

func (x *Xlsx) WriteVisualAttributes(r models.Region, attrs models.VisualAttributes) error {
	for row := r.Top; row <= r.Bottom(); row++ {
		for col := r.Left; col <= r.Right(); col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			baseID, err := x.f.GetCellStyle(x.sheet, cell)
			if err != nil {
				return err
			}
			edges := edgesFor(attrs.Borders, r, row, col)
			key := makeStyleKey(baseID, attrs, edges)
			id, ok := x.styles[key]
			if !ok {
				id, err = x.deriveStyle(baseID, attrs, edges)
				if err != nil {
					return err
				}
				x.styles[key] = id
			}
			if err := x.f.SetCellStyle(x.sheet, cell, cell, id); err != nil {
				return err
			}
		}
	}
	return nil
}

func makeStyleKey(baseID int, attrs models.VisualAttributes, edges cellEdges) styleKey {
	key := styleKey{
		base:       baseID,
		hAlign:     attrs.HAlign,
		vAlign:     attrs.VAlign,
		edges:      edges,
		bold:       -1,
		family:     attrs.FontFamily,
		size:       attrs.FontSize,
		color:      attrs.FontColor,
		background: attrs.Background,
		numFmt:     attrs.NumberFormat,
	}
	if attrs.FontBold != nil {
		key.bold = 0
		if *attrs.FontBold {
			key.bold = 1
		}
	}
	return key
}

// edgesFor resolves which edges a cell receives: outer edges apply only on
// the region boundary, inner edges on every interior boundary.
func edgesFor(b *models.BorderEdges, r models.Region, row, col int) cellEdges {
	if b == nil {
		return cellEdges{}
	}
	return cellEdges{
		(b.Top && row == r.Top) || (b.InnerHorizontal && row > r.Top),
		(b.Bottom && row == r.Bottom()) || (b.InnerHorizontal && row < r.Bottom()),
		(b.Left && col == r.Left) || (b.InnerVertical && col > r.Left),
		(b.Right && col == r.Right()) || (b.InnerVertical && col < r.Right()),
	}
}

// deriveStyle overlays the attribute fields onto the cell's existing style
// and registers the combination with the workbook.
func (x *Xlsx) deriveStyle(baseID int, attrs models.VisualAttributes, edges cellEdges) (int, error) {
	style, err := x.f.GetStyle(baseID)
	if err != nil || style == nil {
		style = &excelize.Style{}
	}

	if attrs.HAlign != "" || attrs.VAlign != "" {
		if style.Alignment == nil {
			style.Alignment = &excelize.Alignment{}
		}
		if attrs.HAlign != "" {
			style.Alignment.Horizontal = string(attrs.HAlign)
		}
		if attrs.VAlign != "" {
			style.Alignment.Vertical = verticalName(attrs.VAlign)
		}
	}

	if edges != (cellEdges{}) {
		names := [4]string{"top", "bottom", "left", "right"}
		kept := style.Border[:0:0]
		for _, b := range style.Border {
			replaced := false
			for i, name := range names {
				if edges[i] && b.Type == name {
					replaced = true
				}
			}
			if !replaced {
				kept = append(kept, b)
			}
		}
		for i, name := range names {
			if edges[i] {
				kept = append(kept, excelize.Border{Type: name, Color: "000000", Style: 1})
			}
		}
		style.Border = kept
	}

	if attrs.FontBold != nil || attrs.FontFamily != "" || attrs.FontSize != 0 || attrs.FontColor != "" {
		if style.Font == nil {
			style.Font = &excelize.Font{}
		}
		if attrs.FontBold != nil {
			style.Font.Bold = *attrs.FontBold
		}
		if attrs.FontFamily != "" {
			style.Font.Family = attrs.FontFamily
		}
		if attrs.FontSize != 0 {
			style.Font.Size = attrs.FontSize
		}
		if attrs.FontColor != "" {
			style.Font.Color = normalizeColor(attrs.FontColor)
		}
	}

	if attrs.Background != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{normalizeColor(attrs.Background)}}
	}

	if attrs.NumberFormat != "" {
		format := attrs.NumberFormat
		style.CustomNumFmt = &format
	}

	return x.f.NewStyle(style)
}

func verticalName(v models.VerticalAlign) string {
	if v == models.AlignMiddle {
		return "center"
	}
	return string(v)
}

func normalizeColor(c string) string {
	if len(c) > 0 && c[0] == '#' {
		return c[1:]
	}
	return c
}
