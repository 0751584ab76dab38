package models

// HorizontalAlign is a horizontal cell alignment. The zero value leaves the
// existing alignment unchanged.
type HorizontalAlign string

const (
	AlignLeft   HorizontalAlign = "left"
	AlignCenter HorizontalAlign = "center"
	AlignRight  HorizontalAlign = "right"
)

// VerticalAlign is a vertical cell alignment. The zero value leaves the
// existing alignment unchanged.
type VerticalAlign string

const (
	AlignTop    VerticalAlign = "top"
	AlignMiddle VerticalAlign = "middle"
	AlignBottom VerticalAlign = "bottom"
)

// BorderEdges selects which edges of a region receive a border.
type BorderEdges struct {
	Top    bool `json:"top" yaml:"top"`
	Bottom bool `json:"bottom" yaml:"bottom"`
	Left   bool `json:"left" yaml:"left"`
	Right  bool `json:"right" yaml:"right"`
	// InnerHorizontal draws borders between rows inside the region.
	InnerHorizontal bool `json:"inner_horizontal" yaml:"inner_horizontal"`
	// InnerVertical draws borders between columns inside the region.
	InnerVertical bool `json:"inner_vertical" yaml:"inner_vertical"`
}

// VisualAttributes carries the visual properties one write applies to a
// region. Zero-valued fields leave the corresponding cell property unchanged,
// so successive writes layer rather than replace.
type VisualAttributes struct {
	HAlign HorizontalAlign
	VAlign VerticalAlign
	// Borders, when set, draws the selected edges on the written region.
	Borders *BorderEdges
	// FontBold, when set, switches bold on or off.
	FontBold   *bool
	FontFamily string
	// FontSize is in points; zero leaves the size unchanged.
	FontSize  float64
	FontColor string
	// Background is a hex fill color, e.g. "#E8F0FE".
	Background string
	// NumberFormat is a rendered number format string, e.g. "#,##0.00".
	NumberFormat string
}

// Merge overlays the set fields of o onto a copy of a and returns the result.
func (a VisualAttributes) Merge(o VisualAttributes) VisualAttributes {
	if o.HAlign != "" {
		a.HAlign = o.HAlign
	}
	if o.VAlign != "" {
		a.VAlign = o.VAlign
	}
	if o.Borders != nil {
		edges := *o.Borders
		a.Borders = &edges
	}
	if o.FontBold != nil {
		bold := *o.FontBold
		a.FontBold = &bold
	}
	if o.FontFamily != "" {
		a.FontFamily = o.FontFamily
	}
	if o.FontSize != 0 {
		a.FontSize = o.FontSize
	}
	if o.FontColor != "" {
		a.FontColor = o.FontColor
	}
	if o.Background != "" {
		a.Background = o.Background
	}
	if o.NumberFormat != "" {
		a.NumberFormat = o.NumberFormat
	}
	return a
}
