package gridfmt

import (
	"strings"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
)

// Config is the flat formatting configuration consumed by one run. All
// fields are independent; a zero value means "leave unchanged". The struct
// is YAML-taggable so drivers can load it from a config file.
type Config struct {
	// DeleteEmptyRows prunes rows that are entirely empty.
	DeleteEmptyRows bool `yaml:"delete_empty_rows"`
	// DeleteEmptyColumns prunes columns that are entirely empty. Columns
	// are always pruned before rows are rescanned.
	DeleteEmptyColumns bool `yaml:"delete_empty_columns"`

	Borders BorderConfig `yaml:"borders"`

	// HeaderBold bolds the first row of each target region.
	HeaderBold bool `yaml:"header_bold"`
	// RowHeight, when set, fixes every target row to this pixel height.
	RowHeight *float64 `yaml:"row_height"`
	// AutoAdjust sizes target columns to fit their content.
	AutoAdjust bool `yaml:"auto_adjust"`

	HAlign models.HorizontalAlign `yaml:"horizontal_align"`
	VAlign models.VerticalAlign   `yaml:"vertical_align"`

	FreezeHeaderRow   bool `yaml:"freeze_header_row"`
	FreezeFirstColumn bool `yaml:"freeze_first_column"`

	Banding BandingConfig `yaml:"banding"`
	Font    FontConfig    `yaml:"font"`

	NumberFormat NumberFormatConfig `yaml:"number_format"`
}

// BorderConfig enables borders and selects which of the six edges to draw.
type BorderConfig struct {
	Enabled bool               `yaml:"enabled"`
	Edges   models.BorderEdges `yaml:",inline"`
}

// BandingTheme names a banding color theme.
type BandingTheme string

const (
	ThemeGrey   BandingTheme = "grey"
	ThemeBlue   BandingTheme = "blue"
	ThemeGreen  BandingTheme = "green"
	ThemeOrange BandingTheme = "orange"
)

// BandingConfig enables alternating-color row decoration.
type BandingConfig struct {
	Enabled bool         `yaml:"enabled"`
	Theme   BandingTheme `yaml:"theme"`
}

// FontConfig carries optional font overrides; empty fields leave the
// existing font unchanged.
type FontConfig struct {
	Family string `yaml:"family"`
	// Size is in points.
	Size float64 `yaml:"size"`
	// Color is a hex font color, e.g. "#333333".
	Color string `yaml:"color"`
	// Background is a hex cell fill color.
	Background string `yaml:"background"`
}

func (f FontConfig) isZero() bool {
	return f.Family == "" && f.Size == 0 && f.Color == "" && f.Background == ""
}

// NumberFormatKind names a number format family.
type NumberFormatKind string

const (
	FormatNumber   NumberFormatKind = "number"
	FormatCurrency NumberFormatKind = "currency"
	FormatPercent  NumberFormatKind = "percent"
	FormatDate     NumberFormatKind = "date"
	FormatText     NumberFormatKind = "text"
)

// NumberFormatConfig selects a number format. The zero Kind leaves cell
// formats unchanged.
type NumberFormatConfig struct {
	Kind NumberFormatKind `yaml:"kind"`
	// Decimals is the number of decimal places for numeric kinds.
	Decimals int `yaml:"decimals"`
	// ThousandsSeparator groups digits of numeric kinds.
	ThousandsSeparator bool `yaml:"thousands_separator"`
	// CurrencySymbol prefixes currency values; defaults to "$".
	CurrencySymbol string `yaml:"currency_symbol"`
}

// FormatString renders the configuration as a spreadsheet number format
// string, or "" when no kind is selected.
func (n NumberFormatConfig) FormatString() string {
	integer := "0"
	if n.ThousandsSeparator {
		integer = "#,##0"
	}
	decimals := ""
	if n.Decimals > 0 {
		decimals = "." + strings.Repeat("0", n.Decimals)
	}
	switch n.Kind {
	case FormatNumber:
		return integer + decimals
	case FormatCurrency:
		symbol := n.CurrencySymbol
		if symbol == "" {
			symbol = "$"
		}
		return `"` + symbol + `"` + integer + decimals
	case FormatPercent:
		return "0" + decimals + "%"
	case FormatDate:
		return "yyyy-mm-dd"
	case FormatText:
		return "@"
	}
	return ""
}
