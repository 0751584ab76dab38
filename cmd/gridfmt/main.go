// Package main provides the CLI entry point for gridfmt.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/logging"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/models"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/output"
	"github.com/markthomsen-gsa/gridfmt/pkg/gridfmt/surface"
)

var (
	sheetName  string
	configPath string
	targetKind string
	address    string
	rangeName  string
	selection  string
	condType   string
	condValue  string
	outputPath string
	reportPath string
	pretty     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridfmt",
		Short: "Format spreadsheet grids",
		Long: `gridfmt prunes empty rows and columns, resolves a target region
(whole sheet, data range, named range, detected table, filtered rows,
conditional matches, ...) and applies visual formatting to it, chunking
large regions to keep each write bounded.`,
	}

	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet name (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&targetKind, "target", "entire-sheet", "Target kind: entire-sheet, selected-range, custom-range, data-range, named-range, detect-table, filtered-rows, conditional, current-column, current-row, visible-cells")
	rootCmd.PersistentFlags().StringVar(&address, "address", "", "A1-style address for custom-range, e.g. B2:D9")
	rootCmd.PersistentFlags().StringVar(&rangeName, "name", "", "Identifier for named-range")
	rootCmd.PersistentFlags().StringVar(&selection, "selection", "", "Simulated selection for selection-based targets, e.g. A1:C4")
	rootCmd.PersistentFlags().StringVar(&condType, "condition-type", "", "Condition for conditional: contains, equals, greaterThan, lessThan, blank, notBlank, hasFormula")
	rootCmd.PersistentFlags().StringVar(&condValue, "condition-value", "", "Condition operand")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")

	runCmd := &cobra.Command{
		Use:   "run [input.xlsx]",
		Short: "Apply formatting to a workbook sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runFormat,
	}
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML formatting configuration file")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: overwrite input)")
	runCmd.Flags().StringVar(&reportPath, "report", "", "Write the JSON report to a file instead of stdout")

	previewCmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Estimate the target size without writing",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}

	rootCmd.AddCommand(runCmd, previewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openSheet(path string) (*excelize.File, *surface.Xlsx, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("file not found: %s", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	sheet := sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	xs := surface.NewXlsx(f, sheet)
	if selection != "" {
		r, err := surface.ParseRange(selection)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		xs.SetSelection(r)
	}
	return f, xs, nil
}

func buildTarget() models.Target {
	t := models.Target{
		Kind:    models.TargetKind(targetKind),
		Address: address,
		Name:    rangeName,
	}
	if condType != "" {
		t.Condition = &models.Condition{
			Type:  models.ConditionType(condType),
			Value: condValue,
		}
	}
	return t
}

func loadConfig(path string) (gridfmt.Config, error) {
	var cfg gridfmt.Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func setupLogging() {
	if verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	f, xs, err := openSheet(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	res := gridfmt.Run(xs, cfg, buildTarget(), gridfmt.Options{})

	savePath := outputPath
	if savePath == "" {
		savePath = args[0]
	}
	if err := f.SaveAs(savePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	jsonData, err := output.ResultToJSON(res, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if reportPath != "" {
		return os.WriteFile(reportPath, jsonData, 0644)
	}
	fmt.Println(string(jsonData))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	setupLogging()

	f, xs, err := openSheet(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	preview, err := gridfmt.PreviewTarget(xs, buildTarget())
	if err != nil {
		return err
	}
	jsonData, err := output.PreviewToJSON(preview, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
