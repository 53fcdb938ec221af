// Package commands implements the stylefang CLI commands.
package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/check"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/format"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/methodtype"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/naming"
	"github.com/Sumatoshi-tech/stylefang/pkg/config"
	"github.com/Sumatoshi-tech/stylefang/pkg/entity"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// ErrViolationsFound signals a completed scan that found violations, so the
// caller can map it to a distinct exit code.
var ErrViolationsFound = errors.New("style violations found")

// ScanCommand holds the flags for the scan command.
type ScanCommand struct {
	configPath  string
	output      string
	format      string
	checkerList []string
	workers     int
	skipSchema  bool
	verbose     bool
	noColor     bool
}

// NewScanCommand creates and configures the scan command.
func NewScanCommand() *cobra.Command {
	cmd := &ScanCommand{}

	cobraCmd := &cobra.Command{
		Use:   "scan [file|-]",
		Short: "Check a parsed entity stream against the convention rules",
		Long: `Scan reads a stream of identifiers, method signatures, class records and
source lines produced by an external parser (JSON or YAML, file or stdin)
and reports every convention violation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file (default: stylefang.yaml)")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", "", "Output format: text, compact, json, yaml, or plot")
	cobraCmd.Flags().StringSliceVarP(&cmd.checkerList, "checkers", "k", nil, "Specific checkers to run (comma-separated)")
	cobraCmd.Flags().IntVarP(&cmd.workers, "workers", "w", 0, "Scan parallelism (default: number of CPUs)")
	cobraCmd.Flags().BoolVar(&cmd.skipSchema, "no-schema", false, "Skip JSON Schema validation of the input")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Show all violations without truncation")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")

	return cobraCmd
}

// Run executes the scan command.
func (c *ScanCommand) Run(cobraCmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	c.applyOverrides(cfg)

	stream, err := c.readStream(args)
	if err != nil {
		return err
	}

	registry := NewRegistry(cfg)
	runner := check.NewRunner(registry, cfg.Scan.Workers)

	result, err := runner.Run(cobraCmd.Context(), stream, c.checkerList)
	if err != nil {
		return err
	}

	writer, closeWriter, err := c.openOutput()
	if err != nil {
		return err
	}
	defer closeWriter()

	renderErr := report.Render(result, cfg.Output.Format, c.verbose, cfg.Output.NoColor, writer)
	if renderErr != nil {
		return renderErr
	}

	if !result.Passed() {
		return ErrViolationsFound
	}

	return nil
}

func (c *ScanCommand) applyOverrides(cfg *config.Config) {
	if c.format != "" {
		cfg.Output.Format = c.format
	}

	if c.noColor {
		cfg.Output.NoColor = true
	}

	if c.workers > 0 {
		cfg.Scan.Workers = c.workers
	}
}

// readStream loads and decodes the scan input from a file or stdin. YAML is
// selected by file extension; stdin is always JSON.
func (c *ScanCommand) readStream(args []string) (*entity.Stream, error) {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	var (
		data []byte
		err  error
	)

	inputFormat := entity.FormatJSON

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			inputFormat = entity.FormatYAML
		}
	}

	if err != nil {
		return nil, fmt.Errorf("read scan input %s: %w", path, err)
	}

	if inputFormat == entity.FormatJSON && !c.skipSchema {
		if schemaErr := entity.ValidateSchema(data); schemaErr != nil {
			return nil, schemaErr
		}
	}

	return entity.Decode(bytes.NewReader(data), inputFormat)
}

func (c *ScanCommand) openOutput() (io.Writer, func(), error) {
	if c.output == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(c.output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file %s: %w", c.output, err)
	}

	return file, func() { _ = file.Close() }, nil
}

// NewRegistry builds the checker registry from configuration.
func NewRegistry(cfg *config.Config) *check.Registry {
	registry := check.NewRegistry()

	registry.Register(naming.NewChecker(naming.Config{
		FolderExceptions:      cfg.Rules.FolderNameExceptions,
		FileExceptions:        cfg.Rules.FileNameExceptions,
		Acronyms:              cfg.Rules.Acronyms,
		CaseSensitiveAcronyms: cfg.Rules.CaseSensitiveAcronyms,
		PluralSuffixes:        cfg.Rules.EnumPluralSuffixes,
	}))
	registry.Register(methodtype.NewChecker())
	registry.Register(format.NewChecker(cfg.Rules.MaxLineLength))

	return registry
}
