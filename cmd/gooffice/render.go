package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	gooffice "github.com/VantageDataChat/GoOffice"
)

var renderCmd = &cobra.Command{
	Use:   "render SPEC OUT [SPEC OUT ...]",
	Short: "Render one or more spec files, inferring the format from each output extension",
	Long: "Renders each SPEC/OUT pair. The document format is inferred from the " +
		"output extension (.pptx, .xlsx or .docx). Pairs render concurrently; " +
		"each pair must target a distinct output path.",
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("expected SPEC OUT pairs, got %d arguments", len(args))
		}
		return nil
	},
	RunE: runRender,
}

var renderRoot string

func init() {
	renderCmd.Flags().StringVarP(&renderRoot, "root", "r", ".", "Directory output and resource paths resolve against")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	var g errgroup.Group
	results := make([]*gooffice.RenderResult, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		specPath, outPath := args[i], args[i+1]
		slot := i / 2
		g.Go(func() error {
			kind, err := gooffice.KindForPath(outPath)
			if err != nil {
				return err
			}
			result, err := renderOne(engine, kind, specPath, outPath)
			if err != nil {
				return fmt.Errorf("%s: %w", specPath, err)
			}
			results[slot] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		printResult(cmd, result)
	}
	return nil
}

// newEngine builds the engine for the flag-selected root directory.
func newEngine() (*gooffice.Engine, error) {
	root, err := filepath.Abs(renderRoot)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}
	return gooffice.NewEngine(gooffice.Options{Root: root})
}

// renderOne reads one spec file and renders it as the given kind.
func renderOne(engine *gooffice.Engine, kind gooffice.Kind, specPath, outPath string) (*gooffice.RenderResult, error) {
	doc, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	return engine.Render(kind, outPath, doc)
}

func printResult(cmd *cobra.Command, result *gooffice.RenderResult) {
	cmd.Printf("%s (%s, %d items)\n", result.FilePath, result.Kind, result.Count)
	for _, warning := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "  warning: %s\n", warning)
	}
}
