package main

import (
	"github.com/spf13/cobra"

	gooffice "github.com/VantageDataChat/GoOffice"
)

var deckCmd = &cobra.Command{
	Use:   "deck SPEC OUT",
	Short: "Render a presentation spec to a .pptx file",
	Args:  cobra.ExactArgs(2),
	RunE:  runKind(gooffice.KindPresentation),
}

var workbookCmd = &cobra.Command{
	Use:   "workbook SPEC OUT",
	Short: "Render a spreadsheet spec to an .xlsx file",
	Args:  cobra.ExactArgs(2),
	RunE:  runKind(gooffice.KindWorkbook),
}

var reportCmd = &cobra.Command{
	Use:   "report SPEC OUT",
	Short: "Render a word-processor spec to a .docx file",
	Args:  cobra.ExactArgs(2),
	RunE:  runKind(gooffice.KindReport),
}

func init() {
	for _, cmd := range []*cobra.Command{deckCmd, workbookCmd, reportCmd} {
		cmd.Flags().StringVarP(&renderRoot, "root", "r", ".", "Directory output and resource paths resolve against")
		rootCmd.AddCommand(cmd)
	}
}

// runKind renders a single spec with a fixed document kind, regardless
// of the output extension.
func runKind(kind gooffice.Kind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		result, err := renderOne(engine, kind, args[0], args[1])
		if err != nil {
			return err
		}
		printResult(cmd, result)
		return nil
	}
}
