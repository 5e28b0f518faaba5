package main

import (
	"github.com/spf13/cobra"

	"github.com/VantageDataChat/GoOffice/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in presentation theme presets",
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, _ []string) {
	for _, name := range theme.Names() {
		t := theme.Resolve(name, nil)
		marker := " "
		if name == theme.DefaultName {
			marker = "*"
		}
		cmd.Printf("%s %-10s primary %s  accent %s\n", marker, name, t.Primary.Hex(), t.Accent.Hex())
	}
}
