package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "charpos",
	Short: "Charpos - per-character position reporting for UTF-8 text",
	Long: `Charpos pairs every character of a text with its 1-indexed line and
column and the byte range it occupies. Columns count Unicode scalar values,
so multibyte characters advance the column by one.

Use "annotate" to dump positions for a file, or "locate" to find pattern
matches at line:column coordinates across a file or directory tree.`,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
