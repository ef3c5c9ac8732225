package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/codetrail/charpos"
	"github.com/spf13/cobra"
)

var (
	annotateShape  string
	annotateFormat string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Print the position of every character in a file",
	Long: `Read a UTF-8 text file and print one record per character, carrying the
fields selected by --shape. Pass "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringVar(&annotateShape, "shape", "linecol", "Fields to report: line, col, linecol, byte, full")
	annotateCmd.Flags().StringVar(&annotateFormat, "format", "human", "Output format: human, json")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	content, err := readTarget(args[0])
	if err != nil {
		return err
	}
	text := string(content)
	out := cmd.OutOrStdout()

	switch annotateFormat {
	case "human":
		return writeAnnotateHuman(out, text, annotateShape)
	case "json":
		return writeAnnotateJSON(out, text, annotateShape)
	default:
		return fmt.Errorf("unknown format: %s", annotateFormat)
	}
}

func readTarget(target string) ([]byte, error) {
	if target == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", target, err)
	}
	return content, nil
}

func writeAnnotateHuman(out io.Writer, text, shape string) error {
	switch shape {
	case "line":
		for pos, c := range charpos.Chars[charpos.Line](text).All() {
			fmt.Fprintf(out, "[Ln %d] %q\n", pos, c)
		}
	case "col":
		for pos, c := range charpos.Chars[charpos.Col](text).All() {
			fmt.Fprintf(out, "[Col %d] %q\n", pos, c)
		}
	case "linecol":
		for pos, c := range charpos.Chars[charpos.LineCol](text).All() {
			fmt.Fprintf(out, "[Ln %d, Col %d] %q\n", pos.Line, pos.Col, c)
		}
	case "byte":
		for pos, c := range charpos.Chars[charpos.ByteRange](text).All() {
			fmt.Fprintf(out, "[%d-%d] %q\n", pos.Start, pos.End, c)
		}
	case "full":
		for pos, c := range charpos.Chars[charpos.LineColByteRange](text).All() {
			fmt.Fprintf(out, "[Ln %d, Col %d] %d-%d %q\n", pos.Line, pos.Col, pos.Range.Start, pos.Range.End, c)
		}
	default:
		return fmt.Errorf("unknown shape: %s", shape)
	}
	return nil
}

func writeAnnotateJSON(out io.Writer, text, shape string) error {
	rows, err := annotateRows(text, shape)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func annotateRows(text, shape string) (any, error) {
	switch shape {
	case "line":
		type row struct {
			Line int    `json:"line"`
			Char string `json:"char"`
		}
		rows := []row{}
		for pos, c := range charpos.Chars[charpos.Line](text).All() {
			rows = append(rows, row{Line: int(pos), Char: string(c)})
		}
		return rows, nil
	case "col":
		type row struct {
			Col  int    `json:"col"`
			Char string `json:"char"`
		}
		rows := []row{}
		for pos, c := range charpos.Chars[charpos.Col](text).All() {
			rows = append(rows, row{Col: int(pos), Char: string(c)})
		}
		return rows, nil
	case "linecol":
		type row struct {
			Line int    `json:"line"`
			Col  int    `json:"col"`
			Char string `json:"char"`
		}
		rows := []row{}
		for pos, c := range charpos.Chars[charpos.LineCol](text).All() {
			rows = append(rows, row{Line: pos.Line, Col: pos.Col, Char: string(c)})
		}
		return rows, nil
	case "byte":
		type row struct {
			Start int    `json:"start"`
			End   int    `json:"end"`
			Char  string `json:"char"`
		}
		rows := []row{}
		for pos, c := range charpos.Chars[charpos.ByteRange](text).All() {
			rows = append(rows, row{Start: pos.Start, End: pos.End, Char: string(c)})
		}
		return rows, nil
	case "full":
		type row struct {
			Line  int    `json:"line"`
			Col   int    `json:"col"`
			Start int    `json:"start"`
			End   int    `json:"end"`
			Char  string `json:"char"`
		}
		rows := []row{}
		for pos, c := range charpos.Chars[charpos.LineColByteRange](text).All() {
			rows = append(rows, row{
				Line:  pos.Line,
				Col:   pos.Col,
				Start: pos.Range.Start,
				End:   pos.Range.End,
				Char:  string(c),
			})
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unknown shape: %s", shape)
	}
}
