package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/codetrail/charpos/pkg/locate"
	"github.com/codetrail/charpos/pkg/pattern"
	"github.com/codetrail/charpos/pkg/walk"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	locatePatternsPath  string
	locateFormat        string
	locateColor         string
	locateIncludeHidden bool
	locateMaxFileSize   int64
)

// locateStyles holds color formatters for human-readable finding output.
type locateStyles struct {
	path    *color.Color
	pos     *color.Color
	name    *color.Color
	matched *color.Color
}

// newLocateStyles creates color formatters for locate output.
// enabled=false respects --color=never and non-terminal stdout.
func newLocateStyles(enabled bool) *locateStyles {
	s := &locateStyles{
		path:    color.New(color.Bold, color.FgHiWhite),
		pos:     color.New(color.FgHiGreen),
		name:    color.New(color.Bold, color.FgHiBlue),
		matched: color.New(color.FgYellow),
	}

	if !enabled {
		s.path.DisableColor()
		s.pos.DisableColor()
		s.name.DisableColor()
		s.matched.DisableColor()
	}

	return s
}

var locateCmd = &cobra.Command{
	Use:   "locate <target>",
	Short: "Find pattern matches at line:column coordinates",
	Long: `Run a set of named regex patterns over a file or directory tree and print
every match with its line, column, and byte range. Uses the builtin pattern
set unless --patterns points at a YAML file.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&locatePatternsPath, "patterns", "", "Path to a patterns YAML file")
	locateCmd.Flags().StringVar(&locateFormat, "format", "human", "Output format: human, json")
	locateCmd.Flags().StringVar(&locateColor, "color", "auto", "Color output: auto, always, never")
	locateCmd.Flags().BoolVar(&locateIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	locateCmd.Flags().Int64Var(&locateMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to scan (bytes)")
}

func runLocate(cmd *cobra.Command, args []string) error {
	target := args[0]

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("target does not exist: %s", target)
	}

	patterns, err := loadPatterns(locatePatternsPath)
	if err != nil {
		return fmt.Errorf("loading patterns: %w", err)
	}

	locator, err := locate.New(patterns)
	if err != nil {
		return fmt.Errorf("compiling patterns: %w", err)
	}

	ctx := context.Background()
	var findings []locate.Finding

	if info.IsDir() {
		var mu sync.Mutex
		walker := walk.New(walk.Config{
			Root:          target,
			IncludeHidden: locateIncludeHidden,
			MaxFileSize:   locateMaxFileSize,
		})
		err = walker.Walk(ctx, func(path string, content []byte) error {
			found, err := locator.LocateBytes(ctx, path, content)
			if err != nil {
				return err
			}
			mu.Lock()
			findings = append(findings, found...)
			mu.Unlock()
			return nil
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", target, err)
		}
		// Walk reads files in parallel, so merge order is arbitrary.
		sort.Slice(findings, func(i, j int) bool {
			if findings[i].Path != findings[j].Path {
				return findings[i].Path < findings[j].Path
			}
			return findings[i].Span.Start < findings[j].Span.Start
		})
	} else {
		content, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", target, err)
		}
		findings, err = locator.LocateBytes(ctx, target, content)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch locateFormat {
	case "human":
		return writeFindingsHuman(out, findings)
	case "json":
		return writeFindingsJSON(out, findings)
	default:
		return fmt.Errorf("unknown format: %s", locateFormat)
	}
}

func loadPatterns(path string) ([]*pattern.Pattern, error) {
	if path == "" {
		return pattern.Builtin()
	}
	return pattern.LoadFile(path)
}

func writeFindingsHuman(out io.Writer, findings []locate.Finding) error {
	styles := newLocateStyles(colorEnabled())

	for _, f := range findings {
		fmt.Fprintf(out, "%s:%s: %s %q (bytes %d-%d)\n",
			styles.path.Sprint(f.Path),
			styles.pos.Sprintf("%d:%d", f.Start.Line, f.Start.Col),
			styles.name.Sprint(f.PatternName),
			styles.matched.Sprint(f.Text),
			f.Span.Start, f.Span.End)
	}
	fmt.Fprintf(out, "\n%d finding(s)\n", len(findings))
	return nil
}

func writeFindingsJSON(out io.Writer, findings []locate.Finding) error {
	type row struct {
		Pattern   string `json:"pattern"`
		Name      string `json:"name"`
		Path      string `json:"path"`
		StartLine int    `json:"start_line"`
		StartCol  int    `json:"start_col"`
		EndLine   int    `json:"end_line"`
		EndCol    int    `json:"end_col"`
		ByteStart int    `json:"byte_start"`
		ByteEnd   int    `json:"byte_end"`
		Text      string `json:"text"`
	}

	rows := make([]row, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, row{
			Pattern:   f.PatternID,
			Name:      f.PatternName,
			Path:      f.Path,
			StartLine: f.Start.Line,
			StartCol:  f.Start.Col,
			EndLine:   f.End.Line,
			EndCol:    f.End.Col,
			ByteStart: f.Span.Start,
			ByteEnd:   f.Span.End,
			Text:      f.Text,
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// colorEnabled resolves the --color flag against the terminal and the
// NO_COLOR convention.
func colorEnabled() bool {
	switch locateColor {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
