// Package locate runs named patterns over text and reports each match at
// line/column coordinates alongside its byte range.
//
// regexp2 reports match offsets in runes, not bytes. A Locator converts
// them with a single forward pass of the position tracker per text, so
// multibyte characters before a match never skew its reported location.
package locate

import (
	"context"
	"fmt"
	"sort"

	"github.com/codetrail/charpos/pkg/pattern"
	"github.com/codetrail/charpos/pkg/position"
	"github.com/codetrail/charpos/pkg/tracker"
)

// Finding is a single pattern match located in text.
type Finding struct {
	PatternID   string
	PatternName string
	Path        string           // origin of the text, as given by the caller
	Span        position.Span    // byte range of the match
	Start       position.LineCol // position of the first matched character
	End         position.LineCol // position one past the last matched character
	Text        string           // the matched text
}

// Locator matches a compiled pattern set against texts.
//
// A Locator is read-only after construction and safe for concurrent use.
type Locator struct {
	compiled []*pattern.Compiled
}

// New compiles the given patterns into a Locator.
func New(patterns []*pattern.Pattern) (*Locator, error) {
	compiled, err := pattern.CompileAll(patterns)
	if err != nil {
		return nil, err
	}
	return &Locator{compiled: compiled}, nil
}

// PatternCount returns the number of compiled patterns.
func (l *Locator) PatternCount() int {
	return len(l.compiled)
}

// Locate runs every pattern over text and returns the findings ordered by
// byte offset. path is recorded on each finding but not opened or read.
// Zero-length matches are dropped.
func (l *Locator) Locate(ctx context.Context, path, text string) ([]Finding, error) {
	type rawMatch struct {
		cp                 *pattern.Compiled
		runeStart, runeEnd int
		text               string
	}

	var raws []rawMatch
	for _, cp := range l.compiled {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		m, err := cp.Re.FindStringMatch(text)
		if err != nil {
			return nil, fmt.Errorf("matching pattern %s: %w", cp.Pattern.ID, err)
		}
		for m != nil {
			if m.Length > 0 {
				raws = append(raws, rawMatch{
					cp:        cp,
					runeStart: m.Index,
					runeEnd:   m.Index + m.Length,
					text:      m.String(),
				})
			}
			m, err = cp.Re.FindNextMatch(m)
			if err != nil {
				return nil, fmt.Errorf("matching pattern %s: %w", cp.Pattern.ID, err)
			}
		}
	}
	if len(raws) == 0 {
		return nil, nil
	}

	idx := newRuneIndex(text)
	findings := make([]Finding, 0, len(raws))
	for _, r := range raws {
		start := idx.records[r.runeStart]
		last := idx.records[r.runeEnd-1]
		findings = append(findings, Finding{
			PatternID:   r.cp.Pattern.ID,
			PatternName: r.cp.Pattern.Name,
			Path:        path,
			Span:        position.Span{Start: start.Range.Start, End: last.Range.End},
			Start:       position.LineCol{Line: start.Line, Col: start.Col},
			End:         idx.at(r.runeEnd),
			Text:        r.text,
		})
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Span.Start != findings[j].Span.Start {
			return findings[i].Span.Start < findings[j].Span.Start
		}
		return findings[i].PatternID < findings[j].PatternID
	})
	return findings, nil
}

// LocateBytes is Locate for byte-slice content.
func (l *Locator) LocateBytes(ctx context.Context, path string, content []byte) ([]Finding, error) {
	return l.Locate(ctx, path, string(content))
}

// runeIndex maps rune indices to full position records for one text.
type runeIndex struct {
	records []position.LineColByteRange
	after   position.LineCol // position one past the final character
}

func newRuneIndex(text string) *runeIndex {
	idx := &runeIndex{after: position.LineCol{Line: 1, Col: 1}}
	it := tracker.New[position.LineColByteRange](text)
	for {
		p, c, ok := it.Next()
		if !ok {
			return idx
		}
		idx.records = append(idx.records, p)
		if c == '\n' {
			idx.after = position.LineCol{Line: p.Line + 1, Col: 1}
		} else {
			idx.after = position.LineCol{Line: p.Line, Col: p.Col + 1}
		}
	}
}

// at returns the line/column of the rune at index i, or the past-the-end
// position when i equals the rune count.
func (idx *runeIndex) at(i int) position.LineCol {
	if i < len(idx.records) {
		p := idx.records[i]
		return position.LineCol{Line: p.Line, Col: p.Col}
	}
	return idx.after
}
