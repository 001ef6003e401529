// Package level turns raw proficiency values into a (label text, score) pair.
//
// Source data writes proficiency either as a number or as a label, sometimes
// prefixed by free-text commentary: "高", "全能, 高", "技术弱, 中". The last
// comma-delimited segment selects the score; earlier segments are kept only as
// part of the original text. Text whose selector is not in the table keeps its
// text and gets no score, e.g. "全能，高" with a fullwidth comma.
package level

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	LabelLow  = "低"
	LabelMid  = "中"
	LabelHigh = "高"
)

// Table maps a selector label to its score. It is read-only after construction.
type Table struct {
	scores map[string]float64
	fold   bool
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithCompatibilityFolding makes the table compare text after Unicode NFKC
// folding, so a fullwidth comma splits like "," and compatibility forms of a
// label match it. The default table compares bytes exactly.
func WithCompatibilityFolding() TableOption {
	return func(t *Table) { t.fold = true }
}

var defaultTable = NewTable(map[string]float64{
	LabelLow:  2,
	LabelMid:  3,
	LabelHigh: 4,
})

// DefaultTable is the three-point scale used for every ability category.
func DefaultTable() Table {
	return defaultTable
}

func NewTable(scores map[string]float64, opts ...TableOption) Table {
	t := Table{}
	for _, opt := range opts {
		opt(&t)
	}
	t.scores = make(map[string]float64, len(scores))
	for label, score := range scores {
		t.scores[t.key(label)] = score
	}
	return t
}

func (t Table) Lookup(label string) (float64, bool) {
	score, ok := t.scores[t.key(label)]
	return score, ok
}

func (t Table) key(s string) string {
	if t.fold {
		return norm.NFKC.String(s)
	}
	return s
}

func (t Table) Len() int { return len(t.scores) }

// Result is the normalized form of one value. Nil fields are stored as NULL.
type Result struct {
	Text  *string
	Score *float64
}

// Classified reports whether the value carried a label that produced a score.
func (r Result) Classified() bool {
	return r.Text != nil && r.Score != nil
}

// Unclassified reports a label that was kept but could not be scored.
func (r Result) Unclassified() bool {
	return r.Text != nil && r.Score == nil
}

func Parse(v Value) Result {
	return DefaultTable().Parse(v)
}

func (t Table) Parse(v Value) Result {
	switch v.Kind() {
	case KindNumeric:
		score := v.Number()
		return Result{Score: &score}
	case KindText:
		text := v.String()
		out := Result{Text: &text}
		if score, ok := t.Lookup(Selector(t.key(text))); ok {
			out.Score = &score
		}
		return out
	default:
		return Result{}
	}
}

// Selector returns the trimmed last comma-delimited segment of s. Only the
// ASCII comma delimits.
func Selector(s string) string {
	parts := strings.Split(s, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

// Qualifiers returns the trimmed segments preceding the selector.
func Qualifiers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
