// Package special supplies the non-dictionary candidates: fixed
// replacement strings bound to a typed trigger, and dynamic phrases whose
// payload is a template expanded against the wall clock at render time.
package special

import (
	"sort"

	"github.com/jonboulle/clockwork"
)

// Phrase is one special-phrase entry. Render may be called repeatedly; a
// dynamic phrase re-reads the clock on every call.
type Phrase interface {
	Render() string
}

// Static is a fixed replacement string.
type Static string

// Render returns the replacement verbatim.
func (s Static) Render() string { return string(s) }

// Table maps trigger strings to ordered special-phrase lists. It is
// immutable after construction; contexts share one table.
type Table struct {
	entries map[string][]Phrase
}

// NewTable builds a table from trigger → entries. The caller-supplied map
// is copied shallowly; the entry slices are retained.
func NewTable(entries map[string][]Phrase) *Table {
	m := make(map[string][]Phrase, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Table{entries: m}
}

// NewTableFromStrings builds a table from plain strings. Texts without "${"
// become static phrases; templates containing "${" become dynamic phrases on the given clock.
func NewTableFromStrings(entries map[string][]string, clock clockwork.Clock) *Table {
	m := make(map[string][]Phrase, len(entries))
	for trigger, texts := range entries {
		phrases := make([]Phrase, 0, len(texts))
		for _, text := range texts {
			if isTemplate(text) {
				phrases = append(phrases, NewDynamic(text, clock))
			} else {
				phrases = append(phrases, Static(text))
			}
		}
		m[trigger] = phrases
	}
	return &Table{entries: m}
}

// Lookup renders the phrases bound to trigger, in table order. A missing
// trigger yields nil.
func (t *Table) Lookup(trigger string) []string {
	if t == nil || trigger == "" {
		return nil
	}
	phrases, ok := t.entries[trigger]
	if !ok {
		return nil
	}
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = p.Render()
	}
	return out
}

// Triggers returns the sorted trigger strings, mainly for diagnostics.
func (t *Table) Triggers() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
