// Package editor implements the prefix-commit phrase editor: candidates
// are chosen over the front of the segmented pinyin array until the whole
// array is consumed, then the composition is committed and learned.
package editor

import (
	"log/slog"
	"strings"

	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite"
	"github.com/inkstone-im/pinwheel/internal/convert"
	"github.com/inkstone-im/pinwheel/internal/domain"
)

// fillBatch is how many candidates one cursor drain requests.
const fillBatch = 16

// Editor tracks the selection state over one pinyin array. It is not safe
// for concurrent use.
type Editor struct {
	store    *sqlite.Store
	conv     convert.Converter
	opt      domain.Option
	modeSimp bool

	pinyin   domain.PinyinArray
	cursor   int // syllables consumed by selections
	selected []domain.Phrase

	candidates []domain.Phrase
	seen       map[string]bool
	cursorQ    *sqlite.Cursor
	exhausted  bool
}

// New creates an editor bound to a store and converter with an immutable
// option snapshot.
func New(store *sqlite.Store, conv convert.Converter, opt domain.Option, modeSimp bool) *Editor {
	if conv == nil {
		conv = convert.Identity{}
	}
	e := &Editor{store: store, conv: conv, opt: opt, modeSimp: modeSimp}
	e.rebuild()
	return e
}

// Update replaces the working pinyin array, clearing all selections and
// rebuilding the candidate view from offset zero.
func (e *Editor) Update(py domain.PinyinArray) {
	e.pinyin = py
	e.cursor = 0
	e.selected = nil
	e.rebuild()
}

// Reset drops the selections and cached candidates.
func (e *Editor) Reset() {
	e.pinyin = nil
	e.cursor = 0
	e.selected = nil
	e.rebuild()
}

// rebuild reopens the candidate stream at the current cursor.
func (e *Editor) rebuild() {
	e.candidates = nil
	e.seen = make(map[string]bool)
	e.cursorQ = nil
	e.exhausted = e.store == nil || e.cursor >= len(e.pinyin)
	if e.exhausted {
		return
	}

	maxLen := len(e.pinyin) - e.cursor
	if maxLen > domain.MaxPhraseLen {
		maxLen = domain.MaxPhraseLen
	}
	cur, err := e.store.NewCursor(e.pinyin, e.cursor, maxLen, e.opt)
	if err != nil {
		e.exhausted = true
		return
	}
	e.cursorQ = cur
}

// ensure fetches until at least n candidates are cached or the stream
// dries up. The dictionary emits longest phrases first, pre-sorted per
// length; the editor only drops repeated phrase texts.
func (e *Editor) ensure(n int) {
	for !e.exhausted && len(e.candidates) < n {
		var batch []domain.Phrase
		filled := e.cursorQ.Fill(&batch, fillBatch)
		if filled == 0 {
			e.exhausted = true
			return
		}
		for _, p := range batch {
			if e.seen[p.Text] {
				continue
			}
			e.seen[p.Text] = true
			e.candidates = append(e.candidates, p)
		}
	}
}

// Candidate returns the i-th candidate for the current position.
func (e *Editor) Candidate(i int) (domain.Phrase, bool) {
	e.ensure(i + 1)
	if i < 0 || i >= len(e.candidates) {
		return domain.Phrase{}, false
	}
	return e.candidates[i], true
}

// HasCandidate reports whether a candidate exists at index i.
func (e *Editor) HasCandidate(i int) bool {
	_, ok := e.Candidate(i)
	return ok
}

// Candidates drains the stream and returns the full ordered list.
func (e *Editor) Candidates() []domain.Phrase {
	for !e.exhausted {
		e.ensure(len(e.candidates) + fillBatch)
	}
	return e.candidates
}

// Select appends candidate i to the selections and advances the cursor by
// its syllable count. With the array fully consumed the candidate view
// becomes empty.
func (e *Editor) Select(i int) bool {
	p, ok := e.Candidate(i)
	if !ok {
		return false
	}
	e.selected = append(e.selected, p)
	e.cursor += p.Len()
	e.rebuild()
	return true
}

// Unselect pops the last selection, restoring the preceding candidate
// view.
func (e *Editor) Unselect() bool {
	if len(e.selected) == 0 {
		return false
	}
	last := e.selected[len(e.selected)-1]
	e.selected = e.selected[:len(e.selected)-1]
	e.cursor -= last.Len()
	e.rebuild()
	return true
}

// Cursor returns the number of syllables consumed by selections.
func (e *Editor) Cursor() int {
	return e.cursor
}

// CursorInChars returns the number of input characters covered by the
// consumed syllables.
func (e *Editor) CursorInChars() int {
	n := 0
	for i := 0; i < e.cursor && i < len(e.pinyin); i++ {
		n += e.pinyin[i].Len
	}
	return n
}

// Pinyin exposes the working array.
func (e *Editor) Pinyin() domain.PinyinArray {
	return e.pinyin
}

// Selected exposes the chosen phrases in order.
func (e *Editor) Selected() []domain.Phrase {
	return e.selected
}

// Empty reports whether the editor holds neither pinyin nor selections.
func (e *Editor) Empty() bool {
	return len(e.pinyin) == 0 && len(e.selected) == 0
}

// FullyConsumed reports whether selections cover the whole array.
func (e *Editor) FullyConsumed() bool {
	return len(e.pinyin) > 0 && e.cursor == len(e.pinyin)
}

// SelectedString concatenates the selections, converted to traditional
// forms unless simplified mode is on. Learning always records the
// unconverted text.
func (e *Editor) SelectedString() string {
	if len(e.selected) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range e.selected {
		b.WriteString(p.Text)
	}
	if e.modeSimp {
		return b.String()
	}
	return e.conv.SimpToTrad(b.String())
}

// Commit hands the selections to the dictionary for learning and returns
// their concatenation. The editor state is left for the caller to reset.
func (e *Editor) Commit() domain.Phrase {
	if len(e.selected) == 0 {
		return domain.Phrase{}
	}
	out := domain.ConcatAll(e.selected)
	if e.store != nil {
		if err := e.store.Learn(e.selected); err != nil {
			// Learning failures only degrade ranking; the commit itself
			// still reaches the caller.
			slog.Warn("phrase learning failed", "error", err)
		}
	}
	return out
}
