package ime

import (
	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite"
	"github.com/inkstone-im/pinwheel/internal/convert"
	"github.com/inkstone-im/pinwheel/internal/domain"
	"github.com/inkstone-im/pinwheel/internal/editor"
	"github.com/inkstone-im/pinwheel/internal/special"
)

// ContextConfig is the immutable per-context configuration snapshot.
type ContextConfig struct {
	Option   domain.Option
	ModeSimp bool
}

// variant is the policy that distinguishes the full-pinyin and bopomofo
// instantiations of the shared core.
type variant interface {
	accept(ch byte) bool
	updatePinyin()
	updatePreedit()
	updateAuxiliary()
	commit(t CommitType)
}

// Context is the shared phonetic context core. It is single-threaded
// cooperative: every operation is synchronous and observer callbacks are
// invoked inline before the operation returns.
type Context struct {
	v        variant
	store    *sqlite.Store
	conv     convert.Converter
	specials *special.Table
	observer Observer
	cfg      ContextConfig

	text   []byte
	cursor int

	pinyin    domain.PinyinArray
	pinyinLen int

	editor *editor.Editor

	specialPhrases  []string
	selectedSpecial string
	focused         int

	inputText string
	preedit   PreeditText
	auxText   string

	dirty dirtyFlag
}

func newContext(v variant, store *sqlite.Store, conv convert.Converter,
	specials *special.Table, cfg ContextConfig, obs Observer) *Context {
	if conv == nil {
		conv = convert.Identity{}
	}
	return &Context{
		v:        v,
		store:    store,
		conv:     conv,
		specials: specials,
		observer: obs,
		cfg:      cfg,
		editor:   editor.New(store, conv, cfg.Option, cfg.ModeSimp),
	}
}

// ---------------------------------------------------------------------------
// Derived-state accessors
// ---------------------------------------------------------------------------

// InputText returns the raw key buffer as last published.
func (c *Context) InputText() string { return c.inputText }

// Cursor returns the byte index of the cursor within the buffer.
func (c *Context) Cursor() int { return c.cursor }

// PreeditText returns the current composition display.
func (c *Context) PreeditText() PreeditText { return c.preedit }

// AuxiliaryText returns the current status line.
func (c *Context) AuxiliaryText() string { return c.auxText }

// FocusedCandidate returns the index of the highlighted candidate.
func (c *Context) FocusedCandidate() int { return c.focused }

// Pinyin returns the current segmentation and its consumed length.
func (c *Context) Pinyin() (domain.PinyinArray, int) { return c.pinyin, c.pinyinLen }

// Candidate describes one entry of the flat candidate list: special
// phrases first, dictionary phrases after.
type Candidate struct {
	Text    string
	Special bool
	Phrase  domain.Phrase
}

// Candidate returns the i-th candidate of the flat list.
func (c *Context) Candidate(i int) (Candidate, bool) {
	if i < 0 {
		return Candidate{}, false
	}
	if i < len(c.specialPhrases) {
		return Candidate{Text: c.specialPhrases[i], Special: true}, true
	}
	p, ok := c.editor.Candidate(i - len(c.specialPhrases))
	if !ok {
		return Candidate{}, false
	}
	text := p.Text
	if !c.cfg.ModeSimp {
		text = c.conv.SimpToTrad(text)
	}
	return Candidate{Text: text, Phrase: p}, true
}

// Candidates returns the full flat candidate list.
func (c *Context) Candidates() []Candidate {
	out := make([]Candidate, 0, len(c.specialPhrases))
	for _, s := range c.specialPhrases {
		out = append(out, Candidate{Text: s, Special: true})
	}
	for _, p := range c.editor.Candidates() {
		text := p.Text
		if !c.cfg.ModeSimp {
			text = c.conv.SimpToTrad(text)
		}
		out = append(out, Candidate{Text: text, Phrase: p})
	}
	return out
}

func (c *Context) hasCandidate(i int) bool {
	if i < 0 {
		return false
	}
	if i < len(c.specialPhrases) {
		return true
	}
	return c.editor.HasCandidate(i - len(c.specialPhrases))
}

// ---------------------------------------------------------------------------
// Buffer edits
// ---------------------------------------------------------------------------

// Insert accepts one key. Rejected keys return false with no state change;
// at capacity the key is swallowed but reports true.
func (c *Context) Insert(ch byte) bool {
	if !c.v.accept(ch) {
		return false
	}
	defer c.flush()

	if len(c.text) >= domain.MaxPinyinLen {
		return true
	}

	c.text = append(c.text, 0)
	copy(c.text[c.cursor+1:], c.text[c.cursor:])
	c.text[c.cursor] = ch
	c.cursor++

	c.updateInputText()
	c.updateCursor()

	switch {
	case c.cfg.Option&domain.OptionIncompletePinyin == 0:
		c.updateSpecialPhrases()
		c.v.updatePinyin()
	case c.cursor <= c.pinyinLen+2:
		c.updateSpecialPhrases()
		c.v.updatePinyin()
	default:
		// Far past the parsed prefix the segmentation cannot change; only
		// the special phrases and derived texts need refreshing.
		if c.updateSpecialPhrases() {
			c.update()
		} else {
			c.v.updatePreedit()
			c.v.updateAuxiliary()
		}
	}
	return true
}

// RemoveCharBefore deletes the character left of the cursor.
func (c *Context) RemoveCharBefore() bool {
	if c.cursor == 0 {
		return false
	}
	defer c.flush()

	c.cursor--
	c.text = append(c.text[:c.cursor], c.text[c.cursor+1:]...)
	c.updateInputText()
	c.updateCursor()
	c.updateSpecialPhrases()
	c.v.updatePinyin()
	return true
}

// RemoveCharAfter deletes the character right of the cursor. The
// segmentation covers only the prefix before the cursor, so it stays
// valid.
func (c *Context) RemoveCharAfter() bool {
	if c.cursor == len(c.text) {
		return false
	}
	defer c.flush()

	c.text = append(c.text[:c.cursor], c.text[c.cursor+1:]...)
	c.updateInputText()
	c.v.updatePreedit()
	c.v.updateAuxiliary()
	return true
}

// RemoveWordBefore deletes back to the previous syllable boundary, or to
// the end of the parsed prefix when the cursor is past it.
func (c *Context) RemoveWordBefore() bool {
	if c.cursor == 0 {
		return false
	}
	defer c.flush()

	var to int
	if c.cursor > c.pinyinLen {
		to = c.pinyinLen
	} else {
		last := c.pinyin[len(c.pinyin)-1]
		to = c.cursor - last.Len
		c.pinyinLen -= last.Len
		c.pinyin = c.pinyin[:len(c.pinyin)-1]
	}

	c.text = append(c.text[:to], c.text[c.cursor:]...)
	c.cursor = to
	c.updateInputText()
	c.updateCursor()
	c.updateSpecialPhrases()
	c.updatePhraseEditor()
	c.update()
	return true
}

// RemoveWordAfter erases from the cursor to the end of the buffer.
func (c *Context) RemoveWordAfter() bool {
	if c.cursor == len(c.text) {
		return false
	}
	defer c.flush()

	c.text = c.text[:c.cursor]
	c.updateInputText()
	c.v.updatePreedit()
	c.v.updateAuxiliary()
	return true
}

// ---------------------------------------------------------------------------
// Cursor movement
// ---------------------------------------------------------------------------

// MoveCursorLeft moves one character left.
func (c *Context) MoveCursorLeft() bool {
	if c.cursor == 0 {
		return false
	}
	defer c.flush()

	c.cursor--
	c.updateCursor()
	c.updateSpecialPhrases()
	c.v.updatePinyin()
	return true
}

// MoveCursorRight moves one character right.
func (c *Context) MoveCursorRight() bool {
	if c.cursor == len(c.text) {
		return false
	}
	defer c.flush()

	c.cursor++
	c.updateCursor()
	c.updateSpecialPhrases()
	c.v.updatePinyin()
	return true
}

// MoveCursorLeftByWord moves back one syllable, or to the end of the
// parsed prefix when the cursor is past it.
func (c *Context) MoveCursorLeftByWord() bool {
	if c.cursor == 0 {
		return false
	}
	defer c.flush()

	if c.cursor > c.pinyinLen {
		c.cursor = c.pinyinLen
	} else {
		last := c.pinyin[len(c.pinyin)-1]
		c.cursor -= last.Len
		c.pinyinLen -= last.Len
		c.pinyin = c.pinyin[:len(c.pinyin)-1]
	}

	c.updateCursor()
	c.updateSpecialPhrases()
	c.updatePhraseEditor()
	c.update()
	return true
}

// MoveCursorRightByWord moves to the end of the buffer.
func (c *Context) MoveCursorRightByWord() bool {
	return c.MoveCursorToEnd()
}

// MoveCursorToBegin moves to the start, emptying the segmentation.
func (c *Context) MoveCursorToBegin() bool {
	if c.cursor == 0 {
		return false
	}
	defer c.flush()

	c.cursor = 0
	c.pinyin = nil
	c.pinyinLen = 0

	c.updateCursor()
	c.updateSpecialPhrases()
	c.updatePhraseEditor()
	c.update()
	return true
}

// MoveCursorToEnd moves to the end of the buffer.
func (c *Context) MoveCursorToEnd() bool {
	if c.cursor == len(c.text) {
		return false
	}
	defer c.flush()

	c.cursor = len(c.text)
	c.updateCursor()
	c.updateSpecialPhrases()
	c.v.updatePinyin()
	return true
}

// ---------------------------------------------------------------------------
// Candidate operations
// ---------------------------------------------------------------------------

// FocusCandidate highlights candidate i.
func (c *Context) FocusCandidate(i int) bool {
	if !c.hasCandidate(i) {
		return false
	}
	defer c.flush()

	c.focused = i
	c.v.updatePreedit()
	c.v.updateAuxiliary()
	return true
}

// FocusCandidatePrev highlights the previous candidate.
func (c *Context) FocusCandidatePrev() bool {
	if c.focused == 0 {
		return false
	}
	return c.FocusCandidate(c.focused - 1)
}

// FocusCandidateNext highlights the next candidate.
func (c *Context) FocusCandidateNext() bool {
	return c.FocusCandidate(c.focused + 1)
}

// SelectCandidate chooses candidate i. A special phrase becomes the
// committed prefix; a dictionary phrase advances the phrase editor.
func (c *Context) SelectCandidate(i int) bool {
	if !c.hasCandidate(i) {
		return false
	}
	defer c.flush()

	if i < len(c.specialPhrases) {
		c.selectedSpecial = c.specialPhrases[i]
		c.focused = 0
		c.update()
		return true
	}

	if !c.editor.Select(i - len(c.specialPhrases)) {
		return false
	}
	c.updateSpecialPhrases()
	c.update()
	return true
}

// UnselectCandidates pops the last phrase-editor selection.
func (c *Context) UnselectCandidates() bool {
	if !c.editor.Unselect() {
		return false
	}
	defer c.flush()

	c.updateSpecialPhrases()
	c.update()
	return true
}

// ResetCandidate removes a learned dictionary candidate from the user
// dictionary. Special phrases cannot be reset.
func (c *Context) ResetCandidate(i int) bool {
	if i < len(c.specialPhrases) {
		return false
	}
	p, ok := c.editor.Candidate(i - len(c.specialPhrases))
	if !ok {
		return false
	}
	defer c.flush()

	if c.store != nil {
		if err := c.store.Remove(p); err != nil {
			return false
		}
	}
	c.updatePhraseEditor()
	c.update()
	return true
}

// ---------------------------------------------------------------------------
// Reset and commit
// ---------------------------------------------------------------------------

// Reset restores the just-constructed state and notifies the observer.
func (c *Context) Reset() {
	defer c.flush()

	c.text = nil
	c.cursor = 0
	c.resetContext()
	c.updateInputText()
	c.updateCursor()
	c.update()
}

// Commit emits text to the observer per the commit type and resets the
// context.
func (c *Context) Commit(t CommitType) {
	defer c.flush()
	c.v.commit(t)
}

// selectFocused folds the highlighted candidate into the selection state
// ahead of a converted commit, mirroring the way an engine's space key
// chooses the focused candidate before committing.
func (c *Context) selectFocused() {
	if c.selectedSpecial != "" || !c.hasCandidate(c.focused) {
		return
	}
	if c.focused < len(c.specialPhrases) {
		c.selectedSpecial = c.specialPhrases[c.focused]
		return
	}
	c.editor.Select(c.focused - len(c.specialPhrases))
}

// resetContext clears everything derived from the buffer; the buffer
// itself is the caller's business.
func (c *Context) resetContext() {
	c.pinyin = nil
	c.pinyinLen = 0
	c.editor.Reset()
	c.specialPhrases = nil
	c.selectedSpecial = ""
	c.focused = 0
}

// ---------------------------------------------------------------------------
// Shared update helpers
// ---------------------------------------------------------------------------

func (c *Context) updateInputText() {
	c.inputText = string(c.text)
	c.dirty |= dirtyInput
}

func (c *Context) updateCursor() {
	c.dirty |= dirtyCursor
}

// updateSpecialPhrases recomputes the suggestions for the text between the
// consumed prefix and the cursor. It reports whether the visible set
// changed. Any pending special-phrase selection is dropped.
func (c *Context) updateSpecialPhrases() bool {
	oldSize := len(c.specialPhrases)
	c.specialPhrases = nil
	c.selectedSpecial = ""

	begin := c.editor.CursorInChars()
	if begin < c.cursor {
		c.specialPhrases = c.specials.Lookup(string(c.text[begin:c.cursor]))
	}
	return oldSize != 0 || len(c.specialPhrases) != 0
}

func (c *Context) updatePhraseEditor() {
	c.editor.Update(c.pinyin)
	c.dirty |= dirtyCandidates
}

// update refreshes the candidate-dependent derived state.
func (c *Context) update() {
	c.focused = 0
	c.dirty |= dirtyCandidates
	c.v.updatePreedit()
	c.v.updateAuxiliary()
}

func (c *Context) setPreedit(p PreeditText) {
	c.preedit = p
	c.dirty |= dirtyPreedit
}

func (c *Context) setAuxiliary(aux string) {
	c.auxText = aux
	c.dirty |= dirtyAuxiliary
}

// commitText publishes emitted text immediately; it is not a batched
// channel.
func (c *Context) commitText(text string) {
	if c.observer != nil {
		c.observer.CommitText(text)
	}
}

// flush delivers each dirty channel exactly once, in the fixed order.
func (c *Context) flush() {
	dirty := c.dirty
	c.dirty = 0
	if c.observer == nil || dirty == 0 {
		return
	}
	if dirty&dirtyInput != 0 {
		c.observer.InputTextChanged(c.inputText)
	}
	if dirty&dirtyCursor != 0 {
		c.observer.CursorChanged(c.cursor)
	}
	if dirty&dirtyPreedit != 0 {
		c.observer.PreeditTextChanged(c.preedit)
	}
	if dirty&dirtyAuxiliary != 0 {
		c.observer.AuxiliaryTextChanged(c.auxText)
	}
	if dirty&dirtyCandidates != 0 {
		c.observer.CandidatesChanged()
	}
}

// ---------------------------------------------------------------------------
// Buffer slicing helpers
// ---------------------------------------------------------------------------

// textAfterPinyin returns the buffer text after the characters consumed by
// the first `words` syllables.
func (c *Context) textAfterPinyin(words int) string {
	off := 0
	for i := 0; i < words && i < len(c.pinyin); i++ {
		off += c.pinyin[i].Len
	}
	if off > len(c.text) {
		off = len(c.text)
	}
	return string(c.text[off:])
}

// textAfterParsed returns the unparsed tail of the buffer.
func (c *Context) textAfterParsed() string {
	return string(c.text[c.pinyinLen:])
}

// textAfterCursor returns the buffer text after the cursor.
func (c *Context) textAfterCursor() string {
	return string(c.text[c.cursor:])
}
