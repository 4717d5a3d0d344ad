package ime

import (
	"strings"

	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite"
	"github.com/inkstone-im/pinwheel/internal/convert"
	"github.com/inkstone-im/pinwheel/internal/domain"
	"github.com/inkstone-im/pinwheel/internal/parser"
	"github.com/inkstone-im/pinwheel/internal/special"
)

// BopomofoContext accepts keyboard keys that map to bopomofo glyphs under
// the active layout schema.
type BopomofoContext struct {
	*Context
	parser parser.BopomofoParser
	schema BopomofoSchema
}

// NewBopomofoContext builds a bopomofo context on the standard keyboard.
// A nil parser selects the built-in segmenter.
func NewBopomofoContext(store *sqlite.Store, conv convert.Converter,
	specials *special.Table, p parser.BopomofoParser, cfg ContextConfig, obs Observer) *BopomofoContext {
	if p == nil {
		p = parser.DefaultBopomofo{}
	}
	bc := &BopomofoContext{parser: p, schema: KeyboardStandard}
	bc.Context = newContext((*bopomofoVariant)(bc), store, conv, specials, cfg, obs)
	return bc
}

// Schema returns the active keyboard layout.
func (bc *BopomofoContext) Schema() BopomofoSchema {
	return bc.schema
}

// SetSchema switches the keyboard layout. Out-of-range values are
// rejected with no state change.
func (bc *BopomofoContext) SetSchema(schema BopomofoSchema) bool {
	if schema < 0 || schema >= keyboardLast {
		return false
	}
	bc.schema = schema
	return true
}

// glyphOf resolves a key under the active schema; zero means unmapped.
func (bc *BopomofoContext) glyphOf(ch byte) rune {
	return bopomofoKeyboards[bc.schema][ch]
}

// glyphs transliterates a key string through the active schema.
func (bc *BopomofoContext) glyphs(keys string) string {
	var b strings.Builder
	for i := 0; i < len(keys); i++ {
		if g := bc.glyphOf(keys[i]); g != 0 {
			b.WriteRune(g)
		}
	}
	return b.String()
}

// bopomofoVariant adapts BopomofoContext to the core's variant policy.
type bopomofoVariant BopomofoContext

func (v *bopomofoVariant) ctx() *Context { return v.Context }

func (v *bopomofoVariant) bc() *BopomofoContext { return (*BopomofoContext)(v) }

func (v *bopomofoVariant) accept(ch byte) bool {
	return v.bc().glyphOf(ch) != 0
}

func (v *bopomofoVariant) updatePinyin() {
	c := v.ctx()
	if len(c.text) == 0 {
		c.pinyin = nil
		c.pinyinLen = 0
	} else {
		glyphs := make([]rune, 0, len(c.text))
		for i := 0; i < len(c.text); i++ {
			glyphs = append(glyphs, v.bc().glyphOf(c.text[i]))
		}
		c.pinyin, c.pinyinLen = v.parser.ParseBopomofo(glyphs, c.cursor,
			c.cfg.Option, domain.MaxPhraseLen)
	}
	c.updatePhraseEditor()
	c.update()
}

func (v *bopomofoVariant) updatePreedit() {
	c := v.ctx()
	if c.editor.Empty() && len(c.text) == 0 {
		c.setPreedit(PreeditText{})
		return
	}

	selected := c.editor.SelectedString()
	var p PreeditText

	switch {
	case c.selectedSpecial != "":
		p.Selected = selected + c.selectedSpecial
		p.Rest = c.textAfterCursor()

	case c.hasCandidate(c.focused):
		p.Selected = selected
		if c.focused < len(c.specialPhrases) {
			p.Candidate = c.specialPhrases[c.focused]
			p.Rest = c.textAfterCursor()
			break
		}

		cand, _ := c.editor.Candidate(c.focused - len(c.specialPhrases))
		if c.cursor == len(c.text) {
			text := cand.Text
			if !c.cfg.ModeSimp {
				text = c.conv.SimpToTrad(text)
			}
			p.Candidate = text
			p.Rest = v.bc().glyphs(c.textAfterParsed())
		} else {
			// Mid-buffer focus: the whole glyph stream with a space at
			// the cursor position.
			var b strings.Builder
			for i := 0; i < len(c.text); i++ {
				if i == c.cursor {
					b.WriteByte(' ')
				}
				b.WriteRune(v.bc().glyphOf(c.text[i]))
			}
			p.Candidate = b.String()
		}

	default:
		p.Selected = selected
		p.Rest = v.bc().glyphs(c.textAfterParsed())
	}

	c.setPreedit(p)
}

func (v *bopomofoVariant) updateAuxiliary() {
	c := v.ctx()
	if len(c.text) == 0 || !c.hasCandidate(0) {
		c.setAuxiliary("")
		return
	}

	var b strings.Builder
	if c.selectedSpecial == "" {
		// Unconsumed syllables as glyph runs with their trailing tone
		// keys re-attached, comma separated.
		si := c.editor.CursorInChars()
		for i := c.editor.Cursor(); i < len(c.pinyin); i++ {
			if i != c.editor.Cursor() {
				b.WriteByte(',')
			}
			b.WriteString(c.pinyin[i].Bopomofo)
			for _, g := range c.pinyin[i].Bopomofo {
				if si < len(c.text) && v.bc().glyphOf(c.text[si]) == g {
					si++
				}
			}
			if si < len(c.text) {
				if g := v.bc().glyphOf(c.text[si]); parser.IsTone(g) {
					b.WriteRune(g)
					si++
				}
			}
		}

		// Unparsed tail with the cursor marker inside the glyph stream.
		for i := c.pinyinLen; i <= len(c.text); i++ {
			if c.cursor == i {
				b.WriteByte('|')
			}
			if i < len(c.text) {
				b.WriteRune(v.bc().glyphOf(c.text[i]))
			}
		}
	} else if c.cursor < len(c.text) {
		b.WriteByte('|')
		b.WriteString(c.textAfterCursor())
	}

	c.setAuxiliary(b.String())
}

func (v *bopomofoVariant) commit(t CommitType) {
	c := v.ctx()
	if len(c.text) == 0 {
		return
	}

	var out string
	switch t {
	case TypeConverted:
		c.selectFocused()
		out = c.editor.SelectedString()
		if c.selectedSpecial == "" {
			out += v.bc().glyphs(c.textAfterPinyin(c.editor.Cursor()))
		} else {
			out += c.selectedSpecial + v.bc().glyphs(c.textAfterCursor())
		}
		c.editor.Commit()
	case TypePhonetic:
		out = v.bc().glyphs(string(c.text))
	default:
		out = string(c.text)
		c.editor.Reset()
	}

	c.text = nil
	c.cursor = 0
	c.resetContext()
	c.updateInputText()
	c.updateCursor()
	c.update()
	c.commitText(out)
}
