package ime

import (
	"strings"

	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite"
	"github.com/inkstone-im/pinwheel/internal/convert"
	"github.com/inkstone-im/pinwheel/internal/domain"
	"github.com/inkstone-im/pinwheel/internal/parser"
	"github.com/inkstone-im/pinwheel/internal/special"
)

// FullPinyinContext accepts lowercase Latin keys plus the apostrophe
// separator and segments them as Hanyu Pinyin.
type FullPinyinContext struct {
	*Context
	parser parser.PinyinParser
}

// NewFullPinyinContext builds a full-pinyin context. A nil parser selects
// the built-in segmenter.
func NewFullPinyinContext(store *sqlite.Store, conv convert.Converter,
	specials *special.Table, p parser.PinyinParser, cfg ContextConfig, obs Observer) *FullPinyinContext {
	if p == nil {
		p = parser.FullPinyin{}
	}
	fc := &FullPinyinContext{parser: p}
	fc.Context = newContext((*fullPinyinVariant)(fc), store, conv, specials, cfg, obs)
	return fc
}

// fullPinyinVariant adapts FullPinyinContext to the core's variant policy.
type fullPinyinVariant FullPinyinContext

func (v *fullPinyinVariant) ctx() *Context { return v.Context }

func (v *fullPinyinVariant) accept(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || ch == '\''
}

func (v *fullPinyinVariant) updatePinyin() {
	c := v.ctx()
	if len(c.text) == 0 {
		c.pinyin = nil
		c.pinyinLen = 0
	} else {
		c.pinyin, c.pinyinLen = v.parser.Parse(string(c.text), c.cursor,
			c.cfg.Option, domain.MaxPhraseLen)
	}
	c.updatePhraseEditor()
	c.update()
}

func (v *fullPinyinVariant) updatePreedit() {
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
			p.Rest = c.textAfterPinyin(c.editor.Cursor() + cand.Len())
		} else {
			// Mid-buffer focus: reveal the raw spellings of the in-focus
			// segment with a cursor marker.
			begin := c.editor.Cursor()
			end := begin + cand.Len()
			var b strings.Builder
			for i := begin; i < end && i < len(c.pinyin); i++ {
				if i > begin {
					b.WriteByte(' ')
				}
				b.WriteString(c.pinyin[i].Text)
			}
			b.WriteByte('|')
			b.WriteString(c.textAfterPinyin(end))
			p.Candidate = b.String()
		}

	default:
		p.Selected = selected
		p.Rest = c.textAfterParsed()
	}

	c.setPreedit(p)
}

func (v *fullPinyinVariant) updateAuxiliary() {
	c := v.ctx()
	if len(c.text) == 0 || !c.hasCandidate(0) {
		c.setAuxiliary("")
		return
	}

	var b strings.Builder
	if c.selectedSpecial == "" {
		if c.focused < len(c.specialPhrases) {
			begin := c.editor.CursorInChars()
			b.WriteString(string(c.text[begin:c.cursor]))
			b.WriteByte('|')
			b.WriteString(c.textAfterCursor())
		} else {
			for i := c.editor.Cursor(); i < len(c.pinyin); i++ {
				if i != c.editor.Cursor() {
					b.WriteByte(' ')
				}
				b.WriteString(c.pinyin[i].Text)
			}
			if c.pinyinLen == c.cursor {
				b.WriteByte('|')
				b.WriteString(c.textAfterParsed())
			} else {
				b.WriteByte(' ')
				b.WriteString(string(c.text[c.pinyinLen:c.cursor]))
				b.WriteByte('|')
				b.WriteString(c.textAfterCursor())
			}
		}
	} else if c.cursor < len(c.text) {
		b.WriteByte('|')
		b.WriteString(c.textAfterCursor())
	}

	c.setAuxiliary(b.String())
}

func (v *fullPinyinVariant) commit(t CommitType) {
	c := v.ctx()
	if len(c.text) == 0 {
		return
	}

	var out string
	if t == TypeConverted {
		c.selectFocused()
		out = c.editor.SelectedString()
		if c.selectedSpecial == "" {
			out += c.textAfterPinyin(c.editor.Cursor())
		} else {
			out += c.selectedSpecial + c.textAfterCursor()
		}
		c.editor.Commit()
	} else {
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
