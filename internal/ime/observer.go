// Package ime holds the phonetic context state machine: an editable key
// buffer, its pinyin segmentation, the candidate views derived from the
// dictionary, and the observer notifications UIs hang off of. The
// full-pinyin and bopomofo variants are two instantiations of one core
// over a small variant policy.
package ime

// CommitType selects what Commit emits.
type CommitType int

const (
	// TypeConverted emits the composed Chinese text and feeds learning.
	TypeConverted CommitType = iota
	// TypeRaw emits the raw key buffer unchanged.
	TypeRaw
	// TypePhonetic emits the phonetic transliteration (bopomofo glyphs);
	// the full-pinyin variant treats it as raw.
	TypePhonetic
)

// PreeditText is the composition display: already-selected text, the
// highlighted candidate, and the untouched rest. The three fragments never
// overlap and concatenate to the renderer's view of the buffer.
type PreeditText struct {
	Selected  string
	Candidate string
	Rest      string
}

// String concatenates the fragments.
func (p PreeditText) String() string {
	return p.Selected + p.Candidate + p.Rest
}

// Observer receives context notifications. Callbacks run inline before the
// mutating operation returns; within one context their order follows the
// operations. Each changed channel fires at most once per public
// operation, in the order the interface lists them.
type Observer interface {
	CommitText(text string)
	InputTextChanged(text string)
	CursorChanged(cursor int)
	PreeditTextChanged(preedit PreeditText)
	AuxiliaryTextChanged(aux string)
	CandidatesChanged()
}

type dirtyFlag uint8

const (
	dirtyInput dirtyFlag = 1 << iota
	dirtyCursor
	dirtyPreedit
	dirtyAuxiliary
	dirtyCandidates
)
