package domain

import "fmt"

// MaxPhraseLen is the longest phrase the dictionary stores, in syllables.
const MaxPhraseLen = 16

// Phrase is one dictionary candidate: a UTF-8 string plus the syllable ids
// it is indexed under and its static and learned frequencies.
type Phrase struct {
	Text     string
	Freq     uint32
	UserFreq uint32
	ID       []SyllableID
}

// Len returns the phrase length in syllables.
func (p Phrase) Len() int {
	return len(p.ID)
}

// Empty reports whether the phrase carries no syllables.
func (p Phrase) Empty() bool {
	return len(p.ID) == 0
}

// Concat appends b, extending both the text and the id array. It panics if
// the combined length exceeds MaxPhraseLen; callers are required to stay
// within the bound.
func (p Phrase) Concat(b Phrase) Phrase {
	if p.Len()+b.Len() > MaxPhraseLen {
		panic(fmt.Sprintf("domain: phrase concat %d+%d exceeds %d syllables",
			p.Len(), b.Len(), MaxPhraseLen))
	}
	ids := make([]SyllableID, 0, p.Len()+b.Len())
	ids = append(ids, p.ID...)
	ids = append(ids, b.ID...)
	return Phrase{
		Text: p.Text + b.Text,
		Freq: p.Freq,
		ID:   ids,
	}
}

// ConcatAll folds a slice of phrases into one. An empty input yields the
// zero phrase.
func ConcatAll(phrases []Phrase) Phrase {
	var out Phrase
	for _, p := range phrases {
		out = out.Concat(p)
	}
	return out
}
