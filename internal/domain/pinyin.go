package domain

// MaxPinyinLen bounds the raw key buffer of a context, for both Latin
// full-pinyin text and bopomofo key text.
const MaxPinyinLen = 64

// Pinyin describes one recognized syllable occurrence in the input.
// Entries are interned by the parser and shared; callers must not mutate
// them.
type Pinyin struct {
	// Text is the canonical Latin spelling ("ni", "hao", "zh").
	Text string
	// Bopomofo is the glyph rendering of the syllable, without tone.
	Bopomofo string
	// Len is the number of input characters the entry consumed.
	Len int
	// ID holds up to three identifier triples. ID[0] is the exact match;
	// ID[1] and ID[2] are fuzzy alternatives consulted by the query
	// builder. Unpopulated alternatives are the zero SyllableID.
	ID [3]SyllableID
}

// PinyinArray is the ordered segmentation of the current buffer prefix.
type PinyinArray []*Pinyin

// CharLen returns the total number of input characters covered by the
// array; it equals the parser's consumed-character count.
func (a PinyinArray) CharLen() int {
	n := 0
	for _, p := range a {
		n += p.Len
	}
	return n
}
