package parser

import "github.com/inkstone-im/pinwheel/internal/domain"

// FullPinyin is the default greedy longest-match segmenter for Latin
// full-pinyin text with apostrophe separators.
type FullPinyin struct{}

// Parse implements PinyinParser. Separator apostrophes are charged to the
// syllable they follow so that the per-entry lengths sum to the consumed
// count.
func (FullPinyin) Parse(text string, length int, opt domain.Option, maxResult int) (domain.PinyinArray, int) {
	if length > len(text) {
		length = len(text)
	}

	var arr domain.PinyinArray
	pos := 0
	for len(arr) < maxResult && pos < length {
		entry := matchSyllable(text[pos:length], opt)
		if entry == nil {
			break
		}
		n := entry.Len

		// Attach any separator apostrophes to this syllable.
		for pos+n < length && text[pos+n] == '\'' {
			n++
		}

		arr = append(arr, withLen(entry, n))
		pos += n
	}
	return arr, pos
}

// matchSyllable finds the longest full syllable at the head of text,
// falling back to a bare initial when incomplete pinyin is enabled.
func matchSyllable(text string, opt domain.Option) *domain.Pinyin {
	limit := maxSyllableLen
	if len(text) < limit {
		limit = len(text)
	}
	for n := limit; n > 0; n-- {
		if entry, ok := syllables[text[:n]]; ok {
			return entry
		}
	}

	if opt&domain.OptionIncompletePinyin == 0 {
		return nil
	}
	for n := 2; n > 0; n-- {
		if n > len(text) {
			continue
		}
		if entry, ok := initials[text[:n]]; ok {
			return entry
		}
	}
	return nil
}
