// Package parser segments raw input into pinyin syllables. The contexts
// depend only on the two contracts below; the package also carries the
// default table-driven implementations used when no external segmenter is
// plugged in.
package parser

import "github.com/inkstone-im/pinwheel/internal/domain"

// PinyinParser segments Latin full-pinyin text.
type PinyinParser interface {
	// Parse segments text[:length] into at most maxResult entries and
	// returns the array plus the number of characters consumed, which may
	// be less than length when a trailing run is unparseable.
	Parse(text string, length int, opt domain.Option, maxResult int) (domain.PinyinArray, int)
}

// BopomofoParser segments a bopomofo glyph sequence.
type BopomofoParser interface {
	// ParseBopomofo consumes glyphs[:length] (tone marks included in the
	// per-entry lengths) and returns the array plus the number of glyphs
	// consumed.
	ParseBopomofo(glyphs []rune, length int, opt domain.Option, maxResult int) (domain.PinyinArray, int)
}
