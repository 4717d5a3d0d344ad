package parser

import "github.com/inkstone-im/pinwheel/internal/domain"

// Bopomofo tone marks (tones 2..5; tone 1 is unmarked).
const (
	ToneRising  = 'ˊ'
	ToneLow     = 'ˇ'
	ToneFalling = 'ˋ'
	ToneNeutral = '˙'
)

// IsTone reports whether r is one of the bopomofo tone marks.
func IsTone(r rune) bool {
	return r == ToneRising || r == ToneLow || r == ToneFalling || r == ToneNeutral
}

var shengGlyph = map[domain.Sheng]string{
	domain.ShengB:  "ㄅ",
	domain.ShengP:  "ㄆ",
	domain.ShengM:  "ㄇ",
	domain.ShengF:  "ㄈ",
	domain.ShengD:  "ㄉ",
	domain.ShengT:  "ㄊ",
	domain.ShengN:  "ㄋ",
	domain.ShengL:  "ㄌ",
	domain.ShengG:  "ㄍ",
	domain.ShengK:  "ㄎ",
	domain.ShengH:  "ㄏ",
	domain.ShengJ:  "ㄐ",
	domain.ShengQ:  "ㄑ",
	domain.ShengX:  "ㄒ",
	domain.ShengZh: "ㄓ",
	domain.ShengCh: "ㄔ",
	domain.ShengSh: "ㄕ",
	domain.ShengR:  "ㄖ",
	domain.ShengZ:  "ㄗ",
	domain.ShengC:  "ㄘ",
	domain.ShengS:  "ㄙ",
}

var glyphSheng = func() map[rune]domain.Sheng {
	m := make(map[rune]domain.Sheng, len(shengGlyph))
	for s, g := range shengGlyph {
		m[[]rune(g)[0]] = s
	}
	return m
}()

var yunGlyph = map[domain.Yun]string{
	domain.YunA:    "ㄚ",
	domain.YunAi:   "ㄞ",
	domain.YunAn:   "ㄢ",
	domain.YunAng:  "ㄤ",
	domain.YunAo:   "ㄠ",
	domain.YunE:    "ㄜ",
	domain.YunEi:   "ㄟ",
	domain.YunEn:   "ㄣ",
	domain.YunEng:  "ㄥ",
	domain.YunEr:   "ㄦ",
	domain.YunI:    "ㄧ",
	domain.YunIa:   "ㄧㄚ",
	domain.YunIan:  "ㄧㄢ",
	domain.YunIang: "ㄧㄤ",
	domain.YunIao:  "ㄧㄠ",
	domain.YunIe:   "ㄧㄝ",
	domain.YunIn:   "ㄧㄣ",
	domain.YunIng:  "ㄧㄥ",
	domain.YunIong: "ㄩㄥ",
	domain.YunIu:   "ㄧㄡ",
	domain.YunO:    "ㄛ",
	domain.YunOng:  "ㄨㄥ",
	domain.YunOu:   "ㄡ",
	domain.YunU:    "ㄨ",
	domain.YunUa:   "ㄨㄚ",
	domain.YunUai:  "ㄨㄞ",
	domain.YunUan:  "ㄨㄢ",
	domain.YunUang: "ㄨㄤ",
	domain.YunUe:   "ㄩㄝ",
	domain.YunUi:   "ㄨㄟ",
	domain.YunUn:   "ㄨㄣ",
	domain.YunUo:   "ㄨㄛ",
	domain.YunV:    "ㄩ",
	domain.YunVe:   "ㄩㄝ",
}

// sibilants write their empty-final "i" with the bare consonant glyph.
var sibilant = map[domain.Sheng]bool{
	domain.ShengZh: true,
	domain.ShengCh: true,
	domain.ShengSh: true,
	domain.ShengR:  true,
	domain.ShengZ:  true,
	domain.ShengC:  true,
	domain.ShengS:  true,
}

// bopomofoOf renders a syllable id pair as its glyph sequence (no tone).
func bopomofoOf(sheng domain.Sheng, yun domain.Yun) string {
	switch sheng {
	case domain.ShengZero:
		return yunGlyph[yun]
	case domain.ShengY:
		switch yun {
		case domain.YunI:
			return "ㄧ"
		case domain.YunU:
			return "ㄩ"
		case domain.YunUe:
			return "ㄩㄝ"
		case domain.YunUan:
			return "ㄩㄢ"
		case domain.YunUn:
			return "ㄩㄣ"
		case domain.YunOng:
			return "ㄩㄥ"
		case domain.YunE:
			return "ㄧㄝ"
		case domain.YunIn, domain.YunIng:
			return yunGlyph[yun]
		default:
			return "ㄧ" + yunGlyph[yun]
		}
	case domain.ShengW:
		if yun == domain.YunU {
			return "ㄨ"
		}
		return "ㄨ" + yunGlyph[yun]
	default:
		if yun == domain.YunI && sibilant[sheng] {
			return shengGlyph[sheng]
		}
		return shengGlyph[sheng] + yunGlyph[yun]
	}
}

// finalRunYun resolves a final-glyph run following a consonant.
var finalRunYun = map[string]domain.Yun{
	"ㄚ":  domain.YunA,
	"ㄞ":  domain.YunAi,
	"ㄢ":  domain.YunAn,
	"ㄤ":  domain.YunAng,
	"ㄠ":  domain.YunAo,
	"ㄜ":  domain.YunE,
	"ㄝ":  domain.YunE,
	"ㄟ":  domain.YunEi,
	"ㄣ":  domain.YunEn,
	"ㄥ":  domain.YunEng,
	"ㄦ":  domain.YunEr,
	"ㄧ":  domain.YunI,
	"ㄧㄚ": domain.YunIa,
	"ㄧㄢ": domain.YunIan,
	"ㄧㄤ": domain.YunIang,
	"ㄧㄠ": domain.YunIao,
	"ㄧㄝ": domain.YunIe,
	"ㄧㄣ": domain.YunIn,
	"ㄧㄥ": domain.YunIng,
	"ㄧㄡ": domain.YunIu,
	"ㄛ":  domain.YunO,
	"ㄨㄥ": domain.YunOng,
	"ㄡ":  domain.YunOu,
	"ㄨ":  domain.YunU,
	"ㄨㄚ": domain.YunUa,
	"ㄨㄞ": domain.YunUai,
	"ㄨㄢ": domain.YunUan,
	"ㄨㄤ": domain.YunUang,
	"ㄨㄟ": domain.YunUi,
	"ㄨㄣ": domain.YunUn,
	"ㄨㄛ": domain.YunUo,
	"ㄩ":  domain.YunV,
	"ㄩㄝ": domain.YunVe,
	"ㄩㄢ": domain.YunUan,
	"ㄩㄣ": domain.YunUn,
	"ㄩㄥ": domain.YunIong,
}

// standaloneYun resolves a run with no leading consonant to the (y/w/zero
// initial, final) spelling pair.
var standaloneYun = map[string]domain.SyllableID{
	"ㄚ":  {Sheng: domain.ShengZero, Yun: domain.YunA},
	"ㄞ":  {Sheng: domain.ShengZero, Yun: domain.YunAi},
	"ㄢ":  {Sheng: domain.ShengZero, Yun: domain.YunAn},
	"ㄤ":  {Sheng: domain.ShengZero, Yun: domain.YunAng},
	"ㄠ":  {Sheng: domain.ShengZero, Yun: domain.YunAo},
	"ㄜ":  {Sheng: domain.ShengZero, Yun: domain.YunE},
	"ㄟ":  {Sheng: domain.ShengZero, Yun: domain.YunEi},
	"ㄣ":  {Sheng: domain.ShengZero, Yun: domain.YunEn},
	"ㄥ":  {Sheng: domain.ShengZero, Yun: domain.YunEng},
	"ㄦ":  {Sheng: domain.ShengZero, Yun: domain.YunEr},
	"ㄛ":  {Sheng: domain.ShengZero, Yun: domain.YunO},
	"ㄡ":  {Sheng: domain.ShengZero, Yun: domain.YunOu},
	"ㄧ":  {Sheng: domain.ShengY, Yun: domain.YunI},
	"ㄧㄚ": {Sheng: domain.ShengY, Yun: domain.YunA},
	"ㄧㄝ": {Sheng: domain.ShengY, Yun: domain.YunE},
	"ㄧㄠ": {Sheng: domain.ShengY, Yun: domain.YunAo},
	"ㄧㄡ": {Sheng: domain.ShengY, Yun: domain.YunOu},
	"ㄧㄢ": {Sheng: domain.ShengY, Yun: domain.YunAn},
	"ㄧㄣ": {Sheng: domain.ShengY, Yun: domain.YunIn},
	"ㄧㄤ": {Sheng: domain.ShengY, Yun: domain.YunAng},
	"ㄧㄥ": {Sheng: domain.ShengY, Yun: domain.YunIng},
	"ㄨ":  {Sheng: domain.ShengW, Yun: domain.YunU},
	"ㄨㄚ": {Sheng: domain.ShengW, Yun: domain.YunA},
	"ㄨㄛ": {Sheng: domain.ShengW, Yun: domain.YunO},
	"ㄨㄞ": {Sheng: domain.ShengW, Yun: domain.YunAi},
	"ㄨㄟ": {Sheng: domain.ShengW, Yun: domain.YunEi},
	"ㄨㄢ": {Sheng: domain.ShengW, Yun: domain.YunAn},
	"ㄨㄣ": {Sheng: domain.ShengW, Yun: domain.YunEn},
	"ㄨㄤ": {Sheng: domain.ShengW, Yun: domain.YunAng},
	"ㄨㄥ": {Sheng: domain.ShengW, Yun: domain.YunEng},
	"ㄩ":  {Sheng: domain.ShengY, Yun: domain.YunU},
	"ㄩㄝ": {Sheng: domain.ShengY, Yun: domain.YunUe},
	"ㄩㄢ": {Sheng: domain.ShengY, Yun: domain.YunUan},
	"ㄩㄣ": {Sheng: domain.ShengY, Yun: domain.YunUn},
	"ㄩㄥ": {Sheng: domain.ShengY, Yun: domain.YunOng},
}

func isFinalGlyph(r rune) bool {
	_, ok := finalRunYun[string(r)]
	return ok
}

// DefaultBopomofo is the default glyph-sequence segmenter.
type DefaultBopomofo struct{}

// ParseBopomofo implements BopomofoParser.
func (DefaultBopomofo) ParseBopomofo(glyphs []rune, length int, opt domain.Option, maxResult int) (domain.PinyinArray, int) {
	if length > len(glyphs) {
		length = len(glyphs)
	}

	var arr domain.PinyinArray
	pos := 0
	for len(arr) < maxResult && pos < length {
		entry, n := matchBopomofo(glyphs[pos:length], opt)
		if entry == nil {
			break
		}
		arr = append(arr, withLen(entry, n))
		pos += n
	}
	return arr, pos
}

// matchBopomofo consumes one syllable from the head of the run: optional
// consonant, longest valid final run, optional trailing tone mark.
func matchBopomofo(glyphs []rune, opt domain.Option) (*domain.Pinyin, int) {
	pos := 0
	sheng, hasConsonant := glyphSheng[glyphs[pos]]
	if hasConsonant {
		pos++
	}

	// Collect the contiguous final-glyph run.
	runStart := pos
	for pos < len(glyphs) && isFinalGlyph(glyphs[pos]) {
		pos++
	}
	run := glyphs[runStart:pos]

	var id domain.SyllableID
	matched := 0
	if hasConsonant {
		for n := len(run); n > 0; n-- {
			if yun, ok := finalRunYun[string(run[:n])]; ok {
				id = domain.SyllableID{Sheng: sheng, Yun: yun}
				matched = n
				break
			}
		}
		if matched == 0 {
			// Bare sibilants are complete "i" syllables; anything else is
			// an incomplete initial.
			if sibilant[sheng] {
				id = domain.SyllableID{Sheng: sheng, Yun: domain.YunI}
			} else if opt&domain.OptionIncompletePinyin != 0 {
				entry, ok := initials[sheng.String()]
				if !ok {
					return nil, 0
				}
				return entry, consumeTone(glyphs, 1)
			} else {
				return nil, 0
			}
		}
	} else {
		for n := len(run); n > 0; n-- {
			if sid, ok := standaloneYun[string(run[:n])]; ok {
				id = sid
				matched = n
				break
			}
		}
		if matched == 0 {
			return nil, 0
		}
	}

	// ㄩ finals spell as u/ue after j, q, x.
	switch id.Sheng {
	case domain.ShengJ, domain.ShengQ, domain.ShengX:
		switch id.Yun {
		case domain.YunV:
			id.Yun = domain.YunU
		case domain.YunVe:
			id.Yun = domain.YunUe
		}
	}

	entry, ok := syllables[id.String()]
	if !ok {
		return nil, 0
	}

	consumed := runStart + matched
	return entry, consumeTone(glyphs, consumed)
}

// consumeTone extends the consumed count over a trailing tone mark.
func consumeTone(glyphs []rune, n int) int {
	if n < len(glyphs) && IsTone(glyphs[n]) {
		return n + 1
	}
	return n
}
