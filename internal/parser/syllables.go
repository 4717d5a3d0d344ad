package parser

import (
	"strings"

	"github.com/inkstone-im/pinwheel/internal/domain"
)

// finalsByInitial is the Mandarin syllable inventory: per initial, the
// space-separated finals that form real syllables. The empty initial covers
// the standalone vowels.
var finalsByInitial = map[string]string{
	"":   "a ai an ang ao e ei en eng er o ou",
	"b":  "a ai an ang ao ei en eng i ian iao ie in ing o u",
	"p":  "a ai an ang ao ei en eng i ian iao ie in ing o ou u",
	"m":  "a ai an ang ao e ei en eng i ian iao ie in ing iu o ou u",
	"f":  "a an ang ei en eng o ou u",
	"d":  "a ai an ang ao e ei en eng i ia ian iao ie ing iu o ong ou u uan ui un uo",
	"t":  "a ai an ang ao e ei eng i ian iao ie ing o ong ou u uan ui un uo",
	"n":  "a ai an ang ao e ei en eng i ian iang iao ie in ing iu o ong ou u uan uo v ve",
	"l":  "a ai an ang ao e ei eng i ia ian iang iao ie in ing iu o ong ou u uan un uo v ve",
	"g":  "a ai an ang ao e ei en eng o ong ou u ua uai uan uang ui un uo",
	"k":  "a ai an ang ao e ei en eng ong ou u ua uai uan uang ui un uo",
	"h":  "a ai an ang ao e ei en eng o ong ou u ua uai uan uang ui un uo",
	"j":  "i ia ian iang iao ie in ing iong iu u uan ue un",
	"q":  "i ia ian iang iao ie in ing iong iu u uan ue un",
	"x":  "i ia ian iang iao ie in ing iong iu u uan ue un",
	"zh": "a ai an ang ao e ei en eng i ong ou u ua uai uan uang ui un uo",
	"ch": "a ai an ang ao e en eng i ong ou u ua uai uan uang ui un uo",
	"sh": "a ai an ang ao e ei en eng i ou u ua uai uan uang ui un uo",
	"r":  "an ang ao e en eng i ong ou u ua uan ui un uo",
	"z":  "a ai an ang ao e ei en eng i ong ou u uan ui un uo",
	"c":  "a ai an ang ao e en eng i ong ou u uan ui un uo",
	"s":  "a ai an ang ao e en eng i ong ou u uan ui un uo",
	"y":  "a an ang ao e i in ing o ong ou u uan ue un",
	"w":  "a ai an ang ei en eng o u",
}

// maxSyllableLen bounds the greedy longest-match window ("zhuang").
const maxSyllableLen = 6

var (
	// syllables interns every full syllable by spelling.
	syllables = make(map[string]*domain.Pinyin)
	// initials interns the incomplete (initial-only) entries.
	initials = make(map[string]*domain.Pinyin)
)

func init() {
	for ini, finals := range finalsByInitial {
		sheng, ok := domain.ParseSheng(ini)
		if !ok {
			panic("parser: bad initial " + ini)
		}
		for _, fin := range strings.Fields(finals) {
			yun, ok := domain.ParseYun(fin)
			if !ok {
				panic("parser: bad final " + fin)
			}
			text := ini + fin
			syllables[text] = &domain.Pinyin{
				Text:     text,
				Bopomofo: bopomofoOf(sheng, yun),
				Len:      len(text),
				ID:       [3]domain.SyllableID{{Sheng: sheng, Yun: yun}},
			}
		}
		if sheng != domain.ShengZero && sheng != domain.ShengY && sheng != domain.ShengW {
			initials[ini] = &domain.Pinyin{
				Text:     ini,
				Bopomofo: shengGlyph[sheng],
				Len:      len(ini),
				ID:       [3]domain.SyllableID{{Sheng: sheng, Yun: domain.YunZero}},
			}
		}
	}

	// Second pass: record the fuzzy alternatives now that validity of the
	// partner spellings can be checked. Initial partners claim slots 1 and
	// 2; the final partner takes slot 1 only when no initial partner did.
	for _, entry := range syllables {
		id := entry.ID[0]
		slot := 1
		for _, alt := range domain.FuzzyShengPartners(id.Sheng) {
			if slot > 2 {
				break
			}
			if _, ok := syllables[alt.String()+id.Yun.String()]; ok {
				entry.ID[slot] = domain.SyllableID{Sheng: alt, Yun: id.Yun}
				slot++
			}
		}
		if slot == 1 {
			if alt := domain.FuzzyYunPartner(id.Yun); alt != domain.YunZero {
				if _, ok := syllables[id.Sheng.String()+alt.String()]; ok {
					entry.ID[1] = domain.SyllableID{Sheng: id.Sheng, Yun: alt}
				}
			}
		}
	}
	for _, entry := range initials {
		slot := 1
		for _, alt := range domain.FuzzyShengPartners(entry.ID[0].Sheng) {
			if slot > 2 {
				break
			}
			entry.ID[slot] = domain.SyllableID{Sheng: alt, Yun: domain.YunZero}
			slot++
		}
	}
}

// Lookup returns the interned entry for a full syllable spelling.
func Lookup(text string) (*domain.Pinyin, bool) {
	p, ok := syllables[text]
	return p, ok
}

// withLen returns entry unless n differs from its length, in which case a
// copy with the adjusted consumed-character count is made (separator
// apostrophes, trailing tone marks).
func withLen(entry *domain.Pinyin, n int) *domain.Pinyin {
	if entry.Len == n {
		return entry
	}
	cp := *entry
	cp.Len = n
	return &cp
}
