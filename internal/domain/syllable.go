// Package domain defines the core value types of the input-method engine:
// syllable identifiers, parsed pinyin entries, dictionary phrases, and the
// option bitmask shared by the parser, the query layer, and the contexts.
package domain

// Sheng identifies a Mandarin syllable initial. ShengZero marks a syllable
// with no initial consonant (e.g. "an").
type Sheng uint8

// Syllable initials, in the order the dictionary tables index them.
const (
	ShengZero Sheng = iota
	ShengB
	ShengC
	ShengCh
	ShengD
	ShengF
	ShengG
	ShengH
	ShengJ
	ShengK
	ShengL
	ShengM
	ShengN
	ShengP
	ShengQ
	ShengR
	ShengS
	ShengSh
	ShengT
	ShengW
	ShengX
	ShengY
	ShengZ
	ShengZh
	shengLast
)

// Yun identifies a Mandarin syllable final. YunZero is the sentinel for an
// initial-only (incomplete) syllable; queries omit the final clause for it.
type Yun uint8

// Syllable finals.
const (
	YunZero Yun = iota
	YunA
	YunAi
	YunAn
	YunAng
	YunAo
	YunE
	YunEi
	YunEn
	YunEng
	YunEr
	YunI
	YunIa
	YunIan
	YunIang
	YunIao
	YunIe
	YunIn
	YunIng
	YunIong
	YunIu
	YunO
	YunOng
	YunOu
	YunU
	YunUa
	YunUai
	YunUan
	YunUang
	YunUe
	YunUi
	YunUn
	YunUo
	YunV
	YunVe
	yunLast
)

var shengText = [...]string{
	ShengZero: "",
	ShengB:    "b",
	ShengC:    "c",
	ShengCh:   "ch",
	ShengD:    "d",
	ShengF:    "f",
	ShengG:    "g",
	ShengH:    "h",
	ShengJ:    "j",
	ShengK:    "k",
	ShengL:    "l",
	ShengM:    "m",
	ShengN:    "n",
	ShengP:    "p",
	ShengQ:    "q",
	ShengR:    "r",
	ShengS:    "s",
	ShengSh:   "sh",
	ShengT:    "t",
	ShengW:    "w",
	ShengX:    "x",
	ShengY:    "y",
	ShengZ:    "z",
	ShengZh:   "zh",
}

var yunText = [...]string{
	YunZero: "",
	YunA:    "a",
	YunAi:   "ai",
	YunAn:   "an",
	YunAng:  "ang",
	YunAo:   "ao",
	YunE:    "e",
	YunEi:   "ei",
	YunEn:   "en",
	YunEng:  "eng",
	YunEr:   "er",
	YunI:    "i",
	YunIa:   "ia",
	YunIan:  "ian",
	YunIang: "iang",
	YunIao:  "iao",
	YunIe:   "ie",
	YunIn:   "in",
	YunIng:  "ing",
	YunIong: "iong",
	YunIu:   "iu",
	YunO:    "o",
	YunOng:  "ong",
	YunOu:   "ou",
	YunU:    "u",
	YunUa:   "ua",
	YunUai:  "uai",
	YunUan:  "uan",
	YunUang: "uang",
	YunUe:   "ue",
	YunUi:   "ui",
	YunUn:   "un",
	YunUo:   "uo",
	YunV:    "v",
	YunVe:   "ve",
}

// String returns the Latin spelling of the initial ("" for ShengZero).
func (s Sheng) String() string {
	if int(s) < len(shengText) {
		return shengText[s]
	}
	return ""
}

// String returns the Latin spelling of the final ("" for YunZero).
func (y Yun) String() string {
	if int(y) < len(yunText) {
		return yunText[y]
	}
	return ""
}

// SyllableID is a (sheng, yun) pair identifying one syllable in the
// dictionary index.
type SyllableID struct {
	Sheng Sheng
	Yun   Yun
}

// Zero reports whether the id is entirely unset.
func (id SyllableID) Zero() bool {
	return id.Sheng == ShengZero && id.Yun == YunZero
}

// String returns the concatenated spelling, e.g. "ni" or "zh" for an
// incomplete syllable.
func (id SyllableID) String() string {
	return id.Sheng.String() + id.Yun.String()
}
