package domain

// Option is the process-wide configuration bitmask snapshotted by each
// context at construction. Each fuzzy direction is gated independently:
// OptionFuzzyCCh widens a typed "c" to also match "ch", OptionFuzzyChC the
// reverse.
type Option uint32

const (
	OptionFuzzyCCh Option = 1 << iota
	OptionFuzzyChC
	OptionFuzzyZZh
	OptionFuzzyZhZ
	OptionFuzzySSh
	OptionFuzzyShS
	OptionFuzzyLN
	OptionFuzzyNL
	OptionFuzzyFH
	OptionFuzzyHF
	OptionFuzzyLR
	OptionFuzzyRL
	OptionFuzzyKG
	OptionFuzzyGK

	OptionFuzzyAnAng
	OptionFuzzyAngAn
	OptionFuzzyEnEng
	OptionFuzzyEngEn
	OptionFuzzyInIng
	OptionFuzzyIngIn
	OptionFuzzyIanIang
	OptionFuzzyIangIan
	OptionFuzzyUanUang
	OptionFuzzyUangUan

	// OptionIncompletePinyin lets a bare initial match dictionary phrases
	// on the initial alone, and enables the insert fast path that skips
	// re-parsing once the cursor runs well past the parsed prefix.
	OptionIncompletePinyin
)

// OptionFuzzyAll enables every fuzzy pair in both directions.
const OptionFuzzyAll = OptionFuzzyCCh | OptionFuzzyChC |
	OptionFuzzyZZh | OptionFuzzyZhZ |
	OptionFuzzySSh | OptionFuzzyShS |
	OptionFuzzyLN | OptionFuzzyNL |
	OptionFuzzyFH | OptionFuzzyHF |
	OptionFuzzyLR | OptionFuzzyRL |
	OptionFuzzyKG | OptionFuzzyGK |
	OptionFuzzyAnAng | OptionFuzzyAngAn |
	OptionFuzzyEnEng | OptionFuzzyEngEn |
	OptionFuzzyInIng | OptionFuzzyIngIn |
	OptionFuzzyIanIang | OptionFuzzyIangIan |
	OptionFuzzyUanUang | OptionFuzzyUangUan

type shengPair struct {
	from, to Sheng
}

type yunPair struct {
	from, to Yun
}

var fuzzyShengGate = map[shengPair]Option{
	{ShengC, ShengCh}: OptionFuzzyCCh,
	{ShengCh, ShengC}: OptionFuzzyChC,
	{ShengZ, ShengZh}: OptionFuzzyZZh,
	{ShengZh, ShengZ}: OptionFuzzyZhZ,
	{ShengS, ShengSh}: OptionFuzzySSh,
	{ShengSh, ShengS}: OptionFuzzyShS,
	{ShengL, ShengN}:  OptionFuzzyLN,
	{ShengN, ShengL}:  OptionFuzzyNL,
	{ShengF, ShengH}:  OptionFuzzyFH,
	{ShengH, ShengF}:  OptionFuzzyHF,
	{ShengL, ShengR}:  OptionFuzzyLR,
	{ShengR, ShengL}:  OptionFuzzyRL,
	{ShengK, ShengG}:  OptionFuzzyKG,
	{ShengG, ShengK}:  OptionFuzzyGK,
}

var fuzzyYunGate = map[yunPair]Option{
	{YunAn, YunAng}:   OptionFuzzyAnAng,
	{YunAng, YunAn}:   OptionFuzzyAngAn,
	{YunEn, YunEng}:   OptionFuzzyEnEng,
	{YunEng, YunEn}:   OptionFuzzyEngEn,
	{YunIn, YunIng}:   OptionFuzzyInIng,
	{YunIng, YunIn}:   OptionFuzzyIngIn,
	{YunIan, YunIang}: OptionFuzzyIanIang,
	{YunIang, YunIan}: OptionFuzzyIangIan,
	{YunUan, YunUang}: OptionFuzzyUanUang,
	{YunUang, YunUan}: OptionFuzzyUangUan,
}

// FuzzyShengEnabled reports whether the option set widens initial `from`
// to also match `to`.
func (o Option) FuzzyShengEnabled(from, to Sheng) bool {
	gate, ok := fuzzyShengGate[shengPair{from, to}]
	return ok && o&gate != 0
}

// FuzzyYunEnabled reports whether the option set widens final `from` to
// also match `to`.
func (o Option) FuzzyYunEnabled(from, to Yun) bool {
	gate, ok := fuzzyYunGate[yunPair{from, to}]
	return ok && o&gate != 0
}

// FuzzyShengPartners returns the alternative initials `s` may expand to,
// regardless of which option bits are set. The gating happens at query
// time; the parser records the alternatives unconditionally.
func FuzzyShengPartners(s Sheng) []Sheng {
	switch s {
	case ShengC:
		return []Sheng{ShengCh}
	case ShengCh:
		return []Sheng{ShengC}
	case ShengZ:
		return []Sheng{ShengZh}
	case ShengZh:
		return []Sheng{ShengZ}
	case ShengS:
		return []Sheng{ShengSh}
	case ShengSh:
		return []Sheng{ShengS}
	case ShengL:
		return []Sheng{ShengN, ShengR}
	case ShengN:
		return []Sheng{ShengL}
	case ShengR:
		return []Sheng{ShengL}
	case ShengF:
		return []Sheng{ShengH}
	case ShengH:
		return []Sheng{ShengF}
	case ShengK:
		return []Sheng{ShengG}
	case ShengG:
		return []Sheng{ShengK}
	}
	return nil
}

// FuzzyYunPartner returns the alternative final for `y`, or YunZero when
// the final has no fuzzy pair.
func FuzzyYunPartner(y Yun) Yun {
	switch y {
	case YunAn:
		return YunAng
	case YunAng:
		return YunAn
	case YunEn:
		return YunEng
	case YunEng:
		return YunEn
	case YunIn:
		return YunIng
	case YunIng:
		return YunIn
	case YunIan:
		return YunIang
	case YunIang:
		return YunIan
	case YunUan:
		return YunUang
	case YunUang:
		return YunUan
	}
	return YunZero
}
