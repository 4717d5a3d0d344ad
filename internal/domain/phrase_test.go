package domain

import "testing"

func TestPhraseConcat(t *testing.T) {
	t.Parallel()

	ni := Phrase{Text: "你", Freq: 100, ID: []SyllableID{{ShengN, YunI}}}
	hao := Phrase{Text: "好", Freq: 90, ID: []SyllableID{{ShengH, YunAo}}}

	got := ni.Concat(hao)
	if got.Text != "你好" {
		t.Errorf("Concat text = %q, want %q", got.Text, "你好")
	}
	if got.Len() != 2 {
		t.Errorf("Concat len = %d, want 2", got.Len())
	}
	if got.ID[0] != (SyllableID{ShengN, YunI}) || got.ID[1] != (SyllableID{ShengH, YunAo}) {
		t.Errorf("Concat ids = %v", got.ID)
	}
	if got.Freq != 100 {
		t.Errorf("Concat freq = %d, want the left operand's freq", got.Freq)
	}

	// The operands stay untouched.
	if ni.Len() != 1 || hao.Len() != 1 {
		t.Error("Concat mutated an operand")
	}
}

func TestPhraseConcatOverflowPanics(t *testing.T) {
	t.Parallel()

	long := Phrase{ID: make([]SyllableID, MaxPhraseLen)}
	one := Phrase{ID: []SyllableID{{ShengB, YunA}}}

	defer func() {
		if recover() == nil {
			t.Fatal("Concat past MaxPhraseLen did not panic")
		}
	}()
	long.Concat(one)
}

func TestPinyinArrayCharLen(t *testing.T) {
	t.Parallel()

	arr := PinyinArray{
		{Text: "ni", Len: 2},
		{Text: "hao", Len: 3},
	}
	if got := arr.CharLen(); got != 5 {
		t.Errorf("CharLen = %d, want 5", got)
	}
	if got := (PinyinArray{}).CharLen(); got != 0 {
		t.Errorf("empty CharLen = %d, want 0", got)
	}
}

func TestFuzzyGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opt  Option
		from Sheng
		to   Sheng
		want bool
	}{
		{name: "c to ch enabled", opt: OptionFuzzyCCh, from: ShengC, to: ShengCh, want: true},
		{name: "reverse direction gated separately", opt: OptionFuzzyCCh, from: ShengCh, to: ShengC, want: false},
		{name: "l to r", opt: OptionFuzzyLR, from: ShengL, to: ShengR, want: true},
		{name: "unrelated pair", opt: OptionFuzzyAll, from: ShengB, to: ShengP, want: false},
		{name: "no bits", opt: 0, from: ShengC, to: ShengCh, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()
			if got := tt.opt.FuzzyShengEnabled(tt.from, tt.to); got != tt.want {
				t.Errorf("FuzzyShengEnabled(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}

	if !OptionFuzzyAll.FuzzyYunEnabled(YunAn, YunAng) {
		t.Error("an->ang should be enabled under OptionFuzzyAll")
	}
	if (Option(0)).FuzzyYunEnabled(YunAn, YunAng) {
		t.Error("an->ang should be disabled with no bits set")
	}
}

func TestSyllableIDString(t *testing.T) {
	t.Parallel()

	if got := (SyllableID{ShengN, YunI}).String(); got != "ni" {
		t.Errorf("String = %q, want ni", got)
	}
	if got := (SyllableID{ShengZh, YunZero}).String(); got != "zh" {
		t.Errorf("incomplete String = %q, want zh", got)
	}
	if got := (SyllableID{ShengZero, YunAn}).String(); got != "an" {
		t.Errorf("zero-initial String = %q, want an", got)
	}
}
