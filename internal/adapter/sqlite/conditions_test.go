package sqlite

import (
	"fmt"
	"strings"
	"testing"

	"github.com/inkstone-im/pinwheel/internal/domain"
	"github.com/inkstone-im/pinwheel/internal/parser"
)

func entry(t *testing.T, syllable string) *domain.Pinyin {
	t.Helper()
	p, ok := parser.Lookup(syllable)
	if !ok {
		t.Fatalf("syllable %q missing from parser table", syllable)
	}
	return p
}

func TestBuildConditionsExact(t *testing.T) {
	t.Parallel()

	py := domain.PinyinArray{entry(t, "ni"), entry(t, "hao")}
	conds := buildConditions(py, 0, 2, 0)

	if len(conds) != 1 {
		t.Fatalf("got %d disjuncts, want 1", len(conds))
	}
	want := fmt.Sprintf("s0=%d AND y0=%d AND s1=%d AND y1=%d",
		domain.ShengN, domain.YunI, domain.ShengH, domain.YunAo)
	if conds[0] != want {
		t.Errorf("condition = %q, want %q", conds[0], want)
	}
}

func TestBuildConditionsFuzzyShengDoubles(t *testing.T) {
	t.Parallel()

	// "ci" with c→ch enabled must produce disjuncts for both initials.
	py := domain.PinyinArray{entry(t, "ci")}
	conds := buildConditions(py, 0, 1, domain.OptionFuzzyCCh)

	if len(conds) != 2 {
		t.Fatalf("got %d disjuncts, want 2", len(conds))
	}
	where := conds.where()
	if !strings.Contains(where, fmt.Sprintf("s0=%d", domain.ShengC)) ||
		!strings.Contains(where, fmt.Sprintf("s0=%d", domain.ShengCh)) {
		t.Errorf("where lacks both initials: %s", where)
	}
}

func TestBuildConditionsFuzzyDirectionGated(t *testing.T) {
	t.Parallel()

	// The reverse bit alone must not widen "ci".
	py := domain.PinyinArray{entry(t, "ci")}
	conds := buildConditions(py, 0, 1, domain.OptionFuzzyChC)
	if len(conds) != 1 {
		t.Errorf("got %d disjuncts, want 1", len(conds))
	}
}

func TestBuildConditionsTwoShengAlternativesTriple(t *testing.T) {
	t.Parallel()

	// "lan" carries n and r alternatives; with both directions enabled the
	// disjunct count triples.
	py := domain.PinyinArray{entry(t, "lan")}
	conds := buildConditions(py, 0, 1, domain.OptionFuzzyLN|domain.OptionFuzzyLR)
	if len(conds) != 3 {
		t.Fatalf("got %d disjuncts, want 3", len(conds))
	}
	where := conds.where()
	for _, s := range []domain.Sheng{domain.ShengL, domain.ShengN, domain.ShengR} {
		if !strings.Contains(where, fmt.Sprintf("s0=%d", s)) {
			t.Errorf("where lacks s0=%d: %s", s, where)
		}
	}
}

func TestBuildConditionsFuzzyYun(t *testing.T) {
	t.Parallel()

	py := domain.PinyinArray{entry(t, "ban")}
	conds := buildConditions(py, 0, 1, domain.OptionFuzzyAnAng)
	if len(conds) != 2 {
		t.Fatalf("got %d disjuncts, want 2", len(conds))
	}
	where := conds.where()
	if !strings.Contains(where, fmt.Sprintf("y0=%d", domain.YunAn)) ||
		!strings.Contains(where, fmt.Sprintf("y0=%d", domain.YunAng)) {
		t.Errorf("where lacks both finals: %s", where)
	}
}

func TestBuildConditionsIncompleteOmitsYun(t *testing.T) {
	t.Parallel()

	zh := &domain.Pinyin{
		Text: "zh",
		Len:  2,
		ID:   [3]domain.SyllableID{{Sheng: domain.ShengZh, Yun: domain.YunZero}},
	}
	conds := buildConditions(domain.PinyinArray{zh}, 0, 1, 0)
	if len(conds) != 1 {
		t.Fatalf("got %d disjuncts, want 1", len(conds))
	}
	if strings.Contains(conds[0], "y0") {
		t.Errorf("incomplete syllable must omit the final clause: %q", conds[0])
	}
}

func TestBuildConditionsINListBeyondIndexSize(t *testing.T) {
	t.Parallel()

	// At position >= dbIndexSize the expansion collapses into an IN list
	// instead of multiplying disjuncts.
	py := domain.PinyinArray{entry(t, "ni"), entry(t, "hao"), entry(t, "ma"), entry(t, "ci")}
	conds := buildConditions(py, 0, 4, domain.OptionFuzzyCCh)

	if len(conds) != 1 {
		t.Fatalf("got %d disjuncts, want 1", len(conds))
	}
	want := fmt.Sprintf("s3 IN (%d,%d)", domain.ShengC, domain.ShengCh)
	if !strings.Contains(conds[0], want) {
		t.Errorf("condition lacks %q: %s", want, conds[0])
	}
}

func TestBuildConditionsSingleInitialTerm(t *testing.T) {
	t.Parallel()

	where := buildConditions(domain.PinyinArray{entry(t, "ni")}, 0, 1, 0).where()
	if n := strings.Count(where, "s0="); n != 1 {
		t.Fatalf("unexpected condition shape: %s", where)
	}
}
