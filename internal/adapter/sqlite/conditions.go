package sqlite

import (
	"fmt"
	"strings"

	"github.com/inkstone-im/pinwheel/internal/domain"
)

// dbIndexSize is the number of leading positions covered by the composite
// indexes. Below it, fuzzy expansion is emitted as separate disjuncts so
// every combination stays indexable; at or above it the expansion
// collapses into an IN list.
const dbIndexSize = 3

// conditions is the growing set of per-position conjunctions; the final
// WHERE clause is their disjunction.
type conditions []string

func newConditions() conditions {
	return conditions{""}
}

// double duplicates the current disjuncts; the copies occupy the upper
// half.
func (c *conditions) double() {
	*c = append(*c, *c...)
}

// triple appends two further copies of the current disjuncts, keeping the
// block layout [orig, copy, copy] that the range appends rely on.
func (c *conditions) triple() {
	n := len(*c)
	*c = append(*c, (*c)[:n]...)
	*c = append(*c, (*c)[:n]...)
}

// appendf appends the formatted fragment to the disjuncts in [begin, end).
func (c conditions) appendf(begin, end int, format string, args ...any) {
	frag := fmt.Sprintf(format, args...)
	for i := begin; i < end; i++ {
		c[i] += frag
	}
}

// where renders the disjunction: "(c0) OR (c1) OR ...".
func (c conditions) where() string {
	var b strings.Builder
	for i, cond := range c {
		if i > 0 {
			b.WriteString(" OR ")
		}
		b.WriteString("(" + cond + ")")
	}
	return b.String()
}

// buildConditions translates the pinyin sub-sequence into the WHERE
// disjunction shared by the main.* and userdb.* query branches. Fuzzy
// expansion on each position is gated per direction by the option bits;
// a YunZero final omits the y clause entirely so incomplete syllables
// match any final.
func buildConditions(py domain.PinyinArray, begin, length int, opt domain.Option) conditions {
	conds := newConditions()

	for i := 0; i < length; i++ {
		p := py[begin+i]
		id0 := p.ID[0]

		fs1 := opt.FuzzyShengEnabled(id0.Sheng, p.ID[1].Sheng)
		fs2 := opt.FuzzyShengEnabled(id0.Sheng, p.ID[2].Sheng)

		if i > 0 {
			conds.appendf(0, len(conds), " AND ")
		}

		switch {
		case !fs1 && !fs2:
			conds.appendf(0, len(conds), "s%d=%d", i, id0.Sheng)
		case i < dbIndexSize:
			alt1, alt2 := p.ID[1].Sheng, p.ID[2].Sheng
			switch {
			case fs1 && !fs2:
				conds.double()
				conds.appendf(0, len(conds)/2, "s%d=%d", i, id0.Sheng)
				conds.appendf(len(conds)/2, len(conds), "s%d=%d", i, alt1)
			case !fs1 && fs2:
				conds.double()
				conds.appendf(0, len(conds)/2, "s%d=%d", i, id0.Sheng)
				conds.appendf(len(conds)/2, len(conds), "s%d=%d", i, alt2)
			default:
				third := len(conds)
				conds.triple()
				conds.appendf(0, third, "s%d=%d", i, id0.Sheng)
				conds.appendf(third, 2*third, "s%d=%d", i, alt1)
				conds.appendf(2*third, len(conds), "s%d=%d", i, alt2)
			}
		default:
			switch {
			case fs1 && !fs2:
				conds.appendf(0, len(conds), "s%d IN (%d,%d)", i, id0.Sheng, p.ID[1].Sheng)
			case !fs1 && fs2:
				conds.appendf(0, len(conds), "s%d IN (%d,%d)", i, id0.Sheng, p.ID[2].Sheng)
			default:
				conds.appendf(0, len(conds), "s%d IN (%d,%d,%d)", i, id0.Sheng, p.ID[1].Sheng, p.ID[2].Sheng)
			}
		}

		if id0.Yun == domain.YunZero {
			continue
		}
		if opt.FuzzyYunEnabled(id0.Yun, p.ID[1].Yun) {
			if i < dbIndexSize {
				conds.double()
				conds.appendf(0, len(conds)/2, " AND y%d=%d", i, id0.Yun)
				conds.appendf(len(conds)/2, len(conds), " AND y%d=%d", i, p.ID[1].Yun)
			} else {
				conds.appendf(0, len(conds), " AND y%d IN (%d,%d)", i, id0.Yun, p.ID[1].Yun)
			}
		} else {
			conds.appendf(0, len(conds), " AND y%d=%d", i, id0.Yun)
		}
	}

	return conds
}
