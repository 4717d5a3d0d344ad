// Package testhelper builds throwaway main-dictionary files for store and
// context tests.
package testhelper

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite" // database/sql driver

	"github.com/inkstone-im/pinwheel/internal/domain"
)

// Seed is one main-dictionary phrase.
type Seed struct {
	Text string
	Freq uint32
	IDs  []domain.SyllableID
}

// DefaultSeeds is a minimal dictionary exercising single characters, a
// two-syllable phrase, and the c/ch fuzzy pair.
var DefaultSeeds = []Seed{
	{Text: "你", Freq: 5000, IDs: []domain.SyllableID{{Sheng: domain.ShengN, Yun: domain.YunI}}},
	{Text: "尼", Freq: 2000, IDs: []domain.SyllableID{{Sheng: domain.ShengN, Yun: domain.YunI}}},
	{Text: "好", Freq: 5000, IDs: []domain.SyllableID{{Sheng: domain.ShengH, Yun: domain.YunAo}}},
	{Text: "号", Freq: 1000, IDs: []domain.SyllableID{{Sheng: domain.ShengH, Yun: domain.YunAo}}},
	{Text: "你好", Freq: 4000, IDs: []domain.SyllableID{
		{Sheng: domain.ShengN, Yun: domain.YunI},
		{Sheng: domain.ShengH, Yun: domain.YunAo},
	}},
	{Text: "词", Freq: 3000, IDs: []domain.SyllableID{{Sheng: domain.ShengC, Yun: domain.YunI}}},
	{Text: "吃", Freq: 3500, IDs: []domain.SyllableID{{Sheng: domain.ShengCh, Yun: domain.YunI}}},
	{Text: "东", Freq: 2500, IDs: []domain.SyllableID{{Sheng: domain.ShengD, Yun: domain.YunOng}}},
}

// BuildMainDict writes a main dictionary into dir and returns its path.
func BuildMainDict(t *testing.T, dir string, seeds []Seed) string {
	t.Helper()

	path := filepath.Join(dir, "main.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("testhelper: open main dict: %v", err)
	}
	defer db.Close()

	// The main tables carry no user_freq column; the query layer
	// synthesizes a zero for them.
	for i := 0; i < domain.MaxPhraseLen; i++ {
		var cols, uniq []string
		for j := 0; j <= i; j++ {
			cols = append(cols, fmt.Sprintf("s%d INTEGER, y%d INTEGER", j, j))
			uniq = append(uniq, fmt.Sprintf("s%d,y%d", j, j))
		}
		ddl := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS py_phrase_%d (phrase TEXT, freq INTEGER, %s);",
			i, strings.Join(cols, ", "))
		if _, err := db.Exec(ddl); err != nil {
			t.Fatalf("testhelper: create table: %v", err)
		}
		idx := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS index_%d_0 ON py_phrase_%d (%s,phrase);",
			i, i, strings.Join(uniq, ","))
		if _, err := db.Exec(idx); err != nil {
			t.Fatalf("testhelper: create index: %v", err)
		}
	}

	for _, seed := range seeds {
		var cols []string
		vals := []any{seed.Text, seed.Freq}
		marks := []string{"?", "?"}
		for j, id := range seed.IDs {
			cols = append(cols, fmt.Sprintf("s%d", j), fmt.Sprintf("y%d", j))
			vals = append(vals, id.Sheng, id.Yun)
			marks = append(marks, "?", "?")
		}
		stmt := fmt.Sprintf("INSERT INTO py_phrase_%d (phrase, freq, %s) VALUES (%s)",
			len(seed.IDs)-1, strings.Join(cols, ","), strings.Join(marks, ","))
		if _, err := db.Exec(stmt, vals...); err != nil {
			t.Fatalf("testhelper: seed %q: %v", seed.Text, err)
		}
	}

	return path
}
