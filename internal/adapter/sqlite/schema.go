package sqlite

import (
	"embed"
	"fmt"
	"strings"
)

// Migrations for the persisted user-dictionary file. Everything is
// IF NOT EXISTS so an old file is upgraded in place.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// colNames returns the id column list for a phrase of `length` syllables:
// s0, y0, s1, y1, ...
func colNames(length int) []string {
	cols := make([]string, 0, 2*length)
	for i := 0; i < length; i++ {
		cols = append(cols, fmt.Sprintf("s%d", i), fmt.Sprintf("y%d", i))
	}
	return cols
}

// phraseTable names the table for a phrase of `length` syllables. The
// tables are numbered by length-1.
func phraseTable(prefix string, length int) string {
	return fmt.Sprintf("%spy_phrase_%d", prefix, length-1)
}

// userSchemaSQL generates the user-dictionary DDL with every object name
// qualified by prefix (e.g. "userdb."). The embedded migration carries the
// same statements for the persisted file; this form exists because the
// attached in-memory database cannot be goose-migrated directly.
func userSchemaSQL(prefix string) string {
	var b strings.Builder

	b.WriteString("CREATE TABLE IF NOT EXISTS " + prefix + "desc (name PRIMARY KEY, value TEXT);\n")

	for i := 1; i <= maxPhraseLen; i++ {
		b.WriteString("CREATE TABLE IF NOT EXISTS " + phraseTable(prefix, i) +
			" (user_freq, phrase TEXT, freq INTEGER")
		for _, col := range colNames(i) {
			b.WriteString(", " + col + " INTEGER")
		}
		b.WriteString(");\n")
	}

	for i := 1; i <= maxPhraseLen; i++ {
		table := fmt.Sprintf("py_phrase_%d", i-1)
		unique := append(colNames(i), "phrase")
		fmt.Fprintf(&b, "CREATE UNIQUE INDEX IF NOT EXISTS %sindex_%d_0 ON %s (%s);\n",
			prefix, i-1, table, strings.Join(unique, ","))
		switch {
		case i == 1:
			// The single-syllable table gets only the unique index.
		case i == 2:
			fmt.Fprintf(&b, "CREATE INDEX IF NOT EXISTS %sindex_1_1 ON %s (s0,s1,y1);\n",
				prefix, table)
		default:
			fmt.Fprintf(&b, "CREATE INDEX IF NOT EXISTS %sindex_%d_1 ON %s (s0,s1,s2,y2);\n",
				prefix, i-1, table)
		}
	}

	return b.String()
}
