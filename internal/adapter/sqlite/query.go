package sqlite

import (
	"fmt"
	"strings"

	"github.com/inkstone-im/pinwheel/internal/domain"
)

// query runs one bounded candidate lookup over both the main and user
// tables for phrases of exactly `length` syllables, ordered by learned
// then static frequency. The condition text is generated once and
// interpolated into both branches so the two can never drift.
func (s *Store) query(py domain.PinyinArray, begin, length, limit int, opt domain.Option) ([]domain.Phrase, error) {
	if begin >= len(py) || length <= 0 || begin+length > len(py) || length > maxPhraseLen {
		return nil, fmt.Errorf("%w: query bounds begin=%d len=%d of %d syllables",
			domain.ErrInvalidArgument, begin, length, len(py))
	}

	where := buildConditions(py, begin, length, opt).where()
	cols := strings.Join(colNames(length), ",")

	var b strings.Builder
	// MAX() pins the merged row's frequencies; bare columns under GROUP BY
	// would leave the branch choice to SQLite.
	fmt.Fprintf(&b,
		"SELECT MAX(user_freq) AS user_freq, phrase, MAX(freq) AS freq, %[1]s FROM ("+
			"SELECT 0 AS user_freq, phrase, freq, %[1]s FROM %[2]s WHERE %[4]s"+
			" UNION ALL "+
			"SELECT user_freq, phrase, freq, %[1]s FROM %[3]s WHERE %[4]s"+
			") GROUP BY phrase ORDER BY user_freq DESC, freq DESC",
		cols, phraseTable("main.", length), phraseTable("userdb.", length), where)
	if limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, domain.ErrClosed
	}

	rows, err := s.db.Query(b.String())
	if err != nil {
		return nil, fmt.Errorf("sqlite: candidate query: %w", err)
	}
	defer rows.Close()

	var out []domain.Phrase
	for rows.Next() {
		p := domain.Phrase{ID: make([]domain.SyllableID, length)}
		dest := make([]any, 0, 3+2*length)
		dest = append(dest, &p.UserFreq, &p.Text, &p.Freq)
		for i := 0; i < length; i++ {
			dest = append(dest, &p.ID[i].Sheng, &p.ID[i].Yun)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("sqlite: scan candidate: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Cursor iterates candidate phrases for a fixed starting offset,
// longest-first: it drains all matches of the current length before
// shortening the prefix by one syllable, and terminates at length zero.
type Cursor struct {
	store  *Store
	pinyin domain.PinyinArray
	begin  int
	length int
	opt    domain.Option

	pending []domain.Phrase
	loaded  bool
	err     error
}

// NewCursor validates the bounds and positions the cursor at maxLen.
func (s *Store) NewCursor(py domain.PinyinArray, begin, maxLen int, opt domain.Option) (*Cursor, error) {
	if begin >= len(py) || maxLen <= 0 || begin+maxLen > len(py) || maxLen > maxPhraseLen {
		return nil, fmt.Errorf("%w: cursor bounds begin=%d maxLen=%d of %d syllables",
			domain.ErrInvalidArgument, begin, maxLen, len(py))
	}
	return &Cursor{store: s, pinyin: py, begin: begin, length: maxLen, opt: opt}, nil
}

// Fill appends up to count phrases to dst and reports how many were
// produced. Zero means the cursor is exhausted.
func (c *Cursor) Fill(dst *[]domain.Phrase, count int) int {
	filled := 0
	for c.length > 0 && filled < count {
		if !c.loaded {
			c.pending, c.err = c.store.query(c.pinyin, c.begin, c.length, 0, c.opt)
			if c.err != nil {
				return filled
			}
			c.loaded = true
		}
		for len(c.pending) > 0 && filled < count {
			*dst = append(*dst, c.pending[0])
			c.pending = c.pending[1:]
			filled++
		}
		if len(c.pending) == 0 {
			c.loaded = false
			c.length--
		}
	}
	return filled
}

// Err reports a query failure encountered during Fill.
func (c *Cursor) Err() error {
	return c.err
}
