package editor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite"
	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite/testhelper"
	"github.com/inkstone-im/pinwheel/internal/convert"
	"github.com/inkstone-im/pinwheel/internal/domain"
	"github.com/inkstone-im/pinwheel/internal/parser"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dir := t.TempDir()
	mainPath := testhelper.BuildMainDict(t, dir, testhelper.DefaultSeeds)
	s, err := sqlite.Open(sqlite.Config{
		MainDictPaths: []string{mainPath},
		UserDataDir:   filepath.Join(dir, "userdata"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func pinyinOf(t *testing.T, syllables ...string) domain.PinyinArray {
	t.Helper()
	var py domain.PinyinArray
	for _, s := range syllables {
		p, ok := parser.Lookup(s)
		require.True(t, ok, "syllable %q", s)
		py = append(py, p)
	}
	return py
}

func TestCandidatesLongestFirstDeduped(t *testing.T) {
	t.Parallel()

	e := New(openStore(t), nil, 0, true)
	e.Update(pinyinOf(t, "ni", "hao"))

	cands := e.Candidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, "你好", cands[0].Text)

	seen := map[string]bool{}
	for _, c := range cands {
		assert.False(t, seen[c.Text], "duplicate candidate %q", c.Text)
		seen[c.Text] = true
	}
}

func TestSelectAdvancesCursor(t *testing.T) {
	t.Parallel()

	e := New(openStore(t), nil, 0, true)
	e.Update(pinyinOf(t, "ni", "hao"))

	// Pick a single-syllable candidate: skip past the two-syllable head.
	idx := -1
	for i, c := range e.Candidates() {
		if c.Len() == 1 {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	require.True(t, e.Select(idx))
	assert.Equal(t, 1, e.Cursor())
	assert.Equal(t, 2, e.CursorInChars())
	assert.Len(t, e.Selected(), 1)

	// The view moved to "hao".
	for _, c := range e.Candidates() {
		assert.Equal(t, 1, c.Len())
	}

	// Consume the rest.
	require.True(t, e.Select(0))
	assert.True(t, e.FullyConsumed())
	assert.Empty(t, e.Candidates())
	assert.False(t, e.Select(0))
}

func TestUnselectRestoresView(t *testing.T) {
	t.Parallel()

	e := New(openStore(t), nil, 0, true)
	e.Update(pinyinOf(t, "ni", "hao"))

	require.True(t, e.Select(0)) // 你好 consumes everything
	require.True(t, e.FullyConsumed())

	require.True(t, e.Unselect())
	assert.Zero(t, e.Cursor())
	assert.Empty(t, e.Selected())
	assert.Equal(t, "你好", e.Candidates()[0].Text)

	assert.False(t, e.Unselect())
}

func TestSelectedStringConversion(t *testing.T) {
	t.Parallel()

	store := openStore(t)

	simp := New(store, convert.NewTable(), 0, true)
	simp.Update(pinyinOf(t, "dong"))
	require.True(t, simp.Select(0))
	assert.Equal(t, "东", simp.SelectedString())

	trad := New(store, convert.NewTable(), 0, false)
	trad.Update(pinyinOf(t, "dong"))
	require.True(t, trad.Select(0))
	assert.Equal(t, "東", trad.SelectedString())
}

func TestCommitLearnsSelection(t *testing.T) {
	t.Parallel()

	store := openStore(t)

	e := New(store, nil, 0, true)
	e.Update(pinyinOf(t, "ni", "hao"))
	require.True(t, e.Select(0))

	got := e.Commit()
	assert.Equal(t, "你好", got.Text)
	assert.Equal(t, 2, got.Len())

	// The learned frequency reorders the next query.
	e2 := New(store, nil, 0, true)
	e2.Update(pinyinOf(t, "ni", "hao"))
	first := e2.Candidates()[0]
	assert.Equal(t, "你好", first.Text)
	assert.GreaterOrEqual(t, first.UserFreq, uint32(1))
}

func TestUpdateClearsSelections(t *testing.T) {
	t.Parallel()

	e := New(openStore(t), nil, 0, true)
	e.Update(pinyinOf(t, "ni", "hao"))
	require.True(t, e.Select(0))

	e.Update(pinyinOf(t, "ni"))
	assert.Zero(t, e.Cursor())
	assert.Empty(t, e.Selected())
	assert.Equal(t, "你", e.Candidates()[0].Text)
}

func TestEmptyEditor(t *testing.T) {
	t.Parallel()

	e := New(openStore(t), nil, 0, true)
	assert.True(t, e.Empty())
	assert.False(t, e.HasCandidate(0))
	assert.Empty(t, e.Candidates())
	assert.Equal(t, domain.Phrase{}, e.Commit())
	assert.Equal(t, "", e.SelectedString())

	e.Update(nil)
	assert.True(t, e.Empty())
}
