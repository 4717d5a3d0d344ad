package ime

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite"
	"github.com/inkstone-im/pinwheel/internal/adapter/sqlite/testhelper"
	"github.com/inkstone-im/pinwheel/internal/convert"
	"github.com/inkstone-im/pinwheel/internal/domain"
	"github.com/inkstone-im/pinwheel/internal/special"
)

// recorder captures observer callbacks in arrival order.
type recorder struct {
	commits []string
	events  []string
	preedit PreeditText
	aux     string
}

func (r *recorder) CommitText(text string) {
	r.commits = append(r.commits, text)
	r.events = append(r.events, "commit")
}
func (r *recorder) InputTextChanged(string) { r.events = append(r.events, "input") }
func (r *recorder) CursorChanged(int)       { r.events = append(r.events, "cursor") }
func (r *recorder) PreeditTextChanged(p PreeditText) {
	r.preedit = p
	r.events = append(r.events, "preedit")
}
func (r *recorder) AuxiliaryTextChanged(aux string) {
	r.aux = aux
	r.events = append(r.events, "aux")
}
func (r *recorder) CandidatesChanged() { r.events = append(r.events, "candidates") }

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

func newPinyinContext(t *testing.T, store *sqlite.Store, cfg ContextConfig) (*FullPinyinContext, *recorder) {
	t.Helper()
	rec := &recorder{}
	return NewFullPinyinContext(store, convert.NewTable(), nil, nil, cfg, rec), rec
}

func typeKeys(t *testing.T, c interface{ Insert(byte) bool }, keys string) {
	t.Helper()
	for i := 0; i < len(keys); i++ {
		require.True(t, c.Insert(keys[i]), "insert %q", keys[i])
	}
}

// checkInvariants asserts the state relations that must hold after every
// public operation.
func checkInvariants(t *testing.T, c *Context) {
	t.Helper()

	require.LessOrEqual(t, 0, c.cursor)
	require.LessOrEqual(t, c.cursor, len(c.text))
	require.LessOrEqual(t, len(c.text), domain.MaxPinyinLen)

	py, pyLen := c.Pinyin()
	require.LessOrEqual(t, pyLen, len(c.text))
	require.Equal(t, pyLen, py.CharLen())

	edCursor := c.editor.Cursor()
	require.LessOrEqual(t, 0, edCursor)
	require.LessOrEqual(t, edCursor, len(py))

	total := 0
	for _, p := range c.editor.Selected() {
		total += p.Len()
	}
	require.Equal(t, edCursor, total)
}

func TestScenarioConvertedCommit(t *testing.T) {
	t.Parallel()

	c, rec := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")
	checkInvariants(t, c.Context)

	require.True(t, c.FocusCandidate(0))
	c.Commit(TypeConverted)

	require.Equal(t, []string{"你好"}, rec.commits)
	assert.Empty(t, c.InputText())
	assert.Zero(t, c.Cursor())
	assert.Equal(t, PreeditText{}, c.PreeditText())
	assert.Empty(t, c.AuxiliaryText())
	checkInvariants(t, c.Context)
}

func TestScenarioRawCommit(t *testing.T) {
	t.Parallel()

	c, rec := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")
	c.Commit(TypeRaw)

	require.Equal(t, []string{"nihao"}, rec.commits)
	assert.Empty(t, c.InputText())
}

func TestScenarioBopomofo(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewBopomofoContext(openStore(t), convert.NewTable(), nil, nil,
		ContextConfig{ModeSimp: true}, rec)
	require.Equal(t, KeyboardStandard, c.Schema())

	typeKeys(t, c, "su3cl3")
	checkInvariants(t, c.Context)

	assert.Equal(t, "ㄋㄧˇ,ㄏㄠˇ|", c.AuxiliaryText())
	assert.Equal(t, "你好", c.PreeditText().Candidate)

	require.True(t, c.FocusCandidate(0))
	c.Commit(TypeConverted)
	require.Equal(t, []string{"你好"}, rec.commits)
	assert.Empty(t, c.InputText())
}

func TestBopomofoPhoneticCommit(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewBopomofoContext(openStore(t), nil, nil, nil, ContextConfig{ModeSimp: true}, rec)

	typeKeys(t, c, "su3cl3")
	c.Commit(TypePhonetic)
	require.Equal(t, []string{"ㄋㄧˇㄏㄠˇ"}, rec.commits)
}

func TestBopomofoRejectsUnmappedKeys(t *testing.T) {
	t.Parallel()

	c := NewBopomofoContext(openStore(t), nil, nil, nil, ContextConfig{ModeSimp: true}, nil)

	assert.False(t, c.Insert(' '))
	assert.False(t, c.Insert('A'))
	assert.Empty(t, c.InputText())
}

func TestBopomofoSchemaProperty(t *testing.T) {
	t.Parallel()

	c := NewBopomofoContext(openStore(t), nil, nil, nil, ContextConfig{ModeSimp: true}, nil)

	assert.True(t, c.SetSchema(KeyboardHsu))
	assert.Equal(t, KeyboardHsu, c.Schema())
	assert.False(t, c.SetSchema(keyboardLast))
	assert.False(t, c.SetSchema(BopomofoSchema(99)))
	assert.Equal(t, KeyboardHsu, c.Schema())
}

func TestInsertRejectsNonPinyinKeys(t *testing.T) {
	t.Parallel()

	c, rec := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})

	assert.False(t, c.Insert('A'))
	assert.False(t, c.Insert('1'))
	assert.False(t, c.Insert(' '))
	assert.Empty(t, c.InputText())
	assert.Empty(t, rec.events, "rejected keys must not notify")

	assert.True(t, c.Insert('\''))
}

func TestInsertAtCapacity(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	for i := 0; i < domain.MaxPinyinLen; i++ {
		require.True(t, c.Insert('a'))
	}
	require.Len(t, c.InputText(), domain.MaxPinyinLen)

	// At capacity the key is swallowed without mutation.
	assert.True(t, c.Insert('a'))
	assert.Len(t, c.InputText(), domain.MaxPinyinLen)
	checkInvariants(t, c.Context)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")
	for i := 0; i < 5; i++ {
		require.True(t, c.RemoveCharBefore())
		checkInvariants(t, c.Context)
	}

	assert.Empty(t, c.InputText())
	assert.Zero(t, c.Cursor())
	assert.Equal(t, PreeditText{}, c.PreeditText())
	assert.Empty(t, c.AuxiliaryText())
	assert.False(t, c.RemoveCharBefore())
}

func TestCursorMovesAreInverses(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")

	require.True(t, c.MoveCursorLeft())
	require.True(t, c.MoveCursorLeft())
	assert.Equal(t, 3, c.Cursor())
	require.True(t, c.MoveCursorRight())
	require.True(t, c.MoveCursorRight())
	assert.Equal(t, 5, c.Cursor())
	checkInvariants(t, c.Context)

	// At the extremes the moves report false.
	require.True(t, c.MoveCursorToEnd() == false)
	require.True(t, c.MoveCursorToBegin())
	assert.False(t, c.MoveCursorLeft())
	require.True(t, c.MoveCursorToEnd())
	assert.False(t, c.MoveCursorRight())
}

func TestRemoveWordBefore(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")

	require.True(t, c.RemoveWordBefore())
	assert.Equal(t, "ni", c.InputText())
	assert.Equal(t, 2, c.Cursor())
	checkInvariants(t, c.Context)

	require.True(t, c.RemoveWordBefore())
	assert.Empty(t, c.InputText())
	assert.False(t, c.RemoveWordBefore())
}

func TestRemoveWordAfterErasesToEnd(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")
	require.True(t, c.MoveCursorLeftByWord())
	assert.Equal(t, 2, c.Cursor())

	require.True(t, c.RemoveWordAfter())
	assert.Equal(t, "ni", c.InputText())
	assert.False(t, c.RemoveWordAfter())
	checkInvariants(t, c.Context)
}

func TestFocusAndSelect(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")

	// Candidates: 你好 then single syllables.
	cands := c.Candidates()
	require.NotEmpty(t, cands)
	assert.Equal(t, "你好", cands[0].Text)

	require.True(t, c.FocusCandidateNext())
	assert.Equal(t, 1, c.FocusedCandidate())
	require.True(t, c.FocusCandidatePrev())
	assert.Zero(t, c.FocusedCandidate())
	assert.False(t, c.FocusCandidatePrev())
	assert.False(t, c.FocusCandidate(10_000))

	// Select a single-syllable candidate and check the composed preedit.
	idx := -1
	for i, cand := range cands {
		if !cand.Special && cand.Phrase.Len() == 1 && cand.Text == "你" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	require.True(t, c.SelectCandidate(idx))
	checkInvariants(t, c.Context)

	p := c.PreeditText()
	assert.Equal(t, "你", p.Selected)
	assert.Equal(t, "好", p.Candidate)
	assert.Equal(t, "", p.Rest)
	assert.Equal(t, "hao|", c.AuxiliaryText())

	// Unselect restores the original view.
	require.True(t, c.UnselectCandidates())
	assert.Equal(t, "你好", c.PreeditText().Candidate)
	checkInvariants(t, c.Context)
}

func TestAuxiliaryTextFullPinyin(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")
	assert.Equal(t, "ni hao|", c.AuxiliaryText())
}

func TestTraditionalRendering(t *testing.T) {
	t.Parallel()

	c, rec := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: false})
	typeKeys(t, c, "dong")

	assert.Equal(t, "東", c.PreeditText().Candidate)
	require.True(t, c.SelectCandidate(0))
	c.Commit(TypeConverted)
	require.Equal(t, []string{"東"}, rec.commits)
}

func TestSpecialPhraseFlow(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(time.Date(2011, 3, 5, 0, 0, 0, 0, time.Local))
	table := special.NewTableFromStrings(map[string][]string{
		"rq": {"今天是${year}年${month}月${day}日"},
	}, clock)

	rec := &recorder{}
	c := NewFullPinyinContext(openStore(t), nil, table, nil,
		ContextConfig{ModeSimp: true}, rec)

	typeKeys(t, c, "rq")

	// The special phrase leads the flat candidate list.
	cand, ok := c.Candidate(0)
	require.True(t, ok)
	assert.True(t, cand.Special)
	assert.Equal(t, "今天是2011年3月5日", cand.Text)
	assert.Equal(t, "今天是2011年3月5日", c.PreeditText().Candidate)

	require.True(t, c.SelectCandidate(0))
	c.Commit(TypeConverted)
	require.Equal(t, []string{"今天是2011年3月5日"}, rec.commits)
	assert.Empty(t, c.InputText())
}

func TestResetMatchesFreshContext(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	c, _ := newPinyinContext(t, store, ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")
	require.True(t, c.SelectCandidate(0))

	c.Reset()

	fresh, _ := newPinyinContext(t, store, ContextConfig{ModeSimp: true})
	assert.Equal(t, fresh.InputText(), c.InputText())
	assert.Equal(t, fresh.Cursor(), c.Cursor())
	assert.Equal(t, fresh.PreeditText(), c.PreeditText())
	assert.Equal(t, fresh.AuxiliaryText(), c.AuxiliaryText())
	assert.Equal(t, fresh.FocusedCandidate(), c.FocusedCandidate())
	assert.Empty(t, c.Candidates())
	checkInvariants(t, c.Context)
}

func TestLearningReordersNextQuery(t *testing.T) {
	t.Parallel()

	store := openStore(t)

	c, rec := newPinyinContext(t, store, ContextConfig{ModeSimp: true})
	typeKeys(t, c, "ni")

	// 你 leads on frequency; select and commit the lower-ranked 尼.
	idx := -1
	for i, cand := range c.Candidates() {
		if cand.Text == "尼" {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	require.True(t, c.SelectCandidate(idx))
	c.Commit(TypeConverted)
	require.Equal(t, []string{"尼"}, rec.commits)

	c2, _ := newPinyinContext(t, store, ContextConfig{ModeSimp: true})
	typeKeys(t, c2, "ni")
	first := c2.Candidates()[0]
	assert.Equal(t, "尼", first.Text, "learned phrase should rank first")
	assert.GreaterOrEqual(t, first.Phrase.UserFreq, uint32(1))
}

func TestFuzzyCandidates(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t),
		ContextConfig{Option: domain.OptionFuzzyCCh, ModeSimp: true})
	typeKeys(t, c, "ci")

	texts := make(map[string]bool)
	for _, cand := range c.Candidates() {
		texts[cand.Text] = true
	}
	assert.True(t, texts["词"], "exact match missing")
	assert.True(t, texts["吃"], "fuzzy ch match missing")
}

func TestIncompletePinyinMatchesBareInitial(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t),
		ContextConfig{Option: domain.OptionIncompletePinyin, ModeSimp: true})

	// A bare initial still yields candidates on the initial alone.
	typeKeys(t, c, "d")
	texts := make(map[string]bool)
	for _, cand := range c.Candidates() {
		texts[cand.Text] = true
	}
	assert.True(t, texts["东"], "incomplete initial should match on sheng")
	checkInvariants(t, c.Context)
}

func TestObserverOrderPerOperation(t *testing.T) {
	t.Parallel()

	c, rec := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	require.True(t, c.Insert('n'))

	// One flush: each channel at most once, in the fixed order.
	assert.Equal(t, []string{"input", "cursor", "preedit", "aux", "candidates"}, rec.events)
}

func TestMoveCursorMidBufferPreedit(t *testing.T) {
	t.Parallel()

	c, _ := newPinyinContext(t, openStore(t), ContextConfig{ModeSimp: true})
	typeKeys(t, c, "nihao")
	require.True(t, c.MoveCursorLeft())
	checkInvariants(t, c.Context)

	// Mid-buffer focus reveals raw spellings with a cursor marker.
	p := c.PreeditText()
	assert.Contains(t, p.Candidate, "|")
	assert.Contains(t, c.AuxiliaryText(), "|")
}
