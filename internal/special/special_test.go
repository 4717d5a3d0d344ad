package special

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

// fixedClock pins the wall clock at 2011-03-05 14:07:09, a Saturday.
func fixedClock(t *testing.T) clockwork.Clock {
	t.Helper()
	return clockwork.NewFakeClockAt(time.Date(2011, 3, 5, 14, 7, 9, 0, time.Local))
}

func TestDynamicRender(t *testing.T) {
	t.Parallel()

	clock := fixedClock(t)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "date composition",
			template: "今天是${year}年${month}月${day}日",
			want:     "今天是2011年3月5日",
		},
		{name: "two digit year", template: "${year_yy}", want: "11"},
		{name: "two digit month and day", template: "${month_mm}${day_dd}", want: "0305"},
		{name: "weekday sunday based", template: "${weekday}", want: "7"},
		{name: "full hour", template: "${fullhour}", want: "14"},
		{name: "half hour legacy spelling", template: "${falfhour}", want: "02"},
		{name: "half hour plain spelling", template: "${halfhour}", want: "02"},
		{name: "am pm", template: "${ampm}", want: "PM"},
		{name: "minute second", template: "${minute}:${second}", want: "07:09"},
		{name: "unknown name verbatim", template: "${nosuch}", want: "${nosuch}"},
		{name: "unterminated placeholder", template: "${", want: "${"},
		{name: "unterminated with prefix", template: "a${rest", want: "a${rest"},
		{name: "no placeholder", template: "plain", want: "plain"},
		{name: "chinese year", template: "${year_cn}", want: "二〇一一"},
		{name: "chinese two digit year", template: "${year_yy_cn}", want: "一一"},
		{name: "chinese month", template: "${month_cn}", want: "三"},
		{name: "chinese day", template: "${day_cn}", want: "五"},
		{name: "chinese weekday", template: "${weekday_cn}", want: "六"},
		{name: "chinese full hour", template: "${fullhour_cn}", want: "十四"},
		{name: "chinese half hour", template: "${halfhour_cn}", want: "二"},
		{name: "chinese ampm", template: "${ampm_cn}", want: "下午"},
		{name: "chinese minute", template: "${minute_cn}", want: "零七"},
		{name: "chinese second", template: "${second_cn}", want: "零九"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()
			got := NewDynamic(tt.template, clock).Render()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDynamicChineseComposition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   time.Time
		tmpl string
		want string
	}{
		{
			name: "day with tens",
			at:   time.Date(2011, 3, 25, 0, 0, 0, 0, time.Local),
			tmpl: "${day_cn}",
			want: "二十五",
		},
		{
			name: "round tens day",
			at:   time.Date(2011, 3, 30, 0, 0, 0, 0, time.Local),
			tmpl: "${day_cn}",
			want: "三十",
		},
		{
			name: "minute above ten",
			at:   time.Date(2011, 3, 5, 0, 42, 0, 0, time.Local),
			tmpl: "${minute_cn}",
			want: "四十二",
		},
		{
			name: "midnight hour",
			at:   time.Date(2011, 3, 5, 0, 0, 0, 0, time.Local),
			tmpl: "${fullhour_cn}",
			want: "零",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()
			clock := clockwork.NewFakeClockAt(tt.at)
			assert.Equal(t, tt.want, NewDynamic(tt.tmpl, clock).Render())
		})
	}
}

func TestTableLookup(t *testing.T) {
	t.Parallel()

	table := NewTableFromStrings(map[string][]string{
		"rq": {"今天是${year}年${month}月${day}日"},
		"bq": {"：）", "：（"},
	}, fixedClock(t))

	assert.Equal(t, []string{"今天是2011年3月5日"}, table.Lookup("rq"))
	assert.Equal(t, []string{"：）", "：（"}, table.Lookup("bq"))
	assert.Nil(t, table.Lookup("zz"))
	assert.Nil(t, table.Lookup(""))
	assert.Equal(t, []string{"bq", "rq"}, table.Triggers())
}

func TestNilTable(t *testing.T) {
	t.Parallel()

	var table *Table
	assert.Nil(t, table.Lookup("rq"))
	assert.Nil(t, table.Triggers())
}
