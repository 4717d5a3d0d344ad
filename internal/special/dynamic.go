package special

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// Dynamic is a special phrase whose text is a template containing
// ${name} placeholders substituted from the local wall clock at render
// time. Unrecognized names are emitted verbatim as ${name}; an
// unterminated ${ is emitted literally.
type Dynamic struct {
	template string
	clock    clockwork.Clock
}

// NewDynamic wraps a template. A nil clock falls back to the real clock.
func NewDynamic(template string, clock clockwork.Clock) *Dynamic {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Dynamic{template: template, clock: clock}
}

func isTemplate(s string) bool {
	return strings.Contains(s, "${")
}

// Render expands the template against the current local time.
func (d *Dynamic) Render() string {
	now := d.clock.Now().Local()

	var b strings.Builder
	rest := d.template
	for {
		open := strings.Index(rest, "${")
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		rest = rest[open+2:]

		end := strings.Index(rest, "}")
		if end < 0 {
			// No terminator: the literal "${" plus the remainder.
			b.WriteString("${")
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(variable(rest[:end], now))
		rest = rest[end+1:]
	}
}

func variable(name string, now time.Time) string {
	switch name {
	case "year":
		return fmt.Sprintf("%d", now.Year())
	case "year_yy":
		return fmt.Sprintf("%02d", now.Year()%100)
	case "month":
		return fmt.Sprintf("%d", int(now.Month()))
	case "month_mm":
		return fmt.Sprintf("%02d", int(now.Month()))
	case "day":
		return fmt.Sprintf("%d", now.Day())
	case "day_dd":
		return fmt.Sprintf("%02d", now.Day())
	case "weekday":
		return fmt.Sprintf("%d", int(now.Weekday())+1)
	case "fullhour":
		return fmt.Sprintf("%02d", now.Hour())
	case "falfhour", "halfhour":
		// Deployed phrase tables use the "falfhour" spelling; both are
		// accepted.
		return fmt.Sprintf("%02d", now.Hour()%12)
	case "ampm":
		if now.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "minute":
		return fmt.Sprintf("%02d", now.Minute())
	case "second":
		return fmt.Sprintf("%02d", now.Second())
	case "year_cn":
		return yearCN(now.Year(), false)
	case "year_yy_cn":
		return yearCN(now.Year(), true)
	case "month_cn":
		return monthCN[now.Month()-1]
	case "day_cn":
		return dayCN(now.Day())
	case "weekday_cn":
		return weekdayCN[now.Weekday()]
	case "fullhour_cn":
		return hourCN[now.Hour()]
	case "halfhour_cn":
		return hourCN[now.Hour()%12]
	case "ampm_cn":
		if now.Hour() < 12 {
			return "上午"
		}
		return "下午"
	case "minute_cn":
		return minsecCN(now.Minute())
	case "second_cn":
		return minsecCN(now.Second())
	}
	return "${" + name + "}"
}

var yearDigits = [...]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

var monthCN = [...]string{
	"一", "二", "三", "四", "五", "六", "七", "八",
	"九", "十", "十一", "十二",
}

var weekdayCN = [...]string{"日", "一", "二", "三", "四", "五", "六"}

var hourCN = [...]string{
	"零", "一", "二", "三", "四",
	"五", "六", "七", "八", "九",
	"十", "十一", "十二", "十三", "十四",
	"十五", "十六", "十七", "十八", "十九",
	"二十", "二十一", "二十二", "二十三",
}

// yearCN renders the year digit by digit; the two-digit form is
// zero-padded.
func yearCN(year int, yy bool) string {
	digits := 0
	if yy {
		year %= 100
		digits = 2
	}
	var out string
	for year != 0 || digits > 0 {
		out = yearDigits[year%10] + out
		year /= 10
		digits--
	}
	return out
}

// Days compose a tens prefix with a units character; an empty tens is
// omitted.
var dayTens = [...]string{"", "十", "二十", "三十"}
var dayUnits = [...]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

func dayCN(day int) string {
	return dayTens[day/10] + dayUnits[day%10]
}

var minsecTens = [...]string{"零", "十", "二十", "三十", "四十", "五十", "六十"}

func minsecCN(v int) string {
	return minsecTens[v/10] + dayUnits[v%10]
}
