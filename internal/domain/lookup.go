package domain

var (
	shengByText = func() map[string]Sheng {
		m := make(map[string]Sheng, int(shengLast))
		for s := ShengB; s < shengLast; s++ {
			m[shengText[s]] = s
		}
		return m
	}()

	yunByText = func() map[string]Yun {
		m := make(map[string]Yun, int(yunLast))
		for y := YunA; y < yunLast; y++ {
			m[yunText[y]] = y
		}
		return m
	}()
)

// ParseSheng resolves a Latin initial spelling. The empty string resolves
// to ShengZero.
func ParseSheng(text string) (Sheng, bool) {
	if text == "" {
		return ShengZero, true
	}
	s, ok := shengByText[text]
	return s, ok
}

// ParseYun resolves a Latin final spelling.
func ParseYun(text string) (Yun, bool) {
	y, ok := yunByText[text]
	return y, ok
}
