package ime

// BopomofoSchema selects a bopomofo keyboard layout.
type BopomofoSchema int

// Supported keyboard layouts.
const (
	KeyboardStandard BopomofoSchema = iota
	KeyboardHsu
	KeyboardIBM
	KeyboardGinYieh
	KeyboardET
	KeyboardET26
	keyboardLast
)

// bopomofoKeyboards maps a key to its glyph per schema. A missing key
// means the key is rejected by that layout.
var bopomofoKeyboards = [keyboardLast]map[byte]rune{
	KeyboardStandard: {
		'1': 'ㄅ', 'q': 'ㄆ', 'a': 'ㄇ', 'z': 'ㄈ',
		'2': 'ㄉ', 'w': 'ㄊ', 's': 'ㄋ', 'x': 'ㄌ',
		'e': 'ㄍ', 'd': 'ㄎ', 'c': 'ㄏ',
		'r': 'ㄐ', 'f': 'ㄑ', 'v': 'ㄒ',
		'5': 'ㄓ', 't': 'ㄔ', 'g': 'ㄕ', 'b': 'ㄖ',
		'y': 'ㄗ', 'h': 'ㄘ', 'n': 'ㄙ',
		'u': 'ㄧ', 'j': 'ㄨ', 'm': 'ㄩ',
		'8': 'ㄚ', 'i': 'ㄛ', 'k': 'ㄜ', ',': 'ㄝ',
		'9': 'ㄞ', 'o': 'ㄟ', 'l': 'ㄠ', '.': 'ㄡ',
		'0': 'ㄢ', 'p': 'ㄣ', ';': 'ㄤ', '/': 'ㄥ', '-': 'ㄦ',
		'6': 'ˊ', '3': 'ˇ', '4': 'ˋ', '7': '˙',
	},
	KeyboardHsu: {
		'b': 'ㄅ', 'p': 'ㄆ', 'm': 'ㄇ', 'f': 'ㄈ',
		'd': 'ㄉ', 't': 'ㄊ', 'n': 'ㄋ', 'l': 'ㄌ',
		'g': 'ㄍ', 'k': 'ㄎ', 'h': 'ㄏ',
		'j': 'ㄐ', 'v': 'ㄑ', 'c': 'ㄒ',
		'z': 'ㄗ', 'a': 'ㄘ', 's': 'ㄙ', 'r': 'ㄖ',
		'e': 'ㄧ', 'x': 'ㄨ', 'u': 'ㄩ',
		'y': 'ㄚ', 'i': 'ㄛ', 'w': 'ㄝ',
		'o': 'ㄡ', 'q': 'ㄞ',
		'8': 'ㄢ', '9': 'ㄣ', '0': 'ㄤ', '-': 'ㄥ',
		'6': 'ˊ', '3': 'ˇ', '4': 'ˋ', '7': '˙',
	},
	KeyboardIBM: {
		'1': 'ㄅ', '2': 'ㄆ', '3': 'ㄇ', '4': 'ㄈ',
		'5': 'ㄉ', '6': 'ㄊ', '7': 'ㄋ', '8': 'ㄌ',
		'9': 'ㄍ', '0': 'ㄎ', '-': 'ㄏ',
		'q': 'ㄐ', 'w': 'ㄑ', 'e': 'ㄒ',
		'r': 'ㄓ', 't': 'ㄔ', 'y': 'ㄕ', 'u': 'ㄖ',
		'i': 'ㄗ', 'o': 'ㄘ', 'p': 'ㄙ',
		'a': 'ㄧ', 's': 'ㄨ', 'd': 'ㄩ',
		'f': 'ㄚ', 'g': 'ㄛ', 'h': 'ㄜ', 'j': 'ㄝ',
		'k': 'ㄞ', 'l': 'ㄟ', ';': 'ㄠ', 'z': 'ㄡ',
		'x': 'ㄢ', 'c': 'ㄣ', 'v': 'ㄤ', 'b': 'ㄥ', 'n': 'ㄦ',
		'm': 'ˊ', ',': 'ˇ', '.': 'ˋ', '/': '˙',
	},
	KeyboardGinYieh: {
		'2': 'ㄅ', 'w': 'ㄆ', 's': 'ㄇ', 'x': 'ㄈ',
		'3': 'ㄉ', 'e': 'ㄊ', 'd': 'ㄋ', 'c': 'ㄌ',
		'4': 'ㄍ', 'r': 'ㄎ', 'f': 'ㄏ',
		'5': 'ㄐ', 't': 'ㄑ', 'g': 'ㄒ',
		'6': 'ㄓ', 'y': 'ㄔ', 'h': 'ㄕ', 'n': 'ㄖ',
		'7': 'ㄗ', 'u': 'ㄘ', 'j': 'ㄙ',
		'8': 'ㄧ', 'i': 'ㄨ', 'k': 'ㄩ',
		'9': 'ㄚ', 'o': 'ㄛ', 'l': 'ㄜ', '0': 'ㄝ',
		'p': 'ㄞ', ';': 'ㄟ', '/': 'ㄠ', '.': 'ㄡ',
		'b': 'ㄢ', 'v': 'ㄣ', 'm': 'ㄤ', ',': 'ㄥ', '-': 'ㄦ',
		'q': 'ˊ', 'a': 'ˇ', 'z': 'ˋ', '1': '˙',
	},
	KeyboardET: {
		'b': 'ㄅ', 'p': 'ㄆ', 'm': 'ㄇ', 'f': 'ㄈ',
		'd': 'ㄉ', 't': 'ㄊ', 'n': 'ㄋ', 'l': 'ㄌ',
		'v': 'ㄍ', 'k': 'ㄎ', 'h': 'ㄏ',
		'g': 'ㄐ', '7': 'ㄑ', 'c': 'ㄒ',
		',': 'ㄓ', '.': 'ㄔ', '/': 'ㄕ', 'j': 'ㄖ',
		';': 'ㄗ', '\'': 'ㄘ', 's': 'ㄙ',
		'e': 'ㄧ', 'x': 'ㄨ', 'u': 'ㄩ',
		'a': 'ㄚ', 'o': 'ㄛ', 'r': 'ㄜ', 'w': 'ㄝ',
		'i': 'ㄞ', 'q': 'ㄟ', 'z': 'ㄠ', 'y': 'ㄡ',
		'8': 'ㄢ', '9': 'ㄣ', '0': 'ㄤ', '-': 'ㄥ', '=': 'ㄦ',
		'2': 'ˊ', '3': 'ˇ', '4': 'ˋ', '1': '˙',
	},
	KeyboardET26: {
		'b': 'ㄅ', 'p': 'ㄆ', 'm': 'ㄇ', 'f': 'ㄈ',
		'd': 'ㄉ', 't': 'ㄊ', 'n': 'ㄋ', 'l': 'ㄌ',
		'v': 'ㄍ', 'k': 'ㄎ', 'h': 'ㄏ',
		'g': 'ㄐ', 'c': 'ㄒ',
		'j': 'ㄖ', 's': 'ㄙ',
		'e': 'ㄧ', 'x': 'ㄨ', 'u': 'ㄩ',
		'a': 'ㄚ', 'o': 'ㄛ', 'r': 'ㄜ', 'w': 'ㄝ',
		'i': 'ㄞ', 'q': 'ㄟ', 'z': 'ㄠ', 'y': 'ㄡ',
		'2': 'ˊ', '3': 'ˇ', '4': 'ˋ', '1': '˙',
	},
}
