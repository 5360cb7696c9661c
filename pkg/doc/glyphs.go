package doc

import "strconv"

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

var circledDigits = []string{"①", "②", "③", "④", "⑤", "⑥", "⑦", "⑧", "⑨", "⑩"}

// Roman returns the heading numeral for a 1-based top-level section index.
func Roman(n int) string {
	if n >= 1 && n <= len(romanNumerals) {
		return romanNumerals[n-1]
	}
	return strconv.Itoa(n)
}

// Circled returns the glyph for a 1-based fourth-tier heading index.
func Circled(n int) string {
	if n >= 1 && n <= len(circledDigits) {
		return circledDigits[n-1]
	}
	return strconv.Itoa(n)
}
