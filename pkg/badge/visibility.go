package badge

// zeroText is the text a badge hides itself for.
const zeroText = "0"

// IsHidden reports whether a badge showing text should hide. Comparison is
// on the string, so "00" and " 0" stay visible.
func IsHidden(hidesWhenZero bool, text string) bool {
	return hidesWhenZero && text == zeroText
}
