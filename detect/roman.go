package detect

import (
	"fmt"
	"strings"
)

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

var romanDigits = map[byte]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// IntToRoman converts n to classical Roman notation. Valid for 1..3999.
func IntToRoman(n int) (string, error) {
	if n <= 0 || n > 3999 {
		return "", fmt.Errorf("number out of roman numeral range: %d", n)
	}
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String(), nil
}

// IsRomanToken reports whether s is non-empty and composed only of the
// roman digits I V X L C D M, ignoring case.
func IsRomanToken(s string) bool {
	if s == "" {
		return false
	}
	s = strings.ToUpper(s)
	for i := 0; i < len(s); i++ {
		if _, ok := romanDigits[s[i]]; !ok {
			return false
		}
	}
	return true
}

// RomanToInt converts a roman numeral token to its integer value using
// subtractive notation.
func RomanToInt(s string) (int, error) {
	if !IsRomanToken(s) {
		return 0, fmt.Errorf("invalid roman numeral %q", s)
	}
	s = strings.ToUpper(s)
	total := 0
	for i := 0; i < len(s); i++ {
		v := romanDigits[s[i]]
		if i+1 < len(s) && romanDigits[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	return total, nil
}
