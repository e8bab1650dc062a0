package detect

import "testing"

func TestRomanToInt(t *testing.T) {
	testCases := []struct {
		roman string
		want  int
	}{
		{"I", 1},
		{"IV", 4},
		{"IX", 9},
		{"XL", 40},
		{"XC", 90},
		{"CD", 400},
		{"CM", 900},
		{"MCMXCIX", 1999},
		{"MMMCMXCIX", 3999},
		{"xiv", 14},
	}

	for _, tc := range testCases {
		t.Run(tc.roman, func(t *testing.T) {
			got, err := RomanToInt(tc.roman)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("RomanToInt(%q) = %d, want %d", tc.roman, got, tc.want)
			}
		})
	}
}

func TestRomanToIntInvalid(t *testing.T) {
	for _, roman := range []string{"", "ABC", "12", "IV.", "I I"} {
		t.Run(roman, func(t *testing.T) {
			if _, err := RomanToInt(roman); err == nil {
				t.Errorf("RomanToInt(%q) expected error, got none", roman)
			}
		})
	}
}

func TestIntToRomanOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 4000} {
		if _, err := IntToRoman(n); err == nil {
			t.Errorf("IntToRoman(%d) expected error, got none", n)
		}
	}
}

func TestRomanRoundTrip(t *testing.T) {
	for n := 1; n <= 3999; n++ {
		roman, err := IntToRoman(n)
		if err != nil {
			t.Fatalf("IntToRoman(%d): %v", n, err)
		}
		back, err := RomanToInt(roman)
		if err != nil {
			t.Fatalf("RomanToInt(%q): %v", roman, err)
		}
		if back != n {
			t.Fatalf("round trip %d -> %q -> %d", n, roman, back)
		}
	}
}
