package isbn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{"978-0-306-40615-7", "9780306406157"},
		{" 0 306 40615 2 ", "0306406152"},
		{"ISBN 080442957X", "080442957X"},
		{"080442957x", "080442957"},
		{"", ""},
		{"abc", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Normalize(tc.raw), "Normalize(%q)", tc.raw)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		normalized string
		valid      bool
	}{
		{"isbn10", "0306406152", "0306406152", true},
		{"isbn10 wrong check digit", "0306406153", "0306406153", false},
		{"isbn10 hyphenated", "0-306-40615-2", "0306406152", true},
		{"isbn10 X check digit", "080442957X", "080442957X", true},
		{"isbn10 lowercase x check digit", "080442957x", "080442957", false},
		{"isbn10 X in body counts as zero", "03064X6152", "03064X6152", true},
		{"isbn10 leading X counts as zero", "X306406152", "X306406152", true},
		{"isbn10 X in body wrong sum", "030X406152", "030X406152", false},
		{"isbn13", "9780306406157", "9780306406157", true},
		{"isbn13 hyphenated", "978-0-306-40615-7", "9780306406157", true},
		{"isbn13 wrong check digit", "9780306406158", "9780306406158", false},
		{"isbn13 X check digit wrong sum", "978030640615X", "978030640615X", false},
		{"isbn13 X check digit counts as zero", "978000000020X", "978000000020X", true},
		{"isbn13 X in body counts as zero", "97800000000X2", "97800000000X2", true},
		{"too short", "12345", "12345", false},
		{"eleven digits", "03064061520", "03064061520", false},
		{"empty", "", "", false},
		{"letters only", "not an isbn", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, ok := NormalizeAndValidate(tc.raw)
			assert.Equal(t, tc.normalized, normalized)
			assert.Equal(t, tc.valid, ok)
		})
	}
}

func TestISBN13_EveryOtherCheckDigitIsInvalid(t *testing.T) {
	for d := 0; d <= 9; d++ {
		if d == 7 {
			continue
		}
		s := fmt.Sprintf("978030640615%d", d)
		assert.False(t, Valid(s), s)
	}
}

func TestISBN10_SingleDigitChangeIsDetected(t *testing.T) {
	base := "0306406152"
	for pos := 0; pos < len(base); pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if base[pos] == d {
				continue
			}
			mutated := base[:pos] + string(d) + base[pos+1:]
			assert.False(t, Valid(mutated), mutated)
		}
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindISBN10, KindOf("0306406152"))
	assert.Equal(t, KindISBN13, KindOf("9780306406157"))
	assert.Equal(t, KindUnknown, KindOf("123"))
	assert.Equal(t, "ISBN-13", KindISBN13.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
