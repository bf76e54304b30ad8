// Package isbn normalizes and validates ISBN-10 and ISBN-13 identifiers.
package isbn

import "strings"

// Kind is the ISBN flavour a normalized string has by length.
type Kind int

const (
	KindUnknown Kind = iota
	KindISBN10
	KindISBN13
)

func (k Kind) String() string {
	switch k {
	case KindISBN10:
		return "ISBN-10"
	case KindISBN13:
		return "ISBN-13"
	default:
		return "unknown"
	}
}

// Normalize keeps digits and uppercase X only. A lowercase x is dropped.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if (c >= '0' && c <= '9') || c == 'X' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// KindOf reports the flavour of an already normalized string.
func KindOf(normalized string) Kind {
	switch len(normalized) {
	case 10:
		return KindISBN10
	case 13:
		return KindISBN13
	default:
		return KindUnknown
	}
}

// NormalizeAndValidate normalizes raw and checks the checksum of the result.
// It never fails; the normalized string is returned even when invalid.
func NormalizeAndValidate(raw string) (string, bool) {
	s := Normalize(raw)
	switch KindOf(s) {
	case KindISBN10:
		return s, valid10(s)
	case KindISBN13:
		return s, valid13(s)
	default:
		return s, false
	}
}

// Valid reports whether raw normalizes to a valid ISBN-10 or ISBN-13.
func Valid(raw string) bool {
	_, ok := NormalizeAndValidate(raw)
	return ok
}

func valid10(s string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		sum += digit(s[i]) * (10 - i)
	}
	if s[9] == 'X' {
		sum += 10
	} else {
		sum += digit(s[9])
	}
	return sum%11 == 0
}

func valid13(s string) bool {
	sum := 0
	for i := 0; i < 12; i++ {
		w := 1
		if i%2 == 1 {
			w = 3
		}
		sum += digit(s[i]) * w
	}
	checksum := (10 - sum%10) % 10
	return checksum == digit(s[12])
}

// digit is the numeric value of a normalized character. An X outside the
// ISBN-10 check position counts as 0.
func digit(c byte) int {
	if c == 'X' {
		return 0
	}
	return int(c - '0')
}
