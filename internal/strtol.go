package internal

import (
	"math"
)

// digit returns the value of c in bases up to 36, or -1.
func digit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// Strtol parses the longest numeric prefix of text with the rules of the C
// library strtol(): leading white space, an optional sign, and for base 0 a
// 0x (hex) or 0 (octal) prefix. Text without digits parses as 0, and values
// beyond 64 bits saturate.
//
// The count of bytes consumed is returned in n; n is 0 when nothing parsed.
func Strtol(text string, base int) (value int64, n int) {
	i := 0
	for i < len(text) && (text[i] == ' ' || (text[i] >= '\t' && text[i] <= '\r')) {
		i++
	}

	neg := false
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		neg = text[i] == '-'
		i++
	}

	hasHex := i+2 < len(text) && text[i] == '0' && (text[i+1] == 'x' || text[i+1] == 'X')
	if hasHex {
		d := digit(text[i+2])
		hasHex = d >= 0 && d < 16
	}

	switch {
	case (base == 0 || base == 16) && hasHex:
		base = 16
		i += 2
	case base == 0 && i < len(text) && text[i] == '0':
		base = 8
	case base == 0:
		base = 10
	}

	var acc uint64
	overflow := false
	start := i
	for ; i < len(text); i++ {
		d := digit(text[i])
		if d < 0 || d >= base {
			break
		}
		if acc > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
			continue
		}
		acc = acc*uint64(base) + uint64(d)
	}

	if i == start {
		return
	}
	n = i

	switch {
	case neg && (overflow || acc > uint64(math.MaxInt64)+1):
		value = math.MinInt64
	case neg:
		value = -int64(acc)
	case overflow || acc > math.MaxInt64:
		value = math.MaxInt64
	default:
		value = int64(acc)
	}

	return
}

// Atoi converts the leading decimal number in text, like C atoi().
// The result is truncated to 32 bits.
func Atoi(text string) int32 {
	value, _ := Strtol(text, 10)
	return int32(value)
}
