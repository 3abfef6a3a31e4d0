package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrtol(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		base  int
		value int64
		n     int
	}){
		{"", 0, 0, 0},
		{"junk", 10, 0, 0},
		{"42", 10, 42, 2},
		{"  -17xyz", 10, -17, 5},
		{"+9", 10, 9, 2},
		{"0x1F", 0, 0x1f, 4},
		{"0X1f", 16, 0x1f, 4},
		{"1f", 16, 0x1f, 2},
		{"0x", 0, 0, 1},
		{"0xg", 16, 0, 1},
		{"010", 0, 8, 3},
		{"019", 0, 1, 2},
		{"0", 0, 0, 1},
		{"-0x10", 0, -16, 5},
		{"FFFFFFFF", 16, 0xffffffff, 8},
		{"99999999999999999999", 10, math.MaxInt64, 20},
		{"-99999999999999999999", 10, math.MinInt64, 21},
	}

	for _, entry := range table {
		value, n := Strtol(entry.text, entry.base)
		assert.Equal(entry.value, value, entry.text)
		assert.Equal(entry.n, n, entry.text)
	}
}

func TestAtoi(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int32(0), Atoi(""))
	assert.Equal(int32(-5), Atoi("-5"))
	assert.Equal(int32(12), Atoi("12abc"))
	assert.Equal(int32(0), Atoi("-0x10"))
	assert.Equal(int32(0), Atoi("$v0"))
	assert.Equal(int32(-1), Atoi("4294967295"))
}

func TestIterSeq2(t *testing.T) {
	assert := assert.New(t)

	type reg int

	seq := IterSeq2Concat(
		IterSeq2Range(reg(0), "a", "b"),
		IterSeq2Range(reg(5), "c", "", "e"),
	)

	var got []string
	var idx []reg
	for n, name := range seq {
		idx = append(idx, n)
		got = append(got, name)
	}

	assert.Equal([]reg{0, 1, 5, 7}, idx)
	assert.Equal([]string{"a", "b", "c", "e"}, got)

	// Early stop.
	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}
