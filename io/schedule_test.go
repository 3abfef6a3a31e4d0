package io

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedule(t *testing.T) {
	assert := assert.New(t)

	sc := &Schedule{}

	assert.NoError(sc.Unmarshal(strings.NewReader("3\n 7 7\n\t12 x 20\n")))
	assert.Equal([]int32{3, 7, 7, 12}, sc.Cycles)
	assert.Equal(4, sc.Pending())

	var fired []int32
	for clks := range int32(30) {
		for sc.Fire(clks) {
			fired = append(fired, clks)
		}
	}
	assert.Equal([]int32{3, 7, 7, 12}, fired)
	assert.Equal(0, sc.Pending())

	sc.Rewind()
	assert.False(sc.Fire(2))
	assert.True(sc.Fire(3))
	assert.Equal(3, sc.Pending())
}

func TestSchedule_Unordered(t *testing.T) {
	assert := assert.New(t)

	sc := &Schedule{}

	// A cycle that has already passed blocks the rest of the schedule.
	assert.NoError(sc.Unmarshal(strings.NewReader("5 2 9")))
	for clks := range int32(20) {
		sc.Fire(clks)
	}
	assert.Equal(2, sc.Pending())

	assert.NoError(sc.Unmarshal(strings.NewReader("")))
	assert.Equal(0, sc.Pending())
	assert.False(sc.Fire(0))
}
