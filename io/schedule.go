package io

import (
	"bufio"
	"fmt"
	"io"
)

// Schedule is the list of clock cycles that raise the external interrupt.
type Schedule struct {
	Cycles []int32

	cursor int
}

// Rewind restarts the schedule.
func (sc *Schedule) Rewind() {
	sc.cursor = 0
}

// Pending returns the number of interrupts not yet raised.
func (sc *Schedule) Pending() int {
	return len(sc.Cycles) - sc.cursor
}

// Fire returns true, and advances the schedule, when the next interrupt is
// due at this clock cycle.
func (sc *Schedule) Fire(clks int32) (ok bool) {
	if sc.cursor < len(sc.Cycles) && sc.Cycles[sc.cursor] == clks {
		sc.cursor++
		ok = true
	}

	return
}

// Unmarshal loads a schedule of white space separated decimal cycles.
// Loading stops at the first word that is not a number.
func (sc *Schedule) Unmarshal(r io.Reader) (err error) {
	sc.Cycles = nil
	sc.cursor = 0

	rd := bufio.NewReader(r)
	for {
		var value int32
		_, err = fmt.Fscan(rd, &value)
		if err != nil {
			// Any scan failure ends the schedule.
			err = nil
			break
		}
		sc.Cycles = append(sc.Cycles, value)
	}

	return
}
