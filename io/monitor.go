package io

import (
	"bufio"
	"fmt"
	"io"
)

const (
	MONITOR_WIDTH  = 256
	MONITOR_HEIGHT = 256
	MONITOR_SIZE   = MONITOR_WIDTH * MONITOR_HEIGHT
)

// Monitor is a 256x256 greyscale framebuffer.
type Monitor struct {
	Pixel     [MONITOR_SIZE]uint8 // Row major pixels.
	MaxOffset int                 // Highest offset drawn.
}

// Reset blanks the monitor.
func (mon *Monitor) Reset() {
	clear(mon.Pixel[:])
	mon.MaxOffset = 0
}

// Draw sets the pixel at offset, row * 256 + column.
func (mon *Monitor) Draw(offset int32, value int32) (err error) {
	if offset < 0 || offset >= MONITOR_SIZE {
		err = ErrMonitorRange(offset)
		return
	}

	mon.Pixel[offset] = uint8(value)
	mon.MaxOffset = max(mon.MaxOffset, int(offset))
	return
}

// Marshal dumps the pixels up to the highest offset drawn, one hex byte per
// line.
func (mon *Monitor) Marshal(w io.Writer) (err error) {
	wr := bufio.NewWriter(w)
	defer func() {
		if err == nil {
			err = wr.Flush()
		}
	}()

	for _, value := range mon.Pixel[:mon.MaxOffset+1] {
		_, err = fmt.Fprintf(wr, "%02X\n", value)
		if err != nil {
			return
		}
	}

	return
}

// MarshalRaw dumps every pixel as a raw byte.
func (mon *Monitor) MarshalRaw(w io.Writer) (err error) {
	_, err = w.Write(mon.Pixel[:])
	return
}
