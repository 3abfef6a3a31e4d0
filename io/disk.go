package io

import (
	"bufio"
	"fmt"
	"io"
	"log"
)

const (
	DISK_SECTORS = 128  // Sectors on the disk.
	SECTOR_WORDS = 128  // Words per sector.
	DISK_CYCLES  = 1024 // Cycles to complete a transfer.
	DISK_WORDS   = DISK_SECTORS * SECTOR_WORDS
)

const (
	DISK_CMD_NONE  = 0
	DISK_CMD_READ  = 1 // Sector to memory.
	DISK_CMD_WRITE = 2 // Memory to sector.
)

// Disk is a fixed latency sector disk with DMA to data memory.
type Disk struct {
	Verbose bool

	Sector [DISK_SECTORS][SECTOR_WORDS]int32
	Offset int // Highest word written, plus one.
	Cycles int // Busy cycles of the current transfer.
}

// Reset clears the disk contents and the transfer state.
func (dk *Disk) Reset() {
	for n := range dk.Sector {
		clear(dk.Sector[n][:])
	}
	dk.Offset = 0
	dk.Cycles = 0
}

// Arm starts a new transfer.
func (dk *Disk) Arm() {
	dk.Cycles = 0
}

// Remaining returns the cycles left in the current transfer.
func (dk *Disk) Remaining() int {
	return DISK_CYCLES - dk.Cycles
}

// Tick advances the current transfer by one cycle. When the transfer
// completes the command is performed against memory, and done is set.
func (dk *Disk) Tick(cmd, sector, buffer int32, mem *Memory) (done bool, err error) {
	dk.Cycles++
	if dk.Cycles < DISK_CYCLES {
		return
	}

	dk.Cycles = 0
	done = true

	if dk.Verbose {
		log.Printf("disk: cmd %d sector %d buffer %d", cmd, sector, buffer)
	}

	switch cmd {
	case DISK_CMD_READ, DISK_CMD_WRITE:
		if sector < 0 || sector >= DISK_SECTORS {
			err = ErrDiskRange{Sector: sector, Buffer: buffer}
			return
		}
	default:
		return
	}

	if cmd == DISK_CMD_READ {
		err = mem.Write(buffer, dk.Sector[sector][:])
	} else {
		err = mem.Read(buffer, dk.Sector[sector][:])
		dk.Offset = max(dk.Offset, int(sector+1)*SECTOR_WORDS)
	}
	if err != nil {
		err = ErrDiskRange{Sector: sector, Buffer: buffer}
		return
	}

	return
}

// Unmarshal loads a disk image, one hex word per line in sector order.
// Blank lines are skipped, and words past the end of the disk are ignored.
func (dk *Disk) Unmarshal(r io.Reader) (err error) {
	dk.Reset()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		value, ok := hexLine(scanner.Text())
		if !ok {
			continue
		}
		if dk.Offset >= DISK_WORDS {
			break
		}
		dk.Sector[dk.Offset/SECTOR_WORDS][dk.Offset%SECTOR_WORDS] = value
		dk.Offset++
	}

	err = scanner.Err()
	return
}

// Marshal dumps the disk up to its offset, one hex word per line.
func (dk *Disk) Marshal(w io.Writer) (err error) {
	wr := bufio.NewWriter(w)
	defer func() {
		if err == nil {
			err = wr.Flush()
		}
	}()

	for n := range dk.Offset {
		_, err = fmt.Fprintf(wr, "%08X\n", uint32(dk.Sector[n/SECTOR_WORDS][n%SECTOR_WORDS]))
		if err != nil {
			return
		}
	}

	return
}
