package io

import (
	"errors"

	"github.com/ezrec/simp/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTooLarge = errors.New(f("image too large"))
)

// ErrRegisterRange is an I/O register index outside of the bank.
type ErrRegisterRange int32

func (err ErrRegisterRange) Error() string {
	return f("i/o register %d out of range", int32(err))
}

// ErrMemoryRange is a data memory address outside of memory.
type ErrMemoryRange int32

func (err ErrMemoryRange) Error() string {
	return f("memory address %d out of range", int32(err))
}

// ErrMonitorRange is a pixel offset outside of the monitor.
type ErrMonitorRange int32

func (err ErrMonitorRange) Error() string {
	return f("monitor offset %d out of range", int32(err))
}

// ErrDiskRange is a disk transfer outside of the disk or memory.
type ErrDiskRange struct {
	Sector int32
	Buffer int32
}

func (err ErrDiskRange) Error() string {
	return f("disk sector %d to buffer %d out of range", err.Sector, err.Buffer)
}

// ErrLine locates an error in a loaded image.
type ErrLine struct {
	LineNo int
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
