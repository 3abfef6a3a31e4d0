// Package io provides the device models of the SIMP system: data memory,
// the disk controller, the monitor framebuffer, the interrupt schedule, the
// cycle stamped output logs and the memory-mapped I/O register bank that
// ties them to the CPU.
//
// Every device loads from and dumps to the line oriented text images used
// by the simulator.
package io
