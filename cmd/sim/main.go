// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/ezrec/simp/emulator"
	"github.com/ezrec/simp/translate"
)

const (
	ARG_IMEMIN = iota
	ARG_DMEMIN
	ARG_DISKIN
	ARG_IRQ2IN
	ARG_DMEMOUT
	ARG_REGOUT
	ARG_TRACE
	ARG_HWREGTRACE
	ARG_CYCLES
	ARG_LEDS
	ARG_DISPLAY7SEG
	ARG_DISKOUT
	ARG_MONITOR
	ARG_MONITOR_YUV
	ARG_COUNT
)

func usage() {
	translate.Fprintf(flag.CommandLine.Output(),
		"Usage: %v [-v] imemin.txt dmemin.txt diskin.txt irq2in.txt dmemout.txt regout.txt trace.txt hwregtrace.txt cycles.txt leds.txt display7seg.txt diskout.txt monitor.txt monitor.yuv\n",
		os.Args[0])
	flag.PrintDefaults()
}

// loadFile opens a file and hands it to an image loader.
func loadFile(path string, load func(inf *os.File) error) {
	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	err = load(inf)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}

// output is a created file and its buffered writer.
type output struct {
	path string
	file *os.File
	*bufio.Writer
}

func createFile(path string) (out *output) {
	ouf, err := os.Create(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	out = &output{path: path, file: ouf, Writer: bufio.NewWriter(ouf)}
	return
}

func (out *output) Close() {
	err := out.Flush()
	if err == nil {
		err = out.file.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", out.path, err)
	}
}

func main() {
	var verbose bool

	flag.Usage = usage
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != ARG_COUNT {
		flag.Usage()
		os.Exit(1)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// All inputs load before any output is created.
	loadFile(flag.Arg(ARG_IMEMIN), func(inf *os.File) error { return emu.Rom.Unmarshal(inf) })
	loadFile(flag.Arg(ARG_DMEMIN), func(inf *os.File) error { return emu.Memory.Unmarshal(inf) })
	loadFile(flag.Arg(ARG_DISKIN), func(inf *os.File) error { return emu.Disk.Unmarshal(inf) })
	loadFile(flag.Arg(ARG_IRQ2IN), func(inf *os.File) error { return emu.Schedule.Unmarshal(inf) })

	var files [ARG_COUNT]*output
	for n := ARG_DMEMOUT; n < ARG_COUNT; n++ {
		files[n] = createFile(flag.Arg(n))
	}

	emu.Trace.Output = files[ARG_TRACE]
	emu.HwTrace.Output = files[ARG_HWREGTRACE]
	emu.Leds.Output = files[ARG_LEDS]
	emu.Display.Output = files[ARG_DISPLAY7SEG]

	emu.Reset()
	runErr := emu.Run()

	err := emu.Dump(&emulator.Outputs{
		Memory:     files[ARG_DMEMOUT],
		Registers:  files[ARG_REGOUT],
		Cycles:     files[ARG_CYCLES],
		Disk:       files[ARG_DISKOUT],
		Monitor:    files[ARG_MONITOR],
		MonitorRaw: files[ARG_MONITOR_YUV],
	})

	for _, out := range files[ARG_DMEMOUT:] {
		out.Close()
	}

	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if runErr != nil {
		log.Fatalf("%v: %v", flag.Arg(ARG_IMEMIN), runErr)
	}
}
