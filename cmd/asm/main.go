// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"github.com/ezrec/simp/cpu"
	"github.com/ezrec/simp/translate"
)

func usage() {
	translate.Fprintf(flag.CommandLine.Output(), "Usage: %v [-v] source.asm imemin.txt dmemin.txt\n", os.Args[0])
	flag.PrintDefaults()
}

// writeFile creates a file and fills it through a buffered writer.
func writeFile(path string, fill func(w io.Writer) error) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	wr := bufio.NewWriter(ouf)
	err = fill(wr)
	if err != nil {
		return
	}

	err = wr.Flush()
	return
}

func main() {
	var verbose bool

	flag.Usage = usage
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	source, imem, dmem := flag.Arg(0), flag.Arg(1), flag.Arg(2)

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err := asm.Parse(inf)
	for _, warn := range asm.Warnings {
		log.Printf("%v: %v", source, warn)
	}
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	err = writeFile(imem, prog.WriteImage)
	if err != nil {
		log.Fatalf("%v: %v", imem, err)
	}

	err = writeFile(dmem, prog.WriteData)
	if err != nil {
		log.Fatalf("%v: %v", dmem, err)
	}
}
