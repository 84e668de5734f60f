package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.burian.dev/asmlex/cmd/asmlex/internal/lexer"
	"go.burian.dev/asmlex/cmd/asmlex/internal/loader"
)

// defaultMnemonics covers a base RV32I-style instruction vocabulary for
// runs without an explicit table file.
var defaultMnemonics = []string{
	"ADD", "SUB", "AND", "OR", "XOR",
	"SLL", "SRL", "SRA",
	"ADDI", "ANDI", "ORI", "XORI",
	"LUI", "AUIPC",
	"LW", "SW", "LB", "SB",
	"JAL", "JALR",
	"BEQ", "BNE", "BLT", "BGE",
	"ECALL", "EBREAK", "NOP",
}

type dumpConfig struct {
	instructionFile string
}

type dumper struct {
	loader  loader.Loader
	context context.Context
	out     io.Writer

	dumpConfig
}

func main() {
	d := new(dumper)

	flag.StringVar(&d.instructionFile, "instructions", "",
		"file listing recognized mnemonics, whitespace separated, '#' comments")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: asmlex [-instructions file] source")
		os.Exit(1)
	}

	d.loader = loader.NewLoader(loader.WithMemoryCache())
	d.context = context.Background()
	d.out = os.Stdout

	if err := d.Run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (d *dumper) Run(target string) error {

	set, err := d.instructionSet()
	if err != nil {
		return err
	}

	data, err := d.loader.Load(d.context, target)
	if err != nil {
		return err
	}

	stream, err := lexer.Scan(bytes.NewReader(data), set)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", target, err)
	}

	_, err = io.WriteString(d.out, stream.Dump())
	return err
}

func (d *dumper) instructionSet() (lexer.InstructionSet, error) {
	if d.instructionFile == "" {
		return lexer.NewInstructionSet(defaultMnemonics...), nil
	}

	data, err := d.loader.Load(d.context, d.instructionFile)
	if err != nil {
		return nil, fmt.Errorf("loading instruction table: %w", err)
	}

	return parseInstructionTable(string(data)), nil
}

// parseInstructionTable reads one mnemonic per whitespace-separated field.
// A '#' discards the rest of its line.
func parseInstructionTable(text string) lexer.InstructionSet {
	var mnemonics []string

	for _, line := range strings.Split(text, "\n") {
		if hash := strings.IndexByte(line, '#'); hash >= 0 {
			line = line[:hash]
		}
		mnemonics = append(mnemonics, strings.Fields(line)...)
	}

	return lexer.NewInstructionSet(mnemonics...)
}
