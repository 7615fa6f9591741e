// Command songconv assembles the line-oriented song source DSL into the
// byte-coded stream the sequencer plays, or disassembles a byte-coded stream
// back into that DSL for inspection.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fdischner/chipplayer/internal/song/asm"
)

func main() {
	mode := flag.String("mode", "assemble", "assemble|disassemble")
	in := flag.String("in", "", "input path ('-' for stdin)")
	out := flag.String("out", "", "output path ('-' or empty for stdout)")
	flag.Parse()

	if *in == "" {
		log.Fatal("-in is required")
	}

	src, err := readInput(*in)
	if err != nil {
		log.Fatalf("songconv: %v", err)
	}

	var result []byte
	switch *mode {
	case "assemble":
		result, err = asm.Assemble(string(src))
	case "disassemble":
		var text string
		text, err = asm.Disassemble(src)
		result = []byte(text)
	default:
		log.Fatalf("songconv: unknown -mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("songconv: %v", err)
	}

	if err := writeOutput(*out, result); err != nil {
		log.Fatalf("songconv: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return data, nil
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprint(os.Stdout, string(data))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
