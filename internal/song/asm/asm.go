// Package asm assembles and disassembles the line-oriented song source DSL
// described in SPEC_FULL.md §6 into the byte-coded stream spec.md §6
// defines. It is authoring tooling only: the sequencer in internal/song
// never consumes this package, only raw bytes.
package asm

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fdischner/chipplayer/internal/song"
)

// Assemble turns DSL source into the byte-coded song stream. An event
// directive not directly preceded by a delay line gets a delta of 0.
func Assemble(src string) ([]byte, error) {
	var out []byte
	sc := bufio.NewScanner(strings.NewReader(src))
	line := 0
	haveDelta := false
	for sc.Scan() {
		line++
		text := stripComment(sc.Text())
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if fields[0] != "delay" && !haveDelta {
			out = append(out, 0x00)
		}
		haveDelta = fields[0] == "delay"

		switch fields[0] {
		case "delay":
			v, err := parseByte(fields, line, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		case "step":
			ch, err := parseByte(fields, line, 1)
			if err != nil {
				return nil, err
			}
			val, err := parseUint16(fields, line, 2)
			if err != nil {
				return nil, err
			}
			out = append(out, song.OpStep|ch&0x0F, byte(val), byte(val>>8))
		case "vol":
			ch, err := parseByte(fields, line, 1)
			if err != nil {
				return nil, err
			}
			v, err := parseSignedByte(fields, line, 2)
			if err != nil {
				return nil, err
			}
			out = append(out, song.OpVolume|ch&0x0F, v)
		case "duty":
			ch, err := parseByte(fields, line, 1)
			if err != nil {
				return nil, err
			}
			v, err := parseByte(fields, line, 2)
			if err != nil {
				return nil, err
			}
			out = append(out, song.OpDuty|ch&0x0F, v)
		case "noise":
			v, err := parseByte(fields, line, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, song.OpNoise, v)
		case "mark":
			out = append(out, song.OpMark)
		case "jump":
			out = append(out, song.OpJump)
		default:
			return nil, fmt.Errorf("asm: line %d: unknown directive %q", line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("asm: %w", err)
	}
	return out, nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	return s
}

func parseByte(fields []string, line, idx int) (byte, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("asm: line %d: missing operand", line)
	}
	n, err := strconv.ParseUint(fields[idx], 0, 8)
	if err != nil {
		return 0, fmt.Errorf("asm: line %d: %w", line, err)
	}
	return byte(n), nil
}

func parseSignedByte(fields []string, line, idx int) (byte, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("asm: line %d: missing operand", line)
	}
	n, err := strconv.ParseInt(fields[idx], 0, 8)
	if err != nil {
		return 0, fmt.Errorf("asm: line %d: %w", line, err)
	}
	return byte(int8(n)), nil
}

func parseUint16(fields []string, line, idx int) (uint16, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("asm: line %d: missing operand", line)
	}
	n, err := strconv.ParseUint(fields[idx], 0, 16)
	if err != nil {
		return 0, fmt.Errorf("asm: line %d: %w", line, err)
	}
	return uint16(n), nil
}
