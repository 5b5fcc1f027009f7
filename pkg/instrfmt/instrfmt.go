// Package instrfmt prints and parses the p-code text encoding: one
// instruction per line, each line three whitespace-separated integers
// "opcode level modifier".
package instrfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plzero/pl0c/internal/codegen"
)

// Print writes ins to w in the numeric three-column format, one
// instruction per line.
func Print(w io.Writer, ins []codegen.Instruction) error {
	for _, in := range ins {
		if _, err := fmt.Fprintln(w, in.String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintAnnotated writes ins to w with the opcode mnemonic appended as a
// trailing comment, for CLI verbosity levels that want a human-readable
// listing without breaking the round-trip format of Print/Parse.
func PrintAnnotated(w io.Writer, ins []codegen.Instruction) error {
	for i, in := range ins {
		if _, err := fmt.Fprintf(w, "%3d  %-18s ; %s\n", i, in.String(), in.Op.Mnemonic()); err != nil {
			return err
		}
	}
	return nil
}

// Parse reads the numeric three-column format back into instructions,
// the inverse of Print.
func Parse(r io.Reader) ([]codegen.Instruction, error) {
	var out []codegen.Instruction

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("instrfmt: line %d: expected 3 fields, got %d", lineNo, len(fields))
		}
		op, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("instrfmt: line %d: invalid opcode %q: %w", lineNo, fields[0], err)
		}
		level, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("instrfmt: line %d: invalid level %q: %w", lineNo, fields[1], err)
		}
		modifier, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("instrfmt: line %d: invalid modifier %q: %w", lineNo, fields[2], err)
		}
		out = append(out, codegen.Instruction{Op: codegen.OpCode(op), Level: level, Modifier: modifier})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
