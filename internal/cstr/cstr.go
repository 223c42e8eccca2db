// Package cstr renders binary files as C byte-array source fragments.
package cstr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	// ValuesPerLine is the number of byte literals emitted per array line
	ValuesPerLine = 20
)

var (
	// ErrUsage is returned when a required argument is empty
	ErrUsage = errors.New("usage error")

	// ErrMalformed is returned by Decode for text that is not a generated fragment
	ErrMalformed = errors.New("malformed fragment")
)

const header = `#pragma once

//----------------------------------------------
// This is an auto-generated file.
// It contains the binary representation of %s as a C-Array.
//----------------------------------------------

// clang-format off
const unsigned char %s[] = {
	`

const footer = "\n};\n// clang-format on\n"

// Emit reads inputPath and writes its C-array representation to outputPath,
// declaring it as variable. The input is read fully before outputPath is
// touched, so a read failure leaves no output behind.
func Emit(inputPath, outputPath, variable string) error {
	if outputPath == "" {
		return fmt.Errorf("%w: output path is required", ErrUsage)
	}
	if variable == "" {
		return fmt.Errorf("%w: variable name is required", ErrUsage)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	if err := Write(f, data, inputPath, variable); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return f.Close()
}

// Write formats data as a C-array fragment on w. inputName only appears in
// the generated-file comment.
func Write(w io.Writer, data []byte, inputName, variable string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, header, inputName, variable)

	// strconv.AppendUint keeps the literal unpadded: 0x0, 0xa, 0xff
	lit := make([]byte, 0, 4)
	for i, b := range data {
		if i > 0 && i%ValuesPerLine == 0 {
			bw.WriteString("\n\t")
		}
		lit = append(lit[:0], "0x"...)
		lit = strconv.AppendUint(lit, uint64(b), 16)
		bw.Write(lit)
		bw.WriteString(", ")
	}

	bw.WriteString(footer)
	return bw.Flush()
}
