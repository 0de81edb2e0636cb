package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput handles the 3 sources of input:
// 1. Arguments, joined by single spaces
// 2. Explicit file, or stdin with -f -
// 3. Piped stdin when neither arguments nor a file are given
func readInput(stdin io.Reader, args []string, file string) ([]byte, error) {
	if len(args) > 0 {
		if file != "" {
			return nil, &CLIError{
				Type:    "input",
				Message: "cannot combine text arguments with --file",
				Hint:    "Pass the text as arguments or use --file, not both",
			}
		}
		return []byte(strings.Join(args, " ")), nil
	}

	switch {
	case file == "-":
		return readAll(stdin, "stdin")
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, &CLIError{
				Type:    "input",
				Message: fmt.Sprintf("error opening file %s", file),
				Details: err.Error(),
			}
		}
		defer func() { _ = f.Close() }()
		return readAll(f, file)
	case hasPipedInput(stdin):
		return readAll(stdin, "stdin")
	}

	return nil, &CLIError{
		Type:    "input",
		Message: "no input",
		Hint:    "Pass text as arguments, use --file, or pipe data on stdin",
	}
}

func readAll(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return data, nil
}

// hasPipedInput detects if there's data piped to stdin.
// Readers that are not files (tests, embedding) count as piped.
func hasPipedInput(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return stdin != nil
	}

	stat, err := f.Stat()
	if err != nil {
		return false
	}

	// Not a character device means a pipe or a redirected file.
	return (stat.Mode() & os.ModeCharDevice) == 0
}
