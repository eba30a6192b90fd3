// Command sift extracts the first valid JSON value from text on stdin or
// from a file argument, and prints it to stdout. It exits non-zero when no
// balanced or repairable JSON exists in the input.
//
// Usage:
//
//	sift [-pretty] [file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/leofalp/sift/core/extract"
	"github.com/leofalp/sift/internal/utils"
)

func main() {
	pretty := flag.Bool("pretty", false, "re-indent the extracted JSON")
	flag.Parse()

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sift:", err)
		os.Exit(1)
	}

	candidate, ok := extract.Extract(text)
	if !ok {
		fmt.Fprintln(os.Stderr, "sift: no JSON found in input")
		os.Exit(1)
	}

	if *pretty {
		var value any
		if err := json.Unmarshal([]byte(candidate), &value); err == nil {
			candidate = utils.JSONToString(value, true)
		}
	}
	fmt.Println(candidate)
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
