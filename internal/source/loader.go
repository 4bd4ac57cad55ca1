package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNoInput is returned when the input file does not exist.
var ErrNoInput = errors.New("input file not found")

// LoadFromFile reads domains from path. See Parse for the format.
func LoadFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoInput, path)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	domains, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}
	return domains, nil
}

// Parse splits every line on commas and keeps the non-blank, trimmed tokens
// in input order. Duplicates are kept.
func Parse(r io.Reader) ([]string, error) {
	var domains []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range strings.Split(scanner.Text(), ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				domains = append(domains, tok)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return domains, nil
}
