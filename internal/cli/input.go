package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength caps a single input line.
const maxLineLength = 1 << 20

// OpenInput opens path for reading, with "-" meaning stdin.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// ReadValues reads one value per line, trimming whitespace and skipping
// blank lines and lines starting with '#'.
//
// Parameters:
//   - r: The reader to consume.
//
// Returns:
//   - []string: The values in input order.
//   - error: An error if reading fails or a line exceeds the length cap.
func ReadValues(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var values []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return values, nil
}
