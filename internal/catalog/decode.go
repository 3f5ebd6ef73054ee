package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// cancelCheckInterval is how many lines are read between context checks.
const cancelCheckInterval = 10_000

// decode reads a gzipped JSON-lines snapshot. Blank lines are skipped and
// entries for unknown tables are counted but ignored.
func decode(ctx context.Context, r io.Reader) (*Catalog, int, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	cat := New()
	skipped := 0

	scanner := bufio.NewScanner(gzipReader)
	// Offers with long room lists can exceed the default token size
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, 0, fmt.Errorf("line %d: invalid entry: %w", lineNo, err)
		}

		known, err := cat.add(entry)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !known {
			skipped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading snapshot: %w", err)
	}

	return cat, skipped, nil
}
