package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"escape-booking/internal/catalog"
)

// Writes the demo catalogue (three rooms, five promo codes, three offers) as a
// gzipped JSON-lines snapshot for the snapshot store backend.
func main() {
	out := flag.String("out", "data/catalog.jsonl.gz", "snapshot file to write")
	flag.Parse()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer f.Close()

	n, err := catalog.WriteSample(f)
	if err != nil {
		log.Fatalf("Failed to write catalogue: %v", err)
	}

	fmt.Printf("Created %s with %d records\n", *out, n)
}
