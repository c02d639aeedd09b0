package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"silzey-pos/internal/domain"
	"silzey-pos/internal/importer"
)

// Checks a store menu CSV before it is handed to the api via CATALOG_FILE.
func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to store menu CSV")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	start := time.Now()
	menu, err := importer.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid menu: %v\n", err)
		os.Exit(1)
	}

	counts := menu.Counts()
	total := 0
	for _, c := range domain.Categories {
		fmt.Printf("%-14s %d\n", c, counts[c])
		total += counts[c]
	}
	fmt.Printf("Loaded %d products in %s\n", total, time.Since(start).Truncate(time.Millisecond))
}
