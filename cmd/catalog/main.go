// Package main provides the catalog command that prints the advice
// tables as an aligned markdown reference sheet.
package main

import (
	"flag"
	"fmt"
	"os"

	"gardenadvisor/internal/formatter"
	"gardenadvisor/internal/garden"
)

func main() {
	outputPath := flag.String("output", "", "Path to output file (default: stdout)")
	flag.Parse()

	sheet := formatter.Catalog(garden.Advice, garden.Recommendations)

	if *outputPath == "" {
		fmt.Print(sheet)

		return
	}

	if err := os.WriteFile(*outputPath, []byte(sheet), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved to: %s\n", *outputPath)
}
