// Package main provides the interactive garden advisor command.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"gardenadvisor/internal/config"
	"gardenadvisor/internal/garden"
	"gardenadvisor/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	log := logger.New(cfg.Logging.Level)
	log.Debug("starting advisor", "config", cfg.String())

	reader := bufio.NewReader(os.Stdin)
	seasonInput := prompt(reader, "Pick a season (spring, summer, autumn/fall, winter): ")
	plantInput := prompt(reader, "Pick a plant type (flower or vegetable): ")

	advisor := garden.NewAdvisor()

	text, errs := advisor.Advise(seasonInput, plantInput)
	if len(errs) > 0 {
		log.Debug("input validation failed", "errors", len(errs))

		for _, err := range errs {
			fmt.Println(err)
		}

		return
	}

	fmt.Println()
	fmt.Println(text)
}

// prompt writes the prompt text and reads one line of input.
// EOF yields an empty string.
func prompt(reader *bufio.Reader, text string) string {
	fmt.Print(text)

	line, _ := reader.ReadString('\n')

	return strings.TrimRight(line, "\r\n")
}
