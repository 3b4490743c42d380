package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"gopkg.in/yaml.v3"

	"github.com/cardstash/giftcard-ocr-engine/internal/models"
	"github.com/cardstash/giftcard-ocr-engine/internal/parser"
)

// giftcard-parse reads a recognized gift card transcript from a file or stdin,
// runs the extraction engine once, and prints the structured result as JSON.
func main() {
	fs := ff.NewFlagSet("giftcard-parse")
	var (
		inputPath  = fs.StringLong("input", "", "Transcript file path (default: stdin)")
		configPath = fs.StringLong("config", "", "Parser config YAML path (optional)")
		pretty     = fs.BoolLong("pretty", "Indent the JSON output")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("GIFTCARD_PARSE"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	text, err := readTranscript(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read transcript: %v", err)
	}

	result := parser.NewParserFromConfig(config).Parse(text, nil)

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

func loadConfig(path string) (*models.Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config models.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &config, nil
}

func readTranscript(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript file: %w", err)
	}
	return string(data), nil
}
