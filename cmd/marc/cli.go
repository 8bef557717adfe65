package main

import (
	"context"
	"io"

	"github.com/mjanowski/marc"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Show detailed field information (definition, indicators, examples)"`
	Query   string `arg:"" help:"Field code (e.g. 020, 245a) or keyword to search for"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Datasets marc.DatasetService
}
