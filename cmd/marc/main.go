package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mjanowski/marc"
	"github.com/mjanowski/marc/fs"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(ExitCode(err))
	}
}

// Main represents the program.
type Main struct {
	// DataDir is the dataset directory. Set before calling Run().
	DataDir string

	// Datasets can be preset for end-to-end testing; when nil, Run
	// uses a file store rooted at DataDir.
	Datasets marc.DatasetService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{DataDir: fs.DefaultDir()}
}

// Run executes the CLI with the given arguments. Any error has already
// been reported on stderr when Run returns; the caller only needs
// ExitCode.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", errorText(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("marc"),
		kong.Description("Look up MARC 21 bibliographic field definitions"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return marc.Errorf(marc.EINVALID, "no query specified; run 'marc --help' for usage")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return marc.Errorf(marc.EINVALID, "%v", err)
	}

	datasets := m.Datasets
	if datasets == nil {
		datasets = fs.NewStore(m.DataDir)
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Datasets: datasets,
	}

	cmd := &QueryCmd{Query: cli.Query, Verbose: cli.Verbose}
	return cmd.Run(deps)
}

// ExitCode maps an error to the process exit status: 0 success,
// 1 invalid query or field/subfield not found, 2 dataset unavailable
// or internal error.
func ExitCode(err error) int {
	switch marc.ErrorCode(err) {
	case "":
		return 0
	case marc.EUNAVAILABLE, marc.EINTERNAL:
		return 2
	default:
		return 1
	}
}

// errorText returns the user-facing message for an error: the
// application message when there is one, the raw error otherwise.
func errorText(err error) string {
	var e *marc.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
