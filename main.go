package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/anyval/internal/codec"
	"github.com/mcncl/anyval/internal/config"
	"github.com/mcncl/anyval/internal/describe"
	"github.com/mcncl/anyval/internal/errors"

	// Register the built-in formats.
	_ "github.com/mcncl/anyval/internal/cbordoc"
	_ "github.com/mcncl/anyval/internal/jsondoc"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `help:"Path to input document. If not specified, reads from stdin." short:"i" type:"path"`
	Output   string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	From     string `help:"Input document format." default:"json" enum:"json,cbor"`
	To       string `help:"Output format, or 'debug' for the variant rendering." default:"json" enum:"json,cbor,debug"`
	Describe bool   `help:"Emit a Go type sketch of the document instead of re-encoding." short:"D"`
	RootName string `help:"Root type name for --describe output." short:"r"`
	Package  string `help:"Package name for --describe output." short:"p"`
	Config   string `help:"Path to config file." type:"path"`
	Debug    bool   `help:"Enable debug logging." short:"d"`
	Version  bool   `help:"Show version information." short:"v"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("anyval"),
		kong.Description("Inspect, convert and sketch schemaless JSON and CBOR documents"),
		kong.UsageOnError(),
	)

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("anyval version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Debug: CLI.Debug, Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: anyval --help\n")
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if CLI.Config != "" {
		return config.LoadConfig(CLI.Config)
	}
	return config.LoadConfigFromDefaultLocations()
}

func run(ctx *Context) error {
	data, err := readInput()
	if err != nil {
		return err
	}

	opts := codec.Options{
		MaxDepth: ctx.Config.Decode.MaxDepth,
		Indent:   ctx.Config.Output.Indent,
	}

	from, err := codec.New(CLI.From, opts)
	if err != nil {
		return err
	}
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "anyval: decoding %d bytes of %s\n", len(data), from.Name())
	}

	decoded, err := codec.Decode(from, data, opts)
	if err != nil {
		return err
	}

	var out []byte
	switch {
	case CLI.Describe:
		src, err := describe.Describe(decoded, describe.Options{
			RootName:    firstNonEmpty(CLI.RootName, ctx.Config.Describe.RootName),
			PackageName: firstNonEmpty(CLI.Package, ctx.Config.Describe.Package),
		})
		if err != nil {
			return err
		}
		out = []byte(src)
	case CLI.To == "debug":
		out = []byte(decoded.String() + "\n")
	default:
		to, err := codec.New(CLI.To, opts)
		if err != nil {
			return err
		}
		out, err = to.Marshal(decoded)
		if err != nil {
			return err
		}
	}

	return writeOutput(out)
}

func readInput() ([]byte, error) {
	if strings.TrimSpace(CLI.Input) == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.NewInputError("failed to read from stdin", err)
		}
		if len(data) == 0 {
			return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
		}
		return data, nil
	}

	stat, err := os.Stat(CLI.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", CLI.Input),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to stat file '%s'", CLI.Input),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", CLI.Input),
			errors.ErrFileEmpty,
		)
	}

	data, err := os.ReadFile(CLI.Input)
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", CLI.Input),
			err,
		)
	}
	return data, nil
}

func writeOutput(out []byte) error {
	if CLI.Output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
		return nil
	}
	if err := os.WriteFile(CLI.Output, out, 0o644); err != nil {
		return errors.NewOutputError(
			fmt.Sprintf("failed to write file '%s'", CLI.Output),
			err,
		)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
