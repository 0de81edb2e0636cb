package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opal-lang/base58/core/base58"
	"github.com/opal-lang/base58/core/digest"
)

// options holds the flag values of the root command.
type options struct {
	file      string
	digest    string
	format    string
	noNewline bool
	verify    bool
	debug     bool
	noColor   bool
}

func main() {
	opts := &options{}
	rootCmd := newRootCmd(opts)

	if err := rootCmd.Execute(); err != nil {
		FormatError(os.Stderr, err, ShouldUseColor(opts.noColor))
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "base58 [text...]",
		Short: "Encode text or files as base58",
		Long: `Encode input as base58 using the alphabet
` + base58.Alphabet + `.

Input comes from the arguments (joined by single spaces), from --file,
or from piped stdin.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Read input from file (- for stdin)")
	flags.StringVar(&opts.digest, "digest", digest.None, "Hash input before encoding: "+strings.Join(digest.Names(), ", "))
	flags.StringVar(&opts.format, "format", formatText, "Output format: text, json or cbor")
	flags.BoolVarP(&opts.noNewline, "no-newline", "n", false, "Do not print a trailing newline (text format)")
	flags.BoolVar(&opts.verify, "verify", false, "Check the encoded output against the alphabet and length bound")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug output")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return rootCmd
}

func runEncode(cmd *cobra.Command, args []string, opts *options) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), debugEnabled(opts.debug))

	data, err := readInput(cmd.InOrStdin(), args, opts.file)
	if err != nil {
		return err
	}
	logger.Debug("input read", "bytes", len(data), "file", opts.file, "args", len(args))

	sum, err := digest.Sum(opts.digest, data)
	if err != nil {
		return digestError(err)
	}
	if opts.digest != digest.None {
		logger.Debug("input hashed", "digest", opts.digest, "bytes", len(sum))
	}

	encoded := base58.Encode(sum)
	logger.Debug("input encoded", "symbols", len(encoded), "capacity", base58.EncodedLen(len(sum)))

	if opts.verify {
		if err := verifyEncoding(sum, encoded); err != nil {
			return err
		}
		logger.Debug("output verified")
	}

	rec := record{
		Algorithm: opts.digest,
		InputLen:  len(data),
		Encoded:   encoded,
	}
	return writeOutput(cmd.OutOrStdout(), opts.format, rec, !opts.noNewline)
}

// verifyEncoding re-checks the properties every encoding must have.
func verifyEncoding(src []byte, encoded string) error {
	if !base58.IsAlphabet(encoded) {
		return &CLIError{
			Type:    "verify",
			Message: "encoded output contains symbols outside the base58 alphabet",
			Details: encoded,
		}
	}
	if limit := base58.EncodedLen(len(src)) + 1; len(src) > 0 && len(encoded) > limit {
		return &CLIError{
			Type:    "verify",
			Message: fmt.Sprintf("encoded output is %d symbols, expected at most %d", len(encoded), limit),
		}
	}
	return nil
}

func digestError(err error) error {
	hint := "Supported digests: " + strings.Join(digest.Names(), ", ")
	var unknown *digest.UnknownError
	if errors.As(err, &unknown) && unknown.Suggestion != "" {
		hint = fmt.Sprintf("Did you mean --digest %s? %s", unknown.Suggestion, hint)
	}
	return &CLIError{
		Type:    "digest",
		Message: err.Error(),
		Hint:    hint,
	}
}

// debugEnabled reports whether debug logging is on, via flag or BASE58_DEBUG.
func debugEnabled(flag bool) bool {
	return flag || os.Getenv("BASE58_DEBUG") != ""
}

// newLogger creates a text logger without time and level attributes.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
