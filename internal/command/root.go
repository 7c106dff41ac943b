// Package command contains the CLI command constructors.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stolasapp/wgpw/internal/observability"
	"github.com/stolasapp/wgpw/internal/sec"
)

const (
	// ErrMismatch is returned when --exit-code is set and the password does
	// not match the hash.
	ErrMismatch = Error("password does not match the hash")

	name      = "wgpw"
	usageLine = "Usage: " + name + " YOUR_PASSWORD [HASH]"

	matchMessage    = "Password matches the hash!"
	mismatchMessage = "Password does not match the hash."

	exitOK       = 0
	exitFailure  = 1
	exitMismatch = 2
)

// Error is an error type for command outcomes.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// UsageError reports a command line that cannot be dispatched.
type UsageError struct {
	Reason string
}

// Error satisfies [error].
func (e UsageError) Error() string { return "invalid usage: " + e.Reason }

type options struct {
	cost     int
	stdin    bool
	exitCode bool
	logLevel string
}

// Run executes the root command against args and the provided streams,
// returning the process exit status.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := RootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	var usageErr UsageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrMismatch):
		return exitMismatch
	case errors.As(err, &usageErr):
		_, _ = fmt.Fprintln(stdout, usageLine)
		return exitFailure
	default:
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return exitFailure
	}
}

// RootCommand instantiates the root command.
func RootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   name + " PASSWORD [HASH]",
		Short: "Generate or verify bcrypt password hashes",
		Long: "With a single PASSWORD, prints a freshly salted bcrypt hash of it. With a\n" +
			"PASSWORD and HASH, reports whether the password matches the hash.\n\n" +
			"Passwords beginning with '-' must follow '--'.",
		Version:       version(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := observability.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger := observability.InitSlog(cmd.ErrOrStderr(), lvl)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, Parse(args, opts.stdin))
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return UsageError{Reason: err.Error()}
	})

	flags := cmd.Flags()
	flags.IntVar(&opts.cost, "cost", sec.DefaultCost, "bcrypt cost factor for generated hashes")
	flags.BoolVar(&opts.stdin, "stdin", false, "read the password from stdin instead of the arguments")
	flags.BoolVar(&opts.exitCode, "exit-code", false, "exit with status 2 when the password does not match")
	flags.StringVar(&opts.logLevel, "log-level", observability.DefaultLevel.String(), "log level: debug, info, warn, or error")

	return cmd
}

func execute(cmd *cobra.Command, opts *options, inv Invocation) error {
	if usage, ok := inv.(InvalidUsage); ok {
		return usage.Err()
	}

	hasher, err := sec.NewBcrypt(opts.cost)
	if err != nil {
		return err
	}

	if opts.stdin {
		password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to read password from stdin: %w", err)
		}
		inv = withPassword(inv, password)
	}

	ctx := cmd.Context()
	switch inv := inv.(type) {
	case Generate:
		return generate(ctx, cmd.OutOrStdout(), hasher, inv)
	case Compare:
		return compare(ctx, cmd.OutOrStdout(), hasher, inv, opts.exitCode)
	default:
		return fmt.Errorf("unexpected invocation %T", inv)
	}
}

func generate(ctx context.Context, out io.Writer, hasher *sec.Bcrypt, inv Generate) error {
	hash, err := hasher.Hash(inv.Password)
	if err != nil {
		return fmt.Errorf("failed to generate hash: %w", err)
	}
	loggerFrom(ctx).DebugContext(ctx, "generated hash", slog.Int("cost", hasher.Cost()))
	_, err = fmt.Fprintln(out, string(hash))
	return err
}

func compare(ctx context.Context, out io.Writer, hasher sec.Hasher, inv Compare, exitCode bool) error {
	matched, err := hasher.Compare(inv.Password, inv.Hash)
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}

	logger := loggerFrom(ctx)
	if cost, err := sec.Cost(inv.Hash); err == nil {
		logger = logger.With(slog.Int("cost", cost))
	}
	logger.DebugContext(ctx, "compared password", slog.Bool("matched", matched))

	msg := mismatchMessage
	if matched {
		msg = matchMessage
	}
	if _, err = fmt.Fprintln(out, msg); err != nil {
		return err
	}
	if !matched && exitCode {
		return ErrMismatch
	}
	return nil
}
