// Package execbackend implements sugar.Commands by running the sugar binary.
//
// Each call becomes one subprocess: `sugar [--log-level L] <command> [flags]`.
// Optional parameters that are nil are left off the command line so the binary
// applies its own defaults. Standard streams are passed through, which keeps
// the binary's interactive prompts usable.
package execbackend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/dendrascience/sugarctl/sugar"
)

// DefaultBinary is looked up on PATH when Options.Binary is empty.
const DefaultBinary = "sugar"

var (
	ErrUnknownBundlrAction = errors.New("unknown bundlr action")
)

// ExitError reports a sugar process that ran and exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// Command is one process invocation.
type Command struct {
	Path   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line with shell quoting where needed.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Path))
	for _, arg := range c.Args {
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.ContainsAny(s, " \t\n'\"\\$`!*?&;|<>(){}[]#~") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

// Runner executes a Command and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ProcessRunner runs commands with os/exec.
type ProcessRunner struct{}

func (ProcessRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &ExitError{Command: c.Path, ExitCode: exitErr.ExitCode()}
	}
	return err
}

// Options configures a Backend. Empty strings mean "not configured".
type Options struct {
	Binary   string
	Keypair  string
	Config   string
	Cache    string
	Assets   string
	LogLevel string

	// DryRun prints the command line to Stdout instead of running it.
	DryRun bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Runner Runner
	Logger *slog.Logger
}

// Backend runs sugar commands as subprocesses. It keeps no state between
// calls and is safe for concurrent use.
type Backend struct {
	opts Options
}

var _ sugar.Commands = (*Backend)(nil)

// New returns a Backend, filling unset options with the process defaults.
func New(opts Options) *Backend {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Runner == nil {
		opts.Runner = ProcessRunner{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Backend{opts: opts}
}

// Command builds the process invocation for req.
func (b *Backend) Command(req sugar.Request) (Command, error) {
	args, err := b.Args(req)
	if err != nil {
		return Command{}, err
	}
	return Command{
		Path:   b.opts.Binary,
		Args:   args,
		Stdin:  b.opts.Stdin,
		Stdout: b.opts.Stdout,
		Stderr: b.opts.Stderr,
	}, nil
}

func (b *Backend) run(ctx context.Context, req sugar.Request) error {
	cmd, err := b.Command(req)
	if err != nil {
		return err
	}

	if b.opts.DryRun {
		_, err := fmt.Fprintln(b.opts.Stdout, cmd.String())
		return err
	}

	b.opts.Logger.Debug("running sugar", "method", req.Method(), "command", cmd.String())
	return b.opts.Runner.Run(ctx, cmd)
}

func (b *Backend) Bundlr(ctx context.Context, p sugar.BundlrParams) error {
	return b.run(ctx, p)
}

func (b *Backend) CollectionSet(ctx context.Context, p sugar.CollectionSetParams) error {
	return b.run(ctx, p)
}

func (b *Backend) CollectionRemove(ctx context.Context, p sugar.CollectionRemoveParams) error {
	return b.run(ctx, p)
}

func (b *Backend) CreateConfig(ctx context.Context, p sugar.CreateConfigParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Deploy(ctx context.Context, p sugar.DeployParams) error {
	return b.run(ctx, p)
}

func (b *Backend) FreezeDisable(ctx context.Context, p sugar.FreezeDisableParams) error {
	return b.run(ctx, p)
}

func (b *Backend) FreezeEnable(ctx context.Context, p sugar.FreezeEnableParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Hash(ctx context.Context, p sugar.HashParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Launch(ctx context.Context, p sugar.LaunchParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Mint(ctx context.Context, p sugar.MintParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Reveal(ctx context.Context, p sugar.RevealParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Show(ctx context.Context, p sugar.ShowParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Sign(ctx context.Context, p sugar.SignParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Thaw(ctx context.Context, p sugar.ThawParams) error {
	return b.run(ctx, p)
}

func (b *Backend) UnfreezeFunds(ctx context.Context, p sugar.UnfreezeFundsParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Update(ctx context.Context, p sugar.UpdateParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Upload(ctx context.Context, p sugar.UploadParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Validate(ctx context.Context, p sugar.ValidateParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Verify(ctx context.Context, p sugar.VerifyParams) error {
	return b.run(ctx, p)
}

func (b *Backend) Withdraw(ctx context.Context, p sugar.WithdrawParams) error {
	return b.run(ctx, p)
}
