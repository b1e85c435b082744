package execbackend

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dendrascience/sugarctl/sugar"
)

type fakeRunner struct {
	commands []Command
	err      error
}

func (f *fakeRunner) Run(ctx context.Context, cmd Command) error {
	f.commands = append(f.commands, cmd)
	return f.err
}

func TestArgsWithOmittedParameters(t *testing.T) {
	b := New(Options{})

	tests := []struct {
		req  sugar.Request
		want []string
	}{
		{sugar.BundlrParams{}, []string{"bundlr", "balance"}},
		{sugar.CollectionSetParams{CollectionMint: "MintABC"}, []string{"collection", "set", "--collection-mint", "MintABC"}},
		{sugar.CollectionRemoveParams{}, []string{"collection", "remove"}},
		{sugar.CreateConfigParams{}, []string{"create-config"}},
		{sugar.DeployParams{}, []string{"deploy"}},
		{sugar.FreezeDisableParams{}, []string{"freeze", "disable"}},
		{sugar.FreezeEnableParams{}, []string{"freeze", "enable"}},
		{sugar.HashParams{}, []string{"hash"}},
		{sugar.LaunchParams{}, []string{"launch"}},
		{sugar.MintParams{}, []string{"mint"}},
		{sugar.RevealParams{}, []string{"reveal"}},
		{sugar.ShowParams{}, []string{"show"}},
		{sugar.SignParams{}, []string{"sign"}},
		{sugar.ThawParams{}, []string{"freeze", "thaw"}},
		{sugar.UnfreezeFundsParams{}, []string{"freeze", "unlock-funds"}},
		{sugar.UpdateParams{}, []string{"update"}},
		{sugar.UploadParams{}, []string{"upload"}},
		{sugar.ValidateParams{}, []string{"validate"}},
		{sugar.VerifyParams{}, []string{"verify"}},
		{sugar.WithdrawParams{}, []string{"withdraw"}},
	}

	if len(tests) != len(sugar.Methods()) {
		t.Fatalf("table covers %d methods, want %d", len(tests), len(sugar.Methods()))
	}

	for _, tt := range tests {
		t.Run(string(tt.req.Method()), func(t *testing.T) {
			got, err := b.Args(tt.req)
			if err != nil {
				t.Fatalf("Args() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgsWithPopulatedParameters(t *testing.T) {
	b := New(Options{})
	rpc := sugar.String("https://rpc.example")
	cm := sugar.String("CM123")

	tests := []struct {
		req  sugar.Request
		want []string
	}{
		{
			sugar.BundlrParams{RPCURL: rpc, Action: sugar.BundlrWithdraw},
			[]string{"bundlr", "withdraw", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.CollectionSetParams{RPCURL: rpc, CandyMachine: cm, CollectionMint: "MintABC"},
			[]string{"collection", "set", "--collection-mint", "MintABC", "--candy-machine", "CM123", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.FreezeEnableParams{RPCURL: rpc, CandyMachine: cm, FreezeDays: sugar.Uint8(31)},
			[]string{"freeze", "enable", "--candy-machine", "CM123", "--freeze-days", "31", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.HashParams{Compare: sugar.String("abc")},
			[]string{"hash", "--compare", "abc"},
		},
		{
			sugar.LaunchParams{RPCURL: rpc, Strict: true, SkipCollectionPrompt: true},
			[]string{"launch", "--strict", "--skip-collection-prompt", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.MintParams{RPCURL: rpc, Number: sugar.Uint64(5), Receiver: sugar.String("Recv"), CandyMachine: cm},
			[]string{"mint", "--number", "5", "--receiver", "Recv", "--candy-machine", "CM123", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.ShowParams{RPCURL: rpc, CandyMachine: cm, Unminted: true},
			[]string{"show", "CM123", "--unminted", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.SignParams{RPCURL: rpc, Mint: sugar.String("NFT1"), CandyMachineID: cm},
			[]string{"sign", "--mint", "NFT1", "--candy-machine-id", "CM123", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.ThawParams{RPCURL: rpc, All: true, CandyMachine: cm, NFTMint: sugar.String("NFT1")},
			[]string{"freeze", "thaw", "NFT1", "--all", "--candy-machine", "CM123", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.UpdateParams{RPCURL: rpc, NewAuthority: sugar.String("Auth"), CandyMachine: cm},
			[]string{"update", "--new-authority", "Auth", "--candy-machine", "CM123", "--rpc-url", "https://rpc.example"},
		},
		{
			sugar.ValidateParams{Strict: true},
			[]string{"validate", "--strict"},
		},
		{
			sugar.WithdrawParams{CandyMachine: cm, RPCURL: rpc, List: true},
			[]string{"withdraw", "--candy-machine", "CM123", "--list", "--rpc-url", "https://rpc.example"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.req.Method()), func(t *testing.T) {
			got, err := b.Args(tt.req)
			if err != nil {
				t.Fatalf("Args() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgsAppendConfiguredOptions(t *testing.T) {
	b := New(Options{
		Keypair:  "/keys/id.json",
		Config:   "config.json",
		Cache:    "cache.json",
		Assets:   "assets",
		LogLevel: "debug",
	})

	tests := []struct {
		name string
		req  sugar.Request
		want []string
	}{
		{
			name: "deploy takes keypair config and cache",
			req:  sugar.DeployParams{},
			want: []string{"--log-level", "debug", "deploy", "--keypair", "/keys/id.json", "--config", "config.json", "--cache", "cache.json"},
		},
		{
			name: "validate only takes assets",
			req:  sugar.ValidateParams{},
			want: []string{"--log-level", "debug", "validate", "--assets-dir", "assets"},
		},
		{
			name: "withdraw only takes keypair",
			req:  sugar.WithdrawParams{},
			want: []string{"--log-level", "debug", "withdraw", "--keypair", "/keys/id.json"},
		},
		{
			name: "hash takes config and cache",
			req:  sugar.HashParams{},
			want: []string{"--log-level", "debug", "hash", "--config", "config.json", "--cache", "cache.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Args(tt.req)
			if err != nil {
				t.Fatalf("Args() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgsRejectsUnknownBundlrAction(t *testing.T) {
	_, err := New(Options{}).Args(sugar.BundlrParams{Action: 7})
	if !errors.Is(err, ErrUnknownBundlrAction) {
		t.Errorf("Args() error = %v, want ErrUnknownBundlrAction", err)
	}
}

func TestBackendRunsThroughRunner(t *testing.T) {
	runner := &fakeRunner{}
	var stdout bytes.Buffer
	b := New(Options{Binary: "/opt/sugar", Runner: runner, Stdout: &stdout})

	if err := b.Mint(context.Background(), sugar.MintParams{Number: sugar.Uint64(2)}); err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	if len(runner.commands) != 1 {
		t.Fatalf("runner got %d commands, want 1", len(runner.commands))
	}
	cmd := runner.commands[0]
	if cmd.Path != "/opt/sugar" {
		t.Errorf("Path = %q", cmd.Path)
	}
	if want := []string{"mint", "--number", "2"}; !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("Args = %q, want %q", cmd.Args, want)
	}
	if cmd.Stdout != &stdout {
		t.Error("Stdout was not passed through")
	}
}

func TestBackendReturnsRunnerError(t *testing.T) {
	want := &ExitError{Command: "sugar", ExitCode: 1}
	b := New(Options{Runner: &fakeRunner{err: want}})

	err := b.Deploy(context.Background(), sugar.DeployParams{})
	if err != want {
		t.Errorf("Deploy() error = %v, want %v", err, want)
	}

	err = sugar.New(b).Deploy(context.Background(), sugar.DeployParams{})
	var opErr *sugar.ExternalOperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("façade error = %v, want ExternalOperationError", err)
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode != 1 {
		t.Errorf("façade error = %v, want wrapped ExitError", err)
	}
}

func TestDryRunPrintsCommand(t *testing.T) {
	runner := &fakeRunner{}
	var stdout bytes.Buffer
	b := New(Options{DryRun: true, Runner: runner, Stdout: &stdout})

	err := b.CollectionSet(context.Background(), sugar.CollectionSetParams{
		CandyMachine:   sugar.String("CM123"),
		CollectionMint: "Mint ABC",
	})
	if err != nil {
		t.Fatalf("CollectionSet() error = %v", err)
	}

	if len(runner.commands) != 0 {
		t.Errorf("dry run executed %d commands", len(runner.commands))
	}
	want := "sugar collection set --collection-mint 'Mint ABC' --candy-machine CM123\n"
	if stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"plain", Command{Path: "sugar", Args: []string{"deploy"}}, "sugar deploy"},
		{"empty arg", Command{Path: "sugar", Args: []string{"hash", "--compare", ""}}, "sugar hash --compare ''"},
		{"single quote", Command{Path: "sugar", Args: []string{"it's"}}, `sugar 'it'\''s'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessRunnerReportsExitCode(t *testing.T) {
	err := ProcessRunner{}.Run(context.Background(), Command{Path: "sh", Args: []string{"-c", "exit 3"}})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Run() error = %v, want *ExitError", err)
	}
	if exitErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", exitErr.ExitCode)
	}
}

func TestProcessRunnerSuccess(t *testing.T) {
	var stdout bytes.Buffer
	err := ProcessRunner{}.Run(context.Background(), Command{
		Path:   "sh",
		Args:   []string{"-c", "echo settled"},
		Stdout: &stdout,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stdout.String() != "settled\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}
