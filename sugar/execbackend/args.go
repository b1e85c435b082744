package execbackend

import (
	"fmt"
	"strconv"

	"github.com/dendrascience/sugarctl/sugar"
)

// option is a bit set of the per-command options the sugar binary accepts.
type option uint8

const (
	optKeypair option = 1 << iota
	optConfig
	optCache
	optAssets
)

// commandOptions lists which configured options each command accepts.
var commandOptions = map[sugar.Method]option{
	sugar.MethodBundlr:           optKeypair,
	sugar.MethodCollectionSet:    optKeypair | optConfig | optCache,
	sugar.MethodCollectionRemove: optKeypair | optConfig | optCache,
	sugar.MethodCreateConfig:     optKeypair | optConfig | optAssets,
	sugar.MethodDeploy:           optKeypair | optConfig | optCache,
	sugar.MethodFreezeDisable:    optKeypair | optConfig | optCache,
	sugar.MethodFreezeEnable:     optKeypair | optConfig | optCache,
	sugar.MethodHash:             optConfig | optCache,
	sugar.MethodLaunch:           optKeypair | optConfig | optCache | optAssets,
	sugar.MethodMint:             optKeypair | optCache,
	sugar.MethodReveal:           optKeypair | optConfig | optCache,
	sugar.MethodShow:             optKeypair | optCache,
	sugar.MethodSign:             optKeypair | optCache,
	sugar.MethodThaw:             optKeypair | optConfig | optCache,
	sugar.MethodUnfreezeFunds:    optKeypair | optConfig | optCache,
	sugar.MethodUpdate:           optKeypair | optConfig | optCache,
	sugar.MethodUpload:           optKeypair | optConfig | optCache | optAssets,
	sugar.MethodValidate:         optAssets,
	sugar.MethodVerify:           optKeypair | optCache,
	sugar.MethodWithdraw:         optKeypair,
}

// argBuilder accumulates a sugar command line. Optional values are only
// emitted when present, leaving defaults to the binary.
type argBuilder struct {
	args []string
}

func (b *argBuilder) word(words ...string) {
	b.args = append(b.args, words...)
}

func (b *argBuilder) str(flag string, value *string) {
	if value != nil {
		b.args = append(b.args, flag, *value)
	}
}

func (b *argBuilder) flag(flag string, set bool) {
	if set {
		b.args = append(b.args, flag)
	}
}

func (b *argBuilder) positional(value *string) {
	if value != nil {
		b.args = append(b.args, *value)
	}
}

func (b *argBuilder) rpc(value *string) {
	b.str("--rpc-url", value)
}

// Args returns the sugar command line for req, without the binary name.
// Configured global options (log level, keypair, config, cache, assets) are
// included where the command accepts them.
func (b *Backend) Args(req sugar.Request) ([]string, error) {
	var ab argBuilder
	if b.opts.LogLevel != "" {
		ab.word("--log-level", b.opts.LogLevel)
	}

	switch p := req.(type) {
	case sugar.BundlrParams:
		if p.Action != sugar.BundlrBalance && p.Action != sugar.BundlrWithdraw {
			return nil, fmt.Errorf("%w: %d", ErrUnknownBundlrAction, p.Action)
		}
		ab.word("bundlr", p.Action.String())
		ab.rpc(p.RPCURL)
	case sugar.CollectionSetParams:
		ab.word("collection", "set", "--collection-mint", p.CollectionMint)
		ab.str("--candy-machine", p.CandyMachine)
		ab.rpc(p.RPCURL)
	case sugar.CollectionRemoveParams:
		ab.word("collection", "remove")
		ab.str("--candy-machine", p.CandyMachine)
		ab.rpc(p.RPCURL)
	case sugar.CreateConfigParams:
		ab.word("create-config")
		ab.rpc(p.RPCURL)
	case sugar.DeployParams:
		ab.word("deploy")
		ab.rpc(p.RPCURL)
	case sugar.FreezeDisableParams:
		ab.word("freeze", "disable")
		ab.str("--candy-machine", p.CandyMachine)
		ab.rpc(p.RPCURL)
	case sugar.FreezeEnableParams:
		ab.word("freeze", "enable")
		ab.str("--candy-machine", p.CandyMachine)
		if p.FreezeDays != nil {
			ab.word("--freeze-days", strconv.FormatUint(uint64(*p.FreezeDays), 10))
		}
		ab.rpc(p.RPCURL)
	case sugar.HashParams:
		ab.word("hash")
		ab.str("--compare", p.Compare)
	case sugar.LaunchParams:
		ab.word("launch")
		ab.flag("--strict", p.Strict)
		ab.flag("--skip-collection-prompt", p.SkipCollectionPrompt)
		ab.rpc(p.RPCURL)
	case sugar.MintParams:
		ab.word("mint")
		if p.Number != nil {
			ab.word("--number", strconv.FormatUint(*p.Number, 10))
		}
		ab.str("--receiver", p.Receiver)
		ab.str("--candy-machine", p.CandyMachine)
		ab.rpc(p.RPCURL)
	case sugar.RevealParams:
		ab.word("reveal")
		ab.rpc(p.RPCURL)
	case sugar.ShowParams:
		ab.word("show")
		ab.positional(p.CandyMachine)
		ab.flag("--unminted", p.Unminted)
		ab.rpc(p.RPCURL)
	case sugar.SignParams:
		ab.word("sign")
		ab.str("--mint", p.Mint)
		ab.str("--candy-machine-id", p.CandyMachineID)
		ab.rpc(p.RPCURL)
	case sugar.ThawParams:
		ab.word("freeze", "thaw")
		ab.positional(p.NFTMint)
		ab.flag("--all", p.All)
		ab.str("--candy-machine", p.CandyMachine)
		ab.rpc(p.RPCURL)
	case sugar.UnfreezeFundsParams:
		ab.word("freeze", "unlock-funds")
		ab.str("--candy-machine", p.CandyMachine)
		ab.rpc(p.RPCURL)
	case sugar.UpdateParams:
		ab.word("update")
		ab.str("--new-authority", p.NewAuthority)
		ab.str("--candy-machine", p.CandyMachine)
		ab.rpc(p.RPCURL)
	case sugar.UploadParams:
		ab.word("upload")
		ab.rpc(p.RPCURL)
	case sugar.ValidateParams:
		ab.word("validate")
		ab.flag("--strict", p.Strict)
		ab.flag("--skip-collection-prompt", p.SkipCollectionPrompt)
	case sugar.VerifyParams:
		ab.word("verify")
		ab.rpc(p.RPCURL)
	case sugar.WithdrawParams:
		ab.word("withdraw")
		ab.str("--candy-machine", p.CandyMachine)
		ab.flag("--list", p.List)
		ab.rpc(p.RPCURL)
	default:
		return nil, fmt.Errorf("%w: %T", sugar.ErrUnknownMethod, req)
	}

	accepted := commandOptions[req.Method()]
	if accepted&optKeypair != 0 && b.opts.Keypair != "" {
		ab.word("--keypair", b.opts.Keypair)
	}
	if accepted&optConfig != 0 && b.opts.Config != "" {
		ab.word("--config", b.opts.Config)
	}
	if accepted&optCache != 0 && b.opts.Cache != "" {
		ab.word("--cache", b.opts.Cache)
	}
	if accepted&optAssets != 0 && b.opts.Assets != "" {
		ab.word("--assets-dir", b.opts.Assets)
	}

	return ab.args, nil
}
