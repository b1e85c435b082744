package sugar

import (
	"context"
	"fmt"
	"reflect"
)

// Commands is the external implementation contract: one method per Sugar
// command, each settling once with nil or an error.
type Commands interface {
	Bundlr(ctx context.Context, p BundlrParams) error
	CollectionSet(ctx context.Context, p CollectionSetParams) error
	CollectionRemove(ctx context.Context, p CollectionRemoveParams) error
	CreateConfig(ctx context.Context, p CreateConfigParams) error
	Deploy(ctx context.Context, p DeployParams) error
	FreezeDisable(ctx context.Context, p FreezeDisableParams) error
	FreezeEnable(ctx context.Context, p FreezeEnableParams) error
	Hash(ctx context.Context, p HashParams) error
	Launch(ctx context.Context, p LaunchParams) error
	Mint(ctx context.Context, p MintParams) error
	Reveal(ctx context.Context, p RevealParams) error
	Show(ctx context.Context, p ShowParams) error
	Sign(ctx context.Context, p SignParams) error
	Thaw(ctx context.Context, p ThawParams) error
	UnfreezeFunds(ctx context.Context, p UnfreezeFundsParams) error
	Update(ctx context.Context, p UpdateParams) error
	Upload(ctx context.Context, p UploadParams) error
	Validate(ctx context.Context, p ValidateParams) error
	Verify(ctx context.Context, p VerifyParams) error
	Withdraw(ctx context.Context, p WithdrawParams) error
}

// requestValue returns the value form of req, dereferencing a pointer to a
// parameter struct. It reports false for a nil request or nil pointer.
func requestValue(req Request) (Request, bool) {
	if req == nil {
		return nil, false
	}
	v := reflect.ValueOf(req)
	if v.Kind() != reflect.Pointer {
		return req, true
	}
	if v.IsNil() {
		return nil, false
	}
	r, ok := v.Elem().Interface().(Request)
	return r, ok
}

// Dispatch routes req to the matching method of impl. Parameter structs are
// accepted as values or non-nil pointers; anything else yields
// ErrUnknownMethod.
func Dispatch(ctx context.Context, impl Commands, req Request) error {
	value, ok := requestValue(req)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownMethod, req)
	}

	switch p := value.(type) {
	case BundlrParams:
		return impl.Bundlr(ctx, p)
	case CollectionSetParams:
		return impl.CollectionSet(ctx, p)
	case CollectionRemoveParams:
		return impl.CollectionRemove(ctx, p)
	case CreateConfigParams:
		return impl.CreateConfig(ctx, p)
	case DeployParams:
		return impl.Deploy(ctx, p)
	case FreezeDisableParams:
		return impl.FreezeDisable(ctx, p)
	case FreezeEnableParams:
		return impl.FreezeEnable(ctx, p)
	case HashParams:
		return impl.Hash(ctx, p)
	case LaunchParams:
		return impl.Launch(ctx, p)
	case MintParams:
		return impl.Mint(ctx, p)
	case RevealParams:
		return impl.Reveal(ctx, p)
	case ShowParams:
		return impl.Show(ctx, p)
	case SignParams:
		return impl.Sign(ctx, p)
	case ThawParams:
		return impl.Thaw(ctx, p)
	case UnfreezeFundsParams:
		return impl.UnfreezeFunds(ctx, p)
	case UpdateParams:
		return impl.Update(ctx, p)
	case UploadParams:
		return impl.Upload(ctx, p)
	case ValidateParams:
		return impl.Validate(ctx, p)
	case VerifyParams:
		return impl.Verify(ctx, p)
	case WithdrawParams:
		return impl.Withdraw(ctx, p)
	}

	return fmt.Errorf("%w: %T", ErrUnknownMethod, req)
}
