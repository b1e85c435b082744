package sugar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Facade forwards Sugar commands to an external implementation. It is safe
// for concurrent use and keeps no per-call state.
type Facade struct {
	impl   Commands
	logger *slog.Logger
}

var _ Commands = (*Facade)(nil)

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the logger used for per-call debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Facade) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a Facade over impl. A nil impl is allowed; every call then
// fails with ErrNoImplementation.
func New(impl Commands, opts ...Option) *Facade {
	f := &Facade{
		impl:   impl,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Do forwards an arbitrary request to its method. It is the untyped form of
// the per-command methods below and also accepts pointers to parameter
// structs.
func (f *Facade) Do(ctx context.Context, req Request) error {
	value, ok := requestValue(req)
	if !ok {
		return &ExternalOperationError{Err: fmt.Errorf("%w: %T", ErrUnknownMethod, req)}
	}
	return f.call(ctx, value)
}

func (f *Facade) call(ctx context.Context, req Request) (err error) {
	var method Method
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = &ExternalOperationError{
				Method: method,
				Err:    fmt.Errorf("%w: %v", ErrImplementationPanic, r),
			}
		}
		if err != nil {
			f.logger.Debug("call failed", "method", method, "duration", time.Since(start), "error", err)
			return
		}
		f.logger.Debug("call settled", "method", method, "duration", time.Since(start))
	}()

	method = req.Method()
	if f.impl == nil {
		return &ExternalOperationError{Method: method, Err: ErrNoImplementation}
	}
	return wrapExternal(method, Dispatch(ctx, f.impl, req))
}

func (f *Facade) Bundlr(ctx context.Context, p BundlrParams) error {
	return f.call(ctx, p)
}

func (f *Facade) CollectionSet(ctx context.Context, p CollectionSetParams) error {
	return f.call(ctx, p)
}

func (f *Facade) CollectionRemove(ctx context.Context, p CollectionRemoveParams) error {
	return f.call(ctx, p)
}

func (f *Facade) CreateConfig(ctx context.Context, p CreateConfigParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Deploy(ctx context.Context, p DeployParams) error {
	return f.call(ctx, p)
}

func (f *Facade) FreezeDisable(ctx context.Context, p FreezeDisableParams) error {
	return f.call(ctx, p)
}

func (f *Facade) FreezeEnable(ctx context.Context, p FreezeEnableParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Hash(ctx context.Context, p HashParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Launch(ctx context.Context, p LaunchParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Mint(ctx context.Context, p MintParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Reveal(ctx context.Context, p RevealParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Show(ctx context.Context, p ShowParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Sign(ctx context.Context, p SignParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Thaw(ctx context.Context, p ThawParams) error {
	return f.call(ctx, p)
}

func (f *Facade) UnfreezeFunds(ctx context.Context, p UnfreezeFundsParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Update(ctx context.Context, p UpdateParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Upload(ctx context.Context, p UploadParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Validate(ctx context.Context, p ValidateParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Verify(ctx context.Context, p VerifyParams) error {
	return f.call(ctx, p)
}

func (f *Facade) Withdraw(ctx context.Context, p WithdrawParams) error {
	return f.call(ctx, p)
}
