// Package sugartest provides an in-memory implementation of sugar.Commands
// for tests.
package sugartest

import (
	"context"
	"sync"

	"github.com/dendrascience/sugarctl/sugar"
)

// Call is one request received by a Recorder.
type Call struct {
	Method  sugar.Method
	Request sugar.Request
}

type gate struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

// Recorder records every request it receives and settles each call with the
// error programmed for its method, or nil.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	errs   map[sugar.Method]error
	panics map[sugar.Method]any
	gates  map[sugar.Method]*gate
}

var _ sugar.Commands = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		errs:   make(map[sugar.Method]error),
		panics: make(map[sugar.Method]any),
		gates:  make(map[sugar.Method]*gate),
	}
}

// FailWith makes every later call to method return err.
func (r *Recorder) FailWith(method sugar.Method, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[method] = err
}

// PanicWith makes every later call to method panic with value.
func (r *Recorder) PanicWith(method sugar.Method, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics[method] = value
}

// Block holds calls to method open until release is called or the call's
// context is done. entered is closed when the first such call arrives.
func (r *Recorder) Block(method sugar.Method) (entered <-chan struct{}, release func()) {
	g := &gate{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	r.mu.Lock()
	r.gates[method] = g
	r.mu.Unlock()

	var releaseOnce sync.Once
	return g.entered, func() { releaseOnce.Do(func() { close(g.release) }) }
}

// Calls returns a copy of the calls received so far, in arrival order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent call.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset forgets recorded calls. Programmed failures and gates are kept.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) record(ctx context.Context, req sugar.Request) error {
	method := req.Method()

	r.mu.Lock()
	r.calls = append(r.calls, Call{Method: method, Request: req})
	err := r.errs[method]
	panicValue, shouldPanic := r.panics[method]
	g := r.gates[method]
	r.mu.Unlock()

	if g != nil {
		g.once.Do(func() { close(g.entered) })
		select {
		case <-g.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if shouldPanic {
		panic(panicValue)
	}
	return err
}

func (r *Recorder) Bundlr(ctx context.Context, p sugar.BundlrParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) CollectionSet(ctx context.Context, p sugar.CollectionSetParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) CollectionRemove(ctx context.Context, p sugar.CollectionRemoveParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) CreateConfig(ctx context.Context, p sugar.CreateConfigParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Deploy(ctx context.Context, p sugar.DeployParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) FreezeDisable(ctx context.Context, p sugar.FreezeDisableParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) FreezeEnable(ctx context.Context, p sugar.FreezeEnableParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Hash(ctx context.Context, p sugar.HashParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Launch(ctx context.Context, p sugar.LaunchParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Mint(ctx context.Context, p sugar.MintParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Reveal(ctx context.Context, p sugar.RevealParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Show(ctx context.Context, p sugar.ShowParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Sign(ctx context.Context, p sugar.SignParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Thaw(ctx context.Context, p sugar.ThawParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) UnfreezeFunds(ctx context.Context, p sugar.UnfreezeFundsParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Update(ctx context.Context, p sugar.UpdateParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Upload(ctx context.Context, p sugar.UploadParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Validate(ctx context.Context, p sugar.ValidateParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Verify(ctx context.Context, p sugar.VerifyParams) error {
	return r.record(ctx, p)
}

func (r *Recorder) Withdraw(ctx context.Context, p sugar.WithdrawParams) error {
	return r.record(ctx, p)
}
