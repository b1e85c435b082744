// Package sugar implements the command façade for the Sugar candy machine suite.
//
// The façade exposes one method per Sugar command (bundlr funding, collection
// management, config creation, deploy, freeze controls, hash, launch, mint,
// reveal, show, sign, thaw, update, upload, validate, verify and withdraw).
// None of the command logic lives here. Every call is forwarded unchanged to an
// injected implementation of Commands and settles exactly once, either with
// success or with an *ExternalOperationError.
//
// Key Properties:
//   - Parameters are forwarded verbatim: no defaults, no validation, no retries
//   - Optional parameters are pointers; nil means "let the implementation decide"
//   - The façade holds no locks, so concurrent calls never wait on each other
//   - Panics raised by the implementation are recovered and reported as failures
//
// Implementations shipped with this module:
//   - execbackend: runs the sugar binary as a subprocess
//   - remote: forwards calls over a Unix socket using CBOR
//   - sugartest: records calls for tests
//
// The main entry point is New, which wraps an implementation in a Facade.
package sugar
