// Package remote carries façade calls over a Unix socket.
//
// Each connection carries exactly one request and one response, both CBOR:
//
//	request:  {action: "collectionSet", id: "<uuid>", args: [rpc_url, candy_machine, collection_mint]}
//	response: {ok: true} or {ok: false, error: "..."}
//
// The args array is the parameter struct in its documented positional order,
// with absent optionals as null. Client implements sugar.Commands on the
// calling side; Server hosts any sugar.Commands on the implementation side.
package remote

import (
	"fmt"
	"time"

	"github.com/dendrascience/sugarctl/internal/codec"
	"github.com/dendrascience/sugarctl/sugar"
)

// dialTimeout covers only the connect phase.
const dialTimeout = 5 * time.Second

// readTimeout is how long the server waits for a request after accept.
const readTimeout = 30 * time.Second

// writeTimeout is how long the server waits for the response write.
const writeTimeout = 10 * time.Second

// maxMessageSize bounds one request or response.
const maxMessageSize = 1024 * 1024

// Bounds of the pause between failed accepts.
const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// Request is the wire envelope for one call.
type Request struct {
	Action string           `cbor:"action"`
	ID     string           `cbor:"id,omitempty"`
	Args   codec.RawMessage `cbor:"args"`
}

// Response is the wire envelope for one settlement.
type Response struct {
	OK    bool   `cbor:"ok"`
	Error string `cbor:"error,omitempty"`
}

type argsDecoder func(raw codec.RawMessage) (sugar.Request, error)

func decodeArgs[P sugar.Request](raw codec.RawMessage) (sugar.Request, error) {
	var p P
	if err := codec.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return p, nil
}

var decoders = map[sugar.Method]argsDecoder{
	sugar.MethodBundlr:           decodeArgs[sugar.BundlrParams],
	sugar.MethodCollectionSet:    decodeArgs[sugar.CollectionSetParams],
	sugar.MethodCollectionRemove: decodeArgs[sugar.CollectionRemoveParams],
	sugar.MethodCreateConfig:     decodeArgs[sugar.CreateConfigParams],
	sugar.MethodDeploy:           decodeArgs[sugar.DeployParams],
	sugar.MethodFreezeDisable:    decodeArgs[sugar.FreezeDisableParams],
	sugar.MethodFreezeEnable:     decodeArgs[sugar.FreezeEnableParams],
	sugar.MethodHash:             decodeArgs[sugar.HashParams],
	sugar.MethodLaunch:           decodeArgs[sugar.LaunchParams],
	sugar.MethodMint:             decodeArgs[sugar.MintParams],
	sugar.MethodReveal:           decodeArgs[sugar.RevealParams],
	sugar.MethodShow:             decodeArgs[sugar.ShowParams],
	sugar.MethodSign:             decodeArgs[sugar.SignParams],
	sugar.MethodThaw:             decodeArgs[sugar.ThawParams],
	sugar.MethodUnfreezeFunds:    decodeArgs[sugar.UnfreezeFundsParams],
	sugar.MethodUpdate:           decodeArgs[sugar.UpdateParams],
	sugar.MethodUpload:           decodeArgs[sugar.UploadParams],
	sugar.MethodValidate:         decodeArgs[sugar.ValidateParams],
	sugar.MethodVerify:           decodeArgs[sugar.VerifyParams],
	sugar.MethodWithdraw:         decodeArgs[sugar.WithdrawParams],
}

// DecodeRequest turns a wire envelope back into a parameter struct.
func DecodeRequest(env Request) (sugar.Request, error) {
	decode, ok := decoders[sugar.Method(env.Action)]
	if !ok {
		return nil, fmt.Errorf("%w %q", sugar.ErrUnknownMethod, env.Action)
	}
	return decode(env.Args)
}

// EncodeRequest builds the wire envelope for req.
func EncodeRequest(req sugar.Request, id string) (Request, error) {
	args, err := codec.Marshal(req)
	if err != nil {
		return Request{}, fmt.Errorf("encoding %s args: %w", req.Method(), err)
	}
	return Request{Action: string(req.Method()), ID: id, Args: args}, nil
}
