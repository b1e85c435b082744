package sugar

// Request is a parameter bag for one façade call. Each parameter struct
// reports the method it belongs to.
//
// The parameter structs encode as positional arrays (CBOR "toarray"), so the
// field order below is part of the contract with external implementations.
// Absent optionals encode as null.
type Request interface {
	Method() Method
}

// String returns a pointer to s, for optional string parameters.
func String(s string) *string { return &s }

// Uint64 returns a pointer to n, for optional count parameters.
func Uint64(n uint64) *uint64 { return &n }

// Uint8 returns a pointer to n, for optional day parameters.
func Uint8(n uint8) *uint8 { return &n }

type BundlrParams struct {
	_      struct{} `cbor:",toarray"`
	RPCURL *string
	Action BundlrAction
}

func (BundlrParams) Method() Method { return MethodBundlr }

// CollectionSetParams associates CollectionMint with a candy machine.
// CollectionMint is the only mandatory parameter.
type CollectionSetParams struct {
	_              struct{} `cbor:",toarray"`
	RPCURL         *string
	CandyMachine   *string
	CollectionMint string
}

func (CollectionSetParams) Method() Method { return MethodCollectionSet }

type CollectionRemoveParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	CandyMachine *string
}

func (CollectionRemoveParams) Method() Method { return MethodCollectionRemove }

type CreateConfigParams struct {
	_      struct{} `cbor:",toarray"`
	RPCURL *string
}

func (CreateConfigParams) Method() Method { return MethodCreateConfig }

type DeployParams struct {
	_      struct{} `cbor:",toarray"`
	RPCURL *string
}

func (DeployParams) Method() Method { return MethodDeploy }

type FreezeDisableParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	CandyMachine *string
}

func (FreezeDisableParams) Method() Method { return MethodFreezeDisable }

type FreezeEnableParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	CandyMachine *string
	FreezeDays   *uint8
}

func (FreezeEnableParams) Method() Method { return MethodFreezeEnable }

// HashParams computes the integrity hash, or compares it against Compare
// when set.
type HashParams struct {
	_       struct{} `cbor:",toarray"`
	Compare *string
}

func (HashParams) Method() Method { return MethodHash }

// LaunchParams runs validate, upload and deploy in sequence on the
// implementation side.
type LaunchParams struct {
	_                    struct{} `cbor:",toarray"`
	RPCURL               *string
	Strict               bool
	SkipCollectionPrompt bool
}

func (LaunchParams) Method() Method { return MethodLaunch }

type MintParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	Number       *uint64
	Receiver     *string
	CandyMachine *string
}

func (MintParams) Method() Method { return MethodMint }

type RevealParams struct {
	_      struct{} `cbor:",toarray"`
	RPCURL *string
}

func (RevealParams) Method() Method { return MethodReveal }

type ShowParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	CandyMachine *string
	Unminted     bool
}

func (ShowParams) Method() Method { return MethodShow }

type SignParams struct {
	_              struct{} `cbor:",toarray"`
	RPCURL         *string
	Mint           *string
	CandyMachineID *string
}

func (SignParams) Method() Method { return MethodSign }

// ThawParams releases the freeze on NFTMint, or on every minted asset
// when All is set.
type ThawParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	All          bool
	CandyMachine *string
	NFTMint      *string
}

func (ThawParams) Method() Method { return MethodThaw }

type UnfreezeFundsParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	CandyMachine *string
}

func (UnfreezeFundsParams) Method() Method { return MethodUnfreezeFunds }

type UpdateParams struct {
	_            struct{} `cbor:",toarray"`
	RPCURL       *string
	NewAuthority *string
	CandyMachine *string
}

func (UpdateParams) Method() Method { return MethodUpdate }

type UploadParams struct {
	_      struct{} `cbor:",toarray"`
	RPCURL *string
}

func (UploadParams) Method() Method { return MethodUpload }

type ValidateParams struct {
	_                    struct{} `cbor:",toarray"`
	Strict               bool
	SkipCollectionPrompt bool
}

func (ValidateParams) Method() Method { return MethodValidate }

type VerifyParams struct {
	_      struct{} `cbor:",toarray"`
	RPCURL *string
}

func (VerifyParams) Method() Method { return MethodVerify }

// WithdrawParams withdraws the rent of a candy machine, or only lists
// withdrawable candy machines when List is set. Note that CandyMachine
// precedes RPCURL here.
type WithdrawParams struct {
	_            struct{} `cbor:",toarray"`
	CandyMachine *string
	RPCURL       *string
	List         bool
}

func (WithdrawParams) Method() Method { return MethodWithdraw }
