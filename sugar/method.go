package sugar

// Method is the stable identifier of a façade operation. The values are
// agreed with external implementations and are used on the wire.
type Method string

const (
	MethodBundlr           Method = "bundlr"
	MethodCollectionSet    Method = "collectionSet"
	MethodCollectionRemove Method = "collectionRemove"
	MethodCreateConfig     Method = "createConfig"
	MethodDeploy           Method = "deploy"
	MethodFreezeDisable    Method = "freezeDisable"
	MethodFreezeEnable     Method = "freezeEnable"
	MethodHash             Method = "hash"
	MethodLaunch           Method = "launch"
	MethodMint             Method = "mint"
	MethodReveal           Method = "reveal"
	MethodShow             Method = "show"
	MethodSign             Method = "sign"
	MethodThaw             Method = "thaw"
	MethodUnfreezeFunds    Method = "unfreezeFunds"
	MethodUpdate           Method = "update"
	MethodUpload           Method = "upload"
	MethodValidate         Method = "validate"
	MethodVerify           Method = "verify"
	MethodWithdraw         Method = "withdraw"
)

// Methods returns every method identifier in declaration order.
func Methods() []Method {
	return []Method{
		MethodBundlr,
		MethodCollectionSet,
		MethodCollectionRemove,
		MethodCreateConfig,
		MethodDeploy,
		MethodFreezeDisable,
		MethodFreezeEnable,
		MethodHash,
		MethodLaunch,
		MethodMint,
		MethodReveal,
		MethodShow,
		MethodSign,
		MethodThaw,
		MethodUnfreezeFunds,
		MethodUpdate,
		MethodUpload,
		MethodValidate,
		MethodVerify,
		MethodWithdraw,
	}
}

// BundlrAction selects what the bundlr command does with the storage balance.
type BundlrAction uint8

const (
	// BundlrBalance reports the funded balance.
	BundlrBalance BundlrAction = iota
	// BundlrWithdraw withdraws the funded balance back to the wallet.
	BundlrWithdraw
)

func (a BundlrAction) String() string {
	switch a {
	case BundlrBalance:
		return "balance"
	case BundlrWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}
