package chain

import (
	"errors"
	"strings"
)

var ErrSignerNotConfigured error = errors.New("signer not configured: set ADMIN_PRIVATE_KEY to enable chain writes")
var ErrChainUnavailable error = errors.New("chain unavailable")

// AccessControlUnauthorizedAccount(address,bytes32) custom error selector
// used by OpenZeppelin v5 AccessControl.
const accessControlSelector = "0xe2517d3f"

var accessControlMarkers = []string{
	accessControlSelector,
	"AccessControl",
	"missing role",
	"is missing role",
	"caller is not",
	"not authorized",
}

var paymentRequiredMarkers = []string{
	"insufficient payment",
	"payment required",
	"incorrect payment",
	"msg.value",
	"wrong amount sent",
	"non-payable",
}

// IsAccessControl reports whether an on-chain failure looks like a role or
// permission revert rather than a generic execution failure.
func IsAccessControl(err error) bool {
	return matchesAny(err, accessControlMarkers)
}

// IsPaymentRequired reports whether a revert indicates the entrypoint expects
// a native-currency payment. Issuance skips those entrypoints since it mints
// without payment.
func IsPaymentRequired(err error) bool {
	return matchesAny(err, paymentRequiredMarkers)
}

func matchesAny(err error, markers []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range markers {
		if strings.Contains(msg, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
