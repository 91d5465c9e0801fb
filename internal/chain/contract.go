package chain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Contract is a handle to a deployed contract: an address plus the minimal
// ABI this service knows about. The real contract may expose more (or fewer)
// entrypoints than the ABI declares; callers probe defensively.
type Contract struct {
	Name    string
	Address common.Address
	ABI     abi.ABI
}

func (c Contract) HasMethod(name string) bool {
	_, ok := c.ABI.Methods[name]
	return ok
}
