package contracts

import (
	"fmt"
	"strings"

	"proptoken/internal/chain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// DefaultAdminRole can grant other roles; IssuerRole can mint/issue tokens.
var (
	DefaultAdminRole = [32]byte{}
	IssuerRole       = [32]byte(crypto.Keccak256Hash([]byte("ISSUER_ROLE")))
)

const TokenCreatedEvent = "PropertyTokenCreated"

// Minimal ABIs. The deployed contracts are only partially known; these cover
// the entrypoints this service probes for.
const factoryABIJSON = `[
	{"type":"function","name":"createPropertyToken","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"propertyValuation","type":"uint256"},{"name":"totalSupply","type":"uint256"}],"outputs":[{"name":"token","type":"address"}]},
	{"type":"function","name":"grantIssuerRole","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"account","type":"address"}],"outputs":[]},
	{"type":"function","name":"grantRoleOnToken","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[]},
	{"type":"event","name":"PropertyTokenCreated","anonymous":false,"inputs":[{"name":"token","type":"address","indexed":true},{"name":"name","type":"string","indexed":false},{"name":"symbol","type":"string","indexed":false}]}
]`

const tokenABIJSON = `[
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"tokenPrice","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"propertyValuation","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"grantRole","stateMutability":"nonpayable","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[]},
	{"type":"function","name":"getRoleMemberCount","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getRoleMember","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"index","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"issue","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"buyTokensFor","stateMutability":"payable","inputs":[{"name":"beneficiary","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"purchaseTokens","stateMutability":"payable","inputs":[{"name":"beneficiary","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

const kycABIJSON = `[
	{"type":"function","name":"isVerified","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"verifyInvestor","stateMutability":"nonpayable","inputs":[{"name":"investor","type":"address"},{"name":"investorType","type":"uint8"},{"name":"countryCode","type":"bytes2"},{"name":"expiresAt","type":"uint256"},{"name":"investmentLimit","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getInvestorInfo","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"investorType","type":"uint8"},{"name":"countryCode","type":"bytes2"},{"name":"expiresAt","type":"uint256"},{"name":"investmentLimit","type":"uint256"}]}
]`

const dividendABIJSON = `[
	{"type":"function","name":"pendingDividend","stateMutability":"view","inputs":[{"name":"token","type":"address"},{"name":"investor","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

// Registry resolves configured contract addresses at startup and constructs
// typed handles. A missing factory address leaves the registry in a degraded
// mode where only read paths work; it never crashes the process.
type Registry struct {
	logs *zap.SugaredLogger

	factoryABI  abi.ABI
	tokenABI    abi.ABI
	kycABI      abi.ABI
	dividendABI abi.ABI

	factoryAddr  *common.Address
	kycAddr      common.Address
	dividendAddr common.Address
}

func NewRegistry(logger *zap.SugaredLogger, factoryAddr, kycAddr, dividendAddr string) (*Registry, error) {
	r := &Registry{
		logs: logger,
	}

	var err error
	if r.factoryABI, err = abi.JSON(strings.NewReader(factoryABIJSON)); err != nil {
		return nil, fmt.Errorf("parse factory abi: %w", err)
	}
	if r.tokenABI, err = abi.JSON(strings.NewReader(tokenABIJSON)); err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}
	if r.kycABI, err = abi.JSON(strings.NewReader(kycABIJSON)); err != nil {
		return nil, fmt.Errorf("parse kyc abi: %w", err)
	}
	if r.dividendABI, err = abi.JSON(strings.NewReader(dividendABIJSON)); err != nil {
		return nil, fmt.Errorf("parse dividend abi: %w", err)
	}

	if factoryAddr == "" {
		logger.Warnw("token factory address not configured, tokenization disabled")
	} else if !common.IsHexAddress(factoryAddr) {
		return nil, fmt.Errorf("invalid token factory address: %q", factoryAddr)
	} else {
		addr := common.HexToAddress(factoryAddr)
		r.factoryAddr = &addr
	}

	if !common.IsHexAddress(kycAddr) {
		return nil, fmt.Errorf("invalid kyc contract address: %q", kycAddr)
	}
	if !common.IsHexAddress(dividendAddr) {
		return nil, fmt.Errorf("invalid dividend contract address: %q", dividendAddr)
	}
	r.kycAddr = common.HexToAddress(kycAddr)
	r.dividendAddr = common.HexToAddress(dividendAddr)

	return r, nil
}

func (r *Registry) TokenizationEnabled() bool {
	return r.factoryAddr != nil
}

// Factory returns the factory handle, or false in degraded mode.
func (r *Registry) Factory() (chain.Contract, bool) {
	if r.factoryAddr == nil {
		return chain.Contract{}, false
	}
	return chain.Contract{
		Name:    "TokenFactory",
		Address: *r.factoryAddr,
		ABI:     r.factoryABI,
	}, true
}

// Token builds a handle for a dynamically deployed property token.
func (r *Registry) Token(address common.Address) chain.Contract {
	return chain.Contract{
		Name:    "PropertySecurityToken",
		Address: address,
		ABI:     r.tokenABI,
	}
}

func (r *Registry) KYC() chain.Contract {
	return chain.Contract{
		Name:    "KYCRegistry",
		Address: r.kycAddr,
		ABI:     r.kycABI,
	}
}

func (r *Registry) Dividend() chain.Contract {
	return chain.Contract{
		Name:    "DividendDistributor",
		Address: r.dividendAddr,
		ABI:     r.dividendABI,
	}
}

// TokenCreatedTopic is the topic hash of the factory deployment event.
func (r *Registry) TokenCreatedTopic() common.Hash {
	return r.factoryABI.Events[TokenCreatedEvent].ID
}
