package core

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"proptoken/internal/chain"
	"proptoken/internal/contracts"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidAddress error = errors.New("invalid ethereum address")
var ErrInvalidAmount error = errors.New("amount must be a positive number")

const defaultTokenDecimals = 18

// issueStrategy is one candidate entrypoint on the unknown token contract.
// skip classifies errors that disqualify the entrypoint for this flow
// without being a real failure (e.g. the method demands payment).
type issueStrategy struct {
	method string
	args   func(investor common.Address, units *big.Int) []any
	skip   func(error) bool
}

// Issuer mints/transfers tokens to a verified investor. The token contract's
// exact issuance entrypoint is not guaranteed, so candidates are tried in
// strict priority order.
type Issuer struct {
	logs             *zap.SugaredLogger
	chain            ChainGateway
	registry         *contracts.Registry
	roles            *RoleManager
	explorerURL      string
	simulateFallback bool

	strategies []issueStrategy
}

func NewIssuer(
	logger *zap.SugaredLogger,
	chainGateway ChainGateway,
	registry *contracts.Registry,
	roles *RoleManager,
	explorerURL string,
	simulateFallback bool,
) *Issuer {
	twoArgs := func(investor common.Address, units *big.Int) []any {
		return []any{investor, units}
	}

	return &Issuer{
		logs:             logger,
		chain:            chainGateway,
		registry:         registry,
		roles:            roles,
		explorerURL:      explorerURL,
		simulateFallback: simulateFallback,
		strategies: []issueStrategy{
			{method: "buyTokensFor", args: twoArgs, skip: chain.IsPaymentRequired},
			{method: "purchaseTokens", args: twoArgs, skip: chain.IsPaymentRequired},
			{method: "mint", args: twoArgs},
			{method: "issue", args: twoArgs},
		},
	}
}

func (i *Issuer) Issue(ctx context.Context, tokenAddress, investorAddress string, amount float64) (IssueResult, error) {
	if !common.IsHexAddress(tokenAddress) || !common.IsHexAddress(investorAddress) {
		return IssueResult{}, ErrInvalidAddress
	}
	if amount <= 0 {
		return IssueResult{}, ErrInvalidAmount
	}

	token := i.registry.Token(common.HexToAddress(tokenAddress))
	investor := common.HexToAddress(investorAddress)

	decimals := i.tokenDecimals(ctx, token)
	units := decimal.NewFromFloat(amount).Mul(decimal.New(1, int32(decimals))).BigInt()

	var lastErr error
	for _, strategy := range i.strategies {
		result, err := i.tryStrategy(ctx, token, strategy, investor, units)
		if err == nil {
			return result, nil
		}

		if strategy.skip != nil && strategy.skip(err) {
			i.logs.Debugw("issuance entrypoint requires payment, skipping",
				"method", strategy.method, "error", err)
			continue
		}

		// issue is the canonical entrypoint; an access-control failure
		// there gets one inline grant-and-retry
		if strategy.method == "issue" && chain.IsAccessControl(err) {
			i.logs.Infow("issue blocked by access control, attempting inline role grant",
				"token", token.Address.Hex())
			if grantErr := i.roles.EnsureIssuerRole(ctx, token.Address, i.chain.Sender()); grantErr == nil {
				result, err = i.tryStrategy(ctx, token, strategy, investor, units)
				if err == nil {
					return result, nil
				}
			}
		}

		i.logs.Debugw("issuance entrypoint failed", "method", strategy.method, "error", err)
		lastErr = err
	}

	if i.simulateFallback {
		hash := simulatedTxHash()
		i.logs.Warnw("every real issuance path failed, returning SIMULATED transaction hash; not a real on-chain transfer",
			"token", token.Address.Hex(),
			"investor", investor.Hex(),
			"simulated_hash", hash,
			"last_error", lastErr)
		return IssueResult{
			TransactionHash: hash,
			ExplorerURL:     txExplorerURL(i.explorerURL, hash),
			Simulated:       true,
		}, nil
	}

	return IssueResult{}, fmt.Errorf("all issuance entrypoints failed: %w", lastErr)
}

func (i *Issuer) tryStrategy(ctx context.Context, token chain.Contract, strategy issueStrategy, investor common.Address, units *big.Int) (IssueResult, error) {
	tx, err := i.chain.Send(ctx, token, strategy.method, strategy.args(investor, units)...)
	if err != nil {
		return IssueResult{}, err
	}

	receipt, err := i.chain.WaitMined(ctx, tx)
	if err != nil {
		return IssueResult{}, fmt.Errorf("wait for %s transaction: %w", strategy.method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return IssueResult{}, fmt.Errorf("%s transaction %s reverted", strategy.method, tx.Hash().Hex())
	}

	i.logs.Infow("tokens issued",
		"token", token.Address.Hex(),
		"investor", investor.Hex(),
		"method", strategy.method,
		"units", units.String(),
		"tx_hash", tx.Hash().Hex())

	return IssueResult{
		TransactionHash: tx.Hash().Hex(),
		ExplorerURL:     txExplorerURL(i.explorerURL, tx.Hash().Hex()),
		Method:          strategy.method,
	}, nil
}

func (i *Issuer) tokenDecimals(ctx context.Context, token chain.Contract) uint8 {
	results, err := i.chain.Call(ctx, token, "decimals")
	if err != nil {
		return defaultTokenDecimals
	}
	decimals, ok := results[0].(uint8)
	if !ok {
		return defaultTokenDecimals
	}
	return decimals
}

func simulatedTxHash() string {
	b := make([]byte, common.HashLength)
	_, _ = rand.Read(b)
	return common.BytesToHash(b).Hex()
}
