package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"proptoken/internal/chain"
	"proptoken/internal/contracts"
	"proptoken/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Reader serves the chain read paths. Transient read failures map to safe
// zero values so the UI stays available.
type Reader struct {
	logs     *zap.SugaredLogger
	repo     Repository
	chain    ChainGateway
	registry *contracts.Registry
}

func NewReader(logger *zap.SugaredLogger, repo Repository, chainGateway ChainGateway, registry *contracts.Registry) *Reader {
	return &Reader{
		logs:     logger,
		repo:     repo,
		chain:    chainGateway,
		registry: registry,
	}
}

func (r *Reader) NetworkStatus(ctx context.Context) NetworkStatus {
	block := r.chain.BlockNumber(ctx)
	return NetworkStatus{
		Connected:   block > 0,
		LatestBlock: block,
	}
}

func (r *Reader) TokenInfo(ctx context.Context, tokenAddress string) (TokenInfo, error) {
	if !common.IsHexAddress(tokenAddress) {
		return TokenInfo{}, ErrInvalidAddress
	}

	token := r.registry.Token(common.HexToAddress(tokenAddress))

	info := TokenInfo{
		Name:        r.callString(ctx, token, "name"),
		Symbol:      r.callString(ctx, token, "symbol"),
		TotalSupply: r.formatUnits(r.callBig(ctx, token, "totalSupply"), int32(r.decimals(ctx, token))),
		TokenPrice:  r.fromFixedPoint(r.callBig(ctx, token, "tokenPrice"), valuationDecimals),
		Valuation:   r.fromFixedPoint(r.callBig(ctx, token, "propertyValuation"), valuationDecimals),
	}

	property, err := r.repo.GetPropertyByTokenAddress(ctx, token.Address.Hex())
	if err == nil {
		info.Property = &property
		if info.TokenPrice == 0 {
			info.TokenPrice = property.TokenPrice
		}
		if info.Valuation == 0 {
			info.Valuation = property.Valuation
		}
	} else if !errors.Is(err, repository.ErrPropertyNotFound) {
		return TokenInfo{}, fmt.Errorf("get property by token address: %w", err)
	}

	return info, nil
}

func (r *Reader) InvestmentInfo(ctx context.Context, tokenAddress string, investmentAmount *float64) (InvestmentInfo, error) {
	tokenInfo, err := r.TokenInfo(ctx, tokenAddress)
	if err != nil {
		return InvestmentInfo{}, err
	}

	token := r.registry.Token(common.HexToAddress(tokenAddress))
	info := InvestmentInfo{
		TokenInfo: tokenInfo,
		AccessControl: AccessControlSummary{
			AdminIsIssuer: r.hasRole(ctx, token, contracts.IssuerRole, r.chain.Sender()),
			AdminHolders:  r.roleHolders(ctx, token, contracts.DefaultAdminRole),
		},
	}

	if investmentAmount != nil && *investmentAmount > 0 && tokenInfo.TokenPrice > 0 {
		quantity, _ := decimal.NewFromFloat(*investmentAmount).
			Div(decimal.NewFromFloat(tokenInfo.TokenPrice)).Float64()
		info.TokenQuantity = &quantity
	}

	return info, nil
}

// TokenBalance returns "0" on any chain failure; a transient RPC outage must
// not break the balance view.
func (r *Reader) TokenBalance(ctx context.Context, tokenAddress, userAddress string) (string, error) {
	if !common.IsHexAddress(tokenAddress) || !common.IsHexAddress(userAddress) {
		return "", ErrInvalidAddress
	}

	token := r.registry.Token(common.HexToAddress(tokenAddress))
	results, err := r.chain.Call(ctx, token, "balanceOf", common.HexToAddress(userAddress))
	if err != nil {
		r.logs.Debugw("balance read failed, returning zero", "token", tokenAddress, "error", err)
		return "0", nil
	}

	balance, ok := results[0].(*big.Int)
	if !ok {
		return "0", nil
	}
	return r.formatUnits(balance, int32(r.decimals(ctx, token))), nil
}

// PendingDividend returns "0" on any chain failure, same as TokenBalance.
func (r *Reader) PendingDividend(ctx context.Context, tokenAddress, investorAddress string) (string, error) {
	if !common.IsHexAddress(tokenAddress) || !common.IsHexAddress(investorAddress) {
		return "", ErrInvalidAddress
	}

	results, err := r.chain.Call(ctx, r.registry.Dividend(), "pendingDividend",
		common.HexToAddress(tokenAddress), common.HexToAddress(investorAddress))
	if err != nil {
		r.logs.Debugw("dividend read failed, returning zero", "token", tokenAddress, "error", err)
		return "0", nil
	}

	pending, ok := results[0].(*big.Int)
	if !ok {
		return "0", nil
	}
	return r.formatUnits(pending, valuationDecimals), nil
}

func (r *Reader) callString(ctx context.Context, contract chain.Contract, method string) string {
	results, err := r.chain.Call(ctx, contract, method)
	if err != nil {
		return ""
	}
	s, _ := results[0].(string)
	return s
}

func (r *Reader) callBig(ctx context.Context, contract chain.Contract, method string) *big.Int {
	results, err := r.chain.Call(ctx, contract, method)
	if err != nil {
		return big.NewInt(0)
	}
	value, ok := results[0].(*big.Int)
	if !ok {
		return big.NewInt(0)
	}
	return value
}

func (r *Reader) decimals(ctx context.Context, contract chain.Contract) uint8 {
	results, err := r.chain.Call(ctx, contract, "decimals")
	if err != nil {
		return defaultTokenDecimals
	}
	d, ok := results[0].(uint8)
	if !ok {
		return defaultTokenDecimals
	}
	return d
}

func (r *Reader) hasRole(ctx context.Context, contract chain.Contract, role [32]byte, account common.Address) bool {
	results, err := r.chain.Call(ctx, contract, "hasRole", role, account)
	if err != nil {
		return false
	}
	has, ok := results[0].(bool)
	return ok && has
}

func (r *Reader) roleHolders(ctx context.Context, contract chain.Contract, role [32]byte) []string {
	results, err := r.chain.Call(ctx, contract, "getRoleMemberCount", role)
	if err != nil {
		return nil
	}
	count, ok := results[0].(*big.Int)
	if !ok {
		return nil
	}

	holders := make([]string, 0, count.Int64())
	for i := int64(0); i < count.Int64(); i++ {
		memberRes, err := r.chain.Call(ctx, contract, "getRoleMember", role, big.NewInt(i))
		if err != nil {
			continue
		}
		if addr, ok := memberRes[0].(common.Address); ok {
			holders = append(holders, addr.Hex())
		}
	}
	return holders
}

func (r *Reader) formatUnits(value *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(value, -decimals).String()
}

func (r *Reader) fromFixedPoint(value *big.Int, decimals int32) float64 {
	f, _ := decimal.NewFromBigInt(value, -decimals).Float64()
	return f
}
