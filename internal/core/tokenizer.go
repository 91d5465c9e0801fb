package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"strings"
	"unicode"

	"proptoken/internal/contracts"
	"proptoken/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrPropertyNotFound error = errors.New("property not found")
var ErrAlreadyTokenized error = errors.New("property is already tokenized")
var ErrNoEstimatedPrice error = errors.New("property has no estimated price, run price estimation first")
var ErrTokenizationDisabled error = errors.New("tokenization disabled: token factory address not configured")
var ErrDeployEventMissing error = errors.New("deployment transaction succeeded but the token creation event was not found; inspect chain state before retrying")

// on-chain valuations use 6-decimal fixed point
const valuationDecimals = 6

// Tokenizer turns a stored property into a deployed on-chain token:
// deploy via the factory, persist the new address, then best-effort acquire
// ISSUER_ROLE so future issuance calls succeed.
type Tokenizer struct {
	logs        *zap.SugaredLogger
	repo        Repository
	chain       ChainGateway
	registry    *contracts.Registry
	roles       *RoleManager
	explorerURL string
}

func NewTokenizer(
	logger *zap.SugaredLogger,
	repo Repository,
	chainGateway ChainGateway,
	registry *contracts.Registry,
	roles *RoleManager,
	explorerURL string,
) *Tokenizer {
	return &Tokenizer{
		logs:        logger,
		repo:        repo,
		chain:       chainGateway,
		registry:    registry,
		roles:       roles,
		explorerURL: explorerURL,
	}
}

func (t *Tokenizer) Tokenize(ctx context.Context, propertyID string) (TokenizationResult, error) {
	property, err := t.repo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return TokenizationResult{}, ErrPropertyNotFound
		}
		return TokenizationResult{}, fmt.Errorf("get property: %w", err)
	}

	// entry guards: user-correctable, rejected before any chain call
	if property.TokenAddress != "" {
		return TokenizationResult{}, ErrAlreadyTokenized
	}
	if property.EstimatedPrice == nil {
		return TokenizationResult{}, ErrNoEstimatedPrice
	}

	factory, ok := t.registry.Factory()
	if !ok {
		return TokenizationResult{}, ErrTokenizationDisabled
	}

	tokenName := property.Name + " Token"
	symbol := tokenSymbol(property.Name)
	valuation := toFixedPoint(*property.EstimatedPrice, valuationDecimals)
	totalTokens := big.NewInt(property.TotalTokens)

	t.logs.Infow("deploying property token",
		"property_id", property.ID,
		"name", tokenName,
		"symbol", symbol,
		"valuation", valuation.String(),
		"total_tokens", property.TotalTokens)

	tx, err := t.chain.Send(ctx, factory, "createPropertyToken", tokenName, symbol, valuation, totalTokens)
	if err != nil {
		return TokenizationResult{}, fmt.Errorf("deploy property token: %w", err)
	}

	receipt, err := t.chain.WaitMined(ctx, tx)
	if err != nil {
		return TokenizationResult{}, fmt.Errorf("wait for deployment: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return TokenizationResult{}, fmt.Errorf("deployment transaction %s reverted", tx.Hash().Hex())
	}

	tokenAddress, err := t.deployedTokenAddress(receipt)
	if err != nil {
		return TokenizationResult{}, err
	}

	// point of no return: once the address is persisted there is no
	// automated undo
	if err := t.repo.SetPropertyTokenAddress(ctx, property.ID, tokenAddress.Hex()); err != nil {
		return TokenizationResult{}, fmt.Errorf(
			"token deployed at %s (tx %s) but persisting the address failed, operator must reconcile chain and database state: %w",
			tokenAddress.Hex(), tx.Hash().Hex(), err)
	}
	property.TokenAddress = tokenAddress.Hex()

	// best-effort: a failure leaves the property Deployed rather than
	// Ready, which is a valid durable state
	if err := t.roles.EnsureIssuerRole(ctx, tokenAddress, t.chain.Sender()); err != nil {
		t.logs.Warnw("token deployed but issuer role not acquired, issuance will fail until an admin grants ISSUER_ROLE",
			"property_id", property.ID,
			"token", tokenAddress.Hex(),
			"error", err)
	}

	t.logs.Infow("property tokenized",
		"property_id", property.ID,
		"token", tokenAddress.Hex(),
		"tx_hash", tx.Hash().Hex())

	return TokenizationResult{
		TokenAddress:    tokenAddress.Hex(),
		TransactionHash: tx.Hash().Hex(),
		ExplorerURL:     txExplorerURL(t.explorerURL, tx.Hash().Hex()),
		Property:        property,
	}, nil
}

// GrantIssuerRole exposes the operator remediation path for tokens stuck in
// the deployed-but-not-ready state.
func (t *Tokenizer) GrantIssuerRole(ctx context.Context, tokenAddress, account string) (IssueResult, error) {
	if !common.IsHexAddress(tokenAddress) || !common.IsHexAddress(account) {
		return IssueResult{}, ErrInvalidAddress
	}

	tx, err := t.roles.GrantIssuerRole(ctx, common.HexToAddress(tokenAddress), common.HexToAddress(account))
	if err != nil {
		return IssueResult{}, err
	}

	return IssueResult{
		TransactionHash: tx.Hash().Hex(),
		ExplorerURL:     txExplorerURL(t.explorerURL, tx.Hash().Hex()),
	}, nil
}

// deployedTokenAddress parses the receipt's logs for the factory creation
// event. An absent event is a hard failure: the transaction committed but
// the new address cannot be determined, so proceeding silently is not safe.
func (t *Tokenizer) deployedTokenAddress(receipt *types.Receipt) (common.Address, error) {
	topic := t.registry.TokenCreatedTopic()
	for _, entry := range receipt.Logs {
		if len(entry.Topics) >= 2 && entry.Topics[0] == topic {
			return common.BytesToAddress(entry.Topics[1].Bytes()), nil
		}
	}
	return common.Address{}, ErrDeployEventMissing
}

// tokenSymbol derives a symbol from the alphanumeric prefix of the property
// name plus a random 0-999 suffix. Collisions are possible; uniqueness is
// enforced on-chain by the factory.
func tokenSymbol(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() >= 4 {
				break
			}
		}
	}
	if b.Len() == 0 {
		b.WriteString("PROP")
	}
	return fmt.Sprintf("%s%d", b.String(), rand.IntN(1000))
}

func toFixedPoint(value float64, decimals int32) *big.Int {
	return decimal.NewFromFloat(value).Mul(decimal.New(1, decimals)).BigInt()
}

func txExplorerURL(base, txHash string) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimRight(base, "/"), txHash)
}
