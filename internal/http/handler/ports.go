package handler

import (
	"context"
	"net/http"

	"proptoken/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenizationService . TokenizationService
type TokenizationService interface {
	Tokenize(ctx context.Context, propertyID string) (core.TokenizationResult, error)
	GrantIssuerRole(ctx context.Context, tokenAddress, account string) (core.IssueResult, error)
}

//counterfeiter:generate -o fake -fake-name IssuanceService . IssuanceService
type IssuanceService interface {
	Issue(ctx context.Context, tokenAddress, investorAddress string, amount float64) (core.IssueResult, error)
}

//counterfeiter:generate -o fake -fake-name KycService . KycService
type KycService interface {
	Status(ctx context.Context, address string) (core.KycStatusInfo, error)
	VerifyOnChain(ctx context.Context, address string, investorType int, countryCode string) (core.VerificationResult, error)
	AutoVerifyByWallet(ctx context.Context, walletAddress string) (core.VerificationResult, error)
}

//counterfeiter:generate -o fake -fake-name TokenReadService . TokenReadService
type TokenReadService interface {
	NetworkStatus(ctx context.Context) core.NetworkStatus
	TokenInfo(ctx context.Context, tokenAddress string) (core.TokenInfo, error)
	InvestmentInfo(ctx context.Context, tokenAddress string, investmentAmount *float64) (core.InvestmentInfo, error)
	TokenBalance(ctx context.Context, tokenAddress, userAddress string) (string, error)
	PendingDividend(ctx context.Context, tokenAddress, investorAddress string) (string, error)
}

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ValidateToken(token string) error
}

//counterfeiter:generate -o fake -fake-name EstimationService . EstimationService
type EstimationService interface {
	EstimatePrice(ctx context.Context, propertyID string) (float64, error)
}
