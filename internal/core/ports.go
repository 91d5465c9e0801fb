package core

import (
	"context"
	"time"

	"proptoken/internal/chain"
	"proptoken/internal/repository"
	tokenIssuer "proptoken/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetPropertyByID(ctx context.Context, id string) (repository.Property, error)
	GetPropertyByTokenAddress(ctx context.Context, tokenAddress string) (repository.Property, error)
	SetPropertyTokenAddress(ctx context.Context, id, tokenAddress string) error
	SetPropertyEstimatedPrice(ctx context.Context, id string, price float64) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByWallet(ctx context.Context, walletAddress string) (repository.User, error)
	GetKycByWallet(ctx context.Context, walletAddress string) (repository.KycRecord, error)
	SaveKycRecord(ctx context.Context, record *repository.KycRecord) error
	UpdateKycStatus(ctx context.Context, walletAddress, status string, verifiedAt *time.Time) error
}

//counterfeiter:generate -o fake -fake-name ChainGateway . ChainGateway
type ChainGateway interface {
	ReadOnly() bool
	Sender() common.Address
	BlockNumber(ctx context.Context) uint64
	Call(ctx context.Context, contract chain.Contract, method string, args ...any) ([]any, error)
	Send(ctx context.Context, contract chain.Contract, method string, args ...any) (*types.Transaction, error)
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name Forecaster . Forecaster
type Forecaster interface {
	ForecastPrice(ctx context.Context, property repository.Property) (float64, error)
}
