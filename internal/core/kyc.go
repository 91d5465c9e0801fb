package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"proptoken/internal/contracts"
	"proptoken/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var ErrInvalidInvestorType error = errors.New("investor type must be between 1 and 4")
var ErrInvalidCountryCode error = errors.New("country code must be a 2-letter ISO code")
var ErrNotInvestor error = errors.New("automatic verification is available for investor accounts only")
var ErrUserNotFound error = errors.New("user not found")

const (
	kycValidityYears = 1
	// fixed per-investor limit, USD in 6-decimal fixed point
	defaultInvestmentLimitUSD = 1_000_000
)

// KycBridge verifies investors on-chain and reconciles the result into the
// off-chain record. On-chain state is authoritative: when the two disagree
// the off-chain record is updated toward the chain, never the reverse.
type KycBridge struct {
	logs             *zap.SugaredLogger
	repo             Repository
	chain            ChainGateway
	registry         *contracts.Registry
	explorerURL      string
	investorTypeBase int
}

func NewKycBridge(
	logger *zap.SugaredLogger,
	repo Repository,
	chainGateway ChainGateway,
	registry *contracts.Registry,
	explorerURL string,
	investorTypeBase int,
) *KycBridge {
	return &KycBridge{
		logs:             logger,
		repo:             repo,
		chain:            chainGateway,
		registry:         registry,
		explorerURL:      explorerURL,
		investorTypeBase: investorTypeBase,
	}
}

// CheckOnChain reports on-chain verification. Absence of verification is a
// valid business state, so any RPC failure maps to false, never an error.
func (k *KycBridge) CheckOnChain(ctx context.Context, address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}

	results, err := k.chain.Call(ctx, k.registry.KYC(), "isVerified", common.HexToAddress(address))
	if err != nil {
		k.logs.Debugw("on-chain kyc check failed, treating as not verified", "address", address, "error", err)
		return false
	}

	verified, ok := results[0].(bool)
	return ok && verified
}

// Status combines the authoritative on-chain flag with the off-chain record.
func (k *KycBridge) Status(ctx context.Context, address string) (KycStatusInfo, error) {
	if !common.IsHexAddress(address) {
		return KycStatusInfo{}, ErrInvalidAddress
	}

	info := KycStatusInfo{
		IsVerified: k.CheckOnChain(ctx, address),
	}

	record, err := k.repo.GetKycByWallet(ctx, address)
	if err == nil {
		info.Record = &record
	} else if !errors.Is(err, repository.ErrKycNotFound) {
		return KycStatusInfo{}, fmt.Errorf("get kyc record: %w", err)
	}

	return info, nil
}

// VerifyOnChain submits an investor verification transaction. Local
// validation fails fast rather than spending gas on a doomed transaction.
func (k *KycBridge) VerifyOnChain(ctx context.Context, address string, investorType int, countryCode string) (VerificationResult, error) {
	if !common.IsHexAddress(address) {
		return VerificationResult{}, ErrInvalidAddress
	}
	if investorType < repository.InvestorTypeRetail || investorType > repository.InvestorTypeQualified {
		return VerificationResult{}, ErrInvalidInvestorType
	}

	country, err := encodeCountry(countryCode)
	if err != nil {
		return VerificationResult{}, err
	}

	expiresAt := time.Now().AddDate(kycValidityYears, 0, 0)
	limit := new(big.Int).Mul(big.NewInt(defaultInvestmentLimitUSD), big.NewInt(1_000_000))

	// the contract's enum base is configuration-verified, not assumed
	wireType := uint8(investorType - repository.InvestorTypeRetail + k.investorTypeBase)

	tx, err := k.chain.Send(ctx, k.registry.KYC(), "verifyInvestor",
		common.HexToAddress(address), wireType, country, big.NewInt(expiresAt.Unix()), limit)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("submit verification: %w", err)
	}

	receipt, err := k.chain.WaitMined(ctx, tx)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("wait for verification transaction: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return VerificationResult{}, fmt.Errorf("verification transaction %s reverted", tx.Hash().Hex())
	}

	k.logs.Infow("investor verified on-chain",
		"address", address,
		"investor_type", investorType,
		"country", countryCode,
		"tx_hash", tx.Hash().Hex())

	return VerificationResult{
		TransactionHash: tx.Hash().Hex(),
		ExplorerURL:     txExplorerURL(k.explorerURL, tx.Hash().Hex()),
	}, nil
}

// AutoVerifyByWallet verifies an investor looked up by wallet address. Only
// investor accounts qualify; other roles must go through the explicit flow.
func (k *KycBridge) AutoVerifyByWallet(ctx context.Context, walletAddress string) (VerificationResult, error) {
	if !common.IsHexAddress(walletAddress) {
		return VerificationResult{}, ErrInvalidAddress
	}

	user, err := k.repo.GetUserByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return VerificationResult{}, ErrUserNotFound
		}
		return VerificationResult{}, fmt.Errorf("get user by wallet: %w", err)
	}
	if user.Role != repository.RoleInvestor {
		return VerificationResult{}, ErrNotInvestor
	}

	// already verified on-chain: reconcile without spending gas
	if k.CheckOnChain(ctx, walletAddress) {
		now := time.Now()
		if err := k.reconcileVerified(ctx, user, walletAddress, now); err != nil {
			return VerificationResult{}, err
		}
		return VerificationResult{AlreadyVerified: true}, nil
	}

	record, err := k.repo.GetKycByWallet(ctx, walletAddress)
	if errors.Is(err, repository.ErrKycNotFound) {
		record = repository.KycRecord{
			UserID:        user.ID,
			WalletAddress: walletAddress,
			Status:        repository.KycStatusPending,
			InvestorType:  repository.InvestorTypeRetail,
			CountryCode:   "US",
		}
		if err := k.repo.SaveKycRecord(ctx, &record); err != nil {
			return VerificationResult{}, fmt.Errorf("create default kyc record: %w", err)
		}
	} else if err != nil {
		return VerificationResult{}, fmt.Errorf("get kyc record: %w", err)
	}

	result, err := k.VerifyOnChain(ctx, walletAddress, record.InvestorType, record.CountryCode)
	if err != nil {
		// deliberately left PENDING, never silently marked verified
		if updErr := k.repo.UpdateKycStatus(ctx, walletAddress, repository.KycStatusPending, nil); updErr != nil {
			k.logs.Errorw("failed to reset kyc record to pending", "wallet", walletAddress, "error", updErr)
		}
		return VerificationResult{}, fmt.Errorf("on-chain verification: %w", err)
	}

	now := time.Now()
	if err := k.repo.UpdateKycStatus(ctx, walletAddress, repository.KycStatusVerified, &now); err != nil {
		k.logs.Errorw("verified on-chain but off-chain status update failed", "wallet", walletAddress, "error", err)
	}

	return result, nil
}

func (k *KycBridge) reconcileVerified(ctx context.Context, user repository.User, walletAddress string, now time.Time) error {
	err := k.repo.UpdateKycStatus(ctx, walletAddress, repository.KycStatusVerified, &now)
	if errors.Is(err, repository.ErrKycNotFound) {
		expires := now.AddDate(kycValidityYears, 0, 0)
		record := repository.KycRecord{
			UserID:          user.ID,
			WalletAddress:   walletAddress,
			Status:          repository.KycStatusVerified,
			InvestorType:    repository.InvestorTypeRetail,
			CountryCode:     "US",
			VerifiedAt:      &now,
			ExpiresAt:       &expires,
			InvestmentLimit: defaultInvestmentLimitUSD,
		}
		return k.repo.SaveKycRecord(ctx, &record)
	}
	if err != nil {
		return fmt.Errorf("reconcile kyc record: %w", err)
	}
	return nil
}

func encodeCountry(code string) ([2]byte, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return [2]byte{}, ErrInvalidCountryCode
	}
	return [2]byte{code[0], code[1]}, nil
}
