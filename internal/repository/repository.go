package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proptoken/internal/db"

	"github.com/google/uuid"
)

var ErrPropertyNotFound error = errors.New("property not found")
var ErrUserNotFound error = errors.New("user not found")
var ErrKycNotFound error = errors.New("kyc record not found")

type PropertyRepository struct {
	db Storage
}

func NewPropertyRepository(db Storage) *PropertyRepository {
	return &PropertyRepository{
		db: db,
	}
}

func (r *PropertyRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&Property{}, &User{}, &KycRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "operator",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
			Role:         "operator",
		},
		{
			ID:            uuid.NewString(),
			Username:      "alice",
			PasswordHash:  "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
			WalletAddress: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
			Role:          RoleInvestor,
		},
		{
			ID:            uuid.NewString(),
			Username:      "bob",
			PasswordHash:  "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
			WalletAddress: "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
			Role:          RoleInvestor,
		},
	}
	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	properties := []Property{
		{
			ID:          uuid.NewString(),
			Name:        "123 Main St",
			Address:     "123 Main St",
			City:        "Austin",
			State:       "TX",
			ZipCode:     "78701",
			Bedrooms:    3,
			Bathrooms:   2,
			SquareFeet:  1850,
			LotSize:     0.21,
			Price:       540000,
			TokenPrice:  550,
			TotalTokens: 1000,
		},
		{
			ID:          uuid.NewString(),
			Name:        "48 Harbor View",
			Address:     "48 Harbor View Ave",
			City:        "Miami",
			State:       "FL",
			ZipCode:     "33101",
			Bedrooms:    4,
			Bathrooms:   3,
			SquareFeet:  2600,
			LotSize:     0.35,
			Price:       910000,
			TokenPrice:  910,
			TotalTokens: 1000,
		},
	}
	err = r.db.Seed(ctx, &properties)
	if err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}

	return nil
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id string) (Property, error) {
	var property Property

	err := r.db.GetOneBy(ctx, "id", id, &property)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Property{}, ErrPropertyNotFound
		}
		return Property{}, fmt.Errorf("get property by id: %w", err)
	}

	return property, nil
}

func (r *PropertyRepository) GetPropertyByTokenAddress(ctx context.Context, tokenAddress string) (Property, error) {
	var property Property

	err := r.db.GetOneBy(ctx, "token_address", tokenAddress, &property)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Property{}, ErrPropertyNotFound
		}
		return Property{}, fmt.Errorf("get property by token address: %w", err)
	}

	return property, nil
}

func (r *PropertyRepository) SetPropertyTokenAddress(ctx context.Context, id, tokenAddress string) error {
	err := r.db.UpdateBy(ctx, &Property{}, "id", id, map[string]any{
		"token_address": tokenAddress,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("set property token address: %w", err)
	}

	return nil
}

func (r *PropertyRepository) SetPropertyEstimatedPrice(ctx context.Context, id string, price float64) error {
	err := r.db.UpdateBy(ctx, &Property{}, "id", id, map[string]any{
		"estimated_price": price,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrPropertyNotFound
		}
		return fmt.Errorf("set property estimated price: %w", err)
	}

	return nil
}

func (r *PropertyRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *PropertyRepository) GetUserByWallet(ctx context.Context, walletAddress string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "wallet_address", walletAddress, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}

	return user, nil
}

func (r *PropertyRepository) GetKycByWallet(ctx context.Context, walletAddress string) (KycRecord, error) {
	var record KycRecord

	err := r.db.GetOneBy(ctx, "wallet_address", walletAddress, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return KycRecord{}, ErrKycNotFound
		}
		return KycRecord{}, fmt.Errorf("get kyc by wallet: %w", err)
	}

	return record, nil
}

func (r *PropertyRepository) SaveKycRecord(ctx context.Context, record *KycRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	err := r.db.UpsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("save kyc record: %w", err)
	}

	return nil
}

func (r *PropertyRepository) UpdateKycStatus(ctx context.Context, walletAddress, status string, verifiedAt *time.Time) error {
	updates := map[string]any{
		"status": status,
	}
	if verifiedAt != nil {
		updates["verified_at"] = *verifiedAt
	}

	err := r.db.UpdateBy(ctx, &KycRecord{}, "wallet_address", walletAddress, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrKycNotFound
		}
		return fmt.Errorf("update kyc status: %w", err)
	}

	return nil
}
