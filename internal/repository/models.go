package repository

import "time"

const (
	KycStatusPending      = "PENDING"
	KycStatusVerified     = "VERIFIED"
	KycStatusRejected     = "REJECTED"
	KycStatusNotSubmitted = "NOT_SUBMITTED"
)

const (
	InvestorTypeRetail        = 1
	InvestorTypeAccredited    = 2
	InvestorTypeInstitutional = 3
	InvestorTypeQualified     = 4
)

const RoleInvestor = "investor"

type Property struct {
	ID      string `gorm:"primaryKey;autoIncrement:false"`
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(50)"`
	ZipCode string `gorm:"size:10;index"`

	Bedrooms   int     `gorm:"not null;default:0"`
	Bathrooms  float64 `gorm:"not null;default:0"`
	SquareFeet float64 `gorm:"not null;default:0"`
	LotSize    float64 `gorm:"not null;default:0"` // acres

	Price          float64  `gorm:"not null;default:0"`
	Valuation      float64  `gorm:"not null;default:0"`
	EstimatedPrice *float64 // set by the ML forecast, precondition for tokenization
	TokenPrice     float64  `gorm:"not null;default:0"`
	TotalTokens    int64    `gorm:"not null;default:1000"`
	TokensSold     int64    `gorm:"not null;default:0"`

	// TokenAddress is empty until the token is deployed and is written
	// at most once per property.
	TokenAddress string `gorm:"size:42;index;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	ID            string `gorm:"primaryKey;autoIncrement:false"`
	Username      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	WalletAddress string `gorm:"size:42;index"`
	Role          string `gorm:"type:varchar(32);not null;default:'investor'"`
}

type KycRecord struct {
	ID              string `gorm:"primaryKey;autoIncrement:false"`
	UserID          string `gorm:"index"`
	WalletAddress   string `gorm:"size:42;uniqueIndex;not null"`
	Status          string `gorm:"type:varchar(16);not null;default:'PENDING'"`
	InvestorType    int    `gorm:"not null;default:1"`
	CountryCode     string `gorm:"size:2;not null;default:'US'"`
	VerifiedAt      *time.Time
	ExpiresAt       *time.Time
	InvestmentLimit int64 `gorm:"not null;default:0"` // USD
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
