package payload

import (
	"github.com/jellydator/validation"
)

type VerifyKycRequest struct {
	InvestorAddress string `json:"investorAddress"`
	InvestorType    int    `json:"investorType"`
	CountryCode     string `json:"countryCode"`
}

func (v VerifyKycRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.InvestorAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&v.InvestorType, validation.Required, validation.Min(1), validation.Max(4)),
		validation.Field(&v.CountryCode, validation.Required, validation.Length(2, 2)),
	)
}

type AutoVerifyRequest struct {
	WalletAddress string `json:"walletAddress"`
}

func (a AutoVerifyRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.WalletAddress, validation.Required, validation.Match(addressRegex)),
	)
}
