package payload

import (
	"github.com/jellydator/validation"
)

type IssueTokensRequest struct {
	TokenAddress    string  `json:"tokenAddress"`
	InvestorAddress string  `json:"investorAddress"`
	Amount          float64 `json:"amount"`
}

func (i IssueTokensRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.TokenAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&i.InvestorAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&i.Amount, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

type GrantRoleRequest struct {
	Address string `json:"address"`
}

func (g GrantRoleRequest) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Address, validation.Required, validation.Match(addressRegex)),
	)
}
