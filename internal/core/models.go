package core

import "proptoken/internal/repository"

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type NetworkStatus struct {
	Connected   bool   `json:"connected"`
	LatestBlock uint64 `json:"latestBlock"`
}

type TokenizationResult struct {
	TokenAddress    string              `json:"tokenAddress"`
	TransactionHash string              `json:"transactionHash"`
	ExplorerURL     string              `json:"explorerUrl"`
	Property        repository.Property `json:"property"`
}

type IssueResult struct {
	TransactionHash string `json:"transactionHash"`
	ExplorerURL     string `json:"explorerUrl"`
	Method          string `json:"method,omitempty"`
	Simulated       bool   `json:"simulated,omitempty"`
}

type VerificationResult struct {
	TransactionHash string `json:"transactionHash,omitempty"`
	ExplorerURL     string `json:"explorerUrl,omitempty"`
	AlreadyVerified bool   `json:"alreadyVerified,omitempty"`
}

type KycStatusInfo struct {
	IsVerified bool                  `json:"isVerified"`
	Record     *repository.KycRecord `json:"info,omitempty"`
}

type TokenInfo struct {
	Name        string               `json:"name"`
	Symbol      string               `json:"symbol"`
	TotalSupply string               `json:"totalSupply"`
	TokenPrice  float64              `json:"tokenPrice"`
	Valuation   float64              `json:"valuation"`
	Property    *repository.Property `json:"property,omitempty"`
}

type AccessControlSummary struct {
	AdminIsIssuer bool     `json:"adminIsIssuer"`
	AdminHolders  []string `json:"adminHolders,omitempty"`
}

type InvestmentInfo struct {
	TokenInfo
	AccessControl AccessControlSummary `json:"accessControl"`
	TokenQuantity *float64             `json:"tokenQuantity,omitempty"`
}
