package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey          = "API_PORT"
	rpcURLEnvKey           = "RPC_URL"
	dbConnEnvKey           = "DB_CONNECTION_URL"
	jwtSecretEnvKey        = "JWT_SECRET"
	adminKeyEnvKey         = "ADMIN_PRIVATE_KEY"
	factoryAddrEnvKey      = "TOKEN_FACTORY_ADDRESS"
	kycAddrEnvKey          = "KYC_CONTRACT_ADDRESS"
	dividendAddrEnvKey     = "DIVIDEND_CONTRACT_ADDRESS"
	explorerURLEnvKey      = "EXPLORER_URL"
	mlAPIURLEnvKey         = "ML_API_URL"
	simulateIssuanceEnvKey = "SIMULATE_ISSUANCE_FALLBACK"
	investorTypeBaseEnvKey = "KYC_INVESTOR_TYPE_BASE"

	defaultKycAddr      = "0x8aCd85898458400f7Db866d53FCFF6f0D49741FF"
	defaultDividendAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	defaultExplorerURL  = "https://sepolia.etherscan.io"
	defaultMLAPIURL     = "http://localhost:8000"
)

type App struct {
	Port            string
	RPCURL          string
	DBConnectionURL string
	JWTSecret       string

	// AdminPrivateKey is optional; when empty the service runs in
	// read-only mode and every chain write fails fast.
	AdminPrivateKey string

	// FactoryAddress is optional; when empty tokenization is disabled.
	FactoryAddress string

	KycAddress       string
	DividendAddress  string
	ExplorerURL      string
	MLAPIURL         string
	SimulateIssuance bool
	InvestorTypeBase int
}

func NewApp() (App, error) {
	// best effort, env vars may come from the environment directly
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	rpcURL, ok := os.LookupEnv(rpcURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, rpcURLEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	base := 1
	if baseStr, ok := os.LookupEnv(investorTypeBaseEnvKey); ok {
		parsed, err := strconv.Atoi(baseStr)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", investorTypeBaseEnvKey, err)
		}
		base = parsed
	}

	return App{
		Port:             port,
		RPCURL:           rpcURL,
		DBConnectionURL:  dbConn,
		JWTSecret:        jwtSecret,
		AdminPrivateKey:  os.Getenv(adminKeyEnvKey),
		FactoryAddress:   os.Getenv(factoryAddrEnvKey),
		KycAddress:       envOrDefault(kycAddrEnvKey, defaultKycAddr),
		DividendAddress:  envOrDefault(dividendAddrEnvKey, defaultDividendAddr),
		ExplorerURL:      envOrDefault(explorerURLEnvKey, defaultExplorerURL),
		MLAPIURL:         envOrDefault(mlAPIURLEnvKey, defaultMLAPIURL),
		SimulateIssuance: os.Getenv(simulateIssuanceEnvKey) == "true",
		InvestorTypeBase: base,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
