package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"proptoken/internal/chain"
	"proptoken/internal/config"
	"proptoken/internal/contracts"
	"proptoken/internal/core"
	"proptoken/internal/db"
	"proptoken/internal/http/handler"
	"proptoken/internal/http/handler/middleware"
	"proptoken/internal/http/payload"
	"proptoken/internal/http/server"
	"proptoken/internal/mlapi"
	"proptoken/internal/repository"
	"proptoken/pkg/jwt"
	"proptoken/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("proptoken", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewPropertyRepository(dbConn)

	err = repo.MigrateAndSeed(context.Background())
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		logger.Errorw("rpc connection failed", "error", err)
		return err
	}

	chainClient, err := chain.NewClient(logger, client, config.AdminPrivateKey)
	if err != nil {
		logger.Errorw("failed to create chain client", "error", err)
		return err
	}
	if chainClient.ReadOnly() {
		logger.Warnw("admin private key not configured, chain writes disabled")
	}

	registry, err := contracts.NewRegistry(logger, config.FactoryAddress, config.KycAddress, config.DividendAddress)
	if err != nil {
		logger.Errorw("failed to create contract registry", "error", err)
		return err
	}

	// core services
	roles := core.NewRoleManager(logger, chainClient, registry)
	tokenizer := core.NewTokenizer(logger, repo, chainClient, registry, roles, config.ExplorerURL)
	issuer := core.NewIssuer(logger, chainClient, registry, roles, config.ExplorerURL, config.SimulateIssuance)
	if config.SimulateIssuance {
		logger.Warnw("simulated issuance fallback enabled, do not use in production")
	}
	kycBridge := core.NewKycBridge(logger, repo, chainClient, registry, config.ExplorerURL, config.InvestorTypeBase)
	reader := core.NewReader(logger, repo, chainClient, registry)
	auth := core.NewAuth(logger, repo, jwtService)
	estimator := core.NewEstimator(logger, repo, mlapi.NewClient(logger, config.MLAPIURL))

	// handler
	blockchainHlr := handler.NewBlockchainHandler(
		logger,
		payload.Decoder{},
		tokenizer,
		issuer,
		kycBridge,
		reader,
		auth,
		estimator)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.NetworkStatus, blockchainHlr.HandleNetworkStatus)
	mux.HandleFunc(handler.KycStatus, blockchainHlr.HandleKycStatus)
	mux.HandleFunc(handler.VerifyKyc, blockchainHlr.HandleVerifyKyc)
	mux.HandleFunc(handler.AutoVerifyKyc, blockchainHlr.HandleAutoVerifyKyc)
	mux.HandleFunc(handler.TokenInfo, blockchainHlr.HandleTokenInfo)
	mux.HandleFunc(handler.InvestmentInfo, blockchainHlr.HandleInvestmentInfo)
	mux.HandleFunc(handler.TokenBalance, blockchainHlr.HandleTokenBalance)
	mux.HandleFunc(handler.PendingDividend, blockchainHlr.HandlePendingDividend)
	mux.HandleFunc(handler.Tokenize, blockchainHlr.HandleTokenize)
	mux.HandleFunc(handler.IssueTokens, blockchainHlr.HandleIssueTokens)
	mux.HandleFunc(handler.GrantIssuerRole, blockchainHlr.HandleGrantIssuerRole)
	mux.HandleFunc(handler.Authenticate, blockchainHlr.HandleAuthenticate)
	mux.HandleFunc(handler.EstimatePrice, blockchainHlr.HandleEstimatePrice)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
