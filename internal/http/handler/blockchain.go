package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"proptoken/internal/core"
	"proptoken/internal/http/handler/middleware"
	"proptoken/internal/http/payload"

	"go.uber.org/zap"
)

var (
	NetworkStatus   = "GET /blockchain/network/status"
	KycStatus       = "GET /blockchain/kyc/{address}"
	VerifyKyc       = "POST /blockchain/kyc/verify"
	AutoVerifyKyc   = "POST /blockchain/kyc/auto-verify"
	TokenInfo       = "GET /blockchain/token/{tokenAddress}/info"
	InvestmentInfo  = "GET /blockchain/token/{tokenAddress}/investment-info"
	TokenBalance    = "GET /blockchain/balance/{tokenAddress}/{userAddress}"
	PendingDividend = "GET /blockchain/dividend/{tokenAddress}/{investorAddress}"
	Tokenize        = "POST /blockchain/tokenize/{propertyId}"
	IssueTokens     = "POST /blockchain/token/issue"
	GrantIssuerRole = "POST /blockchain/token/{tokenAddress}/grant-issuer-role"
	Authenticate    = "POST /blockchain/authenticate"
	EstimatePrice   = "POST /properties/{propertyId}/estimate"
)

type BlockchainHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tokenizer        TokenizationService
	issuer           IssuanceService
	kyc              KycService
	reader           TokenReadService
	auth             AuthService
	estimator        EstimationService
}

func NewBlockchainHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	tokenizer TokenizationService,
	issuer IssuanceService,
	kyc KycService,
	reader TokenReadService,
	auth AuthService,
	estimator EstimationService,
) *BlockchainHandler {
	return &BlockchainHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tokenizer:        tokenizer,
		issuer:           issuer,
		kyc:              kyc,
		reader:           reader,
		auth:             auth,
		estimator:        estimator,
	}
}

func (h *BlockchainHandler) HandleNetworkStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	status := h.reader.NetworkStatus(r.Context())
	h.respond(w, status, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleKycStatus(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	address := r.PathValue("address")

	info, err := h.kyc.Status(r.Context(), address)
	if err != nil {
		h.respondError(w, r, "Could not check KYC status", err, KycStatus, requestId)
		return
	}

	h.respond(w, info, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleVerifyKyc(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.VerifyKycRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not verify investor",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", VerifyKyc,
			"request_id", requestId)
		return
	}

	result, err := h.kyc.VerifyOnChain(r.Context(), req.InvestorAddress, req.InvestorType, req.CountryCode)
	if err != nil {
		h.respondError(w, r, "Could not verify investor", err, VerifyKyc, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleAutoVerifyKyc(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AutoVerifyRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not verify investor",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AutoVerifyKyc,
			"request_id", requestId)
		return
	}

	result, err := h.kyc.AutoVerifyByWallet(r.Context(), req.WalletAddress)
	if err != nil {
		h.respondError(w, r, "Could not verify investor", err, AutoVerifyKyc, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleTokenInfo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	tokenAddress := r.PathValue("tokenAddress")

	info, err := h.reader.TokenInfo(r.Context(), tokenAddress)
	if err != nil {
		h.respondError(w, r, "Could not retrieve token info", err, TokenInfo, requestId)
		return
	}

	h.respond(w, info, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleInvestmentInfo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	tokenAddress := r.PathValue("tokenAddress")

	var investmentAmount *float64
	if raw := r.URL.Query().Get("investmentAmount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.respond(w, Response{
				Message: "Could not retrieve investment info",
				Error:   fmt.Errorf("parse investmentAmount: %w", err).Error(),
			}, http.StatusBadRequest, requestId)
			h.logs.Errorw("failed to parse investmentAmount query parameter",
				"error", err,
				"handler", InvestmentInfo,
				"request_id", requestId)
			return
		}
		investmentAmount = &amount
	}

	info, err := h.reader.InvestmentInfo(r.Context(), tokenAddress, investmentAmount)
	if err != nil {
		h.respondError(w, r, "Could not retrieve investment info", err, InvestmentInfo, requestId)
		return
	}

	h.respond(w, info, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleTokenBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	balance, err := h.reader.TokenBalance(r.Context(), r.PathValue("tokenAddress"), r.PathValue("userAddress"))
	if err != nil {
		h.respondError(w, r, "Could not retrieve balance", err, TokenBalance, requestId)
		return
	}

	h.respond(w, map[string]string{"balance": balance}, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandlePendingDividend(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pending, err := h.reader.PendingDividend(r.Context(), r.PathValue("tokenAddress"), r.PathValue("investorAddress"))
	if err != nil {
		h.respondError(w, r, "Could not retrieve pending dividend", err, PendingDividend, requestId)
		return
	}

	h.respond(w, map[string]string{"pendingDividend": pending}, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleTokenize(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	propertyId := r.PathValue("propertyId")

	h.logs.Infow("tokenization request received",
		"property_id", propertyId,
		"handler", Tokenize,
		"request_id", requestId)

	result, err := h.tokenizer.Tokenize(r.Context(), propertyId)
	if err != nil {
		h.respondError(w, r, "Could not tokenize property", err, Tokenize, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleIssueTokens(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.IssueTokensRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not issue tokens",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", IssueTokens,
			"request_id", requestId)
		return
	}

	result, err := h.issuer.Issue(r.Context(), req.TokenAddress, req.InvestorAddress, req.Amount)
	if err != nil {
		h.respondError(w, r, "Could not issue tokens", err, IssueTokens, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleGrantIssuerRole(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GrantIssuerRole, "request_id", requestId)
		return
	}
	if err := h.auth.ValidateToken(authToken); err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("invalid AUTH_TOKEN", "error", err, "handler", GrantIssuerRole, "request_id", requestId)
		return
	}

	var req payload.GrantRoleRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not grant issuer role",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", GrantIssuerRole,
			"request_id", requestId)
		return
	}

	result, err := h.tokenizer.GrantIssuerRole(r.Context(), r.PathValue("tokenAddress"), req.Address)
	if err != nil {
		h.respondError(w, r, "Could not grant issuer role", err, GrantIssuerRole, requestId)
		return
	}

	h.respond(w, map[string]string{"transactionHash": result.TransactionHash}, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrOperatorNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *BlockchainHandler) HandleEstimatePrice(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	propertyId := r.PathValue("propertyId")

	price, err := h.estimator.EstimatePrice(r.Context(), propertyId)
	if err != nil {
		h.respondError(w, r, "Could not estimate price", err, EstimatePrice, requestId)
		return
	}

	h.respond(w, map[string]float64{"estimatedPrice": price}, http.StatusOK, requestId)
}

// respondError maps core errors onto HTTP codes. Error detail is surfaced
// verbatim so operators can read through to RPC-level failures.
func (h *BlockchainHandler) respondError(w http.ResponseWriter, r *http.Request, message string, err error, handlerName, requestId string) {
	httpCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrPropertyNotFound), errors.Is(err, core.ErrUserNotFound):
		httpCode = http.StatusNotFound
	case errors.Is(err, core.ErrAlreadyTokenized),
		errors.Is(err, core.ErrNoEstimatedPrice),
		errors.Is(err, core.ErrTokenizationDisabled),
		errors.Is(err, core.ErrInvalidAddress),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidInvestorType),
		errors.Is(err, core.ErrInvalidCountryCode),
		errors.Is(err, core.ErrNotInvestor):
		httpCode = http.StatusBadRequest
	}

	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, httpCode, requestId)

	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *BlockchainHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if val := r.Context().Value(middleware.RequestIDKey); val != nil {
		return val.(string)
	}
	return ""
}
