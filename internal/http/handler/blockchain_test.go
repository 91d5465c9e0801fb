package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"proptoken/internal/core"
	"proptoken/internal/http/handler"
	"proptoken/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	testTokenAddr    = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	testInvestorAddr = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

var _ = Describe("BlockchainHandler", func() {
	var (
		bh            *handler.BlockchainHandler
		fakeValidator *fake.RequestValidator
		fakeTokenizer *fake.TokenizationService
		fakeIssuer    *fake.IssuanceService
		fakeKyc       *fake.KycService
		fakeReader    *fake.TokenReadService
		fakeAuth      *fake.AuthService
		fakeEstimator *fake.EstimationService
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeValidator = new(fake.RequestValidator)
		fakeTokenizer = new(fake.TokenizationService)
		fakeIssuer = new(fake.IssuanceService)
		fakeKyc = new(fake.KycService)
		fakeReader = new(fake.TokenReadService)
		fakeAuth = new(fake.AuthService)
		fakeEstimator = new(fake.EstimationService)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		bh = handler.NewBlockchainHandler(
			fakeLogger,
			fakeValidator,
			fakeTokenizer,
			fakeIssuer,
			fakeKyc,
			fakeReader,
			fakeAuth,
			fakeEstimator)
	})

	Describe("HandleNetworkStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/blockchain/network/status", nil)
			fakeReader.NetworkStatusReturns(core.NetworkStatus{Connected: true, LatestBlock: 123})
		})

		It("returns the network status", func() {
			bh.HandleNetworkStatus(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var status core.NetworkStatus
			Expect(json.NewDecoder(w.Body).Decode(&status)).To(Succeed())
			Expect(status.Connected).To(BeTrue())
			Expect(status.LatestBlock).To(Equal(uint64(123)))
		})
	})

	Describe("HandleTokenize", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/blockchain/tokenize/prop-1", nil)
			req.SetPathValue("propertyId", "prop-1")
		})

		JustBeforeEach(func() {
			bh.HandleTokenize(w, req)
		})

		When("tokenization succeeds", func() {
			BeforeEach(func() {
				fakeTokenizer.TokenizeReturns(core.TokenizationResult{
					TokenAddress:    testTokenAddr,
					TransactionHash: "0xhash",
				}, nil)
			})

			It("returns the deployment result", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(testTokenAddr))

				Expect(fakeTokenizer.TokenizeCallCount()).To(Equal(1))
				_, propertyID := fakeTokenizer.TokenizeArgsForCall(0)
				Expect(propertyID).To(Equal("prop-1"))
			})
		})

		When("the property is already tokenized", func() {
			BeforeEach(func() {
				fakeTokenizer.TokenizeReturns(core.TokenizationResult{}, core.ErrAlreadyTokenized)
			})

			It("returns 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrAlreadyTokenized.Error()))
			})
		})

		When("the property does not exist", func() {
			BeforeEach(func() {
				fakeTokenizer.TokenizeReturns(core.TokenizationResult{}, core.ErrPropertyNotFound)
			})

			It("returns 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the deployment fails", func() {
			BeforeEach(func() {
				fakeTokenizer.TokenizeReturns(core.TokenizationResult{}, fakeErr)
			})

			It("returns 500 Internal Server Error with the detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleIssueTokens", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"tokenAddress":"` + testTokenAddr + `","investorAddress":"` + testInvestorAddr + `","amount":100}`)
			req = httptest.NewRequest("POST", "/blockchain/token/issue", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			bh.HandleIssueTokens(w, req)
		})

		When("issuance succeeds", func() {
			BeforeEach(func() {
				fakeIssuer.IssueReturns(core.IssueResult{TransactionHash: "0xhash", Method: "issue"}, nil)
			})

			It("passes the decoded payload to the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0xhash"))

				Expect(fakeIssuer.IssueCallCount()).To(Equal(1))
				_, tokenAddr, investorAddr, amount := fakeIssuer.IssueArgsForCall(0)
				Expect(tokenAddr).To(Equal(testTokenAddr))
				Expect(investorAddr).To(Equal(testInvestorAddr))
				Expect(amount).To(Equal(100.0))
			})
		})

		When("the payload fails validation", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"tokenAddress":"not-an-address","investorAddress":"` + testInvestorAddr + `","amount":100}`)
				req = httptest.NewRequest("POST", "/blockchain/token/issue", body)
			})

			It("returns 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeIssuer.IssueCallCount()).To(Equal(0))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("returns 400 with the decode error", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
			})
		})

		When("issuance fails", func() {
			BeforeEach(func() {
				fakeIssuer.IssueReturns(core.IssueResult{}, fakeErr)
			})

			It("returns 500 Internal Server Error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleKycStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/blockchain/kyc/"+testInvestorAddr, nil)
			req.SetPathValue("address", testInvestorAddr)
		})

		When("the lookup succeeds", func() {
			BeforeEach(func() {
				fakeKyc.StatusReturns(core.KycStatusInfo{IsVerified: true}, nil)
			})

			It("returns the combined status", func() {
				bh.HandleKycStatus(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"isVerified":true`))

				_, address := fakeKyc.StatusArgsForCall(0)
				Expect(address).To(Equal(testInvestorAddr))
			})
		})

		When("the address is invalid", func() {
			BeforeEach(func() {
				fakeKyc.StatusReturns(core.KycStatusInfo{}, core.ErrInvalidAddress)
			})

			It("returns 400 Bad Request", func() {
				bh.HandleKycStatus(w, req)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleVerifyKyc", func() {
		JustBeforeEach(func() {
			bh.HandleVerifyKyc(w, req)
		})

		When("the request is valid", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"investorAddress":"` + testInvestorAddr + `","investorType":1,"countryCode":"US"}`)
				req = httptest.NewRequest("POST", "/blockchain/kyc/verify", body)
				fakeKyc.VerifyOnChainReturns(core.VerificationResult{TransactionHash: "0xhash"}, nil)
			})

			It("verifies the investor on-chain", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeKyc.VerifyOnChainCallCount()).To(Equal(1))
				_, address, investorType, country := fakeKyc.VerifyOnChainArgsForCall(0)
				Expect(address).To(Equal(testInvestorAddr))
				Expect(investorType).To(Equal(1))
				Expect(country).To(Equal("US"))
			})
		})

		When("the investor type is out of range", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"investorAddress":"` + testInvestorAddr + `","investorType":9,"countryCode":"US"}`)
				req = httptest.NewRequest("POST", "/blockchain/kyc/verify", body)
			})

			It("rejects the payload before the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeKyc.VerifyOnChainCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleAutoVerifyKyc", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"walletAddress":"` + testInvestorAddr + `"}`)
			req = httptest.NewRequest("POST", "/blockchain/kyc/auto-verify", body)
		})

		JustBeforeEach(func() {
			bh.HandleAutoVerifyKyc(w, req)
		})

		When("auto verification succeeds", func() {
			BeforeEach(func() {
				fakeKyc.AutoVerifyByWalletReturns(core.VerificationResult{AlreadyVerified: true}, nil)
			})

			It("returns the verification result", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"alreadyVerified":true`))
			})
		})

		When("the wallet belongs to a non-investor", func() {
			BeforeEach(func() {
				fakeKyc.AutoVerifyByWalletReturns(core.VerificationResult{}, core.ErrNotInvestor)
			})

			It("returns 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("no user owns the wallet", func() {
			BeforeEach(func() {
				fakeKyc.AutoVerifyByWalletReturns(core.VerificationResult{}, core.ErrUserNotFound)
			})

			It("returns 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleTokenBalance", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/blockchain/balance/"+testTokenAddr+"/"+testInvestorAddr, nil)
			req.SetPathValue("tokenAddress", testTokenAddr)
			req.SetPathValue("userAddress", testInvestorAddr)
		})

		When("the read succeeds", func() {
			BeforeEach(func() {
				fakeReader.TokenBalanceReturns("2.5", nil)
			})

			It("returns the balance", func() {
				bh.HandleTokenBalance(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["balance"]).To(Equal("2.5"))
			})
		})

		When("an address is invalid", func() {
			BeforeEach(func() {
				fakeReader.TokenBalanceReturns("", core.ErrInvalidAddress)
			})

			It("returns 400 Bad Request", func() {
				bh.HandleTokenBalance(w, req)
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleInvestmentInfo", func() {
		BeforeEach(func() {
			fakeReader.InvestmentInfoReturns(core.InvestmentInfo{}, nil)
		})

		When("an investment amount is supplied", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/blockchain/token/"+testTokenAddr+"/investment-info?investmentAmount=1100", nil)
				req.SetPathValue("tokenAddress", testTokenAddr)
			})

			It("forwards the parsed amount", func() {
				bh.HandleInvestmentInfo(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				_, tokenAddr, amount := fakeReader.InvestmentInfoArgsForCall(0)
				Expect(tokenAddr).To(Equal(testTokenAddr))
				Expect(amount).NotTo(BeNil())
				Expect(*amount).To(Equal(1100.0))
			})
		})

		When("the amount is not a number", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/blockchain/token/"+testTokenAddr+"/investment-info?investmentAmount=lots", nil)
				req.SetPathValue("tokenAddress", testTokenAddr)
			})

			It("returns 400 without calling the service", func() {
				bh.HandleInvestmentInfo(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeReader.InvestmentInfoCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGrantIssuerRole", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"address":"` + testInvestorAddr + `"}`)
			req = httptest.NewRequest("POST", "/blockchain/token/"+testTokenAddr+"/grant-issuer-role", body)
			req.SetPathValue("tokenAddress", testTokenAddr)
			req.Header.Set("AUTH_TOKEN", "valid.token")

			fakeAuth.ValidateTokenReturns(nil)
			fakeTokenizer.GrantIssuerRoleReturns(core.IssueResult{TransactionHash: "0xhash"}, nil)
		})

		JustBeforeEach(func() {
			bh.HandleGrantIssuerRole(w, req)
		})

		When("the operator is authenticated", func() {
			It("grants the role", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0xhash"))

				Expect(fakeAuth.ValidateTokenCallCount()).To(Equal(1))
				Expect(fakeAuth.ValidateTokenArgsForCall(0)).To(Equal("valid.token"))

				Expect(fakeTokenizer.GrantIssuerRoleCallCount()).To(Equal(1))
				_, tokenAddr, account := fakeTokenizer.GrantIssuerRoleArgsForCall(0)
				Expect(tokenAddr).To(Equal(testTokenAddr))
				Expect(account).To(Equal(testInvestorAddr))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("returns 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("AUTH_TOKEN header is required"))
				Expect(fakeTokenizer.GrantIssuerRoleCallCount()).To(Equal(0))
			})
		})

		When("the auth token is invalid", func() {
			BeforeEach(func() {
				fakeAuth.ValidateTokenReturns(fakeErr)
			})

			It("returns 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeTokenizer.GrantIssuerRoleCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"operator","password":"pass"}`)
			req = httptest.NewRequest("POST", "/blockchain/authenticate", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			bh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			BeforeEach(func() {
				fakeAuth.AuthenticateReturns("signed.token", nil)
			})

			It("returns the token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("signed.token"))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeAuth.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("returns 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAuth.AuthenticateReturns("", fakeErr)
			})

			It("returns 500 and hides the detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleEstimatePrice", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/properties/prop-1/estimate", nil)
			req.SetPathValue("propertyId", "prop-1")
		})

		JustBeforeEach(func() {
			bh.HandleEstimatePrice(w, req)
		})

		When("the estimation succeeds", func() {
			BeforeEach(func() {
				fakeEstimator.EstimatePriceReturns(562000, nil)
			})

			It("returns the estimated price", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]float64
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["estimatedPrice"]).To(Equal(562000.0))

				_, propertyID := fakeEstimator.EstimatePriceArgsForCall(0)
				Expect(propertyID).To(Equal("prop-1"))
			})
		})

		When("the property does not exist", func() {
			BeforeEach(func() {
				fakeEstimator.EstimatePriceReturns(0, core.ErrPropertyNotFound)
			})

			It("returns 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
