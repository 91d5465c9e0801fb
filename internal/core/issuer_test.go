package core_test

import (
	"context"
	"errors"
	"math/big"

	"proptoken/internal/chain"
	"proptoken/internal/contracts"
	"proptoken/internal/core"
	"proptoken/internal/core/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Issuer", func() {
	var (
		fakeChain  *fake.ChainGateway
		registry   *contracts.Registry
		roles      *core.RoleManager
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		issuer   *core.Issuer
		simulate bool

		tokenAddr    string
		investorAddr string
		amount       float64
		result       core.IssueResult
		err          error

		fakeErr error
	)

	successReceipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

	BeforeEach(func() {
		fakeChain = new(fake.ChainGateway)
		fakeLogger = zap.NewNop().Sugar()
		registry = newTestRegistry(testFactoryAddr)
		roles = core.NewRoleManager(fakeLogger, fakeChain, registry)
		ctx = context.Background()
		simulate = false

		tokenAddr = testTokenAddr
		investorAddr = testAdminAddr
		amount = 100

		fakeErr = errors.New("fake error")

		// token reports 18 decimals unless a test overrides
		fakeChain.CallReturns([]any{uint8(18)}, nil)
	})

	JustBeforeEach(func() {
		issuer = core.NewIssuer(fakeLogger, fakeChain, registry, roles, testExplorerURL, simulate)
		result, err = issuer.Issue(ctx, tokenAddr, investorAddr, amount)
	})

	When("token address is invalid", func() {
		BeforeEach(func() {
			tokenAddr = "0x123"
		})

		It("rejects before any network traffic", func() {
			Expect(err).To(MatchError(core.ErrInvalidAddress))
			Expect(fakeChain.CallCallCount()).To(Equal(0))
			Expect(fakeChain.SendCallCount()).To(Equal(0))
		})
	})

	When("amount is not positive", func() {
		BeforeEach(func() {
			amount = 0
		})

		It("rejects before any network traffic", func() {
			Expect(err).To(MatchError(core.ErrInvalidAmount))
			Expect(fakeChain.SendCallCount()).To(Equal(0))
		})
	})

	When("the first entrypoint succeeds", func() {
		var tx *types.Transaction

		BeforeEach(func() {
			tx = newTestTx()
			fakeChain.SendReturns(tx, nil)
			fakeChain.WaitMinedReturns(successReceipt, nil)
		})

		It("issues via buyTokensFor and converts the amount to base units", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Method).To(Equal("buyTokensFor"))
			Expect(result.Simulated).To(BeFalse())
			Expect(result.TransactionHash).To(Equal(tx.Hash().Hex()))

			Expect(fakeChain.SendCallCount()).To(Equal(1))
			_, contract, method, args := fakeChain.SendArgsForCall(0)
			Expect(contract.Address.Hex()).To(Equal(common.HexToAddress(testTokenAddr).Hex()))
			Expect(method).To(Equal("buyTokensFor"))
			Expect(args[0]).To(Equal(common.HexToAddress(testAdminAddr)))

			units, _ := new(big.Int).SetString("100000000000000000000", 10) // 100 * 10^18
			Expect(args[1]).To(Equal(units))
		})
	})

	When("paid entrypoints demand payment", func() {
		BeforeEach(func() {
			fakeChain.SendStub = func(_ context.Context, _ chain.Contract, method string, _ ...any) (*types.Transaction, error) {
				switch method {
				case "buyTokensFor", "purchaseTokens":
					return nil, errors.New("execution reverted: insufficient payment")
				default:
					return newTestTx(), nil
				}
			}
			fakeChain.WaitMinedReturns(successReceipt, nil)
		})

		It("skips them and falls through to mint", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Method).To(Equal("mint"))
			Expect(fakeChain.SendCallCount()).To(Equal(3))
		})
	})

	When("issue is blocked by access control", func() {
		var issueAttempts int

		BeforeEach(func() {
			issueAttempts = 0
			fakeChain.SendStub = func(_ context.Context, _ chain.Contract, method string, _ ...any) (*types.Transaction, error) {
				if method == "issue" {
					issueAttempts++
					if issueAttempts == 1 {
						return nil, errors.New("execution reverted: account is missing role")
					}
					return newTestTx(), nil
				}
				return nil, fakeErr
			}
			fakeChain.WaitMinedReturns(successReceipt, nil)
			// role check reports the role as held after the inline grant path
			fakeChain.CallStub = func(_ context.Context, _ chain.Contract, method string, _ ...any) ([]any, error) {
				switch method {
				case "decimals":
					return []any{uint8(18)}, nil
				case "hasRole":
					return []any{true}, nil
				default:
					return nil, fakeErr
				}
			}
		})

		It("grants the role inline and retries issue once", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Method).To(Equal("issue"))
			Expect(issueAttempts).To(Equal(2))
		})
	})

	When("every entrypoint fails", func() {
		BeforeEach(func() {
			fakeChain.SendReturns(nil, fakeErr)
			fakeChain.CallStub = func(_ context.Context, _ chain.Contract, method string, _ ...any) ([]any, error) {
				if method == "decimals" {
					return []any{uint8(18)}, nil
				}
				return nil, fakeErr
			}
		})

		It("returns the last error", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(err).To(MatchError(ContainSubstring("all issuance entrypoints failed")))
			Expect(result).To(Equal(core.IssueResult{}))
		})

		When("the simulated fallback is enabled", func() {
			BeforeEach(func() {
				simulate = true
			})

			It("returns a clearly flagged simulated hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Simulated).To(BeTrue())
				Expect(result.TransactionHash).To(HaveLen(66))
				Expect(result.TransactionHash).To(HavePrefix("0x"))
			})
		})
	})

	When("an entrypoint transaction reverts after submission", func() {
		BeforeEach(func() {
			fakeChain.SendReturns(newTestTx(), nil)
			fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			fakeChain.CallStub = func(_ context.Context, _ chain.Contract, method string, _ ...any) ([]any, error) {
				if method == "decimals" {
					return []any{uint8(18)}, nil
				}
				return nil, fakeErr
			}
		})

		It("keeps trying the remaining entrypoints and fails", func() {
			Expect(err).To(MatchError(ContainSubstring("reverted")))
			Expect(fakeChain.SendCallCount()).To(BeNumerically(">", 1))
		})
	})

	When("decimals cannot be read", func() {
		var tx *types.Transaction

		BeforeEach(func() {
			tx = newTestTx()
			fakeChain.CallReturns(nil, fakeErr)
			fakeChain.SendReturns(tx, nil)
			fakeChain.WaitMinedReturns(successReceipt, nil)
			amount = 1
		})

		It("falls back to 18 decimals", func() {
			Expect(err).NotTo(HaveOccurred())
			_, _, _, args := fakeChain.SendArgsForCall(0)
			units, _ := new(big.Int).SetString("1000000000000000000", 10)
			Expect(args[1]).To(Equal(units))
		})
	})
})
