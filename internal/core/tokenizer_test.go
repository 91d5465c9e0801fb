package core_test

import (
	"context"
	"errors"
	"math/big"

	"proptoken/internal/contracts"
	"proptoken/internal/core"
	"proptoken/internal/core/fake"
	"proptoken/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	testFactoryAddr  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	testKycAddr      = "0x8aCd85898458400f7Db866d53FCFF6f0D49741FF"
	testDividendAddr = "0xa513E6E4b8f2a923D98304ec87F64353C4D5C853"
	testTokenAddr    = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	testAdminAddr    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testExplorerURL  = "https://sepolia.etherscan.io"
)

func newTestRegistry(factoryAddr string) *contracts.Registry {
	registry, err := contracts.NewRegistry(zap.NewNop().Sugar(), factoryAddr, testKycAddr, testDividendAddr)
	Expect(err).NotTo(HaveOccurred())
	return registry
}

func newTestTx() *types.Transaction {
	return types.NewTransaction(1, common.HexToAddress(testFactoryAddr), big.NewInt(0), 21000, big.NewInt(1), nil)
}

var _ = Describe("Tokenizer", func() {
	var (
		fakeRepo   *fake.Repository
		fakeChain  *fake.ChainGateway
		registry   *contracts.Registry
		roles      *core.RoleManager
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		tokenizer *core.Tokenizer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeChain = new(fake.ChainGateway)
		fakeLogger = zap.NewNop().Sugar()
		registry = newTestRegistry(testFactoryAddr)
		roles = core.NewRoleManager(fakeLogger, fakeChain, registry)
		ctx = context.Background()

		tokenizer = core.NewTokenizer(fakeLogger, fakeRepo, fakeChain, registry, roles, testExplorerURL)

		fakeErr = errors.New("fake error")
	})

	Describe("Tokenize", func() {
		var (
			property   repository.Property
			propertyID string
			result     core.TokenizationResult
			err        error
			estimated  float64
		)

		BeforeEach(func() {
			propertyID = "prop-1"
			estimated = 350000
			property = repository.Property{
				ID:             propertyID,
				Name:           "123 Main St",
				EstimatedPrice: &estimated,
				TotalTokens:    1000,
			}
			fakeRepo.GetPropertyByIDReturns(property, nil)
			fakeChain.SenderReturns(common.HexToAddress(testAdminAddr))
		})

		JustBeforeEach(func() {
			result, err = tokenizer.Tokenize(ctx, propertyID)
		})

		When("deployment succeeds", func() {
			var tx *types.Transaction

			BeforeEach(func() {
				tx = newTestTx()
				fakeChain.SendReturns(tx, nil)
				fakeChain.WaitMinedReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
					Logs: []*types.Log{
						{
							Topics: []common.Hash{
								registry.TokenCreatedTopic(),
								common.HexToAddress(testTokenAddr).Hash(),
							},
						},
					},
				}, nil)
				fakeRepo.SetPropertyTokenAddressReturns(nil)
				// account already holds ISSUER_ROLE, role acquisition is a no-op
				fakeChain.CallReturns([]any{true}, nil)
			})

			It("deploys via the factory and persists the token address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.TokenAddress).To(Equal(common.HexToAddress(testTokenAddr).Hex()))
				Expect(result.TransactionHash).To(Equal(tx.Hash().Hex()))
				Expect(result.ExplorerURL).To(Equal(testExplorerURL + "/tx/" + tx.Hash().Hex()))
				Expect(result.Property.TokenAddress).To(Equal(common.HexToAddress(testTokenAddr).Hex()))

				Expect(fakeChain.SendCallCount()).To(Equal(1))
				_, contract, method, args := fakeChain.SendArgsForCall(0)
				Expect(contract.Address.Hex()).To(Equal(common.HexToAddress(testFactoryAddr).Hex()))
				Expect(method).To(Equal("createPropertyToken"))
				Expect(args[0]).To(Equal("123 Main St Token"))
				Expect(args[2]).To(Equal(big.NewInt(350_000_000_000))) // 350000 USD in 6-decimal fixed point
				Expect(args[3]).To(Equal(big.NewInt(1000)))

				Expect(fakeRepo.SetPropertyTokenAddressCallCount()).To(Equal(1))
				_, argID, argAddr := fakeRepo.SetPropertyTokenAddressArgsForCall(0)
				Expect(argID).To(Equal(propertyID))
				Expect(argAddr).To(Equal(common.HexToAddress(testTokenAddr).Hex()))
			})

			When("role acquisition fails", func() {
				BeforeEach(func() {
					// no path works: role checks fail, sends fail
					fakeChain.CallReturns(nil, fakeErr)
					fakeChain.SendReturnsOnCall(1, nil, fakeErr)
					fakeChain.SendReturnsOnCall(2, nil, fakeErr)
				})

				It("still reports success, role grant is best-effort", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(result.TokenAddress).To(Equal(common.HexToAddress(testTokenAddr).Hex()))
				})
			})
		})

		When("property is already tokenized", func() {
			BeforeEach(func() {
				property.TokenAddress = testTokenAddr
				fakeRepo.GetPropertyByIDReturns(property, nil)
			})

			It("rejects before touching the chain", func() {
				Expect(err).To(MatchError(core.ErrAlreadyTokenized))
				Expect(fakeChain.SendCallCount()).To(Equal(0))
				Expect(fakeChain.CallCallCount()).To(Equal(0))
			})
		})

		When("property has no estimated price", func() {
			BeforeEach(func() {
				property.EstimatedPrice = nil
				fakeRepo.GetPropertyByIDReturns(property, nil)
			})

			It("rejects before touching the chain", func() {
				Expect(err).To(MatchError(core.ErrNoEstimatedPrice))
				Expect(fakeChain.SendCallCount()).To(Equal(0))
			})
		})

		When("property does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetPropertyByIDReturns(repository.Property{}, repository.ErrPropertyNotFound)
			})

			It("returns property not found error", func() {
				Expect(err).To(MatchError(core.ErrPropertyNotFound))
			})
		})

		When("factory address is not configured", func() {
			BeforeEach(func() {
				registry = newTestRegistry("")
				roles = core.NewRoleManager(fakeLogger, fakeChain, registry)
				tokenizer = core.NewTokenizer(fakeLogger, fakeRepo, fakeChain, registry, roles, testExplorerURL)
			})

			It("returns tokenization disabled error", func() {
				Expect(err).To(MatchError(core.ErrTokenizationDisabled))
				Expect(fakeChain.SendCallCount()).To(Equal(0))
			})
		})

		When("deployment transaction reverts", func() {
			BeforeEach(func() {
				fakeChain.SendReturns(newTestTx(), nil)
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("returns a revert error without persisting anything", func() {
				Expect(err).To(MatchError(ContainSubstring("reverted")))
				Expect(fakeRepo.SetPropertyTokenAddressCallCount()).To(Equal(0))
			})
		})

		When("receipt carries no token creation event", func() {
			BeforeEach(func() {
				fakeChain.SendReturns(newTestTx(), nil)
				fakeChain.WaitMinedReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
					Logs:   []*types.Log{},
				}, nil)
			})

			It("fails hard instead of guessing the address", func() {
				Expect(err).To(MatchError(core.ErrDeployEventMissing))
				Expect(fakeRepo.SetPropertyTokenAddressCallCount()).To(Equal(0))
			})
		})

		When("persisting the token address fails", func() {
			BeforeEach(func() {
				fakeChain.SendReturns(newTestTx(), nil)
				fakeChain.WaitMinedReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
					Logs: []*types.Log{
						{
							Topics: []common.Hash{
								registry.TokenCreatedTopic(),
								common.HexToAddress(testTokenAddr).Hash(),
							},
						},
					},
				}, nil)
				fakeRepo.SetPropertyTokenAddressReturns(fakeErr)
			})

			It("flags the chain/database divergence for the operator", func() {
				Expect(err).To(MatchError(ContainSubstring("operator must reconcile")))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GrantIssuerRole", func() {
		var (
			result core.IssueResult
			err    error
			token  string
			acct   string
		)

		BeforeEach(func() {
			token = testTokenAddr
			acct = testAdminAddr
		})

		JustBeforeEach(func() {
			result, err = tokenizer.GrantIssuerRole(ctx, token, acct)
		})

		When("addresses are invalid", func() {
			BeforeEach(func() {
				token = "not-an-address"
			})

			It("rejects without sending anything", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeChain.SendCallCount()).To(Equal(0))
			})
		})

		When("grant succeeds", func() {
			var tx *types.Transaction

			BeforeEach(func() {
				tx = newTestTx()
				fakeChain.SendReturns(tx, nil)
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("returns the grant transaction hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.TransactionHash).To(Equal(tx.Hash().Hex()))

				Expect(fakeChain.SendCallCount()).To(Equal(1))
				_, contract, method, args := fakeChain.SendArgsForCall(0)
				Expect(contract.Address.Hex()).To(Equal(common.HexToAddress(testTokenAddr).Hex()))
				Expect(method).To(Equal("grantRole"))
				Expect(args[0]).To(Equal(contracts.IssuerRole))
				Expect(args[1]).To(Equal(common.HexToAddress(testAdminAddr)))
			})
		})

		When("grant transaction reverts", func() {
			BeforeEach(func() {
				fakeChain.SendReturns(newTestTx(), nil)
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("returns a revert error", func() {
				Expect(err).To(MatchError(ContainSubstring("reverted")))
			})
		})
	})
})
