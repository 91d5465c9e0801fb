package core_test

import (
	"context"
	"errors"

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

var _ = Describe("RoleManager", func() {
	var (
		fakeChain  *fake.ChainGateway
		registry   *contracts.Registry
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		roles *core.RoleManager

		tokenAddr common.Address
		account   common.Address
		err       error

		fakeErr error
	)

	BeforeEach(func() {
		fakeChain = new(fake.ChainGateway)
		fakeLogger = zap.NewNop().Sugar()
		registry = newTestRegistry(testFactoryAddr)
		ctx = context.Background()

		roles = core.NewRoleManager(fakeLogger, fakeChain, registry)

		tokenAddr = common.HexToAddress(testTokenAddr)
		account = common.HexToAddress(testAdminAddr)
		fakeErr = errors.New("fake error")
	})

	Describe("EnsureIssuerRole", func() {
		JustBeforeEach(func() {
			err = roles.EnsureIssuerRole(ctx, tokenAddr, account)
		})

		When("the account already holds the role", func() {
			BeforeEach(func() {
				fakeChain.CallReturns([]any{true}, nil)
			})

			It("does nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.SendCallCount()).To(Equal(0))
			})
		})

		When("the factory holds admin on the token", func() {
			BeforeEach(func() {
				granted := false
				fakeChain.CallStub = func(_ context.Context, _ chain.Contract, method string, args ...any) ([]any, error) {
					if method != "hasRole" {
						return nil, fakeErr
					}
					role := args[0].([32]byte)
					holder := args[1].(common.Address)
					switch {
					case role == contracts.IssuerRole && holder == account:
						return []any{granted}, nil
					case role == contracts.DefaultAdminRole && holder == common.HexToAddress(testFactoryAddr):
						return []any{true}, nil
					default:
						return []any{false}, nil
					}
				}
				fakeChain.SendStub = func(_ context.Context, _ chain.Contract, method string, _ ...any) (*types.Transaction, error) {
					if method == "grantIssuerRole" {
						granted = true
						return newTestTx(), nil
					}
					return nil, fakeErr
				}
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("grants the role through the factory and verifies it", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeChain.SendCallCount()).To(Equal(1))
				_, contract, method, args := fakeChain.SendArgsForCall(0)
				Expect(contract.Address.Hex()).To(Equal(common.HexToAddress(testFactoryAddr).Hex()))
				Expect(method).To(Equal("grantIssuerRole"))
				Expect(args[0]).To(Equal(tokenAddr))
				Expect(args[1]).To(Equal(account))
			})
		})

		When("the account itself is token admin", func() {
			BeforeEach(func() {
				fakeChain.CallStub = func(_ context.Context, _ chain.Contract, method string, args ...any) ([]any, error) {
					if method != "hasRole" {
						return nil, fakeErr
					}
					role := args[0].([32]byte)
					holder := args[1].(common.Address)
					// account holds admin but not issuer; factory holds nothing
					isAdmin := role == contracts.DefaultAdminRole && holder == account
					return []any{isAdmin}, nil
				}
				fakeChain.SendStub = func(_ context.Context, target chain.Contract, method string, _ ...any) (*types.Transaction, error) {
					if method == "grantRole" && target.Address == tokenAddr {
						return newTestTx(), nil
					}
					return nil, fakeErr
				}
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("grants the role directly on the token", func() {
				Expect(err).NotTo(HaveOccurred())

				sent := false
				for i := 0; i < fakeChain.SendCallCount(); i++ {
					_, target, method, _ := fakeChain.SendArgsForCall(i)
					if method == "grantRole" && target.Address == tokenAddr {
						sent = true
					}
				}
				Expect(sent).To(BeTrue())
			})
		})

		When("no grant path works", func() {
			BeforeEach(func() {
				fakeChain.CallStub = func(_ context.Context, _ chain.Contract, method string, _ ...any) ([]any, error) {
					if method == "hasRole" {
						return []any{false}, nil
					}
					return nil, fakeErr
				}
				fakeChain.SendReturns(nil, chain.ErrSignerNotConfigured)
			})

			It("returns the no-grant-path error", func() {
				Expect(err).To(MatchError(core.ErrNoGrantPath))
			})
		})
	})
})
