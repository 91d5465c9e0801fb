package core_test

import (
	"context"
	"errors"
	"math/big"
	"time"

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

var _ = Describe("KycBridge", func() {
	var (
		fakeRepo   *fake.Repository
		fakeChain  *fake.ChainGateway
		registry   *contracts.Registry
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		bridge *core.KycBridge

		investorAddr string
		fakeErr      error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeChain = new(fake.ChainGateway)
		fakeLogger = zap.NewNop().Sugar()
		registry = newTestRegistry(testFactoryAddr)
		ctx = context.Background()

		bridge = core.NewKycBridge(fakeLogger, fakeRepo, fakeChain, registry, testExplorerURL, repository.InvestorTypeRetail)

		investorAddr = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
		fakeErr = errors.New("fake error")
	})

	Describe("CheckOnChain", func() {
		When("the registry reports the investor verified", func() {
			BeforeEach(func() {
				fakeChain.CallReturns([]any{true}, nil)
			})

			It("returns true and queries the kyc contract", func() {
				Expect(bridge.CheckOnChain(ctx, investorAddr)).To(BeTrue())

				Expect(fakeChain.CallCallCount()).To(Equal(1))
				_, contract, method, args := fakeChain.CallArgsForCall(0)
				Expect(contract.Address.Hex()).To(Equal(common.HexToAddress(testKycAddr).Hex()))
				Expect(method).To(Equal("isVerified"))
				Expect(args[0]).To(Equal(common.HexToAddress(investorAddr)))
			})
		})

		When("the chain read fails", func() {
			BeforeEach(func() {
				fakeChain.CallReturns(nil, fakeErr)
			})

			It("maps the failure to not verified", func() {
				Expect(bridge.CheckOnChain(ctx, investorAddr)).To(BeFalse())
			})
		})

		When("the address is malformed", func() {
			It("returns false without a chain call", func() {
				Expect(bridge.CheckOnChain(ctx, "garbage")).To(BeFalse())
				Expect(fakeChain.CallCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Status", func() {
		var (
			info core.KycStatusInfo
			err  error
		)

		JustBeforeEach(func() {
			info, err = bridge.Status(ctx, investorAddr)
		})

		When("a record exists off-chain", func() {
			BeforeEach(func() {
				fakeChain.CallReturns([]any{true}, nil)
				fakeRepo.GetKycByWalletReturns(repository.KycRecord{
					WalletAddress: investorAddr,
					Status:        repository.KycStatusVerified,
				}, nil)
			})

			It("combines the on-chain flag with the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.IsVerified).To(BeTrue())
				Expect(info.Record).NotTo(BeNil())
				Expect(info.Record.Status).To(Equal(repository.KycStatusVerified))
			})
		})

		When("no record exists off-chain", func() {
			BeforeEach(func() {
				fakeChain.CallReturns([]any{false}, nil)
				fakeRepo.GetKycByWalletReturns(repository.KycRecord{}, repository.ErrKycNotFound)
			})

			It("returns the flag with a nil record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.IsVerified).To(BeFalse())
				Expect(info.Record).To(BeNil())
			})
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				investorAddr = "garbage"
			})

			It("returns invalid address error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
			})
		})
	})

	Describe("VerifyOnChain", func() {
		var (
			investorType int
			countryCode  string
			result       core.VerificationResult
			err          error
		)

		BeforeEach(func() {
			investorType = repository.InvestorTypeRetail
			countryCode = "us"
		})

		JustBeforeEach(func() {
			result, err = bridge.VerifyOnChain(ctx, investorAddr, investorType, countryCode)
		})

		When("the verification transaction succeeds", func() {
			var tx *types.Transaction

			BeforeEach(func() {
				tx = newTestTx()
				fakeChain.SendReturns(tx, nil)
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("submits the wire-encoded verification", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.TransactionHash).To(Equal(tx.Hash().Hex()))

				Expect(fakeChain.SendCallCount()).To(Equal(1))
				_, contract, method, args := fakeChain.SendArgsForCall(0)
				Expect(contract.Address.Hex()).To(Equal(common.HexToAddress(testKycAddr).Hex()))
				Expect(method).To(Equal("verifyInvestor"))
				Expect(args[0]).To(Equal(common.HexToAddress(investorAddr)))
				Expect(args[1]).To(Equal(uint8(1)))
				Expect(args[2]).To(Equal([2]byte{'U', 'S'})) // country code is upper-cased

				expiresAt, ok := args[3].(*big.Int)
				Expect(ok).To(BeTrue())
				Expect(expiresAt.Int64()).To(BeNumerically("~", time.Now().AddDate(1, 0, 0).Unix(), 10))

				limit, ok := args[4].(*big.Int)
				Expect(ok).To(BeTrue())
				Expect(limit.String()).To(Equal("1000000000000")) // 1M USD in 6-decimal fixed point
			})
		})

		When("the investor type is out of range", func() {
			BeforeEach(func() {
				investorType = 5
			})

			It("rejects without spending gas", func() {
				Expect(err).To(MatchError(core.ErrInvalidInvestorType))
				Expect(fakeChain.SendCallCount()).To(Equal(0))
			})
		})

		When("the country code is not two letters", func() {
			BeforeEach(func() {
				countryCode = "USA"
			})

			It("rejects without spending gas", func() {
				Expect(err).To(MatchError(core.ErrInvalidCountryCode))
				Expect(fakeChain.SendCallCount()).To(Equal(0))
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeChain.SendReturns(newTestTx(), nil)
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("returns a revert error", func() {
				Expect(err).To(MatchError(ContainSubstring("reverted")))
			})
		})
	})

	Describe("AutoVerifyByWallet", func() {
		var (
			user   repository.User
			result core.VerificationResult
			err    error
		)

		BeforeEach(func() {
			user = repository.User{
				ID:            "user-1",
				Username:      "alice",
				WalletAddress: investorAddr,
				Role:          repository.RoleInvestor,
			}
			fakeRepo.GetUserByWalletReturns(user, nil)
		})

		JustBeforeEach(func() {
			result, err = bridge.AutoVerifyByWallet(ctx, investorAddr)
		})

		When("no user owns the wallet", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByWalletReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the user is not an investor", func() {
			BeforeEach(func() {
				user.Role = "operator"
				fakeRepo.GetUserByWalletReturns(user, nil)
			})

			It("rejects before touching the chain", func() {
				Expect(err).To(MatchError(core.ErrNotInvestor))
				Expect(fakeChain.CallCallCount()).To(Equal(0))
				Expect(fakeChain.SendCallCount()).To(Equal(0))
			})
		})

		When("the investor is already verified on-chain", func() {
			BeforeEach(func() {
				fakeChain.CallReturns([]any{true}, nil)
				fakeRepo.UpdateKycStatusReturns(nil)
			})

			It("reconciles the record without spending gas", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.AlreadyVerified).To(BeTrue())
				Expect(fakeChain.SendCallCount()).To(Equal(0))

				Expect(fakeRepo.UpdateKycStatusCallCount()).To(Equal(1))
				_, wallet, status, verifiedAt := fakeRepo.UpdateKycStatusArgsForCall(0)
				Expect(wallet).To(Equal(investorAddr))
				Expect(status).To(Equal(repository.KycStatusVerified))
				Expect(verifiedAt).NotTo(BeNil())
			})

			When("no off-chain record exists yet", func() {
				BeforeEach(func() {
					fakeRepo.UpdateKycStatusReturns(repository.ErrKycNotFound)
					fakeRepo.SaveKycRecordReturns(nil)
				})

				It("creates a verified record from the chain state", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(result.AlreadyVerified).To(BeTrue())

					Expect(fakeRepo.SaveKycRecordCallCount()).To(Equal(1))
					_, record := fakeRepo.SaveKycRecordArgsForCall(0)
					Expect(record.Status).To(Equal(repository.KycStatusVerified))
					Expect(record.WalletAddress).To(Equal(investorAddr))
					Expect(record.VerifiedAt).NotTo(BeNil())
					Expect(record.ExpiresAt).NotTo(BeNil())
				})
			})
		})

		When("the investor is not yet verified", func() {
			BeforeEach(func() {
				fakeChain.CallReturns([]any{false}, nil)
				fakeRepo.GetKycByWalletReturns(repository.KycRecord{
					UserID:        user.ID,
					WalletAddress: investorAddr,
					Status:        repository.KycStatusPending,
					InvestorType:  repository.InvestorTypeRetail,
					CountryCode:   "US",
				}, nil)
				fakeChain.SendReturns(newTestTx(), nil)
				fakeChain.WaitMinedReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
				fakeRepo.UpdateKycStatusReturns(nil)
			})

			It("verifies on-chain and marks the record verified", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.AlreadyVerified).To(BeFalse())
				Expect(result.TransactionHash).NotTo(BeEmpty())

				Expect(fakeRepo.UpdateKycStatusCallCount()).To(Equal(1))
				_, _, status, verifiedAt := fakeRepo.UpdateKycStatusArgsForCall(0)
				Expect(status).To(Equal(repository.KycStatusVerified))
				Expect(verifiedAt).NotTo(BeNil())
			})

			When("no kyc record exists yet", func() {
				BeforeEach(func() {
					fakeRepo.GetKycByWalletReturns(repository.KycRecord{}, repository.ErrKycNotFound)
					fakeRepo.SaveKycRecordReturns(nil)
				})

				It("creates a default retail/US record first", func() {
					Expect(err).NotTo(HaveOccurred())

					Expect(fakeRepo.SaveKycRecordCallCount()).To(Equal(1))
					_, record := fakeRepo.SaveKycRecordArgsForCall(0)
					Expect(record.Status).To(Equal(repository.KycStatusPending))
					Expect(record.InvestorType).To(Equal(repository.InvestorTypeRetail))
					Expect(record.CountryCode).To(Equal("US"))
				})
			})

			When("the on-chain verification fails", func() {
				BeforeEach(func() {
					fakeChain.SendReturns(nil, fakeErr)
				})

				It("resets the record to pending and never marks it verified", func() {
					Expect(err).To(MatchError(fakeErr))

					Expect(fakeRepo.UpdateKycStatusCallCount()).To(Equal(1))
					_, wallet, status, verifiedAt := fakeRepo.UpdateKycStatusArgsForCall(0)
					Expect(wallet).To(Equal(investorAddr))
					Expect(status).To(Equal(repository.KycStatusPending))
					Expect(verifiedAt).To(BeNil())
				})
			})
		})
	})
})
