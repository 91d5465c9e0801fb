package repository_test

import (
	"context"
	"errors"
	"time"

	"proptoken/internal/db"
	"proptoken/internal/repository"
	"proptoken/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PropertyRepository", func() {
	var (
		fakeStorage *fake.Storage
		repo        *repository.PropertyRepository
		ctx         context.Context

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewPropertyRepository(fakeStorage)
		ctx = context.Background()

		fakeErr = errors.New("fake error")
	})

	Describe("MigrateAndSeed", func() {
		When("migration and seeding succeed", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
				fakeStorage.SeedReturns(nil)
			})

			It("migrates all models and seeds users and properties", func() {
				Expect(repo.MigrateAndSeed(ctx)).To(Succeed())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				Expect(fakeStorage.MigrateTableArgsForCall(0)).To(HaveLen(3))

				Expect(fakeStorage.SeedCallCount()).To(Equal(2))
				_, users := fakeStorage.SeedArgsForCall(0)
				Expect(*users.(*[]repository.User)).NotTo(BeEmpty())
				_, properties := fakeStorage.SeedArgsForCall(1)
				Expect(*properties.(*[]repository.Property)).NotTo(BeEmpty())
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("returns the error without seeding", func() {
				Expect(repo.MigrateAndSeed(ctx)).To(MatchError(fakeErr))
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetPropertyByID", func() {
		When("the property exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					*(entity.(*repository.Property)) = repository.Property{ID: value.(string), Name: "123 Main St"}
					return nil
				}
			})

			It("queries by id", func() {
				property, err := repo.GetPropertyByID(ctx, "prop-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(property.ID).To(Equal("prop-1"))
				Expect(property.Name).To(Equal("123 Main St"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal("prop-1"))
			})
		})

		When("the property does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("maps the storage error to not found", func() {
				_, err := repo.GetPropertyByID(ctx, "ghost")
				Expect(err).To(MatchError(repository.ErrPropertyNotFound))
			})
		})
	})

	Describe("GetPropertyByTokenAddress", func() {
		It("queries by the token_address column", func() {
			fakeStorage.GetOneByReturns(nil)

			_, err := repo.GetPropertyByTokenAddress(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("token_address"))
			Expect(value).To(Equal("0xabc"))
		})
	})

	Describe("SetPropertyTokenAddress", func() {
		When("the update succeeds", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(nil)
			})

			It("updates only the token_address column", func() {
				Expect(repo.SetPropertyTokenAddress(ctx, "prop-1", "0xabc")).To(Succeed())

				_, _, column, value, updates := fakeStorage.UpdateByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal("prop-1"))
				Expect(updates).To(Equal(map[string]any{"token_address": "0xabc"}))
			})
		})

		When("the property does not exist", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("maps the storage error to not found", func() {
				err := repo.SetPropertyTokenAddress(ctx, "ghost", "0xabc")
				Expect(err).To(MatchError(repository.ErrPropertyNotFound))
			})
		})
	})

	Describe("SetPropertyEstimatedPrice", func() {
		It("updates only the estimated_price column", func() {
			fakeStorage.UpdateByReturns(nil)

			Expect(repo.SetPropertyEstimatedPrice(ctx, "prop-1", 562000)).To(Succeed())

			_, _, column, value, updates := fakeStorage.UpdateByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("prop-1"))
			Expect(updates).To(Equal(map[string]any{"estimated_price": 562000.0}))
		})
	})

	Describe("GetUserByWallet", func() {
		When("no user owns the wallet", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("maps the storage error to not found", func() {
				_, err := repo.GetUserByWallet(ctx, "0xabc")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		It("queries by the wallet_address column", func() {
			fakeStorage.GetOneByReturns(nil)

			_, err := repo.GetUserByWallet(ctx, "0xabc")
			Expect(err).NotTo(HaveOccurred())

			_, column, _, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("wallet_address"))
		})
	})

	Describe("SaveKycRecord", func() {
		When("the record has no id yet", func() {
			It("assigns one before upserting", func() {
				fakeStorage.UpsertOneReturns(nil)

				record := repository.KycRecord{WalletAddress: "0xabc"}
				Expect(repo.SaveKycRecord(ctx, &record)).To(Succeed())
				Expect(record.ID).NotTo(BeEmpty())

				_, saved := fakeStorage.UpsertOneArgsForCall(0)
				Expect(saved.(*repository.KycRecord).ID).To(Equal(record.ID))
			})
		})

		When("the record already has an id", func() {
			It("keeps the existing id", func() {
				fakeStorage.UpsertOneReturns(nil)

				record := repository.KycRecord{ID: "kyc-1", WalletAddress: "0xabc"}
				Expect(repo.SaveKycRecord(ctx, &record)).To(Succeed())
				Expect(record.ID).To(Equal("kyc-1"))
			})
		})

		When("the upsert fails", func() {
			It("returns the error", func() {
				fakeStorage.UpsertOneReturns(fakeErr)

				record := repository.KycRecord{WalletAddress: "0xabc"}
				Expect(repo.SaveKycRecord(ctx, &record)).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateKycStatus", func() {
		When("no verification time is given", func() {
			It("updates only the status", func() {
				fakeStorage.UpdateByReturns(nil)

				Expect(repo.UpdateKycStatus(ctx, "0xabc", repository.KycStatusPending, nil)).To(Succeed())

				_, _, column, value, updates := fakeStorage.UpdateByArgsForCall(0)
				Expect(column).To(Equal("wallet_address"))
				Expect(value).To(Equal("0xabc"))
				Expect(updates).To(Equal(map[string]any{"status": repository.KycStatusPending}))
			})
		})

		When("a verification time is given", func() {
			It("updates status and verified_at together", func() {
				fakeStorage.UpdateByReturns(nil)

				now := time.Now()
				Expect(repo.UpdateKycStatus(ctx, "0xabc", repository.KycStatusVerified, &now)).To(Succeed())

				_, _, _, _, updates := fakeStorage.UpdateByArgsForCall(0)
				Expect(updates).To(HaveKeyWithValue("status", repository.KycStatusVerified))
				Expect(updates).To(HaveKeyWithValue("verified_at", now))
			})
		})

		When("no record matches the wallet", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("maps the storage error to not found", func() {
				err := repo.UpdateKycStatus(ctx, "0xghost", repository.KycStatusVerified, nil)
				Expect(err).To(MatchError(repository.ErrKycNotFound))
			})
		})
	})
})
