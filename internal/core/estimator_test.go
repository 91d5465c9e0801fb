package core_test

import (
	"context"
	"errors"

	"proptoken/internal/core"
	"proptoken/internal/core/fake"
	"proptoken/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Estimator", func() {
	var (
		fakeRepo       *fake.Repository
		fakeForecaster *fake.Forecaster
		ctx            context.Context

		estimator *core.Estimator

		price float64
		err   error

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeForecaster = new(fake.Forecaster)
		ctx = context.Background()

		estimator = core.NewEstimator(zap.NewNop().Sugar(), fakeRepo, fakeForecaster)

		fakeErr = errors.New("fake error")

		fakeRepo.GetPropertyByIDReturns(repository.Property{
			ID:   "prop-1",
			Name: "123 Main St",
		}, nil)
	})

	JustBeforeEach(func() {
		price, err = estimator.EstimatePrice(ctx, "prop-1")
	})

	When("the forecast succeeds", func() {
		BeforeEach(func() {
			fakeForecaster.ForecastPriceReturns(562000, nil)
			fakeRepo.SetPropertyEstimatedPriceReturns(nil)
		})

		It("persists and returns the forecasted price", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(Equal(562000.0))

			Expect(fakeRepo.SetPropertyEstimatedPriceCallCount()).To(Equal(1))
			_, argID, argPrice := fakeRepo.SetPropertyEstimatedPriceArgsForCall(0)
			Expect(argID).To(Equal("prop-1"))
			Expect(argPrice).To(Equal(562000.0))
		})
	})

	When("the property does not exist", func() {
		BeforeEach(func() {
			fakeRepo.GetPropertyByIDReturns(repository.Property{}, repository.ErrPropertyNotFound)
		})

		It("returns property not found error", func() {
			Expect(err).To(MatchError(core.ErrPropertyNotFound))
			Expect(fakeForecaster.ForecastPriceCallCount()).To(Equal(0))
		})
	})

	When("the forecast fails", func() {
		BeforeEach(func() {
			fakeForecaster.ForecastPriceReturns(0, fakeErr)
		})

		It("returns the forecast error without persisting", func() {
			Expect(err).To(MatchError(fakeErr))
			Expect(fakeRepo.SetPropertyEstimatedPriceCallCount()).To(Equal(0))
		})
	})

	When("persisting the estimate fails", func() {
		BeforeEach(func() {
			fakeForecaster.ForecastPriceReturns(562000, nil)
			fakeRepo.SetPropertyEstimatedPriceReturns(fakeErr)
		})

		It("returns the persistence error", func() {
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
