package contracts_test

import (
	"proptoken/internal/contracts"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	factoryAddr  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	kycAddr      = "0x8aCd85898458400f7Db866d53FCFF6f0D49741FF"
	dividendAddr = "0xa513E6E4b8f2a923D98304ec87F64353C4D5C853"
)

var _ = Describe("Registry", func() {
	var logger = zap.NewNop().Sugar()

	When("all addresses are configured", func() {
		var registry *contracts.Registry

		BeforeEach(func() {
			var err error
			registry, err = contracts.NewRegistry(logger, factoryAddr, kycAddr, dividendAddr)
			Expect(err).NotTo(HaveOccurred())
		})

		It("enables tokenization", func() {
			Expect(registry.TokenizationEnabled()).To(BeTrue())

			factory, ok := registry.Factory()
			Expect(ok).To(BeTrue())
			Expect(factory.Address.Hex()).To(Equal(common.HexToAddress(factoryAddr).Hex()))
			Expect(factory.HasMethod("createPropertyToken")).To(BeTrue())
		})

		It("builds token handles with the probing entrypoints", func() {
			token := registry.Token(common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"))
			for _, method := range []string{"buyTokensFor", "purchaseTokens", "mint", "issue", "hasRole", "grantRole"} {
				Expect(token.HasMethod(method)).To(BeTrue(), method)
			}
		})

		It("resolves the fixed contract handles", func() {
			Expect(registry.KYC().Address.Hex()).To(Equal(common.HexToAddress(kycAddr).Hex()))
			Expect(registry.KYC().HasMethod("isVerified")).To(BeTrue())
			Expect(registry.Dividend().HasMethod("pendingDividend")).To(BeTrue())
		})

		It("exposes the deployment event topic", func() {
			Expect(registry.TokenCreatedTopic()).NotTo(Equal(common.Hash{}))
		})
	})

	When("the factory address is empty", func() {
		It("degrades to read-only mode instead of failing", func() {
			registry, err := contracts.NewRegistry(logger, "", kycAddr, dividendAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(registry.TokenizationEnabled()).To(BeFalse())

			_, ok := registry.Factory()
			Expect(ok).To(BeFalse())
		})
	})

	When("an address is malformed", func() {
		It("rejects a bad factory address", func() {
			_, err := contracts.NewRegistry(logger, "not-an-address", kycAddr, dividendAddr)
			Expect(err).To(MatchError(ContainSubstring("invalid token factory address")))
		})

		It("rejects a bad kyc address", func() {
			_, err := contracts.NewRegistry(logger, factoryAddr, "nope", dividendAddr)
			Expect(err).To(MatchError(ContainSubstring("invalid kyc contract address")))
		})
	})

	It("derives the issuer role hash from its name", func() {
		Expect(contracts.IssuerRole).To(Equal([32]byte(crypto.Keccak256Hash([]byte("ISSUER_ROLE")))))
		Expect(contracts.DefaultAdminRole).To(Equal([32]byte{}))
	})
})
