package link_test

import (
	"context"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yatori-dev/yatori-request-link/currency"
	"github.com/yatori-dev/yatori-request-link/link"
)

var _ = Describe("YatoriURLGenerator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Context("Generate", func() {
		It("generates a URL with parameters in the fixed order", func() {
			generator := link.NewYatoriURLGenerator("https://yatori.io/mobile/yatoriRequest", false)

			details := &link.Details{
				Token:            "usdcBasic",
				RecipientAddress: "GvCoHGGBR97Yphzc6SrRycZyS31oUYBM8m9hLRtJT7r5",
				Amount:           currency.Amount{Dollars: 5},
				YID:              "a7f3k2m9q0",
				Network:          "mainnet-beta",
			}

			generatedURL, err := generator.Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the URL should not fail")
			Expect(generatedURL).To(Equal("https://yatori.io/mobile/yatoriRequest?token=usdcBasic&to=GvCoHGGBR97Yphzc6SrRycZyS31oUYBM8m9hLRtJT7r5&amount=5.00&yid=a7f3k2m9q0"), "the correct URL should be generated")
		})

		It("matches the documented example link", func() {
			generator := link.NewYatoriURLGenerator("https://yatori.io/mobile/yatoriRequest", false)

			details := &link.Details{
				Token:            "usdcBasic",
				RecipientAddress: "4M4fd9JSEgrzbCko9uABWN1E1xhjxPsmMSt6KHf3ZjQ8",
				Amount:           currency.Amount{Dollars: 0, Cents: 50},
				YID:              "readme_demo_50c",
				Network:          "mainnet-beta",
			}

			generatedURL, err := generator.Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the URL should not fail")
			Expect(generatedURL).To(Equal("https://yatori.io/mobile/yatoriRequest?token=usdcBasic&to=4M4fd9JSEgrzbCko9uABWN1E1xhjxPsmMSt6KHf3ZjQ8&amount=0.50&yid=readme_demo_50c"), "the documented example should be reproduced")
		})

		It("percent-encodes parameter values so the query round-trips", func() {
			generator := link.NewYatoriURLGenerator("https://yatori.io/mobile/yatoriRequest", false)

			details := &link.Details{
				Token:            "usdcBasic",
				RecipientAddress: "GvCoHGGBR97Yphzc6SrRycZyS31oUYBM8m9hLRtJT7r5",
				Amount:           currency.Amount{Dollars: 10, Cents: 50},
				YID:              "invoice 123&x=y",
				Network:          "mainnet-beta",
			}

			generatedURL, err := generator.Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the URL should not fail")

			_, queryString, found := strings.Cut(generatedURL, "?")
			Expect(found).To(BeTrue(), "the URL should carry a query string")

			parsedQuery, err := url.ParseQuery(queryString)
			Expect(err).ToNot(HaveOccurred(), "the query string should parse")
			Expect(parsedQuery.Get("token")).To(Equal("usdcBasic"), "the token should round-trip")
			Expect(parsedQuery.Get("to")).To(Equal("GvCoHGGBR97Yphzc6SrRycZyS31oUYBM8m9hLRtJT7r5"), "the recipient should round-trip")
			Expect(parsedQuery.Get("amount")).To(Equal("10.50"), "the amount should round-trip")
			Expect(parsedQuery.Get("yid")).To(Equal("invoice 123&x=y"), "the tracking identifier should round-trip through percent-encoding")
		})

		When("the generator is configured to include the network", func() {
			It("appends the network after the tracking identifier", func() {
				generator := link.NewYatoriURLGenerator("https://yatori.io/mobile/yatoriRequest", true)

				details := &link.Details{
					Token:            "usdcCreate",
					RecipientAddress: "GvCoHGGBR97Yphzc6SrRycZyS31oUYBM8m9hLRtJT7r5",
					Amount:           currency.Amount{Dollars: 1, Cents: 25},
					YID:              "a7f3k2m9q0",
					Network:          "devnet",
				}

				generatedURL, err := generator.Generate(ctx, details)
				Expect(err).ToNot(HaveOccurred(), "generating the URL should not fail")
				Expect(generatedURL).To(HaveSuffix("yid=a7f3k2m9q0&network=devnet"), "the network should trail the tracking identifier")
			})
		})
	})
})
