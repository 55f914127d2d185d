package link

import (
	"context"
	"net/url"
	"strings"
)

// YatoriURLGenerator is a generator that generates payment-request URLs
// understood by the Yatori mobile wallet. Query parameters are emitted
// in a fixed order - token, to, amount, yid - because the wallet's
// deep-link handler and downstream settlement tooling rely on it.
type YatoriURLGenerator struct {
	baseURL        string
	includeNetwork bool
}

// NewYatoriURLGenerator builds a generator rooted at the given base
// URL. If includeNetwork is set, a network parameter is appended after
// yid; the wallet ignores it, but settlement tooling in non-mainnet
// deployments reads it.
func NewYatoriURLGenerator(baseURL string, includeNetwork bool) *YatoriURLGenerator {
	return &YatoriURLGenerator{
		baseURL:        baseURL,
		includeNetwork: includeNetwork,
	}
}

func (g *YatoriURLGenerator) Generate(_ context.Context, details *Details) (string, error) {
	// url.Values.Encode sorts parameters alphabetically, which would
	// break the fixed ordering, so each pair is encoded individually
	parameters := []string{
		"token=" + url.QueryEscape(details.Token),
		"to=" + url.QueryEscape(details.RecipientAddress),
		"amount=" + url.QueryEscape(details.Amount.Format()),
		"yid=" + url.QueryEscape(details.YID),
	}

	if g.includeNetwork {
		parameters = append(parameters, "network="+url.QueryEscape(details.Network))
	}

	return g.baseURL + "?" + strings.Join(parameters, "&"), nil
}
