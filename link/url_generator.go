package link

import "context"

// URLGenerator is used to generate a payment-request URL.
type URLGenerator interface {
	// Generate generates a URL expressing the given payment request
	Generate(ctx context.Context, details *Details) (string, error)
}
