package link

import (
	"context"
	"fmt"
	"time"

	"github.com/yatori-dev/yatori-request-link/address"
	"github.com/yatori-dev/yatori-request-link/currency"
	"github.com/yatori-dev/yatori-request-link/token"
)

// DefaultNetwork is the network assumed when a request does not name one.
const DefaultNetwork = "mainnet-beta"

// Request describes a payment link to be created. YID and Token are
// optional; when absent, a tracking identifier is generated and the
// token type is resolved by the builder's token resolver.
type Request struct {
	Recipient string
	Amount    currency.Amount
	YID       *string
	Token     *string
	Network   string
}

// TrackedRequest describes a payment link to be created along with
// tracking metadata. The tracking identifier is always generated, with
// the optional Prefix prepended to its random portion.
type TrackedRequest struct {
	Recipient string
	Amount    currency.Amount
	Prefix    string
	Token     *string
	Network   string
}

// TrackedLink is a generated payment link together with the metadata
// needed to correlate the request with later settlement.
type TrackedLink struct {
	URL       string
	YID       string
	Recipient string
	Amount    currency.Amount
	Token     string
	CreatedAt time.Time
}

// Builder assembles payment-request URLs. It validates the recipient
// and amount, resolves the token type, generates a tracking identifier
// when none is supplied, and delegates URL assembly to its generator.
type Builder struct {
	urlGenerator  URLGenerator
	tokenResolver token.Resolver
}

func NewBuilder(urlGenerator URLGenerator, tokenResolver token.Resolver) *Builder {
	return &Builder{
		urlGenerator:  urlGenerator,
		tokenResolver: tokenResolver,
	}
}

// CreatePaymentLink creates a payment-request URL for the given
// request. Validation failures are returned as
// address.InvalidAddressError or currency.InvalidAmountError; no
// partial URL is ever returned alongside an error.
func (b *Builder) CreatePaymentLink(ctx context.Context, request *Request) (string, error) {
	details, err := b.resolveDetails(ctx, request.Recipient, request.Amount, request.Token, request.Network)
	if err != nil {
		return "", err
	}

	if request.YID != nil {
		details.YID = *request.YID
	} else {
		generatedYID, err := GenerateYID(DefaultYIDLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate tracking identifier: %w", err)
		}

		details.YID = generatedYID
	}

	generatedURL, err := b.urlGenerator.Generate(ctx, details)
	if err != nil {
		return "", fmt.Errorf("failed to generate payment link URL: %w", err)
	}

	return generatedURL, nil
}

// CreateTrackedPaymentLink creates a payment-request URL and returns it
// together with the metadata needed to correlate the request with later
// settlement.
func (b *Builder) CreateTrackedPaymentLink(ctx context.Context, request *TrackedRequest) (*TrackedLink, error) {
	details, err := b.resolveDetails(ctx, request.Recipient, request.Amount, request.Token, request.Network)
	if err != nil {
		return nil, err
	}

	randomPart, err := GenerateYID(TrackedYIDRandomLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tracking identifier: %w", err)
	}
	details.YID = request.Prefix + randomPart

	generatedURL, err := b.urlGenerator.Generate(ctx, details)
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment link URL: %w", err)
	}

	return &TrackedLink{
		URL:       generatedURL,
		YID:       details.YID,
		Recipient: details.RecipientAddress,
		Amount:    details.Amount,
		Token:     details.Token,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// resolveDetails validates the recipient and amount and resolves the
// token type, leaving the YID for the caller to fill in. An explicitly
// supplied token is used verbatim, without consulting the resolver.
func (b *Builder) resolveDetails(
	ctx context.Context,
	recipient string,
	amount currency.Amount,
	explicitToken *string,
	network string,
) (*Details, error) {
	if err := address.Validate(recipient); err != nil {
		return nil, err
	}

	if err := amount.Validate(); err != nil {
		return nil, err
	}

	if network == "" {
		network = DefaultNetwork
	}

	var resolvedToken string
	if explicitToken != nil {
		resolvedToken = *explicitToken
	} else {
		var err error
		resolvedToken, err = b.tokenResolver.Resolve(ctx, recipient, network)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve token type: %w", err)
		}
	}

	return &Details{
		Token:            resolvedToken,
		RecipientAddress: recipient,
		Amount:           amount,
		Network:          network,
	}, nil
}
