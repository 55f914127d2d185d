package token

import (
	"context"

	"github.com/yatori-dev/yatori-request-link/activation"
)

const (
	// TypeUSDCBasic instructs the wallet to execute a plain USDC
	// transfer to an already-activated token account.
	TypeUSDCBasic = "usdcBasic"
	// TypeUSDCCreate instructs the wallet to create the recipient's
	// USDC token account as part of the transfer.
	TypeUSDCCreate = "usdcCreate"
)

// Resolver resolves the token type to be embedded in a payment request.
type Resolver interface {
	// Resolve determines the token type to use for a payment to the
	// given recipient on the given network.
	Resolve(ctx context.Context, recipient string, network string) (string, error)
}

// StaticResolver is a Resolver that always resolves to a fixed token
// type, without ever consulting any external state.
type StaticResolver struct {
	tokenType string
}

func NewStaticResolver(tokenType string) *StaticResolver {
	return &StaticResolver{
		tokenType: tokenType,
	}
}

func (r *StaticResolver) Resolve(_ context.Context, _ string, _ string) (string, error) {
	return r.tokenType, nil
}

// ActivationResolver is a Resolver that selects the token type based on
// whether the recipient's USDC token account has been activated. A
// failed activation check is never surfaced to the caller; the resolver
// falls back to TypeUSDCCreate, which is always safe because it lets
// the receiving wallet create the account itself.
type ActivationResolver struct {
	checker activation.Checker
}

func NewActivationResolver(checker activation.Checker) *ActivationResolver {
	return &ActivationResolver{
		checker: checker,
	}
}

func (r *ActivationResolver) Resolve(ctx context.Context, recipient string, network string) (string, error) {
	isActivated, err := r.checker.IsActivated(ctx, recipient, network)
	if err != nil {
		return TypeUSDCCreate, nil
	}

	if isActivated {
		return TypeUSDCBasic, nil
	}

	return TypeUSDCCreate, nil
}
