package link

import "github.com/yatori-dev/yatori-request-link/currency"

// Details describes a fully-resolved payment request, ready to be
// expressed as a URL.
type Details struct {
	Token            string
	RecipientAddress string
	Amount           currency.Amount
	YID              string
	Network          string
}
