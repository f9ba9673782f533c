package stripepay

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"parcel-server/internal/logx"
)

// Gateway creates card payment intents through the Stripe API.
type Gateway struct {
	api    *client.API
	logger logx.Logger
}

// New wires a Gateway with the given secret key.
func New(secretKey string, logger logx.Logger) *Gateway {
	if logger == nil {
		logger = logx.Nop()
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api, logger: logger}
}

// CreateIntent registers a payment intent for the amount in the smallest
// currency unit and returns the client-side secret. Currency is fixed to
// usd and the payment method to card.
func (g *Gateway) CreateIntent(ctx context.Context, amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.logger.Error("create payment intent failed",
			logx.Int64("amount_in_cents", amountInCents),
			logx.Any("err", err),
		)
		return "", err
	}

	g.logger.Info("payment intent created",
		logx.String("intent_id", pi.ID),
		logx.Int64("amount_in_cents", amountInCents),
	)
	return pi.ClientSecret, nil
}
