package server

import (
	"net/http"
	"strconv"

	"github.com/stripe/stripe-go/v84"
)

// handleGivingCheckout creates a Stripe Checkout session for a one-time gift
// and redirects the visitor to Stripe's hosted payment page.
func (s *Service) handleGivingCheckout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/", "invalid form payload")
		return
	}

	amount, err := strconv.ParseFloat(r.FormValue("amount"), 64)
	if err != nil || amount < 1 {
		s.redirectWithError(w, r, "/", "please enter a gift amount of at least 1€")
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyEUR)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Don - Grace & Faith"),
					},
					UnitAmount: stripe.Int64(int64(amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.GivingSuccessURL),
		CancelURL:  stripe.String(s.config.GivingCancelURL),
	}
	params.Context = r.Context()

	session, err := s.stripeClient.CheckoutSessions.New(params)
	if err != nil {
		s.logger.WithError(err).Error("failed to create checkout session")
		s.redirectWithError(w, r, "/", "unable to start the giving checkout")
		return
	}

	http.Redirect(w, r, session.URL, http.StatusSeeOther)
}
