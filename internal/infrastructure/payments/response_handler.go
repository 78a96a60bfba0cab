package payments

import (
	"payment_method_gateway/internal/domain/entities"
)

// genericPaymentMethodMapping is the table the generic handler shares with the other
// processor resources; bank accounts, Venmo, Visa Checkout and Masterpass are only
// recognized by the payment-method resolver.
var genericPaymentMethodMapping = []variantMapping{
	{"paypalAccount", func(a entities.Attributes) entities.PaymentMethod { return entities.NewPayPalAccount(a) }},
	{"coinbaseAccount", func(a entities.Attributes) entities.PaymentMethod { return entities.NewCoinbaseAccount(a) }},
	{"creditCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewCreditCard(a) }},
	{"applePayCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewApplePayCard(a) }},
	{"androidPayCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewAndroidPayCard(a) }},
	{"paymentMethodNonce", func(a entities.Attributes) entities.PaymentMethod { return entities.NewPaymentMethodNonce(a) }},
}

type responseHandlerFunc func(response map[string]any) *entities.PaymentMethodResult

// createResponseHandler triages error and success bodies. Error bodies
// (apiErrorResponse) become unsuccessful results; success bodies are mapped through
// table.
func createResponseHandler(table []variantMapping) responseHandlerFunc {
	return func(response map[string]any) *entities.PaymentMethodResult {
		raw := entities.Attributes(response)
		if errBody, ok := objectAt(raw, "apiErrorResponse"); ok {
			return &entities.PaymentMethodResult{
				Success:       false,
				ErrorResponse: entities.NewErrorResponse(errBody),
				Raw:           raw,
			}
		}

		result := &entities.PaymentMethodResult{Success: true, Raw: raw}
		if pm, ok := matchVariant(raw, table); ok {
			result.PaymentMethod = pm
		}
		return result
	}
}

// responseHandler runs the generic handler and then re-resolves the payment method
// with the full variant table, filing nonces under PaymentMethodNonce.
func responseHandler() responseHandlerFunc {
	return resolveVariants(createResponseHandler(genericPaymentMethodMapping))
}

// resolveVariants wraps handler with the full-table resolution. The full table decides
// the variant; a stage-one match of the same kind is kept rather than decoded again.
func resolveVariants(handler responseHandlerFunc) responseHandlerFunc {
	return func(response map[string]any) *entities.PaymentMethodResult {
		result := handler(response)
		if !result.Success {
			return result
		}

		resolved := ParsePaymentMethod(result.Raw)
		if generic := result.PaymentMethod; generic != nil && generic.Kind() == resolved.Kind() {
			resolved = generic
		}
		if nonce, ok := resolved.(*entities.PaymentMethodNonce); ok {
			result.PaymentMethod = nil
			result.PaymentMethodNonce = nonce
		} else {
			result.PaymentMethod = resolved
		}
		return result
	}
}
