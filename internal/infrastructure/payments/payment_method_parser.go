package payments

import (
	"payment_method_gateway/internal/domain/entities"
)

type paymentMethodConstructor func(entities.Attributes) entities.PaymentMethod

type variantMapping struct {
	key   string
	build paymentMethodConstructor
}

// paymentMethodVariants is checked in order; the processor never sends two of these
// keys together, the order only settles malformed payloads.
var paymentMethodVariants = []variantMapping{
	{"creditCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewCreditCard(a) }},
	{"paypalAccount", func(a entities.Attributes) entities.PaymentMethod { return entities.NewPayPalAccount(a) }},
	{"applePayCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewApplePayCard(a) }},
	{"androidPayCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewAndroidPayCard(a) }},
	{"coinbaseAccount", func(a entities.Attributes) entities.PaymentMethod { return entities.NewCoinbaseAccount(a) }},
	{"paymentMethodNonce", func(a entities.Attributes) entities.PaymentMethod { return entities.NewPaymentMethodNonce(a) }},
	{"usBankAccount", func(a entities.Attributes) entities.PaymentMethod { return entities.NewUsBankAccount(a) }},
	{"venmoAccount", func(a entities.Attributes) entities.PaymentMethod { return entities.NewVenmoAccount(a) }},
	{"visaCheckoutCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewVisaCheckoutCard(a) }},
	{"masterpassCard", func(a entities.Attributes) entities.PaymentMethod { return entities.NewMasterpassCard(a) }},
}

// ParsePaymentMethod picks the payment-method variant a response carries. A key counts
// when its value is a JSON object; when none does, the whole response is wrapped in an
// UnknownPaymentMethod.
func ParsePaymentMethod(response entities.Attributes) entities.PaymentMethod {
	if pm, ok := matchVariant(response, paymentMethodVariants); ok {
		return pm
	}
	return entities.NewUnknownPaymentMethod(response)
}

func matchVariant(response entities.Attributes, table []variantMapping) (entities.PaymentMethod, bool) {
	for _, v := range table {
		if attrs, ok := objectAt(response, v.key); ok {
			return v.build(attrs), true
		}
	}
	return nil, false
}

func objectAt(response entities.Attributes, key string) (entities.Attributes, bool) {
	switch m := response[key].(type) {
	case map[string]any:
		return entities.Attributes(m), true
	case entities.Attributes:
		return m, true
	default:
		return nil, false
	}
}
