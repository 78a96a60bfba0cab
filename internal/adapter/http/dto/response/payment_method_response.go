package response

import (
	"payment_method_gateway/internal/domain/entities"
	"time"
)

type PaymentMethodResponse struct {
	Kind           string                 `json:"kind"`
	Token          string                 `json:"token,omitempty"`
	Nonce          string                 `json:"nonce,omitempty"`
	CardType       string                 `json:"card_type,omitempty"`
	Last4          string                 `json:"last_4,omitempty"`
	MaskedNumber   string                 `json:"masked_number,omitempty"`
	ExpirationDate string                 `json:"expiration_date,omitempty"`
	Email          string                 `json:"email,omitempty"`
	Default        bool                   `json:"default"`
	ImageURL       string                 `json:"image_url,omitempty"`
	Attributes     map[string]interface{} `json:"attributes,omitempty"`
}

type ValidationErrorResponse struct {
	Attribute string `json:"attribute"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

type ErrorDetailsResponse struct {
	Message string                    `json:"message"`
	Errors  []ValidationErrorResponse `json:"errors,omitempty"`
	Params  map[string]interface{}    `json:"params,omitempty"`
}

// PaymentMethodResultResponse renders a PaymentMethodResult. Rejected requests carry
// error_response; successful ones one of payment_method and payment_method_nonce.
type PaymentMethodResultResponse struct {
	Success            bool                   `json:"success"`
	PaymentMethod      *PaymentMethodResponse `json:"payment_method,omitempty"`
	PaymentMethodNonce *PaymentMethodResponse `json:"payment_method_nonce,omitempty"`
	ErrorResponse      *ErrorDetailsResponse  `json:"error_response,omitempty"`
}

type PaymentMethodOperationResponse struct {
	ID                string    `json:"id"`
	Operation         string    `json:"operation"`
	Token             string    `json:"token"`
	PaymentMethodKind string    `json:"payment_method_kind,omitempty"`
	Success           bool      `json:"success"`
	Date              time.Time `json:"date"`

	Response map[string]interface{} `json:"response,omitempty"`
}

func FromPaymentMethod(pm entities.PaymentMethod) *PaymentMethodResponse {
	if pm == nil {
		return nil
	}
	out := &PaymentMethodResponse{
		Kind:       string(pm.Kind()),
		Token:      pm.Identifier(),
		Attributes: pm.Raw(),
	}

	switch v := pm.(type) {
	case *entities.CreditCard:
		out.CardType, out.Last4, out.Default, out.ImageURL = v.CardType, v.Last4, v.Default, v.ImageURL
		out.MaskedNumber, out.ExpirationDate = v.MaskedNumber, v.ExpirationDate
	case *entities.VisaCheckoutCard:
		out.CardType, out.Last4, out.Default, out.ImageURL = v.CardType, v.Last4, v.Default, v.ImageURL
		out.MaskedNumber, out.ExpirationDate = v.MaskedNumber, v.ExpirationDate
	case *entities.MasterpassCard:
		out.CardType, out.Last4, out.Default, out.ImageURL = v.CardType, v.Last4, v.Default, v.ImageURL
		out.MaskedNumber, out.ExpirationDate = v.MaskedNumber, v.ExpirationDate
	case *entities.ApplePayCard:
		out.CardType, out.Last4, out.Default, out.ImageURL = v.CardType, v.Last4, v.Default, v.ImageURL
	case *entities.AndroidPayCard:
		out.CardType, out.Last4, out.Default, out.ImageURL = v.CardType, v.Last4, v.Default, v.ImageURL
	case *entities.PayPalAccount:
		out.Email, out.Default, out.ImageURL = v.Email, v.Default, v.ImageURL
	case *entities.CoinbaseAccount:
		out.Email, out.Default, out.ImageURL = v.UserEmail, v.Default, v.ImageURL
	case *entities.UsBankAccount:
		out.Last4, out.Default, out.ImageURL = v.Last4, v.Default, v.ImageURL
	case *entities.VenmoAccount:
		out.Default, out.ImageURL = v.Default, v.ImageURL
	case *entities.PaymentMethodNonce:
		out.Token = ""
		out.Nonce = v.Nonce
		out.Default = v.Default
	case *entities.UnknownPaymentMethod:
		out.ImageURL = v.ImageURL
	}
	return out
}

func FromPaymentMethodResult(r *entities.PaymentMethodResult) PaymentMethodResultResponse {
	if r == nil {
		return PaymentMethodResultResponse{}
	}
	out := PaymentMethodResultResponse{Success: r.Success}
	if r.PaymentMethod != nil {
		out.PaymentMethod = FromPaymentMethod(r.PaymentMethod)
	}
	if r.PaymentMethodNonce != nil {
		out.PaymentMethodNonce = FromPaymentMethod(r.PaymentMethodNonce)
	}
	if r.ErrorResponse != nil {
		details := &ErrorDetailsResponse{
			Message: r.ErrorResponse.Message,
			Params:  r.ErrorResponse.Params,
		}
		for _, e := range r.ErrorResponse.Errors {
			details.Errors = append(details.Errors, ValidationErrorResponse{
				Attribute: e.Attribute,
				Code:      e.Code,
				Message:   e.Message,
			})
		}
		out.ErrorResponse = details
	}
	return out
}

func FromPaymentMethodOperation(op entities.PaymentMethodOperation) PaymentMethodOperationResponse {
	return PaymentMethodOperationResponse{
		ID:                op.ID,
		Operation:         string(op.Operation),
		Token:             op.Token,
		PaymentMethodKind: string(op.PaymentMethodKind),
		Success:           op.Success,
		Date:              op.Date,
		Response:          op.Response,
	}
}

func FromPaymentMethodOperations(ops []entities.PaymentMethodOperation) []PaymentMethodOperationResponse {
	out := make([]PaymentMethodOperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, FromPaymentMethodOperation(op))
	}
	return out
}
