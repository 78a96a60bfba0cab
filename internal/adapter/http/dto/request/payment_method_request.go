package request

import "errors"

var (
	ErrEmptyPaymentMethod    = errors.New("payment_method cannot be empty")
	ErrAmbiguousGrantRequest = errors.New("allow_vaulting and attributes are mutually exclusive")
)

// PaymentMethodRequest is the payload for create and update.
//
// Keys inside payment_method may be camelCase or snake_case; the processor client
// snake_cases them on the wire.
type PaymentMethodRequest struct {
	PaymentMethod map[string]any `json:"payment_method"`
}

func (r PaymentMethodRequest) Validate() error {
	if len(r.PaymentMethod) == 0 {
		return ErrEmptyPaymentMethod
	}
	return nil
}

// GrantRequest is the payload for grant. Either the allow_vaulting shorthand or a
// free-form attributes object is accepted, not both.
type GrantRequest struct {
	AllowVaulting *bool          `json:"allow_vaulting"`
	Attributes    map[string]any `json:"attributes"`
}

func (r GrantRequest) Validate() error {
	if r.AllowVaulting != nil && len(r.Attributes) > 0 {
		return ErrAmbiguousGrantRequest
	}
	return nil
}

// IsVaulting reports whether the boolean shorthand was used.
func (r GrantRequest) IsVaulting() bool {
	return r.AllowVaulting != nil
}

// DeleteOptionsFromQuery turns query parameters into the delete option map. The last
// value wins for repeated keys. Every key is kept, blank ones included, so the
// whitelist check sees it.
func DeleteOptionsFromQuery(query map[string][]string) map[string]any {
	if len(query) == 0 {
		return nil
	}
	out := make(map[string]any, len(query))
	for k, values := range query {
		if len(values) == 0 {
			continue
		}
		out[k] = values[len(values)-1]
	}
	return out
}
