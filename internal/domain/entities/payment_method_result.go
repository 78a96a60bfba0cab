package entities

import "sort"

// PaymentMethodResult is the envelope returned by create, update, grant and revoke.
//
// On success exactly one of PaymentMethod and PaymentMethodNonce is set. When the
// processor rejects the request with validation errors Success is false and
// ErrorResponse carries them.
type PaymentMethodResult struct {
	Success            bool
	PaymentMethod      PaymentMethod
	PaymentMethodNonce *PaymentMethodNonce
	ErrorResponse      *ErrorResponse

	// Raw is the decoded response body.
	Raw Attributes
}

// Resolved returns whichever of PaymentMethod and PaymentMethodNonce is set.
func (r *PaymentMethodResult) Resolved() PaymentMethod {
	if r == nil {
		return nil
	}
	if r.PaymentMethodNonce != nil {
		return r.PaymentMethodNonce
	}
	return r.PaymentMethod
}

// ValidationError is one processor-side validation failure.
type ValidationError struct {
	Attribute string
	Code      string
	Message   string
}

// ErrorResponse is the apiErrorResponse body of a rejected request.
type ErrorResponse struct {
	Message string
	Params  Attributes
	Errors  []ValidationError

	Attributes Attributes
}

// NewErrorResponse flattens the nested error tree of an apiErrorResponse.
func NewErrorResponse(attrs Attributes) *ErrorResponse {
	e := &ErrorResponse{Attributes: attrs}
	if msg, ok := attrs["message"].(string); ok {
		e.Message = msg
	}
	if params, ok := asAttributes(attrs["params"]); ok {
		e.Params = params
	}
	if tree, ok := asAttributes(attrs["errors"]); ok {
		e.Errors = collectValidationErrors(tree)
	}
	return e
}

// collectValidationErrors walks the error tree depth first. Each level may carry an
// "errors" list and nested sections keyed by name.
func collectValidationErrors(node Attributes) []ValidationError {
	var out []ValidationError
	if list, ok := node["errors"].([]any); ok {
		for _, item := range list {
			m, ok := asAttributes(item)
			if !ok {
				continue
			}
			ve := ValidationError{}
			ve.Attribute, _ = m["attribute"].(string)
			ve.Code, _ = m["code"].(string)
			ve.Message, _ = m["message"].(string)
			out = append(out, ve)
		}
	}
	keys := make([]string, 0, len(node))
	for k := range node {
		if k != "errors" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if child, ok := asAttributes(node[k]); ok {
			out = append(out, collectValidationErrors(child)...)
		}
	}
	return out
}
