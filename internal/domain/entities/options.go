package entities

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrNotFound is returned for blank payment-method tokens before any request is sent.
var ErrNotFound = errors.New("Not Found")

// InvalidKeysError reports option keys outside an operation's whitelist.
type InvalidKeysError struct {
	Keys []string
}

func (e *InvalidKeysError) Error() string {
	return "These keys are invalid: " + strings.Join(e.Keys, ", ")
}

// IsBlankToken reports whether token is empty once surrounding whitespace is removed.
func IsBlankToken(token string) bool {
	return strings.TrimSpace(token) == ""
}

// GrantOptions is the payment_method body of a grant request.
type GrantOptions map[string]any

// AllowVaulting is the boolean shorthand accepted by grant.
func AllowVaulting(allow bool) Attributes {
	return Attributes{"allowVaulting": allow}
}

// NewGrantOptions shallow-merges attrs over {sharedPaymentMethodToken: token};
// caller keys win on collision.
func NewGrantOptions(token string, attrs Attributes) GrantOptions {
	opts := GrantOptions{"sharedPaymentMethodToken": token}
	for k, v := range attrs {
		opts[k] = v
	}
	return opts
}

// DeleteOptions holds the only options the delete endpoint accepts.
type DeleteOptions struct {
	RevokeAllGrants *bool `mapstructure:"revokeAllGrants"`
}

// ParseDeleteOptions validates raw against the delete whitelist. Keys must match
// exactly, case included; unknown keys yield an *InvalidKeysError listing them in
// sorted order.
func ParseDeleteOptions(raw map[string]any) (DeleteOptions, error) {
	var opts DeleteOptions
	if len(raw) == 0 {
		return opts, nil
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         &md,
		WeaklyTypedInput: true,
		MatchName:        func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Result:           &opts,
	})
	if err != nil {
		return DeleteOptions{}, err
	}
	decodeErr := dec.Decode(raw)

	if len(md.Unused) > 0 {
		keys := append([]string(nil), md.Unused...)
		sort.Strings(keys)
		return DeleteOptions{}, &InvalidKeysError{Keys: keys}
	}
	if decodeErr != nil {
		return DeleteOptions{}, fmt.Errorf("invalid delete options: %w", decodeErr)
	}
	return opts, nil
}

// Query encodes the options with the processor's snake_case keys.
func (o DeleteOptions) Query() url.Values {
	q := url.Values{}
	if o.RevokeAllGrants != nil {
		q.Set("revoke_all_grants", strconv.FormatBool(*o.RevokeAllGrants))
	}
	return q
}
