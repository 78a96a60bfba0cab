package entities

import (
	"errors"
	"reflect"
	"testing"
)

func TestIsBlankToken(t *testing.T) {
	for _, tok := range []string{"", " ", "\t\n "} {
		if !IsBlankToken(tok) {
			t.Fatalf("expected %q to be blank", tok)
		}
	}
	if IsBlankToken(" abc ") {
		t.Fatalf("expected non-blank token")
	}
}

func TestNewGrantOptions(t *testing.T) {
	t.Run("boolean shorthand matches explicit options", func(t *testing.T) {
		a := NewGrantOptions("tok", AllowVaulting(true))
		b := NewGrantOptions("tok", Attributes{"allowVaulting": true})
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("expected %v, got %v", b, a)
		}
	})

	t.Run("custom field", func(t *testing.T) {
		got := NewGrantOptions("tok", Attributes{"customField": "x"})
		want := GrantOptions{"sharedPaymentMethodToken": "tok", "customField": "x"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("caller keys win", func(t *testing.T) {
		got := NewGrantOptions("tok", Attributes{"sharedPaymentMethodToken": "other"})
		if got["sharedPaymentMethodToken"] != "other" {
			t.Fatalf("expected caller token to win, got %v", got)
		}
	})

	t.Run("nil attributes", func(t *testing.T) {
		got := NewGrantOptions("tok", nil)
		if len(got) != 1 || got["sharedPaymentMethodToken"] != "tok" {
			t.Fatalf("unexpected options %v", got)
		}
	})
}

func TestParseDeleteOptions(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		opts, err := ParseDeleteOptions(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if opts.RevokeAllGrants != nil || len(opts.Query()) != 0 {
			t.Fatalf("expected zero options, got %+v", opts)
		}
	})

	t.Run("revokeAllGrants", func(t *testing.T) {
		opts, err := ParseDeleteOptions(map[string]any{"revokeAllGrants": true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := opts.Query().Encode(); got != "revoke_all_grants=true" {
			t.Fatalf("unexpected query %q", got)
		}
	})

	t.Run("string value from a query string", func(t *testing.T) {
		opts, err := ParseDeleteOptions(map[string]any{"revokeAllGrants": "false"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := opts.Query().Encode(); got != "revoke_all_grants=false" {
			t.Fatalf("unexpected query %q", got)
		}
	})

	t.Run("unknown keys", func(t *testing.T) {
		_, err := ParseDeleteOptions(map[string]any{"zeta": 1, "bogus": 1, "revokeAllGrants": true})
		var invalid *InvalidKeysError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidKeysError, got %v", err)
		}
		if err.Error() != "These keys are invalid: bogus, zeta" {
			t.Fatalf("unexpected message %q", err.Error())
		}
	})

	t.Run("key case must match exactly", func(t *testing.T) {
		for _, key := range []string{"RevokeAllGrants", "revokeallgrants", "REVOKEALLGRANTS"} {
			opts, err := ParseDeleteOptions(map[string]any{key: true})
			var invalid *InvalidKeysError
			if !errors.As(err, &invalid) {
				t.Fatalf("%s: expected InvalidKeysError, got %v (query %q)", key, err, opts.Query().Encode())
			}
			if len(invalid.Keys) != 1 || invalid.Keys[0] != key {
				t.Fatalf("%s: unexpected keys %v", key, invalid.Keys)
			}
		}
	})

	t.Run("blank key", func(t *testing.T) {
		_, err := ParseDeleteOptions(map[string]any{"": "1"})
		var invalid *InvalidKeysError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidKeysError, got %v", err)
		}
	})

	t.Run("undecodable value", func(t *testing.T) {
		_, err := ParseDeleteOptions(map[string]any{"revokeAllGrants": "maybe"})
		if err == nil {
			t.Fatalf("expected error")
		}
		var invalid *InvalidKeysError
		if errors.As(err, &invalid) {
			t.Fatalf("did not expect InvalidKeysError, got %v", err)
		}
	})
}

func TestErrNotFound(t *testing.T) {
	if ErrNotFound.Error() != "Not Found" {
		t.Fatalf("unexpected message %q", ErrNotFound.Error())
	}
}
