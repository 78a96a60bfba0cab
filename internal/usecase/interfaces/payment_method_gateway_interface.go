package interfaces

import (
	"context"

	"payment_method_gateway/internal/domain/entities"
)

// IPaymentMethodGateway abstracts the processor's payment-method endpoints.
//
// Blank tokens and invalid delete options fail before any request is sent, through the
// same error return as transport failures.
type IPaymentMethodGateway interface {
	Create(ctx context.Context, attributes entities.Attributes) (*entities.PaymentMethodResult, error)
	Find(ctx context.Context, token string) (entities.PaymentMethod, error)
	Update(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error)
	Grant(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error)
	GrantVaulting(ctx context.Context, token string, allowVaulting bool) (*entities.PaymentMethodResult, error)
	Revoke(ctx context.Context, token string) (*entities.PaymentMethodResult, error)
	Delete(ctx context.Context, token string, options map[string]any) error
}
