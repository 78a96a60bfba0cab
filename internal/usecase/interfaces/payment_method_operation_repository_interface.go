package interfaces

import (
	"context"

	"payment_method_gateway/internal/domain/entities"
)

// IPaymentMethodOperationRepository abstracts DynamoDB persistence for PaymentMethodOperation.

type IPaymentMethodOperationRepository interface {
	Create(ctx context.Context, op entities.PaymentMethodOperation) (entities.PaymentMethodOperation, error)
	ListByToken(ctx context.Context, token string) ([]entities.PaymentMethodOperation, error)
}
