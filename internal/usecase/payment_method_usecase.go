package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"payment_method_gateway/internal/domain/entities"
	"payment_method_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentMethodToken  = errors.New("invalid payment method token")
	ErrPaymentGatewayNotFound     = errors.New("payment gateway resource not found")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayForbidden    = errors.New("payment gateway forbidden")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
)

// IPaymentMethodUseCase exposes the payment-method lifecycle and its audit trail.
type IPaymentMethodUseCase interface {
	Create(ctx context.Context, attributes entities.Attributes) (*entities.PaymentMethodResult, error)
	Find(ctx context.Context, token string) (entities.PaymentMethod, error)
	Update(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error)
	Grant(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error)
	GrantVaulting(ctx context.Context, token string, allowVaulting bool) (*entities.PaymentMethodResult, error)
	Revoke(ctx context.Context, token string) (*entities.PaymentMethodResult, error)
	Delete(ctx context.Context, token string, options map[string]any) error
	ListOperations(ctx context.Context, token string) ([]entities.PaymentMethodOperation, error)
}

type PaymentMethodUseCase struct {
	gateway interfaces.IPaymentMethodGateway
	repo    interfaces.IPaymentMethodOperationRepository
	metrics interfaces.IOperationMetrics
	logger  *zap.Logger
}

var _ IPaymentMethodUseCase = (*PaymentMethodUseCase)(nil)

func NewPaymentMethodUseCase(gateway interfaces.IPaymentMethodGateway, repo interfaces.IPaymentMethodOperationRepository, metrics interfaces.IOperationMetrics, logger *zap.Logger) *PaymentMethodUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentMethodUseCase{gateway: gateway, repo: repo, metrics: metrics, logger: logger}
}

func (u *PaymentMethodUseCase) Create(ctx context.Context, attributes entities.Attributes) (*entities.PaymentMethodResult, error) {
	return u.runResult(ctx, entities.OperationCreate, "", func() (*entities.PaymentMethodResult, error) {
		return u.gateway.Create(ctx, attributes)
	})
}

func (u *PaymentMethodUseCase) Find(ctx context.Context, token string) (entities.PaymentMethod, error) {
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}
	start := time.Now()
	u.logger.Info("[payment_method][usecase] find start", zap.String("token", token))

	pm, err := u.gateway.Find(ctx, token)
	if err != nil {
		u.observe(entities.OperationFind, "error", start)
		u.logger.Warn("[payment_method][usecase] find failed", zap.String("token", token), zap.Error(err))
		return nil, mapGatewayError(err)
	}
	u.observe(entities.OperationFind, "success", start)

	u.record(ctx, entities.PaymentMethodOperation{
		Operation:         entities.OperationFind,
		Token:             token,
		PaymentMethodKind: pm.Kind(),
		Success:           true,
	}, pm.Raw())
	u.logger.Info("[payment_method][usecase] find success", zap.String("token", token), zap.String("kind", string(pm.Kind())))
	return pm, nil
}

func (u *PaymentMethodUseCase) Update(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error) {
	return u.runResult(ctx, entities.OperationUpdate, token, func() (*entities.PaymentMethodResult, error) {
		return u.gateway.Update(ctx, token, attributes)
	})
}

func (u *PaymentMethodUseCase) Grant(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error) {
	return u.runResult(ctx, entities.OperationGrant, token, func() (*entities.PaymentMethodResult, error) {
		return u.gateway.Grant(ctx, token, attributes)
	})
}

func (u *PaymentMethodUseCase) GrantVaulting(ctx context.Context, token string, allowVaulting bool) (*entities.PaymentMethodResult, error) {
	return u.runResult(ctx, entities.OperationGrant, token, func() (*entities.PaymentMethodResult, error) {
		return u.gateway.GrantVaulting(ctx, token, allowVaulting)
	})
}

func (u *PaymentMethodUseCase) Revoke(ctx context.Context, token string) (*entities.PaymentMethodResult, error) {
	return u.runResult(ctx, entities.OperationRevoke, token, func() (*entities.PaymentMethodResult, error) {
		return u.gateway.Revoke(ctx, token)
	})
}

func (u *PaymentMethodUseCase) Delete(ctx context.Context, token string, options map[string]any) error {
	if u.gateway == nil {
		return errors.New("payment gateway not configured")
	}
	start := time.Now()
	u.logger.Info("[payment_method][usecase] delete start", zap.String("token", token), zap.Int("options", len(options)))

	if err := u.gateway.Delete(ctx, token, options); err != nil {
		u.observe(entities.OperationDelete, "error", start)
		u.logger.Warn("[payment_method][usecase] delete failed", zap.String("token", token), zap.Error(err))
		return mapGatewayError(err)
	}
	u.observe(entities.OperationDelete, "success", start)

	u.record(ctx, entities.PaymentMethodOperation{
		Operation: entities.OperationDelete,
		Token:     token,
		Success:   true,
	}, nil)
	u.logger.Info("[payment_method][usecase] delete success", zap.String("token", token))
	return nil
}

// ListOperations returns the audit records of token, oldest first.
func (u *PaymentMethodUseCase) ListOperations(ctx context.Context, token string) ([]entities.PaymentMethodOperation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidPaymentMethodToken
	}
	if u.repo == nil {
		return nil, errors.New("operation repository not configured")
	}

	ops, err := u.repo.ListByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Date.Before(ops[j].Date) })
	return ops, nil
}

// runResult performs an envelope-returning gateway call and records its outcome.
func (u *PaymentMethodUseCase) runResult(ctx context.Context, op entities.OperationType, token string, call func() (*entities.PaymentMethodResult, error)) (*entities.PaymentMethodResult, error) {
	if u.gateway == nil {
		return nil, errors.New("payment gateway not configured")
	}
	start := time.Now()
	u.logger.Info("[payment_method][usecase] "+string(op)+" start", zap.String("token", token))

	result, err := call()
	if err != nil {
		u.observe(op, "error", start)
		u.logger.Warn("[payment_method][usecase] "+string(op)+" failed", zap.String("token", token), zap.Error(err))
		return nil, mapGatewayError(err)
	}

	outcome := "success"
	if !result.Success {
		outcome = "rejected"
	}
	u.observe(op, outcome, start)

	rec := entities.PaymentMethodOperation{
		Operation: op,
		Token:     token,
		Success:   result.Success,
	}
	if pm := result.Resolved(); pm != nil {
		rec.PaymentMethodKind = pm.Kind()
		if rec.Token == "" {
			rec.Token = pm.Identifier()
		}
	}
	u.record(ctx, rec, result.Raw)

	u.logger.Info("[payment_method][usecase] "+string(op)+" done",
		zap.String("token", rec.Token),
		zap.Bool("success", result.Success),
		zap.String("kind", string(rec.PaymentMethodKind)),
	)
	return result, nil
}

// record stores the audit entry. The processor call already happened, so a storage
// failure is logged and not returned.
func (u *PaymentMethodUseCase) record(ctx context.Context, op entities.PaymentMethodOperation, response entities.Attributes) {
	if u.repo == nil {
		return
	}
	op.ID = uuid.NewString()
	op.Date = time.Now().UTC()
	if response != nil {
		op.Response = map[string]interface{}(response)
		if b, err := json.Marshal(response); err == nil {
			op.ResponseRaw = b
		} else {
			u.logger.Warn("[payment_method][usecase] response marshal failed", zap.String("operation_id", op.ID), zap.Error(err))
		}
	}

	if _, err := u.repo.Create(ctx, op); err != nil {
		u.logger.Error("[payment_method][usecase] operation record failed",
			zap.String("operation_id", op.ID),
			zap.String("operation", string(op.Operation)),
			zap.String("token", op.Token),
			zap.Error(err),
		)
	}
}

func (u *PaymentMethodUseCase) observe(op entities.OperationType, outcome string, start time.Time) {
	if u.metrics == nil {
		return
	}
	u.metrics.ObserveOperation(string(op), outcome, time.Since(start))
}

// statusCoder is implemented by transport errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatusCode() int
}

// temporary is implemented by transport errors raised before a status was received.
type temporary interface {
	Temporary() bool
}

// mapGatewayError classifies transport failures; local validation errors
// (entities.ErrNotFound, *entities.InvalidKeysError) pass through untouched.
func mapGatewayError(err error) error {
	var sc statusCoder
	if errors.As(err, &sc) {
		switch status := sc.HTTPStatusCode(); {
		case status == http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayUnauthorized, err)
		case status == http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayForbidden, err)
		case status == http.StatusNotFound:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayNotFound, err)
		case status == http.StatusUpgradeRequired, status == http.StatusTooManyRequests, status >= 500:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
		case status >= 400:
			return fmt.Errorf("%w: %w", ErrPaymentGatewayBadRequest, err)
		}
	}
	var tmp temporary
	if errors.As(err, &tmp) && tmp.Temporary() {
		return fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
	}
	return err
}
