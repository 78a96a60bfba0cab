package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment_method_gateway/internal/domain/entities"
	"payment_method_gateway/internal/infrastructure/httpclient"
	mock_interfaces "payment_method_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type useCaseMocks struct {
	gateway *mock_interfaces.MockIPaymentMethodGateway
	repo    *mock_interfaces.MockIPaymentMethodOperationRepository
	metrics *mock_interfaces.MockIOperationMetrics
}

func newTestUseCase(t *testing.T) (*PaymentMethodUseCase, useCaseMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := useCaseMocks{
		gateway: mock_interfaces.NewMockIPaymentMethodGateway(ctrl),
		repo:    mock_interfaces.NewMockIPaymentMethodOperationRepository(ctrl),
		metrics: mock_interfaces.NewMockIOperationMetrics(ctrl),
	}
	return NewPaymentMethodUseCase(m.gateway, m.repo, m.metrics, nil), m
}

func TestPaymentMethodUseCase_NotConfigured(t *testing.T) {
	uc := NewPaymentMethodUseCase(nil, nil, nil, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, entities.Attributes{}); err == nil || err.Error() != "payment gateway not configured" {
		t.Fatalf("expected gateway not configured error, got %v", err)
	}
	if _, err := uc.Find(ctx, "tok"); err == nil || err.Error() != "payment gateway not configured" {
		t.Fatalf("expected gateway not configured error, got %v", err)
	}
	if err := uc.Delete(ctx, "tok", nil); err == nil || err.Error() != "payment gateway not configured" {
		t.Fatalf("expected gateway not configured error, got %v", err)
	}
	if _, err := uc.ListOperations(ctx, "tok"); err == nil || err.Error() != "operation repository not configured" {
		t.Fatalf("expected repository not configured error, got %v", err)
	}
}

func TestPaymentMethodUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success records the created token", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		raw := entities.Attributes{"creditCard": map[string]any{"token": "cc-1"}}
		result := &entities.PaymentMethodResult{
			Success:       true,
			PaymentMethod: entities.NewCreditCard(entities.Attributes{"token": "cc-1"}),
			Raw:           raw,
		}
		m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(result, nil)
		m.metrics.EXPECT().ObserveOperation("create", "success", gomock.Any())
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, op entities.PaymentMethodOperation) (entities.PaymentMethodOperation, error) {
				if op.ID == "" || op.Date.IsZero() {
					t.Fatalf("expected id and date to be set, got %+v", op)
				}
				if op.Operation != entities.OperationCreate || op.Token != "cc-1" || !op.Success {
					t.Fatalf("unexpected operation %+v", op)
				}
				if op.PaymentMethodKind != entities.PaymentMethodKindCreditCard {
					t.Fatalf("unexpected kind %q", op.PaymentMethodKind)
				}
				if string(op.ResponseRaw) != `{"creditCard":{"token":"cc-1"}}` {
					t.Fatalf("unexpected raw response %s", op.ResponseRaw)
				}
				return op, nil
			})

		got, err := uc.Create(ctx, entities.Attributes{"paymentMethodNonce": "fake"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != result {
			t.Fatalf("expected gateway result to be returned")
		}
	})

	t.Run("rejected", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		result := &entities.PaymentMethodResult{Success: false, ErrorResponse: &entities.ErrorResponse{Message: "bad"}}
		m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(result, nil)
		m.metrics.EXPECT().ObserveOperation("create", "rejected", gomock.Any())
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, op entities.PaymentMethodOperation) (entities.PaymentMethodOperation, error) {
				if op.Success || op.Token != "" || op.PaymentMethodKind != "" {
					t.Fatalf("unexpected operation %+v", op)
				}
				return op, nil
			})

		got, err := uc.Create(ctx, entities.Attributes{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Success {
			t.Fatalf("expected rejected result")
		}
	})

	t.Run("audit failure does not fail the call", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&entities.PaymentMethodResult{Success: true}, nil)
		m.metrics.EXPECT().ObserveOperation("create", "success", gomock.Any())
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentMethodOperation{}, errors.New("ddb down"))

		if _, err := uc.Create(ctx, entities.Attributes{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentMethodUseCase_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("blank token passes through", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.gateway.EXPECT().Find(gomock.Any(), " ").Return(nil, entities.ErrNotFound)
		m.metrics.EXPECT().ObserveOperation("find", "error", gomock.Any())

		_, err := uc.Find(ctx, " ")
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("processor 404", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.gateway.EXPECT().Find(gomock.Any(), "tok").Return(nil, httpclient.ClassifyStatusCode(404, nil))
		m.metrics.EXPECT().ObserveOperation("find", "error", gomock.Any())

		_, err := uc.Find(ctx, "tok")
		if !errors.Is(err, ErrPaymentGatewayNotFound) {
			t.Fatalf("expected ErrPaymentGatewayNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		pm := entities.NewVenmoAccount(entities.Attributes{"token": "tok"})
		m.gateway.EXPECT().Find(gomock.Any(), "tok").Return(pm, nil)
		m.metrics.EXPECT().ObserveOperation("find", "success", gomock.Any())
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, op entities.PaymentMethodOperation) (entities.PaymentMethodOperation, error) {
				if op.Operation != entities.OperationFind || op.PaymentMethodKind != entities.PaymentMethodKindVenmoAccount {
					t.Fatalf("unexpected operation %+v", op)
				}
				return op, nil
			})

		got, err := uc.Find(ctx, "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != pm {
			t.Fatalf("expected gateway payment method")
		}
	})
}

func TestPaymentMethodUseCase_LifecycleOperations(t *testing.T) {
	ctx := context.Background()
	ok := &entities.PaymentMethodResult{Success: true, PaymentMethodNonce: entities.NewPaymentMethodNonce(entities.Attributes{"nonce": "n"})}

	expectRecord := func(t *testing.T, m useCaseMocks, op entities.OperationType) {
		t.Helper()
		m.metrics.EXPECT().ObserveOperation(string(op), "success", gomock.Any())
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec entities.PaymentMethodOperation) (entities.PaymentMethodOperation, error) {
				if rec.Operation != op || rec.Token != "tok" {
					t.Errorf("unexpected record %+v", rec)
				}
				return rec, nil
			})
	}

	t.Run("update", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.gateway.EXPECT().Update(gomock.Any(), "tok", entities.Attributes{"a": 1}).Return(ok, nil)
		expectRecord(t, m, entities.OperationUpdate)
		if _, err := uc.Update(ctx, "tok", entities.Attributes{"a": 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("grant", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.gateway.EXPECT().Grant(gomock.Any(), "tok", entities.Attributes{"customField": "x"}).Return(ok, nil)
		expectRecord(t, m, entities.OperationGrant)
		if _, err := uc.Grant(ctx, "tok", entities.Attributes{"customField": "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("grant vaulting", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.gateway.EXPECT().GrantVaulting(gomock.Any(), "tok", true).Return(ok, nil)
		expectRecord(t, m, entities.OperationGrant)
		if _, err := uc.GrantVaulting(ctx, "tok", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("revoke", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.gateway.EXPECT().Revoke(gomock.Any(), "tok").Return(&entities.PaymentMethodResult{Success: true}, nil)
		expectRecord(t, m, entities.OperationRevoke)
		if _, err := uc.Revoke(ctx, "tok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		opts := map[string]any{"revokeAllGrants": "true"}
		m.gateway.EXPECT().Delete(gomock.Any(), "tok", opts).Return(nil)
		expectRecord(t, m, entities.OperationDelete)
		if err := uc.Delete(ctx, "tok", opts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete with invalid options", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		invalid := &entities.InvalidKeysError{Keys: []string{"bogus"}}
		m.gateway.EXPECT().Delete(gomock.Any(), "tok", gomock.Any()).Return(invalid)
		m.metrics.EXPECT().ObserveOperation("delete", "error", gomock.Any())

		err := uc.Delete(ctx, "tok", map[string]any{"bogus": 1})
		var got *entities.InvalidKeysError
		if !errors.As(err, &got) {
			t.Fatalf("expected InvalidKeysError, got %v", err)
		}
	})
}

func TestPaymentMethodUseCase_ListOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("blank token", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		if _, err := uc.ListOperations(ctx, "  "); !errors.Is(err, ErrInvalidPaymentMethodToken) {
			t.Fatalf("expected ErrInvalidPaymentMethodToken, got %v", err)
		}
	})

	t.Run("sorted oldest first", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		now := time.Now().UTC()
		m.repo.EXPECT().ListByToken(gomock.Any(), "tok").Return([]entities.PaymentMethodOperation{
			{ID: "b", Date: now.Add(time.Minute)},
			{ID: "a", Date: now},
		}, nil)

		ops, err := uc.ListOperations(ctx, " tok ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ops) != 2 || ops[0].ID != "a" || ops[1].ID != "b" {
			t.Fatalf("unexpected order %+v", ops)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.repo.EXPECT().ListByToken(gomock.Any(), "tok").Return(nil, errors.New("db"))
		if _, err := uc.ListOperations(ctx, "tok"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestMapGatewayError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		target error
	}{
		{"401", httpclient.ClassifyStatusCode(401, nil), ErrPaymentGatewayUnauthorized},
		{"403", httpclient.ClassifyStatusCode(403, nil), ErrPaymentGatewayForbidden},
		{"404", httpclient.ClassifyStatusCode(404, nil), ErrPaymentGatewayNotFound},
		{"426", httpclient.ClassifyStatusCode(426, nil), ErrPaymentGatewayUnavailable},
		{"429", httpclient.ClassifyStatusCode(429, nil), ErrPaymentGatewayUnavailable},
		{"500", httpclient.ClassifyStatusCode(500, nil), ErrPaymentGatewayUnavailable},
		{"503", httpclient.ClassifyStatusCode(503, nil), ErrPaymentGatewayUnavailable},
		{"400", httpclient.ClassifyStatusCode(400, nil), ErrPaymentGatewayBadRequest},
		{"timeout", httpclient.NewTimeoutError(context.DeadlineExceeded), ErrPaymentGatewayUnavailable},
		{"connection", httpclient.NewConnectionError(errors.New("refused")), ErrPaymentGatewayUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapGatewayError(tc.err)
			if !errors.Is(got, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, got)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("expected cause to be kept, got %v", got)
			}
		})
	}

	t.Run("local errors pass through", func(t *testing.T) {
		if got := mapGatewayError(entities.ErrNotFound); got != entities.ErrNotFound {
			t.Fatalf("expected ErrNotFound untouched, got %v", got)
		}
	})
}
