package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payment_method_gateway/internal/adapter/http/handlers"
	"payment_method_gateway/internal/adapter/http/handlers/mocks"
	"payment_method_gateway/internal/domain/entities"
	"payment_method_gateway/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) (*gin.Engine, *mocks.MockIPaymentMethodUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentMethodUseCase(ctrl)
	logger := zap.NewNop()
	return setupRouter(logger, metrics.New(), handlers.NewPaymentMethodHandler(uc, logger)), uc
}

func TestSetupRouter_Ping(t *testing.T) {
	r, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PathV1+PathPing, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if w.Header().Get(headerRequestID) == "" {
		t.Fatalf("expected %s header to be generated", headerRequestID)
	}
}

func TestSetupRouter_RequestIDPropagated(t *testing.T) {
	r, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, PathV1+PathPing, nil)
	req.Header.Set(headerRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
}

func TestSetupRouter_NoRoute(t *testing.T) {
	r, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v2/nothing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ROUTE_NOT_FOUND") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestSetupRouter_PaymentMethodRoutes(t *testing.T) {
	r, uc := newTestEngine(t)
	card := entities.NewCreditCard(entities.Attributes{"token": "tok-1"})
	uc.EXPECT().Find(gomock.Any(), "tok-1").Return(card, nil)
	uc.EXPECT().Revoke(gomock.Any(), "tok-1").Return(&entities.PaymentMethodResult{Success: true}, nil)
	uc.EXPECT().Delete(gomock.Any(), "tok-1", gomock.Nil()).Return(nil)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, PathV1 + PathPaymentMethods + "/tok-1", http.StatusOK},
		{http.MethodPost, PathV1 + PathPaymentMethods + "/tok-1/revoke", http.StatusOK},
		{http.MethodDelete, PathV1 + PathPaymentMethods + "/tok-1", http.StatusNoContent},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.status, w.Code)
		}
	}
}

func TestSetupRouter_Metrics(t *testing.T) {
	r, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PathV1+PathPing, nil))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PathMetrics, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `route="/v1/ping"`) {
		t.Fatalf("expected ping request to be counted, got:\n%s", w.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(recovery(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
