package handlers

import (
	"errors"
	"net/http"

	"payment_method_gateway/internal/adapter/http/dto/request"
	"payment_method_gateway/internal/adapter/http/dto/response"
	"payment_method_gateway/internal/domain/entities"
	"payment_method_gateway/internal/usecase"
	"payment_method_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentMethodHandler handles HTTP requests for payment methods.

type PaymentMethodHandler struct {
	usecase usecase.IPaymentMethodUseCase
	logger  *zap.Logger
}

func NewPaymentMethodHandler(uc usecase.IPaymentMethodUseCase, logger *zap.Logger) *PaymentMethodHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentMethodHandler{usecase: uc, logger: logger}
}

// CreatePaymentMethod godoc
// @Summary      Create a payment method
// @Description  Vaults a payment method with the processor. Processor validation failures return 422 with error_response.
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        request body request.PaymentMethodRequest true "Payment method attributes"
// @Success      200 {object} response.PaymentMethodResultResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} response.PaymentMethodResultResponse
// @Failure      503 {object} pkg.HTTPError
// @Router       /payment-methods [post]
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c, "create", "", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.invalidRequest(c, "create", "", err)
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), entities.Attributes(req.PaymentMethod))
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	h.writeResult(c, result)
}

// GetPaymentMethod godoc
// @Summary      Find a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        token path string true "Payment method token"
// @Success      200 {object} response.PaymentMethodResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /payment-methods/{token} [get]
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	token := c.Param("token")

	pm, err := h.usecase.Find(c.Request.Context(), token)
	if err != nil {
		h.fail(c, "find", token, err)
		return
	}
	h.logger.Info("[payment_method][handler] find success", zap.String("token", token), zap.String("kind", string(pm.Kind())))
	c.JSON(http.StatusOK, response.FromPaymentMethod(pm))
}

// UpdatePaymentMethod godoc
// @Summary      Update a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        token   path string true "Payment method token"
// @Param        request body request.PaymentMethodRequest true "Attributes to update"
// @Success      200 {object} response.PaymentMethodResultResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} response.PaymentMethodResultResponse
// @Router       /payment-methods/{token} [put]
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	token := c.Param("token")

	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c, "update", token, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.invalidRequest(c, "update", token, err)
		return
	}

	result, err := h.usecase.Update(c.Request.Context(), token, entities.Attributes(req.PaymentMethod))
	if err != nil {
		h.fail(c, "update", token, err)
		return
	}
	h.writeResult(c, result)
}

// GrantPaymentMethod godoc
// @Summary      Grant a payment method to another merchant
// @Description  Accepts either {"allow_vaulting": bool} or {"attributes": {...}}. An empty body grants with defaults.
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        token   path string true "Payment method token"
// @Param        request body request.GrantRequest false "Grant options"
// @Success      200 {object} response.PaymentMethodResultResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      422 {object} response.PaymentMethodResultResponse
// @Router       /payment-methods/{token}/grant [post]
func (h *PaymentMethodHandler) GrantPaymentMethod(c *gin.Context) {
	token := c.Param("token")

	var req request.GrantRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.invalidRequest(c, "grant", token, err)
			return
		}
	}
	if err := req.Validate(); err != nil {
		h.invalidRequest(c, "grant", token, err)
		return
	}

	var (
		result *entities.PaymentMethodResult
		err    error
	)
	if req.IsVaulting() {
		result, err = h.usecase.GrantVaulting(c.Request.Context(), token, *req.AllowVaulting)
	} else {
		result, err = h.usecase.Grant(c.Request.Context(), token, entities.Attributes(req.Attributes))
	}
	if err != nil {
		h.fail(c, "grant", token, err)
		return
	}
	h.writeResult(c, result)
}

// RevokePaymentMethod godoc
// @Summary      Revoke a granted payment method
// @Tags         payment-methods
// @Produce      json
// @Param        token path string true "Shared payment method token"
// @Success      200 {object} response.PaymentMethodResultResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      422 {object} response.PaymentMethodResultResponse
// @Router       /payment-methods/{token}/revoke [post]
func (h *PaymentMethodHandler) RevokePaymentMethod(c *gin.Context) {
	token := c.Param("token")

	result, err := h.usecase.Revoke(c.Request.Context(), token)
	if err != nil {
		h.fail(c, "revoke", token, err)
		return
	}
	h.writeResult(c, result)
}

// DeletePaymentMethod godoc
// @Summary      Delete a payment method
// @Description  revokeAllGrants is the only accepted query parameter.
// @Tags         payment-methods
// @Param        token           path  string true  "Payment method token"
// @Param        revokeAllGrants query bool   false "Revoke every grant of the payment method"
// @Success      204
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /payment-methods/{token} [delete]
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	token := c.Param("token")
	options := request.DeleteOptionsFromQuery(c.Request.URL.Query())

	if err := h.usecase.Delete(c.Request.Context(), token, options); err != nil {
		h.fail(c, "delete", token, err)
		return
	}
	h.logger.Info("[payment_method][handler] delete success", zap.String("token", token))
	c.Status(http.StatusNoContent)
}

// ListPaymentMethodOperations godoc
// @Summary      List the recorded operations of a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        token path string true "Payment method token"
// @Success      200 {array} response.PaymentMethodOperationResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payment-methods/{token}/operations [get]
func (h *PaymentMethodHandler) ListPaymentMethodOperations(c *gin.Context) {
	token := c.Param("token")

	ops, err := h.usecase.ListOperations(c.Request.Context(), token)
	if err != nil {
		h.fail(c, "list-operations", token, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethodOperations(ops))
}

func (h *PaymentMethodHandler) writeResult(c *gin.Context, result *entities.PaymentMethodResult) {
	status := http.StatusOK
	if result == nil || !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, response.FromPaymentMethodResult(result))
}

func (h *PaymentMethodHandler) invalidRequest(c *gin.Context, operation, token string, err error) {
	h.logger.Warn("[payment_method][handler] invalid request",
		zap.String("operation", operation), zap.String("token", token), zap.Error(err))
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func (h *PaymentMethodHandler) fail(c *gin.Context, operation, token string, err error) {
	appErr := mapPaymentMethodError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[payment_method][handler] "+operation+" failed", zap.String("token", token), zap.Error(err))
	} else {
		h.logger.Warn("[payment_method][handler] "+operation+" failed", zap.String("token", token), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentMethodError(err error) *pkg.AppError {
	var invalidKeys *entities.InvalidKeysError
	switch {
	case errors.As(err, &invalidKeys):
		return pkg.NewDomainErrorSimple("INVALID_OPTIONS", invalidKeys.Error(), http.StatusBadRequest).
			WithDetail("keys", invalidKeys.Keys)
	case errors.Is(err, entities.ErrNotFound), errors.Is(err, usecase.ErrPaymentGatewayNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentMethodToken), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayForbidden):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_FORBIDDEN", "Payment provider forbidden", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
