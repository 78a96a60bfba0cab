package routes

import (
	"payment_method_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaymentMethods = "/payment-methods"
)

func addPaymentMethodRoutes(rg *gin.RouterGroup, handler *handlers.PaymentMethodHandler) {
	paymentMethods := rg.Group(PathPaymentMethods)
	{
		paymentMethods.POST("", handler.CreatePaymentMethod)
		paymentMethods.GET("/:token", handler.GetPaymentMethod)
		paymentMethods.PUT("/:token", handler.UpdatePaymentMethod)
		paymentMethods.DELETE("/:token", handler.DeletePaymentMethod)
		paymentMethods.POST("/:token/grant", handler.GrantPaymentMethod)
		paymentMethods.POST("/:token/revoke", handler.RevokePaymentMethod)
		paymentMethods.GET("/:token/operations", handler.ListPaymentMethodOperations)
	}
}
