package payments

import (
	"context"
	"errors"
	"net/url"

	"payment_method_gateway/internal/domain/entities"
	"payment_method_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrPaymentMethodGatewayNotConfigured = errors.New("payment method gateway not configured")

// PaymentMethodGateway issues payment-method lifecycle calls against
// {basePath}/payment_methods and resolves the responses into typed variants.
type PaymentMethodGateway struct {
	http   interfaces.IHTTPClient
	config interfaces.IMerchantConfig
	logger *zap.Logger
}

var _ interfaces.IPaymentMethodGateway = (*PaymentMethodGateway)(nil)

func NewPaymentMethodGateway(http interfaces.IHTTPClient, config interfaces.IMerchantConfig, logger *zap.Logger) *PaymentMethodGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentMethodGateway{http: http, config: config, logger: logger}
}

func (g *PaymentMethodGateway) Create(ctx context.Context, attributes entities.Attributes) (*entities.PaymentMethodResult, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	g.logger.Debug("[payment_method][gateway] create start", zap.Int("attributes", len(attributes)))

	resp, err := g.http.Post(ctx, g.path("/payment_methods"), map[string]any{
		"paymentMethod": map[string]any(attributes),
	})
	if err != nil {
		g.logger.Warn("[payment_method][gateway] create failed", zap.Error(err))
		return nil, err
	}
	return g.handle("create", resp), nil
}

func (g *PaymentMethodGateway) Find(ctx context.Context, token string) (entities.PaymentMethod, error) {
	if entities.IsBlankToken(token) {
		return nil, entities.ErrNotFound
	}
	if err := g.ready(); err != nil {
		return nil, err
	}
	g.logger.Debug("[payment_method][gateway] find start", zap.String("token", token))

	resp, err := g.http.Get(ctx, g.tokenPath(token))
	if err != nil {
		g.logger.Warn("[payment_method][gateway] find failed", zap.String("token", token), zap.Error(err))
		return nil, err
	}

	pm := ParsePaymentMethod(entities.Attributes(resp))
	g.logger.Debug("[payment_method][gateway] find success", zap.String("token", token), zap.String("kind", string(pm.Kind())))
	return pm, nil
}

func (g *PaymentMethodGateway) Update(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error) {
	if entities.IsBlankToken(token) {
		return nil, entities.ErrNotFound
	}
	if err := g.ready(); err != nil {
		return nil, err
	}
	g.logger.Debug("[payment_method][gateway] update start", zap.String("token", token))

	resp, err := g.http.Put(ctx, g.tokenPath(token), map[string]any{
		"paymentMethod": map[string]any(attributes),
	})
	if err != nil {
		g.logger.Warn("[payment_method][gateway] update failed", zap.String("token", token), zap.Error(err))
		return nil, err
	}
	return g.handle("update", resp), nil
}

// Grant shares token with another merchant. attributes are merged over
// {sharedPaymentMethodToken: token}.
func (g *PaymentMethodGateway) Grant(ctx context.Context, token string, attributes entities.Attributes) (*entities.PaymentMethodResult, error) {
	if entities.IsBlankToken(token) {
		return nil, entities.ErrNotFound
	}
	if err := g.ready(); err != nil {
		return nil, err
	}
	g.logger.Debug("[payment_method][gateway] grant start", zap.String("token", token))

	opts := entities.NewGrantOptions(token, attributes)
	resp, err := g.http.Post(ctx, g.path("/payment_methods/grant"), map[string]any{
		"payment_method": map[string]any(opts),
	})
	if err != nil {
		g.logger.Warn("[payment_method][gateway] grant failed", zap.String("token", token), zap.Error(err))
		return nil, err
	}
	return g.handle("grant", resp), nil
}

// GrantVaulting is Grant with the boolean shorthand {allowVaulting: allowVaulting}.
func (g *PaymentMethodGateway) GrantVaulting(ctx context.Context, token string, allowVaulting bool) (*entities.PaymentMethodResult, error) {
	return g.Grant(ctx, token, entities.AllowVaulting(allowVaulting))
}

func (g *PaymentMethodGateway) Revoke(ctx context.Context, token string) (*entities.PaymentMethodResult, error) {
	if entities.IsBlankToken(token) {
		return nil, entities.ErrNotFound
	}
	if err := g.ready(); err != nil {
		return nil, err
	}
	g.logger.Debug("[payment_method][gateway] revoke start", zap.String("token", token))

	resp, err := g.http.Post(ctx, g.path("/payment_methods/revoke"), map[string]any{
		"payment_method": map[string]any{
			"sharedPaymentMethodToken": token,
		},
	})
	if err != nil {
		g.logger.Warn("[payment_method][gateway] revoke failed", zap.String("token", token), zap.Error(err))
		return nil, err
	}
	return g.handle("revoke", resp), nil
}

// Delete removes token from the vault. options may only carry revokeAllGrants; any
// other key fails with *entities.InvalidKeysError before a request is made.
func (g *PaymentMethodGateway) Delete(ctx context.Context, token string, options map[string]any) error {
	opts, err := entities.ParseDeleteOptions(options)
	if err != nil {
		g.logger.Warn("[payment_method][gateway] delete rejected", zap.String("token", token), zap.Error(err))
		return err
	}
	if err := g.ready(); err != nil {
		return err
	}

	path := g.tokenPath(token)
	if q := opts.Query(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	g.logger.Debug("[payment_method][gateway] delete start", zap.String("token", token), zap.String("path", path))

	if _, err := g.http.Delete(ctx, path); err != nil {
		g.logger.Warn("[payment_method][gateway] delete failed", zap.String("token", token), zap.Error(err))
		return err
	}
	return nil
}

func (g *PaymentMethodGateway) handle(operation string, resp map[string]any) *entities.PaymentMethodResult {
	result := responseHandler()(resp)
	fields := []zap.Field{zap.String("operation", operation), zap.Bool("success", result.Success)}
	if pm := result.Resolved(); pm != nil {
		fields = append(fields, zap.String("kind", string(pm.Kind())))
	}
	g.logger.Debug("[payment_method][gateway] response resolved", fields...)
	return result
}

func (g *PaymentMethodGateway) ready() error {
	if g == nil || g.http == nil || g.config == nil {
		return ErrPaymentMethodGatewayNotConfigured
	}
	return nil
}

func (g *PaymentMethodGateway) path(suffix string) string {
	return g.config.BaseMerchantPath() + suffix
}

func (g *PaymentMethodGateway) tokenPath(token string) string {
	return g.path("/payment_methods/any/" + url.PathEscape(token))
}
