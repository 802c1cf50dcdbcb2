package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	cartapp "github.com/Apurer/go-gin-storefront/internal/domains/cart/application"
	cartdomain "github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

const tracerName = "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/observability/service"

// Service decorates the cart service with tracing and logging.
type Service struct {
	inner  cartports.Service
	tracer trace.Tracer
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// New wraps the core cart service.
func New(inner cartports.Service, opts ...Option) cartports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) AddToCart(ctx context.Context, sessionID string, req cartports.AddItem) (*cartports.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddToCart", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("product.id", req.ProductID),
		attribute.Int("cart.quantity", req.Quantity),
	))
	defer span.End()

	s.logInfo(ctx, "adding to cart", slog.String("session.id", sessionID), slog.String("product.id", req.ProductID),
		slog.String("color", req.Color), slog.String("size", req.Size), slog.Int("quantity", req.Quantity))
	result, err := s.inner.AddToCart(ctx, sessionID, req)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add to cart", slog.String("session.id", sessionID), slog.String("product.id", req.ProductID))
	}
	span.SetAttributes(attribute.Int("cart.unique_items", result.Totals.UniqueItems))
	return result, nil
}

func (s *Service) RemoveFromCart(ctx context.Context, sessionID, cartID string) (*cartports.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveFromCart", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("cart.id", cartID),
	))
	defer span.End()

	s.logInfo(ctx, "removing from cart", slog.String("session.id", sessionID), slog.String("cart.id", cartID))
	result, err := s.inner.RemoveFromCart(ctx, sessionID, cartID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to remove from cart", slog.String("session.id", sessionID), slog.String("cart.id", cartID))
	}
	return result, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, cartID string, delta int) (*cartports.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.UpdateQuantity", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("cart.id", cartID),
		attribute.Int("cart.delta", delta),
	))
	defer span.End()

	result, err := s.inner.UpdateQuantity(ctx, sessionID, cartID, delta)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update cart quantity", slog.String("session.id", sessionID), slog.String("cart.id", cartID))
	}
	return result, nil
}

func (s *Service) Cart(ctx context.Context, sessionID string) (*cartports.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.Cart", trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()

	result, err := s.inner.Cart(ctx, sessionID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load cart", slog.String("session.id", sessionID))
	}
	span.SetAttributes(attribute.Int("cart.quantity", result.Totals.Quantity))
	return result, nil
}

func (s *Service) Notification(ctx context.Context, sessionID string) (cartdomain.Notification, bool) {
	return s.inner.Notification(ctx, sessionID)
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

// MutationRecorder returns a cart observer that counts applied mutations
// and added units by kind.
func MutationRecorder(m metric.Meter) cartapp.Observer {
	if m == nil {
		return func(context.Context, cartdomain.Change) error { return nil }
	}
	mutations, _ := m.Int64Counter("cart.store.mutations", metric.WithDescription("Number of applied cart mutations"))
	units, _ := m.Int64Counter("cart.store.units_added", metric.WithDescription("Number of units added to carts"))
	lines, _ := m.Int64Histogram("cart.store.lines", metric.WithDescription("Distinct lines in a cart after a mutation"))
	return func(ctx context.Context, change cartdomain.Change) error {
		kind := metric.WithAttributes(attribute.String("cart.change", string(change.Kind)))
		if mutations != nil {
			mutations.Add(ctx, 1, kind)
		}
		if change.Kind == cartdomain.ChangeAdded && units != nil {
			units.Add(ctx, int64(change.Quantity))
		}
		if lines != nil {
			lines.Record(ctx, int64(len(change.Items)), kind)
		}
		return nil
	}
}

var _ cartports.Service = (*Service)(nil)
