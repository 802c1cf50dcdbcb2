package observability

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
)

const tracerName = "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
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

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
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

func (s *Service) ListProducts(ctx context.Context, query catalogports.ListQuery) ([]catalogdomain.Product, error) {
	criteria := query.Criteria
	ctx, span := s.tracer.Start(ctx, "CatalogService.ListProducts", trace.WithAttributes(
		attribute.Bool("catalog.search", criteria.Search != ""),
		attribute.StringSlice("catalog.categories", criteria.Categories),
		attribute.StringSlice("catalog.sizes", criteria.Sizes),
		attribute.StringSlice("catalog.colors", criteria.Colors),
		attribute.Int("catalog.limit", query.Limit),
	))
	defer span.End()

	result, err := s.inner.ListProducts(ctx, query)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("catalog.result.count", len(result)))
	s.metrics.recordFiltered(ctx, criteria, len(result))
	s.logDebug(ctx, "products listed", slog.Int("count", len(result)), slog.String("search", criteria.Search))
	return result, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetProduct", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	result, err := s.inner.GetProduct(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.String("product.id", id))
	}
	return result, nil
}

func (s *Service) Recommendations(ctx context.Context, id string) ([]catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Recommendations", trace.WithAttributes(attribute.String("product.id", id)))
	defer span.End()

	result, err := s.inner.Recommendations(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load recommendations", slog.String("product.id", id))
	}
	span.SetAttributes(attribute.Int("catalog.result.count", len(result)))
	return result, nil
}

func (s *Service) Facets(ctx context.Context) catalogports.Facets {
	return s.inner.Facets(ctx)
}

func (s *Service) logDebug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	queries metric.Int64Counter
	empty   metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	queries, _ := m.Int64Counter("catalog.service.queries", metric.WithDescription("Number of catalog filter queries"))
	empty, _ := m.Int64Counter("catalog.service.empty_results", metric.WithDescription("Number of catalog queries matching no product"))
	return serviceMetrics{queries: queries, empty: empty}
}

func (m serviceMetrics) recordFiltered(ctx context.Context, criteria catalogdomain.Criteria, count int) {
	active := make([]string, 0, 4)
	if strings.TrimSpace(criteria.Search) != "" {
		active = append(active, "search")
	}
	if len(criteria.Categories) > 0 {
		active = append(active, string(catalogdomain.DimensionCategory))
	}
	if len(criteria.Sizes) > 0 {
		active = append(active, string(catalogdomain.DimensionSize))
	}
	if len(criteria.Colors) > 0 {
		active = append(active, string(catalogdomain.DimensionColor))
	}
	attrs := metric.WithAttributes(attribute.String("catalog.predicates", strings.Join(active, ",")))
	if m.queries != nil {
		m.queries.Add(ctx, 1, attrs)
	}
	if count == 0 && m.empty != nil {
		m.empty.Add(ctx, 1, attrs)
	}
}

var _ catalogports.Service = (*Service)(nil)
