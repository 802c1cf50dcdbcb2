package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	reviewdomain "github.com/Apurer/go-gin-storefront/internal/domains/reviews/domain"
	reviewports "github.com/Apurer/go-gin-storefront/internal/domains/reviews/ports"
)

const tracerName = "github.com/Apurer/go-gin-storefront/internal/domains/reviews/adapters/observability/service"

// Service decorates the review service with tracing, logging, and a
// counter of posted reviews.
type Service struct {
	inner  reviewports.Service
	tracer trace.Tracer
	logger *slog.Logger
	posted metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		if m != nil {
			s.posted, _ = m.Int64Counter("reviews.service.posted", metric.WithDescription("Number of reviews posted"))
		}
	}
}

func New(inner reviewports.Service, opts ...Option) reviewports.Service {
	s := &Service{inner: inner}
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

func (s *Service) Mount(ctx context.Context, sessionID, productID string) ([]reviewdomain.Review, error) {
	ctx, span := s.start(ctx, "ReviewService.Mount", sessionID, productID)
	defer span.End()
	list, err := s.inner.Mount(ctx, sessionID, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to mount reviews", productID)
	}
	return list, nil
}

func (s *Service) List(ctx context.Context, sessionID, productID string) ([]reviewdomain.Review, error) {
	ctx, span := s.start(ctx, "ReviewService.List", sessionID, productID)
	defer span.End()
	list, err := s.inner.List(ctx, sessionID, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list reviews", productID)
	}
	span.SetAttributes(attribute.Int("reviews.count", len(list)))
	return list, nil
}

func (s *Service) Add(ctx context.Context, sessionID, productID string, draft reviewdomain.Draft) (reviewdomain.Review, error) {
	ctx, span := s.start(ctx, "ReviewService.Add", sessionID, productID)
	defer span.End()
	review, err := s.inner.Add(ctx, sessionID, productID, draft)
	if err != nil {
		return review, s.handleError(ctx, span, err, "failed to add review", productID)
	}
	if s.posted != nil {
		s.posted.Add(ctx, 1, metric.WithAttributes(attribute.Int("reviews.rating", review.Rating)))
	}
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "review posted",
			slog.String("product.id", productID), slog.String("review.id", review.ID), slog.Int("rating", review.Rating))
	}
	return review, nil
}

func (s *Service) start(ctx context.Context, name, sessionID, productID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("product.id", productID),
	))
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg, productID string) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("product.id", productID), slog.String("error", err.Error()))
	}
	return err
}

var _ reviewports.Service = (*Service)(nil)
