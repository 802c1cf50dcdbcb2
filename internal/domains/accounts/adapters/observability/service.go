package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	accountdomain "github.com/Apurer/go-gin-storefront/internal/domains/accounts/domain"
	accountports "github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
)

const tracerName = "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/observability/service"

// Service decorates the accounts service with tracing, logging, and metrics.
type Service struct {
	inner   accountports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) { s.metrics = newServiceMetrics(m) }
}

// New wraps the core accounts service.
func New(inner accountports.Service, opts ...Option) accountports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

func (s *Service) Login(ctx context.Context, sessionID string, form accountdomain.LoginForm) (accountports.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "AccountService.Login", trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()
	out, err := s.inner.Login(ctx, sessionID, form)
	if err != nil {
		s.metrics.recordRejected(ctx, "login")
		return out, s.handleError(ctx, span, err, "login failed", slog.String("session.id", sessionID))
	}
	s.metrics.recordLogin(ctx, "login")
	s.logger.LogAttrs(ctx, slog.LevelInfo, "shopper logged in", slog.String("session.id", sessionID))
	return out, nil
}

func (s *Service) Signup(ctx context.Context, sessionID string, form accountdomain.SignupForm) (accountports.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "AccountService.Signup", trace.WithAttributes(
		attribute.String("session.id", sessionID),
		attribute.String("account.kind", string(form.Kind)),
	))
	defer span.End()
	out, err := s.inner.Signup(ctx, sessionID, form)
	if err != nil {
		s.metrics.recordRejected(ctx, "signup")
		return out, s.handleError(ctx, span, err, "signup failed", slog.String("session.id", sessionID), slog.String("account.kind", string(form.Kind)))
	}
	s.metrics.recordLogin(ctx, "signup")
	s.logger.LogAttrs(ctx, slog.LevelInfo, "shopper signed up", slog.String("session.id", sessionID), slog.String("username", out.Subject))
	return out, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "AccountService.Logout", trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()
	if err := s.inner.Logout(ctx, sessionID); err != nil {
		return s.handleError(ctx, span, err, "logout failed", slog.String("session.id", sessionID))
	}
	return nil
}

func (s *Service) IsAuthenticated(ctx context.Context, sessionID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "AccountService.IsAuthenticated", trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()
	ok, err := s.inner.IsAuthenticated(ctx, sessionID)
	if err != nil {
		return false, s.handleError(ctx, span, err, "session lookup failed", slog.String("session.id", sessionID))
	}
	span.SetAttributes(attribute.Bool("session.authenticated", ok))
	return ok, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	return err
}

type serviceMetrics struct {
	logins   metric.Int64Counter
	rejected metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	logins, _ := m.Int64Counter("accounts.service.logins", metric.WithDescription("Number of sessions logged in"))
	rejected, _ := m.Int64Counter("accounts.service.rejected", metric.WithDescription("Number of rejected login or signup forms"))
	return serviceMetrics{logins: logins, rejected: rejected}
}

func (m serviceMetrics) recordLogin(ctx context.Context, via string) {
	if m.logins != nil {
		m.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("accounts.via", via)))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context, via string) {
	if m.rejected != nil {
		m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("accounts.via", via)))
	}
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var _ accountports.Service = (*Service)(nil)
