package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/admitboard/admitboard-api/internal/observability"
)

// ErrResetUnauthorized indicates the reset token is configured and the
// caller supplied a different one.
var ErrResetUnauthorized = errors.New("invalid reset token")

// AdminStore is the slice of the data access layer the admin service needs.
type AdminStore interface {
	Reset(ctx context.Context) error
}

// AdminService performs the destructive schema reset.
type AdminService interface {
	Reset(ctx context.Context, token string) error
}

type adminService struct {
	store  AdminStore
	token  string
	logger zerolog.Logger
}

// NewAdminService constructs the admin service. An empty token leaves the
// reset endpoint unguarded.
func NewAdminService(store AdminStore, token string, logger zerolog.Logger) AdminService {
	return &adminService{
		store:  store,
		token:  strings.TrimSpace(token),
		logger: logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) Reset(ctx context.Context, token string) error {
	if s.token != "" && subtle.ConstantTimeCompare([]byte(s.token), []byte(strings.TrimSpace(token))) != 1 {
		return ErrResetUnauthorized
	}

	tracer := otel.Tracer("github.com/admitboard/admitboard-api/internal/service/admin")
	ctx, span := tracer.Start(ctx, "admin.reset")
	defer span.End()

	s.logger.Warn().Msg("schema reset requested")

	if err := s.store.Reset(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reset_failed")
		s.logger.Error().Err(err).Msg("schema reset failed")
		return err
	}

	observability.SchemaResets().Inc()
	s.logger.Warn().Msg("schema reset completed")
	return nil
}
