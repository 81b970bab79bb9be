package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	portssvc "github.com/SscSPs/tip_pooling_app/internal/core/ports/services"
	"github.com/SscSPs/tip_pooling_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required access level in a company
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, companyID string, required domain.AccessLevel) error {
	if s.CompanyAuthorizer != nil {
		if err := s.CompanyAuthorizer.AuthorizeUserAction(ctx, userID, companyID, required); err != nil {
			s.LogWarn(ctx, "Authorization failed",
				slog.String("user_id", userID),
				slog.String("company_id", companyID),
				slog.String("required_access", string(required)),
				slog.String("error", err.Error()))
			return err
		}
		return nil
	}
	s.LogDebug(ctx, "No company authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.String("required_access", string(required)))
	return nil
}
