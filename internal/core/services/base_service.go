package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/printkit/pricelist_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or returns the default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// isValidRate reports whether rate fits NUMERIC(16,8) and is positive: at most
// 8 fractional digits and an integer part below 10^8.
func isValidRate(rate decimal.Decimal) bool {
	if !rate.IsPositive() {
		return false
	}
	if !rate.Equal(rate.Round(8)) {
		return false
	}
	return rate.LessThan(decimal.New(1, 8))
}

// isValidPrice reports whether price fits NUMERIC(8,2) and is non-negative: at
// most 2 fractional digits and an integer part below 10^6.
func isValidPrice(price decimal.Decimal) bool {
	if price.IsNegative() {
		return false
	}
	if !price.Equal(price.Round(2)) {
		return false
	}
	return price.LessThan(decimal.New(1, 6))
}
