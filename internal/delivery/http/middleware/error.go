package middleware

import (
	"errors"
	"fmt"

	"codecraft/internal/pkg/logger"
	"codecraft/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger logger.Logger
}

func NewErrorMiddleware(log logger.Logger) *ErrorMiddleware {
	if log == nil {
		log = logger.NewNop()
	}
	return &ErrorMiddleware{logger: log}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", fmt.Errorf("%v", r),
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Error("request failed", err,
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
			)
		}
		return response.Error(c, status, msg, data)
	}
}

// normalizeError maps any handler error onto the response envelope. 5xx
// details never leave the process; 502 and 503 keep their status with a
// fixed message so clients can tell an outage from a bug.
func normalizeError(err error) (int, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if status, msg, masked := serverError(appErr.StatusCode); masked {
			return status, msg, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessage(appErr.StatusCode)
		}
		return appErr.StatusCode, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if status, msg, masked := serverError(fiberErr.Code); masked {
			return status, msg, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessage(fiberErr.Code)
		}
		return fiberErr.Code, msg, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

func serverError(status int) (int, string, bool) {
	switch {
	case status == fiber.StatusBadGateway, status == fiber.StatusServiceUnavailable:
		return status, response.DefaultMessage(status), true
	case status <= 0, status >= 500:
		return fiber.StatusInternalServerError, response.MessageInternalServerError, true
	}
	return status, "", false
}
