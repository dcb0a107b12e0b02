package handler

import (
	stdErrors "errors"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/errors"
	"github.com/johnquangdev/interview-coach/internal/adapter/dto/common"
)

// getRequestID reads the request id set by the RequestID middleware or the client
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data with the given status and logs the response
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}
	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging using provided logger.
// Errors that are not an AppError become 500 INTERNAL.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", appErr.HTTPCode),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.IsServerError() {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	if appErr.IsServerError() {
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("app_code", appErr.Code.String())
				scope.SetTag("request_id", getRequestID(c))
				hub.CaptureException(err)
			})
		}
	}

	info := ""
	if appErr.Raw != nil && !appErr.IsServerError() {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Code:    appErr.Code.String(),
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	})
}

// bindAndValidate decodes the request body into req and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload().WithDetail("reason", bindReason(err))
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if stdErrors.As(err, &verrs) {
			appErr := errors.ErrValidationFailed(err)
			for _, fe := range verrs {
				appErr = appErr.WithDetail(fe.Namespace(), fe.Tag())
			}
			return appErr
		}
		return errors.ErrValidationFailed(err)
	}
	return nil
}

func bindReason(err error) string {
	var he *echo.HTTPError
	if stdErrors.As(err, &he) {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
