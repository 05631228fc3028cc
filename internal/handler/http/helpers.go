package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PaulBilal/Edunova-School-System/internal/handler/http/dto"
	"github.com/PaulBilal/Edunova-School-System/internal/usecase"
	usecasecontract "github.com/PaulBilal/Edunova-School-System/internal/usecase/contract"
)

const msgInvalidBody = "Invalid request body"

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// BindJSON binds the request body and answers 400 on malformed input.
func BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, msgInvalidBody)
		return err
	}
	return nil
}

// StatusForKind maps a use case error kind to an HTTP status.
func StatusForKind(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindBadRequest, usecase.KindConflict:
		return http.StatusBadRequest
	case usecase.KindUnauthorized:
		return http.StatusUnauthorized
	case usecase.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as {"message": ...}. Unclassified and internal
// errors are logged and answered with a generic message.
func RespondError(c *gin.Context, logger usecasecontract.IAppLogger, err error) {
	var appErr *usecase.AppError
	if !errors.As(err, &appErr) {
		appErr = usecase.NewInternal(err)
	}
	status := StatusForKind(appErr.Kind)
	if status == http.StatusInternalServerError {
		logger.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		_ = c.Error(err)
	}
	ErrorHandler(c, status, appErr.Message)
}
