package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"zambus/internal/domain"
	"zambus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"error":      message,
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["details"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// paramID parses the :id path parameter.
func paramID(c *gin.Context) (domain.ID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid id", nil)
		return 0, false
	}
	return domain.ID(id), true
}

// confirmed reports whether the caller acknowledged a destructive action.
func confirmed(c *gin.Context) bool {
	ok, _ := strconv.ParseBool(strings.TrimSpace(c.Query("confirm")))
	return ok
}

type statusPayload struct {
	Status string `json:"status"`
}

func asValidation(err error) (domain.ValidationError, bool) {
	var ve domain.ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func sendPDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
