package handlers

import (
	"net/http"

	"travelagent/internal/domain"
	"travelagent/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses. Remote provider
// failures map the same way regardless of which provider failed; an
// unreachable provider is a 502 because this service is acting as a gateway
// to it. A compensation failure is a 500: the request failed and the system
// may need operator attention.
func RespondDomainError(c *gin.Context, err error) {
	if re, ok := domain.AsRemote(err); ok {
		switch re.Kind {
		case domain.RemoteBadInput:
			respondError(c, http.StatusBadRequest, "remote_bad_input", err.Error(), nil)
		case domain.RemoteNotFound:
			respondError(c, http.StatusNotFound, "remote_not_found", err.Error(), nil)
		case domain.RemoteConflict:
			respondError(c, http.StatusConflict, "remote_conflict", err.Error(), nil)
		default:
			respondError(c, http.StatusBadGateway, "remote_unavailable", err.Error(), nil)
		}
		return
	}

	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsCompensation(err):
		respondError(c, http.StatusInternalServerError, "compensation_failed", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
