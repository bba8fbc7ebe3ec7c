// File: controllers/errors.go
package controllers

import (
	"errors"
	"net/http"

	"trading-cards-admin/services"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidDecision),
		errors.Is(err, services.ErrNotConfirmed):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAlreadyReviewed),
		errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrOrchestratorFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
