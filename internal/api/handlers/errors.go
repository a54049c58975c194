package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "field-ops-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status. Conflict-family
// errors (already exists, state machine, capacity, scheduling) come back as
// 409; a scheduling conflict additionally carries the conflicting event ids.
func respondError(c *gin.Context, err error, fallback string) {
	var conflictErr *apperrors.SchedulingConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     conflictErr.Error(),
			"conflicts": conflictErr.Conflicts,
		})
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsTenantMismatch(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err),
		apperrors.IsInvalidState(err),
		apperrors.IsIllegalTransition(err),
		apperrors.IsCapacityExceeded(err),
		apperrors.IsNoSlotAvailable(err),
		errors.Is(err, apperrors.ErrKitWouldBeEmpty),
		errors.Is(err, apperrors.ErrKitReferenced),
		errors.Is(err, apperrors.ErrKitInactive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrReasonRequired),
		errors.Is(err, apperrors.ErrInvalidEventType),
		errors.Is(err, apperrors.ErrInvalidStatus),
		strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}
