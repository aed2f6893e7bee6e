package handlers

import (
	"assessment_frc/internal/usecase"
	"assessment_frc/pkg"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const HeaderActorID = "X-Actor-ID"

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errMissingActor   = pkg.NewDomainErrorSimple("MISSING_ACTOR", "The X-Actor-ID header is required", http.StatusBadRequest)
)

// mapFRCError turns use case errors into the API envelope. Invariant and
// unknown errors keep their detail in Err, which is only logged.
func mapFRCError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidLineItemID),
		errors.Is(err, usecase.ErrInvalidActor), errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrInvalidSnapshot), errors.Is(err, usecase.ErrInvalidInvoice):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrSnapshotNotFound):
		return pkg.NewDomainErrorSimple("SNAPSHOT_NOT_FOUND", "No line items were published for this assessment", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound), errors.Is(err, usecase.ErrDecisionNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "This line is no longer part of the estimate, please refresh", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "This line was already updated by someone else, please refresh", http.StatusConflict)
	case errors.Is(err, usecase.ErrLineItemNotEditable):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_EDITABLE", "This line is locked and cannot be changed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFRCHasPendingLines):
		return pkg.NewDomainErrorSimple("FRC_HAS_PENDING_LINES", "All lines must be decided before completing the FRC", http.StatusConflict)
	case errors.Is(err, usecase.ErrFRCAlreadyCompleted):
		return pkg.NewDomainErrorSimple("FRC_ALREADY_COMPLETED", "The FRC for this assessment is already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrReconciliationInvariant):
		return pkg.NewDomainError("RECONCILIATION_INVARIANT", "An internal error occurred", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		log.Printf("[frc][handler] internal error code=%s err=%v", appErr.Code, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actorID reads the acting user from the X-Actor-ID header. Authentication is
// done upstream; the header is trusted.
func actorID(c *gin.Context) (string, bool) {
	actor := strings.TrimSpace(c.GetHeader(HeaderActorID))
	if actor == "" {
		writeError(c, errMissingActor)
		return "", false
	}
	return actor, true
}
