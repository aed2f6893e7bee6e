package handlers

import (
	response "assessment_frc/internal/adapter/http/dto/response"
	"assessment_frc/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FRCHandler serves the reconciled FRC view and its completion.

type FRCHandler struct {
	usecase usecase.IFRCUseCase
}

func NewFRCHandler(uc usecase.IFRCUseCase) *FRCHandler {
	return &FRCHandler{usecase: uc}
}

// GetFRC godoc
// @Summary      Reconcile and return the FRC
// @Description  Seeds missing decisions, then returns lines, groups and totals.
// @Tags         frc
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Success      200  {object}  response.FRCResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/frc [get]
func (h *FRCHandler) GetFRC(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	result, err := h.usecase.Reconcile(c.Request.Context(), assessmentID)
	if err != nil {
		log.Printf("[frc][handler] reconcile failed assessment_id=%s err=%v", assessmentID, err)
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFRCResult(result))
}

// CompleteFRC godoc
// @Summary      Complete the FRC
// @Description  Freezes the FRC once no line is pending and archives the totals.
// @Tags         frc
// @Produce      json
// @Param        assessment_id  path    string  true  "Assessment ID"
// @Param        X-Actor-ID     header  string  true  "Acting user"
// @Success      200  {object}  response.FRCRecordResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/frc/complete [post]
func (h *FRCHandler) CompleteFRC(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	assessmentID := c.Param("assessment_id")
	rec, err := h.usecase.CompleteFRC(c.Request.Context(), assessmentID, actor)
	if err != nil {
		log.Printf("[frc][handler] complete failed assessment_id=%s err=%v", assessmentID, err)
		writeError(c, mapFRCError(err))
		return
	}
	log.Printf("[frc][handler] complete success assessment_id=%s new_total=%s", assessmentID, rec.NewTotal)
	c.JSON(http.StatusOK, response.FromFRCRecord(rec))
}

// GetFRCRecord godoc
// @Summary      Get the FRC archive record
// @Tags         frc
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Success      200  {object}  response.FRCRecordResponse
// @Router       /assessments/{assessment_id}/frc/record [get]
func (h *FRCHandler) GetFRCRecord(c *gin.Context) {
	rec, err := h.usecase.GetFRCRecord(c.Request.Context(), c.Param("assessment_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFRCRecord(rec))
}
