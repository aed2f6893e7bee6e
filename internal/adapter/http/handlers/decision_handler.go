package handlers

import (
	request "assessment_frc/internal/adapter/http/dto/request"
	response "assessment_frc/internal/adapter/http/dto/response"
	"assessment_frc/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DecisionHandler records and reads per-line decisions.

type DecisionHandler struct {
	usecase usecase.IDecisionLedgerUseCase
}

func NewDecisionHandler(uc usecase.IDecisionLedgerUseCase) *DecisionHandler {
	return &DecisionHandler{usecase: uc}
}

// RecordDecision godoc
// @Summary      Record a line decision
// @Description  Approve, decline, adjust or reset a line. Send expected_version to detect concurrent edits.
// @Tags         decisions
// @Accept       json
// @Produce      json
// @Param        assessment_id  path    string                         true  "Assessment ID"
// @Param        line_item_id   path    string                         true  "Line item ID"
// @Param        X-Actor-ID     header  string                         true  "Acting user"
// @Param        body           body    request.RecordDecisionRequest  true  "Decision"
// @Success      200  {object}  response.DecisionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/frc/lines/{line_item_id}/decision [put]
func (h *DecisionHandler) RecordDecision(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	assessmentID := c.Param("assessment_id")
	lineItemID := c.Param("line_item_id")

	var payload request.RecordDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[frc][handler] invalid decision payload assessment_id=%s line_item_id=%s err=%v", assessmentID, lineItemID, err)
		writeError(c, errInvalidRequest)
		return
	}

	d, err := h.usecase.RecordDecision(c.Request.Context(), payload.ToInput(assessmentID, lineItemID, actor))
	if err != nil {
		log.Printf("[frc][handler] record decision failed assessment_id=%s line_item_id=%s err=%v", assessmentID, lineItemID, err)
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(d))
}

// GetDecision godoc
// @Summary      Get a line decision
// @Tags         decisions
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Param        line_item_id   path  string  true  "Line item ID"
// @Success      200  {object}  response.DecisionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/frc/lines/{line_item_id}/decision [get]
func (h *DecisionHandler) GetDecision(c *gin.Context) {
	d, err := h.usecase.GetDecision(c.Request.Context(), c.Param("assessment_id"), c.Param("line_item_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(d))
}

// ListDecisions godoc
// @Summary      List the decision ledger of an assessment
// @Tags         decisions
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Success      200  {array}  response.DecisionResponse
// @Router       /assessments/{assessment_id}/frc/decisions [get]
func (h *DecisionHandler) ListDecisions(c *gin.Context) {
	ds, err := h.usecase.ListDecisions(c.Request.Context(), c.Param("assessment_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDecisions(ds))
}
