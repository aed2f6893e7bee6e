package handlers

import (
	request "assessment_frc/internal/adapter/http/dto/request"
	response "assessment_frc/internal/adapter/http/dto/response"
	"assessment_frc/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LineItemSnapshotHandler receives line item snapshots from the Estimate and
// Additionals services.

type LineItemSnapshotHandler struct {
	usecase usecase.ILineItemSnapshotUseCase
}

func NewLineItemSnapshotHandler(uc usecase.ILineItemSnapshotUseCase) *LineItemSnapshotHandler {
	return &LineItemSnapshotHandler{usecase: uc}
}

// PublishSnapshot godoc
// @Summary      Publish line item snapshot
// @Description  Replaces the line items of an assessment. Decisions are kept.
// @Tags         line-items
// @Accept       json
// @Produce      json
// @Param        assessment_id  path  string                          true  "Assessment ID"
// @Param        body           body  request.PublishSnapshotRequest  true  "Snapshot"
// @Success      200  {object}  response.LineItemSnapshotResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/line-items [put]
func (h *LineItemSnapshotHandler) PublishSnapshot(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	var payload request.PublishSnapshotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[frc][handler] invalid snapshot payload assessment_id=%s err=%v", assessmentID, err)
		writeError(c, errInvalidRequest)
		return
	}

	snapshot, err := h.usecase.PublishSnapshot(c.Request.Context(), assessmentID, payload.ToLineItems())
	if err != nil {
		log.Printf("[frc][handler] publish snapshot failed assessment_id=%s err=%v", assessmentID, err)
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItemSnapshot(snapshot))
}

// GetSnapshot godoc
// @Summary      Get line item snapshot
// @Tags         line-items
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Success      200  {object}  response.LineItemSnapshotResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/line-items [get]
func (h *LineItemSnapshotHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.usecase.GetSnapshot(c.Request.Context(), c.Param("assessment_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItemSnapshot(snapshot))
}
