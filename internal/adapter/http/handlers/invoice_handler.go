package handlers

import (
	request "assessment_frc/internal/adapter/http/dto/request"
	response "assessment_frc/internal/adapter/http/dto/response"
	"assessment_frc/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler links invoice documents to FRC lines. Display only.

type InvoiceHandler struct {
	usecase usecase.IInvoiceAttachmentUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceAttachmentUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// AttachInvoice godoc
// @Summary      Attach an invoice document to a line
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        assessment_id  path    string                        true  "Assessment ID"
// @Param        line_item_id   path    string                        true  "Line item ID"
// @Param        X-Actor-ID     header  string                        true  "Acting user"
// @Param        body           body    request.AttachInvoiceRequest  true  "Invoice"
// @Success      201  {object}  response.InvoiceMatchResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/frc/lines/{line_item_id}/invoices [post]
func (h *InvoiceHandler) AttachInvoice(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		return
	}
	assessmentID := c.Param("assessment_id")
	lineItemID := c.Param("line_item_id")

	var payload request.AttachInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	m, err := h.usecase.AttachInvoice(c.Request.Context(), payload.ToInput(assessmentID, lineItemID, actor))
	if err != nil {
		log.Printf("[frc][handler] attach invoice failed assessment_id=%s line_item_id=%s err=%v", assessmentID, lineItemID, err)
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoiceMatch(m))
}

// ListInvoices godoc
// @Summary      List invoices attached to a line
// @Tags         invoices
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Param        line_item_id   path  string  true  "Line item ID"
// @Success      200  {array}  response.InvoiceMatchResponse
// @Router       /assessments/{assessment_id}/frc/lines/{line_item_id}/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	ms, err := h.usecase.ListInvoices(c.Request.Context(), c.Param("assessment_id"), c.Param("line_item_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceMatches(ms))
}

// GetMatch godoc
// @Summary      Invoice match confidence of a line
// @Tags         invoices
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Param        line_item_id   path  string  true  "Line item ID"
// @Success      200  {object}  response.LineMatchResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/frc/lines/{line_item_id}/match [get]
func (h *InvoiceHandler) GetMatch(c *gin.Context) {
	m, err := h.usecase.ComputeMatchConfidence(c.Request.Context(), c.Param("assessment_id"), c.Param("line_item_id"))
	if err != nil {
		writeError(c, mapFRCError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineMatch(m))
}
