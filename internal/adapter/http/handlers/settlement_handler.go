package handlers

import (
	response "assessment_frc/internal/adapter/http/dto/response"
	"assessment_frc/internal/usecase"
	"assessment_frc/pkg"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// SettlementHandler pays the repairer the final New Total of a completed FRC.

type SettlementHandler struct {
	usecase usecase.ISettlementUseCase
}

func NewSettlementHandler(uc usecase.ISettlementUseCase) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// CreateSettlement godoc
// @Summary      Settle a completed FRC
// @Description  Pays the stored New Total through the payment provider. The body is the provider payload, optionally wrapped in provider_payload.
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Success      200  {object}  response.SettlementResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /assessments/{assessment_id}/settlements [post]
func (h *SettlementHandler) CreateSettlement(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	log.Printf("[settlement][handler] create start assessment_id=%s", assessmentID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[settlement][handler] payload invalid in mock mode; fallback to empty payload assessment_id=%s err=%v", assessmentID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[settlement][handler] invalid payload assessment_id=%s err=%v", assessmentID, err)
			writeError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.CreateSettlement(c.Request.Context(), assessmentID, payload)
	if err != nil {
		log.Printf("[settlement][handler] create failed assessment_id=%s err=%v", assessmentID, err)
		writeError(c, mapSettlementError(err))
		return
	}
	log.Printf("[settlement][handler] create success assessment_id=%s payment_id=%s status=%s", assessmentID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromSettlement(created))
}

// ListSettlements godoc
// @Summary      List settlements of an assessment
// @Tags         settlements
// @Produce      json
// @Param        assessment_id  path  string  true  "Assessment ID"
// @Success      200  {array}  response.SettlementResponse
// @Router       /assessments/{assessment_id}/settlements [get]
func (h *SettlementHandler) ListSettlements(c *gin.Context) {
	assessmentID := c.Param("assessment_id")
	payments, err := h.usecase.ListSettlements(c.Request.Context(), assessmentID)
	if err != nil {
		log.Printf("[settlement][handler] list failed assessment_id=%s err=%v", assessmentID, err)
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlements(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrFRCNotCompleted):
		return pkg.NewDomainErrorSimple("FRC_NOT_COMPLETED", "The FRC must be completed before settlement", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToSettle):
		return pkg.NewDomainErrorSimple("NOTHING_TO_SETTLE", "The FRC New Total is not positive, nothing to settle", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAlreadySettled):
		return pkg.NewDomainErrorSimple("FRC_ALREADY_SETTLED", "This FRC was already settled", http.StatusConflict)
	default:
		return mapFRCError(err)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
