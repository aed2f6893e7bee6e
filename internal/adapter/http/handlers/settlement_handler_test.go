package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"assessment_frc/internal/adapter/http/handlers/mocks"
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newSettlementRouter(t *testing.T) (*gin.Engine, *mocks.MockISettlementUseCase) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISettlementUseCase(ctrl)
	h := NewSettlementHandler(uc)

	r := gin.New()
	r.POST("/v1/assessments/:assessment_id/settlements", h.CreateSettlement)
	r.GET("/v1/assessments/:assessment_id/settlements", h.ListSettlements)
	return r, uc
}

func TestSettlementHandler_CreateSettlement(t *testing.T) {
	const path = "/v1/assessments/a-1/settlements"

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newSettlementRouter(t)
		w := doRequest(r, http.MethodPost, path, `{"payer":`, "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("invalid json in mock mode falls back to empty payload", func(t *testing.T) {
		r, uc := newSettlementRouter(t)
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		uc.EXPECT().CreateSettlement(gomock.Any(), "a-1", json.RawMessage("{}")).Return(entities.SettlementPayment{ID: "p-1", AssessmentID: "a-1", Status: entities.PaymentStatusApproved}, nil)

		w := doRequest(r, http.MethodPost, path, `{"payer":`, "")
		expectStatus(t, w, http.StatusOK)
	})

	t.Run("wrapped payload is unwrapped", func(t *testing.T) {
		r, uc := newSettlementRouter(t)
		uc.EXPECT().CreateSettlement(gomock.Any(), "a-1", gomock.Any()).DoAndReturn(func(_ any, _ string, payload json.RawMessage) (entities.SettlementPayment, error) {
			if string(payload) != `{"payment_method_id":"pix"}` {
				t.Fatalf("unexpected payload %s", payload)
			}
			return entities.SettlementPayment{ID: "p-1", AssessmentID: "a-1", Amount: decimal.RequireFromString("680"), Status: entities.PaymentStatusPending}, nil
		})

		w := doRequest(r, http.MethodPost, path, `{"provider_payload":{"payment_method_id":"pix"}}`, "")
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["payment_id"] != "p-1" || body["amount"] != "680.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("null wrapped payload", func(t *testing.T) {
		r, _ := newSettlementRouter(t)
		w := doRequest(r, http.MethodPost, path, `{"provider_payload":null}`, "")
		expectStatus(t, w, http.StatusBadRequest)
	})

	errCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"frc open", usecase.ErrFRCNotCompleted, http.StatusConflict, "FRC_NOT_COMPLETED"},
		{"nothing to settle", usecase.ErrNothingToSettle, http.StatusUnprocessableEntity, "NOTHING_TO_SETTLE"},
		{"already settled", usecase.ErrAlreadySettled, http.StatusConflict, "FRC_ALREADY_SETTLED"},
		{"gateway not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_NOT_CONFIGURED"},
		{"gateway unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{"storage failure", errFake, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newSettlementRouter(t)
			uc.EXPECT().CreateSettlement(gomock.Any(), "a-1", gomock.Any()).Return(entities.SettlementPayment{}, tc.err)

			w := doRequest(r, http.MethodPost, path, `{}`, "")
			expectStatus(t, w, tc.status)
			if decodeBody(t, w)["code"] != tc.code {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

func TestSettlementHandler_ListSettlements(t *testing.T) {
	r, uc := newSettlementRouter(t)
	uc.EXPECT().ListSettlements(gomock.Any(), "a-1").Return([]entities.SettlementPayment{
		{ID: "p-1", AssessmentID: "a-1", Amount: decimal.RequireFromString("10"), Status: entities.PaymentStatusApproved},
	}, nil)

	w := doRequest(r, http.MethodGet, "/v1/assessments/a-1/settlements", "", "")
	expectStatus(t, w, http.StatusOK)
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0]["status"] != "approved" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
