package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assessment_frc/internal/adapter/http/handlers"
	"assessment_frc/internal/adapter/http/handlers/mocks"
	"assessment_frc/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/mock/gomock"
)

type routeMocks struct {
	snapshots   *mocks.MockILineItemSnapshotUseCase
	decisions   *mocks.MockIDecisionLedgerUseCase
	frc         *mocks.MockIFRCUseCase
	invoices    *mocks.MockIInvoiceAttachmentUseCase
	settlements *mocks.MockISettlementUseCase
}

func newTestRouter(t *testing.T) (*gin.Engine, routeMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routeMocks{
		snapshots:   mocks.NewMockILineItemSnapshotUseCase(ctrl),
		decisions:   mocks.NewMockIDecisionLedgerUseCase(ctrl),
		frc:         mocks.NewMockIFRCUseCase(ctrl),
		invoices:    mocks.NewMockIInvoiceAttachmentUseCase(ctrl),
		settlements: mocks.NewMockISettlementUseCase(ctrl),
	}
	h := Handlers{
		Snapshots:   handlers.NewLineItemSnapshotHandler(m.snapshots),
		Decisions:   handlers.NewDecisionHandler(m.decisions),
		FRC:         handlers.NewFRCHandler(m.frc),
		Invoices:    handlers.NewInvoiceHandler(m.invoices),
		Settlements: handlers.NewSettlementHandler(m.settlements),
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "frc_test_total", Help: "test"}))
	return NewRouter(h, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})), m
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)
	w := serve(r, http.MethodGet, "/v1/ping")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	r, _ := newTestRouter(t)
	w := serve(r, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "frc_test_total") {
		t.Fatalf("unexpected metrics response %d %s", w.Code, w.Body.String())
	}
}

func TestNewRouter_FRCRoutes(t *testing.T) {
	r, m := newTestRouter(t)
	m.frc.EXPECT().Reconcile(gomock.Any(), "a-1").Return(entities.FRCResult{AssessmentID: "a-1"}, nil)
	m.frc.EXPECT().GetFRCRecord(gomock.Any(), "a-1").Return(entities.FRCRecord{AssessmentID: "a-1", Status: entities.FRCStatusOpen}, nil)
	m.decisions.EXPECT().ListDecisions(gomock.Any(), "a-1").Return(nil, nil)
	m.decisions.EXPECT().GetDecision(gomock.Any(), "a-1", "l-1").Return(entities.Decision{AssessmentID: "a-1", LineItemID: "l-1", Status: entities.DecisionStatusPending, Version: 1}, nil)
	m.invoices.EXPECT().ListInvoices(gomock.Any(), "a-1", "l-1").Return(nil, nil)
	m.settlements.EXPECT().ListSettlements(gomock.Any(), "a-1").Return(nil, nil)
	m.snapshots.EXPECT().GetSnapshot(gomock.Any(), "a-1").Return(entities.LineItemSnapshot{AssessmentID: "a-1", SnapshotID: "s-1"}, nil)

	paths := []string{
		"/v1/assessments/a-1/frc",
		"/v1/assessments/a-1/frc/record",
		"/v1/assessments/a-1/frc/decisions",
		"/v1/assessments/a-1/frc/lines/l-1/decision",
		"/v1/assessments/a-1/frc/lines/l-1/invoices",
		"/v1/assessments/a-1/settlements",
		"/v1/assessments/a-1/line-items",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			w := serve(r, http.MethodGet, p)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 for %s, got %d body=%s", p, w.Code, w.Body.String())
			}
		})
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)
	w := serve(r, http.MethodGet, "/v1/estimates")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
