package usecase

import (
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrAlreadySettled                 = errors.New("frc already settled")
)

// ISettlementUseCase pays the repairer once the FRC is closed.
//
// The amount sent to the provider is always the archived New Total; whatever
// transaction_amount the caller puts in the payload is overwritten.

type ISettlementUseCase interface {
	CreateSettlement(ctx context.Context, assessmentID string, providerPayload json.RawMessage) (entities.SettlementPayment, error)
	ListSettlements(ctx context.Context, assessmentID string) ([]entities.SettlementPayment, error)
}

type SettlementUseCase struct {
	repo    interfaces.ISettlementPaymentRepository
	frcRepo interfaces.IFRCRecordRepository
	gateway interfaces.IPaymentGateway
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(repo interfaces.ISettlementPaymentRepository, frcRepo interfaces.IFRCRecordRepository, gateway interfaces.IPaymentGateway) *SettlementUseCase {
	return &SettlementUseCase{repo: repo, frcRepo: frcRepo, gateway: gateway}
}

func (u *SettlementUseCase) CreateSettlement(ctx context.Context, assessmentID string, providerPayload json.RawMessage) (entities.SettlementPayment, error) {
	log.Printf("[settlement][usecase] create start raw_assessment_id=%q payload_len=%d", assessmentID, len(providerPayload))
	mockMode := isPaymentGatewayMockEnabled()
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.SettlementPayment{}, ErrInvalidAssessmentID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[settlement][usecase] invalid payload assessment_id=%s", assessmentID)
			return entities.SettlementPayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if !mockMode && u.gateway == nil {
		return entities.SettlementPayment{}, ErrPaymentGatewayNotConfigured
	}

	rec, err := u.frcRepo.Get(ctx, assessmentID)
	if err != nil {
		log.Printf("[settlement][usecase] failed loading frc record assessment_id=%s err=%v", assessmentID, err)
		return entities.SettlementPayment{}, err
	}
	if !rec.Completed() {
		return entities.SettlementPayment{}, ErrFRCNotCompleted
	}
	if !rec.NewTotal.IsPositive() {
		log.Printf("[settlement][usecase] nothing to settle assessment_id=%s new_total=%s", assessmentID, rec.NewTotal)
		return entities.SettlementPayment{}, ErrNothingToSettle
	}
	amount := rec.NewTotal.Round(entities.MoneyPlaces)

	previous, err := u.repo.ListByAssessmentID(ctx, assessmentID)
	if err != nil {
		log.Printf("[settlement][usecase] failed loading settlements assessment_id=%s err=%v", assessmentID, err)
		return entities.SettlementPayment{}, err
	}
	if active, ok := activeSettlement(previous); ok {
		log.Printf("[settlement][usecase] already settled assessment_id=%s payment_id=%s status=%s", assessmentID, active.ID, active.Status)
		return entities.SettlementPayment{}, ErrAlreadySettled
	}

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		return entities.SettlementPayment{}, ErrInvalidProviderPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[settlement][usecase] missing payment_method_id assessment_id=%s", assessmentID)
			return entities.SettlementPayment{}, ErrInvalidProviderPayload
		}
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[settlement][usecase] missing/invalid payer assessment_id=%s", assessmentID)
			return entities.SettlementPayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = assessmentID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("FRC settlement %s", assessmentID)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.SettlementPayment{}, err
	}

	var providerPaymentID, providerStatus string
	var providerResp json.RawMessage
	if mockMode {
		log.Printf("[settlement][usecase] mock mode enabled; skipping external payment gateway assessment_id=%s", assessmentID)
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[settlement][usecase] payment gateway failed assessment_id=%s err=%v", assessmentID, err)
			return entities.SettlementPayment{}, classifyGatewayError(err)
		}
	}
	if err != nil {
		return entities.SettlementPayment{}, err
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[settlement][usecase] provider response unmarshal failed assessment_id=%s err=%v", assessmentID, err)
	}

	p := entities.SettlementPayment{
		ID:                 providerPaymentID,
		AssessmentID:       assessmentID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// A concurrent request settled first; this provider payment needs a manual refund.
			log.Printf("[settlement][usecase] duplicate settlement refused by store assessment_id=%s payment_id=%s status=%s", assessmentID, p.ID, p.Status)
			return entities.SettlementPayment{}, ErrAlreadySettled
		}
		log.Printf("[settlement][usecase] repository create failed assessment_id=%s payment_id=%s err=%v", assessmentID, p.ID, err)
		return entities.SettlementPayment{}, err
	}
	log.Printf("[settlement][usecase] create success assessment_id=%s payment_id=%s status=%s amount=%s", assessmentID, created.ID, created.Status, created.Amount)
	return created, nil
}

func (u *SettlementUseCase) ListSettlements(ctx context.Context, assessmentID string) ([]entities.SettlementPayment, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return nil, ErrInvalidAssessmentID
	}
	return u.repo.ListByAssessmentID(ctx, assessmentID)
}

func mockProviderResponse(req map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// activeSettlement returns the payment that already settles the FRC. Denied
// payments do not count, so a refused card can be retried.
func activeSettlement(ps []entities.SettlementPayment) (entities.SettlementPayment, bool) {
	for _, p := range ps {
		if p.Status.Active() {
			return p, true
		}
	}
	return entities.SettlementPayment{}, false
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
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

// gatewayErrorRules maps provider error bodies onto sentinels. Order matters:
// the more specific codes come first.
var gatewayErrorRules = []struct {
	target  error
	markers []string
}{
	{ErrPaymentGatewayCustomerNotFound, []string{"customer not found", "\"code\":2002"}},
	{ErrPaymentGatewayInvalidUsers, []string{"invalid users involved", "\"code\":2034"}},
	{ErrPaymentGatewayUnauthorized, []string{"\"error\":\"unauthorized\"", "\"status\":401"}},
	{ErrPaymentGatewayBadRequest, []string{"\"error\":\"bad_request\"", "\"status\":400"}},
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, rule := range gatewayErrorRules {
		for _, marker := range rule.markers {
			if strings.Contains(msg, marker) {
				return rule.target
			}
		}
	}
	return err
}
