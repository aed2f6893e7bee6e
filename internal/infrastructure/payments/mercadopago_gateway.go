package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"assessment_frc/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidSettlementAmount = errors.New("settlement transaction_amount must be positive")

// paymentCreator is the part of payment.Client the gateway uses.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

// MercadoPagoGateway pays repairer settlements through Mercado Pago.
// Mock mode is handled by the settlement use case, which never calls the
// gateway while it is on.
type MercadoPagoGateway struct {
	client paymentCreator
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[settlement][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[settlement][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[settlement][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		log.Printf("[settlement][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[settlement][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}
	if req.TransactionAmount <= 0 {
		return "", "", nil, ErrInvalidSettlementAmount
	}
	log.Printf("[settlement][gateway] create start external_reference=%s amount=%.2f", req.ExternalReference, req.TransactionAmount)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[settlement][gateway] sdk create failed external_reference=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[settlement][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[settlement][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return strconv.Itoa(resp.ID), resp.Status, b, nil
}
