package request

import "encoding/json"

// SettlementCreateRequest is the payload of the settlement route.
//
// `provider_payload` is forwarded as-is (raw JSON) to support varying Mercado
// Pago schemas. The amount is always the completed FRC New Total.

type SettlementCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
