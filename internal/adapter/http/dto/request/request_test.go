package request

import (
	"encoding/json"
	"testing"

	"assessment_frc/internal/domain/entities"
)

func TestPublishSnapshotRequest_ToLineItems(t *testing.T) {
	var r PublishSnapshotRequest
	body := `{"items":[{"id":" l-1 ","origin":"original","category":"labour","unit_price":"80","hours":1.5,"position":2},
{"id":"l-2","origin":"additional","category":"part","unit_price":"12.30","quantity":"3","parent_line_item_id":" l-1 "}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := r.ToLineItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "l-1" || items[0].Category != entities.LineItemCategoryLabour || items[0].Hours.String() != "1.5" || items[0].Position != 2 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].ParentLineItemID != "l-1" || items[1].Origin != entities.LineItemOriginAdditional || items[1].Quantity.String() != "3" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
}

func TestRecordDecisionRequest_ToInput(t *testing.T) {
	var r RecordDecisionRequest
	if err := json.Unmarshal([]byte(`{"status":" Adjusted ","adjusted_value":"180.00","expected_version":3}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput("a-1", "l-1", "assessor-1")
	if in.Status != entities.DecisionStatusAdjusted {
		t.Fatalf("expected adjusted, got %q", in.Status)
	}
	if in.AdjustedValue == nil || in.AdjustedValue.String() != "180" {
		t.Fatalf("unexpected adjusted value %v", in.AdjustedValue)
	}
	if in.ExpectedVersion == nil || *in.ExpectedVersion != 3 {
		t.Fatalf("unexpected expected version %v", in.ExpectedVersion)
	}
	if in.AssessmentID != "a-1" || in.LineItemID != "l-1" || in.Actor != "assessor-1" {
		t.Fatalf("unexpected ids %+v", in)
	}

	var bare RecordDecisionRequest
	_ = json.Unmarshal([]byte(`{"status":"approved"}`), &bare)
	if got := bare.ToInput("a", "l", "u"); got.AdjustedValue != nil || got.ExpectedVersion != nil {
		t.Fatalf("expected no optional fields, got %+v", got)
	}
}

func TestAttachInvoiceRequest_ToInput(t *testing.T) {
	var r AttachInvoiceRequest
	if err := json.Unmarshal([]byte(`{"invoice_document_id":" inv-9 ","invoice_amount":"999.99"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput("a-1", "l-1", "u")
	if in.InvoiceDocumentID != "inv-9" || in.InvoiceAmount.String() != "999.99" {
		t.Fatalf("unexpected input %+v", in)
	}
}
