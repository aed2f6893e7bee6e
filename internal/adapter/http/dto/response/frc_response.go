package response

import (
	"assessment_frc/internal/domain/entities"
	"time"
)

type FRCLineResponse struct {
	LineItemID         string   `json:"line_item_id"`
	Origin             string   `json:"origin"`
	Category           string   `json:"category"`
	Description        string   `json:"description"`
	ParentLineItemID   string   `json:"parent_line_item_id,omitempty"`
	DisplayStatus      string   `json:"display_status"`
	DecisionStatus     string   `json:"decision_status"`
	DecisionVersion    int64    `json:"decision_version"`
	BaselineAmount     string   `json:"baseline_amount"`
	EffectiveAmount    string   `json:"effective_amount"`
	Editable           bool     `json:"editable"`
	InvoiceDocumentIDs []string `json:"invoice_document_ids"`
	InvoiceTotal       string   `json:"invoice_total"`
	MatchConfidence    string   `json:"match_confidence"`
}

type FRCGroupResponse struct {
	Root         FRCLineResponse   `json:"root"`
	Replacements []FRCLineResponse `json:"replacements"`
}

type FRCTotalsResponse struct {
	BaselineTotal string         `json:"baseline_total"`
	NewTotal      string         `json:"new_total"`
	Delta         string         `json:"delta"`
	LineCounts    map[string]int `json:"line_counts"`
}

// FRCResponse is the reconciled view of an assessment.
type FRCResponse struct {
	AssessmentID string             `json:"assessment_id"`
	SnapshotID   string             `json:"snapshot_id"`
	Frozen       bool               `json:"frozen"`
	Lines        []FRCLineResponse  `json:"lines"`
	Groups       []FRCGroupResponse `json:"groups"`
	Totals       FRCTotalsResponse  `json:"totals"`
	ComputedAt   time.Time          `json:"computed_at"`
}

func FromFRCLine(l entities.FRCLineView) FRCLineResponse {
	docs := l.InvoiceDocumentIDs
	if docs == nil {
		docs = []string{}
	}
	return FRCLineResponse{
		LineItemID:         l.LineItemID,
		Origin:             string(l.Origin),
		Category:           string(l.Category),
		Description:        l.Description,
		ParentLineItemID:   l.ParentLineItemID,
		DisplayStatus:      string(l.DisplayStatus),
		DecisionStatus:     string(l.DecisionStatus),
		DecisionVersion:    l.DecisionVersion,
		BaselineAmount:     money(l.BaselineAmount),
		EffectiveAmount:    money(l.EffectiveAmount),
		Editable:           l.Editable,
		InvoiceDocumentIDs: docs,
		InvoiceTotal:       money(l.InvoiceTotal),
		MatchConfidence:    string(l.MatchConfidence),
	}
}

func FromFRCResult(r entities.FRCResult) FRCResponse {
	lines := make([]FRCLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, FromFRCLine(l))
	}
	groups := make([]FRCGroupResponse, 0, len(r.Groups))
	for _, g := range r.Groups {
		reps := make([]FRCLineResponse, 0, len(g.Replacements))
		for _, rep := range g.Replacements {
			reps = append(reps, FromFRCLine(rep))
		}
		groups = append(groups, FRCGroupResponse{Root: FromFRCLine(g.Root), Replacements: reps})
	}
	counts := make(map[string]int, len(r.Totals.LineCounts))
	for status, n := range r.Totals.LineCounts {
		counts[string(status)] = n
	}
	return FRCResponse{
		AssessmentID: r.AssessmentID,
		SnapshotID:   r.SnapshotID,
		Frozen:       r.Frozen,
		Lines:        lines,
		Groups:       groups,
		Totals: FRCTotalsResponse{
			BaselineTotal: money(r.Totals.BaselineTotal),
			NewTotal:      money(r.Totals.NewTotal),
			Delta:         money(r.Totals.Delta),
			LineCounts:    counts,
		},
		ComputedAt: r.ComputedAt,
	}
}

type FRCRecordResponse struct {
	AssessmentID  string     `json:"assessment_id"`
	Status        string     `json:"status"`
	SnapshotID    string     `json:"snapshot_id,omitempty"`
	BaselineTotal string     `json:"baseline_total"`
	NewTotal      string     `json:"new_total"`
	Delta         string     `json:"delta"`
	CompletedBy   string     `json:"completed_by,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func FromFRCRecord(r entities.FRCRecord) FRCRecordResponse {
	res := FRCRecordResponse{
		AssessmentID:  r.AssessmentID,
		Status:        string(r.Status),
		SnapshotID:    r.SnapshotID,
		BaselineTotal: money(r.BaselineTotal),
		NewTotal:      money(r.NewTotal),
		Delta:         money(r.Delta),
		CompletedBy:   r.CompletedBy,
	}
	if !r.CompletedAt.IsZero() {
		t := r.CompletedAt
		res.CompletedAt = &t
	}
	return res
}
