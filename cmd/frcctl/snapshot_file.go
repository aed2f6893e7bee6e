package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"assessment_frc/internal/domain/entities"
)

// snapshotFile is the YAML layout accepted by `frcctl snapshot import`.
// Amounts are strings so they keep their decimal precision.
type snapshotFile struct {
	Items []snapshotFileItem `yaml:"items"`
}

type snapshotFileItem struct {
	ID               string `yaml:"id"`
	Origin           string `yaml:"origin"`
	Category         string `yaml:"category"`
	Description      string `yaml:"description"`
	UnitPrice        string `yaml:"unit_price"`
	Quantity         string `yaml:"quantity"`
	Hours            string `yaml:"hours"`
	RemovedInSource  bool   `yaml:"removed_in_source"`
	ParentLineItemID string `yaml:"parent_line_item_id"`
	Position         int    `yaml:"position"`
}

func readSnapshotFile(r io.Reader) ([]entities.LineItem, error) {
	var f snapshotFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode snapshot file: %w", err)
	}

	items := make([]entities.LineItem, 0, len(f.Items))
	for i, it := range f.Items {
		unitPrice, err := optionalDecimal(it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d unit_price: %w", i+1, err)
		}
		quantity, err := optionalDecimal(it.Quantity)
		if err != nil {
			return nil, fmt.Errorf("item %d quantity: %w", i+1, err)
		}
		hours, err := optionalDecimal(it.Hours)
		if err != nil {
			return nil, fmt.Errorf("item %d hours: %w", i+1, err)
		}
		items = append(items, entities.LineItem{
			ID:               strings.TrimSpace(it.ID),
			Origin:           entities.LineItemOrigin(strings.ToLower(strings.TrimSpace(it.Origin))),
			Category:         entities.LineItemCategory(strings.ToLower(strings.TrimSpace(it.Category))),
			Description:      it.Description,
			UnitPrice:        unitPrice,
			Quantity:         quantity,
			Hours:            hours,
			RemovedInSource:  it.RemovedInSource,
			ParentLineItemID: strings.TrimSpace(it.ParentLineItemID),
			Position:         it.Position,
		})
	}
	return items, nil
}

func optionalDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
