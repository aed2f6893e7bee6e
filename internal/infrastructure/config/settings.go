package config

import (
	"fmt"
	"os"
	"strings"

	"assessment_frc/internal/domain/reconciliation"

	"github.com/shopspring/decimal"
)

const (
	PersistenceDynamoDB = "dynamodb"
	PersistenceSQLite   = "sqlite"

	AuditSinkStore = "store"
	AuditSinkNATS  = "nats"
	AuditSinkNone  = "none"
)

// Settings is the process configuration, read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - PERSISTENCE_BACKEND: dynamodb | sqlite (default: dynamodb)
//   - SQLITE_PATH (default: frc.db)
//   - AUDIT_SINK: store | nats | none (default: store)
//   - NATS_URL (default: nats://127.0.0.1:4222)
//   - NATS_AUDIT_SUBJECT_PREFIX (default: frc.audit)
//   - FRC_MATCH_EXACT_TOLERANCE (default: 0.01)
//   - FRC_MATCH_PARTIAL_RATIO (default: 0.10)
//   - MERCADOPAGO_ACCESS_TOKEN
//
// DynamoDB connection and table names are read by the database and repository
// packages themselves.
type Settings struct {
	Port                   string
	PersistenceBackend     string
	SQLitePath             string
	AuditSink              string
	NATSURL                string
	NATSAuditSubjectPrefix string
	MatchTolerance         reconciliation.MatchTolerance
	MercadoPagoAccessToken string
}

func LoadFromEnv() (Settings, error) {
	s := Settings{
		Port:                   getenvDefault("PORT", "8080"),
		PersistenceBackend:     strings.ToLower(getenvDefault("PERSISTENCE_BACKEND", PersistenceDynamoDB)),
		SQLitePath:             getenvDefault("SQLITE_PATH", "frc.db"),
		AuditSink:              strings.ToLower(getenvDefault("AUDIT_SINK", AuditSinkStore)),
		NATSURL:                getenvDefault("NATS_URL", "nats://127.0.0.1:4222"),
		NATSAuditSubjectPrefix: getenvDefault("NATS_AUDIT_SUBJECT_PREFIX", "frc.audit"),
		MatchTolerance:         reconciliation.DefaultMatchTolerance(),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}

	var err error
	if s.MatchTolerance.Exact, err = decimalFromEnv("FRC_MATCH_EXACT_TOLERANCE", s.MatchTolerance.Exact); err != nil {
		return Settings{}, err
	}
	if s.MatchTolerance.PartialRatio, err = decimalFromEnv("FRC_MATCH_PARTIAL_RATIO", s.MatchTolerance.PartialRatio); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	switch s.PersistenceBackend {
	case PersistenceDynamoDB, PersistenceSQLite:
	default:
		return fmt.Errorf("invalid PERSISTENCE_BACKEND %q", s.PersistenceBackend)
	}
	switch s.AuditSink {
	case AuditSinkStore, AuditSinkNATS, AuditSinkNone:
	default:
		return fmt.Errorf("invalid AUDIT_SINK %q", s.AuditSink)
	}
	if s.PersistenceBackend == PersistenceSQLite && s.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
	}
	return s.MatchTolerance.Validate()
}

func decimalFromEnv(key string, def decimal.Decimal) (decimal.Decimal, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
