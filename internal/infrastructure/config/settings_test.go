package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "PERSISTENCE_BACKEND", "SQLITE_PATH", "AUDIT_SINK", "NATS_URL", "NATS_AUDIT_SUBJECT_PREFIX", "FRC_MATCH_EXACT_TOLERANCE", "FRC_MATCH_PARTIAL_RATIO"} {
			t.Setenv(k, "")
		}
		s, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Port != "8080" || s.PersistenceBackend != PersistenceDynamoDB || s.AuditSink != AuditSinkStore {
			t.Fatalf("unexpected defaults %+v", s)
		}
		if s.NATSAuditSubjectPrefix != "frc.audit" {
			t.Fatalf("unexpected subject prefix %q", s.NATSAuditSubjectPrefix)
		}
		if !s.MatchTolerance.Exact.Equal(decimal.RequireFromString("0.01")) || !s.MatchTolerance.PartialRatio.Equal(decimal.RequireFromString("0.1")) {
			t.Fatalf("unexpected tolerance %+v", s.MatchTolerance)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PERSISTENCE_BACKEND", "SQLite")
		t.Setenv("SQLITE_PATH", "/tmp/x.db")
		t.Setenv("AUDIT_SINK", "nats")
		t.Setenv("FRC_MATCH_EXACT_TOLERANCE", "0.5")
		t.Setenv("FRC_MATCH_PARTIAL_RATIO", "0.25")
		s, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.PersistenceBackend != PersistenceSQLite || s.SQLitePath != "/tmp/x.db" || s.AuditSink != AuditSinkNATS {
			t.Fatalf("unexpected settings %+v", s)
		}
		if s.MatchTolerance.Exact.String() != "0.5" || s.MatchTolerance.PartialRatio.String() != "0.25" {
			t.Fatalf("unexpected tolerance %+v", s.MatchTolerance)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := map[string][2]string{
			"backend":   {"PERSISTENCE_BACKEND", "postgres"},
			"sink":      {"AUDIT_SINK", "kafka"},
			"tolerance": {"FRC_MATCH_EXACT_TOLERANCE", "abc"},
			"negative":  {"FRC_MATCH_PARTIAL_RATIO", "-0.1"},
		}
		for name, kv := range cases {
			t.Run(name, func(t *testing.T) {
				t.Setenv(kv[0], kv[1])
				if _, err := LoadFromEnv(); err == nil {
					t.Fatalf("expected error for %s=%s", kv[0], kv[1])
				}
			})
		}
	})
}
