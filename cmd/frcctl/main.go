package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"assessment_frc/internal/domain/reconciliation"
	"assessment_frc/internal/infrastructure/bootstrap"
	"assessment_frc/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// cli carries the viper instance of one root command so tests can run
// several commands side by side.
type cli struct {
	v *viper.Viper
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix("FRC")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "frcctl",
		Short: "Final Repair Costing CLI",
		Long: `frcctl publishes line item snapshots, records decisions and completes the
Final Repair Costing of an assessment against the local store.

Flags can also be set through FRC_-prefixed environment variables, for
example FRC_BACKEND=sqlite or FRC_SQLITE_PATH=/var/lib/frc/frc.db.`,
		SilenceUsage: true,
	}

	def := reconciliation.DefaultMatchTolerance()
	flags := root.PersistentFlags()
	flags.String("backend", config.PersistenceSQLite, "persistence backend (sqlite|dynamodb)")
	flags.String("sqlite-path", "frc.db", "sqlite database path")
	flags.String("audit-sink", config.AuditSinkStore, "audit sink (store|nats|none)")
	flags.String("nats-url", "nats://127.0.0.1:4222", "NATS url for the nats audit sink")
	flags.String("nats-subject-prefix", "frc.audit", "NATS audit subject prefix")
	flags.String("exact-tolerance", def.Exact.String(), "absolute tolerance of an exact invoice match")
	flags.String("partial-ratio", def.PartialRatio.String(), "ratio of the effective amount accepted as a partial match")
	flags.String("actor", "frcctl", "acting user recorded on decisions")
	flags.Bool("json", false, "output JSON")
	for _, name := range []string{"backend", "sqlite-path", "audit-sink", "nats-url", "nats-subject-prefix", "exact-tolerance", "partial-ratio", "actor", "json"} {
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(c.snapshotCmd())
	root.AddCommand(c.reconcileCmd())
	root.AddCommand(c.decideCmd())
	root.AddCommand(c.invoiceCmd())
	root.AddCommand(c.completeCmd())
	root.AddCommand(c.auditCmd())
	return root
}

func (c *cli) settings() (config.Settings, error) {
	exact, err := decimal.NewFromString(c.v.GetString("exact-tolerance"))
	if err != nil {
		return config.Settings{}, fmt.Errorf("invalid exact-tolerance: %w", err)
	}
	ratio, err := decimal.NewFromString(c.v.GetString("partial-ratio"))
	if err != nil {
		return config.Settings{}, fmt.Errorf("invalid partial-ratio: %w", err)
	}
	s := config.Settings{
		PersistenceBackend:     strings.ToLower(c.v.GetString("backend")),
		SQLitePath:             c.v.GetString("sqlite-path"),
		AuditSink:              strings.ToLower(c.v.GetString("audit-sink")),
		NATSURL:                c.v.GetString("nats-url"),
		NATSAuditSubjectPrefix: c.v.GetString("nats-subject-prefix"),
		MatchTolerance:         reconciliation.MatchTolerance{Exact: exact, PartialRatio: ratio},
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
	return s, s.Validate()
}

func (c *cli) withContainer(ctx context.Context, fn func(context.Context, *bootstrap.Container) error) error {
	s, err := c.settings()
	if err != nil {
		return err
	}
	container, err := bootstrap.Build(ctx, s, nil)
	if err != nil {
		return err
	}
	defer container.Close()
	return fn(ctx, container)
}

func (c *cli) jsonOutput() bool {
	return c.v.GetBool("json")
}

func (c *cli) actor() string {
	return strings.TrimSpace(c.v.GetString("actor"))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
