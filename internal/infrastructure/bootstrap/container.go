package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"assessment_frc/internal/adapter/persistence/repository"
	"assessment_frc/internal/adapter/persistence/sqlite"
	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/infrastructure/config"
	"assessment_frc/internal/infrastructure/database"
	"assessment_frc/internal/infrastructure/messaging"
	"assessment_frc/internal/infrastructure/metrics"
	"assessment_frc/internal/infrastructure/payments"
	"assessment_frc/internal/usecase"
	"assessment_frc/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// AuditReader lists the audit trail of an assessment. Only the sqlite store
// provides one.
type AuditReader interface {
	ListByAssessment(ctx context.Context, assessmentID string) ([]entities.AuditEvent, error)
}

// Container holds the use cases of the service, wired for one backend.
type Container struct {
	Snapshots   *usecase.LineItemSnapshotUseCase
	Ledger      *usecase.DecisionLedgerUseCase
	FRC         *usecase.FRCUseCase
	Invoices    *usecase.InvoiceAttachmentUseCase
	Settlements *usecase.SettlementUseCase
	AuditLog    AuditReader

	closers []func() error
}

type stores struct {
	snapshots   interfaces.ILineItemRepository
	decisions   interfaces.IDecisionRepository
	frcRecords  interfaces.IFRCRecordRepository
	invoices    interfaces.IInvoiceMatchRepository
	settlements interfaces.ISettlementPaymentRepository
	audit       interfaces.IAuditSink
	auditLog    AuditReader
}

// Build opens the configured store, audit sink and payment gateway and wires
// the use cases over them. reg may be nil to skip metrics.
func Build(ctx context.Context, s config.Settings, reg prometheus.Registerer) (*Container, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	c := &Container{}

	st, err := c.openStores(ctx, s)
	if err != nil {
		c.Close()
		return nil, err
	}

	audit, err := c.auditSink(s, st)
	if err != nil {
		c.Close()
		return nil, err
	}

	var m interfaces.IFRCMetrics
	if reg != nil {
		m = metrics.NewFRCMetrics(reg)
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(s.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[frc][bootstrap] mercado pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	c.Snapshots = usecase.NewLineItemSnapshotUseCase(st.snapshots, st.frcRecords)
	c.Ledger = usecase.NewDecisionLedgerUseCase(st.decisions, st.snapshots, st.frcRecords, audit, m)
	c.FRC = usecase.NewFRCUseCase(st.snapshots, c.Ledger, st.invoices, st.frcRecords, audit, m, s.MatchTolerance)
	c.Invoices = usecase.NewInvoiceAttachmentUseCase(st.invoices, c.FRC, s.MatchTolerance)
	c.Settlements = usecase.NewSettlementUseCase(st.settlements, st.frcRecords, gateway)
	c.AuditLog = st.auditLog

	log.Printf("[frc][bootstrap] ready backend=%s audit_sink=%s", s.PersistenceBackend, s.AuditSink)
	return c, nil
}

func (c *Container) openStores(ctx context.Context, s config.Settings) (stores, error) {
	switch s.PersistenceBackend {
	case config.PersistenceSQLite:
		db, err := database.OpenSQLite(ctx, s.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		c.closers = append(c.closers, db.Close)
		return sqliteStores(db), nil
	case config.PersistenceDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx)
		if err != nil {
			return stores{}, err
		}
		return stores{
			snapshots:   repository.NewLineItemSnapshotDynamoRepository(ddb),
			decisions:   repository.NewDecisionDynamoRepository(ddb),
			frcRecords:  repository.NewFRCRecordDynamoRepository(ddb),
			invoices:    repository.NewInvoiceMatchDynamoRepository(ddb),
			settlements: repository.NewSettlementPaymentDynamoRepository(ddb),
			audit:       repository.NewAuditEventDynamoSink(ddb),
		}, nil
	}
	return stores{}, fmt.Errorf("invalid persistence backend %q", s.PersistenceBackend)
}

func sqliteStores(db *sql.DB) stores {
	audit := sqlite.NewAuditEventSink(db)
	return stores{
		snapshots:   sqlite.NewLineItemSnapshotRepository(db),
		decisions:   sqlite.NewDecisionRepository(db),
		frcRecords:  sqlite.NewFRCRecordRepository(db),
		invoices:    sqlite.NewInvoiceMatchRepository(db),
		settlements: sqlite.NewSettlementPaymentRepository(db),
		audit:       audit,
		auditLog:    audit,
	}
}

// auditSink returns nil for AUDIT_SINK=none; the use cases skip publishing then.
func (c *Container) auditSink(s config.Settings, st stores) (interfaces.IAuditSink, error) {
	switch s.AuditSink {
	case config.AuditSinkStore:
		return st.audit, nil
	case config.AuditSinkNATS:
		nc, err := messaging.ConnectNATS(s.NATSURL)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func() error {
			return nc.Drain()
		})
		return messaging.NewNATSAuditSink(nc, s.NATSAuditSubjectPrefix), nil
	case config.AuditSinkNone:
		return nil, nil
	}
	return nil, fmt.Errorf("invalid audit sink %q", s.AuditSink)
}

// Close releases the store and broker connections in reverse order.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
