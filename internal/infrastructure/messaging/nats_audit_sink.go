package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
)

const DefaultAuditSubjectPrefix = "frc.audit"

// Publisher is the part of *nats.Conn the audit sink uses.
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// NATSAuditSink publishes audit events as JSON on <prefix>.<assessment_id>.
type NATSAuditSink struct {
	pub    Publisher
	prefix string
}

var _ interfaces.IAuditSink = (*NATSAuditSink)(nil)

func NewNATSAuditSink(pub Publisher, subjectPrefix string) *NATSAuditSink {
	subjectPrefix = strings.TrimSuffix(strings.TrimSpace(subjectPrefix), ".")
	if subjectPrefix == "" {
		subjectPrefix = DefaultAuditSubjectPrefix
	}
	return &NATSAuditSink{pub: pub, prefix: subjectPrefix}
}

// Subject returns the subject events of an assessment are published on.
// NATS tokens cannot hold '.', '*', '>' or whitespace, so those are replaced.
func (s *NATSAuditSink) Subject(assessmentID string) string {
	token := strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\n', '\r':
			return '_'
		}
		return r
	}, assessmentID)
	return s.prefix + "." + token
}

func (s *NATSAuditSink) Publish(ctx context.Context, e entities.AuditEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before publish: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.pub.Publish(s.Subject(e.AssessmentID), data)
}

// ConnectNATS dials the audit broker with bounded reconnects.
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("assessment-frc"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("[frc][nats] disconnected err=%v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("[frc][nats] reconnected url=%s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	log.Printf("[frc][nats] connected url=%s", url)
	return nc, nil
}
