package repository

import (
	"context"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditEventsTableName = "frc_audit_events"

type auditEventItem struct {
	ID            string `dynamodbav:"id"`
	Type          string `dynamodbav:"type"`
	AssessmentID  string `dynamodbav:"assessment_id"`
	LineItemID    string `dynamodbav:"line_item_id,omitempty"`
	OldStatus     string `dynamodbav:"old_status,omitempty"`
	NewStatus     string `dynamodbav:"new_status,omitempty"`
	AdjustedValue string `dynamodbav:"adjusted_value,omitempty"`
	Actor         string `dynamodbav:"actor"`
	OccurredAt    string `dynamodbav:"occurred_at"`
}

// AuditEventDynamoSink appends audit events to a write-only table.
//
// Table requirements:
//   - PK: id (string)

type AuditEventDynamoSink struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAuditSink = (*AuditEventDynamoSink)(nil)

func NewAuditEventDynamoSink(ddb DynamoAPI) *AuditEventDynamoSink {
	return &AuditEventDynamoSink{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_EVENTS_TABLE", defaultAuditEventsTableName),
	}
}

func (s *AuditEventDynamoSink) Publish(ctx context.Context, e entities.AuditEvent) error {
	it := auditEventItem{
		ID:           e.ID,
		Type:         e.Type,
		AssessmentID: e.AssessmentID,
		LineItemID:   e.LineItemID,
		OldStatus:    e.OldStatus,
		NewStatus:    e.NewStatus,
		Actor:        e.Actor,
		OccurredAt:   formatTime(e.OccurredAt),
	}
	if e.AdjustedValue != nil {
		it.AdjustedValue = formatDecimal(*e.AdjustedValue)
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
