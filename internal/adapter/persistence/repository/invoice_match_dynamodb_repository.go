package repository

import (
	"context"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoiceMatchesTableName = "frc_invoice_matches"

type invoiceMatchItem struct {
	AssessmentID      string `dynamodbav:"assessment_id"`
	InvoiceDocumentID string `dynamodbav:"invoice_document_id"`
	LineItemID        string `dynamodbav:"line_item_id"`
	InvoiceAmount     string `dynamodbav:"invoice_amount"`
	MatchConfidence   string `dynamodbav:"match_confidence"`
	AttachedBy        string `dynamodbav:"attached_by"`
	AttachedAt        string `dynamodbav:"attached_at"`
}

// InvoiceMatchDynamoRepository stores invoice to line links.
//
// Table requirements:
//   - PK: assessment_id (string)
//   - SK: invoice_document_id (string)
//
// A document belongs to one line at a time: saving it again moves it.

type InvoiceMatchDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IInvoiceMatchRepository = (*InvoiceMatchDynamoRepository)(nil)

func NewInvoiceMatchDynamoRepository(ddb DynamoAPI) *InvoiceMatchDynamoRepository {
	return &InvoiceMatchDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICE_MATCHES_TABLE", defaultInvoiceMatchesTableName),
	}
}

func (r *InvoiceMatchDynamoRepository) Save(ctx context.Context, m entities.InvoiceMatch) (entities.InvoiceMatch, error) {
	av, err := attributevalue.MarshalMap(invoiceMatchItem{
		AssessmentID:      m.AssessmentID,
		InvoiceDocumentID: m.InvoiceDocumentID,
		LineItemID:        m.LineItemID,
		InvoiceAmount:     formatDecimal(m.InvoiceAmount),
		MatchConfidence:   string(m.MatchConfidence),
		AttachedBy:        m.AttachedBy,
		AttachedAt:        formatTime(m.AttachedAt),
	})
	if err != nil {
		return entities.InvoiceMatch{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.InvoiceMatch{}, err
	}
	return m, nil
}

func (r *InvoiceMatchDynamoRepository) ListByAssessment(ctx context.Context, assessmentID string) ([]entities.InvoiceMatch, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("assessment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assessmentID},
		},
	})
}

func (r *InvoiceMatchDynamoRepository) ListByLineItem(ctx context.Context, assessmentID, lineItemID string) ([]entities.InvoiceMatch, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("assessment_id = :aid"),
		FilterExpression:       aws.String("#lid = :lid"),
		ExpressionAttributeNames: map[string]string{
			"#lid": "line_item_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assessmentID},
			":lid": &types.AttributeValueMemberS{Value: lineItemID},
		},
	})
}

func (r *InvoiceMatchDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.InvoiceMatch, error) {
	items, err := queryAll[invoiceMatchItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.InvoiceMatch, 0, len(items))
	for _, it := range items {
		out = append(out, entities.InvoiceMatch{
			AssessmentID:      it.AssessmentID,
			LineItemID:        it.LineItemID,
			InvoiceDocumentID: it.InvoiceDocumentID,
			InvoiceAmount:     parseDecimal(it.InvoiceAmount),
			MatchConfidence:   entities.MatchConfidence(it.MatchConfidence),
			AttachedBy:        it.AttachedBy,
			AttachedAt:        parseTime(it.AttachedAt),
		})
	}
	return out, nil
}
