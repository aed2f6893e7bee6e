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

const (
	defaultSettlementsTableName  = "frc_settlements"
	settlementsAssessmentIDIndex = "assessment_id-index"
)

type settlementPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	AssessmentID       string                 `dynamodbav:"assessment_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// SettlementPaymentDynamoRepository persists SettlementPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: assessment_id-index (PK: assessment_id)

type SettlementPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettlementPaymentRepository = (*SettlementPaymentDynamoRepository)(nil)

func NewSettlementPaymentDynamoRepository(ddb DynamoAPI) *SettlementPaymentDynamoRepository {
	return &SettlementPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTLEMENTS_TABLE", defaultSettlementsTableName),
	}
}

// Create stores p. An approved or pending payment is written together with a
// guard item keyed by the assessment, so a second active settlement of the
// same FRC fails with ErrConditionFailed. Denied payments skip the guard.
func (r *SettlementPaymentDynamoRepository) Create(ctx context.Context, p entities.SettlementPayment) (entities.SettlementPayment, error) {
	av, err := attributevalue.MarshalMap(toSettlementPaymentItem(p))
	if err != nil {
		return entities.SettlementPayment{}, err
	}
	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}

	if !p.Status.Active() {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      notExists,
			ExpressionAttributeNames: names,
		})
		if err != nil {
			return entities.SettlementPayment{}, err
		}
		return p, nil
	}

	// The guard has no assessment_id so it stays out of the GSI.
	guard := map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: settlementGuardID(p.AssessmentID)},
		"payment_id": &types.AttributeValueMemberS{Value: p.ID},
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: guard, ConditionExpression: notExists, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: av, ConditionExpression: notExists, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.SettlementPayment{}, interfaces.ErrConditionFailed
		}
		return entities.SettlementPayment{}, err
	}
	return p, nil
}

func settlementGuardID(assessmentID string) string {
	return "assessment#" + assessmentID
}

func (r *SettlementPaymentDynamoRepository) ListByAssessmentID(ctx context.Context, assessmentID string) ([]entities.SettlementPayment, error) {
	items, err := queryAll[settlementPaymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(settlementsAssessmentIDIndex),
		KeyConditionExpression: aws.String("assessment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assessmentID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.SettlementPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromSettlementPaymentItem(it))
	}
	return out, nil
}

func toSettlementPaymentItem(p entities.SettlementPayment) settlementPaymentItem {
	return settlementPaymentItem{
		ID:                 p.ID,
		AssessmentID:       p.AssessmentID,
		Amount:             formatDecimal(p.Amount),
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromSettlementPaymentItem(it settlementPaymentItem) entities.SettlementPayment {
	return entities.SettlementPayment{
		ID:                 it.ID,
		AssessmentID:       it.AssessmentID,
		Amount:             parseDecimal(it.Amount),
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
