package repository

import (
	"context"
	"strconv"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDecisionsTableName = "frc_decisions"

type decisionItem struct {
	AssessmentID  string `dynamodbav:"assessment_id"`
	LineItemID    string `dynamodbav:"line_item_id"`
	Status        string `dynamodbav:"status"`
	AdjustedValue string `dynamodbav:"adjusted_value,omitempty"`
	DecidedBy     string `dynamodbav:"decided_by,omitempty"`
	DecidedAt     string `dynamodbav:"decided_at,omitempty"`
	Stale         bool   `dynamodbav:"stale"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// DecisionDynamoRepository persists the decision ledger in DynamoDB.
//
// Table requirements:
//   - PK: assessment_id (string)
//   - SK: line_item_id (string)
//
// Every write is conditional; version is the compare-and-swap token.

type DecisionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDecisionRepository = (*DecisionDynamoRepository)(nil)

func NewDecisionDynamoRepository(ddb DynamoAPI) *DecisionDynamoRepository {
	return &DecisionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DECISIONS_TABLE", defaultDecisionsTableName),
	}
}

func decisionKey(assessmentID, lineItemID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		"line_item_id":  &types.AttributeValueMemberS{Value: lineItemID},
	}
}

func (r *DecisionDynamoRepository) Get(ctx context.Context, assessmentID, lineItemID string) (entities.Decision, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            decisionKey(assessmentID, lineItemID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Decision{}, err
	}
	if len(out.Item) == 0 {
		return entities.Decision{}, nil
	}

	var it decisionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Decision{}, err
	}
	return fromDecisionItem(it), nil
}

func (r *DecisionDynamoRepository) ListByAssessment(ctx context.Context, assessmentID string) ([]entities.Decision, error) {
	items, err := queryAll[decisionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("assessment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Decision, 0, len(items))
	for _, it := range items {
		out = append(out, fromDecisionItem(it))
	}
	return out, nil
}

func (r *DecisionDynamoRepository) CreateIfAbsent(ctx context.Context, d entities.Decision) (bool, error) {
	av, err := attributevalue.MarshalMap(toDecisionItem(d))
	if err != nil {
		return false, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#lid)"),
		ExpressionAttributeNames: map[string]string{
			"#lid": "line_item_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *DecisionDynamoRepository) UpdateIfVersion(ctx context.Context, d entities.Decision, expectedVersion int64) (entities.Decision, error) {
	d.Version = expectedVersion + 1
	d.Stale = false
	av, err := attributevalue.MarshalMap(toDecisionItem(d))
	if err != nil {
		return entities.Decision{}, err
	}
	// The stale check keeps a concurrent MarkStale from being undone.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected AND #stale = :live"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
			"#stale":   "stale",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":live":     &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Decision{}, interfaces.ErrConditionFailed
		}
		return entities.Decision{}, err
	}
	return d, nil
}

func (r *DecisionDynamoRepository) SetStale(ctx context.Context, assessmentID string, lineItemIDs []string, stale bool) error {
	for _, id := range lineItemIDs {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:           aws.String(r.tableName),
			Key:                 decisionKey(assessmentID, id),
			ConditionExpression: aws.String("attribute_exists(#lid)"),
			UpdateExpression:    aws.String("SET #stale = :stale"),
			ExpressionAttributeNames: mergeNames(
				map[string]string{"#stale": "stale"},
				map[string]string{"#lid": "line_item_id"},
			),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":stale": &types.AttributeValueMemberBOOL{Value: stale},
			},
		})
		if err != nil && !isConditionFailed(err) {
			return err
		}
	}
	return nil
}

func toDecisionItem(d entities.Decision) decisionItem {
	it := decisionItem{
		AssessmentID: d.AssessmentID,
		LineItemID:   d.LineItemID,
		Status:       string(d.Status),
		DecidedBy:    d.DecidedBy,
		DecidedAt:    formatTime(d.DecidedAt),
		Stale:        d.Stale,
		Version:      d.Version,
		CreatedAt:    formatTime(d.CreatedAt),
		UpdatedAt:    formatTime(d.UpdatedAt),
	}
	if d.AdjustedValue != nil {
		it.AdjustedValue = formatDecimal(*d.AdjustedValue)
	}
	return it
}

func fromDecisionItem(it decisionItem) entities.Decision {
	d := entities.Decision{
		AssessmentID: it.AssessmentID,
		LineItemID:   it.LineItemID,
		Status:       entities.DecisionStatus(it.Status),
		DecidedBy:    it.DecidedBy,
		DecidedAt:    parseTime(it.DecidedAt),
		Stale:        it.Stale,
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if it.AdjustedValue != "" {
		v := parseDecimal(it.AdjustedValue)
		d.AdjustedValue = &v
	}
	return d
}
