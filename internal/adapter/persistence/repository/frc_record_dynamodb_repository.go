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

const defaultFRCRecordsTableName = "frc_records"

type frcRecordItem struct {
	AssessmentID  string `dynamodbav:"assessment_id"`
	Status        string `dynamodbav:"status"`
	SnapshotID    string `dynamodbav:"snapshot_id"`
	BaselineTotal string `dynamodbav:"baseline_total"`
	NewTotal      string `dynamodbav:"new_total"`
	Delta         string `dynamodbav:"delta"`
	CompletedBy   string `dynamodbav:"completed_by"`
	CompletedAt   string `dynamodbav:"completed_at"`
}

// FRCRecordDynamoRepository archives completed FRCs.
//
// Table requirements:
//   - PK: assessment_id (string)

type FRCRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFRCRecordRepository = (*FRCRecordDynamoRepository)(nil)

func NewFRCRecordDynamoRepository(ddb DynamoAPI) *FRCRecordDynamoRepository {
	return &FRCRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FRC_RECORDS_TABLE", defaultFRCRecordsTableName),
	}
}

func (r *FRCRecordDynamoRepository) Get(ctx context.Context, assessmentID string) (entities.FRCRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FRCRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.FRCRecord{}, nil
	}

	var it frcRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FRCRecord{}, err
	}
	return entities.FRCRecord{
		AssessmentID:  it.AssessmentID,
		Status:        entities.FRCStatus(it.Status),
		SnapshotID:    it.SnapshotID,
		BaselineTotal: parseDecimal(it.BaselineTotal),
		NewTotal:      parseDecimal(it.NewTotal),
		Delta:         parseDecimal(it.Delta),
		CompletedBy:   it.CompletedBy,
		CompletedAt:   parseTime(it.CompletedAt),
	}, nil
}

func (r *FRCRecordDynamoRepository) Complete(ctx context.Context, rec entities.FRCRecord) (entities.FRCRecord, error) {
	av, err := attributevalue.MarshalMap(frcRecordItem{
		AssessmentID:  rec.AssessmentID,
		Status:        string(rec.Status),
		SnapshotID:    rec.SnapshotID,
		BaselineTotal: formatDecimal(rec.BaselineTotal),
		NewTotal:      formatDecimal(rec.NewTotal),
		Delta:         formatDecimal(rec.Delta),
		CompletedBy:   rec.CompletedBy,
		CompletedAt:   formatTime(rec.CompletedAt),
	})
	if err != nil {
		return entities.FRCRecord{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#aid)"),
		ExpressionAttributeNames: map[string]string{
			"#aid": "assessment_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.FRCRecord{}, interfaces.ErrConditionFailed
		}
		return entities.FRCRecord{}, err
	}
	return rec, nil
}
