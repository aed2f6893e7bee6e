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

const defaultLineItemSnapshotsTableName = "frc_line_item_snapshots"

type lineItemAttr struct {
	ID               string `dynamodbav:"id"`
	Origin           string `dynamodbav:"origin"`
	Category         string `dynamodbav:"category"`
	Description      string `dynamodbav:"description"`
	UnitPrice        string `dynamodbav:"unit_price"`
	Quantity         string `dynamodbav:"quantity"`
	Hours            string `dynamodbav:"hours"`
	LineTotal        string `dynamodbav:"line_total"`
	RemovedInSource  bool   `dynamodbav:"removed_in_source"`
	ParentLineItemID string `dynamodbav:"parent_line_item_id,omitempty"`
	Position         int    `dynamodbav:"position"`
}

type lineItemSnapshotItem struct {
	AssessmentID string         `dynamodbav:"assessment_id"`
	SnapshotID   string         `dynamodbav:"snapshot_id"`
	CapturedAt   string         `dynamodbav:"captured_at"`
	Items        []lineItemAttr `dynamodbav:"items"`
}

// LineItemSnapshotDynamoRepository keeps the latest snapshot per assessment.
//
// Table requirements:
//   - PK: assessment_id (string)
//
// Items are stored inline so a new snapshot replaces the old one in a single
// PutItem; readers never see half of two snapshots.

type LineItemSnapshotDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemSnapshotDynamoRepository)(nil)

func NewLineItemSnapshotDynamoRepository(ddb DynamoAPI) *LineItemSnapshotDynamoRepository {
	return &LineItemSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LINE_ITEM_SNAPSHOTS_TABLE", defaultLineItemSnapshotsTableName),
	}
}

func (r *LineItemSnapshotDynamoRepository) ReplaceSnapshot(ctx context.Context, s entities.LineItemSnapshot) (entities.LineItemSnapshot, error) {
	av, err := attributevalue.MarshalMap(toLineItemSnapshotItem(s))
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	return s, nil
}

func (r *LineItemSnapshotDynamoRepository) GetSnapshot(ctx context.Context, assessmentID string) (entities.LineItemSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"assessment_id": &types.AttributeValueMemberS{Value: assessmentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItemSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.LineItemSnapshot{}, nil
	}

	var it lineItemSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LineItemSnapshot{}, err
	}
	return fromLineItemSnapshotItem(it), nil
}

func toLineItemSnapshotItem(s entities.LineItemSnapshot) lineItemSnapshotItem {
	items := make([]lineItemAttr, 0, len(s.Items))
	for _, li := range s.Items {
		items = append(items, lineItemAttr{
			ID:               li.ID,
			Origin:           string(li.Origin),
			Category:         string(li.Category),
			Description:      li.Description,
			UnitPrice:        formatDecimal(li.UnitPrice),
			Quantity:         formatDecimal(li.Quantity),
			Hours:            formatDecimal(li.Hours),
			LineTotal:        formatDecimal(li.LineTotal),
			RemovedInSource:  li.RemovedInSource,
			ParentLineItemID: li.ParentLineItemID,
			Position:         li.Position,
		})
	}
	return lineItemSnapshotItem{
		AssessmentID: s.AssessmentID,
		SnapshotID:   s.SnapshotID,
		CapturedAt:   formatTime(s.CapturedAt),
		Items:        items,
	}
}

func fromLineItemSnapshotItem(it lineItemSnapshotItem) entities.LineItemSnapshot {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, a := range it.Items {
		items = append(items, entities.LineItem{
			ID:               a.ID,
			AssessmentID:     it.AssessmentID,
			Origin:           entities.LineItemOrigin(a.Origin),
			Category:         entities.LineItemCategory(a.Category),
			Description:      a.Description,
			UnitPrice:        parseDecimal(a.UnitPrice),
			Quantity:         parseDecimal(a.Quantity),
			Hours:            parseDecimal(a.Hours),
			LineTotal:        parseDecimal(a.LineTotal),
			RemovedInSource:  a.RemovedInSource,
			ParentLineItemID: a.ParentLineItemID,
			Position:         a.Position,
		})
	}
	return entities.LineItemSnapshot{
		AssessmentID: it.AssessmentID,
		SnapshotID:   it.SnapshotID,
		CapturedAt:   parseTime(it.CapturedAt),
		Items:        items,
	}
}
