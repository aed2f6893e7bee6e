package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"assessment_frc/internal/domain/entities"
	"assessment_frc/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type fakeDynamo struct {
	item      map[string]types.AttributeValue
	pages     [][]map[string]types.AttributeValue
	putErr    error
	updateErr error

	puts       []*dynamodb.PutItemInput
	updates    []*dynamodb.UpdateItemInput
	queries    []*dynamodb.QueryInput
	transacts  []*dynamodb.TransactWriteItemsInput
	writtenIDs map[string]bool
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.item = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	return &dynamodb.UpdateItemOutput{}, f.updateErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	page := len(f.queries) - 1
	out := &dynamodb.QueryOutput{Items: f.pages[page]}
	if page < len(f.pages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"page": &types.AttributeValueMemberN{Value: "1"}}
	}
	return out, nil
}

// TransactWriteItems applies attribute_not_exists(#id) puts all or nothing,
// keyed by the "id" attribute.
func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	if f.writtenIDs == nil {
		f.writtenIDs = map[string]bool{}
	}
	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, ti := range in.TransactItems {
		id := ti.Put.Item["id"].(*types.AttributeValueMemberS).Value
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		if f.writtenIDs[id] {
			reasons[i].Code = aws.String("ConditionalCheckFailed")
			failed = true
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{Message: aws.String("Transaction cancelled"), CancellationReasons: reasons}
	}
	for _, ti := range in.TransactItems {
		f.writtenIDs[ti.Put.Item["id"].(*types.AttributeValueMemberS).Value] = true
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func TestDecisionDynamoRepository_ConditionalWrites(t *testing.T) {
	d := entities.Decision{AssessmentID: "a-1", LineItemID: "l-1", Status: entities.DecisionStatusApproved, Version: 3}

	t.Run("update sends version condition", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewDecisionDynamoRepository(ddb)

		res, err := repo.UpdateIfVersion(context.Background(), d, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Version != 4 {
			t.Fatalf("expected version 4, got %d", res.Version)
		}
		in := ddb.puts[0]
		if aws.ToString(in.ConditionExpression) != "#version = :expected AND #stale = :live" {
			t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
		}
		if v := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value; v != "3" {
			t.Fatalf("expected :expected=3, got %s", v)
		}
		if live := in.ExpressionAttributeValues[":live"].(*types.AttributeValueMemberBOOL).Value; live {
			t.Fatalf("expected :live=false")
		}
	})

	t.Run("update never writes a stale record", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewDecisionDynamoRepository(ddb)
		staleCopy := d
		staleCopy.Stale = true

		res, err := repo.UpdateIfVersion(context.Background(), staleCopy, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Stale {
			t.Fatalf("result should be live")
		}
		if ddb.puts[0].Item["stale"].(*types.AttributeValueMemberBOOL).Value {
			t.Fatalf("stored item should be live")
		}
	})

	t.Run("update conflict", func(t *testing.T) {
		repo := NewDecisionDynamoRepository(&fakeDynamo{putErr: conditionFailed()})
		_, err := repo.UpdateIfVersion(context.Background(), d, 3)
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("create existing is not an error", func(t *testing.T) {
		repo := NewDecisionDynamoRepository(&fakeDynamo{putErr: conditionFailed()})
		created, err := repo.CreateIfAbsent(context.Background(), d)
		if err != nil || created {
			t.Fatalf("expected created=false err=nil, got %v %v", created, err)
		}
	})

	t.Run("create other error", func(t *testing.T) {
		repo := NewDecisionDynamoRepository(&fakeDynamo{putErr: errors.New("throttled")})
		if _, err := repo.CreateIfAbsent(context.Background(), d); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("set stale ignores vanished records", func(t *testing.T) {
		ddb := &fakeDynamo{updateErr: conditionFailed()}
		repo := NewDecisionDynamoRepository(ddb)
		if err := repo.SetStale(context.Background(), "a-1", []string{"l-1", "l-2"}, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.updates) != 2 {
			t.Fatalf("expected 2 updates, got %d", len(ddb.updates))
		}
	})
}

func TestDecisionDynamoRepository_ListFollowsPages(t *testing.T) {
	page := func(id string) []map[string]types.AttributeValue {
		av, err := attributevalue.MarshalMap(decisionItem{AssessmentID: "a-1", LineItemID: id, Status: "pending", Version: 1})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return []map[string]types.AttributeValue{av}
	}
	ddb := &fakeDynamo{pages: [][]map[string]types.AttributeValue{page("l-1"), page("l-2")}}
	repo := NewDecisionDynamoRepository(ddb)

	res, err := repo.ListByAssessment(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].LineItemID != "l-1" || res[1].LineItemID != "l-2" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(ddb.queries) != 2 || ddb.queries[1].ExclusiveStartKey == nil {
		t.Fatalf("expected a second page query with ExclusiveStartKey")
	}
}

func TestLineItemSnapshotDynamoRepository_RoundTrip(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewLineItemSnapshotDynamoRepository(ddb)
	captured := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := entities.LineItemSnapshot{
		AssessmentID: "a-1",
		SnapshotID:   "s-1",
		CapturedAt:   captured,
		Items: []entities.LineItem{{
			ID: "l-1", AssessmentID: "a-1", Origin: entities.LineItemOriginAdditional, Category: entities.LineItemCategoryPaint,
			UnitPrice: decimal.RequireFromString("420"), Hours: decimal.RequireFromString("2.5"), LineTotal: decimal.RequireFromString("1050"),
			ParentLineItemID: "l-0", Position: 4,
		}},
	}

	if _, err := repo.ReplaceSnapshot(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.GetSnapshot(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SnapshotID != "s-1" || !got.CapturedAt.Equal(captured) || len(got.Items) != 1 {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	it := got.Items[0]
	if it.AssessmentID != "a-1" || it.ParentLineItemID != "l-0" || it.Position != 4 || !it.LineTotal.Equal(decimal.RequireFromString("1050")) {
		t.Fatalf("unexpected item %+v", it)
	}
}

func TestFRCRecordDynamoRepository_Complete(t *testing.T) {
	rec := entities.FRCRecord{AssessmentID: "a-1", Status: entities.FRCStatusCompleted, NewTotal: decimal.RequireFromString("10.5")}

	t.Run("second completion loses", func(t *testing.T) {
		repo := NewFRCRecordDynamoRepository(&fakeDynamo{putErr: conditionFailed()})
		_, err := repo.Complete(context.Background(), rec)
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("stored totals read back", func(t *testing.T) {
		repo := NewFRCRecordDynamoRepository(&fakeDynamo{})
		if _, err := repo.Complete(context.Background(), rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := repo.Get(context.Background(), "a-1")
		if err != nil || !got.Completed() || got.NewTotal.String() != "10.5" {
			t.Fatalf("unexpected record err=%v rec=%+v", err, got)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		repo := NewFRCRecordDynamoRepository(&fakeDynamo{})
		got, err := repo.Get(context.Background(), "a-1")
		if err != nil || got.AssessmentID != "" {
			t.Fatalf("expected zero record, got %+v %v", got, err)
		}
	})
}

func TestSettlementPaymentDynamoRepository_OneActivePerAssessment(t *testing.T) {
	pay := func(id string, status entities.PaymentStatus) entities.SettlementPayment {
		return entities.SettlementPayment{ID: id, AssessmentID: "a-1", Amount: decimal.RequireFromString("1000"), Date: time.Now().UTC(), Status: status}
	}

	t.Run("denied payment is a plain put", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewSettlementPaymentDynamoRepository(ddb)
		if _, err := repo.Create(context.Background(), pay("p-0", entities.PaymentStatusDenied)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.puts) != 1 || len(ddb.transacts) != 0 {
			t.Fatalf("expected one put and no transaction, got %d/%d", len(ddb.puts), len(ddb.transacts))
		}
	})

	t.Run("second active payment is refused", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewSettlementPaymentDynamoRepository(ddb)

		if _, err := repo.Create(context.Background(), pay("p-1", entities.PaymentStatusApproved)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tx := ddb.transacts[0]
		if len(tx.TransactItems) != 2 {
			t.Fatalf("expected guard and payment puts, got %d", len(tx.TransactItems))
		}
		guard := tx.TransactItems[0].Put
		if id := guard.Item["id"].(*types.AttributeValueMemberS).Value; id != "assessment#a-1" {
			t.Fatalf("unexpected guard id %s", id)
		}
		if _, ok := guard.Item["assessment_id"]; ok {
			t.Fatalf("guard must stay out of the assessment index")
		}
		if aws.ToString(guard.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected condition %q", aws.ToString(guard.ConditionExpression))
		}

		_, err := repo.Create(context.Background(), pay("p-2", entities.PaymentStatusPending))
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrConditionFailed, got %v", err)
		}
	})

	t.Run("other transaction errors pass through", func(t *testing.T) {
		err := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}}}
		if isTransactionConditionFailed(err) {
			t.Fatalf("throttling is not a condition failure")
		}
	})
}

func TestInvoiceMatchDynamoRepository_ListByLineItemFilters(t *testing.T) {
	ddb := &fakeDynamo{pages: [][]map[string]types.AttributeValue{nil}}
	repo := NewInvoiceMatchDynamoRepository(ddb)

	if _, err := repo.ListByLineItem(context.Background(), "a-1", "l-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := ddb.queries[0]
	if aws.ToString(q.FilterExpression) != "#lid = :lid" {
		t.Fatalf("unexpected filter %q", aws.ToString(q.FilterExpression))
	}
}

func TestTableNamesFromEnv(t *testing.T) {
	t.Setenv("DECISIONS_TABLE", "custom_decisions")
	if repo := NewDecisionDynamoRepository(&fakeDynamo{}); repo.tableName != "custom_decisions" {
		t.Fatalf("expected custom table, got %s", repo.tableName)
	}
	t.Setenv("DECISIONS_TABLE", "")
	if repo := NewDecisionDynamoRepository(&fakeDynamo{}); repo.tableName != defaultDecisionsTableName {
		t.Fatalf("expected default table, got %s", repo.tableName)
	}
}
