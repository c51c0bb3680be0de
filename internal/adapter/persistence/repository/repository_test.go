package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records inputs and answers with the configured functions.
type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	scanPages  [][]map[string]types.AttributeValue
	queryPages [][]map[string]types.AttributeValue

	scans   []*dynamodb.ScanInput
	queries []*dynamodb.QueryInput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteItem(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scans = append(f.scans, in)
	page := len(f.scans) - 1
	out := &dynamodb.ScanOutput{}
	if page < len(f.scanPages) {
		out.Items = f.scanPages[page]
	}
	if page+1 < len(f.scanPages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "next"}}
	}
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	page := len(f.queries) - 1
	out := &dynamodb.QueryOutput{}
	if page < len(f.queryPages) {
		out.Items = f.queryPages[page]
	}
	if page+1 < len(f.queryPages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "next"}}
	}
	return out, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func sampleOrder() entities.Order {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Minute)
	return entities.Order{
		ID:       "os-1",
		Name:     "Motor AP",
		Priority: entities.PriorityAlta,
		OpenedAt: start,
		Status:   entities.OrderStatusFabricacao,
		Services: []entities.Service{{
			Type:     entities.ServiceBloco,
			Subtasks: []entities.SubAtividade{{ID: "s1", Name: "Medição", Selected: true, EstimatedHours: 1.5}},
		}},
		Stages: map[string]entities.StageProgress{
			"lavagem": {
				StartedAt:     &start,
				ResponsibleID: "e1",
				Pauses:        []entities.Pause{{Start: start.Add(time.Minute), End: &end, Reason: "Café"}},
			},
		},
		Progress:  0.25,
		CreatedAt: start,
		UpdatedAt: start,
	}
}

func TestOrderItemConversion(t *testing.T) {
	o := sampleOrder()
	got := fromOrderItem(toOrderItem(o))

	sp := got.StageProgress(entities.StageKey{Stage: entities.StageLavagem})
	if sp.StartedAt == nil || !sp.StartedAt.Equal(*o.Stages["lavagem"].StartedAt) || sp.FinishedAt != nil {
		t.Fatalf("unexpected stage times: %+v", sp)
	}
	if len(sp.Pauses) != 1 || sp.Pauses[0].End == nil || sp.Pauses[0].Reason != "Café" {
		t.Fatalf("unexpected pauses: %+v", sp.Pauses)
	}
	if got.Services[0].Subtasks[0] != o.Services[0].Subtasks[0] {
		t.Fatalf("unexpected subtask: %+v", got.Services[0].Subtasks[0])
	}
	if got.Progress != 0.25 || got.Priority != entities.PriorityAlta || got.ExpectedDelivery != nil {
		t.Fatalf("unexpected order: %+v", got)
	}

	item := mustMarshal(t, toOrderItem(entities.Order{ID: "os-2"}))
	if _, ok := item["etapas"].(*types.AttributeValueMemberM); !ok {
		t.Fatalf("etapas must be stored as a map so nested writes succeed, got %T", item["etapas"])
	}
}

func TestBuildOrderUpdateExpression(t *testing.T) {
	status := entities.OrderStatusFinalizado
	upd := interfaces.OrderUpdate{
		Stages: map[string]entities.StageProgress{
			"retifica:bloco": {Completed: true},
			"lavagem":        {Completed: true},
		},
		Status:        &status,
		Progress:      0.5,
		TotalWorkedMs: 900000,
		UpdatedAt:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	expr, values, names, err := buildOrderUpdateExpression(upd)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "SET #etapas.#k0 = :k0, #etapas.#k1 = :k1, #status = :status, #progress = :progress, #estimated_hours = :estimated_hours, #total_worked_ms = :total_worked_ms, #updated_at = :updated_at"
	if expr != want {
		t.Fatalf("expr:\n got %s\nwant %s", expr, want)
	}
	if names["#k0"] != "lavagem" || names["#k1"] != "retifica:bloco" || names["#etapas"] != "etapas" {
		t.Fatalf("unexpected names: %v", names)
	}
	if _, ok := values[":servicos"]; ok {
		t.Fatalf("services were not changed")
	}
	if v := values[":progress"].(*types.AttributeValueMemberN).Value; v != "0.5" {
		t.Fatalf("unexpected progress value %s", v)
	}

	expr, values, _, err = buildOrderUpdateExpression(interfaces.OrderUpdate{Services: []entities.Service{}})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.HasPrefix(expr, "SET #servicos = :servicos, ") || values[":servicos"] == nil {
		t.Fatalf("empty services list must still be written: %s", expr)
	}
}

func TestOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing returns zero order", func(t *testing.T) {
		ddb := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if !aws.ToBool(in.ConsistentRead) {
				t.Fatalf("order reads must be consistent")
			}
			return &dynamodb.GetItemOutput{}, nil
		}}
		o, err := NewOrderDynamoRepository(ddb, "").GetByID(ctx, "os-1")
		if err != nil || o.ID != "" {
			t.Fatalf("expected zero order, got %+v err=%v", o, err)
		}
	})

	t.Run("update of a missing order", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.TableName) != "custom_orders" {
				t.Fatalf("unexpected table %s", aws.ToString(in.TableName))
			}
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}}
		o, err := NewOrderDynamoRepository(ddb, "custom_orders").Update(ctx, "os-1", interfaces.OrderUpdate{})
		if err != nil || o.ID != "" {
			t.Fatalf("expected zero order, got %+v err=%v", o, err)
		}
	})

	t.Run("update returns stored document", func(t *testing.T) {
		stored := mustMarshal(t, toOrderItem(sampleOrder()))
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if in.ReturnValues != types.ReturnValueAllNew || aws.ToString(in.ConditionExpression) != "attribute_exists(#id)" {
				t.Fatalf("unexpected update input: %+v", in)
			}
			return &dynamodb.UpdateItemOutput{Attributes: stored}, nil
		}}
		o, err := NewOrderDynamoRepository(ddb, "").Update(ctx, "os-1", interfaces.OrderUpdate{})
		if err != nil || o.ID != "os-1" {
			t.Fatalf("unexpected result %+v err=%v", o, err)
		}
	})

	t.Run("list pages with status filter", func(t *testing.T) {
		a, b := sampleOrder(), sampleOrder()
		b.ID = "os-2"
		b.OpenedAt = a.OpenedAt.Add(time.Hour)
		ddb := &fakeDynamo{scanPages: [][]map[string]types.AttributeValue{
			{mustMarshal(t, toOrderItem(a))},
			{mustMarshal(t, toOrderItem(b))},
		}}
		got, err := NewOrderDynamoRepository(ddb, "").List(ctx, entities.OrderStatusFabricacao)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 || got[0].ID != "os-2" {
			t.Fatalf("expected newest first across pages, got %+v", got)
		}
		if aws.ToString(ddb.scans[0].FilterExpression) != "#status = :status" {
			t.Fatalf("expected status filter")
		}
	})

	t.Run("create wraps errors", func(t *testing.T) {
		ddb := &fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, errors.New("boom")
		}}
		_, err := NewOrderDynamoRepository(ddb, "").Create(ctx, sampleOrder())
		if err == nil || !strings.Contains(err.Error(), "put order") {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}

func TestEmployeeBusyDynamoRepository(t *testing.T) {
	ctx := context.Background()
	slot := entities.StageKey{Stage: entities.StageRetifica, ServiceType: entities.ServiceBloco}
	marker := entities.EmployeeBusy{EmployeeID: "e1", OrderID: "os-1", Stage: slot.Stage, ServiceType: slot.ServiceType}

	t.Run("free employee", func(t *testing.T) {
		ddb := &fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if v := in.ExpressionAttributeValues[":slot"].(*types.AttributeValueMemberS).Value; v != "retifica:bloco" {
				t.Fatalf("unexpected slot %s", v)
			}
			return &dynamodb.PutItemOutput{}, nil
		}}
		existing, ok, err := NewEmployeeBusyDynamoRepository(ddb, "").PutIfAvailable(ctx, marker)
		if err != nil || !ok || existing.EmployeeID != "" {
			t.Fatalf("expected new marker, got %+v ok=%v err=%v", existing, ok, err)
		}
	})

	t.Run("occupied elsewhere", func(t *testing.T) {
		other := mustMarshal(t, toBusyItem(entities.EmployeeBusy{EmployeeID: "e1", OrderID: "os-a", Stage: entities.StageLavagem}))
		ddb := &fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: other}
		}}
		existing, ok, err := NewEmployeeBusyDynamoRepository(ddb, "").PutIfAvailable(ctx, marker)
		if err != nil || ok || existing.OrderID != "os-a" || existing.Stage != entities.StageLavagem {
			t.Fatalf("expected conflict with os-a, got %+v ok=%v err=%v", existing, ok, err)
		}
	})

	t.Run("delete only when slot matches", func(t *testing.T) {
		ddb := &fakeDynamo{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		deleted, err := NewEmployeeBusyDynamoRepository(ddb, "").DeleteIfSlot(ctx, "e1", "os-1", slot)
		if err != nil || deleted {
			t.Fatalf("expected no delete, got %v err=%v", deleted, err)
		}
	})
}

func TestSubtaskPresetDynamoRepository(t *testing.T) {
	ddb := &fakeDynamo{queryPages: [][]map[string]types.AttributeValue{{
		mustMarshal(t, subtaskPresetItem{ID: "p2", ServiceType: "bloco", Name: "Brunir", Position: 2}),
		mustMarshal(t, subtaskPresetItem{ID: "p1", ServiceType: "bloco", Name: "Medir", Position: 1}),
	}}}
	got, err := NewSubtaskPresetDynamoRepository(ddb, "").ListByServiceType(context.Background(), entities.ServiceBloco)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
		t.Fatalf("expected presets by position, got %+v", got)
	}
	if aws.ToString(ddb.queries[0].IndexName) != "service_type-index" {
		t.Fatalf("expected the service type index")
	}
}
