package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type pauseItem struct {
	Start  string `dynamodbav:"start"`
	End    string `dynamodbav:"end,omitempty"`
	Reason string `dynamodbav:"reason,omitempty"`
}

type stageItem struct {
	Completed       bool        `dynamodbav:"completed"`
	StartedAt       string      `dynamodbav:"started_at,omitempty"`
	FinishedAt      string      `dynamodbav:"finished_at,omitempty"`
	ResponsibleID   string      `dynamodbav:"responsible_id,omitempty"`
	ResponsibleName string      `dynamodbav:"responsible_name,omitempty"`
	Pauses          []pauseItem `dynamodbav:"pauses"`
	ServiceType     string      `dynamodbav:"service_type,omitempty"`
}

type subtaskItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	Selected       bool    `dynamodbav:"selected"`
	Completed      bool    `dynamodbav:"completed"`
	EstimatedHours float64 `dynamodbav:"estimated_hours"`
}

type serviceItem struct {
	Type            string        `dynamodbav:"type"`
	Description     string        `dynamodbav:"description"`
	Completed       bool          `dynamodbav:"completed"`
	ResponsibleID   string        `dynamodbav:"responsible_id,omitempty"`
	ResponsibleName string        `dynamodbav:"responsible_name,omitempty"`
	CompletionDate  string        `dynamodbav:"completion_date,omitempty"`
	Subtasks        []subtaskItem `dynamodbav:"subtasks"`
}

type orderItem struct {
	ID               string               `dynamodbav:"id"`
	Name             string               `dynamodbav:"name"`
	CustomerID       string               `dynamodbav:"customer_id"`
	Priority         string               `dynamodbav:"priority"`
	OpenedAt         string               `dynamodbav:"opened_at"`
	ExpectedDelivery string               `dynamodbav:"expected_delivery,omitempty"`
	Status           string               `dynamodbav:"status"`
	Services         []serviceItem        `dynamodbav:"servicos"`
	Stages           map[string]stageItem `dynamodbav:"etapas"`
	Progress         float64              `dynamodbav:"progresso_etapas"`
	EstimatedHours   float64              `dynamodbav:"estimated_hours"`
	TotalWorkedMs    int64                `dynamodbav:"total_worked_ms"`
	CreatedAt        string               `dynamodbav:"created_at"`
	UpdatedAt        string               `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Stage progress lives in the etapas map keyed by StageKey.String(), so a
// timer action rewrites only its own map entry.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, fmt.Errorf("marshal order: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("put order: %w", err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("get order: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, fmt.Errorf("unmarshal order: %w", err)
	}
	return fromOrderItem(it), nil
}

// List scans the table, optionally filtered by status.
func (r *OrderDynamoRepository) List(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	out := make([]entities.Order, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan orders: %w", err)
		}
		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		for _, it := range items {
			out = append(out, fromOrderItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenedAt.After(out[j].OpenedAt) })
	return out, nil
}

// Update applies upd in a single UpdateItem and returns the stored document.
// A missing order yields a zero Order.
func (r *OrderDynamoRepository) Update(ctx context.Context, id string, upd interfaces.OrderUpdate) (entities.Order, error) {
	expr, values, names, err := buildOrderUpdateExpression(upd)
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Order{}, nil
		}
		return entities.Order{}, fmt.Errorf("update order: %w", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, fmt.Errorf("unmarshal order: %w", err)
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// buildOrderUpdateExpression renders upd as one SET expression. Changed
// stage keys are written as etapas.<key> so untouched keys are kept.
func buildOrderUpdateExpression(upd interfaces.OrderUpdate) (string, map[string]types.AttributeValue, map[string]string, error) {
	sets := make([]string, 0, len(upd.Stages)+6)
	values := map[string]types.AttributeValue{
		":progress":        &types.AttributeValueMemberN{Value: floatToString(upd.Progress)},
		":estimated_hours": &types.AttributeValueMemberN{Value: floatToString(upd.EstimatedHours)},
		":total_worked_ms": &types.AttributeValueMemberN{Value: strconv.FormatInt(upd.TotalWorkedMs, 10)},
		":updated_at":      &types.AttributeValueMemberS{Value: formatTime(upd.UpdatedAt)},
	}
	names := map[string]string{
		"#progress":        "progresso_etapas",
		"#estimated_hours": "estimated_hours",
		"#total_worked_ms": "total_worked_ms",
		"#updated_at":      "updated_at",
	}

	keys := make([]string, 0, len(upd.Stages))
	for k := range upd.Stages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		names["#etapas"] = "etapas"
	}
	for i, k := range keys {
		av, err := attributevalue.Marshal(toStageItem(upd.Stages[k]))
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal stage %s: %w", k, err)
		}
		name, value := fmt.Sprintf("#k%d", i), fmt.Sprintf(":k%d", i)
		names[name] = k
		values[value] = av
		sets = append(sets, fmt.Sprintf("#etapas.%s = %s", name, value))
	}

	if upd.Services != nil {
		av, err := attributevalue.Marshal(toServiceItems(upd.Services))
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal services: %w", err)
		}
		names["#servicos"] = "servicos"
		values[":servicos"] = av
		sets = append(sets, "#servicos = :servicos")
	}
	if upd.Status != nil {
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*upd.Status)}
		sets = append(sets, "#status = :status")
	}

	sets = append(sets,
		"#progress = :progress",
		"#estimated_hours = :estimated_hours",
		"#total_worked_ms = :total_worked_ms",
		"#updated_at = :updated_at",
	)
	return "SET " + strings.Join(sets, ", "), values, names, nil
}

func toOrderItem(o entities.Order) orderItem {
	stages := make(map[string]stageItem, len(o.Stages))
	for k, sp := range o.Stages {
		stages[k] = toStageItem(sp)
	}
	return orderItem{
		ID:               o.ID,
		Name:             o.Name,
		CustomerID:       o.CustomerID,
		Priority:         string(o.Priority),
		OpenedAt:         formatTime(o.OpenedAt),
		ExpectedDelivery: formatTimePtr(o.ExpectedDelivery),
		Status:           string(o.Status),
		Services:         toServiceItems(o.Services),
		Stages:           stages,
		Progress:         o.Progress,
		EstimatedHours:   o.EstimatedHours,
		TotalWorkedMs:    o.TotalWorkedMs,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	stages := make(map[string]entities.StageProgress, len(it.Stages))
	for k, st := range it.Stages {
		stages[k] = fromStageItem(st)
	}
	services := make([]entities.Service, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, fromServiceItem(s))
	}
	return entities.Order{
		ID:               it.ID,
		Name:             it.Name,
		CustomerID:       it.CustomerID,
		Priority:         entities.Priority(it.Priority),
		OpenedAt:         parseTime(it.OpenedAt),
		ExpectedDelivery: parseTimePtr(it.ExpectedDelivery),
		Status:           entities.OrderStatus(it.Status),
		Services:         services,
		Stages:           stages,
		Progress:         it.Progress,
		EstimatedHours:   it.EstimatedHours,
		TotalWorkedMs:    it.TotalWorkedMs,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func toStageItem(sp entities.StageProgress) stageItem {
	pauses := make([]pauseItem, 0, len(sp.Pauses))
	for _, p := range sp.Pauses {
		pauses = append(pauses, pauseItem{Start: formatTime(p.Start), End: formatTimePtr(p.End), Reason: p.Reason})
	}
	return stageItem{
		Completed:       sp.Completed,
		StartedAt:       formatTimePtr(sp.StartedAt),
		FinishedAt:      formatTimePtr(sp.FinishedAt),
		ResponsibleID:   sp.ResponsibleID,
		ResponsibleName: sp.ResponsibleName,
		Pauses:          pauses,
		ServiceType:     string(sp.ServiceType),
	}
}

func fromStageItem(it stageItem) entities.StageProgress {
	var pauses []entities.Pause
	for _, p := range it.Pauses {
		pauses = append(pauses, entities.Pause{Start: parseTime(p.Start), End: parseTimePtr(p.End), Reason: p.Reason})
	}
	return entities.StageProgress{
		Completed:       it.Completed,
		StartedAt:       parseTimePtr(it.StartedAt),
		FinishedAt:      parseTimePtr(it.FinishedAt),
		ResponsibleID:   it.ResponsibleID,
		ResponsibleName: it.ResponsibleName,
		Pauses:          pauses,
		ServiceType:     entities.ServiceType(it.ServiceType),
	}
}

func toServiceItems(services []entities.Service) []serviceItem {
	out := make([]serviceItem, 0, len(services))
	for _, s := range services {
		subs := make([]subtaskItem, 0, len(s.Subtasks))
		for _, st := range s.Subtasks {
			subs = append(subs, subtaskItem(st))
		}
		out = append(out, serviceItem{
			Type:            string(s.Type),
			Description:     s.Description,
			Completed:       s.Completed,
			ResponsibleID:   s.ResponsibleID,
			ResponsibleName: s.ResponsibleName,
			CompletionDate:  formatTimePtr(s.CompletionDate),
			Subtasks:        subs,
		})
	}
	return out
}

func fromServiceItem(it serviceItem) entities.Service {
	subs := make([]entities.SubAtividade, 0, len(it.Subtasks))
	for _, st := range it.Subtasks {
		subs = append(subs, entities.SubAtividade(st))
	}
	return entities.Service{
		Type:            entities.ServiceType(it.Type),
		Description:     it.Description,
		Completed:       it.Completed,
		ResponsibleID:   it.ResponsibleID,
		ResponsibleName: it.ResponsibleName,
		CompletionDate:  parseTimePtr(it.CompletionDate),
		Subtasks:        subs,
	}
}
