package repository

import (
	"context"
	"fmt"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEmployeeBusyTableName = "employees_in_service"

type employeeBusyItem struct {
	EmployeeID  string `dynamodbav:"employee_id"`
	OrderID     string `dynamodbav:"order_id"`
	Stage       string `dynamodbav:"stage"`
	ServiceType string `dynamodbav:"service_type,omitempty"`
	Slot        string `dynamodbav:"slot"`
	Since       string `dynamodbav:"since"`
}

// EmployeeBusyDynamoRepository keeps one "in service" marker per employee.
//
// Table requirements:
//   - PK: employee_id (string)
//
// Exclusivity is enforced by conditional writes on order_id and slot.
type EmployeeBusyDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEmployeeBusyRepository = (*EmployeeBusyDynamoRepository)(nil)

func NewEmployeeBusyDynamoRepository(ddb DynamoAPI, tableName string) *EmployeeBusyDynamoRepository {
	return &EmployeeBusyDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEmployeeBusyTableName),
	}
}

func (r *EmployeeBusyDynamoRepository) Get(ctx context.Context, employeeID string) (entities.EmployeeBusy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            busyKey(employeeID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EmployeeBusy{}, fmt.Errorf("get busy marker: %w", err)
	}
	return decodeBusy(out.Item)
}

func (r *EmployeeBusyDynamoRepository) List(ctx context.Context) ([]entities.EmployeeBusy, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *EmployeeBusyDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.EmployeeBusy, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
}

func (r *EmployeeBusyDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.EmployeeBusy, error) {
	out := make([]entities.EmployeeBusy, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan busy markers: %w", err)
		}
		var items []employeeBusyItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal busy markers: %w", err)
		}
		for _, it := range items {
			out = append(out, fromBusyItem(it))
		}
	}
	return out, nil
}

// PutIfAvailable writes b unless the employee holds a marker for another
// order or slot. existing is the marker found before the write (zero when
// the employee was free).
func (r *EmployeeBusyDynamoRepository) PutIfAvailable(ctx context.Context, b entities.EmployeeBusy) (entities.EmployeeBusy, bool, error) {
	av, err := attributevalue.MarshalMap(toBusyItem(b))
	if err != nil {
		return entities.EmployeeBusy{}, false, fmt.Errorf("marshal busy marker: %w", err)
	}

	out, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#employee_id) OR (#order_id = :order_id AND #slot = :slot)"),
		ExpressionAttributeNames: map[string]string{
			"#employee_id": "employee_id",
			"#order_id":    "order_id",
			"#slot":        "slot",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: b.OrderID},
			":slot":     &types.AttributeValueMemberS{Value: b.Slot().String()},
		},
		ReturnValues:                        types.ReturnValueAllOld,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if cfe, ok := conditionFailed(err); ok {
			existing, derr := decodeBusy(cfe.Item)
			if derr != nil {
				return entities.EmployeeBusy{}, false, derr
			}
			if existing.EmployeeID == "" {
				existing.EmployeeID = b.EmployeeID
			}
			return existing, false, nil
		}
		return entities.EmployeeBusy{}, false, fmt.Errorf("put busy marker: %w", err)
	}

	existing, err := decodeBusy(out.Attributes)
	if err != nil {
		return entities.EmployeeBusy{}, false, err
	}
	return existing, true, nil
}

// DeleteIfSlot removes the employee's marker only while it still points at
// orderID/slot.
func (r *EmployeeBusyDynamoRepository) DeleteIfSlot(ctx context.Context, employeeID, orderID string, slot entities.StageKey) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 busyKey(employeeID),
		ConditionExpression: aws.String("#order_id = :order_id AND #slot = :slot"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
			"#slot":     "slot",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
			":slot":     &types.AttributeValueMemberS{Value: slot.String()},
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return false, nil
		}
		return false, fmt.Errorf("delete busy marker: %w", err)
	}
	return true, nil
}

func busyKey(employeeID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"employee_id": &types.AttributeValueMemberS{Value: employeeID},
	}
}

func decodeBusy(item map[string]types.AttributeValue) (entities.EmployeeBusy, error) {
	if len(item) == 0 {
		return entities.EmployeeBusy{}, nil
	}
	var it employeeBusyItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.EmployeeBusy{}, fmt.Errorf("unmarshal busy marker: %w", err)
	}
	return fromBusyItem(it), nil
}

func toBusyItem(b entities.EmployeeBusy) employeeBusyItem {
	return employeeBusyItem{
		EmployeeID:  b.EmployeeID,
		OrderID:     b.OrderID,
		Stage:       string(b.Stage),
		ServiceType: string(b.ServiceType),
		Slot:        b.Slot().String(),
		Since:       formatTime(b.Since),
	}
}

func fromBusyItem(it employeeBusyItem) entities.EmployeeBusy {
	return entities.EmployeeBusy{
		EmployeeID:  it.EmployeeID,
		OrderID:     it.OrderID,
		Stage:       entities.Stage(it.Stage),
		ServiceType: entities.ServiceType(it.ServiceType),
		Since:       parseTime(it.Since),
	}
}
