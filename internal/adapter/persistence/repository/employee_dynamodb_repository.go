package repository

import (
	"context"
	"fmt"
	"sort"

	"retifica_os/internal/domain/entities"
	"retifica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

const defaultEmployeesTableName = "employees"

type employeeItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Specialties []string `dynamodbav:"specialties"`
	Active      bool     `dynamodbav:"active"`
	Role        string   `dynamodbav:"role"`
}

// EmployeeDynamoRepository reads the employee roster.
//
// Table requirements:
//   - PK: id (string)
type EmployeeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(ddb DynamoAPI, tableName string) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEmployeesTableName),
	}
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	out := make([]entities.Employee, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan employees: %w", err)
		}
		var items []employeeItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal employees: %w", err)
		}
		out = append(out, lo.Map(items, func(it employeeItem, _ int) entities.Employee { return fromEmployeeItem(it) })...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Employee{}, nil
	}
	var it employeeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Employee{}, fmt.Errorf("unmarshal employee: %w", err)
	}
	return fromEmployeeItem(it), nil
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:          it.ID,
		Name:        it.Name,
		Specialties: lo.Map(it.Specialties, func(s string, _ int) entities.ServiceType { return entities.ServiceType(s) }),
		Active:      it.Active,
		Role:        entities.Role(it.Role),
	}
}
