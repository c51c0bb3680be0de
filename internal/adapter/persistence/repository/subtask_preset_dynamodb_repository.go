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
)

const (
	defaultSubtaskPresetsTableName = "subtask_presets"
	subtaskPresetsServiceTypeIndex = "service_type-index"
)

type subtaskPresetItem struct {
	ID             string  `dynamodbav:"id"`
	ServiceType    string  `dynamodbav:"service_type"`
	Name           string  `dynamodbav:"name"`
	EstimatedHours float64 `dynamodbav:"estimated_hours"`
	Position       int     `dynamodbav:"position"`
}

// SubtaskPresetDynamoRepository reads the checklist catalog.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_type-index (PK: service_type)
type SubtaskPresetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubtaskPresetRepository = (*SubtaskPresetDynamoRepository)(nil)

func NewSubtaskPresetDynamoRepository(ddb DynamoAPI, tableName string) *SubtaskPresetDynamoRepository {
	return &SubtaskPresetDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSubtaskPresetsTableName),
	}
}

// ListByServiceType returns the presets of t ordered by position.
func (r *SubtaskPresetDynamoRepository) ListByServiceType(ctx context.Context, t entities.ServiceType) ([]entities.SubtaskPreset, error) {
	out := make([]entities.SubtaskPreset, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subtaskPresetsServiceTypeIndex),
		KeyConditionExpression: aws.String("#service_type = :service_type"),
		ExpressionAttributeNames: map[string]string{
			"#service_type": "service_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":service_type": &types.AttributeValueMemberS{Value: string(t)},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query subtask presets: %w", err)
		}
		var items []subtaskPresetItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("unmarshal subtask presets: %w", err)
		}
		for _, it := range items {
			out = append(out, entities.SubtaskPreset{
				ID:             it.ID,
				ServiceType:    entities.ServiceType(it.ServiceType),
				Name:           it.Name,
				EstimatedHours: it.EstimatedHours,
				Position:       it.Position,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}
