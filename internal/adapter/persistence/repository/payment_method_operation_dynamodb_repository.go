package repository

import (
	"context"
	"time"

	"payment_method_gateway/internal/domain/entities"
	"payment_method_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOperationsTableName = "payment_method_operations"
	operationsTokenIndex       = "token-index"
)

type paymentMethodOperationItem struct {
	ID                string                 `dynamodbav:"id"`
	Operation         string                 `dynamodbav:"operation"`
	Token             string                 `dynamodbav:"token"`
	PaymentMethodKind string                 `dynamodbav:"payment_method_kind,omitempty"`
	Success           bool                   `dynamodbav:"success"`
	Date              string                 `dynamodbav:"date"`
	Response          map[string]interface{} `dynamodbav:"response,omitempty"`
	ResponseRaw       string                 `dynamodbav:"response_raw,omitempty"`
}

// PaymentMethodOperationDynamoRepository persists PaymentMethodOperation records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: token-index (PK: token)

type PaymentMethodOperationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentMethodOperationRepository = (*PaymentMethodOperationDynamoRepository)(nil)

func NewPaymentMethodOperationDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentMethodOperationDynamoRepository {
	return &PaymentMethodOperationDynamoRepository{
		ddb:       ddb,
		tableName: orDefault(tableName, defaultOperationsTableName),
	}
}

func (r *PaymentMethodOperationDynamoRepository) Create(ctx context.Context, op entities.PaymentMethodOperation) (entities.PaymentMethodOperation, error) {
	av, err := attributevalue.MarshalMap(toOperationItem(op))
	if err != nil {
		return entities.PaymentMethodOperation{}, err
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
		return entities.PaymentMethodOperation{}, err
	}
	return op, nil
}

func (r *PaymentMethodOperationDynamoRepository) ListByToken(ctx context.Context, token string) ([]entities.PaymentMethodOperation, error) {
	var (
		items     []entities.PaymentMethodOperation
		startKey  map[string]types.AttributeValue
		firstPage = true
	)
	for firstPage || startKey != nil {
		firstPage = false
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(operationsTokenIndex),
			KeyConditionExpression: aws.String("#token = :token"),
			ExpressionAttributeNames: map[string]string{
				"#token": "token",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":token": &types.AttributeValueMemberS{Value: token},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it paymentMethodOperationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOperationItem(it))
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toOperationItem(op entities.PaymentMethodOperation) paymentMethodOperationItem {
	return paymentMethodOperationItem{
		ID:                op.ID,
		Operation:         string(op.Operation),
		Token:             op.Token,
		PaymentMethodKind: string(op.PaymentMethodKind),
		Success:           op.Success,
		Date:              op.Date.UTC().Format(time.RFC3339Nano),
		Response:          op.Response,
		ResponseRaw:       string(op.ResponseRaw),
	}
}

func fromOperationItem(it paymentMethodOperationItem) entities.PaymentMethodOperation {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.PaymentMethodOperation{
		ID:                it.ID,
		Operation:         entities.OperationType(it.Operation),
		Token:             it.Token,
		PaymentMethodKind: entities.PaymentMethodKind(it.PaymentMethodKind),
		Success:           it.Success,
		Date:              dt,
		Response:          it.Response,
		ResponseRaw:       []byte(it.ResponseRaw),
	}
}
