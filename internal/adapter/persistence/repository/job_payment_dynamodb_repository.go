package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const jobPaymentsJobKeyIndex = "job_key-index"

type jobPaymentItem struct {
	ID                string `dynamodbav:"id"`
	JobKey            string `dynamodbav:"job_key"`
	CompanyID         uint   `dynamodbav:"company_id"`
	JobID             uint   `dynamodbav:"job_id"`
	Amount            string `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	Date              string `dynamodbav:"date"`
	Status            string `dynamodbav:"status"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload   string `dynamodbav:"provider_payload_raw,omitempty"`
}

// JobPaymentDynamoRepository persists JobPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_key-index (PK: job_key, SK: date)
//
// date uses sortKeyTime in UTC.

type JobPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobPaymentRepository = (*JobPaymentDynamoRepository)(nil)

func NewJobPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *JobPaymentDynamoRepository {
	return &JobPaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func jobKey(companyID, jobID uint) string {
	return fmt.Sprintf("%d#%d", companyID, jobID)
}

func (r *JobPaymentDynamoRepository) Create(ctx context.Context, p entities.JobPayment) (entities.JobPayment, error) {
	av, err := attributevalue.MarshalMap(toJobPaymentItem(p))
	if err != nil {
		return entities.JobPayment{}, err
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
		return entities.JobPayment{}, err
	}
	return p, nil
}

func (r *JobPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobPayment{}, nil
	}

	var it jobPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobPayment{}, err
	}
	return fromJobPaymentItem(it), nil
}

// ListByJob returns the job's payments, newest first.
func (r *JobPaymentDynamoRepository) ListByJob(ctx context.Context, companyID, jobID uint) ([]entities.JobPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobPaymentsJobKeyIndex),
		KeyConditionExpression: aws.String("job_key = :jk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jk": &types.AttributeValueMemberS{Value: jobKey(companyID, jobID)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.JobPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromJobPaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func toJobPaymentItem(p entities.JobPayment) jobPaymentItem {
	return jobPaymentItem{
		ID:                p.ID,
		JobKey:            jobKey(p.CompanyID, p.JobID),
		CompanyID:         p.CompanyID,
		JobID:             p.JobID,
		Amount:            p.Amount.StringFixed(2),
		Currency:          p.Currency,
		Date:              p.Date.UTC().Format(sortKeyTime),
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderPayload:   string(p.ProviderPayloadRaw),
	}
}

func fromJobPaymentItem(it jobPaymentItem) entities.JobPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := decimal.NewFromString(it.Amount)
	p := entities.JobPayment{
		ID:                it.ID,
		CompanyID:         it.CompanyID,
		JobID:             it.JobID,
		Amount:            amount,
		Currency:          it.Currency,
		Date:              dt,
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.ProviderPayload != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayload)
	}
	return p
}
