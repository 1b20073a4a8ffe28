package repository

import (
	"context"
	"strconv"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const auditLogCompanyIndex = "company_id-index"

// sortKeyTime keeps every fraction digit so range keys compare lexically
// in time order. RFC3339Nano trims trailing zeros and does not.
const sortKeyTime = "2006-01-02T15:04:05.000000000Z07:00"

type auditLogItem struct {
	ID          string            `dynamodbav:"id"`
	CompanyID   uint              `dynamodbav:"company_id"`
	ActorUserID uint              `dynamodbav:"actor_user_id"`
	Action      string            `dynamodbav:"action"`
	JobID       *uint             `dynamodbav:"job_id,omitempty"`
	Meta        map[string]string `dynamodbav:"meta,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository appends audit entries to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id number, SK: created_at string)
//
// created_at is stored in UTC with a fixed-width fraction (sortKeyTime).

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client, tableName string) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	av, err := attributevalue.MarshalMap(toAuditLogItem(e))
	if err != nil {
		return entities.AuditLogEntry{}, err
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
		return entities.AuditLogEntry{}, err
	}
	return e, nil
}

func (r *AuditLogDynamoRepository) ListByCompany(ctx context.Context, companyID uint, limit int32) ([]entities.AuditLogEntry, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(auditLogCompanyIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(companyID), 10)},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(limit)
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditLogEntry, 0, len(out.Items))
	for _, raw := range out.Items {
		var it auditLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromAuditLogItem(it))
	}
	return entries, nil
}

func toAuditLogItem(e entities.AuditLogEntry) auditLogItem {
	return auditLogItem{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		ActorUserID: e.ActorUserID,
		Action:      e.Action,
		JobID:       e.JobID,
		Meta:        e.Meta,
		CreatedAt:   e.CreatedAt.UTC().Format(sortKeyTime),
	}
}

func fromAuditLogItem(it auditLogItem) entities.AuditLogEntry {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AuditLogEntry{
		ID:          it.ID,
		CompanyID:   it.CompanyID,
		ActorUserID: it.ActorUserID,
		Action:      it.Action,
		JobID:       it.JobID,
		Meta:        it.Meta,
		CreatedAt:   createdAt,
	}
}
