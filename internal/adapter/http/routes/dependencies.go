package routes

import (
	"context"
	"fmt"
	"time"

	"field_estimator/internal/adapter/http/handlers"
	"field_estimator/internal/adapter/persistence/repository"
	"field_estimator/internal/infrastructure/auth"
	"field_estimator/internal/infrastructure/cache"
	"field_estimator/internal/infrastructure/config"
	"field_estimator/internal/infrastructure/database"
	"field_estimator/internal/infrastructure/mail"
	"field_estimator/internal/infrastructure/metrics"
	"field_estimator/internal/infrastructure/payments"
	"field_estimator/internal/usecase"
	"field_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const slowQueryThreshold = 200 * time.Millisecond

// dependencies holds everything built from configuration that outlives a
// single request.
type dependencies struct {
	handlers Handlers
	tokens   *auth.TokenIssuer
	metrics  *metrics.Metrics
	closers  []func() error
}

func (d *dependencies) Close(log *zap.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Warn("[routes][shutdown] close failed", zap.Error(err))
		}
	}
}

func buildDependencies(ctx context.Context, cfg config.AppConfig, log *zap.Logger) (*dependencies, error) {
	deps := &dependencies{metrics: metrics.New("field_estimator")}

	db, err := database.ConnectPostgres(cfg.Database, log, slowQueryThreshold)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, sqlDB.Close)

	if cfg.IsDev() {
		if err := repository.Migrate(db); err != nil {
			deps.Close(log)
			return nil, err
		}
		log.Info("[routes][startup] schema migrated")
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		deps.Close(log)
		return nil, fmt.Errorf("connecting dynamodb: %w", err)
	}

	checks := map[string]handlers.HealthCheck{
		"postgres": sqlDB.PingContext,
		"dynamodb": func(ctx context.Context) error {
			_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(cfg.Dynamo.AuditLogTable)})
			return err
		},
	}

	var ruleCache interfaces.IPricingRuleCache
	rdb, err := cache.ConnectRedis(ctx, cfg.Redis)
	switch {
	case err != nil:
		log.Warn("[routes][startup] redis unavailable, pricing rules will not be cached", zap.Error(err))
	case rdb == nil:
		log.Info("[routes][startup] redis not configured, pricing rules will not be cached")
	default:
		ruleCache = repository.NewPricingRuleRedisCache(rdb, cfg.Redis.PricingCacheTTL)
		deps.closers = append(deps.closers, rdb.Close)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, log)
	if err != nil {
		log.Warn("[routes][startup] payment gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	mailer := mail.NewMailer(cfg.SMTP)
	if mailer == nil {
		log.Info("[routes][startup] smtp not configured, invite links are returned without e-mail")
	}

	deps.tokens = auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Expiration, cfg.ServiceName)
	hasher := auth.NewBcryptHasher(auth.DefaultBcryptCost)

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	memberRepo := repository.NewCompanyUserRepository(db)
	settingsRepo := repository.NewCompanySettingsRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	jobRepo := repository.NewJobRepository(db)
	assignmentRepo := repository.NewJobAssignmentRepository(db)
	ruleRepo := repository.NewPricingRuleRepository(db)
	photoRepo := repository.NewEstimatePhotoRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	auditRepo := repository.NewAuditLogDynamoRepository(ddb, cfg.Dynamo.AuditLogTable)
	paymentRepo := repository.NewJobPaymentDynamoRepository(ddb, cfg.Dynamo.JobPaymentsTable)

	jobUseCase := usecase.NewJobUseCase(jobRepo, assignmentRepo, catalogRepo, settingsRepo, memberRepo, ruleRepo, ruleCache, deps.metrics, auditRepo)
	ruleUseCase := usecase.NewPricingRuleUseCase(ruleRepo, ruleCache, deps.metrics, settingsRepo, memberRepo, auditRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, memberRepo, auditRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, memberRepo)
	memberUseCase := usecase.NewMemberUseCase(memberRepo, auditRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, memberRepo, hasher, deps.tokens)
	inviteUseCase := usecase.NewInviteUseCase(inviteRepo, userRepo, companyRepo, memberRepo, hasher, deps.tokens, mailer, auditRepo, cfg.InviteBaseURL)
	photoUseCase := usecase.NewPhotoUseCase(photoRepo, jobRepo, memberRepo, auditRepo)
	auditUseCase := usecase.NewAuditUseCase(auditRepo, memberRepo)
	paymentUseCase := usecase.NewJobPaymentUseCase(paymentRepo, jobRepo, settingsRepo, gateway, memberRepo, auditRepo, cfg.Payments.Currency)

	deps.handlers = Handlers{
		Health:      handlers.NewHealthHandler(checks),
		Auth:        handlers.NewAuthHandler(authUseCase),
		Invites:     handlers.NewInviteHandler(inviteUseCase),
		Members:     handlers.NewMemberHandler(memberUseCase),
		Catalog:     handlers.NewCatalogHandler(catalogUseCase),
		Settings:    handlers.NewSettingsHandler(settingsUseCase),
		PricingRule: handlers.NewPricingRuleHandler(ruleUseCase),
		Jobs:        handlers.NewJobHandler(jobUseCase, cfg.Payments.Currency),
		JobPayments: handlers.NewJobPaymentHandler(paymentUseCase, cfg.Payments.Mock),
		Photos:      handlers.NewPhotoHandler(photoUseCase),
		Audit:       handlers.NewAuditHandler(auditUseCase),
	}
	return deps, nil
}
