package main

import (
	"context"
	"fmt"

	"field_estimator/internal/adapter/persistence/repository"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/infrastructure/auth"

	"github.com/go-extras/cobraflags"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type testUser struct {
	Username    string
	Role        entities.Role
	TradeSlug   string
	Specialties []string
}

var testUsers = []testUser{
	{"admintest", entities.RoleOwner, "carpentry", []string{"finish", "deck", "stairs", "doors", "windows", "baseboard"}},
	{"mateustest", entities.RoleUser, "carpentry", []string{"finish", "deck", "stairs", "doors", "windows", "baseboard"}},
	{"brothertest", entities.RoleUser, "carpentry", []string{"finish", "deck"}},
	{"painttest", entities.RoleUser, "painting", []string{"general"}},
	{"cleantest", entities.RoleUser, "house_cleaning", []string{"general"}},
}

const (
	passwordFlag      = "password"
	companyFlag       = "company"
	companyRegionFlag = "company-region"
)

var testUserFlags = map[string]cobraflags.Flag{
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "test1234",
		Usage: "Password set on every demo account",
	},
	companyFlag: &cobraflags.StringFlag{
		Name:  companyFlag,
		Value: "Demo Finish Carpentry",
		Usage: "Name of the demo company the accounts join",
	},
	companyRegionFlag: &cobraflags.StringFlag{
		Name:  companyRegionFlag,
		Value: defaultRegionCode,
		Usage: "Code of the region the demo company prices in",
	},
}

func newTestUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test-users",
		Short: "Seed a demo company with one OWNER and several USER accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, log, err := connect()
			if err != nil {
				return err
			}
			password := testUserFlags[passwordFlag].GetString()
			if len(password) < 8 {
				return fmt.Errorf("--%s must be at least 8 characters", passwordFlag)
			}

			seeder := repository.NewSeeder(db)
			cat, err := seedCatalog(cmd.Context(), seeder, repository.NewPricingRuleRepository(db), log,
				testUserFlags[companyRegionFlag].GetString(), defaultRegionName)
			if err != nil {
				return err
			}
			return seedTestUsers(cmd.Context(), seeder, repository.NewCompanySettingsRepository(db),
				auth.NewBcryptHasher(auth.DefaultBcryptCost), log, cat,
				testUserFlags[companyFlag].GetString(), password)
		},
	}
	cobraflags.RegisterMap(cmd, testUserFlags)
	return cmd
}

func seedTestUsers(
	ctx context.Context,
	seeder *repository.Seeder,
	settings *repository.CompanySettingsRepository,
	hasher *auth.BcryptHasher,
	log *zap.Logger,
	cat seededCatalog,
	companyName, password string,
) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	owner := testUsers[0]
	ownerID, err := seeder.EnsureUser(ctx, owner.Username, hash, string(owner.Role))
	if err != nil {
		return fmt.Errorf("user %s: %w", owner.Username, err)
	}
	companyID, err := seeder.EnsureCompany(ctx, companyName, cat.Trades[owner.TradeSlug], ownerID)
	if err != nil {
		return fmt.Errorf("company %q: %w", companyName, err)
	}

	for _, tu := range testUsers {
		userID, err := seeder.EnsureUser(ctx, tu.Username, hash, string(tu.Role))
		if err != nil {
			return fmt.Errorf("user %s: %w", tu.Username, err)
		}
		if err := seeder.EnsureMember(ctx, companyID, userID, tu.Role); err != nil {
			return fmt.Errorf("membership %s: %w", tu.Username, err)
		}
		for _, slug := range tu.Specialties {
			specialtyID, ok := cat.Specialties[tu.TradeSlug][slug]
			if !ok {
				log.Warn("[seed][users] specialty not found, skipped", zap.String("trade", tu.TradeSlug), zap.String("specialty", slug))
				continue
			}
			if err := seeder.EnsureUserSpecialty(ctx, companyID, userID, specialtyID); err != nil {
				return fmt.Errorf("specialty %s for %s: %w", slug, tu.Username, err)
			}
		}
		log.Info("[seed][users] account ready", zap.String("username", tu.Username), zap.String("role", string(tu.Role)))
	}

	s := entities.DefaultCompanySettings(companyID)
	s.TaxRate = decimal.RequireFromString("6.25")
	s.RegionID = &cat.RegionID
	if _, err := settings.Upsert(ctx, s); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	log.Info("[seed][users] done", zap.Uint("company_id", companyID), zap.Int("accounts", len(testUsers)))
	return nil
}
