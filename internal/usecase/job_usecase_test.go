package usecase

import (
	"context"
	"errors"
	"testing"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"
	mock_interfaces "field_estimator/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type jobFixture struct {
	jobs        *mock_interfaces.MockIJobRepository
	assignments *mock_interfaces.MockIJobAssignmentRepository
	catalog     *mock_interfaces.MockICatalogRepository
	settings    *mock_interfaces.MockICompanySettingsRepository
	members     *mock_interfaces.MockICompanyUserRepository
	rules       *mock_interfaces.MockIPricingRuleRepository
	metrics     *mock_interfaces.MockIPricingMetrics
	uc          *JobUseCase
}

func newJobFixture(t *testing.T) jobFixture {
	ctrl := gomock.NewController(t)
	f := jobFixture{
		jobs:        mock_interfaces.NewMockIJobRepository(ctrl),
		assignments: mock_interfaces.NewMockIJobAssignmentRepository(ctrl),
		catalog:     mock_interfaces.NewMockICatalogRepository(ctrl),
		settings:    mock_interfaces.NewMockICompanySettingsRepository(ctrl),
		members:     mock_interfaces.NewMockICompanyUserRepository(ctrl),
		rules:       mock_interfaces.NewMockIPricingRuleRepository(ctrl),
		metrics:     mock_interfaces.NewMockIPricingMetrics(ctrl),
	}
	f.uc = NewJobUseCase(f.jobs, f.assignments, f.catalog, f.settings, f.members, f.rules, nil, f.metrics, nil)
	return f
}

func (f jobFixture) withSettings(s entities.CompanySettings) {
	f.settings.EXPECT().GetByCompanyID(gomock.Any(), testCompanyID).Return(s, nil).AnyTimes()
}

func (f jobFixture) unassigned() {
	f.assignments.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.JobAssignment{}, nil).AnyTimes()
}

func regionSettings() entities.CompanySettings {
	s := entities.DefaultCompanySettings(testCompanyID)
	s.RegionID = uintPtr(1)
	return s
}

func framingService() entities.Service {
	return entities.Service{ID: 30, CompanyID: testCompanyID, SpecialtyID: 5, Name: "Baseboard", PricingUnit: entities.UnitLinearFt, UnitPrice: dec("9.00"), Active: true}
}

func lfRule(id uint, specialty *uint) entities.PricingRule {
	return entities.PricingRule{
		ID:                   id,
		RegionID:             1,
		TradeID:              2,
		SpecialtyID:          specialty,
		Unit:                 entities.UnitLinearFt,
		BasePrice:            dec("10"),
		AnchorMultiplier:     dec("1.15"),
		MaterialMultiplier:   entities.DefaultMaterialMultipliers(),
		ComplexityMultiplier: entities.DefaultComplexityMultipliers(),
		Enabled:              true,
	}
}

func echoCreate(id uint) func(context.Context, entities.Job) (entities.Job, error) {
	return func(_ context.Context, j entities.Job) (entities.Job, error) {
		j.ID = id
		return j, nil
	}
}

func TestJobUseCase_Create_RulePricedItem(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, ownerMember())
	f.withSettings(regionSettings())
	f.unassigned()
	f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)
	f.rules.EXPECT().ListCandidates(gomock.Any(), uint(1), uint(2), entities.UnitLinearFt).
		Return([]entities.PricingRule{lfRule(7, uintPtr(5)), lfRule(8, nil)}, nil)
	f.metrics.EXPECT().ObserveQuote(QuoteResolved)

	var stored entities.Job
	f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
		j.ID = 99
		stored = j
		return j, nil
	})

	got, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{
		TradeID: 2,
		Items: []JobItemInput{{
			ServiceID:       30,
			Qty:             dec("10"),
			MaterialTier:    entities.MaterialStandard,
			ComplexityLevel: entities.ComplexityHard,
		}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stored.Status != entities.JobStatusDraft || stored.CreatedBy != 1 || !stored.AddressLocked {
		t.Fatalf("unexpected stored job: %+v", stored)
	}
	item := stored.Items[0]
	if item.UnitPrice.StringFixed(2) != "15.87" || !item.LineTotal.Equal(dec("158.70")) {
		t.Fatalf("unexpected snapshot: unit=%s line=%s", item.UnitPrice, item.LineTotal)
	}
	if item.PricingUnit != entities.UnitLinearFt {
		t.Fatalf("expected unit from service, got %s", item.PricingUnit)
	}
	if !got.PricesVisible || got.Totals.Total.StringFixed(2) != "158.70" {
		t.Fatalf("unexpected detail: %+v", got)
	}
}

func TestJobUseCase_Create_FallsBackToTradeWideRule(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, ownerMember())
	f.withSettings(regionSettings())
	f.unassigned()
	f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)
	f.rules.EXPECT().ListCandidates(gomock.Any(), uint(1), uint(2), entities.UnitLinearFt).
		Return([]entities.PricingRule{lfRule(8, nil)}, nil)
	f.metrics.EXPECT().ObserveQuote(QuoteFallback)
	f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(100))

	got, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{
		TradeID: 2,
		Items:   []JobItemInput{{ServiceID: 30, Qty: dec("1"), MaterialTier: entities.MaterialStandard, ComplexityLevel: entities.ComplexityHard}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Job.Items[0].UnitPrice.StringFixed(2) != "15.87" {
		t.Fatalf("unexpected unit price %s", got.Job.Items[0].UnitPrice)
	}
}

func TestJobUseCase_Create_PricingFailuresBlockSave(t *testing.T) {
	missingPremium := lfRule(7, uintPtr(5))
	delete(missingPremium.MaterialMultiplier, entities.MaterialPremium)

	tests := []struct {
		name    string
		rules   []entities.PricingRule
		outcome string
		want    error
	}{
		{"no rule", nil, QuoteNotFound, pricing.ErrRuleNotFound},
		{"missing tier", []entities.PricingRule{missingPremium}, QuoteConfiguration, pricing.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newJobFixture(t)
			expectMember(f.members, ownerMember())
			f.withSettings(regionSettings())
			f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)
			f.rules.EXPECT().ListCandidates(gomock.Any(), uint(1), uint(2), entities.UnitLinearFt).Return(tt.rules, nil)
			f.metrics.EXPECT().ObserveQuote(tt.outcome)
			f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{
				TradeID: 2,
				Items:   []JobItemInput{{ServiceID: 30, Qty: dec("1"), MaterialTier: entities.MaterialPremium, ComplexityLevel: entities.ComplexityNormal}},
			})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestJobUseCase_Create_RegionRequiredForRulePricing(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, ownerMember())
	f.withSettings(entities.DefaultCompanySettings(testCompanyID))
	f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)

	_, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{
		TradeID: 2,
		Items:   []JobItemInput{{ServiceID: 30, Qty: dec("1"), MaterialTier: entities.MaterialBasic, ComplexityLevel: entities.ComplexityNormal}},
	})
	if !errors.Is(err, pricing.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestJobUseCase_Create_ItemPricingSources(t *testing.T) {
	t.Run("catalog price when no tier given", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		f.withSettings(entities.DefaultCompanySettings(testCompanyID))
		f.unassigned()
		f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)
		f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(1))

		got, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{TradeID: 2, Items: []JobItemInput{{ServiceID: 30, Qty: dec("2")}}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Job.Items[0].LineTotal.Equal(dec("18")) {
			t.Fatalf("expected catalog line total 18, got %s", got.Job.Items[0].LineTotal)
		}
	})

	t.Run("manual price needs canEditPrices", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))
		f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)

		_, err := f.uc.Create(context.Background(), workerPrincipal, JobInput{TradeID: 2, Items: []JobItemInput{{ServiceID: 30, Qty: dec("1"), UnitPrice: decRef("1.00")}}})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("manual price wins over rule", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		f.withSettings(regionSettings())
		f.unassigned()
		f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)
		f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(1))

		got, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{TradeID: 2, Items: []JobItemInput{{
			ServiceID: 30, Qty: dec("3"), UnitPrice: decRef("150.00"),
			MaterialTier: entities.MaterialPremium, ComplexityLevel: entities.ComplexityHard,
		}}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Job.Items[0].LineTotal.Equal(dec("450")) {
			t.Fatalf("expected 450, got %s", got.Job.Items[0].LineTotal)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())

		_, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{TradeID: 2, Items: []JobItemInput{{ServiceID: 30, Qty: dec("-1")}}})
		if !errors.Is(err, ErrInvalidJobItem) {
			t.Fatalf("expected ErrInvalidJobItem, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(31)).Return(entities.Service{}, nil)

		_, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{TradeID: 2, Items: []JobItemInput{{ServiceID: 31, Qty: dec("1")}}})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("trade required", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())

		_, err := f.uc.Create(context.Background(), ownerPrincipal, JobInput{})
		if !errors.Is(err, ErrInvalidJob) {
			t.Fatalf("expected ErrInvalidJob, got %v", err)
		}
	})
}

func sampleJob() entities.Job {
	return entities.Job{
		ID:        5,
		CompanyID: testCompanyID,
		TradeID:   2,
		CreatedBy: 1,
		Status:    entities.JobStatusSent,
		Items: []entities.JobItem{
			entities.NewJobItem(1, dec("120"), dec("2.50"), entities.UnitLinearFt),
			entities.NewJobItem(2, dec("3"), dec("150.00"), entities.UnitEach),
			entities.NewJobItem(3, dec("1"), dec("450.00"), entities.UnitJob),
		},
	}
}

func ratedSettings() entities.CompanySettings {
	s := entities.DefaultCompanySettings(testCompanyID)
	s.OverheadRate = dec("10")
	s.ProfitRate = dec("20")
	s.TaxRate = dec("6.25")
	s.DefaultLanguage = entities.LanguageEN
	return s
}

func TestJobUseCase_Totals(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, ownerMember())
	f.withSettings(ratedSettings())
	f.unassigned()
	f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil).Times(2)

	view, err := f.uc.Totals(context.Background(), ownerPrincipal, 5, "pt")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Totals.Subtotal.StringFixed(2) != "1200.00" || view.Totals.Total.StringFixed(2) != "1683.00" {
		t.Fatalf("unexpected totals: %+v", view.Totals)
	}
	if view.Language != entities.LanguagePT {
		t.Fatalf("expected explicit language, got %s", view.Language)
	}

	again, err := f.uc.Totals(context.Background(), ownerPrincipal, 5, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !again.Totals.Total.Equal(view.Totals.Total) || again.Language != entities.LanguageEN {
		t.Fatalf("expected stable totals in the default language, got %+v", again)
	}
}

func TestJobUseCase_Totals_ForbiddenWithoutPriceVisibility(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, workerMember(entities.Permissions{CanViewAllSpecialties: true}))
	f.unassigned()
	f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)

	if _, err := f.uc.Totals(context.Background(), workerPrincipal, 5, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobUseCase_Get_RedactsPrices(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, workerMember(entities.Permissions{CanViewAllSpecialties: true}))
	f.unassigned()
	f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)

	got, err := f.uc.Get(context.Background(), workerPrincipal, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.PricesVisible || !got.Totals.Total.IsZero() {
		t.Fatalf("expected hidden prices, got %+v", got)
	}
	for _, it := range got.Job.Items {
		if !it.UnitPrice.IsZero() || !it.LineTotal.IsZero() {
			t.Fatalf("expected redacted item, got %+v", it)
		}
	}
}

func TestJobUseCase_Get_HidesJobsOutsideSpecialties(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))
	job := sampleJob()
	job.SpecialtyID = uintPtr(9)
	f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(job, nil)
	f.members.EXPECT().ListSpecialtyIDs(gomock.Any(), testCompanyID, uint(2)).Return([]uint{5}, nil)

	if _, err := f.uc.Get(context.Background(), workerPrincipal, 5); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUseCase_List(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))
	f.jobs.EXPECT().ListByCompany(gomock.Any(), testCompanyID).Return([]entities.Job{
		{ID: 1, Status: entities.JobStatusDraft, CreatedBy: 2, SpecialtyID: uintPtr(9)},
		{ID: 2, Status: entities.JobStatusSent, SpecialtyID: uintPtr(5)},
		{ID: 3, Status: entities.JobStatusDone, SpecialtyID: uintPtr(9)},
		{ID: 4, Status: entities.JobStatusApproved},
	}, nil)
	f.members.EXPECT().ListSpecialtyIDs(gomock.Any(), testCompanyID, uint(2)).Return([]uint{5}, nil)

	got, err := f.uc.List(context.Background(), workerPrincipal)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 visible jobs, got %d", len(got.Items))
	}
	want := entities.JobStats{Total: 3, Drafts: 1, Sent: 1, Approved: 1}
	if got.Stats != want {
		t.Fatalf("unexpected stats %+v", got.Stats)
	}
}

func TestJobUseCase_ChangeStatus(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)
		updated := sampleJob()
		updated.Status = entities.JobStatusApproved
		f.jobs.EXPECT().UpdateStatus(gomock.Any(), testCompanyID, uint(5), entities.JobStatusSent, entities.JobStatusApproved).Return(updated, nil)

		got, err := f.uc.ChangeStatus(context.Background(), ownerPrincipal, 5, entities.JobStatusApproved)
		if err != nil || got.Status != entities.JobStatusApproved {
			t.Fatalf("unexpected result %v %v", got.Status, err)
		}
	})

	t.Run("concurrent transition loses", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		moved := sampleJob()
		moved.Status = entities.JobStatusApproved
		gomock.InOrder(
			f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil),
			f.jobs.EXPECT().UpdateStatus(gomock.Any(), testCompanyID, uint(5), entities.JobStatusSent, entities.JobStatusInProgress).
				Return(entities.Job{}, nil),
			f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(moved, nil),
		)

		_, err := f.uc.ChangeStatus(context.Background(), ownerPrincipal, 5, entities.JobStatusInProgress)
		if !errors.Is(err, ErrJobStatusConflict) {
			t.Fatalf("expected ErrJobStatusConflict, got %v", err)
		}
	})

	t.Run("deleted before update", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		gomock.InOrder(
			f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil),
			f.jobs.EXPECT().UpdateStatus(gomock.Any(), testCompanyID, uint(5), entities.JobStatusSent, entities.JobStatusApproved).
				Return(entities.Job{}, nil),
			f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(entities.Job{}, nil),
		)

		_, err := f.uc.ChangeStatus(context.Background(), ownerPrincipal, 5, entities.JobStatusApproved)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("backward rejected", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)

		_, err := f.uc.ChangeStatus(context.Background(), ownerPrincipal, 5, entities.JobStatusDraft)
		if !errors.Is(err, entities.ErrInvalidJobTransition) {
			t.Fatalf("expected ErrInvalidJobTransition, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)

		if _, err := f.uc.ChangeStatus(context.Background(), ownerPrincipal, 5, entities.JobStatusSent); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newJobFixture(t)
		if _, err := f.uc.ChangeStatus(context.Background(), ownerPrincipal, 5, "ARCHIVED"); !errors.Is(err, entities.ErrInvalidJobStatus) {
			t.Fatalf("expected ErrInvalidJobStatus, got %v", err)
		}
	})
}

func TestJobUseCase_MyPermissions_CappedByCompany(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))
	job := sampleJob()
	job.CreatedBy = 2
	f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(job, nil)
	f.assignments.EXPECT().Get(gomock.Any(), uint(5), uint(2)).
		Return(entities.JobAssignment{ID: 1, JobID: 5, UserID: 2, Permissions: entities.OwnerPermissions}, nil)

	got, err := f.uc.MyPermissions(context.Background(), workerPrincipal, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != entities.DefaultEmployeePermissions {
		t.Fatalf("expected job grant capped to company ceiling, got %+v", got)
	}
}

func TestJobUseCase_Assign(t *testing.T) {
	t.Run("requires canManageUsers", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))

		_, err := f.uc.Assign(context.Background(), workerPrincipal, 5, 2, entities.OwnerPermissions)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("stores grant", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)
		f.assignments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a entities.JobAssignment) (entities.JobAssignment, error) {
			if a.JobID != 5 || a.UserID != 2 || !a.Permissions.CanEditPrices {
				t.Fatalf("unexpected assignment %+v", a)
			}
			a.ID = 3
			return a, nil
		})

		got, err := f.uc.Assign(context.Background(), ownerPrincipal, 5, 2, entities.Permissions{CanViewPrices: true, CanEditPrices: true})
		if err != nil || got.ID != 3 {
			t.Fatalf("unexpected result %+v %v", got, err)
		}
	})
}

func TestJobUseCase_Update_ReplacesItems(t *testing.T) {
	f := newJobFixture(t)
	expectMember(f.members, ownerMember())
	f.withSettings(entities.DefaultCompanySettings(testCompanyID))
	f.unassigned()
	f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)
	f.catalog.EXPECT().GetService(gomock.Any(), testCompanyID, uint(30)).Return(framingService(), nil)
	f.jobs.EXPECT().Update(gomock.Any(), gomock.Any(), true).DoAndReturn(func(_ context.Context, j entities.Job, _ bool) (entities.Job, error) {
		if len(j.Items) != 1 || j.Items[0].JobID != 5 || j.ClientName != "Ana" {
			t.Fatalf("unexpected update %+v", j)
		}
		return j, nil
	})

	name := " Ana "
	got, err := f.uc.Update(context.Background(), ownerPrincipal, 5, JobPatch{
		ClientName:   &name,
		ReplaceItems: true,
		Items:        []JobItemInput{{ServiceID: 30, Qty: dec("4")}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Totals.Subtotal.Equal(decimal.NewFromInt(36)) {
		t.Fatalf("expected subtotal 36, got %s", got.Totals.Subtotal)
	}
}

func TestJobUseCase_Delete(t *testing.T) {
	t.Run("creator or manager only", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, workerMember(entities.Permissions{CanViewAllSpecialties: true}))
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)

		if err := f.uc.Delete(context.Background(), workerPrincipal, 5); !errors.Is(err, ErrJobDeleteForbidden) {
			t.Fatalf("expected ErrJobDeleteForbidden, got %v", err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		f := newJobFixture(t)
		expectMember(f.members, ownerMember())
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(sampleJob(), nil)
		f.jobs.EXPECT().Delete(gomock.Any(), testCompanyID, uint(5)).Return(true, nil)

		if err := f.uc.Delete(context.Background(), ownerPrincipal, 5); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestJobUseCase_NonMember(t *testing.T) {
	f := newJobFixture(t)
	f.members.EXPECT().Get(gomock.Any(), testCompanyID, uint(77)).Return(entities.CompanyUser{}, nil)

	_, err := f.uc.List(context.Background(), entities.Principal{UserID: 77, CompanyID: testCompanyID, Username: "stranger"})
	if !errors.Is(err, ErrNotCompanyUser) {
		t.Fatalf("expected ErrNotCompanyUser, got %v", err)
	}
}
