package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/gymdesk-api/internal/domain/entity"
	"github.com/gymdesk/gymdesk-api/internal/domain/enum"
	infraRepo "github.com/gymdesk/gymdesk-api/internal/infrastructure/repository"
	"github.com/gymdesk/gymdesk-api/internal/infrastructure/storage"
	"github.com/gymdesk/gymdesk-api/pkg/pagination"
	"github.com/gymdesk/gymdesk-api/pkg/utils"
)

func newMemberService(t *testing.T) (*MemberService, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewMemberService(
		infraRepo.NewMemberRepository(store),
		infraRepo.NewPackageRepository(store),
	), store
}

func seedPackage(t *testing.T, store storage.Store, pkg entity.Package) {
	t.Helper()
	repo := infraRepo.NewPackageRepository(store)
	require.NoError(t, repo.Create(context.Background(), &pkg))
}

func TestCreateMember_DerivesEndDateAndSessions(t *testing.T) {
	svc, store := newMemberService(t)
	ctx := context.Background()
	seedPackage(t, store, entity.Package{
		ID:           "pkg-10",
		Name:         "10 Ders Reformer",
		Type:         entity.PackageTypeLessonBundle,
		Price:        7500,
		SessionCount: 10,
		ValidityDays: 60,
		IsActive:     true,
	})

	member, err := svc.CreateMember(ctx, &CreateMemberInput{
		FullName:  "Ayse Demir",
		PackageID: "pkg-10",
		StartDate: "2025-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "pkg-10", member.ActivePackageID)
	assert.Equal(t, "2025-03-01", member.StartDate)
	assert.Equal(t, "2025-04-30", member.EndDate)
	require.NotNil(t, member.RemainingSessions)
	assert.Equal(t, 10, *member.RemainingSessions)
	assert.Equal(t, enum.MemberStatusActive, member.Status)
	assert.Equal(t, 7500.0, member.PricePaid, "price defaults to the package price")
	assert.Empty(t, member.History)
}

func TestCreateMember_UnknownPackageFails(t *testing.T) {
	svc, _ := newMemberService(t)

	_, err := svc.CreateMember(context.Background(), &CreateMemberInput{
		FullName:  "Mehmet Kaya",
		PackageID: "missing",
	})
	assert.Error(t, err)
}

func TestRenewMembership_ArchivesPreviousPackage(t *testing.T) {
	svc, store := newMemberService(t)
	ctx := context.Background()
	seedPackage(t, store, entity.Package{
		ID: "pkg-old", Name: "Eski Paket", Price: 5000, SessionCount: 8, ValidityDays: 30, IsActive: true,
	})
	seedPackage(t, store, entity.Package{
		ID: "pkg-new", Name: "Yeni Paket", Price: 9000, SessionCount: 12, ValidityDays: 90, IsActive: true,
	})

	member, err := svc.CreateMember(ctx, &CreateMemberInput{
		FullName:  "Zeynep Arslan",
		PackageID: "pkg-old",
		StartDate: "2025-01-10",
	})
	require.NoError(t, err)

	renewed, err := svc.RenewMembership(ctx, &RenewMembershipInput{
		MemberID:  member.ID,
		PackageID: "pkg-new",
		StartDate: "2025-02-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "pkg-new", renewed.ActivePackageID)
	assert.Equal(t, "2025-02-15", renewed.StartDate)
	assert.Equal(t, "2025-05-16", renewed.EndDate)
	require.NotNil(t, renewed.RemainingSessions)
	assert.Equal(t, 12, *renewed.RemainingSessions, "sessions reset to the new package")
	assert.Equal(t, 9000.0, renewed.PricePaid)

	require.Len(t, renewed.History, 1)
	assert.Equal(t, "pkg-old", renewed.History[0].PackageID)
	assert.Equal(t, "Eski Paket", renewed.History[0].PackageName)
	assert.Equal(t, "2025-01-10", renewed.History[0].StartDate)
	assert.Equal(t, 5000.0, renewed.History[0].PricePaid)
}

func TestSetHealthProfile_DerivesRiskLevel(t *testing.T) {
	svc, _ := newMemberService(t)
	ctx := context.Background()

	member, err := svc.CreateMember(ctx, &CreateMemberInput{FullName: "Fatma Celik"})
	require.NoError(t, err)

	cases := []struct {
		name    string
		profile entity.HealthProfile
		want    entity.RiskLevel
	}{
		{
			name:    "single mild condition",
			profile: entity.HealthProfile{Metabolic: []string{"Tip 2 Diyabet"}},
			want:    entity.RiskLow,
		},
		{
			name:    "two conditions",
			profile: entity.HealthProfile{Cardio: []string{"Hipertansiyon"}, Metabolic: []string{"Tip 2 Diyabet"}},
			want:    entity.RiskMedium,
		},
		{
			name:    "disc hernia alone",
			profile: entity.HealthProfile{Ortho: []string{"Bel Fıtığı"}},
			want:    entity.RiskMedium,
		},
		{
			name:    "three conditions",
			profile: entity.HealthProfile{Cardio: []string{"Hipertansiyon"}, Metabolic: []string{"Tip 2 Diyabet"}, Respiratory: []string{"Astım"}},
			want:    entity.RiskHigh,
		},
		{
			name: "flagged condition overrides count",
			// Caller-supplied risk level is ignored and recomputed.
			profile: entity.HealthProfile{Special: []string{"Gebelik"}, RiskLevel: entity.RiskLow},
			want:    entity.RiskHigh,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			updated, err := svc.SetHealthProfile(ctx, member.ID, &tc.profile)
			require.NoError(t, err)
			require.NotNil(t, updated.HealthProfile)
			assert.Equal(t, tc.want, updated.HealthProfile.RiskLevel)
		})
	}
}

func TestSetHealthProfile_NilClearsProfile(t *testing.T) {
	svc, _ := newMemberService(t)
	ctx := context.Background()

	member, err := svc.CreateMember(ctx, &CreateMemberInput{
		FullName:      "Fatma Celik",
		HealthProfile: &entity.HealthProfile{Ortho: []string{"Bel Fıtığı"}},
	})
	require.NoError(t, err)
	require.NotNil(t, member.HealthProfile)
	assert.Equal(t, entity.RiskMedium, member.HealthProfile.RiskLevel)

	cleared, err := svc.SetHealthProfile(ctx, member.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.HealthProfile)
}

func TestAddMeasurement_AppendsDatedRecord(t *testing.T) {
	svc, _ := newMemberService(t)
	ctx := context.Background()

	member, err := svc.CreateMember(ctx, &CreateMemberInput{
		FullName:     "Fatma Celik",
		Measurements: []entity.Measurement{{Date: "2025-01-05", Weight: 72, Height: 168}},
	})
	require.NoError(t, err)
	require.Len(t, member.Measurements, 1)

	updated, err := svc.AddMeasurement(ctx, member.ID, entity.Measurement{Weight: 70.5, Waist: 78})
	require.NoError(t, err)

	require.Len(t, updated.Measurements, 2)
	assert.Equal(t, "2025-01-05", updated.Measurements[0].Date)
	assert.Equal(t, utils.Today(), updated.Measurements[1].Date, "empty date defaults to today")
	assert.Equal(t, 70.5, updated.Measurements[1].Weight)
}

func TestListMembers_SearchByName(t *testing.T) {
	svc, _ := newMemberService(t)
	ctx := context.Background()

	for _, name := range []string{"Ayse Demir", "Mehmet Kaya", "Ayse Yilmaz"} {
		_, err := svc.CreateMember(ctx, &CreateMemberInput{FullName: name})
		require.NoError(t, err)
	}

	result, err := svc.ListMembers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 15}, "ayse")
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
}
