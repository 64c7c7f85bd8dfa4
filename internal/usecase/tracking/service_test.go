package tracking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainTracking "wastetrack/internal/domain/tracking"
	domainUser "wastetrack/internal/domain/user"
	appErrors "wastetrack/pkg/errors"
)

// memTrackingRepo stores records keyed by tracking ID and rejects
// duplicates the way the unique index would.
type memTrackingRepo struct {
	records map[string]*domainTracking.Record

	// failCreates makes the next n Create calls collide.
	failCreates int
}

func newMemTrackingRepo() *memTrackingRepo {
	return &memTrackingRepo{records: make(map[string]*domainTracking.Record)}
}

func (r *memTrackingRepo) Create(_ context.Context, rec *domainTracking.Record) error {
	if r.failCreates > 0 {
		r.failCreates--
		return domainTracking.ErrDuplicateID
	}
	if _, exists := r.records[rec.TrackingID]; exists {
		return domainTracking.ErrDuplicateID
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	r.records[rec.TrackingID] = &cp
	return nil
}

func (r *memTrackingRepo) GetByTrackingID(_ context.Context, trackingID string) (*domainTracking.Record, error) {
	rec, ok := r.records[trackingID]
	if !ok {
		return nil, domainTracking.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *memTrackingRepo) GetByPickupID(_ context.Context, pickupID uuid.UUID) (*domainTracking.Record, error) {
	for _, rec := range r.records {
		if rec.PickupID == pickupID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, domainTracking.ErrNotFound
}

func (r *memTrackingRepo) Update(_ context.Context, rec *domainTracking.Record) error {
	if _, ok := r.records[rec.TrackingID]; !ok {
		return domainTracking.ErrNotFound
	}
	cp := *rec
	r.records[rec.TrackingID] = &cp
	return nil
}

func (r *memTrackingRepo) Delete(_ context.Context, trackingID string) error {
	delete(r.records, trackingID)
	return nil
}

func (r *memTrackingRepo) List(_ context.Context, _ *domainTracking.Filter) ([]*domainTracking.Record, int64, error) {
	return nil, 0, nil
}

func (r *memTrackingRepo) GetStats(_ context.Context, _ uuid.UUID) (*domainTracking.Stats, error) {
	return &domainTracking.Stats{}, nil
}

func (r *memTrackingRepo) MaxSequenceForYear(_ context.Context, year int) (int, error) {
	max := 0
	prefix := domainTracking.YearPrefix(year)
	for id := range r.records {
		var seq int
		if _, err := fmt.Sscanf(id, prefix+"%06d", &seq); err == nil && seq > max {
			max = seq
		}
	}
	return max, nil
}

// stubUserRepo answers GetByID with a fixed industry user.
type stubUserRepo struct {
	user *domainUser.User
}

func (r *stubUserRepo) Create(_ context.Context, _ *domainUser.User) error { return nil }
func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domainUser.User, error) {
	if r.user != nil && r.user.ID == id {
		cp := *r.user
		return &cp, nil
	}
	return nil, domainUser.ErrNotFound
}
func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domainUser.User, error) {
	return nil, domainUser.ErrNotFound
}
func (r *stubUserRepo) Update(_ context.Context, _ *domainUser.User) error              { return nil }
func (r *stubUserRepo) SetLastLogin(_ context.Context, _ uuid.UUID, _ time.Time) error  { return nil }
func (r *stubUserRepo) IncrementPoints(_ context.Context, _ uuid.UUID, _ int) (int, error) {
	return 0, nil
}
func (r *stubUserRepo) AddBadge(_ context.Context, _ uuid.UUID, _ domainUser.Badge) error {
	return nil
}
func (r *stubUserRepo) ListByPoints(_ context.Context, _ domainUser.Role, _ int) ([]*domainUser.User, error) {
	return nil, nil
}
func (r *stubUserRepo) CountByRole(_ context.Context, _ domainUser.Role) (int64, error) {
	return 0, nil
}
func (r *stubUserRepo) RankByPoints(_ context.Context, _ uuid.UUID) (int, int64, error) {
	return 1, 1, nil
}
func (r *stubUserRepo) CreatePasswordResetToken(_ context.Context, _ *domainUser.PasswordResetToken) error {
	return nil
}
func (r *stubUserRepo) GetPasswordResetToken(_ context.Context, _ string) (*domainUser.PasswordResetToken, error) {
	return nil, domainUser.ErrResetTokenNotFound
}
func (r *stubUserRepo) MarkResetTokenUsed(_ context.Context, _ uuid.UUID) error { return nil }

func newTrackingEnv() (*Service, *memTrackingRepo, *domainUser.User) {
	repo := newMemTrackingRepo()
	company := "Acme Chemicals"
	industry := &domainUser.User{
		ID:          uuid.New(),
		Name:        "Acme",
		Email:       "ops@acme.example",
		Role:        domainUser.RoleIndustry,
		CompanyName: &company,
	}
	svc := NewService(repo, &stubUserRepo{user: industry})
	return svc, repo, industry
}

func createRequest() *CreateRequest {
	return &CreateRequest{
		WasteType: "Chemical",
		Quantity:  250,
		Unit:      "kg",
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	svc, _, industry := newTrackingEnv()
	ctx := context.Background()
	year := time.Now().Year()

	first, err := svc.Create(ctx, industry.ID, createRequest())
	require.NoError(t, err)
	assert.Equal(t, domainTracking.FormatTrackingID(year, 1), first.TrackingID)
	assert.Equal(t, "Scheduled", first.Status)
	assert.Equal(t, "Acme Chemicals", first.IndustryName)
	require.Len(t, first.History, 1)

	second, err := svc.Create(ctx, industry.ID, createRequest())
	require.NoError(t, err)
	assert.Equal(t, domainTracking.FormatTrackingID(year, 2), second.TrackingID)
}

func TestCreateRetriesOnCollision(t *testing.T) {
	svc, repo, industry := newTrackingEnv()
	repo.failCreates = 2

	resp, err := svc.Create(context.Background(), industry.ID, createRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.TrackingID)
}

func TestCreateGivesUpAfterRetries(t *testing.T) {
	svc, repo, industry := newTrackingEnv()
	repo.failCreates = 10

	_, err := svc.Create(context.Background(), industry.ID, createRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainTracking.ErrDuplicateID)
}

func TestTrackRejectsMalformedID(t *testing.T) {
	svc, _, _ := newTrackingEnv()

	_, err := svc.Track(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainTracking.ErrInvalidTrackingID)
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	svc, _, industry := newTrackingEnv()
	ctx := context.Background()

	created, err := svc.Create(ctx, industry.ID, createRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.TrackingID, "agent@city.example", &UpdateStatusRequest{
		Status:        "Collected",
		Notes:         "Loaded at gate 3",
		CollectorName: "R. Kumar",
		VehicleNumber: "KA-01-1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "Collected", updated.Status)
	assert.Equal(t, "R. Kumar", updated.CollectorName)
	require.Len(t, updated.History, 2)
	assert.Equal(t, "Scheduled", updated.History[0].Status)
	assert.Equal(t, "Collected", updated.History[1].Status)
	assert.ElementsMatch(t, []string{"In Transit", "At Facility", "Cancelled"}, updated.AllowedTransitions)
}

func TestUpdateStatusRejectsTerminal(t *testing.T) {
	svc, _, industry := newTrackingEnv()
	ctx := context.Background()

	created, err := svc.Create(ctx, industry.ID, createRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.TrackingID, "admin", &UpdateStatusRequest{Status: "Cancelled"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.TrackingID, "admin", &UpdateStatusRequest{Status: "Collected"})
	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "TERMINAL_STATUS", appErr.Code)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, industry := newTrackingEnv()
	ctx := context.Background()

	created, err := svc.Create(ctx, industry.ID, createRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.TrackingID, "admin", &UpdateStatusRequest{Status: "Lost"})
	assert.ErrorIs(t, err, domainTracking.ErrInvalidStatus)
}
