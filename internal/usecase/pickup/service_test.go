package pickup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastetrack/internal/config"
	domainNotification "wastetrack/internal/domain/notification"
	domainPickup "wastetrack/internal/domain/pickup"
	domainTracking "wastetrack/internal/domain/tracking"
	domainUser "wastetrack/internal/domain/user"
	"wastetrack/internal/notifier"
	trackingUC "wastetrack/internal/usecase/tracking"
	appErrors "wastetrack/pkg/errors"
)

// In-memory fakes. Only the paths the pickup service touches are
// implemented; everything else returns not-found.

type fakePickupRepo struct {
	pickups map[uuid.UUID]*domainPickup.Pickup
}

func newFakePickupRepo() *fakePickupRepo {
	return &fakePickupRepo{pickups: make(map[uuid.UUID]*domainPickup.Pickup)}
}

func (r *fakePickupRepo) Create(_ context.Context, p *domainPickup.Pickup) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.pickups[p.ID] = &cp
	return nil
}

func (r *fakePickupRepo) GetByID(_ context.Context, id uuid.UUID) (*domainPickup.Pickup, error) {
	p, ok := r.pickups[id]
	if !ok {
		return nil, domainPickup.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePickupRepo) Update(_ context.Context, p *domainPickup.Pickup) error {
	if _, ok := r.pickups[p.ID]; !ok {
		return domainPickup.ErrNotFound
	}
	cp := *p
	r.pickups[p.ID] = &cp
	return nil
}

func (r *fakePickupRepo) List(_ context.Context, _ *domainPickup.Filter) ([]*domainPickup.Pickup, int64, error) {
	return nil, 0, nil
}

func (r *fakePickupRepo) GetStats(_ context.Context, _ uuid.UUID) (*domainPickup.Stats, error) {
	return &domainPickup.Stats{}, nil
}

func (r *fakePickupRepo) CompletedByUser(_ context.Context, userID uuid.UUID) ([]*domainPickup.Pickup, error) {
	var out []*domainPickup.Pickup
	for _, p := range r.pickups {
		if p.UserID == userID && p.Status == domainPickup.StatusCompleted {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domainUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domainUser.User)}
}

func (r *fakeUserRepo) add(u *domainUser.User) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Level == 0 {
		u.Level = 1
	}
	r.users[u.ID] = u
}

func (r *fakeUserRepo) Create(_ context.Context, u *domainUser.User) error {
	r.add(u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domainUser.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainUser.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domainUser.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *domainUser.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domainUser.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) SetLastLogin(_ context.Context, _ uuid.UUID, _ time.Time) error {
	return nil
}

func (r *fakeUserRepo) IncrementPoints(_ context.Context, id uuid.UUID, delta int) (int, error) {
	u, ok := r.users[id]
	if !ok {
		return 0, domainUser.ErrNotFound
	}
	u.Points += delta
	if u.Points < 0 {
		u.Points = 0
	}
	u.Level = domainUser.LevelForPoints(u.Points, 100)
	return u.Points, nil
}

func (r *fakeUserRepo) AddBadge(_ context.Context, id uuid.UUID, badge domainUser.Badge) error {
	u, ok := r.users[id]
	if !ok {
		return domainUser.ErrNotFound
	}
	u.Badges = append(u.Badges, badge)
	return nil
}

func (r *fakeUserRepo) ListByPoints(_ context.Context, _ domainUser.Role, _ int) ([]*domainUser.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, _ domainUser.Role) (int64, error) {
	return 0, nil
}

func (r *fakeUserRepo) RankByPoints(_ context.Context, _ uuid.UUID) (int, int64, error) {
	return 1, 1, nil
}

func (r *fakeUserRepo) CreatePasswordResetToken(_ context.Context, _ *domainUser.PasswordResetToken) error {
	return nil
}

func (r *fakeUserRepo) GetPasswordResetToken(_ context.Context, _ string) (*domainUser.PasswordResetToken, error) {
	return nil, domainUser.ErrResetTokenNotFound
}

func (r *fakeUserRepo) MarkResetTokenUsed(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeTrackingRepo struct {
	records map[uuid.UUID]*domainTracking.Record
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{records: make(map[uuid.UUID]*domainTracking.Record)}
}

func (r *fakeTrackingRepo) Create(_ context.Context, rec *domainTracking.Record) error {
	r.records[rec.PickupID] = rec
	return nil
}

func (r *fakeTrackingRepo) GetByTrackingID(_ context.Context, id string) (*domainTracking.Record, error) {
	for _, rec := range r.records {
		if rec.TrackingID == id {
			return rec, nil
		}
	}
	return nil, domainTracking.ErrNotFound
}

func (r *fakeTrackingRepo) GetByPickupID(_ context.Context, pickupID uuid.UUID) (*domainTracking.Record, error) {
	rec, ok := r.records[pickupID]
	if !ok {
		return nil, domainTracking.ErrNotFound
	}
	return rec, nil
}

func (r *fakeTrackingRepo) Update(_ context.Context, rec *domainTracking.Record) error {
	r.records[rec.PickupID] = rec
	return nil
}

func (r *fakeTrackingRepo) Delete(_ context.Context, _ string) error { return nil }
func (r *fakeTrackingRepo) List(_ context.Context, _ *domainTracking.Filter) ([]*domainTracking.Record, int64, error) {
	return nil, 0, nil
}
func (r *fakeTrackingRepo) GetStats(_ context.Context, _ uuid.UUID) (*domainTracking.Stats, error) {
	return &domainTracking.Stats{}, nil
}
func (r *fakeTrackingRepo) MaxSequenceForYear(_ context.Context, _ int) (int, error) { return 0, nil }

type fakeNotificationRepo struct {
	created []*domainNotification.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *domainNotification.Notification) error {
	r.created = append(r.created, n)
	return nil
}
func (r *fakeNotificationRepo) GetByID(_ context.Context, _ uuid.UUID) (*domainNotification.Notification, error) {
	return nil, domainNotification.ErrNotFound
}
func (r *fakeNotificationRepo) Update(_ context.Context, _ *domainNotification.Notification) error {
	return nil
}
func (r *fakeNotificationRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakeNotificationRepo) ListByUser(_ context.Context, _ uuid.UUID, _ bool, _, _ int) ([]*domainNotification.Notification, int64, error) {
	return nil, 0, nil
}
func (r *fakeNotificationRepo) UnreadCount(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}
func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, _ uuid.UUID, _ time.Time) (int64, error) {
	return 0, nil
}
func (r *fakeNotificationRepo) DeleteAllForUser(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}
func (r *fakeNotificationRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type testEnv struct {
	svc          *Service
	pickupRepo   *fakePickupRepo
	userRepo     *fakeUserRepo
	trackingRepo *fakeTrackingRepo
	citizen      *domainUser.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	pickupRepo := newFakePickupRepo()
	userRepo := newFakeUserRepo()
	trackingRepo := newFakeTrackingRepo()

	citizen := &domainUser.User{
		Name:  "Asha",
		Email: "asha@example.com",
		Role:  domainUser.RoleCitizen,
	}
	userRepo.add(citizen)

	cfg := &config.Config{
		Rewards: config.RewardsConfig{ScheduleFraction: 0.5, PointsPerLevel: 100},
	}

	notify := notifier.New(&fakeNotificationRepo{})
	trackingSvc := trackingUC.NewService(trackingRepo, userRepo)

	return &testEnv{
		svc:          NewService(pickupRepo, userRepo, trackingSvc, notify, cfg),
		pickupRepo:   pickupRepo,
		userRepo:     userRepo,
		trackingRepo: trackingRepo,
		citizen:      citizen,
	}
}

func scheduleRequest() *ScheduleRequest {
	return &ScheduleRequest{
		WasteType:       "hazardous",
		PickupDate:      time.Now().Add(48 * time.Hour),
		TimeSlot:        "morning",
		Address:         "12 MG Road",
		ContactPhone:    "9876543210",
		EstimatedWeight: 12.7,
	}
}

func TestScheduleAwardsHalfPoints(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.svc.Schedule(context.Background(), env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	// Full reward for hazardous at 12.7 kg is 25 + 12 = 37; half
	// floored is 18.
	assert.Equal(t, 18, resp.PointsAwarded)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Len(t, resp.VerificationCode, 6)

	u, err := env.userRepo.GetByID(context.Background(), env.citizen.ID)
	require.NoError(t, err)
	assert.Equal(t, 18, u.Points)
}

func TestSchedulePastDate(t *testing.T) {
	env := newTestEnv(t)

	req := scheduleRequest()
	req.PickupDate = time.Now().Add(-48 * time.Hour)

	_, err := env.svc.Schedule(context.Background(), env.citizen.ID, req)
	assert.ErrorIs(t, err, domainPickup.ErrPastDate)

	// Midnight of the current local day is still "today", not past.
	now := time.Now()
	req.PickupDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	_, err = env.svc.Schedule(context.Background(), env.citizen.ID, req)
	assert.NoError(t, err)
}

func TestCompleteAwardsFullPoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Schedule(ctx, env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	collectorID := uuid.New()
	actual := 12.7
	completed, err := env.svc.Complete(ctx, collectorID, resp.ID, &CompleteRequest{ActualWeight: &actual})
	require.NoError(t, err)

	assert.Equal(t, "completed", completed.Status)
	require.NotNil(t, completed.AssignedCollector)
	assert.Equal(t, collectorID, *completed.AssignedCollector)

	// The scheduling half stays; the full reward lands on top of it:
	// 18 at scheduling plus 37 at completion.
	assert.Equal(t, 55, completed.PointsAwarded)

	u, err := env.userRepo.GetByID(ctx, env.citizen.ID)
	require.NoError(t, err)
	assert.Equal(t, 55, u.Points)
}

func TestCompleteMarksShipmentDisposed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Schedule(ctx, env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	rec := &domainTracking.Record{
		TrackingID: "WM-2026-000042",
		IndustryID: env.citizen.ID,
		PickupID:   resp.ID,
	}
	rec.AddStatusUpdate(domainTracking.StatusScheduled, "system", "", nil)
	require.NoError(t, env.trackingRepo.Create(ctx, rec))

	_, err = env.svc.Complete(ctx, uuid.New(), resp.ID, &CompleteRequest{})
	require.NoError(t, err)

	linked, err := env.trackingRepo.GetByPickupID(ctx, resp.ID)
	require.NoError(t, err)

	assert.Equal(t, domainTracking.StatusDisposed, linked.Status)
	require.NotEmpty(t, linked.History)
	assert.Equal(t, domainTracking.StatusDisposed, linked.History[len(linked.History)-1].Status)
	require.NotNil(t, linked.Disposal.DisposalDate)
}

func TestCompleteRejectsWrongCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Schedule(ctx, env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	wrong := "AAAAAA"
	if resp.VerificationCode == wrong {
		wrong = "BBBBBB"
	}

	_, err = env.svc.Complete(ctx, uuid.New(), resp.ID, &CompleteRequest{VerificationCode: wrong})
	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_CODE", appErr.Code)
}

func TestCompleteIsTerminal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Schedule(ctx, env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	_, err = env.svc.Complete(ctx, uuid.New(), resp.ID, &CompleteRequest{})
	require.NoError(t, err)

	_, err = env.svc.Complete(ctx, uuid.New(), resp.ID, &CompleteRequest{})
	assert.ErrorIs(t, err, domainPickup.ErrAlreadyCompleted)

	_, err = env.svc.Cancel(ctx, env.citizen.ID, "citizen", resp.ID, &CancelRequest{})
	assert.ErrorIs(t, err, domainPickup.ErrAlreadyCompleted)
}

func TestCancelReversesPoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Schedule(ctx, env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	cancelled, err := env.svc.Cancel(ctx, env.citizen.ID, "citizen", resp.ID, &CancelRequest{Reason: "changed plans"})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, 0, cancelled.PointsAwarded)
	require.NotNil(t, cancelled.CancelledBy)
	assert.Equal(t, "user", *cancelled.CancelledBy)

	u, err := env.userRepo.GetByID(ctx, env.citizen.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, u.Points)

	// A second cancel is rejected.
	_, err = env.svc.Cancel(ctx, env.citizen.ID, "citizen", resp.ID, &CancelRequest{})
	assert.ErrorIs(t, err, domainPickup.ErrAlreadyCancelled)
}

func TestCancelByOtherUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Schedule(ctx, env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	stranger := &domainUser.User{Name: "Ravi", Email: "ravi@example.com", Role: domainUser.RoleCitizen}
	env.userRepo.add(stranger)

	_, err = env.svc.Cancel(ctx, stranger.ID, "citizen", resp.ID, &CancelRequest{})
	assert.ErrorIs(t, err, domainPickup.ErrNotOwner)

	// Admins may cancel anyone's pickup.
	admin := &domainUser.User{Name: "Root", Email: "root@example.com", Role: domainUser.RoleAdmin}
	env.userRepo.add(admin)

	cancelled, err := env.svc.Cancel(ctx, admin.ID, "admin", resp.ID, &CancelRequest{})
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancelledBy)
	assert.Equal(t, "admin", *cancelled.CancelledBy)
}

func TestRateRequiresCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Schedule(ctx, env.citizen.ID, scheduleRequest())
	require.NoError(t, err)

	_, err = env.svc.Rate(ctx, env.citizen.ID, resp.ID, &RateRequest{Rating: 5})
	assert.ErrorIs(t, err, domainPickup.ErrNotCompleted)

	_, err = env.svc.Complete(ctx, uuid.New(), resp.ID, &CompleteRequest{})
	require.NoError(t, err)

	rated, err := env.svc.Rate(ctx, env.citizen.ID, resp.ID, &RateRequest{Rating: 4})
	require.NoError(t, err)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 4, *rated.Rating)
}
