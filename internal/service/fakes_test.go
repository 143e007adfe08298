package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"meallink/internal/entity"

	"github.com/google/uuid"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
	roles map[uuid.UUID][]entity.Role
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]entity.User),
		roles: make(map[uuid.UUID][]entity.Role),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Phone == user.Phone {
			return errors.New("duplicate phone")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Phone == phone {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *fakeUserRepo) AssignRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, held := range r.roles[userID] {
		if held == role {
			return nil
		}
	}
	r.roles[userID] = append(r.roles[userID], role)
	return nil
}

func (r *fakeUserRepo) RolesOf(ctx context.Context, userID uuid.UUID) ([]entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Role(nil), r.roles[userID]...), nil
}

type fakeOTPRepo struct {
	mu         sync.Mutex
	challenges []entity.OTPChallenge
	seq        time.Time
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{seq: time.Now()}
}

func (r *fakeOTPRepo) Create(ctx context.Context, challenge *entity.OTPChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	challenge.ID = uuid.New()
	r.seq = r.seq.Add(time.Millisecond)
	challenge.CreatedAt = r.seq
	r.challenges = append(r.challenges, *challenge)
	return nil
}

func (r *fakeOTPRepo) FindLatestUnconsumed(ctx context.Context, phone string) (*entity.OTPChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.challenges) - 1; i >= 0; i-- {
		if r.challenges[i].Phone == phone && !r.challenges[i].Used {
			found := r.challenges[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeOTPRepo) Consume(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.challenges {
		if r.challenges[i].ID == id && !r.challenges[i].Used {
			r.challenges[i].Used = true
			return true, nil
		}
	}
	return false, nil
}

type fakeOrphanageRepo struct {
	mu         sync.Mutex
	orphanages map[uuid.UUID]entity.Orphanage
}

func newFakeOrphanageRepo() *fakeOrphanageRepo {
	return &fakeOrphanageRepo{orphanages: make(map[uuid.UUID]entity.Orphanage)}
}

func (r *fakeOrphanageRepo) Create(ctx context.Context, orphanage *entity.Orphanage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if orphanage.ID == uuid.Nil {
		orphanage.ID = uuid.New()
	}
	orphanage.CreatedAt = time.Now()
	r.orphanages[orphanage.ID] = *orphanage
	return nil
}

func (r *fakeOrphanageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Orphanage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if orphanage, ok := r.orphanages[id]; ok {
		return &orphanage, nil
	}
	return nil, nil
}

func (r *fakeOrphanageRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Orphanage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, orphanage := range r.orphanages {
		if orphanage.UserID != nil && *orphanage.UserID == userID {
			found := orphanage
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeOrphanageRepo) ListApproved(ctx context.Context) ([]entity.Orphanage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Orphanage
	for _, orphanage := range r.orphanages {
		if orphanage.Approved {
			out = append(out, orphanage)
		}
	}
	return out, nil
}

func (r *fakeOrphanageRepo) Approve(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orphanage, ok := r.orphanages[id]
	if !ok {
		return false, nil
	}
	orphanage.Approved = true
	r.orphanages[id] = orphanage
	return true, nil
}

type fakeDonationRepo struct {
	mu        sync.Mutex
	donations map[uuid.UUID]entity.Donation
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: make(map[uuid.UUID]entity.Donation)}
}

func (r *fakeDonationRepo) Create(ctx context.Context, donation *entity.Donation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if donation.ID == uuid.Nil {
		donation.ID = uuid.New()
	}
	if donation.Status == "" {
		donation.Status = entity.DonationPending
	}
	donation.CreatedAt = time.Now()
	donation.UpdatedAt = donation.CreatedAt
	r.donations[donation.ID] = *donation
	return nil
}

func (r *fakeDonationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if donation, ok := r.donations[id]; ok {
		return &donation, nil
	}
	return nil, nil
}

func (r *fakeDonationRepo) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Donation
	for _, donation := range r.donations {
		if donation.DonorID == donorID {
			out = append(out, donation)
		}
	}
	return out, nil
}

func (r *fakeDonationRepo) ListPending(ctx context.Context) ([]entity.Donation, error) {
	return r.listByStatus(entity.DonationPending), nil
}

func (r *fakeDonationRepo) ListPendingForOrphanage(ctx context.Context, orphanageID uuid.UUID) ([]entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Donation
	for _, donation := range r.donations {
		if donation.Status == entity.DonationPending &&
			donation.OrphanageID != nil && *donation.OrphanageID == orphanageID {
			out = append(out, donation)
		}
	}
	return out, nil
}

func (r *fakeDonationRepo) ListAvailable(ctx context.Context) ([]entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Donation
	for _, donation := range r.donations {
		if donation.Status == entity.DonationApproved && donation.VolunteerID == nil {
			out = append(out, donation)
		}
	}
	return out, nil
}

func (r *fakeDonationRepo) listByStatus(status entity.DonationStatus) []entity.Donation {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Donation
	for _, donation := range r.donations {
		if donation.Status == status {
			out = append(out, donation)
		}
	}
	return out
}

func (r *fakeDonationRepo) Decide(ctx context.Context, id uuid.UUID, status entity.DonationStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	donation, ok := r.donations[id]
	if !ok || donation.Status != entity.DonationPending {
		return false, nil
	}
	donation.Status = status
	donation.UpdatedAt = time.Now()
	r.donations[id] = donation
	return true, nil
}

func (r *fakeDonationRepo) Claim(ctx context.Context, id uuid.UUID, volunteerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	donation, ok := r.donations[id]
	if !ok || donation.Status != entity.DonationApproved || donation.VolunteerID != nil {
		return false, nil
	}
	donation.Status = entity.DonationInTransit
	donation.VolunteerID = &volunteerID
	donation.UpdatedAt = time.Now()
	r.donations[id] = donation
	return true, nil
}

func (r *fakeDonationRepo) MarkDelivered(ctx context.Context, id uuid.UUID, volunteerID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	donation, ok := r.donations[id]
	if !ok || donation.Status != entity.DonationInTransit ||
		donation.VolunteerID == nil || *donation.VolunteerID != volunteerID {
		return false, nil
	}
	donation.Status = entity.DonationDelivered
	donation.UpdatedAt = time.Now()
	r.donations[id] = donation
	return true, nil
}
