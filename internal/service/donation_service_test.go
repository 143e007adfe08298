package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"meallink/internal/entity"

	"github.com/google/uuid"
)

type donationFixture struct {
	service    *DonationService
	donations  *fakeDonationRepo
	orphanages *fakeOrphanageRepo
}

func newDonationFixture() *donationFixture {
	donations := newFakeDonationRepo()
	orphanages := newFakeOrphanageRepo()
	return &donationFixture{
		service:    NewDonationService(donations, orphanages),
		donations:  donations,
		orphanages: orphanages,
	}
}

func (f *donationFixture) createPending(t *testing.T, donorID uuid.UUID, orphanageID *uuid.UUID) *entity.Donation {
	t.Helper()
	donation, err := f.service.Create(context.Background(), donorID, CreateDonationInput{
		DonorID:     donorID,
		Type:        entity.DonationFood,
		OrphanageID: orphanageID,
	})
	if err != nil {
		t.Fatalf("create donation: %v", err)
	}
	return donation
}

func TestCreateDonationOwnership(t *testing.T) {
	f := newDonationFixture()
	donor := uuid.New()
	imposter := uuid.New()

	_, err := f.service.Create(context.Background(), imposter, CreateDonationInput{
		DonorID: donor,
		Type:    entity.DonationFood,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	donation := f.createPending(t, donor, nil)
	if donation.Status != entity.DonationPending {
		t.Fatalf("expected pending, got %s", donation.Status)
	}
}

func TestDecideApproveAndNoDoubleDecision(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()
	donor := uuid.New()
	admin := uuid.New()
	donation := f.createPending(t, donor, nil)

	decided, err := f.service.Decide(ctx, admin, true, donation.ID, true)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if decided.Status != entity.DonationApproved {
		t.Fatalf("expected approved, got %s", decided.Status)
	}
	if decided.VolunteerID != nil {
		t.Fatal("approval must not assign a volunteer")
	}

	_, err = f.service.Decide(ctx, admin, true, donation.ID, false)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on double decision, got %v", err)
	}
}

func TestDecideTargetedOwnership(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()
	admin := uuid.New()

	orphanage := &entity.Orphanage{UserID: &owner, Name: "Sunrise Home", Address: "12 Hill Road"}
	if err := f.orphanages.Create(ctx, orphanage); err != nil {
		t.Fatalf("seed orphanage: %v", err)
	}

	donation := f.createPending(t, uuid.New(), &orphanage.ID)

	if _, err := f.service.Decide(ctx, stranger, false, donation.ID, true); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := f.service.Decide(ctx, owner, false, donation.ID, true); err != nil {
		t.Fatalf("owner decision: %v", err)
	}

	// Admin overrides ownership on a fresh targeted donation.
	second := f.createPending(t, uuid.New(), &orphanage.ID)
	if _, err := f.service.Decide(ctx, admin, true, second.ID, false); err != nil {
		t.Fatalf("admin decision: %v", err)
	}
}

func TestDecideNotFound(t *testing.T) {
	f := newDonationFixture()
	_, err := f.service.Decide(context.Background(), uuid.New(), true, uuid.New(), true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClaimLifecycle(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()
	donor := uuid.New()
	volunteer := uuid.New()
	other := uuid.New()
	donation := f.createPending(t, donor, nil)

	if _, err := f.service.Claim(ctx, volunteer, donation.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for pending donation, got %v", err)
	}
	if _, err := f.service.Claim(ctx, volunteer, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := f.service.Decide(ctx, uuid.New(), true, donation.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}

	claimed, err := f.service.Claim(ctx, volunteer, donation.ID)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed.Status != entity.DonationInTransit {
		t.Fatalf("expected in_transit, got %s", claimed.Status)
	}
	if claimed.VolunteerID == nil || *claimed.VolunteerID != volunteer {
		t.Fatal("expected claiming volunteer assigned")
	}

	if _, err := f.service.Claim(ctx, other, donation.ID); !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
	}
}

func TestConcurrentClaimSingleWinner(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()
	donation := f.createPending(t, uuid.New(), nil)
	if _, err := f.service.Decide(ctx, uuid.New(), true, donation.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}

	const volunteers = 8
	var wg sync.WaitGroup
	results := make(chan error, volunteers)
	for i := 0; i < volunteers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Claim(ctx, uuid.New(), donation.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAlreadyClaimed), errors.Is(err, ErrConflict):
			losses++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
	if losses != volunteers-1 {
		t.Fatalf("expected %d losses, got %d", volunteers-1, losses)
	}
}

func TestMarkDelivered(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()
	volunteer := uuid.New()
	other := uuid.New()
	donation := f.createPending(t, uuid.New(), nil)

	if _, err := f.service.Decide(ctx, uuid.New(), true, donation.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.service.Claim(ctx, volunteer, donation.ID); err != nil {
		t.Fatalf("claim: %v", err)
	}

	if _, err := f.service.MarkDelivered(ctx, other, donation.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-assignee, got %v", err)
	}

	delivered, err := f.service.MarkDelivered(ctx, volunteer, donation.ID)
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if delivered.Status != entity.DonationDelivered {
		t.Fatalf("expected delivered, got %s", delivered.Status)
	}

	// Delivered is terminal.
	if _, err := f.service.MarkDelivered(ctx, volunteer, donation.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestRejectIsTerminal(t *testing.T) {
	f := newDonationFixture()
	ctx := context.Background()
	donation := f.createPending(t, uuid.New(), nil)

	rejected, err := f.service.Decide(ctx, uuid.New(), true, donation.ID, false)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != entity.DonationRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}
	if _, err := f.service.Claim(ctx, uuid.New(), donation.ID); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState claiming rejected donation, got %v", err)
	}
}
