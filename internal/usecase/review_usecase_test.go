package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
)

func TestReviewConfirm(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	staging := mocks.NewMockStagingRepository()
	publisher := mocks.NewMockPublisher()

	record := smsRecord("sms-pending")
	if err := staging.Enqueue(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReviewUseCase(repo, staging, publisher, nil)

	confirmed, err := uc.Confirm(context.Background(), "sms-pending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if confirmed.ID != record.ID {
		t.Errorf("expected confirmed record %q, got %q", record.ID, confirmed.ID)
	}
	if repo.Len() != 1 {
		t.Errorf("expected record in repository, got %d records", repo.Len())
	}
	if staging.Len() != 0 {
		t.Errorf("expected staging to be empty, got %d records", staging.Len())
	}
	if publisher.Count() != 1 {
		t.Errorf("expected one published record, got %d", publisher.Count())
	}
}

func TestReviewConfirmUnknownID(t *testing.T) {
	uc := usecase.NewReviewUseCase(
		mocks.NewMockTransactionRepository(),
		mocks.NewMockStagingRepository(),
		mocks.NewMockPublisher(),
		nil,
	)

	_, err := uc.Confirm(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotStaged) {
		t.Fatalf("expected ErrNotStaged, got %v", err)
	}
}

func TestReviewConfirmAfterPartialFailure(t *testing.T) {
	// Simulates the degraded state where a previous confirm inserted the
	// record but crashed before removing it from staging. Re-confirming
	// must succeed: the insert is an idempotent no-op and the removal
	// completes the transition.
	repo := mocks.NewMockTransactionRepository()
	staging := mocks.NewMockStagingRepository()

	record := smsRecord("sms-partial")
	if err := repo.Insert(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := staging.Enqueue(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReviewUseCase(repo, staging, mocks.NewMockPublisher(), nil)

	if _, err := uc.Confirm(context.Background(), "sms-partial"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.Len() != 1 {
		t.Errorf("expected exactly one stored record, got %d", repo.Len())
	}
	if staging.Len() != 0 {
		t.Errorf("expected staging to be empty, got %d records", staging.Len())
	}
}

func TestReviewReject(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	staging := mocks.NewMockStagingRepository()

	if err := staging.Enqueue(context.Background(), smsRecord("sms-reject")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc := usecase.NewReviewUseCase(repo, staging, mocks.NewMockPublisher(), nil)

	if err := uc.Reject(context.Background(), "sms-reject"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if staging.Len() != 0 {
		t.Errorf("expected staging to be empty, got %d records", staging.Len())
	}
	if repo.Len() != 0 {
		t.Errorf("rejected record must not reach the repository, got %d records", repo.Len())
	}
}

func TestReviewListPending(t *testing.T) {
	staging := mocks.NewMockStagingRepository()
	staging.Enqueue(context.Background(), smsRecord("sms-a"))
	staging.Enqueue(context.Background(), smsRecord("sms-b"))

	uc := usecase.NewReviewUseCase(mocks.NewMockTransactionRepository(), staging, nil, nil)

	pending, err := uc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pending) != 2 {
		t.Errorf("expected 2 pending records, got %d", len(pending))
	}
}
