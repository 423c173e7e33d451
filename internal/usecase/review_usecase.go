package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

// ReviewUseCase owns the confirm/reject transitions for staged records.
type ReviewUseCase struct {
	txRepo    TransactionRepository
	staging   StagingRepository
	publisher RecordPublisher
	metrics   *metrics.Metrics
}

// NewReviewUseCase creates a new ReviewUseCase.
func NewReviewUseCase(txRepo TransactionRepository, staging StagingRepository, publisher RecordPublisher, m *metrics.Metrics) *ReviewUseCase {
	return &ReviewUseCase{
		txRepo:    txRepo,
		staging:   staging,
		publisher: publisher,
		metrics:   m,
	}
}

// ListPending returns all records awaiting review.
func (uc *ReviewUseCase) ListPending(ctx context.Context) ([]*domain.Transaction, error) {
	return uc.staging.List(ctx)
}

// Confirm moves a staged record into the repository: insert first, then
// remove from staging. A crash between the two steps can leave the record in
// both places; the repository insert is idempotent, so re-confirming resolves
// that state with no further effect beyond the pending re-removal.
func (uc *ReviewUseCase) Confirm(ctx context.Context, id string) (*domain.Transaction, error) {
	record, err := uc.staging.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.txRepo.Insert(ctx, record); err != nil {
		return nil, err
	}

	if err := uc.staging.Remove(ctx, id); err != nil {
		return nil, err
	}

	if uc.publisher != nil {
		uc.publisher.Publish(record)
	}

	if uc.metrics != nil {
		uc.metrics.RecordsConfirmed.Inc()
	}

	return record, nil
}

// Reject removes a staged record permanently. The record is discarded; no
// copy reaches the repository.
func (uc *ReviewUseCase) Reject(ctx context.Context, id string) error {
	if _, err := uc.staging.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.staging.Remove(ctx, id); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.RecordsRejected.Inc()
	}

	return nil
}
