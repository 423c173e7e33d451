package usecase

import (
	"context"
)

// IngestOutcome describes what happened to a single inbound message.
type IngestOutcome string

const (
	// OutcomeIgnored means the message did not look like a transaction.
	OutcomeIgnored IngestOutcome = "ignored"
	// OutcomeDuplicate means the derived identity was already stored.
	OutcomeDuplicate IngestOutcome = "duplicate"
	// OutcomeConfirmed means the record was inserted directly.
	OutcomeConfirmed IngestOutcome = "confirmed"
	// OutcomeStaged means the record awaits human review.
	OutcomeStaged IngestOutcome = "staged"
)

// IngestUseCase coordinates ingestion of raw messages: extract, dedup-check,
// then route to the repository or the staging queue depending on the
// persisted auto-confirm policy. Messages are processed one at a time to
// completion, so side effects follow arrival order.
type IngestUseCase struct {
	extractor MessageExtractor
	txRepo    TransactionRepository
	staging   StagingRepository
	settings  SettingsStore
	publisher RecordPublisher
	retrier   Retrier
}

// NewIngestUseCase creates a new IngestUseCase.
func NewIngestUseCase(
	extractor MessageExtractor,
	txRepo TransactionRepository,
	staging StagingRepository,
	settings SettingsStore,
	publisher RecordPublisher,
	retrier Retrier,
) *IngestUseCase {
	return &IngestUseCase{
		extractor: extractor,
		txRepo:    txRepo,
		staging:   staging,
		settings:  settings,
		publisher: publisher,
		retrier:   retrier,
	}
}

// HandleMessage processes one inbound message. Extraction failure is not an
// error: non-transaction messages are expected and reported as ignored.
// Storage failures are returned to the caller, who logs and moves on so one
// bad message never halts ingestion of subsequent ones.
func (uc *IngestUseCase) HandleMessage(ctx context.Context, sender, body string) (IngestOutcome, error) {
	record, ok := uc.extractor.Extract(sender, body)
	if !ok {
		return OutcomeIgnored, nil
	}

	exists, err := uc.txRepo.Exists(ctx, record.ID)
	if err != nil {
		return "", err
	}

	if exists {
		return OutcomeDuplicate, nil
	}

	autoConfirm, err := uc.settings.AutoConfirm(ctx)
	if err != nil {
		return "", err
	}

	if autoConfirm {
		err := uc.retrier.Retry(ctx, func() error {
			return uc.txRepo.Insert(ctx, record)
		})
		if err != nil {
			return "", err
		}

		if uc.publisher != nil {
			uc.publisher.Publish(record)
		}

		return OutcomeConfirmed, nil
	}

	err = uc.retrier.Retry(ctx, func() error {
		return uc.staging.Enqueue(ctx, record)
	})
	if err != nil {
		return "", err
	}

	return OutcomeStaged, nil
}
