package sweep

import (
	"context"
	"log/slog"
	"slices"

	"github.com/emersion/go-imap/v2"
	"github.com/pkg/errors"

	"github.com/mailsweep/mailsweep/internal/retry"
)

// Deleter flags matched messages \Deleted and reclaims them in batches.
type Deleter struct {
	session   Session
	batchSize int
	retryCfg  retry.Config
	logger    *slog.Logger
}

func NewDeleter(session Session, batchSize int, retryCfg retry.Config, logger *slog.Logger) *Deleter {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Deleter{
		session:   session,
		batchSize: batchSize,
		retryCfg:  retryCfg,
		logger:    logger,
	}
}

// Delete marks and expunges the given UIDs in sorted, fixed-size batches and
// returns the number of identifiers processed. The count is "attempted": the
// server does not confirm per-UID removal.
//
// When the server lacks UIDPLUS the reclaim step is a full-mailbox expunge,
// which removes every flagged message in the mailbox, not just this batch.
func (d *Deleter) Delete(ctx context.Context, uids []imap.UID) (int, error) {
	if len(uids) == 0 {
		return 0, nil
	}

	// Sorted batches keep boundaries reproducible across retries and runs.
	sorted := slices.Clone(uids)
	slices.Sort(sorted)

	targeted := d.session.SupportsUIDExpunge()
	if !targeted {
		d.logger.Warn("server lacks UIDPLUS; expunge fallback removes every flagged message in the mailbox")
	}

	deleted := 0
	for start := 0; start < len(sorted); start += d.batchSize {
		end := start + d.batchSize
		if end > len(sorted) {
			end = len(sorted)
		}
		batch := sorted[start:end]

		err := retry.Do(ctx, d.retryCfg, func() error {
			return d.session.MarkDeleted(batch)
		})
		if err != nil {
			return deleted, errors.Wrapf(err, "mark deleted, batch [%d:%d]", start, end)
		}

		err = retry.Do(ctx, d.retryCfg, func() error {
			if targeted {
				return d.session.ExpungeUIDs(batch)
			}
			return d.session.Expunge()
		})
		if err != nil {
			return deleted, errors.Wrapf(err, "expunge, batch [%d:%d]", start, end)
		}

		deleted += len(batch)
		d.logger.Debug("batch expunged", slog.Int("messages", len(batch)), slog.Bool("targeted", targeted))
	}

	return deleted, nil
}
