package sweep

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emersion/go-imap/v2"
	"github.com/pkg/errors"

	"github.com/mailsweep/mailsweep/internal/retry"
	"github.com/mailsweep/mailsweep/internal/rules"
	"github.com/mailsweep/mailsweep/internal/sender"
)

// MailboxUnavailableError marks a mailbox that could not be selected or
// listed. The runner skips the mailbox and continues the run.
type MailboxUnavailableError struct {
	Mailbox string
	Err     error
}

func (e *MailboxUnavailableError) Error() string {
	return fmt.Sprintf("mailbox %q unavailable: %v", e.Mailbox, e.Err)
}

func (e *MailboxUnavailableError) Unwrap() error { return e.Err }

// Scanner classifies every message in a mailbox against the rule set.
type Scanner struct {
	session   Session
	rules     []rules.Rule
	batchSize int
	retryCfg  retry.Config
	logger    *slog.Logger
}

func NewScanner(session Session, ruleSet []rules.Rule, batchSize int, retryCfg retry.Config, logger *slog.Logger) *Scanner {
	if batchSize < 1 {
		batchSize = 1
	}
	return &Scanner{
		session:   session,
		rules:     ruleSet,
		batchSize: batchSize,
		retryCfg:  retryCfg,
		logger:    logger,
	}
}

// Scan selects the mailbox, walks its messages in batches, and returns the
// per-mailbox counters plus the deduplicated set of matched UIDs.
//
// Selection and UID-listing failures come back as MailboxUnavailableError;
// a batch fetch failure after retries is fatal and carries the mailbox and
// batch boundary for manual resumption.
func (s *Scanner) Scan(ctx context.Context, mailbox string, readOnly bool) (*MailboxStats, []imap.UID, error) {
	if err := s.session.Select(mailbox, readOnly); err != nil {
		return nil, nil, &MailboxUnavailableError{Mailbox: mailbox, Err: err}
	}

	var uids []imap.UID
	err := retry.Do(ctx, s.retryCfg, func() error {
		var serr error
		uids, serr = s.session.SearchNotDeleted()
		return serr
	})
	if err != nil {
		return nil, nil, &MailboxUnavailableError{Mailbox: mailbox, Err: err}
	}

	stats := NewMailboxStats()
	matchedSet := map[imap.UID]struct{}{}
	var matched []imap.UID

	for start := 0; start < len(uids); start += s.batchSize {
		end := start + s.batchSize
		if end > len(uids) {
			end = len(uids)
		}
		batch := uids[start:end]

		var fetched []FetchedMessage
		err := retry.Do(ctx, s.retryCfg, func() error {
			var ferr error
			fetched, ferr = s.session.FetchEnvelopes(batch)
			return ferr
		})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "fetch envelopes in %q, batch [%d:%d]", mailbox, start, end)
		}

		// Primary pass: envelope metadata. Messages without a usable
		// sender are queued for a single header round trip.
		var residual []imap.UID
		for _, msg := range fetched {
			info := sender.FromEnvelope(msg.Envelope)
			if info.IsZero() {
				residual = append(residual, msg.UID)
				continue
			}
			s.evaluate(msg.UID, info, stats, matchedSet, &matched)
		}

		if len(residual) == 0 {
			continue
		}

		s.logger.Debug("fetching From headers for envelope gaps",
			slog.String("mailbox", mailbox), slog.Int("messages", len(residual)))

		var headers map[imap.UID][]byte
		err = retry.Do(ctx, s.retryCfg, func() error {
			var ferr error
			headers, ferr = s.session.FetchFromHeaders(residual)
			return ferr
		})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "fetch headers in %q, batch [%d:%d]", mailbox, start, end)
		}

		for _, uid := range residual {
			info := sender.FromHeader(headers[uid])
			if info.IsZero() {
				stats.MissingSender++
				continue
			}
			s.evaluate(uid, info, stats, matchedSet, &matched)
		}
	}

	stats.Unique = len(matched)
	return stats, matched, nil
}

func (s *Scanner) evaluate(uid imap.UID, info sender.Info, stats *MailboxStats, seen map[imap.UID]struct{}, matched *[]imap.UID) {
	hit := false
	for _, rule := range s.rules {
		if rule.Matches(info) {
			stats.countRule(rule.String())
			hit = true
		}
	}
	if !hit {
		return
	}
	if _, ok := seen[uid]; ok {
		return
	}
	seen[uid] = struct{}{}
	*matched = append(*matched, uid)
}
