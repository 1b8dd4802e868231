package sweep

import (
	"context"
	"errors"
	"log/slog"

	pkgerrors "github.com/pkg/errors"

	"github.com/mailsweep/mailsweep/internal/retry"
	"github.com/mailsweep/mailsweep/internal/rules"
)

// Runner drives a full run: resolves the folder list, scans each mailbox in
// order, and deletes matches unless the run is a dry run. The single IMAP
// session is owned by the runner for the whole run; every component goes
// through it one call at a time.
type Runner struct {
	session   Session
	rules     []rules.Rule
	batchSize int
	retryCfg  retry.Config
	delete    bool
	logger    *slog.Logger
	ctx       context.Context
}

type RunnerOption func(*Runner) error

func NewRunner(opts ...RunnerOption) (*Runner, error) {
	r := Runner{
		batchSize: 500,
		retryCfg:  retry.DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(&r); err != nil {
			return nil, err
		}
	}

	if r.session == nil {
		return nil, pkgerrors.New("requires session")
	}

	if r.logger == nil {
		return nil, pkgerrors.New("requires slogger")
	}

	if len(r.rules) == 0 {
		return nil, pkgerrors.New("requires at least one rule")
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}

	return &r, nil
}

func WithSession(s Session) RunnerOption {
	return func(r *Runner) error {
		r.session = s
		return nil
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) error {
		r.logger = logger
		return nil
	}
}

func WithCtx(ctx context.Context) RunnerOption {
	return func(r *Runner) error {
		r.ctx = ctx
		return nil
	}
}

func WithRules(ruleSet []rules.Rule) RunnerOption {
	return func(r *Runner) error {
		r.rules = ruleSet
		return nil
	}
}

func WithBatchSize(n int) RunnerOption {
	return func(r *Runner) error {
		if n < 1 {
			return pkgerrors.New("batch size must be positive")
		}
		r.batchSize = n
		return nil
	}
}

func WithRetryConfig(cfg retry.Config) RunnerOption {
	return func(r *Runner) error {
		if cfg.MaxAttempts < 1 {
			return pkgerrors.New("retry attempts must be positive")
		}
		if cfg.BaseDelay <= 0 {
			return pkgerrors.New("retry base delay must be positive")
		}
		r.retryCfg = cfg
		return nil
	}
}

// WithDelete enables mutation. The default is a dry run: the deletion
// executor is never invoked.
func WithDelete(enabled bool) RunnerOption {
	return func(r *Runner) error {
		r.delete = enabled
		return nil
	}
}

// ResolveFolders filters the selectable mailbox list down to the requested
// set. An empty or ["*"] request means every selectable folder. Order follows
// the selectable list; skips apply in both modes.
func ResolveFolders(selectable, want, skip []string) []string {
	skipSet := map[string]struct{}{}
	for _, name := range skip {
		skipSet[name] = struct{}{}
	}

	all := len(want) == 0 || (len(want) == 1 && want[0] == "*")
	wantSet := map[string]struct{}{}
	for _, name := range want {
		wantSet[name] = struct{}{}
	}

	var out []string
	for _, name := range selectable {
		if _, skipped := skipSet[name]; skipped {
			continue
		}
		if !all {
			if _, ok := wantSet[name]; !ok {
				continue
			}
		}
		out = append(out, name)
	}
	return out
}

// Run processes the given folders sequentially and returns the aggregated
// counters. Unavailable mailboxes are skipped with a warning; a deeper
// failure aborts the run, with the stats accumulated so far still returned.
func (r *Runner) Run(folders []string) (*RunStats, error) {
	scanner := NewScanner(r.session, r.rules, r.batchSize, r.retryCfg, r.logger)
	deleter := NewDeleter(r.session, r.batchSize, r.retryCfg, r.logger)

	global := NewRunStats()
	for _, mailbox := range folders {
		stats, matched, err := scanner.Scan(r.ctx, mailbox, !r.delete)
		if err != nil {
			var unavailable *MailboxUnavailableError
			if errors.As(err, &unavailable) {
				r.logger.Warn("skipping mailbox",
					slog.String("mailbox", mailbox), slog.Any("error", err))
				continue
			}
			return global, err
		}

		r.logger.Info("mailbox scanned",
			slog.String("mailbox", mailbox),
			slog.Int("matched", stats.Unique),
			slog.Int("missing_sender", stats.MissingSender))

		if r.delete && len(matched) > 0 {
			deleted, derr := deleter.Delete(r.ctx, matched)
			stats.Deleted = deleted
			if derr != nil {
				global.Merge(mailbox, stats)
				return global, pkgerrors.Wrapf(derr, "delete in %q", mailbox)
			}
		}

		global.Merge(mailbox, stats)
	}

	return global, nil
}
