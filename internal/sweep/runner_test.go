package sweep_test

import (
	"errors"
	"testing"

	"github.com/emersion/go-imap/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mailsweep/mailsweep/internal/rules"
	"github.com/mailsweep/mailsweep/internal/sweep"
	"github.com/mailsweep/mailsweep/internal/sweep/mocks"
)

func newTestRunner(t *testing.T, session sweep.Session, deleteMode bool) *sweep.Runner {
	t.Helper()
	runner, err := sweep.NewRunner(
		sweep.WithSession(session),
		sweep.WithLogger(testLogger()),
		sweep.WithRules([]rules.Rule{rules.New("ozon.ru")}),
		sweep.WithBatchSize(500),
		sweep.WithRetryConfig(testRetryCfg()),
		sweep.WithDelete(deleteMode),
	)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return runner
}

func TestNewRunnerValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	cases := []struct {
		name string
		opts []sweep.RunnerOption
	}{
		{
			name: "missing session",
			opts: []sweep.RunnerOption{
				sweep.WithLogger(testLogger()),
				sweep.WithRules([]rules.Rule{rules.New("ozon.ru")}),
			},
		},
		{
			name: "missing logger",
			opts: []sweep.RunnerOption{
				sweep.WithSession(session),
				sweep.WithRules([]rules.Rule{rules.New("ozon.ru")}),
			},
		},
		{
			name: "missing rules",
			opts: []sweep.RunnerOption{
				sweep.WithSession(session),
				sweep.WithLogger(testLogger()),
			},
		},
		{
			name: "bad batch size",
			opts: []sweep.RunnerOption{
				sweep.WithSession(session),
				sweep.WithLogger(testLogger()),
				sweep.WithRules([]rules.Rule{rules.New("ozon.ru")}),
				sweep.WithBatchSize(0),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sweep.NewRunner(tc.opts...)
			assert.Error(t, err)
		})
	}
}

func TestRunDryRunNeverMutates(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	// Read-only select in dry-run; no MarkDeleted/Expunge expectations, so
	// any mutation fails the test.
	session.EXPECT().Select("INBOX", true).Return(nil)
	session.EXPECT().SearchNotDeleted().Return([]imap.UID{1, 2}, nil)
	session.EXPECT().FetchEnvelopes([]imap.UID{1, 2}).Return([]sweep.FetchedMessage{
		{UID: 1, Envelope: envelopeFrom("a", "ozon.ru")},
		{UID: 2, Envelope: envelopeFrom("b", "news.ozon.ru")},
	}, nil)

	runner := newTestRunner(t, session, false)

	stats, err := runner.Run([]string{"INBOX"})
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Unique)
	assert.Equal(t, 0, stats.Deleted, "dry-run reports zero deletions")
}

func TestRunDeletesMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	session.EXPECT().Select("INBOX", false).Return(nil)
	session.EXPECT().SearchNotDeleted().Return([]imap.UID{1, 2, 3}, nil)
	session.EXPECT().FetchEnvelopes([]imap.UID{1, 2, 3}).Return([]sweep.FetchedMessage{
		{UID: 1, Envelope: envelopeFrom("a", "ozon.ru")},
		{UID: 2, Envelope: envelopeFrom("b", "keep.example")},
		{UID: 3, Envelope: envelopeFrom("c", "news.ozon.ru")},
	}, nil)
	session.EXPECT().SupportsUIDExpunge().Return(true)
	session.EXPECT().MarkDeleted([]imap.UID{1, 3}).Return(nil)
	session.EXPECT().ExpungeUIDs([]imap.UID{1, 3}).Return(nil)

	runner := newTestRunner(t, session, true)

	stats, err := runner.Run([]string{"INBOX"})
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Unique)
	assert.Equal(t, 2, stats.Deleted)
}

func TestRunSkipsUnavailableMailbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	gomock.InOrder(
		session.EXPECT().Select("Broken", true).Return(errors.New("NO select failed")),
		session.EXPECT().Select("INBOX", true).Return(nil),
	)
	session.EXPECT().SearchNotDeleted().Return([]imap.UID{1}, nil)
	session.EXPECT().FetchEnvelopes([]imap.UID{1}).Return([]sweep.FetchedMessage{
		{UID: 1, Envelope: envelopeFrom("a", "ozon.ru")},
	}, nil)

	runner := newTestRunner(t, session, false)

	stats, err := runner.Run([]string{"Broken", "INBOX"})
	assert.NoError(t, err, "an unavailable mailbox must not abort the run")
	assert.Equal(t, []string{"INBOX"}, stats.Mailboxes)
	assert.Equal(t, 1, stats.Unique)
}

func TestRunFatalErrorKeepsEarlierStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mocks.NewMockSession(ctrl)

	gomock.InOrder(
		session.EXPECT().Select("INBOX", true).Return(nil),
		session.EXPECT().Select("Archive", true).Return(nil),
	)
	session.EXPECT().SearchNotDeleted().Return([]imap.UID{1}, nil).Times(2)
	gomock.InOrder(
		session.EXPECT().FetchEnvelopes([]imap.UID{1}).Return([]sweep.FetchedMessage{
			{UID: 1, Envelope: envelopeFrom("a", "ozon.ru")},
		}, nil),
		session.EXPECT().FetchEnvelopes([]imap.UID{1}).Return(nil, errors.New("BYE connection torn down")),
	)

	runner := newTestRunner(t, session, false)

	stats, err := runner.Run([]string{"INBOX", "Archive"})
	assert.Error(t, err)
	assert.Equal(t, []string{"INBOX"}, stats.Mailboxes, "completed mailboxes are flushed before the abort")
	assert.Equal(t, 1, stats.Unique)
}

func TestResolveFolders(t *testing.T) {
	selectable := []string{"INBOX", "Archive", "Spam", "Trash"}

	cases := []struct {
		name string
		want []string
		skip []string
		out  []string
	}{
		{name: "star means all", want: []string{"*"}, out: selectable},
		{name: "empty means all", want: nil, out: selectable},
		{
			name: "star with skips",
			want: []string{"*"},
			skip: []string{"Trash", "Spam"},
			out:  []string{"INBOX", "Archive"},
		},
		{
			name: "explicit list follows selectable order",
			want: []string{"Spam", "INBOX"},
			out:  []string{"INBOX", "Spam"},
		},
		{
			name: "unknown folders are dropped",
			want: []string{"INBOX", "Nope"},
			out:  []string{"INBOX"},
		},
		{
			name: "skip applies to explicit list",
			want: []string{"INBOX", "Trash"},
			skip: []string{"Trash"},
			out:  []string{"INBOX"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, sweep.ResolveFolders(selectable, tc.want, tc.skip))
		})
	}
}
