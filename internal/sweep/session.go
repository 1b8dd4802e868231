// Package sweep implements the mailbox scan/classify/delete pipeline: one
// mailbox at a time, one batch at a time, all remote calls wrapped in the
// retry executor.
package sweep

import (
	"github.com/emersion/go-imap/v2"
)

// FetchedMessage is one message's structured metadata as returned by a batch
// fetch. Envelope may be nil: some servers omit it for individual messages.
type FetchedMessage struct {
	UID      imap.UID
	Envelope *imap.Envelope
}

// Session is the capability surface the pipeline needs from an IMAP
// connection. The transport owns protocol details, TLS, and the translation
// of contention errors into the retryable class.
//
//go:generate mockgen -destination=mocks/session.go -package=mocks . Session
type Session interface {
	// Mailboxes lists the selectable mailbox names, \Noselect excluded.
	Mailboxes() ([]string, error)
	// Select opens a mailbox; readOnly must be false when deletion is
	// intended.
	Select(name string, readOnly bool) error
	// SearchNotDeleted lists the UIDs of messages not flagged \Deleted in
	// the selected mailbox.
	SearchNotDeleted() ([]imap.UID, error)
	// FetchEnvelopes fetches envelope metadata for the given UIDs in one
	// round trip.
	FetchEnvelopes(uids []imap.UID) ([]FetchedMessage, error)
	// FetchFromHeaders fetches the raw From header bytes for the given UIDs
	// in one round trip, keyed by UID.
	FetchFromHeaders(uids []imap.UID) (map[imap.UID][]byte, error)
	// MarkDeleted adds the \Deleted flag to the given UIDs.
	MarkDeleted(uids []imap.UID) error
	// ExpungeUIDs permanently removes exactly the given flagged UIDs.
	// Only valid when SupportsUIDExpunge reports true.
	ExpungeUIDs(uids []imap.UID) error
	// Expunge permanently removes every flagged message in the mailbox.
	Expunge() error
	// SupportsUIDExpunge reports whether the server advertises UIDPLUS.
	SupportsUIDExpunge() bool
}
