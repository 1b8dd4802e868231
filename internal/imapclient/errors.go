package imapclient

import (
	"strings"

	"github.com/mailsweep/mailsweep/internal/retry"
)

// Contention markers seen from servers that lock mailboxes during
// re-indexing. IMAP gives no structured code for these, so the response text
// is the only signal; "timeout while waiting for indexing" is covered by the
// INDEXING substring.
var transientMarkers = []string{
	"INUSE",
	"INDEXING",
}

// translateErr tags lock/indexing contention as transient so the retry
// executor can recognize it without string matching of its own.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	text := strings.ToUpper(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(text, marker) {
			return retry.Transient(err)
		}
	}
	return err
}
