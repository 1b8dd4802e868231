// Package sender resolves a normalized sender identity for a message.
//
// Resolution is two-phase: the structured envelope metadata is the primary
// source, and the raw From header is parsed only for messages where the
// envelope did not yield a usable address.
package sender

import (
	"bytes"
	"strings"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-message/mail"
)

// Info is the normalized sender identity of a single message. All fields are
// lowercased. FullAddress is empty unless both LocalPart and Host are present.
type Info struct {
	LocalPart   string
	Host        string
	FullAddress string
}

// IsZero reports whether no usable sender was resolved. Messages with a zero
// Info are unclassifiable and must be skipped for rule evaluation.
func (i Info) IsZero() bool {
	return i.Host == "" && i.FullAddress == ""
}

func build(localPart, host string) Info {
	info := Info{
		LocalPart: strings.ToLower(strings.TrimSpace(localPart)),
		Host:      strings.ToLower(strings.TrimSpace(host)),
	}
	if info.LocalPart != "" && info.Host != "" {
		info.FullAddress = info.LocalPart + "@" + info.Host
	}
	return info
}

// FromEnvelope resolves the sender from structured envelope metadata. It
// returns a zero Info when the envelope is absent or names no usable address.
func FromEnvelope(env *imap.Envelope) Info {
	if env == nil || len(env.From) == 0 {
		return Info{}
	}
	addr := env.From[0]
	return build(addr.Mailbox, addr.Host)
}

// FromHeader resolves the sender from raw header bytes containing a From
// field. The first parsed address wins; the address is split on its last "@".
// Parse failures yield a zero Info, never an error.
func FromHeader(raw []byte) Info {
	if len(raw) == 0 {
		return Info{}
	}
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil && mr == nil {
		return Info{}
	}
	addrs, err := mr.Header.AddressList("From")
	if err != nil || len(addrs) == 0 {
		return Info{}
	}
	at := strings.LastIndex(addrs[0].Address, "@")
	if at <= 0 || at == len(addrs[0].Address)-1 {
		return Info{}
	}
	return build(addrs[0].Address[:at], addrs[0].Address[at+1:])
}
