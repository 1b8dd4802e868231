// Package rules implements the sender classification rule set.
//
// A rule is a plain string whose kind is derived from its spelling alone:
// anything containing "@" is a mask over the full sender address, anything
// else containing a glob metacharacter is a mask over the sender host, and a
// plain string is a domain that also covers all of its subdomains.
package rules

import (
	"path"
	"strings"

	"github.com/mailsweep/mailsweep/internal/sender"
)

// Kind identifies the matching semantics of a rule.
type Kind int

const (
	// Domain matches the sender host exactly, or any subdomain of it.
	Domain Kind = iota
	// HostMask glob-matches the sender host.
	HostMask
	// EmailMask glob-matches the full sender address.
	EmailMask
)

func (k Kind) String() string {
	switch k {
	case EmailMask:
		return "email_mask"
	case HostMask:
		return "host_mask"
	default:
		return "domain"
	}
}

// Rule is an immutable classification rule.
type Rule struct {
	raw  string
	text string
	kind Kind
}

// New derives a Rule from its literal spelling. The kind is a pure function
// of the text: "@" wins over glob metacharacters unconditionally.
func New(raw string) Rule {
	text := strings.ToLower(strings.TrimSpace(raw))
	return Rule{raw: raw, text: text, kind: classify(text)}
}

// ParseList splits a comma-separated rule list, dropping empty entries.
func ParseList(s string) []Rule {
	var out []Rule
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, New(part))
	}
	return out
}

func classify(text string) Kind {
	if strings.Contains(text, "@") {
		return EmailMask
	}
	if strings.ContainsAny(text, "*?[]") {
		return HostMask
	}
	return Domain
}

// String returns the rule as originally spelled.
func (r Rule) String() string { return r.raw }

// Kind returns the derived matching semantics.
func (r Rule) Kind() Kind { return r.kind }

// Matches reports whether the sender satisfies the rule. It is pure and never
// fails: a malformed glob degrades to a literal comparison.
func (r Rule) Matches(s sender.Info) bool {
	switch r.kind {
	case EmailMask:
		if s.FullAddress == "" {
			return false
		}
		return glob(r.text, s.FullAddress)
	case HostMask:
		if s.Host == "" {
			return false
		}
		return glob(r.text, s.Host)
	default:
		if s.Host == "" {
			return false
		}
		return s.Host == r.text || strings.HasSuffix(s.Host, "."+r.text)
	}
}

// glob performs case-insensitive shell-style matching. Both inputs are
// already lowercased by construction.
func glob(pattern, value string) bool {
	ok, err := path.Match(pattern, value)
	if err != nil {
		return pattern == value
	}
	return ok
}
