// Package imapclient is the IMAP transport behind the sweep pipeline. It
// owns the connection, authentication, and the translation of server
// contention errors into the retryable class.
package imapclient

import (
	"crypto/tls"
	"errors"
	"strings"

	"github.com/emersion/go-imap/v2"
	goimapclient "github.com/emersion/go-imap/v2/imapclient"

	"github.com/mailsweep/mailsweep/internal/sweep"
)

// Client encapsulates a single authenticated IMAP connection.
type Client struct {
	Addr      string
	Username  string
	Password  string
	TLSConfig *tls.Config

	client *goimapclient.Client
}

// Connect establishes the IMAP connection and logs in.
func (c *Client) Connect() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("IMAP address is required")
	}
	if strings.TrimSpace(c.Username) == "" || strings.TrimSpace(c.Password) == "" {
		return errors.New("IMAP credentials are required")
	}

	var options *goimapclient.Options
	if c.TLSConfig != nil {
		options = &goimapclient.Options{TLSConfig: c.TLSConfig}
	}

	client, err := goimapclient.DialTLS(c.Addr, options)
	if err != nil {
		return err
	}

	if err := client.Login(c.Username, c.Password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return err
	}

	c.client = client
	return nil
}

// Close logs out and clears the connection.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Logout().Wait()
	c.client = nil
	return err
}

// Mailboxes lists selectable mailbox names, excluding \Noselect entries.
func (c *Client) Mailboxes() ([]string, error) {
	if c.client == nil {
		return nil, errors.New("IMAP client is not connected")
	}

	listed, err := c.client.List("", "*", nil).Collect()
	if err != nil {
		return nil, translateErr(err)
	}

	var names []string
	for _, mbox := range listed {
		if hasAttr(mbox.Attrs, imap.MailboxAttrNoSelect) {
			continue
		}
		names = append(names, mbox.Mailbox)
	}
	return names, nil
}

// Select opens a mailbox, read-only unless mutation is intended.
func (c *Client) Select(name string, readOnly bool) error {
	if c.client == nil {
		return errors.New("IMAP client is not connected")
	}
	_, err := c.client.Select(name, &imap.SelectOptions{ReadOnly: readOnly}).Wait()
	return translateErr(err)
}

// SearchNotDeleted returns the UIDs of messages not flagged \Deleted.
func (c *Client) SearchNotDeleted() ([]imap.UID, error) {
	if c.client == nil {
		return nil, errors.New("IMAP client is not connected")
	}

	criteria := &imap.SearchCriteria{
		Not: []imap.SearchCriteria{{
			Flag: []imap.Flag{imap.FlagDeleted},
		}},
	}
	data, err := c.client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, translateErr(err)
	}
	return data.AllUIDs(), nil
}

// FetchEnvelopes fetches envelope metadata for the given UIDs in one round
// trip.
func (c *Client) FetchEnvelopes(uids []imap.UID) ([]sweep.FetchedMessage, error) {
	if c.client == nil {
		return nil, errors.New("IMAP client is not connected")
	}
	if len(uids) == 0 {
		return nil, nil
	}

	fetchOptions := &imap.FetchOptions{
		Envelope: true,
		UID:      true,
	}
	msgs, err := c.client.Fetch(uidSet(uids), fetchOptions).Collect()
	if err != nil {
		return nil, translateErr(err)
	}

	fetched := make([]sweep.FetchedMessage, 0, len(msgs))
	for _, msg := range msgs {
		fetched = append(fetched, sweep.FetchedMessage{
			UID:      msg.UID,
			Envelope: msg.Envelope,
		})
	}
	return fetched, nil
}

// FetchFromHeaders fetches the raw From header bytes for the given UIDs in
// one round trip.
func (c *Client) FetchFromHeaders(uids []imap.UID) (map[imap.UID][]byte, error) {
	if c.client == nil {
		return nil, errors.New("IMAP client is not connected")
	}
	if len(uids) == 0 {
		return map[imap.UID][]byte{}, nil
	}

	section := &imap.FetchItemBodySection{
		Specifier:    imap.PartSpecifierHeader,
		HeaderFields: []string{"From"},
		Peek:         true,
	}
	fetchOptions := &imap.FetchOptions{
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{section},
	}
	msgs, err := c.client.Fetch(uidSet(uids), fetchOptions).Collect()
	if err != nil {
		return nil, translateErr(err)
	}

	headers := make(map[imap.UID][]byte, len(msgs))
	for _, msg := range msgs {
		if data := msg.FindBodySection(section); data != nil {
			headers[msg.UID] = data
		}
	}
	return headers, nil
}

// MarkDeleted adds the \Deleted flag to the given UIDs, silently: flag
// updates are not echoed back.
func (c *Client) MarkDeleted(uids []imap.UID) error {
	if c.client == nil {
		return errors.New("IMAP client is not connected")
	}
	if len(uids) == 0 {
		return nil
	}

	store := imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagDeleted},
	}
	return translateErr(c.client.Store(uidSet(uids), &store, nil).Close())
}

// ExpungeUIDs removes exactly the given flagged UIDs via UID EXPUNGE.
func (c *Client) ExpungeUIDs(uids []imap.UID) error {
	if c.client == nil {
		return errors.New("IMAP client is not connected")
	}
	_, err := c.client.UIDExpunge(uidSet(uids)).Collect()
	return translateErr(err)
}

// Expunge removes every flagged message in the selected mailbox.
func (c *Client) Expunge() error {
	if c.client == nil {
		return errors.New("IMAP client is not connected")
	}
	_, err := c.client.Expunge().Collect()
	return translateErr(err)
}

// SupportsUIDExpunge reports whether the server advertises UIDPLUS.
func (c *Client) SupportsUIDExpunge() bool {
	if c.client == nil {
		return false
	}
	return c.client.Caps().Has(imap.CapUIDPlus)
}

func uidSet(uids []imap.UID) imap.UIDSet {
	var set imap.UIDSet
	for _, uid := range uids {
		set.AddNum(uid)
	}
	return set
}

func hasAttr(attrs []imap.MailboxAttr, attr imap.MailboxAttr) bool {
	for _, a := range attrs {
		if a == attr {
			return true
		}
	}
	return false
}

var _ sweep.Session = (*Client)(nil)
