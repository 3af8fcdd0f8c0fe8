// Package imapmail implements core.MailSource over IMAP for providers
// without a REST retrieval API.
package imapmail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/emersion/go-message/mail"
	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/core"
	"github.com/mailsift/mailsift/internal/textnorm"
)

// Gmail-style relative age filter, the one query form IMAP can honor.
var newerThanExpr = regexp.MustCompile(`newer_than:(\d+)d`)

const snippetLength = 100

// Source connects per call; pipeline runs are batch-shaped, so holding
// an IMAP session open between runs buys nothing.
type Source struct {
	cfg    config.IMAPConfig
	logger *zap.Logger
}

// NewSource validates the connection settings. Missing host or
// credentials are a fatal configuration error.
func NewSource(cfg config.IMAPConfig, logger *zap.Logger) (*Source, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("imap host is not configured")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("imap credentials are not configured")
	}
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	return &Source{cfg: cfg, logger: logger}, nil
}

// connect dials and authenticates. The imap client has no per-command
// context, so cancellation is honored by checking ctx between steps.
func (s *Source) connect(ctx context.Context) (*imapclient.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	addr := s.cfg.Host + ":" + s.cfg.Port

	var client *imapclient.Client
	var err error
	if s.cfg.TLS {
		client, err = imapclient.DialTLS(addr, nil)
	} else {
		client, err = imapclient.DialStartTLS(addr, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to imap %s: %w", addr, err)
	}

	if err := ctx.Err(); err != nil {
		_ = client.Logout().Wait()
		return nil, err
	}

	if err := client.Login(s.cfg.Username, s.cfg.Password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, fmt.Errorf("imap authentication failed for %s: %w", s.cfg.Username, err)
	}

	return client, nil
}

// List searches the configured mailbox and returns matching UIDs newest
// first. The free-text query is provider-opaque; the one form IMAP can
// map is newer_than:<n>d, which becomes a SINCE criterion. Anything
// else searches the whole mailbox.
func (s *Source) List(ctx context.Context, query string, maxResults int) ([]string, error) {
	client, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(s.cfg.Mailbox, nil).Wait(); err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", s.cfg.Mailbox, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	searchData, err := client.UIDSearch(searchCriteria(query), nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	uids := searchData.AllUIDs()
	if maxResults > 0 && len(uids) > maxResults {
		uids = uids[len(uids)-maxResults:]
	}

	// UID order is oldest first; reverse so callers see newest first.
	ids := make([]string, 0, len(uids))
	for i := len(uids) - 1; i >= 0; i-- {
		ids = append(ids, strconv.FormatUint(uint64(uids[i]), 10))
	}

	s.logger.Debug("Listed imap messages",
		zap.String("mailbox", s.cfg.Mailbox),
		zap.Int("count", len(ids)))

	return ids, nil
}

// Fetch retrieves one message by UID and maps it to a RawMessage.
func (s *Source) Fetch(ctx context.Context, id string) (*core.RawMessage, error) {
	uid, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid imap uid %q: %w", id, err)
	}

	client, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(s.cfg.Mailbox, nil).Wait(); err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", s.cfg.Mailbox, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bodySection := &imap.FetchItemBodySection{Peek: true}
	fetchCmd := client.Fetch(imap.UIDSetNum(imap.UID(uid)), &imap.FetchOptions{
		Envelope:    true,
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	})
	defer fetchCmd.Close()

	msg := fetchCmd.Next()
	if msg == nil {
		return nil, core.ErrMessageNotFound
	}

	buf, err := msg.Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to collect message %s: %w", id, err)
	}

	raw := &core.RawMessage{ID: id}
	if buf.Envelope != nil {
		raw.Subject = buf.Envelope.Subject
		raw.Sender = formatSender(buf.Envelope)
		raw.Date = buf.Envelope.Date.Format(time.RFC1123Z)
		raw.ThreadID = buf.Envelope.MessageID
	}

	if rawBody := buf.FindBodySection(bodySection); rawBody != nil {
		raw.Body, raw.HTMLBody = parseMIMEBody(rawBody)
	}

	raw.Snippet = textnorm.Truncate(textnorm.Collapse(raw.Body), snippetLength)

	return raw, nil
}

func searchCriteria(query string) *imap.SearchCriteria {
	criteria := &imap.SearchCriteria{}
	if m := newerThanExpr.FindStringSubmatch(query); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			criteria.Since = time.Now().AddDate(0, 0, -days)
		}
	}
	return criteria
}

func formatSender(env *imap.Envelope) string {
	if len(env.From) == 0 {
		return "Unknown Sender"
	}
	from := env.From[0]
	if from.Name != "" {
		return fmt.Sprintf("%s <%s>", from.Name, from.Addr())
	}
	return from.Addr()
}

// parseMIMEBody extracts the first text/plain and text/html parts. A
// message that cannot be parsed as MIME degrades to plain text.
func parseMIMEBody(raw []byte) (textBody, htmlBody string) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return string(raw), ""
	}
	defer mr.Close()

	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}

		header, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		contentType, _, _ := header.ContentType()
		body, readErr := io.ReadAll(part.Body)
		if readErr != nil {
			continue
		}

		switch {
		case strings.HasPrefix(contentType, "text/plain") && textBody == "":
			textBody = string(body)
		case strings.HasPrefix(contentType, "text/html") && htmlBody == "":
			htmlBody = string(body)
		}
	}

	return textBody, htmlBody
}
