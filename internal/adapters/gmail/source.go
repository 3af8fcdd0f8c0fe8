// Package gmail implements core.MailSource against the Gmail REST API.
package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/core"
)

// Source retrieves messages for the authenticated user ("me").
type Source struct {
	svc    *gmail.Service
	logger *zap.Logger
}

// NewSource builds a Gmail mail source from OAuth credentials on disk.
// Missing or unreadable credentials are a fatal configuration error:
// the pipeline cannot run at all without them, so this fails loudly
// instead of ever producing an empty result.
func NewSource(ctx context.Context, cfg config.GmailConfig, logger *zap.Logger) (*Source, error) {
	creds, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("gmail credentials file %q not available: %w", cfg.CredentialsFile, err)
	}

	oauthCfg, err := google.ConfigFromJSON(creds, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gmail credentials: %w", err)
	}

	token, err := tokenFromFile(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("gmail token %q not available, run the authorization flow first: %w", cfg.TokenFile, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to build gmail service: %w", err)
	}

	return &Source{svc: svc, logger: logger}, nil
}

// List returns message IDs matching the Gmail search query. The query
// string is passed through to the provider unchanged.
func (s *Source) List(ctx context.Context, query string, maxResults int) ([]string, error) {
	resp, err := s.svc.Users.Messages.List("me").
		Q(query).
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list gmail messages: %w", err)
	}

	ids := make([]string, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		ids = append(ids, m.Id)
	}

	s.logger.Debug("Listed gmail messages",
		zap.String("query", query),
		zap.Int("count", len(ids)))

	return ids, nil
}

// Fetch retrieves one full message and maps it to a RawMessage.
func (s *Source) Fetch(ctx context.Context, id string) (*core.RawMessage, error) {
	msg, err := s.svc.Users.Messages.Get("me", id).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == 404 {
			return nil, core.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get gmail message %s: %w", id, err)
	}

	return parseMessage(msg), nil
}

func parseMessage(msg *gmail.Message) *core.RawMessage {
	subject := headerValue(msg.Payload, "Subject", "No Subject")
	sender := headerValue(msg.Payload, "From", "Unknown Sender")
	date := headerValue(msg.Payload, "Date", "Unknown Date")

	text, html := extractBodies(msg.Payload)

	return &core.RawMessage{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Sender:   sender,
		Subject:  subject,
		Date:     date,
		Body:     text,
		Snippet:  msg.Snippet,
		HTMLBody: html,
	}
}

func headerValue(payload *gmail.MessagePart, name, fallback string) string {
	if payload == nil {
		return fallback
	}
	for _, h := range payload.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return fallback
}

// extractBodies walks the MIME tree collecting the first text/plain and
// text/html parts.
func extractBodies(payload *gmail.MessagePart) (text, html string) {
	if payload == nil {
		return "", ""
	}

	if len(payload.Parts) == 0 {
		decoded := decodeBody(payload)
		switch payload.MimeType {
		case "text/plain":
			return decoded, ""
		case "text/html":
			return "", decoded
		}
		return "", ""
	}

	for _, part := range payload.Parts {
		t, h := extractBodies(part)
		if text == "" {
			text = t
		}
		if html == "" {
			html = h
		}
	}
	return text, html
}

func decodeBody(part *gmail.MessagePart) string {
	if part.Body == nil || part.Body.Data == "" {
		return ""
	}
	data, err := base64.RawURLEncoding.DecodeString(part.Body.Data)
	if err != nil {
		// Some providers pad the body data.
		data, err = base64.URLEncoding.DecodeString(part.Body.Data)
		if err != nil {
			return ""
		}
	}
	return string(data)
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &token, nil
}
