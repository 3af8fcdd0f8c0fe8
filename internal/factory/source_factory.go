package factory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/adapters/gmail"
	"github.com/mailsift/mailsift/internal/adapters/imapmail"
	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/core"
)

// SourceFactory creates mail sources based on configuration
type SourceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger) *SourceFactory {
	return &SourceFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateMailSource creates a mail source based on the configuration
func (f *SourceFactory) CreateMailSource() (core.MailSource, error) {
	sourceType := f.cfg.GetString("source.type")

	switch sourceType {
	case "gmail":
		return gmail.NewSource(context.Background(), f.cfg.GetGmail(), f.logger)
	case "imap":
		return imapmail.NewSource(f.cfg.GetIMAP(), f.logger)
	default:
		return nil, fmt.Errorf("unsupported source type: %s", sourceType)
	}
}
