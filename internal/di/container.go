package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/adapters/httpapi"
	"github.com/mailsift/mailsift/internal/classify"
	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/core"
	"github.com/mailsift/mailsift/internal/factory"
	"github.com/mailsift/mailsift/internal/logging"
	"github.com/mailsift/mailsift/internal/ports"
	"github.com/mailsift/mailsift/internal/summarize"
	"github.com/mailsift/mailsift/internal/textnorm"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}

	// Register mail source
	if err := container.Provide(func(f *factory.SourceFactory) (core.MailSource, error) {
		return f.CreateMailSource()
	}); err != nil {
		return nil, err
	}

	// Register result store
	if err := container.Provide(func(f *factory.StoreFactory) (core.ResultStore, error) {
		return f.CreateResultStore()
	}); err != nil {
		return nil, err
	}

	// Register text cleaner
	if err := container.Provide(func() core.TextCleaner {
		return textnorm.New()
	}); err != nil {
		return nil, err
	}

	// Register classifiers
	if err := container.Provide(func() core.TypeClassifier {
		return classify.NewTypeClassifier(classify.DefaultTypeRules())
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func() core.TopicClassifier {
		return classify.NewTopicClassifier(classify.DefaultTopics())
	}); err != nil {
		return nil, err
	}

	// Register summarizer
	if err := container.Provide(func(cfg *config.Config, cleaner core.TextCleaner) core.Summarizer {
		return summarize.New(cleaner, cfg.GetSummary().MaxSentences)
	}); err != nil {
		return nil, err
	}

	// Register pipeline service
	if err := container.Provide(core.NewPipelineService); err != nil {
		return nil, err
	}

	// Register HTTP handler and server
	if err := container.Provide(func(svc *core.PipelineService, store core.ResultStore, cfg *config.Config, logger *zap.Logger) *httpapi.Handler {
		return httpapi.NewHandler(svc, store, cfg.GetPipeline(), logger)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config, handler *httpapi.Handler, logger *zap.Logger) ports.HTTPServer {
		return httpapi.NewServer(cfg.GetServer(), handler, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
