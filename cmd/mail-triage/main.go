package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/classify"
	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/core"
	"github.com/mailsift/mailsift/internal/logging"
	"github.com/mailsift/mailsift/internal/summarize"
	"github.com/mailsift/mailsift/internal/textnorm"
)

var (
	// Summarization flags
	maxSentences = flag.Int("max-sentences", 3, "Maximum sentences in the summary")

	// Input flags
	inputFile  = flag.String("file", "", "Input email file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	var cfg *config.Config
	var err error

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		// Create config from command line flags
		cfg = createConfigFromFlags()
	}

	// Read email from file or stdin
	var emailReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	// Parse email
	msg, err := mail.ReadMessage(bufio.NewReader(emailReader))
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	from := msg.Header.Get("From")
	subject := msg.Header.Get("Subject")

	bodyBytes, err := io.ReadAll(msg.Body)
	if err != nil {
		logger.Fatal("Failed to read email body", zap.Error(err))
	}
	body := string(bodyBytes)

	// Print email summary
	fmt.Printf("\n=== Email ===\n")
	fmt.Printf("From: %s\n", from)
	fmt.Printf("Subject: %s\n", subject)
	fmt.Printf("Body length: %d bytes\n", len(body))
	fmt.Printf("\n")

	cleaner := textnorm.New()
	typeClassifier := classify.NewTypeClassifier(classify.DefaultTypeRules())
	topicClassifier := classify.NewTopicClassifier(classify.DefaultTopics())
	summarizer := summarize.New(cleaner, cfg.GetSummary().MaxSentences)

	startTime := time.Now()

	content := cleaner.Clean(body)
	emailType := typeClassifier.Classify(subject, from, content)

	fmt.Printf("=== Classification ===\n")
	fmt.Printf("Type: %s\n", emailType)

	if emailType == core.TypeArticle {
		topic := topicClassifier.Classify(cleaner.Clean(subject + " " + content))
		summary := summarizer.Summarize(content)

		fmt.Printf("Category: %s\n", topic)
		fmt.Printf("\n=== Summary ===\n")
		fmt.Printf("%s\n", summary)
	}

	fmt.Printf("\nProcessing time: %v\n", time.Since(startTime))
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("summary.max_sentences", *maxSentences)

	return config.NewFromViper(v)
}
