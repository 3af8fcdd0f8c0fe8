package config

// GmailConfig represents the configuration for the Gmail mail source
type GmailConfig struct {
	CredentialsFile string
	TokenFile       string
}

// IMAPConfig represents the configuration for the IMAP mail source
type IMAPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	TLS      bool
	Mailbox  string
}

// PipelineConfig represents the retrieval parameters of a pipeline run
type PipelineConfig struct {
	Query      string
	MaxResults int
}

// SummaryConfig represents the summarizer configuration
type SummaryConfig struct {
	MaxSentences int
}

// StoreConfig represents the result store configuration
type StoreConfig struct {
	Type       string
	FilePath   string
	SQLitePath string
	MySQLDSN   string
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	ListenAddress  string
	AllowedOrigins []string
}

// GetGmail returns the Gmail configuration
func (c *Config) GetGmail() GmailConfig {
	return GmailConfig{
		CredentialsFile: c.GetString("gmail.credentials_file"),
		TokenFile:       c.GetString("gmail.token_file"),
	}
}

// GetIMAP returns the IMAP configuration
func (c *Config) GetIMAP() IMAPConfig {
	return IMAPConfig{
		Host:     c.GetString("imap.host"),
		Port:     c.GetString("imap.port"),
		Username: c.GetString("imap.username"),
		Password: c.GetString("imap.password"),
		TLS:      c.GetBool("imap.tls"),
		Mailbox:  c.GetString("imap.mailbox"),
	}
}

// GetPipeline returns the pipeline retrieval configuration
func (c *Config) GetPipeline() PipelineConfig {
	return PipelineConfig{
		Query:      c.GetString("pipeline.query"),
		MaxResults: c.GetInt("pipeline.max_results"),
	}
}

// GetSummary returns the summarizer configuration
func (c *Config) GetSummary() SummaryConfig {
	return SummaryConfig{
		MaxSentences: c.GetInt("summary.max_sentences"),
	}
}

// GetStore returns the result store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:       c.GetString("store.type"),
		FilePath:   c.GetString("store.file_path"),
		SQLitePath: c.GetString("store.sqlite_path"),
		MySQLDSN:   c.GetString("store.mysql_dsn"),
	}
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress:  c.GetString("server.listen_address"),
		AllowedOrigins: c.GetStringSlice("server.allowed_origins"),
	}
}
