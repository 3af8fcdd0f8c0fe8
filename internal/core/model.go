package core

import "sort"

// FunctionalType is the coarse purpose bucket assigned to every message.
type FunctionalType string

const (
	TypeArticle      FunctionalType = "article"
	TypeJob          FunctionalType = "job"
	TypePromotion    FunctionalType = "promotion"
	TypeNotification FunctionalType = "notification"
	TypePersonal     FunctionalType = "personal"
)

// AllFunctionalTypes returns every functional type in canonical order.
func AllFunctionalTypes() []FunctionalType {
	return []FunctionalType{TypeArticle, TypeJob, TypePromotion, TypeNotification, TypePersonal}
}

// ParseFunctionalType validates a section name from an external caller.
func ParseFunctionalType(s string) (FunctionalType, bool) {
	for _, t := range AllFunctionalTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// TopicLabel is the subject-matter category assigned to article-typed messages.
type TopicLabel string

const (
	TopicTechnology  TopicLabel = "technology"
	TopicFinance     TopicLabel = "finance"
	TopicInvesting   TopicLabel = "investing"
	TopicGeopolitics TopicLabel = "geopolitics"
	TopicBusiness    TopicLabel = "business"
	TopicHealth      TopicLabel = "health"
	TopicEducation   TopicLabel = "education"
	TopicGeneral     TopicLabel = "general"
)

// RawMessage is a message as retrieved from the mail provider.
// Immutable once retrieved; Date is kept in the provider's own format.
type RawMessage struct {
	ID       string
	ThreadID string
	Sender   string
	Subject  string
	Date     string
	Body     string
	Snippet  string
	HTMLBody string
}

// ClassifiedArticle is the full record built for article-typed messages.
// The JSON field names are part of the external contract and must not change.
type ClassifiedArticle struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Sender      string     `json:"sender"`
	Date        string     `json:"date"`
	Category    TopicLabel `json:"category"`
	Summary     string     `json:"summary"`
	FullContent string     `json:"full_content"`
	Snippet     string     `json:"snippet"`
	ThreadID    string     `json:"thread_id"`
}

// ClassifiedRecord is the lightweight record built for non-article messages.
type ClassifiedRecord struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Sender   string         `json:"sender"`
	Date     string         `json:"date"`
	Snippet  string         `json:"snippet"`
	ThreadID string         `json:"thread_id"`
	Type     FunctionalType `json:"type"`
}

// Sections holds one ordered list per functional type. Lists preserve
// retrieval order and are always present, empty rather than null.
type Sections struct {
	Articles      []ClassifiedArticle `json:"article"`
	Jobs          []ClassifiedRecord  `json:"job"`
	Promotions    []ClassifiedRecord  `json:"promotion"`
	Notifications []ClassifiedRecord  `json:"notification"`
	Personal      []ClassifiedRecord  `json:"personal"`
}

// NewSections returns a section set with all five sections initialized.
func NewSections() Sections {
	return Sections{
		Articles:      make([]ClassifiedArticle, 0),
		Jobs:          make([]ClassifiedRecord, 0),
		Promotions:    make([]ClassifiedRecord, 0),
		Notifications: make([]ClassifiedRecord, 0),
		Personal:      make([]ClassifiedRecord, 0),
	}
}

// AppendRecord files a non-article record under its functional type.
// Anything unrecognized lands in personal, the defined default.
func (s *Sections) AppendRecord(rec ClassifiedRecord) {
	switch rec.Type {
	case TypeJob:
		s.Jobs = append(s.Jobs, rec)
	case TypePromotion:
		s.Promotions = append(s.Promotions, rec)
	case TypeNotification:
		s.Notifications = append(s.Notifications, rec)
	default:
		s.Personal = append(s.Personal, rec)
	}
}

// Get returns the list for a functional type as a JSON-marshalable value.
func (s *Sections) Get(t FunctionalType) (interface{}, bool) {
	switch t {
	case TypeArticle:
		return s.Articles, true
	case TypeJob:
		return s.Jobs, true
	case TypePromotion:
		return s.Promotions, true
	case TypeNotification:
		return s.Notifications, true
	case TypePersonal:
		return s.Personal, true
	}
	return nil, false
}

// Count returns the number of entries filed under a functional type.
func (s *Sections) Count(t FunctionalType) int {
	switch t {
	case TypeArticle:
		return len(s.Articles)
	case TypeJob:
		return len(s.Jobs)
	case TypePromotion:
		return len(s.Promotions)
	case TypeNotification:
		return len(s.Notifications)
	case TypePersonal:
		return len(s.Personal)
	}
	return 0
}

// Total returns the number of messages filed across all sections.
func (s *Sections) Total() int {
	n := 0
	for _, t := range AllFunctionalTypes() {
		n += s.Count(t)
	}
	return n
}

// Stats summarizes one pipeline run.
type Stats struct {
	TotalEmails            int                    `json:"total_emails"`
	BySection              map[FunctionalType]int `json:"by_section"`
	ArticleCategoriesFound []TopicLabel           `json:"article_categories_found"`
}

// ProcessingResult is the sole output artifact of a pipeline run. It
// wholesale-replaces the previous run's result on persistence; results
// are never merged across runs.
type ProcessingResult struct {
	Sections          Sections                           `json:"sections"`
	ArticleCategories map[TopicLabel][]ClassifiedArticle `json:"article_categories"`
	Stats             Stats                              `json:"stats"`
}

// NewProcessingResult returns an empty, fully initialized result.
func NewProcessingResult() *ProcessingResult {
	return &ProcessingResult{
		Sections:          NewSections(),
		ArticleCategories: make(map[TopicLabel][]ClassifiedArticle),
		Stats: Stats{
			BySection:              make(map[FunctionalType]int),
			ArticleCategoriesFound: make([]TopicLabel, 0),
		},
	}
}

// Finalize computes the aggregate statistics over the final sectioning.
func (r *ProcessingResult) Finalize() {
	r.Stats.TotalEmails = r.Sections.Total()
	for _, t := range AllFunctionalTypes() {
		r.Stats.BySection[t] = r.Sections.Count(t)
	}
	topics := make([]TopicLabel, 0, len(r.ArticleCategories))
	for topic := range r.ArticleCategories {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i] < topics[j] })
	r.Stats.ArticleCategoriesFound = topics
}
