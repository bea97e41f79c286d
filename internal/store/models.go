package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"air-relatorios/internal/domain"

	"github.com/google/uuid"
)

// JSON stores a typed value in a JSON/JSONB column. A NULL column scans to
// the zero value and Valid=false.
type JSON[T any] struct {
	V     T
	Valid bool
}

// NewJSON wraps v as a non-null JSON column value.
func NewJSON[T any](v T) JSON[T] {
	return JSON[T]{V: v, Valid: true}
}

// Value implements the driver.Valuer interface
func (j JSON[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (j *JSON[T]) Scan(value interface{}) error {
	var zero T
	j.V = zero
	if value == nil {
		j.Valid = false
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("incompatible type %T for JSON column", value)
	}

	j.Valid = true
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, &j.V)
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	if !j.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(j.V)
}

func (j *JSON[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		var zero T
		j.V, j.Valid = zero, false
		return nil
	}
	j.Valid = true
	return json.Unmarshal(b, &j.V)
}

type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	Name         string     `db:"name" json:"name"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
}

type Invite struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Token        string     `db:"token" json:"token"`
	CreatedBy    uuid.UUID  `db:"created_by" json:"created_by"`
	InviteeEmail *string    `db:"invitee_email" json:"invitee_email,omitempty"`
	ExpiresAt    time.Time  `db:"expires_at" json:"expires_at"`
	UsedAt       *time.Time `db:"used_at" json:"used_at,omitempty"`
	UsedBy       *uuid.UUID `db:"used_by" json:"used_by,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CNPJ      *string   `db:"cnpj" json:"cnpj,omitempty"`
	Contact   *string   `db:"contact" json:"contact,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Category struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Influencer struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Handle             string     `db:"handle" json:"handle"`
	DisplayName        string     `db:"display_name" json:"display_name"`
	Network            string     `db:"network" json:"network"`
	Followers          int64      `db:"followers" json:"followers"`
	EngagementRate     float64    `db:"engagement_rate" json:"engagement_rate"`
	AirScore           float64    `db:"air_score" json:"air_score"`
	Classification     string     `db:"classification" json:"classification"`
	PhotoURL           *string    `db:"photo_url" json:"photo_url,omitempty"`
	ProfileID          *string    `db:"profile_id" json:"profile_id,omitempty"`
	LinkedInfluencerID *uuid.UUID `db:"linked_influencer_id" json:"linked_influencer_id,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type Campaign struct {
	ID                      uuid.UUID                             `db:"id" json:"id"`
	Name                    string                                `db:"name" json:"name"`
	ClientID                uuid.UUID                             `db:"client_id" json:"client_id"`
	Objective               string                                `db:"objective" json:"objective"`
	StartDate               *time.Time                            `db:"start_date" json:"start_date,omitempty"`
	EndDate                 *time.Time                            `db:"end_date" json:"end_date,omitempty"`
	DataMode                string                                `db:"data_mode" json:"data_mode"`
	IsAON                   bool                                  `db:"is_aon" json:"is_aon"`
	MetricFlags             JSON[[]string]                        `db:"metric_flags" json:"metric_flags"`
	ReachEstimate           int64                                 `db:"reach_estimate" json:"reach_estimate"`
	ImpressionsEstimate     int64                                 `db:"impressions_estimate" json:"impressions_estimate"`
	TotalInvestment         float64                               `db:"total_investment" json:"total_investment"`
	Notes                   string                                `db:"notes" json:"notes"`
	TopContents             JSON[[]domain.TopContent]             `db:"top_contents" json:"top_contents"`
	CustomColumns           JSON[[]string]                        `db:"custom_columns" json:"custom_columns"`
	InsightConfig           JSON[map[string]any]                  `db:"insight_config" json:"insight_config"`
	ShowCategoryTab         bool                                  `db:"show_category_tab" json:"show_category_tab"`
	SpecificClassifications JSON[[]domain.SpecificClassification] `db:"specific_classifications" json:"specific_classifications"`
	CommentCategories       JSON[[]domain.CommentCategory]        `db:"comment_categories" json:"comment_categories"`
	CreatedAt               time.Time                             `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time                             `db:"updated_at" json:"updated_at"`
}

// CampaignInfluencer is the edge attaching a base influencer to a campaign.
type CampaignInfluencer struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	CampaignID     uuid.UUID      `db:"campaign_id" json:"campaign_id"`
	InfluencerID   uuid.UUID      `db:"influencer_id" json:"influencer_id"`
	Cost           float64        `db:"cost" json:"cost"`
	CustomCol1     string         `db:"custom_col_1" json:"custom_col_1"`
	CustomCol2     string         `db:"custom_col_2" json:"custom_col_2"`
	SpecificValues JSON[[]string] `db:"specific_values" json:"specific_values"`
	Category       string         `db:"category" json:"category"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// CampaignInfluencerDetail is an edge joined with its base influencer.
type CampaignInfluencerDetail struct {
	CampaignInfluencer
	Handle         string  `db:"handle" json:"handle"`
	DisplayName    string  `db:"display_name" json:"display_name"`
	Network        string  `db:"network" json:"network"`
	Followers      int64   `db:"followers" json:"followers"`
	EngagementRate float64 `db:"engagement_rate" json:"engagement_rate"`
	AirScore       float64 `db:"air_score" json:"air_score"`
	Classification string  `db:"classification" json:"classification"`
	PhotoURL       *string `db:"photo_url" json:"photo_url,omitempty"`
	ProfileID      *string `db:"profile_id" json:"profile_id,omitempty"`
}

type Post struct {
	ID                   uuid.UUID                `db:"id" json:"id"`
	CampaignInfluencerID uuid.UUID                `db:"campaign_influencer_id" json:"campaign_influencer_id"`
	CampaignID           uuid.UUID                `db:"campaign_id" json:"campaign_id"`
	InfluencerID         uuid.UUID                `db:"influencer_id" json:"influencer_id"`
	Format               string                   `db:"format" json:"format"`
	Platform             string                   `db:"platform" json:"platform"`
	PublicationDate      *time.Time               `db:"publication_date" json:"publication_date,omitempty"`
	Permalink            *string                  `db:"permalink" json:"permalink,omitempty"`
	Shortcode            *string                  `db:"shortcode" json:"shortcode,omitempty"`
	Caption              *string                  `db:"caption" json:"caption,omitempty"`
	Thumbnails           JSON[[]string]           `db:"thumbnails" json:"thumbnails"`
	Metrics              JSON[domain.PostMetrics] `db:"metrics" json:"metrics"`
	ScreensCount         int                      `db:"screens_count" json:"screens_count"`
	ExternalID           *string                  `db:"external_id" json:"external_id,omitempty"`
	CreatedAt            time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time                `db:"updated_at" json:"updated_at"`
}

type Comment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	CampaignID   uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	PostURL      string     `db:"post_url" json:"post_url"`
	InfluencerID *uuid.UUID `db:"influencer_id" json:"influencer_id,omitempty"`
	ExternalID   string     `db:"external_id" json:"external_id"`
	Author       string     `db:"author" json:"author"`
	AuthorName   string     `db:"author_name" json:"author_name"`
	Text         string     `db:"text" json:"text"`
	Likes        int64      `db:"likes" json:"likes"`
	Category     string     `db:"category" json:"category"`
	Classified   bool       `db:"classified" json:"classified"`
	CommentedAt  *time.Time `db:"commented_at" json:"commented_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

type Insight struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CampaignID uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Page       string    `db:"page" json:"page"`
	Type       string    `db:"type" json:"type"`
	Title      string    `db:"title" json:"title"`
	Body       string    `db:"body" json:"body"`
	Source     string    `db:"source" json:"source"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type ShareToken struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Token         string         `db:"token" json:"token"`
	CampaignID    uuid.UUID      `db:"campaign_id" json:"campaign_id"`
	TitleOverride *string        `db:"title_override" json:"title_override,omitempty"`
	AllowedPages  JSON[[]string] `db:"allowed_pages" json:"allowed_pages"`
	ExpiresAt     *time.Time     `db:"expires_at" json:"expires_at,omitempty"`
	MaxViews      *int64         `db:"max_views" json:"max_views,omitempty"`
	ViewsCount    int64          `db:"views_count" json:"views_count"`
	CreatedBy     uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

func now() time.Time {
	return time.Now().UTC()
}
