package marketsdk

import "time"

// ErrorResponse is the standard error body every endpoint returns on
// failure.
type ErrorResponse struct {
	// Error is the stable error code (e.g. "invalid_request", "conflict")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`

	// Role is optional and defaults to "client".
	Role string `json:"role,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned from register and login.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        User   `json:"user"`
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================================
// KOL Types
// ============================================================================

// KOL is the influencer profile wire representation. The social access
// token is deliberately absent; it never leaves the server.
type KOL struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Email                 string     `json:"email"`
	Category              string     `json:"category"`
	Platform              string     `json:"platform"`
	Followers             int64      `json:"followers"`
	EngagementRate        float64    `json:"engagement_rate"`
	Bio                   string     `json:"bio"`
	ProfileImage          string     `json:"profile_image"`
	PricePerPost          float64    `json:"price_per_post"`
	Verified              bool       `json:"verified"`
	InstagramUserID       *string    `json:"instagram_user_id,omitempty"`
	InstagramUsername     *string    `json:"instagram_username,omitempty"`
	ConsentGiven          bool       `json:"consent_given"`
	ConsentGivenAt        *time.Time `json:"consent_given_at,omitempty"`
	RegistrationCompleted bool       `json:"registration_completed"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// KOLRequest carries profile fields for create and partial update. Absent
// fields keep their current values on update.
type KOLRequest struct {
	Name           *string  `json:"name,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Category       *string  `json:"category,omitempty"`
	Platform       *string  `json:"platform,omitempty"`
	Followers      *int64   `json:"followers,omitempty"`
	EngagementRate *float64 `json:"engagement_rate,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	ProfileImage   *string  `json:"profile_image,omitempty"`
	PricePerPost   *float64 `json:"price_per_post,omitempty"`
	Verified       *bool    `json:"verified,omitempty"`
}

// KOLListFilter narrows GET /v1/kols. Zero values mean "no constraint".
type KOLListFilter struct {
	Category     string
	Platform     string
	MinFollowers int64
	MaxPrice     float64
}

// ============================================================================
// Campaign Types
// ============================================================================

type Campaign struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Budget      float64    `json:"budget"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      string     `json:"status"`
	KOLID       *string    `json:"kol_id,omitempty"`
	UserID      string     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CampaignRequest carries campaign fields for create and partial update.
type CampaignRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
	KOLID       *string    `json:"kol_id,omitempty"`
}

// ============================================================================
// Invite Types
// ============================================================================

type Invite struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	InvitedBy string     `json:"invited_by"`
	Status    string     `json:"status"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	KOLID     *string    `json:"kol_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreateInviteRequest struct {
	Email string `json:"email"`
}

// CreateInviteResponse carries the raw invite token. This is the only
// place the token ever appears; the server keeps just a fingerprint.
type CreateInviteResponse struct {
	Invite      Invite `json:"invite"`
	InviteToken string `json:"invite_token"`

	// EmailSent is advisory: the invite is live even when delivery failed.
	EmailSent bool `json:"email_sent"`
}

// VerifyInviteResponse reports whether a token is still redeemable.
type VerifyInviteResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
	Error string `json:"error,omitempty"`
}

// InstagramData is the social identity payload posted on completion.
type InstagramData struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	Followers    int64  `json:"followers"`
	ProfileImage string `json:"profile_image,omitempty"`
	Bio          string `json:"bio,omitempty"`
}

type CompleteRegistrationRequest struct {
	Token         string         `json:"token"`
	ConsentGiven  bool           `json:"consent_given"`
	InstagramData *InstagramData `json:"instagram_data,omitempty"`
}

// ============================================================================
// Instagram Types
// ============================================================================

type InstagramAuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

type ExchangeTokenRequest struct {
	Code string `json:"code"`
}

// ExchangeTokenResponse bundles the exchanged token with the basic
// profile fields fetched right after the exchange.
type ExchangeTokenResponse struct {
	AccessToken   string `json:"access_token"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	AccountType   string `json:"account_type,omitempty"`
	MediaCount    int64  `json:"media_count"`
	FollowerCount int64  `json:"follower_count"`
}

// ============================================================================
// Misc Types
// ============================================================================

type StatsResponse struct {
	TotalKOLs       int `json:"total_kols"`
	TotalCampaigns  int `json:"total_campaigns"`
	ActiveCampaigns int `json:"active_campaigns"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
