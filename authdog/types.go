package authdog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// UserInfoResponse represents the response from the /v1/userinfo endpoint
type UserInfoResponse struct {
	Meta    Meta    `json:"meta"`
	Session Session `json:"session"`
	User    User    `json:"user"`
}

func (r *UserInfoResponse) UnmarshalJSON(data []byte) error {
	type alias UserInfoResponse
	if err := requireFields(data, "meta", "session", "user"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*alias)(r))
}

// Meta echoes the provider's own status, independent of the HTTP status code
type Meta struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (m *Meta) UnmarshalJSON(data []byte) error {
	type alias Meta
	if err := requireFields(data, "code", "message"); err != nil {
		return fmt.Errorf("meta: %w", err)
	}
	return json.Unmarshal(data, (*alias)(m))
}

// Session holds the remaining lifetime of the token's session
type Session struct {
	RemainingSeconds int `json:"remainingSeconds"`
}

func (s *Session) UnmarshalJSON(data []byte) error {
	type alias Session
	if err := requireFields(data, "remainingSeconds"); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return json.Unmarshal(data, (*alias)(s))
}

// ExpiresIn returns the remaining session lifetime as a duration
func (s Session) ExpiresIn() time.Duration {
	return time.Duration(s.RemainingSeconds) * time.Second
}

// User is the identity and profile record of the token's owner.
// Optional fields are nil when the provider omits them.
type User struct {
	ID                string            `json:"id"`
	ExternalID        string            `json:"externalId"`
	UserName          string            `json:"userName"`
	DisplayName       string            `json:"displayName"`
	NickName          *string           `json:"nickName,omitempty"`
	ProfileURL        *string           `json:"profileUrl,omitempty"`
	Title             *string           `json:"title,omitempty"`
	UserType          *string           `json:"userType,omitempty"`
	PreferredLanguage *string           `json:"preferredLanguage,omitempty"`
	Locale            string            `json:"locale"`
	Timezone          *string           `json:"timezone,omitempty"`
	Active            bool              `json:"active"`
	Names             Names             `json:"names"`
	Photos            []Photo           `json:"photos"`
	PhoneNumbers      []json.RawMessage `json:"phoneNumbers"` // schema not modeled
	Addresses         []json.RawMessage `json:"addresses"`    // schema not modeled
	Emails            []Email           `json:"emails"`
	Verifications     []Verification    `json:"verifications"`
	Provider          string            `json:"provider"`
	CreatedAt         string            `json:"createdAt"`
	UpdatedAt         string            `json:"updatedAt"`
	EnvironmentID     string            `json:"environmentId"`
}

var userRequiredFields = []string{
	"id", "externalId", "userName", "displayName", "locale", "active",
	"names", "photos", "phoneNumbers", "addresses", "emails", "verifications",
	"provider", "createdAt", "updatedAt", "environmentId",
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	if err := requireFields(data, userRequiredFields...); err != nil {
		return fmt.Errorf("user: %w", err)
	}
	return json.Unmarshal(data, (*alias)(u))
}

// PrimaryEmail returns the first email address of the user, or "" if there is none
func (u *User) PrimaryEmail() string {
	if len(u.Emails) == 0 {
		return ""
	}
	return u.Emails[0].Value
}

// HasEmail checks if the user owns the given address (case-insensitive)
func (u *User) HasEmail(address string) bool {
	for _, e := range u.Emails {
		if strings.EqualFold(e.Value, address) {
			return true
		}
	}
	return false
}

// IsEmailVerified checks if any verification for the address is marked verified
func (u *User) IsEmailVerified(address string) bool {
	for _, v := range u.Verifications {
		if v.Verified && strings.EqualFold(v.Email, address) {
			return true
		}
	}
	return false
}

// Names holds the structured parts of the user's name
type Names struct {
	ID              string  `json:"id"`
	Formatted       *string `json:"formatted,omitempty"`
	FamilyName      string  `json:"familyName"`
	GivenName       string  `json:"givenName"`
	MiddleName      *string `json:"middleName,omitempty"`
	HonorificPrefix *string `json:"honorificPrefix,omitempty"`
	HonorificSuffix *string `json:"honorificSuffix,omitempty"`
}

func (n *Names) UnmarshalJSON(data []byte) error {
	type alias Names
	if err := requireFields(data, "id", "familyName", "givenName"); err != nil {
		return fmt.Errorf("names: %w", err)
	}
	return json.Unmarshal(data, (*alias)(n))
}

// FullName returns the provider formatted name, falling back to the given,
// middle and family names joined by spaces
func (n *Names) FullName() string {
	if n.Formatted != nil && *n.Formatted != "" {
		return *n.Formatted
	}
	parts := make([]string, 0, 3)
	if n.GivenName != "" {
		parts = append(parts, n.GivenName)
	}
	if n.MiddleName != nil && *n.MiddleName != "" {
		parts = append(parts, *n.MiddleName)
	}
	if n.FamilyName != "" {
		parts = append(parts, n.FamilyName)
	}
	return strings.Join(parts, " ")
}

// Photo is a user photo
type Photo struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

func (p *Photo) UnmarshalJSON(data []byte) error {
	type alias Photo
	if err := requireFields(data, "id", "value", "type"); err != nil {
		return fmt.Errorf("photo: %w", err)
	}
	return json.Unmarshal(data, (*alias)(p))
}

// Email is an email address of the user
type Email struct {
	ID    string  `json:"id"`
	Value string  `json:"value"`
	Type  *string `json:"type,omitempty"`
}

func (e *Email) UnmarshalJSON(data []byte) error {
	type alias Email
	if err := requireFields(data, "id", "value"); err != nil {
		return fmt.Errorf("email: %w", err)
	}
	return json.Unmarshal(data, (*alias)(e))
}

// Verification is the verification state of one email address
type Verification struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (v *Verification) UnmarshalJSON(data []byte) error {
	type alias Verification
	if err := requireFields(data, "id", "email", "verified", "createdAt", "updatedAt"); err != nil {
		return fmt.Errorf("verification: %w", err)
	}
	return json.Unmarshal(data, (*alias)(v))
}

// ErrorResponse is the provider's error body, consulted on HTTP 500
type ErrorResponse struct {
	Error string `json:"error"`
}

func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	type alias ErrorResponse
	if err := requireFields(data, "error"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*alias)(e))
}

// requireFields fails if data is not a JSON object or any of keys is missing
// or null. Type checking is left to encoding/json.
func requireFields(data []byte, keys ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("expected object, got null")
	}
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return fmt.Errorf("missing required field %q", key)
		}
	}
	return nil
}
