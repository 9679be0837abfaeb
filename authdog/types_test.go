package authdog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestUserInfoResponse_Unmarshal(t *testing.T) {
	var info UserInfoResponse
	require.NoError(t, json.Unmarshal([]byte(fullUserInfoJSON), &info))

	want := UserInfoResponse{
		Meta:    Meta{Code: 200, Message: "Success"},
		Session: Session{RemainingSeconds: 3600},
		User: User{
			ID:                "user123",
			ExternalID:        "ext123",
			UserName:          "testuser",
			DisplayName:       "Test User",
			NickName:          strPtr("test"),
			ProfileURL:        strPtr("https://example.com/profile"),
			Title:             strPtr("Developer"),
			UserType:          strPtr("employee"),
			PreferredLanguage: strPtr("en"),
			Locale:            "en-US",
			Timezone:          strPtr("UTC"),
			Active:            true,
			Names: Names{
				ID:              "name123",
				Formatted:       strPtr("Test User"),
				FamilyName:      "User",
				GivenName:       "Test",
				MiddleName:      strPtr("Middle"),
				HonorificPrefix: strPtr("Mr."),
				HonorificSuffix: strPtr("Jr."),
			},
			Photos: []Photo{
				{ID: "photo123", Value: "https://example.com/photo.jpg", Type: "profile"},
			},
			PhoneNumbers: []json.RawMessage{},
			Addresses:    []json.RawMessage{},
			Emails: []Email{
				{ID: "email123", Value: "test@example.com", Type: strPtr("work")},
			},
			Verifications: []Verification{
				{
					ID:        "verification123",
					Email:     "test@example.com",
					Verified:  true,
					CreatedAt: "2023-01-01T00:00:00Z",
					UpdatedAt: "2023-01-01T00:00:00Z",
				},
			},
			Provider:      "test",
			CreatedAt:     "2023-01-01T00:00:00Z",
			UpdatedAt:     "2023-01-01T00:00:00Z",
			EnvironmentID: "env123",
		},
	}

	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("UserInfoResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestUserInfoResponse_OptionalFieldsAbsent(t *testing.T) {
	var info UserInfoResponse
	require.NoError(t, json.Unmarshal([]byte(minimalUserInfoJSON), &info))

	u := info.User
	assert.Nil(t, u.NickName)
	assert.Nil(t, u.ProfileURL)
	assert.Nil(t, u.Title)
	assert.Nil(t, u.UserType)
	assert.Nil(t, u.PreferredLanguage)
	assert.Nil(t, u.Timezone)
	assert.Nil(t, u.Names.Formatted)
	assert.Nil(t, u.Names.MiddleName)
	assert.Nil(t, u.Names.HonorificPrefix)
	assert.Nil(t, u.Names.HonorificSuffix)
	assert.Empty(t, u.Photos)
	assert.Equal(t, "user123", u.ID)
}

func TestUserInfoResponse_NullOptionalFields(t *testing.T) {
	body := strings.Replace(minimalUserInfoJSON, `"locale": "en-US",`, `"locale": "en-US", "nickName": null, "timezone": null,`, 1)

	var info UserInfoResponse
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	assert.Nil(t, info.User.NickName)
	assert.Nil(t, info.User.Timezone)
}

func TestUserInfoResponse_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		errPart string
	}{
		{
			name:    "missing user id",
			body:    strings.Replace(minimalUserInfoJSON, `"id": "user123",`, "", 1),
			errPart: `"id"`,
		},
		{
			name:    "null locale",
			body:    strings.Replace(minimalUserInfoJSON, `"locale": "en-US"`, `"locale": null`, 1),
			errPart: `"locale"`,
		},
		{
			name:    "missing given name",
			body:    strings.Replace(minimalUserInfoJSON, `"givenName": "Test"`, `"middleName": "M"`, 1),
			errPart: `"givenName"`,
		},
		{
			name:    "missing session",
			body:    strings.Replace(minimalUserInfoJSON, `"session": {"remainingSeconds": 3600},`, "", 1),
			errPart: `"session"`,
		},
		{
			name:    "missing photos",
			body:    strings.Replace(minimalUserInfoJSON, `"photos": [],`, "", 1),
			errPart: `"photos"`,
		},
		{
			name:    "missing photo type",
			body:    strings.Replace(fullUserInfoJSON, `"type": "profile"`, `"kind": "profile"`, 1),
			errPart: `"type"`,
		},
		{
			name:    "type mismatch",
			body:    strings.Replace(minimalUserInfoJSON, `"active": true`, `"active": "yes"`, 1),
			errPart: "bool",
		},
		{
			name:    "null verification entry",
			body:    strings.Replace(minimalUserInfoJSON, `"verifications": []`, `"verifications": [null]`, 1),
			errPart: "verification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info UserInfoResponse
			err := json.Unmarshal([]byte(tt.body), &info)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestEmail_OptionalType(t *testing.T) {
	var email Email
	require.NoError(t, json.Unmarshal([]byte(`{"id":"e1","value":"a@b.c"}`), &email))
	assert.Nil(t, email.Type)

	out, err := json.Marshal(email)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"e1","value":"a@b.c"}`, string(out))
}

func TestUser_OpaqueFieldsPassThrough(t *testing.T) {
	body := strings.Replace(minimalUserInfoJSON,
		`"phoneNumbers": []`,
		`"phoneNumbers": [{"value":"+15550100","type":"mobile"}, "raw", 42]`, 1)

	var info UserInfoResponse
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	require.Len(t, info.User.PhoneNumbers, 3)
	assert.JSONEq(t, `{"value":"+15550100","type":"mobile"}`, string(info.User.PhoneNumbers[0]))
	assert.Equal(t, `"raw"`, string(info.User.PhoneNumbers[1]))
	assert.Equal(t, `42`, string(info.User.PhoneNumbers[2]))
}

func TestUserInfoResponse_RoundTrip(t *testing.T) {
	var info UserInfoResponse
	require.NoError(t, json.Unmarshal([]byte(minimalUserInfoJSON), &info))

	out, err := json.Marshal(info)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "nickName")
	assert.NotContains(t, string(out), "formatted")

	var again UserInfoResponse
	require.NoError(t, json.Unmarshal(out, &again))
	if diff := cmp.Diff(info, again); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestUserHelpers(t *testing.T) {
	var info UserInfoResponse
	require.NoError(t, json.Unmarshal([]byte(fullUserInfoJSON), &info))

	assert.Equal(t, "test@example.com", info.User.PrimaryEmail())
	assert.True(t, info.User.HasEmail("TEST@example.com"))
	assert.False(t, info.User.HasEmail("other@example.com"))
	assert.True(t, info.User.IsEmailVerified("test@example.com"))
	assert.False(t, info.User.IsEmailVerified("other@example.com"))
	assert.Equal(t, time.Hour, info.Session.ExpiresIn())

	assert.Equal(t, "", (&User{}).PrimaryEmail())
}

func TestNames_FullName(t *testing.T) {
	tests := []struct {
		name     string
		names    Names
		expected string
	}{
		{
			name:     "formatted available",
			names:    Names{Formatted: strPtr("Dr. Ada Lovelace"), GivenName: "Ada", FamilyName: "Lovelace"},
			expected: "Dr. Ada Lovelace",
		},
		{
			name:     "given and family",
			names:    Names{GivenName: "Ada", FamilyName: "Lovelace"},
			expected: "Ada Lovelace",
		},
		{
			name:     "with middle name",
			names:    Names{GivenName: "Ada", MiddleName: strPtr("King"), FamilyName: "Lovelace"},
			expected: "Ada King Lovelace",
		},
		{
			name:     "empty formatted falls back",
			names:    Names{Formatted: strPtr(""), GivenName: "Ada"},
			expected: "Ada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.names.FullName())
		})
	}
}
