package authdog

import (
	"context"
)

// UserInfoAPI defines the interface for Authdog userinfo lookups
type UserInfoAPI interface {
	// GetUserInfo retrieves the profile and session behind an access token
	GetUserInfo(ctx context.Context, accessToken string) (*UserInfoResponse, error)
}
