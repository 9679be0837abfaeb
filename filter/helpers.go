package filter

import (
	"strings"

	"github.com/authdog/authdog-go/authdog"
)

// staticEnvironment is the compile-time environment. User bound helpers get
// placeholders with the same signatures so calls type-check.
func staticEnvironment() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	addUserFunctions(env, &authdog.UserInfoResponse{})
	return env
}

// addHelperFunctions adds case-insensitive string helpers. contains,
// startsWith and endsWith are expr operators, hence the Fold suffix.
func addHelperFunctions(env map[string]any) {
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["prefixFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["suffixFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
}

// addUserFunctions adds helpers bound to one response
func addUserFunctions(env map[string]any, info *authdog.UserInfoResponse) {
	env["hasEmail"] = func(address string) bool {
		return info.User.HasEmail(address)
	}
	env["emailVerified"] = func(address string) bool {
		return info.User.IsEmailVerified(address)
	}
	env["primaryEmail"] = func() string {
		return info.User.PrimaryEmail()
	}
	env["fullName"] = func() string {
		return info.User.Names.FullName()
	}
	env["expiresWithin"] = func(seconds int) bool {
		return info.Session.RemainingSeconds <= seconds
	}
}
