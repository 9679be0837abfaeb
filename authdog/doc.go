// Package authdog provides a client for the Authdog identity provider's
// userinfo endpoint.
//
// Given a bearer access token, the client issues a single GET to
// {BaseURL}/v1/userinfo and decodes the JSON body into UserInfoResponse.
//
// # Usage
//
//	client, err := authdog.NewClient(authdog.ClientConfig{
//		BaseURL: "https://api.authdog.com",
//		Timeout: 10 * time.Second,
//	}, authdog.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	info, err := client.GetUserInfo(ctx, accessToken)
//	if authdog.IsAuthenticationError(err) {
//		// token rejected
//	}
//
// # API keys
//
// When ClientConfig.APIKey is set, the Authorization header carries the API
// key and the access token passed to GetUserInfo is not sent.
//
// # Error Handling
//
// Every failure is an *Error with one of three kinds:
//
//   - KindAuthdog: transport, body-read and decode failures
//   - KindAuthentication: HTTP 401
//   - KindAPI: HTTP 500 and any other non-200 status
//
// Errors carry a message only. Use errors.Is with ErrAuthentication or
// ErrAPI, or the Is* helpers, to classify them, and (*Error).Base to treat
// any of them as a plain AuthdogError.
package authdog
