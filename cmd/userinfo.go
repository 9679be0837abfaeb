package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/authdog/authdog-go/authdog"
	"github.com/authdog/authdog-go/filter"
)

// AccessTokenEnv is read when no token is given on the command line
const AccessTokenEnv = "AUTHDOG_ACCESS_TOKEN"

var (
	whereExpr    string
	outputFormat string
	concurrency  int
)

// userinfoCmd represents the userinfo command
var userinfoCmd = &cobra.Command{
	Use:   "userinfo [token...]",
	Short: "Resolve access tokens into user info",
	Long: `Look up the user profile and session behind one or more access tokens.

Tokens are taken from the arguments, or from $AUTHDOG_ACCESS_TOKEN when no
argument is given. Use --where to keep only results matching an expression,
for example:

  authdog userinfo --where 'user.active && !expiresWithin(300)' "$TOKEN"`,
	PreRunE: initializeApp,
	RunE:    runUserInfo,
}

func init() {
	rootCmd.AddCommand(userinfoCmd)

	userinfoCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression")
	userinfoCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format: json or table (default table on a terminal, json otherwise)")
	userinfoCmd.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "maximum parallel lookups (default from config)")
}

func runUserInfo(cmd *cobra.Command, args []string) error {
	tokens, err := resolveTokens(args)
	if err != nil {
		return err
	}

	format, err := resolveOutputFormat(outputFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var f *filter.Filter
	if whereExpr != "" {
		f, err = filter.Compile(whereExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	limit := cfg.Lookup.Concurrency
	if concurrency > 0 {
		limit = concurrency
	}

	logger.Info().Int("tokens", len(tokens)).Int("concurrency", limit).Msg("Looking up user info")

	api := &loggingAPI{next: client, logger: logger}
	results := authdog.FetchAll(cmd.Context(), api, tokens, limit)

	var (
		found  []*authdog.UserInfoResponse
		failed int
	)
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Error().Err(r.Err).Int("index", r.Index).Str("token", maskToken(r.Token)).
				Str("kind", errorKind(r.Err)).Msg("Lookup failed")
			continue
		}
		found = append(found, r.Info)
	}

	if f != nil {
		var errs []error
		found, errs = f.Select(found)
		for _, err := range errs {
			logger.Warn().Err(err).Msg("Filter evaluation failed")
		}
		logger.Debug().Str("filter", f.Expression()).Int("matched", len(found)).Msg("Applied filter")
	}

	if err := writeResults(cmd.OutOrStdout(), format, found); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(tokens))
	}
	return nil
}

// resolveTokens returns the tokens to look up, in order
func resolveTokens(args []string) ([]string, error) {
	var tokens []string
	for _, a := range args {
		if a != "" {
			tokens = append(tokens, a)
		}
	}
	if len(tokens) == 0 {
		if token := os.Getenv(AccessTokenEnv); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no access token given: pass it as an argument or set %s", AccessTokenEnv)
	}
	return tokens, nil
}

// maskToken keeps the first characters of a token for log correlation
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "****"
}

func errorKind(err error) string {
	switch {
	case authdog.IsAuthenticationError(err):
		return authdog.KindAuthentication.String()
	case authdog.IsAPIError(err):
		return authdog.KindAPI.String()
	default:
		return authdog.KindAuthdog.String()
	}
}

// loggingAPI tags every lookup with an id and logs its outcome
type loggingAPI struct {
	next   authdog.UserInfoAPI
	logger zerolog.Logger
}

func (l *loggingAPI) GetUserInfo(ctx context.Context, accessToken string) (*authdog.UserInfoResponse, error) {
	lookupID := uuid.New().String()
	start := time.Now()

	info, err := l.next.GetUserInfo(ctx, accessToken)

	event := l.logger.Debug().
		Str("lookup_id", lookupID).
		Str("token", maskToken(accessToken)).
		Dur("elapsed", time.Since(start))
	if err != nil {
		event = event.Err(err)
	} else {
		event = event.Str("user_id", info.User.ID)
	}
	event.Msg("Lookup finished")

	return info, err
}
