package filter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/authdog/authdog-go/authdog"
)

// Filter is a compiled boolean expression over a userinfo response.
// It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
//
// The expression sees the response in its wire form (meta, session and
// user with camelCase fields) plus the helper functions, for example:
//
//	user.active && session.remainingSeconds > 300 && emailVerified(user.emails[0].value)
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Compile against the helpers only; response fields are resolved at run time
	program, err := expr.Compile(expression,
		expr.Env(staticEnvironment()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(expression string) *Filter {
	f, err := Compile(expression)
	if err != nil {
		panic(err)
	}
	return f
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a response
func (f *Filter) Match(info *authdog.UserInfoResponse) (bool, error) {
	if info == nil {
		return false, &EvaluationError{Expression: f.expression, Err: fmt.Errorf("nil response")}
	}

	env, err := runtimeEnvironment(info)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, UserID: info.User.ID, Err: err}
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, UserID: info.User.ID, Err: err}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			UserID:     info.User.ID,
			Err:        fmt.Errorf("expected bool, got %T", result),
		}
	}
	return matched, nil
}

// Select returns the responses that match the filter, in order. Responses
// that fail to evaluate are skipped and reported in the returned error slice.
func (f *Filter) Select(infos []*authdog.UserInfoResponse) ([]*authdog.UserInfoResponse, []error) {
	var (
		matched []*authdog.UserInfoResponse
		errs    []error
	)
	for _, info := range infos {
		ok, err := f.Match(info)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			matched = append(matched, info)
		}
	}
	return matched, errs
}

// runtimeEnvironment builds the evaluation environment for one response
func runtimeEnvironment(info *authdog.UserInfoResponse) (map[string]any, error) {
	data, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}

	env := make(map[string]any, 16)
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to build environment: %w", err)
	}

	addHelperFunctions(env)
	addUserFunctions(env, info)
	return env, nil
}
