package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/authdog/authdog-go/authdog"
)

// Output formats
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// resolveOutputFormat picks the requested format, defaulting to a table when
// out is a terminal and JSON otherwise
func resolveOutputFormat(requested string, out io.Writer) (string, error) {
	switch requested {
	case FormatJSON, FormatTable:
		return requested, nil
	case "":
		if f, ok := out.(*os.File); ok && isTerminal(f) {
			return FormatTable, nil
		}
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be 'json' or 'table')", requested)
	}
}

func writeResults(out io.Writer, format string, results []*authdog.UserInfoResponse) error {
	if format == FormatTable {
		return writeTable(out, results)
	}
	return writeJSON(out, results)
}

// writeJSON writes a single response as an object and several as an array
func writeJSON(out io.Writer, results []*authdog.UserInfoResponse) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	var v any = results
	if len(results) == 1 {
		v = results[0]
	}
	if results == nil {
		v = []*authdog.UserInfoResponse{}
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

func writeTable(out io.Writer, results []*authdog.UserInfoResponse) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(out, "No user info found.")
		return err
	}

	data := pterm.TableData{
		{"ID", "User Name", "Display Name", "Email", "Verified", "Active", "Provider", "Expires In"},
	}
	for _, r := range results {
		email := r.User.PrimaryEmail()
		data = append(data, []string{
			r.User.ID,
			r.User.UserName,
			r.User.DisplayName,
			email,
			strconv.FormatBool(email != "" && r.User.IsEmailVerified(email)),
			strconv.FormatBool(r.User.Active),
			r.User.Provider,
			r.Session.ExpiresIn().String(),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(out, table)
	return err
}
