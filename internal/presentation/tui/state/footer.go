package state

import (
	"fmt"
	"strings"
)

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading []string, helpText string) string {
	if session != ListView || len(loading) == 0 {
		return helpText
	}
	status := fmt.Sprintf("Fetching jokes: %s", strings.Join(loading, ", "))
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
