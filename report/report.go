package report

import (
	"fmt"
	"strings"
)

// Banners opening a result report.
const (
	BannerSucceeded = "*** SUCCEEDED ***"
	BannerFailed    = "* FAILED *"
	BannerDryRun    = "** DRYRUN **"
)

// notAvailable stands in for an empty report section.
const notAvailable = "- (N/A)"

// FormatErrorMessage builds a multi-line message describing what went wrong and what to do about it.
func FormatErrorMessage(situation string, expected, got any, advice, reaction string) string {
	return fmt.Sprintf("%s:\n- Expected: %v\n- Got: %v\n- Advice: %s\n- Reaction: %s",
		situation, expected, got, advice, reaction)
}

// ShowResults renders the summary printed when a task finishes.
// The advice section is titled "Next" on success and "Advice" otherwise.
func ShowResults(succeeded bool, detail, advice string, dryRun bool) string {
	banner := BannerFailed
	adviceTitle := "Advice"

	if succeeded {
		banner = BannerSucceeded
		adviceTitle = "Next"
	}

	if dryRun {
		banner = BannerDryRun
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("\n\n")
	writeSection(&b, "Detail", detail)
	b.WriteString("\n\n")
	writeSection(&b, adviceTitle, advice)

	return b.String()
}

func writeSection(b *strings.Builder, title, body string) {
	b.WriteString(title)
	b.WriteString(":\n")
	b.WriteString(orNotAvailable(body))
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}

	return s
}
