package combine

import "regexp"

// redactionRule replaces the payload between a kept prefix and suffix.
type redactionRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order over the whole text. Each is dot-all and non-greedy so
// independent occurrences are redacted separately.
var redactionRules = []redactionRule{
	{
		// DATA = b"""...""" byte-literal assignments.
		pattern:     regexp.MustCompile(`(?s)(DATA = b""")[^"]*?(""")`),
		replacement: `${1}` + RedactedPlaceholder + `${2}`,
	},
	{
		pattern:     regexp.MustCompile(`(?s)(b85decode\().*?(\))`),
		replacement: `${1}"` + RedactedPlaceholder + `"${2}`,
	},
	{
		// base64.b64decode(, base64.urlsafe_b64decode( and other *decode( calls.
		pattern:     regexp.MustCompile(`(?s)(base64\.[^(]*decode\().*?(\))`),
		replacement: `${1}"` + RedactedPlaceholder + `"${2}`,
	},
}

// Redact replaces embedded binary literals in text with a placeholder while
// keeping the surrounding syntax. It is idempotent.
func Redact(text string) string {
	for _, rule := range redactionRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}
