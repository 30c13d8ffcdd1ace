package text

import "regexp"

// Placeholder tokens written into the training corpus in place of
// sensitive substrings.
const (
	placeholderEmail  = "[EMAIL]"
	placeholderCPF    = "[CPF]"
	placeholderNumber = "[NUMERO]"
)

var (
	emailPattern     = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)
	cpfDottedPattern = regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`)
	cpfBarePattern   = regexp.MustCompile(`\b\d{11}\b`)
	longNumberPattern = regexp.MustCompile(`\b\d{6,}\b`)
)

// Anonymize redacts emails, CPF numbers and long digit runs before a text is
// persisted into a training corpus. The specific patterns must run before the
// generic long-number rule, otherwise an 11-digit CPF would be swallowed as a
// plain number and the [CPF] placeholder would never fire. Never applied at
// inference time.
func Anonymize(s string) string {
	if s == "" {
		return ""
	}

	s = emailPattern.ReplaceAllString(s, placeholderEmail)
	s = cpfDottedPattern.ReplaceAllString(s, placeholderCPF)
	s = cpfBarePattern.ReplaceAllString(s, placeholderCPF)
	s = longNumberPattern.ReplaceAllString(s, placeholderNumber)
	return s
}
