// Package safety screens generated persona replies before they are
// accepted. Rejection rules live in an explicit table so the set can be
// extended and audited without touching the generation pipeline.
package safety

import "regexp"

type Rule struct {
	// Reason is a short machine-readable tag for logs.
	Reason  string
	pattern *regexp.Regexp
}

func (r Rule) Matches(text string) bool {
	return r.pattern.MatchString(text)
}

// DefaultRules rejects anything that would break the persona illusion or
// leak a contact channel: self-disclosure as an AI, phone-number-shaped
// digit runs, named external platforms, and explicit sexual terms.
var DefaultRules = []Rule{
	{Reason: "ai_disclosure", pattern: regexp.MustCompile(`(?i)\b(ai|bot|assistant|model|trained)\b`)},
	{Reason: "phone_number", pattern: regexp.MustCompile(`\b\d{10,}\b`)},
	{Reason: "external_platform", pattern: regexp.MustCompile(`(?i)instagram|insta|snapchat|whatsapp`)},
	{Reason: "explicit", pattern: regexp.MustCompile(`(?i)\b(nude|sex|fuck|boobs|ass|dick|horny)\b`)},
}

type Filter struct {
	rules []Rule
}

func NewFilter(rules []Rule) *Filter {
	return &Filter{rules: rules}
}

// Evaluate returns the reason of the first matching rule. Empty text is
// rejected outright; there is nothing safe to show.
func (f *Filter) Evaluate(text string) (reason string, rejected bool) {
	if text == "" {
		return "empty", true
	}
	for _, r := range f.rules {
		if r.Matches(text) {
			return r.Reason, true
		}
	}
	return "", false
}
