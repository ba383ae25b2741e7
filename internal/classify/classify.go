// Package classify tags news item titles with signal categories using an
// ordered table of keyword rules.
package classify

import "strings"

// Fallback is the tag applied when no rule matches, so every signal carries
// at least one tag.
const Fallback = "other"

// Rule maps a tag to the substrings that trigger it. Rules are independent:
// every rule whose triggers appear in the title fires, so tags are not
// mutually exclusive.
type Rule struct {
	Tag      string   `yaml:"tag" json:"tag"`
	Triggers []string `yaml:"triggers" json:"triggers"`
}

// DefaultRules returns the built-in rule table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Tag: "earnings", Triggers: []string{"earnings", "results", "guidance"}},
		{Tag: "partnership", Triggers: []string{"partnership", "alliance", "deal", "joint venture", "jv"}},
		{Tag: "pricing", Triggers: []string{"price", "pricing"}},
		{Tag: "labor", Triggers: []string{"strike", "union", "walkout", "labor"}},
		{Tag: "outage", Triggers: []string{"outage", "incident", "breach", "downtime"}},
		{Tag: "regulatory", Triggers: []string{"fine", "antitrust", "investigation", "regulator"}},
		{Tag: "exec", Triggers: []string{"ceo", "cfo", "exec", "appointment", "resigns"}},
		{Tag: "esg", Triggers: []string{"esg", "sustainability", "saf", "emissions"}},
		{Tag: "m&a", Triggers: []string{"acquisition", "merger", "m&a"}},
	}
}

// Classify returns the tags for a title. The title is lowercased once, then
// each rule fires if any of its triggers appears anywhere in it. A title
// matching nothing gets the fallback tag.
func Classify(title string, rules []Rule) []string {
	t := strings.ToLower(title)

	var tags []string
	for _, r := range rules {
		for _, trigger := range r.Triggers {
			if strings.Contains(t, trigger) {
				tags = append(tags, r.Tag)
				break
			}
		}
	}

	if len(tags) == 0 {
		return []string{Fallback}
	}
	return tags
}
