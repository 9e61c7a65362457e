package exam

import (
	"strconv"
	"strings"
)

// SubjectRule maps exam title keywords to an inventory tag. A rule matches when
// the lower-cased title contains any keyword and none of the excludes.
type SubjectRule struct {
	Tag      string
	Keywords []string
	Excludes []string
}

// DefaultSubjectRules is evaluated in order; the first match wins.
var DefaultSubjectRules = []SubjectRule{
	{Tag: "python", Keywords: []string{"python"}},
	{Tag: "php", Keywords: []string{"php"}},
	{Tag: "nodejs", Keywords: []string{"node", "nodejs"}},
	{Tag: "javascript", Keywords: []string{"javascript", "js"}},
	{Tag: "java", Keywords: []string{"java"}, Excludes: []string{"javascript"}},
	{Tag: "sql", Keywords: []string{"sql", "database"}},
	{Tag: "dsa", Keywords: []string{"c++", "dsa", "data structures"}},
}

// SubjectDetector derives a tag filter from an exam title.
type SubjectDetector struct {
	rules []SubjectRule
}

// NewSubjectDetector uses DefaultSubjectRules when rules is empty.
func NewSubjectDetector(rules []SubjectRule) *SubjectDetector {
	if len(rules) == 0 {
		rules = DefaultSubjectRules
	}
	return &SubjectDetector{rules: rules}
}

// Detect returns the tag for title, or "" when no rule matches.
func (d *SubjectDetector) Detect(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range d.rules {
		if rule.matches(lower) {
			return rule.Tag
		}
	}
	return ""
}

func (r SubjectRule) matches(title string) bool {
	for _, ex := range r.Excludes {
		if strings.Contains(title, ex) {
			return false
		}
	}
	for _, kw := range r.Keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// Remediation returns operator guidance for a selection that failed under tag.
func Remediation(examName, tag string, examID int64) []string {
	if tag == "" {
		return nil
	}
	return []string{
		"Import a question set containing " + strings.ToUpper(tag) + " questions first",
		"The exam \"" + examName + "\" requires " + tag + "-specific questions",
		"Currently no usable " + tag + " questions exist for its total marks",
		"After importing, re-run the assignment for exam " + strconv.FormatInt(examID, 10),
	}
}
