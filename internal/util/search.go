package util

import (
	"regexp"
	"strings"

	"github.com/akyairhashvil/custimer/internal/models"
)

// SearchQuery represents the parsed components of a timer filter string,
// e.g. "status:running tpl:consult smith".
type SearchQuery struct {
	Status   []string
	Template []string
	Text     []string
}

var (
	statusRegex   = regexp.MustCompile(`status:(\w+)`)
	templateRegex = regexp.MustCompile(`tpl:(\S+)`)
)

// ParseSearchQuery breaks down a raw query string into its structured components.
func ParseSearchQuery(query string) SearchQuery {
	sq := SearchQuery{}

	extract := func(re *regexp.Regexp) []string {
		matches := re.FindAllStringSubmatch(query, -1)
		if matches == nil {
			return nil
		}
		var values []string
		for _, match := range matches {
			if len(match) > 1 {
				values = append(values, strings.ToLower(match[1]))
			}
		}
		query = re.ReplaceAllString(query, "")
		return values
	}

	sq.Status = extract(statusRegex)
	sq.Template = extract(templateRegex)
	for _, word := range strings.Fields(query) {
		sq.Text = append(sq.Text, strings.ToLower(word))
	}
	return sq
}

// Empty reports whether the query filters nothing.
func (q SearchQuery) Empty() bool {
	return len(q.Status) == 0 && len(q.Template) == 0 && len(q.Text) == 0
}

// Matches reports whether the timer passes the filter. Status terms are
// alternatives; template and text terms must all be substrings.
func (q SearchQuery) Matches(t models.Timer, templateName string) bool {
	if len(q.Status) > 0 {
		found := false
		for _, s := range q.Status {
			if s == string(t.Status) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	tpl := strings.ToLower(templateName)
	for _, term := range q.Template {
		if !strings.Contains(tpl, term) {
			return false
		}
	}
	customer := strings.ToLower(t.CustomerName)
	for _, term := range q.Text {
		if !strings.Contains(customer, term) && !strings.Contains(tpl, term) {
			return false
		}
	}
	return true
}
