package critique

import (
	"regexp"
	"strconv"
)

// Score category names as they appear in responses.
const (
	CategoryFormat  = "Format"
	CategoryContent = "Content"
	CategorySkills  = "Skills"
	CategoryImpact  = "Impact"
	CategoryOverall = "Overall"
)

// Scores holds the five fixed categories, each in [0,10].
type Scores struct {
	Format  int `json:"Format"`
	Content int `json:"Content"`
	Skills  int `json:"Skills"`
	Impact  int `json:"Impact"`
	Overall int `json:"Overall"`
}

// DefaultScores are kept for categories the feedback does not rate.
func DefaultScores() Scores {
	return Scores{Format: 8, Content: 7, Skills: 8, Impact: 7, Overall: 7}
}

// Map returns the scores keyed by category name.
func (s Scores) Map() map[string]int {
	return map[string]int{
		CategoryFormat:  s.Format,
		CategoryContent: s.Content,
		CategorySkills:  s.Skills,
		CategoryImpact:  s.Impact,
		CategoryOverall: s.Overall,
	}
}

type scoreRule struct {
	field    func(*Scores) *int
	patterns []*regexp.Regexp
}

// Order matters: the first pattern that yields a valid score wins.
var scoreRules = []scoreRule{
	{field: func(s *Scores) *int { return &s.Format }, patterns: scorePatterns("format", "structure", "layout")},
	{field: func(s *Scores) *int { return &s.Content }, patterns: scorePatterns("content", "quality")},
	{field: func(s *Scores) *int { return &s.Skills }, patterns: scorePatterns("skills", "technical")},
	{field: func(s *Scores) *int { return &s.Impact }, patterns: scorePatterns("impact", "achievement")},
	{field: func(s *Scores) *int { return &s.Overall }, patterns: scorePatterns("overall", "total", "final")},
}

// scorePatterns matches a keyword followed in the same sentence by "N/10".
// A decimal rating such as 7.5/10 counts as its integer part.
func scorePatterns(keywords ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, regexp.MustCompile(`(?i)\b`+kw+`[^.!?\n]*?\b(\d{1,2})(?:\.\d+)?\s*/\s*10\b`))
	}
	return out
}

// ExtractScores reads "N/10" ratings out of free-text feedback. Best effort:
// categories without a usable rating keep DefaultScores.
func ExtractScores(feedback string) Scores {
	scores := DefaultScores()
	for _, rule := range scoreRules {
		for _, re := range rule.patterns {
			m := re.FindStringSubmatch(feedback)
			if m == nil {
				continue
			}
			v, err := strconv.Atoi(m[1])
			if err != nil || v < 0 || v > 10 {
				continue
			}
			*rule.field(&scores) = v
			break
		}
	}
	return scores
}
