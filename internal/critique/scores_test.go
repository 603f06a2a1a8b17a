package critique

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractScores(t *testing.T) {
	tests := []struct {
		name     string
		feedback string
		want     Scores
	}{
		{
			name:     "no ratings keeps defaults",
			feedback: "A clean resume with good structure.",
			want:     DefaultScores(),
		},
		{
			name: "every category rated",
			feedback: "**Formatting & Structure**: Clean layout. Format: 9/10.\n" +
				"Content quality is decent, Content: 6/10.\n" +
				"Skills: 5 / 10 overall relevance.\n" +
				"Impact is weak, I'd give 4/10.\n" +
				"Overall: 6/10",
			want: Scores{Format: 9, Content: 6, Skills: 5, Impact: 4, Overall: 6},
		},
		{
			name:     "case insensitive and secondary keyword",
			feedback: "LAYOUT is crisp 10/10. The final verdict is 3/10.",
			want:     Scores{Format: 10, Content: 7, Skills: 8, Impact: 7, Overall: 3},
		},
		{
			name:     "rating must be in the same sentence",
			feedback: "Format looks fine. Something else entirely 2/10.",
			want:     DefaultScores(),
		},
		{
			name:     "decimal rating truncates",
			feedback: "Impact 7.5/10",
			want:     Scores{Format: 8, Content: 7, Skills: 8, Impact: 7, Overall: 7},
		},
		{
			name:     "out of hundred is not a rating",
			feedback: "Overall 85/100",
			want:     DefaultScores(),
		},
		{
			name:     "first matching pattern wins",
			feedback: "Technical depth 3/10. Skills 9/10.",
			want:     Scores{Format: 8, Content: 7, Skills: 9, Impact: 7, Overall: 7},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractScores(tt.feedback))
		})
	}
}

func TestScoresMapHasFiveKeysInRange(t *testing.T) {
	for _, s := range []Scores{DefaultScores(), ExtractScores("Format 0/10 Content 10/10"), Fallback("").Scores} {
		m := s.Map()
		assert.Len(t, m, 5)
		for _, key := range []string{CategoryFormat, CategoryContent, CategorySkills, CategoryImpact, CategoryOverall} {
			v, ok := m[key]
			assert.True(t, ok, "missing %s", key)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 10)
		}
	}
}
