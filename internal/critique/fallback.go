package critique

import (
	"fmt"
	"regexp"
	"strings"
)

// ReportHeading opens every heuristic report.
const ReportHeading = "**Resume Analysis Report**"

var (
	contactKeywords     = []string{"email", "phone", "@", "linkedin"}
	experienceKeywords  = []string{"experience", "work", "job", "position"}
	educationKeywords   = []string{"education", "degree", "university", "college"}
	skillsKeywords      = []string{"skills", "programming", "software", "technical"}
	impactKeywords      = []string{"achieved", "improved", "increased", "developed"}
	actionWordsKeywords = []string{"achieved", "improved", "increased"}

	// Technology names only count as whole words, so "laws" is not "aws".
	technologyNames = wordMatcher("python", "java", "javascript", "typescript", "react", "node", "node.js", "sql", "golang", "docker", "kubernetes", "aws", "excel")
)

func wordMatcher(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?:^|[^a-z0-9+#.])(?:` + strings.Join(quoted, "|") + `)(?:$|[^a-z0-9+#])`)
}

// Fallback builds a deterministic analysis from keyword presence and word
// count. It never fails and never touches the network.
func Fallback(text string) Result {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	longEnough := wordCount > 200
	hasContact := containsAny(lower, contactKeywords)
	hasExperience := containsAny(lower, experienceKeywords)
	hasEducation := containsAny(lower, educationKeywords)
	hasSkills := containsAny(lower, skillsKeywords) || technologyNames.MatchString(lower)
	hasImpact := containsAny(lower, impactKeywords)
	hasActionWords := containsAny(lower, actionWordsKeywords)

	scores := Scores{
		Format:  pick(longEnough, 8, 6),
		Content: pick(hasExperience && hasEducation, 8, 6),
		Skills:  pick(hasSkills, 8, 5),
		Impact:  pick(hasImpact, 7, 5),
		Overall: 7,
	}

	var b strings.Builder
	b.WriteString(ReportHeading + "\n\n")
	b.WriteString("**Strengths:**\n")
	fmt.Fprintf(&b, "- Resume contains %d words, which is %s\n", wordCount, choose(longEnough, "adequate", "could be expanded"))
	fmt.Fprintf(&b, "- %s\n", choose(hasContact, "Contact information is present", "Consider adding complete contact information"))
	fmt.Fprintf(&b, "- %s\n", choose(hasExperience, "Work experience section is included", "Work experience needs to be added"))
	fmt.Fprintf(&b, "- %s\n", choose(hasEducation, "Education background is mentioned", "Education section should be included"))
	b.WriteString("\n**Areas for Improvement:**\n")
	fmt.Fprintf(&b, "- %s\n", choose(hasSkills, "Skills section looks good", "Add a dedicated skills section with relevant technical and soft skills"))
	fmt.Fprintf(&b, "- %s\n", choose(hasActionWords, "Good use of action words and achievements", "Include more quantifiable achievements and action words"))
	b.WriteString("- Consider using bullet points for better readability\n")
	b.WriteString("- Ensure consistent formatting throughout the document\n")
	b.WriteString("\n**Recommendations:**\n")
	b.WriteString("1. Use action verbs to start bullet points (e.g., \"Developed\", \"Managed\", \"Achieved\")\n")
	b.WriteString("2. Include quantifiable results where possible (e.g., \"Increased sales by 25%\")\n")
	b.WriteString("3. Tailor your resume to match the job description\n")
	b.WriteString("4. Keep the format clean and professional\n")
	b.WriteString("5. Proofread for any spelling or grammatical errors\n")
	fmt.Fprintf(&b, "\n**Overall Score: %d/10**\n", scores.Overall)
	b.WriteString("Your resume has a solid foundation. Focus on adding more specific achievements and quantifiable results to make it stand out to employers.")

	return Result{
		Feedback: b.String(),
		Scores:   scores,
		Source:   SourceFallback,
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func pick(cond bool, yes, no int) int {
	if cond {
		return yes
	}
	return no
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
