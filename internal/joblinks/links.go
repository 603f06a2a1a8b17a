package joblinks

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Platform names in canonical order.
const (
	PlatformLinkedIn       = "LinkedIn"
	PlatformIndeed         = "Indeed"
	PlatformGoogleJobs     = "Google Jobs"
	PlatformGlassdoor      = "Glassdoor"
	PlatformWeWorkRemotely = "WeWorkRemotely"
	PlatformRemoteOK       = "RemoteOK"
	PlatformWellfound      = "Wellfound"
	PlatformUpwork         = "Upwork"
)

// Platforms lists every supported platform in response order.
var Platforms = []string{
	PlatformLinkedIn,
	PlatformIndeed,
	PlatformGoogleJobs,
	PlatformGlassdoor,
	PlatformWeWorkRemotely,
	PlatformRemoteOK,
	PlatformWellfound,
	PlatformUpwork,
}

// fixedURLs are never personalized.
var fixedURLs = map[string]string{
	PlatformGlassdoor: "https://www.glassdoor.com/Job/index.htm",
	PlatformRemoteOK:  "https://remoteok.com",
	PlatformWellfound: "https://wellfound.com/remote",
	PlatformUpwork:    "https://www.upwork.com/freelance-jobs",
}

const (
	defaultJobTitle = "software engineer"
	defaultLocation = "remote"
)

// SearchLink is a job board search URL.
type SearchLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// BuildSearchLinks returns one link per platform for the given title and
// location, in canonical order.
func BuildSearchLinks(title, location string) []SearchLink {
	t := url.QueryEscape(title)
	l := url.QueryEscape(location)

	dynamic := map[string]string{
		PlatformLinkedIn:       "https://www.linkedin.com/jobs/search/?keywords=" + t + "&location=" + l,
		PlatformIndeed:         "https://www.indeed.com/jobs?q=" + t + "&l=" + l,
		PlatformGoogleJobs:     "https://www.google.com/search?q=" + t + "+jobs+" + l,
		PlatformWeWorkRemotely: "https://weworkremotely.com/remote-jobs/search?term=" + t,
	}

	links := make([]SearchLink, 0, len(Platforms))
	for _, p := range Platforms {
		u, ok := fixedURLs[p]
		if !ok {
			u = dynamic[p]
		}
		links = append(links, SearchLink{Platform: p, URL: u})
	}
	return links
}

var (
	labelledTitle    = regexp.MustCompile(`(?i)(?:Position|Title|Role|Applying for|Objective)[:\- ]+([A-Za-z ]+)`)
	capitalizedTitle = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+){1,2})\b`)
	labelledLocation = regexp.MustCompile(`(?i)\b(?:Location|Based in|Lives in|City|Address)[:\- ]+([A-Za-z, ]+)`)
)

// ExtractJobTitle prefers a labelled title, then the first capitalized
// multi-word phrase, then "software engineer".
func ExtractJobTitle(resume string) string {
	for _, m := range labelledTitle.FindAllStringSubmatch(resume, -1) {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title
		}
	}
	if m := capitalizedTitle.FindStringSubmatch(resume); m != nil {
		return m[1]
	}
	return defaultJobTitle
}

// ExtractLocation returns a labelled location or "remote". A value that
// runs into an "@" is the local part of an email address and is skipped.
func ExtractLocation(resume string) string {
	for _, m := range labelledLocation.FindAllStringSubmatchIndex(resume, -1) {
		if m[3] < len(resume) && resume[m[3]] == '@' {
			continue
		}
		if loc := strings.Trim(strings.TrimSpace(resume[m[2]:m[3]]), ", "); loc != "" {
			return loc
		}
	}
	return defaultLocation
}

type skill struct {
	name string
	re   *regexp.Regexp
}

// skillVocabulary maps display names to their accepted spellings.
var skillVocabulary = []skill{
	newSkill("Python", "python"),
	newSkill("Java", "java"),
	newSkill("JavaScript", "javascript", "js"),
	newSkill("TypeScript", "typescript", "ts"),
	newSkill("Go", "golang"),
	newSkill("Rust", "rust"),
	newSkill("C++", "c++", "cpp"),
	newSkill("C#", "c#", "csharp"),
	newSkill("Ruby", "ruby"),
	newSkill("PHP", "php"),
	newSkill("Kotlin", "kotlin"),
	newSkill("Swift", "swift"),
	newSkill("SQL", "sql"),
	newSkill("PostgreSQL", "postgresql", "postgres"),
	newSkill("MySQL", "mysql"),
	newSkill("MongoDB", "mongodb", "mongo"),
	newSkill("Redis", "redis"),
	newSkill("React", "react", "react.js", "reactjs"),
	newSkill("Angular", "angular"),
	newSkill("Vue", "vue", "vue.js", "vuejs"),
	newSkill("Node.js", "node.js", "nodejs", "node"),
	newSkill("Django", "django"),
	newSkill("Flask", "flask"),
	newSkill("Spring Boot", "spring boot"),
	newSkill("Docker", "docker"),
	newSkill("Kubernetes", "kubernetes", "k8s"),
	newSkill("AWS", "aws", "amazon web services"),
	newSkill("Azure", "azure"),
	newSkill("GCP", "gcp", "google cloud"),
	newSkill("Terraform", "terraform"),
	newSkill("Git", "git"),
	newSkill("Linux", "linux"),
	newSkill("GraphQL", "graphql"),
	newSkill("REST API", "rest api", "restful"),
	newSkill("Machine Learning", "machine learning"),
	newSkill("Data Analysis", "data analysis"),
	newSkill("Excel", "excel"),
	newSkill("Figma", "figma"),
	newSkill("Agile", "agile"),
	newSkill("Scrum", "scrum"),
}

func newSkill(name string, aliases ...string) skill {
	quoted := make([]string, len(aliases))
	for i, a := range aliases {
		quoted[i] = regexp.QuoteMeta(a)
	}
	pattern := `(?i)(?:^|[^a-z0-9+#.])(?:` + strings.Join(quoted, "|") + `)(?:$|[^a-z0-9+#])`
	return skill{name: name, re: regexp.MustCompile(pattern)}
}

// ExtractSkills returns known skills found in resume, ordered by first
// appearance. The result is never nil.
func ExtractSkills(resume string) []string {
	type hit struct {
		name string
		pos  int
	}
	var hits []hit
	for _, s := range skillVocabulary {
		if loc := s.re.FindStringIndex(resume); loc != nil {
			hits = append(hits, hit{name: s.name, pos: loc[0]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	skills := make([]string, 0, len(hits))
	for _, h := range hits {
		skills = append(skills, h.name)
	}
	return skills
}
