package llm

import (
	_ "embed"
	"strings"
)

// Use case names, shared by prompts, metrics and logs.
const (
	UseCaseCritique    = "critique"
	UseCaseCoverLetter = "cover_letter"
	UseCaseInterview   = "interview"
	UseCaseJobLinks    = "job_links"
)

const (
	systemCritique    = "You are a professional resume reviewer who provides structured, detailed feedback. Use the exact section headers provided. Be specific and actionable in your recommendations. When you rate a section, write the rating as N/10 in the same sentence as the section name."
	systemCoverLetter = "You are a professional cover letter writer. Write cover letters that start directly with the content - no introductory phrases like 'Here is a cover letter' or similar. Format your response cleanly without excessive spacing. Focus on professional experience only, avoid mentioning certificates or credentials."
	systemInterview   = "You are an interview coach. Generate interview questions and answers using the Q#:/A#: format. Be clear and direct."
	systemJobLinks    = "You are an expert job search assistant. Return only valid JSON format with search links."
)

var (
	//go:embed prompts/critique.txt
	critiqueTemplate string
	//go:embed prompts/cover_letter.txt
	coverLetterTemplate string
	//go:embed prompts/interview.txt
	interviewTemplate string
	//go:embed prompts/job_links.txt
	jobLinksTemplate string
)

// Prompt is a system/user message pair.
type Prompt struct {
	System string
	User   string
}

// ResumeCritiquePrompt asks for sectioned feedback with per-section N/10 ratings.
func ResumeCritiquePrompt(resume string) Prompt {
	return Prompt{System: systemCritique, User: render(critiqueTemplate, resume, "")}
}

// CoverLetterPrompt asks for a letter starting with "Dear Hiring Manager,".
func CoverLetterPrompt(resume, job string) Prompt {
	return Prompt{System: systemCoverLetter, User: render(coverLetterTemplate, resume, job)}
}

// InterviewPrompt asks for ten Q#:/A#: pairs, five from the resume and five from the job.
func InterviewPrompt(resume, job string) Prompt {
	return Prompt{System: systemInterview, User: render(interviewTemplate, resume, job)}
}

// JobLinksPrompt asks for a pure-JSON search_links object.
func JobLinksPrompt(resume string) Prompt {
	return Prompt{System: systemJobLinks, User: render(jobLinksTemplate, resume, "")}
}

func render(template, resume, job string) string {
	if strings.TrimSpace(resume) == "" {
		resume = "N/A"
	}
	if strings.TrimSpace(job) == "" {
		job = "N/A"
	}
	replacer := strings.NewReplacer(
		"{{RESUME}}", resume,
		"{{JOB}}", job,
	)
	return strings.TrimSpace(replacer.Replace(template))
}
