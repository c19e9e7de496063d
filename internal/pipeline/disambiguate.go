package pipeline

import (
	"fmt"
	"strings"

	"github.com/osintlab/namesake/internal/model"
)

// decide applies the disambiguation gates to a ranked candidate list. A
// caller-supplied profile URL settles identity without any gate; otherwise a
// single candidate must clear the single-candidate threshold, and multiple
// candidates must additionally separate from the runner-up by the margin
// threshold (inclusive).
func (e *Engine) decide(candidates []model.Candidate, linkedinURL string) bool {
	if linkedinURL != "" {
		return true
	}
	if len(candidates) == 0 {
		return false
	}
	top := candidates[0].Confidence
	if len(candidates) == 1 {
		return top >= e.config.Resolver.SingleCandidateThreshold
	}
	margin := top - candidates[1].Confidence
	return top >= e.config.Resolver.MultiCandidateThreshold &&
		margin >= e.config.Resolver.MarginThreshold
}

// clarificationQuestions builds the question set for an unresolved
// intelligence call. With no qualifiers at all the caller gets the canned
// qualifier prompts; otherwise the overlapping candidates drive a choice
// question, and the LinkedIn ask always closes the list.
func clarificationQuestions(name string, qualifiers []string, candidates []model.Candidate) []string {
	if len(qualifiers) == 0 {
		return []string{
			fmt.Sprintf("I found multiple people named %s. What is their current or past company?", name),
			"What is their role/title (for example, Engineer, Founder, PM)?",
			"Do you have a LinkedIn profile URL for the exact person?",
		}
	}

	var questions []string
	if len(candidates) > 1 {
		var options []string
		for _, c := range candidates {
			option := c.CompanyHint
			if option == "" {
				option = c.ProfileURL
			}
			if option == "" {
				option = c.Label
			}
			options = append(options, option)
			if len(options) == 3 {
				break
			}
		}
		questions = append(questions,
			fmt.Sprintf("I still see overlapping profiles. Which one matches your target person: %s ?",
				strings.Join(options, " | ")),
			"Can you add one more qualifier like location, school, or exact title?",
		)
	}
	questions = append(questions, "If possible, share the LinkedIn URL to remove ambiguity.")
	return questions
}
