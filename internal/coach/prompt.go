package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathcheck/internal/catalog"
	"github.com/abhisek/pathcheck/internal/scoring"
)

const systemPrompt = `You are a pragmatic career coach helping someone decide whether to pursue a Financial Analyst career. You are given the scores from a self-assessment. Be honest, specific and encouraging. Do not invent scores, do not contradict the recommendation, and do not give financial or investment advice.`

func buildUserMessage(in Input) string {
	r := in.Results
	var b strings.Builder

	fmt.Fprintf(&b, "Recommendation: %s (%s)\n", r.Recommendation, r.Headline)
	fmt.Fprintf(&b, "Overall score: %d/100\n", r.OverallScore)
	fmt.Fprintf(&b, "Psychometric score: %d (%s)\n", r.PsychometricScore, r.PsychometricInterpretation)
	fmt.Fprintf(&b, "Technical score: %d/100 (%s)\n", r.TechnicalScore, r.TechnicalInterpretation)

	b.WriteString("\nWISCAR dimensions (0-100):\n")
	for _, d := range scoring.AllDimensions() {
		fmt.Fprintf(&b, "- %s: %d\n", d.Label(), r.WISCAR.Get(d))
	}

	b.WriteString("\nSelected answers:\n")
	wrote := false
	for _, key := range catalog.AllSectionKeys() {
		section, _ := catalog.SectionByKey(key)
		for _, q := range section.Questions {
			if q.Kind != catalog.KindMultipleChoice {
				continue
			}
			a, ok := in.Answers.Get(key, q.ID)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "- %s %s\n", q.Title, a.String())
			wrote = true
		}
	}
	if !wrote {
		b.WriteString("None\n")
	}

	b.WriteString(`
Instructions:
1. Write a 3-4 sentence summary addressed to the candidate as "you".
2. List 2-3 strengths and 1-3 gaps grounded in the scores above.
3. Suggest 2-3 concrete next steps that fit the learning path: basic finance and Excel, then financial modeling and budgeting, then advanced analytics and case studies.
4. Plain text only. No markdown.`)

	return b.String()
}
