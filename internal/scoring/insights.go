package scoring

import "fmt"

// Insights returns the three short observations shown with the results.
func Insights(psychometric, technical, overall int) []string {
	potential := "developing"
	if psychometric >= 70 {
		potential = "strong"
	}

	readiness := "needs improvement"
	switch {
	case technical >= 70:
		readiness = "excellent"
	case technical >= 50:
		readiness = "good"
	}

	fit := "moderate"
	if overall >= 70 {
		fit = "high"
	}

	return []string{
		fmt.Sprintf("Your analytical thinking shows %s potential.", potential),
		fmt.Sprintf("Technical readiness is %s.", readiness),
		fmt.Sprintf("WISCAR analysis indicates %s career fit.", fit),
	}
}

// PsychometricInterpretation describes a psychometric score.
func PsychometricInterpretation(score int) string {
	switch {
	case score >= 70:
		return "Strong psychological alignment with financial analyst roles"
	case score >= 50:
		return "Moderate fit with room for development"
	default:
		return "Limited psychological alignment"
	}
}

// TechnicalInterpretation describes a technical score.
func TechnicalInterpretation(score int) string {
	switch {
	case score >= 70:
		return "Excellent technical foundation"
	case score >= 50:
		return "Good foundation, some skill gaps to address"
	default:
		return "Significant technical development needed"
	}
}

// OverallInterpretation describes an overall score.
func OverallInterpretation(score int) string {
	switch {
	case score >= YesThreshold:
		return "High readiness for career transition"
	case score >= MaybeThreshold:
		return "Moderate readiness with focused preparation"
	default:
		return "Consider alternative career paths"
	}
}

// Headline is the one-line verdict for a recommendation.
func Headline(rec Recommendation) string {
	switch rec {
	case RecommendYes:
		return "Recommended: Pursue Financial Analysis"
	case RecommendMaybe:
		return "Conditional: Consider with preparation"
	default:
		return "Not Recommended: Explore alternatives"
	}
}

// Summary is the paragraph shown under the headline.
func Summary(rec Recommendation) string {
	switch rec {
	case RecommendYes:
		return "You demonstrate strong foundational traits and readiness for a Financial Analyst role. " +
			"Your analytical abilities, interest level, and learning capacity suggest high potential for success."
	case RecommendMaybe:
		return "You show promise for Financial Analysis but would benefit from targeted skill development. " +
			"Focus on strengthening your technical knowledge and analytical capabilities."
	default:
		return "Your assessment suggests that other career paths might be a better fit. " +
			"Consider the alternative roles suggested below that better align with your strengths."
	}
}

// CareerPaths lists entry roles for a financial analyst career.
func CareerPaths() []string {
	return []string{
		"Junior Financial Analyst",
		"Corporate Budget Analyst",
		"Equity Research Assistant",
		"FP&A Analyst",
		"Risk Analyst",
	}
}

// LearningPath lists the recommended preparation stages.
func LearningPath() []string {
	return []string{
		"Stage 1: Basic Finance & Excel",
		"Stage 2: Financial Modeling & Budgeting",
		"Stage 3: Advanced Analytics & Case Studies",
	}
}

// Alternatives lists related roles suggested when the recommendation is NO.
func Alternatives() []string {
	return []string{
		"Business Analyst",
		"Data Analyst",
		"Marketing Analyst",
	}
}
