package scoring

import (
	"reflect"
	"testing"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/catalog"
)

func TestCompute_EmptyAnswers(t *testing.T) {
	r := Compute(answers.Sets{})

	if r.PsychometricScore != 0 {
		t.Errorf("PsychometricScore = %d, want 0", r.PsychometricScore)
	}
	if r.TechnicalScore != 0 {
		t.Errorf("TechnicalScore = %d, want 0", r.TechnicalScore)
	}
	for _, d := range AllDimensions() {
		if got := r.WISCAR.Get(d); got != 50 {
			t.Errorf("WISCAR %s = %d, want 50", d, got)
		}
	}
	if r.OverallScore != 15 {
		t.Errorf("OverallScore = %d, want 15", r.OverallScore)
	}
	if r.Recommendation != RecommendNo {
		t.Errorf("Recommendation = %s, want NO", r.Recommendation)
	}
	if len(r.Alternatives) != 3 {
		t.Errorf("len(Alternatives) = %d, want 3", len(r.Alternatives))
	}
	if r.Headline != "Not Recommended: Explore alternatives" {
		t.Errorf("Headline = %q", r.Headline)
	}
}

func TestPsychometricScore(t *testing.T) {
	tests := []struct {
		name string
		set  answers.Set
		want int
	}{
		{"empty", nil, 0},
		{"mean of numbers", answers.Set{"a": answers.Number(8), "b": answers.Number(6)}, 7},
		{"text ignored", answers.Set{"a": answers.Number(8), "b": answers.Text("Agree")}, 8},
		{"only text", answers.Set{"a": answers.Text("Agree")}, 0},
		{"half rounds up", answers.Set{"a": answers.Number(7), "b": answers.Number(8)}, 8},
		{"below half rounds down", answers.Set{"a": answers.Number(7), "b": answers.Number(7), "c": answers.Number(8)}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PsychometricScore(tt.set); got != tt.want {
				t.Errorf("PsychometricScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTechnicalScore(t *testing.T) {
	six := answers.Set{
		"balance-sheet":     answers.Text("Financial position at a point in time"),
		"profit-margin":     answers.Text("(Net Income / Revenue) × 100"),
		"logical-sequence":  answers.Text("162"),
		"numerical-pattern": answers.Text("$132.25M"),
		"excel-knowledge":   answers.Text("MAX()"),
		"roi-understanding": answers.Text("Return on Investment"),
	}
	if got := TechnicalScore(six); got != 33 {
		t.Errorf("TechnicalScore = %d, want 33", got)
	}

	tests := []struct {
		name string
		set  answers.Set
		want int
	}{
		{"empty", nil, 0},
		{"one correct of one", answers.Set{"balance-sheet": answers.Text("Financial position at a point in time")}, 100},
		{"case sensitive", answers.Set{"balance-sheet": answers.Text("financial position at a point in time")}, 0},
		{"numeric sequence rule", answers.Set{"logical-sequence": answers.Number(7)}, 100},
		{"numeric below bound", answers.Set{"logical-sequence": answers.Number(6.5)}, 0},
		{"numeric on text rule", answers.Set{"balance-sheet": answers.Number(10)}, 0},
		{"unknown id", answers.Set{"custom-balance-sheet": answers.Text("Financial position at a point in time")}, 0},
		{"two of three", answers.Set{
			"balance-sheet":    answers.Text("Financial position at a point in time"),
			"profit-margin":    answers.Text("(Net Income / Revenue) × 100"),
			"logical-sequence": answers.Text("108"),
		}, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TechnicalScore(tt.set); got != tt.want {
				t.Errorf("TechnicalScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRuledQuestions_AreCatalogTechnicalQuestions(t *testing.T) {
	ids := RuledQuestions()
	want := []string{"balance-sheet", "logical-sequence", "profit-margin"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("RuledQuestions() = %v, want %v", ids, want)
	}
	for _, id := range ids {
		_, sec, ok := catalog.QuestionByID(id)
		if !ok || sec != catalog.SectionTechnical {
			t.Errorf("rule %q does not name a technical catalog question", id)
		}
	}
}

func TestTechnicalRules_TextRulesMatchAnOption(t *testing.T) {
	for _, id := range RuledQuestions() {
		r, _ := TechnicalRule(id)
		text, ok := r.(ExactText)
		if !ok {
			continue
		}
		q, _, _ := catalog.QuestionByID(id)
		found := false
		for _, opt := range q.Options {
			if opt == string(text) {
				found = true
			}
		}
		if !found {
			t.Errorf("rule for %q (%s) matches none of its options", id, r)
		}
	}
}

func TestWISCAR(t *testing.T) {
	set := answers.Set{
		"will-motivation":     answers.Number(9),
		"interest-engagement": answers.Number(7),
		"skill-technical":     answers.Number(4),
		"cognitive-reasoning": answers.Number(8),
		"ability-learning":    answers.Number(6),
		"realworld-fit":       answers.Text("Independent work with periodic reviews"),
		"realworld-culture":   answers.Text("Agree"),
	}
	got := WISCAR(set)
	want := WISCARScores{Will: 90, Interest: 70, Skill: 40, Cognitive: 80, Ability: 60, RealWorld: 50}
	if got != want {
		t.Errorf("WISCAR = %+v, want %+v", got, want)
	}
}

func TestWISCAR_MultiDimensionAndAveraging(t *testing.T) {
	set := answers.Set{
		// Contains both "analytical" (skill) and "analysis" (cognitive).
		"analytical-analysis": answers.Number(3),
		"cognitive-reasoning": answers.Number(8),
	}
	got := WISCAR(set)
	if got.Skill != 30 {
		t.Errorf("Skill = %d, want 30", got.Skill)
	}
	if got.Cognitive != 55 {
		t.Errorf("Cognitive = %d, want 55", got.Cognitive)
	}
	if got.Will != 50 {
		t.Errorf("Will = %d, want 50 (no contributors)", got.Will)
	}
}

func TestOverallScore(t *testing.T) {
	w := WISCARScores{Will: 50, Interest: 50, Skill: 50, Cognitive: 50, Ability: 50, RealWorld: 50}
	if got := OverallScore(0, 0, w); got != 15 {
		t.Errorf("OverallScore = %d, want 15", got)
	}
	full := WISCARScores{Will: 100, Interest: 100, Skill: 100, Cognitive: 100, Ability: 100, RealWorld: 100}
	// 10*0.3 + 100*0.4 + 100*0.3 = 73
	if got := OverallScore(10, 100, full); got != 73 {
		t.Errorf("OverallScore = %d, want 73", got)
	}
}

func TestRecommend_Boundaries(t *testing.T) {
	tests := []struct {
		overall int
		want    Recommendation
	}{
		{100, RecommendYes},
		{75, RecommendYes},
		{74, RecommendMaybe},
		{50, RecommendMaybe},
		{49, RecommendNo},
		{0, RecommendNo},
	}
	for _, tt := range tests {
		if got := Recommend(tt.overall); got != tt.want {
			t.Errorf("Recommend(%d) = %s, want %s", tt.overall, got, tt.want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.5, 3},
		{2.49, 2},
		{-2.5, -2},
		{0, 0},
		{33.333, 33},
		{66.666, 67},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestInsights(t *testing.T) {
	got := Insights(70, 50, 69)
	want := []string{
		"Your analytical thinking shows strong potential.",
		"Technical readiness is good.",
		"WISCAR analysis indicates moderate career fit.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Insights = %v, want %v", got, want)
	}

	got = Insights(69, 49, 70)
	if got[0] != "Your analytical thinking shows developing potential." ||
		got[1] != "Technical readiness is needs improvement." ||
		got[2] != "WISCAR analysis indicates high career fit." {
		t.Errorf("Insights = %v", got)
	}

	if got := Insights(0, 70, 0)[1]; got != "Technical readiness is excellent." {
		t.Errorf("technical insight = %q", got)
	}
}

func TestInterpretations(t *testing.T) {
	if got := TechnicalInterpretation(49); got != "Significant technical development needed" {
		t.Errorf("TechnicalInterpretation(49) = %q", got)
	}
	if got := PsychometricInterpretation(70); got != "Strong psychological alignment with financial analyst roles" {
		t.Errorf("PsychometricInterpretation(70) = %q", got)
	}
	if got := OverallInterpretation(74); got != "Moderate readiness with focused preparation" {
		t.Errorf("OverallInterpretation(74) = %q", got)
	}
}

func TestCompute_AlternativesOnlyWhenNo(t *testing.T) {
	var sets answers.Sets
	sets.Put(catalog.SectionPsychometric, "curiosity-markets", answers.Number(10))
	sets.Put(catalog.SectionTechnical, "balance-sheet", answers.Text("Financial position at a point in time"))
	for _, id := range []string{"will-motivation", "interest-engagement", "skill-technical", "cognitive-reasoning", "ability-learning", "realworld-fit"} {
		sets.Put(catalog.SectionWISCAR, id, answers.Number(10))
	}
	// 10*0.3 + 100*0.4 + 100*0.3 = 73
	r := Compute(sets)
	if r.OverallScore != 73 || r.Recommendation != RecommendMaybe {
		t.Fatalf("overall = %d %s, want 73 MAYBE", r.OverallScore, r.Recommendation)
	}
	if r.Alternatives != nil {
		t.Errorf("Alternatives = %v, want nil", r.Alternatives)
	}
}

func TestCompute_Pure(t *testing.T) {
	var sets answers.Sets
	sets.Put(catalog.SectionPsychometric, "analytical-creative", answers.Number(9))
	sets.Put(catalog.SectionTechnical, "profit-margin", answers.Text("(Net Income / Revenue) × 100"))
	sets.Put(catalog.SectionWISCAR, "will-motivation", answers.Number(7))
	before := sets.Clone()

	a := Compute(sets)
	b := Compute(sets)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Compute not deterministic:\n%+v\n%+v", a, b)
	}
	if !reflect.DeepEqual(sets, before) {
		t.Error("Compute mutated its input")
	}
}

func TestScores_IndependentOfMapOrder(t *testing.T) {
	// The mean of these sits on a rounding edge, so summation order matters.
	psych := answers.Set{"a": answers.Number(0.1), "b": answers.Number(0.1), "c": answers.Number(4.3)}
	wiscar := answers.Set{
		"will-a": answers.Number(0.1),
		"will-b": answers.Number(0.1),
		"will-c": answers.Number(4.3),
	}

	wantPsych := PsychometricScore(psych)
	wantWill := WISCAR(wiscar).Get(DimensionWill)
	for i := 0; i < 200; i++ {
		if got := PsychometricScore(psych); got != wantPsych {
			t.Fatalf("call %d: PsychometricScore = %d, earlier %d", i, got, wantPsych)
		}
		if got := WISCAR(wiscar).Get(DimensionWill); got != wantWill {
			t.Fatalf("call %d: WISCAR will = %d, earlier %d", i, got, wantWill)
		}
	}
}
