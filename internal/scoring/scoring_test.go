package scoring

import (
	"testing"

	"talentscreen/internal/types"
)

func reportWith(tech, exp, keyword *float64, proficiencies []*float64) *types.InterviewerAnalysis {
	doc := &types.InterviewerAnalysis{
		PreliminaryAssessment: &types.PreliminaryAssessment{
			TechnicalFitScore:  tech,
			ExperienceFitScore: exp,
		},
		ResumeAnalysis: &types.ResumeAnalysis{
			KeywordMatchScore: keyword,
		},
		JobRequirements: &types.ScreeningRequirements{
			MustHaveSkills: []types.SkillAssessment{},
		},
	}
	for _, p := range proficiencies {
		doc.JobRequirements.MustHaveSkills = append(doc.JobRequirements.MustHaveSkills, types.SkillAssessment{
			SkillName:            "skill",
			CandidateProficiency: p,
		})
	}
	return doc
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name     string
		doc      *types.InterviewerAnalysis
		expected float64
	}{
		{
			name:     "all components present",
			doc:      reportWith(types.Float64Ptr(0.8), types.Float64Ptr(0.6), types.Float64Ptr(8), []*float64{types.Float64Ptr(1.0)}),
			expected: 0.76, // 0.8*0.4 + 0.6*0.3 + 0.8*0.2 + 1.0*0.1
		},
		{
			name:     "nil document scores neutral",
			doc:      nil,
			expected: 0.5,
		},
		{
			name:     "empty document scores neutral",
			doc:      &types.InterviewerAnalysis{},
			expected: 0.5, // every component falls back to its neutral default
		},
		{
			name:     "missing score fields score neutral",
			doc:      reportWith(nil, nil, nil, nil),
			expected: 0.5,
		},
		{
			name:     "empty skill list contributes neutral average",
			doc:      reportWith(types.Float64Ptr(1), types.Float64Ptr(1), types.Float64Ptr(10), []*float64{}),
			expected: 0.95, // 0.4 + 0.3 + 0.2 + 0.5*0.1
		},
		{
			name:     "fallback report scores near zero",
			doc:      types.FallbackInterviewerAnalysis(),
			expected: 0.05, // only the empty skill list contributes its neutral share
		},
		{
			name:     "out of range values clamp",
			doc:      reportWith(types.Float64Ptr(5), types.Float64Ptr(-2), types.Float64Ptr(42), []*float64{types.Float64Ptr(2)}),
			expected: 0.7, // 1*0.4 + 0*0.3 + 1*0.2 + 1*0.1
		},
		{
			name:     "nil proficiency inside the skill list scores neutral",
			doc:      reportWith(types.Float64Ptr(1), types.Float64Ptr(1), types.Float64Ptr(10), []*float64{nil, types.Float64Ptr(1)}),
			expected: 0.98, // avg(0.5, 1.0) = 0.75 on the skills component
		},
		{
			name:     "result rounds to two decimals",
			doc:      reportWith(types.Float64Ptr(0.333), types.Float64Ptr(0.333), types.Float64Ptr(3.33), []*float64{types.Float64Ptr(0.333)}),
			expected: 0.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FinalScore(tt.doc)
			if got != tt.expected {
				t.Errorf("FinalScore() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFinalScoreAlwaysInRange(t *testing.T) {
	docs := []*types.InterviewerAnalysis{
		nil,
		{},
		types.FallbackInterviewerAnalysis(),
		reportWith(types.Float64Ptr(100), types.Float64Ptr(100), types.Float64Ptr(100), []*float64{types.Float64Ptr(100)}),
		reportWith(types.Float64Ptr(-100), types.Float64Ptr(-100), types.Float64Ptr(-100), []*float64{types.Float64Ptr(-100)}),
	}
	for _, doc := range docs {
		got := FinalScore(doc)
		if got < 0 || got > 1 {
			t.Errorf("FinalScore() = %v, want value in [0, 1]", got)
		}
	}
}
