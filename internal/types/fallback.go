package types

// Fallback documents are substituted when the generative model cannot produce
// a schema-valid response within the retry budget. Every required field is
// present with a neutral or empty value, so downstream consumers (scoring,
// persistence) can rely on schema completeness unconditionally.

// FallbackJDSummary returns the neutral JD summary document.
func FallbackJDSummary() *JDSummary {
	return &JDSummary{
		JobMetadata: &JobMetadata{
			JobName:     "Unknown",
			CompanyName: "Unknown",
		},
		JobRequirements: &JDRequirements{
			MustHaveSkills: []RequiredSkill{},
			Experience:     &ExperienceRequirement{MinimumYears: 0},
		},
		JobResponsibilities: &JDResponsibilities{
			PrimaryDuties: []string{},
		},
		Keywords:   []Keyword{},
		JobSummary: "Summary unavailable",
	}
}

// FallbackCandidateAnalysis returns the neutral interview cheatsheet document.
func FallbackCandidateAnalysis() *CandidateAnalysis {
	return &CandidateAnalysis{
		Company: "Unknown",
		Role:    "Unknown",
		SWOTAnalysis: &SWOTAnalysis{
			Strengths:     []string{},
			Weaknesses:    []string{},
			Opportunities: []string{},
			Threats:       []string{},
		},
		RequiredSkills:   []SkillChecklistEntry{},
		ConceptsRevision: []RevisionTopic{},
		QA:               []InterviewQuestion{},
		CompanyInsights:  []CompanyInsight{},
	}
}

// FallbackInterviewerAnalysis returns the neutral screening report document.
func FallbackInterviewerAnalysis() *InterviewerAnalysis {
	return &InterviewerAnalysis{
		CandidateInfo: &CandidateInfo{
			Name:              "Unknown",
			Contact:           &Contact{Email: ""},
			YearsOfExperience: 0,
		},
		JobRequirements: &ScreeningRequirements{
			MustHaveSkills:   []SkillAssessment{},
			GoodToHaveSkills: []SkillAssessment{},
		},
		ResumeAnalysis: &ResumeAnalysis{
			EducationMatch: &EducationMatch{
				MatchScore: 0,
			},
			ExperienceMatch: &ExperienceMatch{
				RelevantExperienceScore: 0,
			},
			SkillGaps:         []string{},
			KeywordMatchScore: Float64Ptr(0),
		},
		PreliminaryAssessment: &PreliminaryAssessment{
			TechnicalFitScore:   Float64Ptr(0),
			ExperienceFitScore:  Float64Ptr(0),
			PotentialCultureFit: Float64Ptr(0),
		},
		ScreeningDecision: &ScreeningDecision{
			InterviewType: "technical",
			Priority:      "medium",
		},
	}
}
