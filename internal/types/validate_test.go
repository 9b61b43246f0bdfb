package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFallbackDocumentsAreSchemaComplete(t *testing.T) {
	if err := FallbackJDSummary().Validate(); err != nil {
		t.Errorf("FallbackJDSummary().Validate() = %v, want nil", err)
	}
	if err := FallbackCandidateAnalysis().Validate(); err != nil {
		t.Errorf("FallbackCandidateAnalysis().Validate() = %v, want nil", err)
	}
	if err := FallbackInterviewerAnalysis().Validate(); err != nil {
		t.Errorf("FallbackInterviewerAnalysis().Validate() = %v, want nil", err)
	}
}

func TestJDSummaryValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*JDSummary)
		wantMissing string
	}{
		{
			name:   "complete document",
			mutate: func(d *JDSummary) {},
		},
		{
			name:        "missing job metadata",
			mutate:      func(d *JDSummary) { d.JobMetadata = nil },
			wantMissing: "job_metadata",
		},
		{
			name:        "missing requirements section",
			mutate:      func(d *JDSummary) { d.JobRequirements = nil },
			wantMissing: "job_requirements",
		},
		{
			name:        "missing must-have skills list",
			mutate:      func(d *JDSummary) { d.JobRequirements.MustHaveSkills = nil },
			wantMissing: "job_requirements.must_have_skills",
		},
		{
			name:        "missing experience requirement",
			mutate:      func(d *JDSummary) { d.JobRequirements.Experience = nil },
			wantMissing: "job_requirements.experience",
		},
		{
			name:        "missing primary duties",
			mutate:      func(d *JDSummary) { d.JobResponsibilities.PrimaryDuties = nil },
			wantMissing: "job_responsibilities.primary_duties",
		},
		{
			name:        "missing keywords",
			mutate:      func(d *JDSummary) { d.Keywords = nil },
			wantMissing: "keywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := FallbackJDSummary()
			tt.mutate(doc)
			err := doc.Validate()
			if tt.wantMissing == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMissing) {
				t.Errorf("Validate() = %q, want mention of %q", err.Error(), tt.wantMissing)
			}
		})
	}
}

func TestCandidateAnalysisValidate(t *testing.T) {
	doc := FallbackCandidateAnalysis()
	doc.SWOTAnalysis.Threats = nil
	doc.QA = nil

	err := doc.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, field := range []string{"swot_analysis.threats", "QA"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() = %q, want mention of %q", err.Error(), field)
		}
	}
}

func TestInterviewerAnalysisValidate(t *testing.T) {
	t.Run("missing proficiency inside skill list", func(t *testing.T) {
		doc := FallbackInterviewerAnalysis()
		doc.JobRequirements.MustHaveSkills = []SkillAssessment{
			{SkillName: "Go", CandidateProficiency: Float64Ptr(2)},
			{SkillName: "SQL"},
		}
		err := doc.Validate()
		if err == nil {
			t.Fatal("Validate() = nil, want error")
		}
		if !strings.Contains(err.Error(), "must_have_skills[1].candidate_proficiency") {
			t.Errorf("Validate() = %q, want the missing skill index", err.Error())
		}
	})

	t.Run("missing assessment scores", func(t *testing.T) {
		doc := FallbackInterviewerAnalysis()
		doc.PreliminaryAssessment.TechnicalFitScore = nil
		doc.ResumeAnalysis.KeywordMatchScore = nil
		err := doc.Validate()
		if err == nil {
			t.Fatal("Validate() = nil, want error")
		}
		for _, field := range []string{"technical_fit_score", "keyword_match_score"} {
			if !strings.Contains(err.Error(), field) {
				t.Errorf("Validate() = %q, want mention of %q", err.Error(), field)
			}
		}
	})

	t.Run("zero scores are valid", func(t *testing.T) {
		// A present zero must not be confused with an absent score.
		doc := FallbackInterviewerAnalysis()
		if err := doc.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestInterviewerAnalysisRoundTripPreservesAbsence(t *testing.T) {
	raw := `{
		"candidate_info": {"name": "A", "contact": {"email": "a@example.com"}, "years_of_experience": 3},
		"job_requirements": {"must_have_skills": [], "good_to_have_skills": []},
		"resume_analysis": {
			"education_match": {"required_education": "", "candidate_education": "", "match_score": 0, "score_reasoning": ""},
			"experience_match": {"required_years": 0, "candidate_years": 0, "relevant_experience_score": 0, "score_reasoning": ""},
			"skill_gaps": [],
			"keyword_match_reasoning": ""
		},
		"preliminary_assessment": {"technical_fit_score": 7, "experience_fit_score": 6, "potential_culture_fit": 5},
		"screening_decision": {"decision_reasoning": "", "interview_type": "technical", "priority": "medium", "priority_justification": ""}
	}`

	var doc InterviewerAnalysis
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	err := doc.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want keyword_match_score reported missing")
	}
	if !strings.Contains(err.Error(), "keyword_match_score") {
		t.Errorf("Validate() = %q, want mention of keyword_match_score", err.Error())
	}
	if doc.PreliminaryAssessment.TechnicalFitScore == nil || *doc.PreliminaryAssessment.TechnicalFitScore != 7 {
		t.Error("technical_fit_score did not survive deserialization")
	}
}
