package types

import (
	"fmt"
	"strings"
)

// The validators below implement the schema required-field sets. A document
// that deserialized but is missing any required object, list, or numeric
// field is treated as a schema violation by the analysis client. Required
// scalar strings are not checked: an empty string is indistinguishable from
// an absent one after deserialization, and the fallback documents legitimately
// carry empty reasoning strings.

func missingErr(kind DocumentKind, fields []string) error {
	return fmt.Errorf("%s document missing required fields: %s", kind, strings.Join(fields, ", "))
}

// Validate checks the JD summary required-field set.
func (d *JDSummary) Validate() error {
	var missing []string
	if d.JobMetadata == nil {
		missing = append(missing, "job_metadata")
	}
	if d.JobRequirements == nil {
		missing = append(missing, "job_requirements")
	} else {
		if d.JobRequirements.MustHaveSkills == nil {
			missing = append(missing, "job_requirements.must_have_skills")
		}
		if d.JobRequirements.Experience == nil {
			missing = append(missing, "job_requirements.experience")
		}
	}
	if d.JobResponsibilities == nil {
		missing = append(missing, "job_responsibilities")
	} else if d.JobResponsibilities.PrimaryDuties == nil {
		missing = append(missing, "job_responsibilities.primary_duties")
	}
	if d.Keywords == nil {
		missing = append(missing, "keywords")
	}
	if len(missing) > 0 {
		return missingErr(KindJDSummary, missing)
	}
	return nil
}

// Validate checks the candidate-view required-field set.
func (d *CandidateAnalysis) Validate() error {
	var missing []string
	if d.SWOTAnalysis == nil {
		missing = append(missing, "swot_analysis")
	} else {
		if d.SWOTAnalysis.Strengths == nil {
			missing = append(missing, "swot_analysis.strengths")
		}
		if d.SWOTAnalysis.Weaknesses == nil {
			missing = append(missing, "swot_analysis.weaknesses")
		}
		if d.SWOTAnalysis.Opportunities == nil {
			missing = append(missing, "swot_analysis.opportunities")
		}
		if d.SWOTAnalysis.Threats == nil {
			missing = append(missing, "swot_analysis.threats")
		}
	}
	if d.RequiredSkills == nil {
		missing = append(missing, "requiredskills")
	}
	if d.ConceptsRevision == nil {
		missing = append(missing, "concepts_revision")
	}
	if d.QA == nil {
		missing = append(missing, "QA")
	}
	if d.CompanyInsights == nil {
		missing = append(missing, "company_insights")
	}
	if len(missing) > 0 {
		return missingErr(KindCandidateAnalysis, missing)
	}
	return nil
}

// Validate checks the interviewer-view required-field set.
func (d *InterviewerAnalysis) Validate() error {
	var missing []string
	if d.CandidateInfo == nil {
		missing = append(missing, "candidate_info")
	} else if d.CandidateInfo.Contact == nil {
		missing = append(missing, "candidate_info.contact")
	}
	if d.JobRequirements == nil {
		missing = append(missing, "job_requirements")
	} else {
		if d.JobRequirements.MustHaveSkills == nil {
			missing = append(missing, "job_requirements.must_have_skills")
		}
		if d.JobRequirements.GoodToHaveSkills == nil {
			missing = append(missing, "job_requirements.good_to_have_skills")
		}
		for i, s := range d.JobRequirements.MustHaveSkills {
			if s.CandidateProficiency == nil {
				missing = append(missing, fmt.Sprintf("job_requirements.must_have_skills[%d].candidate_proficiency", i))
			}
		}
	}
	if d.ResumeAnalysis == nil {
		missing = append(missing, "resume_analysis")
	} else {
		if d.ResumeAnalysis.EducationMatch == nil {
			missing = append(missing, "resume_analysis.education_match")
		}
		if d.ResumeAnalysis.ExperienceMatch == nil {
			missing = append(missing, "resume_analysis.experience_match")
		}
		if d.ResumeAnalysis.SkillGaps == nil {
			missing = append(missing, "resume_analysis.skill_gaps")
		}
		if d.ResumeAnalysis.KeywordMatchScore == nil {
			missing = append(missing, "resume_analysis.keyword_match_score")
		}
	}
	if d.PreliminaryAssessment == nil {
		missing = append(missing, "preliminary_assessment")
	} else {
		if d.PreliminaryAssessment.TechnicalFitScore == nil {
			missing = append(missing, "preliminary_assessment.technical_fit_score")
		}
		if d.PreliminaryAssessment.ExperienceFitScore == nil {
			missing = append(missing, "preliminary_assessment.experience_fit_score")
		}
		if d.PreliminaryAssessment.PotentialCultureFit == nil {
			missing = append(missing, "preliminary_assessment.potential_culture_fit")
		}
	}
	if d.ScreeningDecision == nil {
		missing = append(missing, "screening_decision")
	}
	if len(missing) > 0 {
		return missingErr(KindInterviewerAnalysis, missing)
	}
	return nil
}
