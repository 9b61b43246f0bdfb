package types

// DocumentKind identifies one of the fixed analysis document schemas.
type DocumentKind string

const (
	KindJDSummary           DocumentKind = "jd_summary"
	KindCandidateAnalysis   DocumentKind = "candidate_view"
	KindInterviewerAnalysis DocumentKind = "interviewer_view"
)

// ---------------------------------------------------------------------------
// JD summary document
// ---------------------------------------------------------------------------

// JobMetadata holds the essential identification of a posting
type JobMetadata struct {
	JobName        string `json:"job_name"`
	CompanyName    string `json:"company_name"`
	Location       string `json:"location,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"` // full_time, part_time, contract, internship
	SeniorityLevel string `json:"seniority_level,omitempty"` // entry, mid_level, senior, executive
}

// SalaryRange describes an advertised compensation band
type SalaryRange struct {
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// Compensation groups salary and benefits information from a posting
type Compensation struct {
	SalaryRange *SalaryRange `json:"salary_range,omitempty"`
	Benefits    []string     `json:"benefits,omitempty"`
}

// RequiredSkill is a skill the posting demands, with optional experience years
type RequiredSkill struct {
	SkillName               string  `json:"skill_name"`
	YearsExperienceRequired float64 `json:"years_experience_required,omitempty"`
}

// ExperienceRequirement captures the years-of-experience expectations
type ExperienceRequirement struct {
	MinimumYears   float64 `json:"minimum_years"`
	PreferredYears float64 `json:"preferred_years,omitempty"`
}

// EducationRequirement captures minimum education expectations
type EducationRequirement struct {
	MinimumLevel    string   `json:"minimum_level,omitempty"` // high_school, bachelor, master, phd
	PreferredFields []string `json:"preferred_fields,omitempty"`
}

// JDRequirements is the requirements section of a JD summary
type JDRequirements struct {
	MustHaveSkills   []RequiredSkill        `json:"must_have_skills"`
	GoodToHaveSkills []string               `json:"good_to_have_skills,omitempty"`
	Education        *EducationRequirement  `json:"education,omitempty"`
	Experience       *ExperienceRequirement `json:"experience"`
}

// ManagementResponsibilities describes people-management scope
type ManagementResponsibilities struct {
	HasDirectReports bool    `json:"has_direct_reports,omitempty"`
	TeamSize         float64 `json:"team_size,omitempty"`
}

// JDResponsibilities is the duties section of a JD summary
type JDResponsibilities struct {
	PrimaryDuties              []string                    `json:"primary_duties"`
	ManagementResponsibilities *ManagementResponsibilities `json:"management_responsibilities,omitempty"`
}

// CompanyProfile describes the hiring company
type CompanyProfile struct {
	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"company_size,omitempty"` // small, medium, large, enterprise
}

// Keyword is a weighted term extracted from the posting
type Keyword struct {
	Term       string `json:"term"`
	Importance string `json:"importance,omitempty"` // critical, high, medium, low
}

// JDSummary is the structured summary generated from a raw job description
type JDSummary struct {
	JobMetadata         *JobMetadata        `json:"job_metadata"`
	Compensation        *Compensation       `json:"compensation,omitempty"`
	JobRequirements     *JDRequirements     `json:"job_requirements"`
	JobResponsibilities *JDResponsibilities `json:"job_responsibilities"`
	CompanyProfile      *CompanyProfile     `json:"company_profile,omitempty"`
	Keywords            []Keyword           `json:"keywords"`
	JobSummary          string              `json:"job_summary"`
}

// ---------------------------------------------------------------------------
// Candidate-view document (interview cheatsheet)
// ---------------------------------------------------------------------------

// SWOTAnalysis holds the four SWOT lists for a candidate against a role
type SWOTAnalysis struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// SkillChecklistEntry marks whether the candidate has a required skill
type SkillChecklistEntry struct {
	Skill          string `json:"skill"`
	CandidateSkill bool   `json:"candidate_skill"`
}

// InterviewQuestion is a question/answer pair for interview preparation
type InterviewQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RevisionTopic is an interview topic with preparation material
type RevisionTopic struct {
	Topic              string              `json:"topic"`
	Brief              string              `json:"brief"`
	YTSearchQuery      string              `json:"yt_search_query"`
	InterviewQuestions []InterviewQuestion `json:"interview_questions"`
}

// CompanyInsight is one fact about the hiring company
type CompanyInsight struct {
	InformationType string `json:"information_type"`
	Info            string `json:"info"`
}

// CandidateAnalysis is the candidate-facing interview cheatsheet document
type CandidateAnalysis struct {
	Company          string                `json:"company"`
	Role             string                `json:"role"`
	SWOTAnalysis     *SWOTAnalysis         `json:"swot_analysis"`
	RequiredSkills   []SkillChecklistEntry `json:"requiredskills"`
	ConceptsRevision []RevisionTopic       `json:"concepts_revision"`
	QA               []InterviewQuestion   `json:"QA"`
	CompanyInsights  []CompanyInsight      `json:"company_insights"`
}

// ---------------------------------------------------------------------------
// Interviewer-view document (screening report)
// ---------------------------------------------------------------------------

// Contact holds the candidate's contact details
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// CandidateInfo summarizes the candidate being screened
type CandidateInfo struct {
	Name              string   `json:"name"`
	Contact           *Contact `json:"contact"`
	CurrentRole       string   `json:"current_role,omitempty"`
	YearsOfExperience float64  `json:"years_of_experience"`
}

// SkillAssessment scores a single skill.
// CandidateProficiency is on a 0-2 scale: 0 = not demonstrated,
// 1 = listed but not proven, 2 = proven in projects/experience.
type SkillAssessment struct {
	SkillName            string   `json:"skill_name"`
	CandidateProficiency *float64 `json:"candidate_proficiency"`
	Evidence             string   `json:"evidence,omitempty"`
}

// ScreeningRequirements lists the skills assessed against the role
type ScreeningRequirements struct {
	MustHaveSkills   []SkillAssessment `json:"must_have_skills"`
	GoodToHaveSkills []SkillAssessment `json:"good_to_have_skills"`
}

// EducationMatch scores the candidate's education against requirements (0-10)
type EducationMatch struct {
	RequiredEducation  string  `json:"required_education"`
	CandidateEducation string  `json:"candidate_education"`
	MatchScore         float64 `json:"match_score"`
	ScoreReasoning     string  `json:"score_reasoning"`
	Notes              string  `json:"notes,omitempty"`
}

// ExperienceMatch scores experience relevance against requirements (0-10)
type ExperienceMatch struct {
	RequiredYears           float64 `json:"required_years"`
	CandidateYears          float64 `json:"candidate_years"`
	RelevantExperienceScore float64 `json:"relevant_experience_score"`
	ScoreReasoning          string  `json:"score_reasoning"`
	Notes                   string  `json:"notes,omitempty"`
}

// ResumeAnalysis is the automated resume-match section of the screening report
type ResumeAnalysis struct {
	EducationMatch        *EducationMatch  `json:"education_match"`
	ExperienceMatch       *ExperienceMatch `json:"experience_match"`
	SkillGaps             []string         `json:"skill_gaps"`
	KeywordMatchScore     *float64         `json:"keyword_match_score"`
	KeywordMatchReasoning string           `json:"keyword_match_reasoning"`
}

// ScreeningQuestion is a pre-interview question validating resume claims
type ScreeningQuestion struct {
	Question         string   `json:"question"`
	ExpectedResponse string   `json:"expected_response"`
	Importance       string   `json:"importance"` // high, medium, low
	SkillsValidated  []string `json:"skills_validated"`
}

// SalaryExpectations captures expected compensation versus budget
type SalaryExpectations struct {
	RangeMin     float64 `json:"range_min,omitempty"`
	RangeMax     float64 `json:"range_max,omitempty"`
	WithinBudget bool    `json:"within_budget,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// PreliminaryAssessment holds the 0-10 fit scores from resume review
type PreliminaryAssessment struct {
	TechnicalFitScore      *float64            `json:"technical_fit_score"`
	TechnicalFitReasoning  string              `json:"technical_fit_reasoning"`
	ExperienceFitScore     *float64            `json:"experience_fit_score"`
	ExperienceFitReasoning string              `json:"experience_fit_reasoning"`
	PotentialCultureFit    *float64            `json:"potential_culture_fit"`
	CultureFitReasoning    string              `json:"culture_fit_reasoning"`
	SalaryExpectations     *SalaryExpectations `json:"salary_expectations,omitempty"`
	Strengths              []string            `json:"strengths,omitempty"`
}

// InterviewerRecommendation names a team member to involve in the interview
type InterviewerRecommendation struct {
	Role               string   `json:"role"`
	Reason             string   `json:"reason,omitempty"`
	SkillAreasToAssess []string `json:"skill_areas_to_assess"`
}

// ScreeningDecision is the outcome of the screening report
type ScreeningDecision struct {
	DecisionReasoning         string                      `json:"decision_reasoning"`
	InterviewType             string                      `json:"interview_type"` // technical, behavioral, comprehensive
	InterviewerRecommendations []InterviewerRecommendation `json:"interviewer_recommendations,omitempty"`
	Priority                  string                      `json:"priority"` // high, medium, low
	PriorityJustification     string                      `json:"priority_justification"`
	AdditionalPreparation     []string                    `json:"additional_preparation,omitempty"`
}

// ComplianceCheck flags bias and accommodation considerations
type ComplianceCheck struct {
	BiasIndicators               []string `json:"bias_indicators"`
	AccommodationsNeeded         bool     `json:"accommodations_needed,omitempty"`
	DiversityInitiativeAlignment bool     `json:"diversity_initiative_alignment,omitempty"`
}

// InterviewerAnalysis is the interviewer-facing screening report document
type InterviewerAnalysis struct {
	CandidateInfo         *CandidateInfo         `json:"candidate_info"`
	JobRequirements       *ScreeningRequirements `json:"job_requirements"`
	ResumeAnalysis        *ResumeAnalysis        `json:"resume_analysis"`
	ScreeningQuestions    []ScreeningQuestion    `json:"screening_questions,omitempty"`
	PreliminaryAssessment *PreliminaryAssessment `json:"preliminary_assessment"`
	ScreeningDecision     *ScreeningDecision     `json:"screening_decision"`
	ComplianceCheck       *ComplianceCheck       `json:"compliance_check,omitempty"`
}

// Float64Ptr returns a pointer to v. Convenience for building documents.
func Float64Ptr(v float64) *float64 {
	return &v
}
