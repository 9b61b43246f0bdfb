package ai

import (
	"google.golang.org/genai"
)

// Response schemas constrain model output to the three document shapes.
// Required lists here mirror what types.Validate enforces after parsing;
// the schema catches structural drift before it reaches the validator.

func buildJDSummarySchema(temperature *float32) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"job_metadata": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"job_name":        {Type: genai.TypeString},
						"company_name":    {Type: genai.TypeString},
						"location":        {Type: genai.TypeString},
						"employment_type": {Type: genai.TypeString, Enum: []string{"full_time", "part_time", "contract", "internship"}},
						"seniority_level": {Type: genai.TypeString, Enum: []string{"entry", "mid_level", "senior", "executive"}},
					},
					Required: []string{"job_name", "company_name"},
				},
				"compensation": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"salary_range": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"min":      {Type: genai.TypeNumber},
								"max":      {Type: genai.TypeNumber},
								"currency": {Type: genai.TypeString},
							},
						},
						"benefits": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
				},
				"job_requirements": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"must_have_skills": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"skill_name":                {Type: genai.TypeString},
									"years_experience_required": {Type: genai.TypeNumber},
								},
								Required: []string{"skill_name"},
							},
						},
						"good_to_have_skills": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"education": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"minimum_level":    {Type: genai.TypeString, Enum: []string{"high_school", "bachelor", "master", "phd"}},
								"preferred_fields": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
							},
						},
						"experience": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"minimum_years":   {Type: genai.TypeNumber},
								"preferred_years": {Type: genai.TypeNumber},
							},
							Required: []string{"minimum_years"},
						},
					},
					Required: []string{"must_have_skills", "experience"},
				},
				"job_responsibilities": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"primary_duties": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"management_responsibilities": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"has_direct_reports": {Type: genai.TypeBoolean},
								"team_size":          {Type: genai.TypeNumber},
							},
						},
					},
					Required: []string{"primary_duties"},
				},
				"company_profile": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"industry":     {Type: genai.TypeString},
						"company_size": {Type: genai.TypeString, Enum: []string{"small", "medium", "large", "enterprise"}},
					},
				},
				"keywords": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"term":       {Type: genai.TypeString},
							"importance": {Type: genai.TypeString, Enum: []string{"critical", "high", "medium", "low"}},
						},
						Required: []string{"term"},
					},
				},
				"job_summary": {Type: genai.TypeString},
			},
			Required: []string{"job_metadata", "job_requirements", "job_responsibilities", "keywords", "job_summary"},
		},
	}
	applyTemperature(cfg, temperature)
	return cfg
}

func buildCandidateAnalysisSchema(temperature *float32) *genai.GenerateContentConfig {
	qaItem := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString},
			"answer":   {Type: genai.TypeString},
		},
		Required: []string{"question", "answer"},
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"company": {Type: genai.TypeString},
				"role":    {Type: genai.TypeString},
				"swot_analysis": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"strengths":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"weaknesses":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"opportunities": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"threats":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
					Required: []string{"strengths", "weaknesses", "opportunities", "threats"},
				},
				"requiredskills": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"skill":           {Type: genai.TypeString},
							"candidate_skill": {Type: genai.TypeBoolean},
						},
						Required: []string{"skill", "candidate_skill"},
					},
				},
				"concepts_revision": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"topic":               {Type: genai.TypeString},
							"brief":               {Type: genai.TypeString},
							"yt_search_query":     {Type: genai.TypeString},
							"interview_questions": {Type: genai.TypeArray, Items: qaItem},
						},
						Required: []string{"topic", "brief", "yt_search_query", "interview_questions"},
					},
				},
				"QA": {Type: genai.TypeArray, Items: qaItem},
				"company_insights": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"information_type": {Type: genai.TypeString},
							"info":             {Type: genai.TypeString},
						},
						Required: []string{"information_type", "info"},
					},
				},
			},
			Required: []string{"company", "role", "swot_analysis", "requiredskills", "concepts_revision", "QA", "company_insights"},
		},
	}
	applyTemperature(cfg, temperature)
	return cfg
}

func buildInterviewerAnalysisSchema(temperature *float32) *genai.GenerateContentConfig {
	skillAssessment := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"skill_name":            {Type: genai.TypeString},
			"candidate_proficiency": {Type: genai.TypeNumber},
			"evidence":              {Type: genai.TypeString},
		},
		Required: []string{"skill_name", "candidate_proficiency"},
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"candidate_info": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString},
						"contact": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"email":    {Type: genai.TypeString},
								"phone":    {Type: genai.TypeString},
								"location": {Type: genai.TypeString},
							},
							Required: []string{"email"},
						},
						"current_role":        {Type: genai.TypeString},
						"years_of_experience": {Type: genai.TypeNumber},
					},
					Required: []string{"name", "contact", "years_of_experience"},
				},
				"job_requirements": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"must_have_skills":    {Type: genai.TypeArray, Items: skillAssessment},
						"good_to_have_skills": {Type: genai.TypeArray, Items: skillAssessment},
					},
					Required: []string{"must_have_skills", "good_to_have_skills"},
				},
				"resume_analysis": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"education_match": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"required_education":  {Type: genai.TypeString},
								"candidate_education": {Type: genai.TypeString},
								"match_score":         {Type: genai.TypeNumber},
								"score_reasoning":     {Type: genai.TypeString},
								"notes":               {Type: genai.TypeString},
							},
							Required: []string{"required_education", "candidate_education", "match_score", "score_reasoning"},
						},
						"experience_match": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"required_years":            {Type: genai.TypeNumber},
								"candidate_years":           {Type: genai.TypeNumber},
								"relevant_experience_score": {Type: genai.TypeNumber},
								"score_reasoning":           {Type: genai.TypeString},
								"notes":                     {Type: genai.TypeString},
							},
							Required: []string{"required_years", "candidate_years", "relevant_experience_score", "score_reasoning"},
						},
						"skill_gaps":              {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"keyword_match_score":     {Type: genai.TypeNumber},
						"keyword_match_reasoning": {Type: genai.TypeString},
					},
					Required: []string{"education_match", "experience_match", "skill_gaps", "keyword_match_score", "keyword_match_reasoning"},
				},
				"screening_questions": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"question":          {Type: genai.TypeString},
							"expected_response": {Type: genai.TypeString},
							"importance":        {Type: genai.TypeString, Enum: []string{"high", "medium", "low"}},
							"skills_validated":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						},
						Required: []string{"question", "expected_response", "importance", "skills_validated"},
					},
				},
				"preliminary_assessment": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"technical_fit_score":      {Type: genai.TypeNumber},
						"technical_fit_reasoning":  {Type: genai.TypeString},
						"experience_fit_score":     {Type: genai.TypeNumber},
						"experience_fit_reasoning": {Type: genai.TypeString},
						"potential_culture_fit":    {Type: genai.TypeNumber},
						"culture_fit_reasoning":    {Type: genai.TypeString},
						"salary_expectations": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"range_min":     {Type: genai.TypeNumber},
								"range_max":     {Type: genai.TypeNumber},
								"within_budget": {Type: genai.TypeBoolean},
								"notes":         {Type: genai.TypeString},
							},
						},
						"strengths": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
					Required: []string{
						"technical_fit_score", "technical_fit_reasoning",
						"experience_fit_score", "experience_fit_reasoning",
						"potential_culture_fit", "culture_fit_reasoning",
					},
				},
				"screening_decision": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"decision_reasoning": {Type: genai.TypeString},
						"interview_type":     {Type: genai.TypeString, Enum: []string{"technical", "behavioral", "comprehensive"}},
						"interviewer_recommendations": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"role":                  {Type: genai.TypeString},
									"reason":                {Type: genai.TypeString},
									"skill_areas_to_assess": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
								},
								Required: []string{"role", "skill_areas_to_assess"},
							},
						},
						"priority":               {Type: genai.TypeString, Enum: []string{"high", "medium", "low"}},
						"priority_justification": {Type: genai.TypeString},
						"additional_preparation": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					},
					Required: []string{"decision_reasoning", "interview_type", "priority", "priority_justification"},
				},
				"compliance_check": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"bias_indicators":                {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
						"accommodations_needed":          {Type: genai.TypeBoolean},
						"diversity_initiative_alignment": {Type: genai.TypeBoolean},
					},
					Required: []string{"bias_indicators"},
				},
			},
			Required: []string{
				"candidate_info", "job_requirements", "resume_analysis",
				"preliminary_assessment", "screening_decision",
			},
		},
	}
	applyTemperature(cfg, temperature)
	return cfg
}

func applyTemperature(cfg *genai.GenerateContentConfig, temperature *float32) {
	if temperature != nil && *temperature > 0 {
		cfg.Temperature = temperature
	}
}
