// Package scoring converts an interviewer screening report into a single
// normalized fit score. The function is pure and total: any malformed or
// partial document degrades to neutral contributions instead of failing.
package scoring

import (
	"math"

	"talentscreen/internal/types"
)

// Weights applied to the individual score components.
const (
	weightTechnical  = 0.40
	weightExperience = 0.30
	weightKeyword    = 0.20
	weightSkills     = 0.10
)

const neutral = 0.5

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// unit reads a score field, substituting the neutral default when absent and
// clamping the value to [0, 1]. Technical and experience fit arrive on a 0-10
// scale and skill proficiency on 0-2; the value is clamped without rescaling,
// so anything above 1 saturates.
func unit(v *float64) float64 {
	if v == nil {
		return neutral
	}
	return clamp(*v, 0, 1)
}

// FinalScore computes the weighted final score for a screening report.
// The result is always within [0.0, 1.0], rounded to two decimal places.
//
// Components and weights: technical fit 40%, experience fit 30%, keyword
// match 20% (0-10 scale, divided by 10), average must-have skill proficiency
// 10% (neutral 0.5 when the skill list is empty).
func FinalScore(doc *types.InterviewerAnalysis) float64 {
	if doc == nil {
		return neutral
	}

	techScore := neutral
	expScore := neutral
	if pa := doc.PreliminaryAssessment; pa != nil {
		techScore = unit(pa.TechnicalFitScore)
		expScore = unit(pa.ExperienceFitScore)
	}

	keywordRaw := 5.0
	if ra := doc.ResumeAnalysis; ra != nil && ra.KeywordMatchScore != nil {
		keywordRaw = clamp(*ra.KeywordMatchScore, 0, 10)
	}
	keywordScore := keywordRaw / 10.0

	avgSkillScore := neutral
	if jr := doc.JobRequirements; jr != nil && len(jr.MustHaveSkills) > 0 {
		sum := 0.0
		for _, skill := range jr.MustHaveSkills {
			sum += unit(skill.CandidateProficiency)
		}
		avgSkillScore = sum / float64(len(jr.MustHaveSkills))
	}

	final := techScore*weightTechnical +
		expScore*weightExperience +
		keywordScore*weightKeyword +
		avgSkillScore*weightSkills

	return math.Round(clamp(final, 0, 1)*100) / 100
}
