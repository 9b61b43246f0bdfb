package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"talentscreen/internal/candidate"
	"talentscreen/internal/types"
)

func sampleRanking() candidate.Ranking {
	return candidate.Ranking{
		Ranked: []candidate.RankedCandidate{
			{CandidateID: 2, Name: "Ada", Score: types.Float64Ptr(0.91)},
			{CandidateID: 1, Name: "Ben", Score: types.Float64Ptr(0.42)},
			{CandidateID: 3, Name: "Cara", ErrorReason: "resume text extraction failed"},
		},
		ValidCount:     2,
		ShortlistCount: 1,
		Shortlisted:    []int64{2},
	}
}

func TestRankingTextFormat(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleRanking(), "text")
	if err != nil {
		t.Fatalf("Format() = %v", err)
	}

	for _, want := range []string{
		"Scored candidates: 2",
		"Shortlisted: 1",
		"*  1. Ada (id 2) score 0.91",
		"   2. Ben (id 1) score 0.42",
		"   3. Cara (id 3) failed: resume text extraction failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJDSummaryTextFormat(t *testing.T) {
	summary := types.FallbackJDSummary()
	summary.JobMetadata.JobName = "Backend Engineer"
	summary.JobMetadata.CompanyName = "Acme"
	summary.JobRequirements.MustHaveSkills = []types.RequiredSkill{
		{SkillName: "Go", YearsExperienceRequired: 3},
		{SkillName: "SQL"},
	}
	summary.Keywords = []types.Keyword{{Term: "microservices", Importance: "high"}}

	out, err := GlobalRegistry.Format(summary, "text")
	if err != nil {
		t.Fatalf("Format() = %v", err)
	}

	for _, want := range []string{
		"Role: Backend Engineer",
		"Company: Acme",
		"- Go (3+ years)",
		"- SQL",
		"- microservices (high)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatAppliesToAnyType(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleRanking(), "json")
	if err != nil {
		t.Fatalf("Format() = %v", err)
	}

	var decoded candidate.Ranking
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ValidCount != 2 || len(decoded.Ranked) != 3 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleRanking(), "xml"); err == nil {
		t.Error("Format() = nil, want error for unregistered format")
	}
}
