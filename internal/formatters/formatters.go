package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"talentscreen/internal/candidate"
	"talentscreen/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "Ranking", &RankingTextFormatter{})
	registry.RegisterFormatter("text", "JDSummary", &JDSummaryTextFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case candidate.Ranking:
		return "Ranking"
	case *types.JDSummary:
		return "JDSummary"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// RankingTextFormatter renders a batch ranking as a readable table
type RankingTextFormatter struct{}

func (rtf *RankingTextFormatter) Format(data any) (string, error) {
	ranking, ok := data.(candidate.Ranking)
	if !ok {
		return "", fmt.Errorf("expected Ranking, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE RANKING ===\n\n")
	output.WriteString(fmt.Sprintf("Scored candidates: %d\n", ranking.ValidCount))
	output.WriteString(fmt.Sprintf("Shortlisted: %d\n\n", ranking.ShortlistCount))

	shortlisted := make(map[int64]bool, len(ranking.Shortlisted))
	for _, id := range ranking.Shortlisted {
		shortlisted[id] = true
	}

	for i, rc := range ranking.Ranked {
		marker := "  "
		if shortlisted[rc.CandidateID] {
			marker = "* "
		}
		if rc.Score != nil {
			output.WriteString(fmt.Sprintf("%s%2d. %s (id %d) score %.2f\n",
				marker, i+1, rc.Name, rc.CandidateID, *rc.Score))
		} else {
			output.WriteString(fmt.Sprintf("%s%2d. %s (id %d) failed: %s\n",
				marker, i+1, rc.Name, rc.CandidateID, rc.ErrorReason))
		}
	}

	if len(ranking.Shortlisted) > 0 {
		output.WriteString("\n* shortlisted\n")
	}

	return output.String(), nil
}

func (rtf *RankingTextFormatter) SupportedType() string {
	return "Ranking"
}

// JDSummaryTextFormatter renders a JD summary for terminal reading
type JDSummaryTextFormatter struct{}

func (jtf *JDSummaryTextFormatter) Format(data any) (string, error) {
	summary, ok := data.(*types.JDSummary)
	if !ok {
		return "", fmt.Errorf("expected *JDSummary, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB SUMMARY ===\n\n")
	if summary.JobMetadata != nil {
		output.WriteString(fmt.Sprintf("Role: %s\n", summary.JobMetadata.JobName))
		output.WriteString(fmt.Sprintf("Company: %s\n", summary.JobMetadata.CompanyName))
		if summary.JobMetadata.SeniorityLevel != "" {
			output.WriteString(fmt.Sprintf("Seniority: %s\n", summary.JobMetadata.SeniorityLevel))
		}
		output.WriteString("\n")
	}

	output.WriteString(summary.JobSummary)
	output.WriteString("\n")

	if summary.JobRequirements != nil && len(summary.JobRequirements.MustHaveSkills) > 0 {
		output.WriteString("\n=== MUST-HAVE SKILLS ===\n")
		for _, skill := range summary.JobRequirements.MustHaveSkills {
			if skill.YearsExperienceRequired > 0 {
				output.WriteString(fmt.Sprintf("- %s (%.0f+ years)\n", skill.SkillName, skill.YearsExperienceRequired))
			} else {
				output.WriteString(fmt.Sprintf("- %s\n", skill.SkillName))
			}
		}
	}

	if len(summary.Keywords) > 0 {
		output.WriteString("\n=== KEYWORDS ===\n")
		for _, kw := range summary.Keywords {
			if kw.Importance != "" {
				output.WriteString(fmt.Sprintf("- %s (%s)\n", kw.Term, kw.Importance))
			} else {
				output.WriteString(fmt.Sprintf("- %s\n", kw.Term))
			}
		}
	}

	return output.String(), nil
}

func (jtf *JDSummaryTextFormatter) SupportedType() string {
	return "JDSummary"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
