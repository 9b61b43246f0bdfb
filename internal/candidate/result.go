package candidate

import "talentscreen/internal/types"

// AnalysisResult is the complete outcome of analyzing one candidate record.
// Both documents and the score are committed together or not at all.
type AnalysisResult struct {
	CandidateDoc   *types.CandidateAnalysis
	InterviewerDoc *types.InterviewerAnalysis
	FinalScore     float64
}
