package candidate

import "sort"

// RankedCandidate is one batch member's ranking input. A nil Score marks a
// candidate whose extraction or analysis failed entirely; such entries stay
// in the ranked output flagged by ErrorReason but are excluded from the valid
// count and from shortlist consideration.
type RankedCandidate struct {
	CandidateID int64    `json:"candidate_id"`
	Name        string   `json:"candidate_name"`
	Score       *float64 `json:"score"`
	ErrorReason string   `json:"error,omitempty"`
}

// Ranking is the outcome of the bulk shortlist policy for one batch.
type Ranking struct {
	Ranked         []RankedCandidate `json:"ranked_candidates"`
	ValidCount     int               `json:"total_processed"`
	ShortlistCount int               `json:"shortlisted_count"`
	Shortlisted    []int64           `json:"shortlisted_ids"`
}

// shortlistFraction is the share of a valid batch that gets shortlisted,
// never fewer than one candidate when any scored at all.
const shortlistFraction = 0.2

// Shortlist ranks a just-analyzed batch and selects the top slice.
// Ordering is by score descending; ties and error-flagged entries keep their
// relative insertion order (stable sort, nil scores rank as zero).
func Shortlist(batch []RankedCandidate) Ranking {
	ranked := make([]RankedCandidate, len(batch))
	copy(ranked, batch)

	scoreOrZero := func(rc RankedCandidate) float64 {
		if rc.Score == nil {
			return 0
		}
		return *rc.Score
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreOrZero(ranked[i]) > scoreOrZero(ranked[j])
	})

	var valid []RankedCandidate
	for _, rc := range ranked {
		if rc.Score != nil {
			valid = append(valid, rc)
		}
	}

	count := 0
	if len(valid) > 0 {
		count = int(float64(len(valid)) * shortlistFraction)
		if count < 1 {
			count = 1
		}
	}

	shortlisted := make([]int64, 0, count)
	for _, rc := range valid[:count] {
		shortlisted = append(shortlisted, rc.CandidateID)
	}

	return Ranking{
		Ranked:         ranked,
		ValidCount:     len(valid),
		ShortlistCount: count,
		Shortlisted:    shortlisted,
	}
}
