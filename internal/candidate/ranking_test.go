package candidate

import (
	"testing"

	"talentscreen/internal/types"
)

func scored(id int64, name string, score float64) RankedCandidate {
	return RankedCandidate{CandidateID: id, Name: name, Score: types.Float64Ptr(score)}
}

func failed(id int64, name, reason string) RankedCandidate {
	return RankedCandidate{CandidateID: id, Name: name, ErrorReason: reason}
}

func TestShortlist(t *testing.T) {
	tests := []struct {
		name            string
		batch           []RankedCandidate
		wantValid       int
		wantCount       int
		wantShortlisted []int64
	}{
		{
			name:            "empty batch shortlists nobody",
			batch:           nil,
			wantValid:       0,
			wantCount:       0,
			wantShortlisted: []int64{},
		},
		{
			name:            "single candidate is always shortlisted",
			batch:           []RankedCandidate{scored(1, "a", 0.3)},
			wantValid:       1,
			wantCount:       1,
			wantShortlisted: []int64{1},
		},
		{
			name: "five valid candidates shortlist one",
			batch: []RankedCandidate{
				scored(1, "a", 0.4),
				scored(2, "b", 0.9),
				scored(3, "c", 0.1),
				scored(4, "d", 0.7),
				scored(5, "e", 0.5),
			},
			wantValid:       5,
			wantCount:       1,
			wantShortlisted: []int64{2},
		},
		{
			name: "eleven valid candidates shortlist two",
			batch: []RankedCandidate{
				scored(1, "a", 0.1), scored(2, "b", 0.2), scored(3, "c", 0.3),
				scored(4, "d", 0.4), scored(5, "e", 0.5), scored(6, "f", 0.6),
				scored(7, "g", 0.7), scored(8, "h", 0.8), scored(9, "i", 0.9),
				scored(10, "j", 0.95), scored(11, "k", 0.05),
			},
			wantValid:       11,
			wantCount:       2,
			wantShortlisted: []int64{10, 9},
		},
		{
			name: "failed candidates are excluded from the valid count",
			batch: []RankedCandidate{
				failed(1, "a", "resume text extraction failed"),
				scored(2, "b", 0.6),
				failed(3, "c", "resume text extraction failed"),
			},
			wantValid:       1,
			wantCount:       1,
			wantShortlisted: []int64{2},
		},
		{
			name: "all failed shortlists nobody",
			batch: []RankedCandidate{
				failed(1, "a", "x"),
				failed(2, "b", "y"),
			},
			wantValid:       0,
			wantCount:       0,
			wantShortlisted: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shortlist(tt.batch)
			if got.ValidCount != tt.wantValid {
				t.Errorf("ValidCount = %d, want %d", got.ValidCount, tt.wantValid)
			}
			if got.ShortlistCount != tt.wantCount {
				t.Errorf("ShortlistCount = %d, want %d", got.ShortlistCount, tt.wantCount)
			}
			if len(got.Shortlisted) != len(tt.wantShortlisted) {
				t.Fatalf("Shortlisted = %v, want %v", got.Shortlisted, tt.wantShortlisted)
			}
			for i, id := range tt.wantShortlisted {
				if got.Shortlisted[i] != id {
					t.Errorf("Shortlisted[%d] = %d, want %d", i, got.Shortlisted[i], id)
				}
			}
			if len(got.Ranked) != len(tt.batch) {
				t.Errorf("Ranked has %d entries, want %d (failed entries stay in the listing)", len(got.Ranked), len(tt.batch))
			}
		})
	}
}

func TestShortlistStableOnTies(t *testing.T) {
	batch := []RankedCandidate{
		scored(1, "first", 0.5),
		scored(2, "second", 0.5),
		scored(3, "third", 0.5),
	}
	got := Shortlist(batch)

	for i, wantID := range []int64{1, 2, 3} {
		if got.Ranked[i].CandidateID != wantID {
			t.Errorf("Ranked[%d].CandidateID = %d, want %d (insertion order on ties)", i, got.Ranked[i].CandidateID, wantID)
		}
	}
	if len(got.Shortlisted) != 1 || got.Shortlisted[0] != 1 {
		t.Errorf("Shortlisted = %v, want [1]", got.Shortlisted)
	}
}

func TestShortlistDoesNotMutateInput(t *testing.T) {
	batch := []RankedCandidate{
		scored(1, "low", 0.1),
		scored(2, "high", 0.9),
	}
	Shortlist(batch)
	if batch[0].CandidateID != 1 || batch[1].CandidateID != 2 {
		t.Error("Shortlist reordered the caller's slice")
	}
}
