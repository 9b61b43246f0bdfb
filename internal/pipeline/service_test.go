package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentscreen/internal/candidate"
	"talentscreen/internal/errors"
	"talentscreen/internal/queue"
	"talentscreen/internal/types"
)

// fakeServiceStore scripts the orchestration persistence surface.
type fakeServiceStore struct {
	nextID      int64
	createdExt  []string
	failedIDs   map[int64]string
	transitions []candidate.Status
	updateErr   error
	resumeText  string
	resumeErr   error

	pending     int
	batch       []candidate.RankedCandidate
	shortlisted []int64
}

func newFakeServiceStore() *fakeServiceStore {
	return &fakeServiceStore{
		failedIDs:  map[int64]string{},
		resumeText: "experienced engineer",
	}
}

func (f *fakeServiceStore) LoadResumeText(ctx context.Context, ref candidate.Ref) (string, error) {
	if f.resumeErr != nil {
		return "", f.resumeErr
	}
	return f.resumeText, nil
}

func (f *fakeServiceStore) CreateApplication(ctx context.Context, jobID, userID int64) (int64, error) {
	f.nextID++
	return f.nextID, nil
}

func (f *fakeServiceStore) CreateExternal(ctx context.Context, jobID int64, name, email, rawResumeText string) (int64, error) {
	f.nextID++
	f.createdExt = append(f.createdExt, name)
	return f.nextID, nil
}

func (f *fakeServiceStore) UpdateStatus(ctx context.Context, ref candidate.Ref, from, to candidate.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.transitions = append(f.transitions, to)
	return nil
}

func (f *fakeServiceStore) MarkAnalysisFailed(ctx context.Context, candidateID int64, reason string) error {
	f.failedIDs[candidateID] = reason
	return nil
}

func (f *fakeServiceStore) LoadBatch(ctx context.Context, jobID int64) ([]candidate.RankedCandidate, error) {
	return f.batch, nil
}

func (f *fakeServiceStore) CountPending(ctx context.Context, jobID int64) (int, error) {
	return f.pending, nil
}

func (f *fakeServiceStore) MarkShortlisted(ctx context.Context, jobID int64, ids []int64) error {
	f.shortlisted = ids
	return nil
}

// fakeEnqueuer records published work items.
type fakeEnqueuer struct {
	items []queue.WorkItem
	err   error
}

func (f *fakeEnqueuer) Enqueue(ctx context.Context, item queue.WorkItem) error {
	if f.err != nil {
		return f.err
	}
	f.items = append(f.items, item)
	return nil
}

// fakeNotifier records decision notifications.
type fakeNotifier struct {
	approved []int64
	rejected []int64
}

func (f *fakeNotifier) ApplicationApproved(ctx context.Context, userID, jobID int64) {
	f.approved = append(f.approved, userID)
}

func (f *fakeNotifier) ApplicationRejected(ctx context.Context, userID, jobID int64) {
	f.rejected = append(f.rejected, userID)
}

func newTestService() (*Service, *fakeServiceStore, *fakeEnqueuer, *fakeNotifier) {
	store := newFakeServiceStore()
	enq := &fakeEnqueuer{}
	notifier := &fakeNotifier{}
	return NewService(store, enq, notifier, testLogger()), store, enq, notifier
}

func TestApproveNotifiesAndEnqueues(t *testing.T) {
	svc, store, enq, notifier := newTestService()

	err := svc.Approve(context.Background(), 7, 42)
	require.NoError(t, err)

	assert.Equal(t, []candidate.Status{candidate.StatusApproved}, store.transitions)
	assert.Equal(t, []int64{42}, notifier.approved)
	require.Len(t, enq.items, 1)
	assert.Equal(t, queue.WorkItem{Kind: candidate.KindInternal, JobID: 7, UserID: 42}, enq.items[0])
}

func TestApproveStandsWhenEnqueueFails(t *testing.T) {
	svc, store, enq, notifier := newTestService()
	enq.err = errors.NewQueueError(errors.ErrCodePublishFailed, "broker down", nil)

	err := svc.Approve(context.Background(), 7, 42)
	require.Error(t, err)

	// The approval and the notification are durable before the enqueue.
	assert.Equal(t, []candidate.Status{candidate.StatusApproved}, store.transitions)
	assert.Equal(t, []int64{42}, notifier.approved)
}

func TestApproveRefusedWithoutResumeText(t *testing.T) {
	svc, store, enq, notifier := newTestService()
	store.resumeErr = errors.NewPersistenceError(errors.ErrCodeRecordNotFound,
		"resume text for user 42 not found", nil)

	err := svc.Approve(context.Background(), 7, 42)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeResumeTextMissing))

	// The application stays in requested; nothing was notified or enqueued.
	assert.Empty(t, store.transitions)
	assert.Empty(t, notifier.approved)
	assert.Empty(t, enq.items)
}

func TestApproveRefusedOnIllegalState(t *testing.T) {
	svc, _, enq, notifier := newTestService()
	svc.store.(*fakeServiceStore).updateErr = &candidate.IllegalTransitionError{
		Kind: candidate.KindInternal,
		From: candidate.StatusRejected,
		To:   candidate.StatusApproved,
	}

	err := svc.Approve(context.Background(), 7, 42)
	require.Error(t, err)
	assert.Empty(t, enq.items, "no work item for a refused approval")
	assert.Empty(t, notifier.approved, "no notification for a refused approval")
}

func TestRejectNotifiesWithoutEnqueue(t *testing.T) {
	svc, store, enq, notifier := newTestService()

	err := svc.Reject(context.Background(), 7, 42)
	require.NoError(t, err)

	assert.Equal(t, []candidate.Status{candidate.StatusRejected}, store.transitions)
	assert.Equal(t, []int64{42}, notifier.rejected)
	assert.Empty(t, enq.items, "rejected applications are never analyzed")
}

func TestBulkUploadMarksBlankResumesFailed(t *testing.T) {
	svc, store, enq, _ := newTestService()

	uploads := []ExternalUpload{
		{Name: "Ana", Email: "ana@example.com", ResumeText: "experienced engineer"},
		{Name: "Blank", Email: "blank@example.com", ResumeText: "   \n\t"},
		{Name: "Ben", Email: "ben@example.com", ResumeText: "another resume"},
	}

	ids, err := svc.BulkUpload(context.Background(), 7, uploads)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	// Only the two readable resumes are enqueued.
	require.Len(t, enq.items, 2)
	assert.Equal(t, ids[0], enq.items[0].CandidateID)
	assert.Equal(t, ids[2], enq.items[1].CandidateID)
	for _, item := range enq.items {
		assert.Equal(t, candidate.KindExternal, item.Kind)
		assert.Equal(t, int64(7), item.JobID)
	}

	assert.Equal(t, "resume text extraction failed", store.failedIDs[ids[1]])
}

func TestRankRefusesIncompleteBatch(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.pending = 3

	_, err := svc.Rank(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeBatchIncomplete))
	assert.Nil(t, store.shortlisted, "no promotions for a refused ranking")
}

func TestRankShortlistsAndPersists(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.batch = []candidate.RankedCandidate{
		{CandidateID: 1, Name: "a", Score: types.Float64Ptr(0.4)},
		{CandidateID: 2, Name: "b", Score: types.Float64Ptr(0.9)},
		{CandidateID: 3, Name: "c", Score: types.Float64Ptr(0.2)},
		{CandidateID: 4, Name: "d", ErrorReason: "resume text extraction failed"},
	}

	ranking, err := svc.Rank(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 3, ranking.ValidCount)
	assert.Equal(t, 1, ranking.ShortlistCount)
	assert.Equal(t, []int64{2}, ranking.Shortlisted)
	assert.Equal(t, []int64{2}, store.shortlisted)
	assert.Len(t, ranking.Ranked, 4, "failed entries stay in the listing")
}
