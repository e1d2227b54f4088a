package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"crewFit/domain"
)

type fakeResultRepo struct {
	saved      []domain.RecommendationResult
	failUserID int64
}

func (f *fakeResultRepo) SaveResult(_ context.Context, result domain.RecommendationResult) error {
	if f.failUserID != 0 && result.UserID == f.failUserID {
		return fmt.Errorf("insert failed for user %d", result.UserID)
	}
	f.saved = append(f.saved, result)
	return nil
}

func (f *fakeResultRepo) FindLatestByUser(_ context.Context, userID int64) (*domain.RecommendationResult, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].UserID == userID {
			return &f.saved[i], nil
		}
	}
	return nil, nil
}

func (f *fakeResultRepo) byUser(userID int64) *domain.RecommendationResult {
	r, _ := f.FindLatestByUser(context.Background(), userID)
	return r
}

type fakeCache struct {
	store  map[int64]domain.RecommendationResult
	gets   int
	stores int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[int64]domain.RecommendationResult)}
}

func (f *fakeCache) StoreLatest(_ context.Context, result domain.RecommendationResult) error {
	f.stores++
	f.store[result.UserID] = result
	return nil
}

func (f *fakeCache) GetLatest(_ context.Context, userID int64) (*domain.RecommendationResult, error) {
	f.gets++
	if r, ok := f.store[userID]; ok {
		return &r, nil
	}
	return nil, nil
}

func newTestService(repo ResultRepository, cache ResultCache) *Service {
	return NewService(repo, cache, rand.New(rand.NewSource(1)), Config{})
}

func sameProfile() domain.ScoreProfile {
	return domain.ScoreProfile{MType: 1, Type: 2, Age: 25, BasicScore: 50, ActivityScore: 30, IntakeScore: 200}
}

func TestRecommendBatch_ContentWeightExact(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestService(repo, nil)

	// identical profiles and sports: normalization degenerates to zeros,
	// collaborative similarity is exactly 1 and the single member's cosine
	// is exactly 1, so content contributes exactly its weight
	users := []domain.User{
		{UserID: 1, Score: sameProfile(), FavoriteSports: []int{1, 2}},
		{UserID: 2, Score: sameProfile(), FavoriteSports: []int{1, 2}, CrewList: []int64{10}},
	}
	crews := []domain.Crew{
		{CrewID: 10, Score: sameProfile(), CrewSports: 1},
	}

	summary, err := svc.RecommendBatch(context.Background(), users, crews)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.UsersProcessed != 2 || summary.UsersFailed != 0 {
		t.Fatalf("summary %+v, want 2 processed / 0 failed", summary)
	}

	r1 := repo.byUser(1)
	if r1 == nil || len(r1.Crews) != 1 {
		t.Fatalf("user 1 result: %+v, want exactly one crew", r1)
	}
	rec := r1.Crews[0]
	if rec.CrewID != 10 {
		t.Errorf("recommended crew %d, want 10", rec.CrewID)
	}
	if math.Abs(rec.Collaborative-1) > 1e-12 {
		t.Errorf("collaborative %v, want 1", rec.Collaborative)
	}
	if math.Abs(rec.Content-0.3) > 1e-12 {
		t.Errorf("content %v, want 0.3", rec.Content)
	}
	if math.Abs(rec.Similarity-1.0) > 1e-12 {
		t.Errorf("combined %v, want 1.0", rec.Similarity)
	}

	// user 2 already belongs to the only crew
	r2 := repo.byUser(2)
	if r2 == nil || len(r2.Crews) != 0 {
		t.Fatalf("user 2 result: %+v, want empty crew list", r2)
	}
}

func TestRecommendBatch_ExcludesJoinedCrews(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestService(repo, nil)

	nearProfile := sameProfile()
	nearProfile.Age = 26

	users := []domain.User{
		{UserID: 1, Score: sameProfile(), FavoriteSports: []int{3}, CrewList: []int64{10}},
		{UserID: 2, Score: nearProfile, FavoriteSports: []int{4}},
	}
	crews := []domain.Crew{
		{CrewID: 10, Score: sameProfile()},
		{CrewID: 11, Score: sameProfile()},
	}

	if _, err := svc.RecommendBatch(context.Background(), users, crews); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := repo.byUser(1)
	if r == nil {
		t.Fatal("no result saved for user 1")
	}
	for _, rec := range r.Crews {
		if rec.CrewID == 10 {
			t.Errorf("joined crew 10 was recommended")
		}
	}
	if len(r.Crews) != 1 || r.Crews[0].CrewID != 11 {
		t.Errorf("user 1 crews %+v, want only crew 11", r.Crews)
	}
}

func TestRecommendBatch_PerUserFailureContinues(t *testing.T) {
	repo := &fakeResultRepo{failUserID: 2}
	svc := newTestService(repo, nil)

	users := []domain.User{
		{UserID: 1, Score: sameProfile(), FavoriteSports: []int{1}},
		{UserID: 2, Score: sameProfile(), FavoriteSports: []int{2}},
		{UserID: 3, Score: sameProfile(), FavoriteSports: []int{3}},
	}
	crews := []domain.Crew{{CrewID: 10, Score: sameProfile()}}

	summary, err := svc.RecommendBatch(context.Background(), users, crews)
	if err != nil {
		t.Fatalf("per-user failure must not fail the batch: %v", err)
	}
	if summary.UsersProcessed != 2 || summary.UsersFailed != 1 {
		t.Fatalf("summary %+v, want 2 processed / 1 failed", summary)
	}
	if len(summary.Failures) != 1 || summary.Failures[0].UserID != 2 {
		t.Fatalf("failures %+v, want exactly user 2", summary.Failures)
	}
	if repo.byUser(1) == nil || repo.byUser(3) == nil {
		t.Error("results for surviving users were not saved")
	}
}

func TestRecommendBatch_InvalidSportAbortsBatch(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestService(repo, nil)

	users := []domain.User{
		{UserID: 1, Score: sameProfile(), FavoriteSports: []int{99}},
	}

	_, err := svc.RecommendBatch(context.Background(), users, nil)
	if !errors.Is(err, ErrInvalidSportID) {
		t.Fatalf("got %v, want ErrInvalidSportID", err)
	}
	if len(repo.saved) != 0 {
		t.Errorf("%d results saved from an aborted batch", len(repo.saved))
	}
}

func TestRecommendBatch_DuplicateUserID(t *testing.T) {
	svc := newTestService(&fakeResultRepo{}, nil)

	users := []domain.User{
		{UserID: 7, Score: sameProfile(), FavoriteSports: []int{1}},
		{UserID: 7, Score: sameProfile(), FavoriteSports: []int{2}},
	}

	_, err := svc.RecommendBatch(context.Background(), users, nil)
	if !errors.Is(err, ErrMalformedProfile) {
		t.Fatalf("got %v, want ErrMalformedProfile", err)
	}
}

func TestRecommendBatch_EmptyCrews(t *testing.T) {
	repo := &fakeResultRepo{}
	svc := newTestService(repo, nil)

	users := []domain.User{{UserID: 1, Score: sameProfile(), FavoriteSports: []int{1}}}

	summary, err := svc.RecommendBatch(context.Background(), users, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.UsersProcessed != 1 {
		t.Fatalf("summary %+v, want 1 processed", summary)
	}

	r := repo.byUser(1)
	if r == nil || len(r.Crews) != 0 {
		t.Fatalf("result %+v, want empty crew list", r)
	}
}

func TestLatestResult_CacheHitAndBackfill(t *testing.T) {
	repo := &fakeResultRepo{}
	cache := newFakeCache()
	svc := newTestService(repo, cache)

	users := []domain.User{{UserID: 1, Score: sameProfile(), FavoriteSports: []int{1}}}
	crews := []domain.Crew{{CrewID: 10, Score: sameProfile()}}
	if _, err := svc.RecommendBatch(context.Background(), users, crews); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := svc.LatestResult(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil || r.UserID != 1 {
		t.Fatalf("got %+v, want result for user 1", r)
	}

	// cache was populated during the batch; the read must not need the repo
	delete(cache.store, 1)
	storesBefore := cache.stores
	if _, err := svc.LatestResult(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.stores != storesBefore+1 {
		t.Errorf("cache miss did not backfill: stores %d, want %d", cache.stores, storesBefore+1)
	}

	// unknown user: nothing anywhere
	r, err = svc.LatestResult(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Errorf("got %+v for unknown user, want nil", r)
	}
}
