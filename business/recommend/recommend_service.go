package recommend

import (
	"context"
	"fmt"
	"time"

	"crewFit/domain"
	"crewFit/pkg/logger"
)

// ---- Repository interfaces ----

type ResultRepository interface {
	SaveResult(ctx context.Context, result domain.RecommendationResult) error
	FindLatestByUser(ctx context.Context, userID int64) (*domain.RecommendationResult, error)
}

// ResultCache keeps the latest result per user for cheap reads. Optional;
// cache failures never fail a batch.
type ResultCache interface {
	StoreLatest(ctx context.Context, result domain.RecommendationResult) error
	GetLatest(ctx context.Context, userID int64) (*domain.RecommendationResult, error)
}

// ---- Usecase / Service ----

type Service struct {
	resultRepo ResultRepository
	cache      ResultCache
	rng        Rand
	cfg        Config
}

func NewService(resultRepo ResultRepository, cache ResultCache, rng Rand, cfg Config) *Service {
	if rng == nil {
		rng = systemRand{}
	}
	if cfg.TotalSports == 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		resultRepo: resultRepo,
		cache:      cache,
		rng:        rng,
		cfg:        cfg,
	}
}

// RecommendBatch scores every user in the batch against every crew they have
// not already joined, ranks the candidates, and persists one result document
// per user. The whole batch is materialized up front: normalization and the
// sport matrix need batch-wide statistics.
//
// A failure on one user is recorded in the summary and the batch continues.
// Normalization and sport-vector failures corrupt every subsequent
// computation and abort the batch.
func (s *Service) RecommendBatch(ctx context.Context, users []domain.User, crews []domain.Crew) (domain.BatchSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.BatchSummary{}, fmt.Errorf("context error: %w", err)
	}

	if err := validateBatch(users, crews); err != nil {
		return domain.BatchSummary{}, err
	}

	userVecs := make([]profileVec, len(users))
	for i, u := range users {
		userVecs[i] = profileVector(u.Score)
	}
	crewVecs := make([]profileVec, len(crews))
	for i, c := range crews {
		crewVecs[i] = profileVector(c.Score)
	}

	// users and crews are scaled as separate batches; their ranges are
	// independent
	userVecs, degUsers := normalizeBatch(userVecs)
	crewVecs, degCrews := normalizeBatch(crewVecs)

	tid := TraceIDFromContext(ctx)
	if degUsers > 0 || degCrews > 0 {
		logger.Debug("degenerate normalization columns",
			"trace_id", tid,
			"user_columns", degUsers,
			"crew_columns", degCrews,
		)
	}

	sportMatrix, err := buildSportMatrix(users, s.cfg.TotalSports)
	if err != nil {
		return domain.BatchSummary{}, err
	}

	members := memberIndex(users)

	crewByID := make(map[int64]domain.Crew, len(crews))
	for _, c := range crews {
		crewByID[c.CrewID] = c
	}

	logger.Debug("crew recommendation batch",
		"trace_id", tid,
		"users", len(users),
		"crews", len(crews),
	)

	var summary domain.BatchSummary
	for i, user := range users {
		if err := s.recommendUser(ctx, i, user, crews, userVecs, crewVecs, sportMatrix, members, crewByID); err != nil {
			logger.Error("crew recommendation failed",
				"trace_id", tid,
				"user_id", user.UserID,
				"error", err,
			)
			RecommendUsersTotal.WithLabelValues("failed").Inc()
			summary.UsersFailed++
			summary.Failures = append(summary.Failures, domain.UserFailure{
				UserID: user.UserID,
				Reason: err.Error(),
			})
			continue
		}
		RecommendUsersTotal.WithLabelValues("processed").Inc()
		summary.UsersProcessed++
	}

	logger.Info("crew recommendation batch complete",
		"trace_id", tid,
		"users", len(users),
		"failed", summary.UsersFailed,
	)

	return summary, nil
}

// recommendUser scores one user against every candidate crew and persists
// the ranked selection. idx is the user's position in the batch; the
// normalized vectors and the sport matrix are indexed by batch position.
func (s *Service) recommendUser(
	ctx context.Context,
	idx int,
	user domain.User,
	crews []domain.Crew,
	userVecs []profileVec,
	crewVecs []profileVec,
	sportMatrix [][]float64,
	members map[int64][]int,
	crewByID map[int64]domain.Crew,
) error {
	// one batched cosine pass per user; the user's own row stays in, its
	// self-similarity only surfaces through crews the user is a member of,
	// and those never become candidates
	cosines := cosineAgainstAll(sportMatrix[idx], sportMatrix)

	joined := make(map[int64]struct{}, len(user.CrewList))
	for _, id := range user.CrewList {
		joined[id] = struct{}{}
	}

	candidates := make([]domain.CrewMatch, 0, len(crews))
	for j, crew := range crews {
		if _, ok := joined[crew.CrewID]; ok {
			continue
		}

		collaborative, err := collaborativeSimilarity(userVecs[idx], crewVecs[j], s.cfg)
		if err != nil {
			return fmt.Errorf("crew %d: %w", crew.CrewID, err)
		}

		content := 0.0
		if idxs := members[crew.CrewID]; len(idxs) > 0 {
			sum := 0.0
			for _, m := range idxs {
				sum += cosines[m]
			}
			content = sum / float64(len(idxs)) * s.cfg.WContent
		}

		candidates = append(candidates, domain.CrewMatch{
			CrewID:        crew.CrewID,
			Combined:      s.cfg.WCollaborative*collaborative + content,
			Collaborative: collaborative,
			Content:       content,
		})
	}

	selected := rankCandidates(candidates, s.cfg, s.rng)

	result := buildResult(user, selected, crewByID)

	if err := s.resultRepo.SaveResult(ctx, result); err != nil {
		return fmt.Errorf("save result: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.StoreLatest(ctx, result); err != nil {
			logger.Warn("result cache store failed",
				"user_id", user.UserID,
				"error", err,
			)
		}
	}

	return nil
}

// LatestResult returns the most recent persisted recommendation for a user,
// consulting the cache first. Returns nil when none exists.
func (s *Service) LatestResult(ctx context.Context, userID int64) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		cached, err := s.cache.GetLatest(ctx, userID)
		if err != nil {
			logger.Warn("result cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	result, err := s.resultRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load latest result: %w", err)
	}

	if result != nil && s.cache != nil {
		if err := s.cache.StoreLatest(ctx, *result); err != nil {
			logger.Warn("result cache backfill failed", "user_id", userID, "error", err)
		}
	}

	return result, nil
}

// ---- helpers ----

func validateBatch(users []domain.User, crews []domain.Crew) error {
	seenUsers := make(map[int64]struct{}, len(users))
	for _, u := range users {
		if u.UserID <= 0 {
			return fmt.Errorf("%w: non-positive user_id %d", ErrMalformedProfile, u.UserID)
		}
		if _, ok := seenUsers[u.UserID]; ok {
			return fmt.Errorf("%w: duplicate user_id %d", ErrMalformedProfile, u.UserID)
		}
		seenUsers[u.UserID] = struct{}{}
	}

	seenCrews := make(map[int64]struct{}, len(crews))
	for _, c := range crews {
		if c.CrewID <= 0 {
			return fmt.Errorf("%w: non-positive crew_id %d", ErrMalformedProfile, c.CrewID)
		}
		if _, ok := seenCrews[c.CrewID]; ok {
			return fmt.Errorf("%w: duplicate crew_id %d", ErrMalformedProfile, c.CrewID)
		}
		seenCrews[c.CrewID] = struct{}{}
	}

	return nil
}

// memberIndex maps each crew id to the batch indices of its member users.
func memberIndex(users []domain.User) map[int64][]int {
	idx := make(map[int64][]int)
	for i, u := range users {
		for _, crewID := range u.CrewList {
			idx[crewID] = append(idx[crewID], i)
		}
	}
	return idx
}

func buildResult(user domain.User, selected []domain.CrewMatch, crewByID map[int64]domain.Crew) domain.RecommendationResult {
	recommended := make([]domain.RecommendedCrew, 0, len(selected))
	for _, match := range selected {
		crew := crewByID[match.CrewID]
		recommended = append(recommended, domain.RecommendedCrew{
			CrewID:        match.CrewID,
			Similarity:    match.Combined,
			Collaborative: match.Collaborative,
			Content:       match.Content,
			Score: domain.ScoreSnapshot{
				BasicScore:    crew.Score.BasicScore,
				ActivityScore: crew.Score.ActivityScore,
				IntakeScore:   crew.Score.IntakeScore,
			},
		})
	}

	return domain.RecommendationResult{
		UserID: user.UserID,
		User: domain.ScoreSnapshot{
			BasicScore:    user.Score.BasicScore,
			ActivityScore: user.Score.ActivityScore,
			IntakeScore:   user.Score.IntakeScore,
		},
		Crews:     recommended,
		CreatedAt: time.Now().UTC(),
	}
}
