package service

import (
	"context"
	"encoding/json"
	"time"

	"notesquiz/internal/cache"
	"notesquiz/internal/domain"
	"notesquiz/internal/dto"
	"notesquiz/internal/logger"
	"notesquiz/internal/quizgen"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizService exposes the application operations consumed by the handlers.
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)
	ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
}

type quizService struct {
	repo     domain.QuizRepository
	cache    domain.Cache // may be nil when caching is disabled
	cacheTTL time.Duration
	group    singleflight.Group
}

// NewQuizService creates a new QuizService instance. cache may be nil, in
// which case every read goes to the repository.
func NewQuizService(repo domain.QuizRepository, quizCache domain.Cache, cacheTTL time.Duration) QuizService {
	return &quizService{
		repo:     repo,
		cache:    quizCache,
		cacheTTL: cacheTTL,
	}
}

// CreateQuiz generates a deterministic quiz from the request notes and
// persists it. Identical notes map to the same quiz id and identical content,
// so creating the same notes twice returns the already-stored record.
// Concurrent creations of the same notes are collapsed onto a single
// generate-and-append via singleflight.
func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := quizgen.Generate(req.Notes, req.Title)
	if err != nil {
		return nil, err
	}

	result, err, _ := s.group.Do(quiz.ID, func() (interface{}, error) {
		existing, err := s.repo.FindByID(ctx, quiz.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
		if err := s.repo.Append(ctx, quiz); err != nil {
			return nil, err
		}
		s.cacheQuiz(ctx, quiz)
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	return dto.NewQuizResponse(result.(*domain.Quiz)), nil
}

// GetQuiz returns the quiz with the given id, serving from the cache when
// possible.
func (s *quizService) GetQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	if cached := s.cachedQuiz(ctx, id); cached != nil {
		return dto.NewQuizResponse(cached), nil
	}

	quiz, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	s.cacheQuiz(ctx, quiz)
	return dto.NewQuizResponse(quiz), nil
}

// ListQuizzes returns the metadata view of every stored quiz.
func (s *quizService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	quizzes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	metas := make([]dto.QuizMetaResponse, len(quizzes))
	for i, q := range quizzes {
		metas[i] = dto.NewQuizMetaResponse(q)
	}
	return &dto.QuizListResponse{Quizzes: metas}, nil
}

func quizCacheKey(id string) string {
	return cache.GenerateCacheKey("quiz", "record", id)
}

// cacheQuiz stores the quiz in the cache. Failures are logged and ignored:
// the cache is an optimization, not a source of truth.
func (s *quizService) cacheQuiz(ctx context.Context, quiz *domain.Quiz) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(quiz)
	if err != nil {
		logger.Get().Warn("failed to marshal quiz for cache", zap.String("quiz_id", quiz.ID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, quizCacheKey(quiz.ID), string(payload), s.cacheTTL); err != nil {
		logger.Get().Warn("failed to cache quiz", zap.String("quiz_id", quiz.ID), zap.Error(err))
	}
}

// cachedQuiz returns the cached quiz or nil on miss, decode failure or cache error.
func (s *quizService) cachedQuiz(ctx context.Context, id string) *domain.Quiz {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, quizCacheKey(id))
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("cache lookup failed", zap.String("quiz_id", id), zap.Error(err))
		}
		return nil
	}
	var quiz domain.Quiz
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		logger.Get().Warn("failed to decode cached quiz", zap.String("quiz_id", id), zap.Error(err))
		return nil
	}
	return &quiz
}
