package pujas

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"someswar-temple/internal/cache"
	"someswar-temple/internal/models"
)

var ErrNotFound = errors.New("puja not found")

const listCacheKey = "pujas:all"

type Service struct {
	repo     Repository
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, c cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Service {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Service{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      log,
		now:      time.Now,
	}
}

// List serves the public catalog. Cache problems are logged and ignored; the
// catalog always answers from Mongo when redis is down.
func (s *Service) List(ctx context.Context) ([]models.Puja, error) {
	if raw, ok, err := s.cache.Get(ctx, listCacheKey); err != nil {
		s.log.Warn("pujas list: cache read failed", slog.String("error", err.Error()))
	} else if ok {
		var items []models.Puja
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		s.log.Warn("pujas list: cache entry corrupt, dropping")
		_ = s.cache.Delete(ctx, listCacheKey)
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, listCacheKey, raw, s.cacheTTL); err != nil {
			s.log.Warn("pujas list: cache write failed", slog.String("error", err.Error()))
		}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Puja, error) {
	puja, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Puja{}, ErrNotFound
		}
		return models.Puja{}, err
	}
	return puja, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (models.Puja, error) {
	now := s.now()
	puja := models.Puja{
		ID:        primitive.NewObjectID().Hex(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyRequest(&puja, req)

	if err := s.repo.Create(ctx, puja); err != nil {
		return models.Puja{}, err
	}
	s.invalidate(ctx)
	return puja, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (models.Puja, error) {
	var puja models.Puja
	applyRequest(&puja, req)

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), puja)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Puja{}, ErrNotFound
		}
		return models.Puja{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.log.Warn("pujas: cache invalidation failed", slog.String("error", err.Error()))
	}
}

func applyRequest(puja *models.Puja, req UpsertRequest) {
	puja.Name = strings.TrimSpace(req.Name)
	puja.NameHindi = strings.TrimSpace(req.NameHindi)
	puja.Price = req.Price
	puja.Duration = strings.TrimSpace(req.Duration)
	puja.Description = strings.TrimSpace(req.Description)
	puja.Benefits = trimAll(req.Benefits)
	puja.Requirements = trimAll(req.Requirements)
	puja.Constrains = trimAll(req.Constrains)
	puja.Mode = trimAll(req.Mode)
	puja.Temples = trimAll(req.Temples)
	puja.Image = strings.TrimSpace(req.Image)
}

func trimAll(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
