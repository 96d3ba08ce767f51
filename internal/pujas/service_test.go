package pujas

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"someswar-temple/internal/models"
)

type fakeRepo struct {
	pujas     map[string]models.Puja
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{pujas: make(map[string]models.Puja)}
}

func (f *fakeRepo) List(ctx context.Context) ([]models.Puja, error) {
	f.listCalls++
	items := make([]models.Puja, 0, len(f.pujas))
	for _, p := range f.pujas {
		items = append(items, p)
	}
	return items, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (models.Puja, error) {
	p, ok := f.pujas[id]
	if !ok {
		return models.Puja{}, mongo.ErrNoDocuments
	}
	return p, nil
}

func (f *fakeRepo) Create(ctx context.Context, puja models.Puja) error {
	f.pujas[puja.ID] = puja
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, puja models.Puja) (models.Puja, error) {
	existing, ok := f.pujas[id]
	if !ok {
		return models.Puja{}, mongo.ErrNoDocuments
	}
	puja.ID = id
	puja.CreatedAt = existing.CreatedAt
	f.pujas[id] = puja
	return puja, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.pujas[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.pujas, id)
	return nil
}

type fakeCache struct {
	entries map[string][]byte
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, ok := f.entries[key]
	return raw, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	delete(f.entries, key)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListUsesCache(t *testing.T) {
	repo := newFakeRepo()
	repo.pujas["p1"] = models.Puja{ID: "p1", Name: "Rudrabhishek", Price: 1100}
	cacheStore := newFakeCache()
	s := NewService(repo, cacheStore, 5*time.Minute, discardLogger())

	first, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	if len(first) != 1 || repo.listCalls != 1 {
		t.Fatalf("expected one repo hit, got %d", repo.listCalls)
	}
	if _, ok := cacheStore.entries["pujas:all"]; !ok {
		t.Fatalf("catalog should be cached under pujas:all")
	}

	second, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("second list should come from cache, repo hits %d", repo.listCalls)
	}
	if len(second) != 1 || second[0].Name != "Rudrabhishek" {
		t.Fatalf("unexpected cached catalog %v", second)
	}
}

func TestCorruptCacheEntryDropped(t *testing.T) {
	repo := newFakeRepo()
	repo.pujas["p1"] = models.Puja{ID: "p1", Name: "Rudrabhishek"}
	cacheStore := newFakeCache()
	cacheStore.entries["pujas:all"] = []byte("not json")
	s := NewService(repo, cacheStore, 5*time.Minute, discardLogger())

	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || repo.listCalls != 1 {
		t.Fatalf("corrupt entry should fall through to the repo")
	}

	var cached []models.Puja
	if err := json.Unmarshal(cacheStore.entries["pujas:all"], &cached); err != nil {
		t.Fatalf("cache should be repopulated with valid json: %v", err)
	}
}

func TestWritesInvalidateCache(t *testing.T) {
	repo := newFakeRepo()
	cacheStore := newFakeCache()
	s := NewService(repo, cacheStore, 5*time.Minute, discardLogger())

	created, err := s.Create(context.Background(), UpsertRequest{Name: "Ganesh Puja", Price: 751})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(cacheStore.deletes) != 1 || cacheStore.deletes[0] != "pujas:all" {
		t.Fatalf("create should invalidate the list cache, got %v", cacheStore.deletes)
	}

	if _, err := s.Update(context.Background(), created.ID, UpsertRequest{Name: "Ganesh Puja", Price: 801}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(cacheStore.deletes) != 3 {
		t.Fatalf("every write should invalidate, got %v", cacheStore.deletes)
	}
}

func TestNotFoundMapping(t *testing.T) {
	s := NewService(newFakeRepo(), nil, 5*time.Minute, discardLogger())

	if _, err := s.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Update(context.Background(), "missing", UpsertRequest{Name: "X", Price: 1}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
