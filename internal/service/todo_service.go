package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"todoapi/internal/cache"
	dom "todoapi/internal/domain"
	"todoapi/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var ErrNotFound = errors.New("not found")

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, ownerID, id int64, task string, done bool) (dom.Todo, error) {
	t, err := s.repo.Create(ctx, dom.Todo{
		ID:      id,
		OwnerID: ownerID,
		Task:    strings.TrimSpace(task),
		Done:    done,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, ownerID)
	return t, nil
}

func (s *TodoService) List(ctx context.Context, ownerID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(ownerID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, ownerID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, ownerID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, ownerID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx, ownerID)
}

// Update replaces both mutable fields. There is no partial update: callers
// always supply task and done together.
func (s *TodoService) Update(ctx context.Context, ownerID, id int64, task string, done bool) (dom.Todo, error) {
	t, err := s.repo.Update(ctx, ownerID, id, strings.TrimSpace(task), done)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, ownerID)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, ownerID, id int64) error {
	removed, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	s.invalidateCache(ctx, ownerID)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context, ownerID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateList(ctx, ownerID)
	}
}
