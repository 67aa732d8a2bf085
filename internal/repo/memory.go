package repo

import (
	"context"
	"sync"
	"time"

	dom "todoapi/internal/domain"

	"github.com/jackc/pgx/v5"
)

// MemoryTodoRepo is the in-memory TodoRepo used by the non-persisted variant
// and by tests. Records live in insertion order and lookups are a linear
// scan. Missing records surface as pgx.ErrNoRows so the service layer maps
// them the same way for every store.
type MemoryTodoRepo struct {
	mu     sync.Mutex
	todos  []dom.Todo
	nextID int64
}

// NewMemoryTodoRepo returns an empty in-memory store.
func NewMemoryTodoRepo() *MemoryTodoRepo {
	return &MemoryTodoRepo{nextID: 1}
}

// Create appends the record. A caller-supplied non-zero ID is kept as-is and
// its uniqueness is not enforced; otherwise the next counter value is
// assigned.
func (r *MemoryTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ID == 0 {
		t.ID = r.nextID
		r.nextID++
	} else if t.ID >= r.nextID {
		r.nextID = t.ID + 1
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.todos = append(r.todos, t)
	return t, nil
}

func (r *MemoryTodoRepo) GetByID(_ context.Context, ownerID, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.todos {
		if t.ID == id && visible(t, ownerID) {
			return t, nil
		}
	}
	return dom.Todo{}, pgx.ErrNoRows
}

func (r *MemoryTodoRepo) List(_ context.Context, ownerID int64) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []dom.Todo
	for _, t := range r.todos {
		if visible(t, ownerID) {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *MemoryTodoRepo) Update(_ context.Context, ownerID, id int64, task string, done bool) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id && visible(r.todos[i], ownerID) {
			r.todos[i].Task = task
			r.todos[i].Done = done
			r.todos[i].UpdatedAt = time.Now().UTC()
			return r.todos[i], nil
		}
	}
	return dom.Todo{}, pgx.ErrNoRows
}

func (r *MemoryTodoRepo) Delete(_ context.Context, ownerID, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].ID == id && visible(r.todos[i], ownerID) {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func visible(t dom.Todo, ownerID int64) bool {
	return ownerID == 0 || t.OwnerID == ownerID
}
