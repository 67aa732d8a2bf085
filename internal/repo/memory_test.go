package repo

import (
	"context"
	"errors"
	"testing"

	dom "todoapi/internal/domain"

	"github.com/jackc/pgx/v5"
)

func TestMemoryCreateAssignsIDs(t *testing.T) {
	r := NewMemoryTodoRepo()
	ctx := context.Background()

	first, err := r.Create(ctx, dom.Todo{Task: "buy milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first ID: got %d, want 1", first.ID)
	}
	second, _ := r.Create(ctx, dom.Todo{Task: "buy bread"})
	if second.ID != 2 {
		t.Errorf("second ID: got %d, want 2", second.ID)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("timestamps not set on create")
	}
}

func TestMemoryCreateKeepsCallerID(t *testing.T) {
	r := NewMemoryTodoRepo()
	ctx := context.Background()

	got, err := r.Create(ctx, dom.Todo{ID: 42, Task: "custom id"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != 42 {
		t.Errorf("ID: got %d, want 42", got.ID)
	}

	// Counter advances past caller-supplied ids.
	next, _ := r.Create(ctx, dom.Todo{Task: "assigned"})
	if next.ID != 43 {
		t.Errorf("next ID: got %d, want 43", next.ID)
	}
}

func TestMemoryGetUpdateDelete(t *testing.T) {
	r := NewMemoryTodoRepo()
	ctx := context.Background()

	created, _ := r.Create(ctx, dom.Todo{Task: "buy milk"})

	got, err := r.GetByID(ctx, 0, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Task != "buy milk" || got.Done {
		t.Errorf("GetByID: got %+v", got)
	}

	updated, err := r.Update(ctx, 0, created.ID, "buy bread", true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Task != "buy bread" || !updated.Done {
		t.Errorf("Update: got %+v", updated)
	}

	ok, err := r.Delete(ctx, 0, created.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if _, err := r.GetByID(ctx, 0, created.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("GetByID after delete: got %v, want pgx.ErrNoRows", err)
	}
	ok, _ = r.Delete(ctx, 0, created.ID)
	if ok {
		t.Error("second Delete reported a removed row")
	}
}

func TestMemoryOwnerScoping(t *testing.T) {
	r := NewMemoryTodoRepo()
	ctx := context.Background()

	mine, _ := r.Create(ctx, dom.Todo{OwnerID: 1, Task: "mine"})
	r.Create(ctx, dom.Todo{OwnerID: 2, Task: "theirs"})

	list, _ := r.List(ctx, 1)
	if len(list) != 1 || list[0].Task != "mine" {
		t.Fatalf("List scoped to owner 1: got %+v", list)
	}

	// A foreign record behaves exactly like a missing one.
	if _, err := r.GetByID(ctx, 2, mine.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("GetByID foreign: got %v, want pgx.ErrNoRows", err)
	}
	if _, err := r.Update(ctx, 2, mine.ID, "stolen", true); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("Update foreign: got %v, want pgx.ErrNoRows", err)
	}
	if ok, _ := r.Delete(ctx, 2, mine.ID); ok {
		t.Error("Delete foreign: reported a removed row")
	}

	// Owner 0 sees everything (unscoped variants).
	all, _ := r.List(ctx, 0)
	if len(all) != 2 {
		t.Errorf("List unscoped: got %d records, want 2", len(all))
	}
}
