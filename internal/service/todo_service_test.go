package service

import (
	"context"
	"errors"
	"testing"

	"todoapi/internal/repo"
)

func TestTodoCreateDefaults(t *testing.T) {
	svc := NewTodoService(repo.NewMemoryTodoRepo(), nil)
	ctx := context.Background()

	got, err := svc.Create(ctx, 0, 0, "  buy milk  ", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("ID: got %d, want 1", got.ID)
	}
	if got.Task != "buy milk" {
		t.Errorf("Task: got %q, want trimmed %q", got.Task, "buy milk")
	}
	if got.Done {
		t.Error("Done: got true, want false")
	}
}

func TestTodoUpdateReplacesBothFields(t *testing.T) {
	svc := NewTodoService(repo.NewMemoryTodoRepo(), nil)
	ctx := context.Background()

	created, _ := svc.Create(ctx, 0, 0, "buy milk", false)

	updated, err := svc.Update(ctx, 0, created.ID, "buy bread", true)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Task != "buy bread" || !updated.Done {
		t.Errorf("Update: got %+v", updated)
	}

	list, _ := svc.List(ctx, 0)
	if len(list) != 1 {
		t.Fatalf("List: got %d records, want 1", len(list))
	}
	if list[0].Task != "buy bread" || !list[0].Done {
		t.Errorf("List after update: got %+v", list[0])
	}
}

func TestTodoUpdateMissing(t *testing.T) {
	svc := NewTodoService(repo.NewMemoryTodoRepo(), nil)

	if _, err := svc.Update(context.Background(), 0, 99, "x", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update missing: got %v, want ErrNotFound", err)
	}
}

func TestTodoDelete(t *testing.T) {
	svc := NewTodoService(repo.NewMemoryTodoRepo(), nil)
	ctx := context.Background()

	created, _ := svc.Create(ctx, 0, 0, "buy milk", false)

	if err := svc.Delete(ctx, 0, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, _ := svc.List(ctx, 0)
	if len(list) != 0 {
		t.Errorf("List after delete: got %d records, want 0", len(list))
	}
	if err := svc.Delete(ctx, 0, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: got %v, want ErrNotFound", err)
	}
}

func TestTodoOwnerIsolation(t *testing.T) {
	svc := NewTodoService(repo.NewMemoryTodoRepo(), nil)
	ctx := context.Background()

	mine, _ := svc.Create(ctx, 1, 0, "mine", false)

	// Another owner's update and delete behave like the record is absent.
	if _, err := svc.Update(ctx, 2, mine.ID, "stolen", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign Update: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 2, mine.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign Delete: got %v, want ErrNotFound", err)
	}
	list, _ := svc.List(ctx, 2)
	if len(list) != 0 {
		t.Errorf("foreign List: got %d records, want 0", len(list))
	}

	// The record is untouched for its owner.
	own, _ := svc.List(ctx, 1)
	if len(own) != 1 || own[0].Task != "mine" || own[0].Done {
		t.Errorf("owner List: got %+v", own)
	}
}
