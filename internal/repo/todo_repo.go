package repo

import (
	"context"

	dom "todoapi/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo provides todo persistence. ownerID scopes every lookup and
// mutation to the owning user; ownerID 0 disables scoping (in-memory and
// single-user variants). A record owned by someone else is indistinguishable
// from an absent one.
type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, ownerID, id int64) (dom.Todo, error)
	List(ctx context.Context, ownerID int64) ([]dom.Todo, error)
	Update(ctx context.Context, ownerID, id int64, task string, done bool) (dom.Todo, error)
	Delete(ctx context.Context, ownerID, id int64) (bool, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (owner_id, task, done)
		VALUES (NULLIF($1, 0), $2, $3)
		RETURNING id, COALESCE(owner_id, 0), task, done, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.OwnerID, t.Task, t.Done).Scan(
		&out.ID, &out.OwnerID, &out.Task, &out.Done, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) GetByID(ctx context.Context, ownerID, id int64) (dom.Todo, error) {
	query := `
		SELECT id, COALESCE(owner_id, 0), task, done, created_at, updated_at
		FROM todos WHERE id = $1 AND ($2 = 0 OR owner_id = $2)`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(
		&t.ID, &t.OwnerID, &t.Task, &t.Done, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context, ownerID int64) ([]dom.Todo, error) {
	query := `
		SELECT id, COALESCE(owner_id, 0), task, done, created_at, updated_at
		FROM todos WHERE $1 = 0 OR owner_id = $1
		ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Task, &t.Done,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, ownerID, id int64, task string, done bool) (dom.Todo, error) {
	query := `
		UPDATE todos SET task = $3, done = $4, updated_at = NOW()
		WHERE id = $1 AND ($2 = 0 OR owner_id = $2)
		RETURNING id, COALESCE(owner_id, 0), task, done, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, ownerID, task, done).Scan(
		&t.ID, &t.OwnerID, &t.Task, &t.Done, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// Delete removes the row and reports whether one was removed.
func (r *PGTodoRepo) Delete(ctx context.Context, ownerID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND ($2 = 0 OR owner_id = $2)`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
