// Package playlist implements per-user playlists of questions using PostgreSQL.
package playlist

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides playlist persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new playlist repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type itemRow struct {
	PlaylistID    uuid.UUID `db:"playlist_id"`
	QuestionID    uuid.UUID `db:"question_id"`
	QuestionSlug  string    `db:"slug"`
	QuestionTitle string    `db:"title"`
	SortOrder     int       `db:"sort_order"`
	AddedAt       time.Time `db:"added_at"`
}

const playlistColumns = `id, user_id, name, description, created_at, updated_at`

// List returns the user's playlists with their items, ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := db.Query(ctx, `SELECT `+playlistColumns+` FROM playlists WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]domain.Playlist, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("list playlists: %w", err)
		}
		index[p.ID] = len(playlists)
		playlists = append(playlists, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	if len(playlists) == 0 {
		return playlists, nil
	}

	var items []itemRow
	err = pgxscan.Select(ctx, db, &items, `
SELECT pi.playlist_id, pi.question_id, q.slug, q.title, pi.sort_order, pi.added_at
FROM playlist_items pi
JOIN playlists p ON p.id = pi.playlist_id
JOIN questions q ON q.id = pi.question_id
WHERE p.user_id = $1
ORDER BY pi.playlist_id, pi.sort_order`, userID)
	if err != nil {
		return nil, fmt.Errorf("list playlist items: %w", err)
	}

	for _, it := range items {
		i := index[it.PlaylistID]
		playlists[i].Items = append(playlists[i].Items, domain.PlaylistItem{
			QuestionID:    it.QuestionID,
			QuestionSlug:  it.QuestionSlug,
			QuestionTitle: it.QuestionTitle,
			SortOrder:     it.SortOrder,
			AddedAt:       it.AddedAt,
		})
	}
	return playlists, nil
}

// Create inserts a playlist. Returns domain.ErrAlreadyExists when the user
// already has a playlist with that name.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string, description *string) (*domain.Playlist, error) {
	p, err := scanPlaylist(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
INSERT INTO playlists (user_id, name, description) VALUES ($1, $2, $3)
RETURNING `+playlistColumns, userID, name, description))
	if err != nil {
		return nil, postgres.MapError(err, "playlist", name)
	}
	return p, nil
}

// Delete removes a playlist owned by the user.
func (r *Repo) Delete(ctx context.Context, userID, playlistID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM playlists WHERE id = $1 AND user_id = $2`, playlistID, userID)
	if err != nil {
		return postgres.MapError(err, "playlist", playlistID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("playlist %s: %w", playlistID, domain.ErrNotFound)
	}
	return nil
}

// AddItem appends a question to a playlist owned by the user. Adding a
// question that is already in the playlist is a no-op.
func (r *Repo) AddItem(ctx context.Context, userID, playlistID, questionID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `
INSERT INTO playlist_items (playlist_id, question_id, sort_order)
SELECT p.id, $3, coalesce((SELECT max(sort_order) FROM playlist_items WHERE playlist_id = p.id), 0) + 10
FROM playlists p
WHERE p.id = $1 AND p.user_id = $2
ON CONFLICT (playlist_id, question_id) DO NOTHING`, playlistID, userID, questionID)
	if err != nil {
		return postgres.MapError(err, "playlist", playlistID.String())
	}
	if tag.RowsAffected() == 0 {
		return r.ensureOwned(ctx, userID, playlistID)
	}
	return nil
}

// RemoveItem removes a question from a playlist owned by the user.
func (r *Repo) RemoveItem(ctx context.Context, userID, playlistID, questionID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `
DELETE FROM playlist_items pi
USING playlists p
WHERE pi.playlist_id = p.id AND p.id = $1 AND p.user_id = $2 AND pi.question_id = $3`,
		playlistID, userID, questionID)
	if err != nil {
		return postgres.MapError(err, "playlist", playlistID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("playlist item %s/%s: %w", playlistID, questionID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) ensureOwned(ctx context.Context, userID, playlistID uuid.UUID) error {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM playlists WHERE id = $1 AND user_id = $2)`, playlistID, userID).Scan(&exists)
	if err != nil {
		return postgres.MapError(err, "playlist", playlistID.String())
	}
	if !exists {
		return fmt.Errorf("playlist %s: %w", playlistID, domain.ErrNotFound)
	}
	return nil
}

func scanPlaylist(row pgx.Row) (*domain.Playlist, error) {
	var p domain.Playlist
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Items = []domain.PlaylistItem{}
	return &p, nil
}
