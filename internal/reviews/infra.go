package reviews

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// exchangeRow mirrors the reviews table.
type exchangeRow struct {
	ID           int64     `db:"id"`
	OriginalText string    `db:"original_text"`
	ResponseText string    `db:"response_text"`
	Tone         string    `db:"tone"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r exchangeRow) toExchange() Exchange {
	return Exchange{
		ID:           r.ID,
		OriginalText: r.OriginalText,
		ResponseText: r.ResponseText,
		Tone:         Tone(r.Tone),
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

type repo struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewRepo(db *sqlx.DB) Repo {
	return &repo{db: db, now: time.Now}
}

func (r *repo) Create(ctx context.Context, originalText, responseText string, tone Tone) (Exchange, error) {
	// Microseconds match Postgres timestamp precision, so the returned value equals the stored one.
	createdAt := r.now().UTC().Truncate(time.Microsecond)

	var id int64
	err := r.db.GetContext(ctx, &id, r.db.Rebind(`
		INSERT INTO reviews (original_text, response_text, tone, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`),
		originalText,
		responseText,
		string(tone),
		createdAt,
	)
	if err != nil {
		return Exchange{}, &StorageError{Op: "create", Err: err}
	}

	return Exchange{
		ID:           id,
		OriginalText: originalText,
		ResponseText: responseText,
		Tone:         tone,
		CreatedAt:    createdAt,
	}, nil
}

func (r *repo) List(ctx context.Context) ([]Exchange, error) {
	var rows []exchangeRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, original_text, response_text, tone, created_at
		FROM reviews
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	out := make([]Exchange, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toExchange())
	}

	return out, nil
}
