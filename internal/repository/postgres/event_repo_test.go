package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"allocate/internal/domain"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Name:      "Orientation",
				Location:  "Main Hall",
				Date:      date,
				CreatedAt: now,
				UpdatedAt: now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(name, location, date, created_at, updated_at\)`).
					WithArgs("Orientation", "Main Hall", date, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "db error",
			event: &domain.Event{
				Name:      "Orientation",
				Location:  "Main Hall",
				Date:      date,
				CreatedAt: now,
				UpdatedAt: now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, location, date, created_at, updated_at`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "date", "created_at", "updated_at"}).
						AddRow("ev-1", "Orientation", "Main Hall", date, now, now))
			},
			want: &domain.Event{
				ID:        "ev-1",
				Name:      "Orientation",
				Location:  "Main Hall",
				Date:      date,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, location, date, created_at, updated_at`).
					WithArgs("ev-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no filter orders by date desc", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, location, date, created_at, updated_at\s+FROM events\s+ORDER BY date DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "date", "created_at", "updated_at"}).
				AddRow("ev-2", "Career Fair", "Gym", now.AddDate(0, 1, 0), now, now).
				AddRow("ev-1", "Orientation", "Main Hall", now, now, now))

		repo := NewEventRepository(db)
		events, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, "ev-2", events[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filter is passed as an escaped literal", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE name ILIKE`).
			WithArgs(`50\% off`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "date", "created_at", "updated_at"}))

		repo := NewEventRepository(db)
		events, err := repo.List(ctx, "50% off")
		require.NoError(t, err)
		require.Empty(t, events)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is a non-nil slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM events`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "date", "created_at", "updated_at"}))

		repo := NewEventRepository(db)
		events, err := repo.List(ctx, "")
		require.NoError(t, err)
		require.NotNil(t, events)
		require.Empty(t, events)
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	location := "Annex"

	t.Run("partial update sets only supplied fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), location = \$1\s+WHERE id = \$2`).
			WithArgs("Annex", "ev-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "date", "created_at", "updated_at"}).
				AddRow("ev-1", "Orientation", "Annex", date, now, now))

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, "ev-1", nil, &location, nil)
		require.NoError(t, err)
		require.Equal(t, "Annex", got.Location)
		require.Equal(t, "Orientation", got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET`).
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		_, err = repo.Update(ctx, "ev-missing", nil, &location, nil)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no fields falls back to fetch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, location, date, created_at, updated_at`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "date", "created_at", "updated_at"}).
				AddRow("ev-1", "Orientation", "Main Hall", date, now, now))

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, "ev-1", nil, nil, nil)
		require.NoError(t, err)
		require.Equal(t, "Main Hall", got.Location)
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewEventRepository(db)
		require.NoError(t, repo.Delete(ctx, "ev-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent row maps to ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs("ev-missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEventRepository(db)
		require.ErrorIs(t, repo.Delete(ctx, "ev-missing"), domain.ErrNotFound)
	})
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, escapeLike(tt.in))
	}
}
