package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punnatorn6420/Nokair-Platform/internal/storage"
)

func newMockRepository(t *testing.T) (*storage.LayoutRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return storage.NewLayoutRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestLayoutRepository_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data FROM cms_site_layouts WHERE site_slug = \$1`).
					WithArgs("nokair").
					WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"header":{}}`)))
			},
			want: `{"header":{}}`,
		},
		{
			name: "missing row",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data FROM cms_site_layouts`).
					WithArgs("nokair").
					WillReturnRows(sqlmock.NewRows([]string{"data"}))
			},
			wantErr: storage.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo, mock := newMockRepository(t)
			tt.setup(mock)

			got, err := repo.Get(context.Background(), "nokair")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, tt.want, string(got))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLayoutRepository_Get_DatabaseError(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`SELECT data FROM cms_site_layouts`).
		WithArgs("nokair").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Get(context.Background(), "nokair")
	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestLayoutRepository_Upsert(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepository(t)
	mock.ExpectExec(`INSERT INTO cms_site_layouts .* ON CONFLICT \(site_slug\) DO UPDATE`).
		WithArgs("nokair", `{"a":1}`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), "nokair", []byte(`{"a":1}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepository_Upsert_Error(t *testing.T) {
	t.Parallel()

	repo, mock := newMockRepository(t)
	mock.ExpectExec(`INSERT INTO cms_site_layouts`).
		WillReturnError(errors.New("disk full"))

	err := repo.Upsert(context.Background(), "nokair", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert site layout")
}
