package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	companyDomain "github.com/allisson/crewhub/internal/company/domain"
)

func newCompanyRepoMock(t *testing.T) (sqlmock.Sqlmock, *PostgreSQLCompanyRepository) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return mock, NewPostgreSQLCompanyRepository(db)
}

func TestPostgreSQLCompanyRepository_Create(t *testing.T) {
	mock, repo := newCompanyRepoMock(t)

	now := time.Now().UTC()
	company := &companyDomain.Company{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Acme Corp",
		Email:     "contact@acme.test",
		Document:  "12345678000190",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO companies`).
		WithArgs(company.ID, company.Name, company.Email, company.Document, company.IsActive, company.CreatedAt, company.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), company)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLCompanyRepository_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mock, repo := newCompanyRepoMock(t)

		id := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		rows := sqlmock.NewRows([]string{"id", "name", "email", "document", "is_active", "created_at", "updated_at"}).
			AddRow(id, "Acme Corp", "contact@acme.test", "", true, now, now)

		mock.ExpectQuery(`SELECT id, name, email, document, is_active, created_at, updated_at`).
			WithArgs(id).
			WillReturnRows(rows)

		company, err := repo.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, company.ID)
		assert.Equal(t, "contact@acme.test", company.Email)
		assert.True(t, company.IsActive)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock, repo := newCompanyRepoMock(t)

		id := uuid.Must(uuid.NewV7())
		mock.ExpectQuery(`SELECT id, name, email, document, is_active, created_at, updated_at`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Get(context.Background(), id)
		assert.ErrorIs(t, err, companyDomain.ErrCompanyNotFound)
	})
}

func TestPostgreSQLCompanyRepository_GetByEmail(t *testing.T) {
	mock, repo := newCompanyRepoMock(t)

	id := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "document", "is_active", "created_at", "updated_at"}).
		AddRow(id, "Acme Corp", "contact@acme.test", "", true, now, now)

	mock.ExpectQuery(`SELECT id, name, email, document, is_active, created_at, updated_at`).
		WithArgs("contact@acme.test").
		WillReturnRows(rows)

	company, err := repo.GetByEmail(context.Background(), "contact@acme.test")
	require.NoError(t, err)
	assert.Equal(t, id, company.ID)
}

func TestPostgreSQLCompanyRepository_Update(t *testing.T) {
	mock, repo := newCompanyRepoMock(t)

	now := time.Now().UTC()
	company := &companyDomain.Company{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Acme Corporation",
		Email:     "contact@acme.test",
		Document:  "12345678000190",
		IsActive:  false,
		UpdatedAt: now,
	}

	mock.ExpectExec(`UPDATE companies`).
		WithArgs(company.Name, company.Email, company.Document, company.IsActive, company.UpdatedAt, company.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), company)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLCompanyRepository_List(t *testing.T) {
	mock, repo := newCompanyRepoMock(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "document", "is_active", "created_at", "updated_at"}).
		AddRow(uuid.Must(uuid.NewV7()), "Acme Corp", "contact@acme.test", "", true, now, now).
		AddRow(uuid.Must(uuid.NewV7()), "Globex", "contact@globex.test", "", true, now, now)

	mock.ExpectQuery(`SELECT id, name, email, document, is_active, created_at, updated_at`).
		WithArgs(50, 0).
		WillReturnRows(rows)

	companies, err := repo.List(context.Background(), 0, 50)
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}
