package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sales-keeper/internal/logger"
	"github.com/MKhiriev/go-sales-keeper/models"
)

func ptr(s string) *string { return &s }

func newTestCustomerRepo(t *testing.T) (*customerRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &customerRepository{DB: db, logger: logger.Nop()}, mock
}

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows(customerColumns)
}

func TestCustomerRepository_Create(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)
	now := time.Now()

	in := models.Customer{
		FirstName: "Ann",
		LastName:  "Lee",
		Phone:     ptr("phone-blob"),
		SSNNumber: ptr("ssn-blob"),
		CreatedBy: 7,
	}

	mock.ExpectQuery("INSERT INTO customers").
		WithArgs("Ann", "Lee", "", "", "phone-blob", "ssn-blob", nil, nil, "", nil, int64(7)).
		WillReturnRows(customerRows().AddRow(
			1, "Ann", "Lee", "", "", "phone-blob", "ssn-blob", nil, nil, "", nil, 7, now, now,
		))

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	require.NotNil(t, created.Phone)
	assert.Equal(t, "phone-blob", *created.Phone)
	assert.Nil(t, created.DriverLicense)
	assert.Nil(t, created.SecurityAnswer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Create_DBError(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery("INSERT INTO customers").WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), models.Customer{FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCustomerRepository_Update_OnlySetColumns(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)
	now := time.Now()

	update := models.CustomerUpdate{
		ID:        3,
		LastName:  ptr("Smith"),
		StateID:   ptr("state-blob"),
		SSNNumber: nil,
	}

	// SetMap orders columns alphabetically
	mock.ExpectQuery(`UPDATE customers SET last_name = \$1, state_id = \$2, updated_at = CURRENT_TIMESTAMP WHERE id = \$3 RETURNING`).
		WithArgs("Smith", "state-blob", int64(3)).
		WillReturnRows(customerRows().AddRow(
			3, "Ann", "Smith", "", "", nil, nil, nil, "state-blob", "", nil, 0, now, now,
		))

	updated, err := repo.Update(context.Background(), update)
	require.NoError(t, err)
	assert.Equal(t, "Smith", updated.LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery("UPDATE customers").
		WillReturnRows(customerRows())

	_, err := repo.Update(context.Background(), models.CustomerUpdate{ID: 99, FirstName: ptr("X")})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerRepository_Update_NothingToUpdate(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	_, err := repo.Update(context.Background(), models.CustomerUpdate{ID: 1})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Get(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(customerRows().AddRow(
			5, "Ann", "Lee", "a@b.c", "Main St", "p", "s", "d", "st", "pet?", "a", 1, now, now,
		))

	c, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", c.Email)
	assert.Equal(t, "pet?", c.SecurityQuestion)
	require.NotNil(t, c.SecurityAnswer)
	assert.Equal(t, "a", *c.SecurityAnswer)
}

func TestCustomerRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM customers").
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerRepository_List(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM customers ORDER BY id LIMIT 2 OFFSET 4").
		WillReturnRows(customerRows().
			AddRow(5, "A", "A", "", "", nil, nil, nil, nil, "", nil, 0, now, now).
			AddRow(6, "B", "B", "", "", nil, nil, nil, nil, "", nil, 0, now, now))

	list, err := repo.List(context.Background(), models.ListOptions{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(6), list[1].ID)
}

func TestCustomerRepository_ListAll_NoLimit(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM customers ORDER BY id$").
		WillReturnRows(customerRows())

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomerRepository_List_RowsError(t *testing.T) {
	repo, mock := newTestCustomerRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM customers").
		WillReturnRows(customerRows().
			AddRow(1, "A", "A", "", "", nil, nil, nil, nil, "", nil, 0, now, now).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
