package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumnNames = []string{
	"id", "username", "email", "password_hash", "role", "status",
	"external_id", "migration_deadline", "migration_completed", "last_login", "created_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

type userRow struct {
	id                 int64
	username           string
	email              string
	role               string
	status             string
	externalID         driver.Value
	migrationDeadline  driver.Value
	migrationCompleted bool
	lastLogin          driver.Value
	createdAt          time.Time
}

func (r userRow) rows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumnNames).AddRow(
		r.id, r.username, r.email, "digest", r.role, r.status,
		r.externalID, r.migrationDeadline, r.migrationCompleted, r.lastLogin, r.createdAt,
	)
}

func legacyRow() userRow {
	return userRow{
		id:        2,
		username:  "Jane Doe",
		email:     "jane@x.com",
		role:      "user",
		status:    "Active",
		createdAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateUser_FirstUserKeepsAdmin(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "Jane Doe", Email: "jane@x.com", PasswordHash: "digest", Role: models.RoleAdmin}
	query, _, err := buildInsertUserQuery(user)
	require.NoError(t, err)

	row := legacyRow()
	row.id, row.role = 1, "admin"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(lockUsersInsert)).WithArgs(usersInsertLockKey).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(hasAnyUser)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Jane Doe", "jane@x.com", "digest", "admin", "Active", sqlmock.AnyArg(), false).
		WillReturnRows(row.rows())
	mock.ExpectCommit()

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.RoleAdmin, created.Role)
	assert.True(t, created.IsLegacy())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_AdminDowngradedWhenTableNotEmpty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "Jane Doe", Email: "jane@x.com", PasswordHash: "digest", Role: models.RoleAdmin}
	downgraded := user
	downgraded.Role = models.RoleUser
	query, _, err := buildInsertUserQuery(downgraded)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(lockUsersInsert)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(hasAnyUser)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Jane Doe", "jane@x.com", "digest", "user", "Active", sqlmock.AnyArg(), false).
		WillReturnRows(legacyRow().rows())
	mock.ExpectCommit()

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(lockUsersInsert)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(hasAnyUser)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(testContext(), models.User{Username: "john", Email: "john@x.com", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_BeginError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := repo.CreateUser(testContext(), models.User{Username: "john"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestCreateUser_CommitError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(lockUsersInsert)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(hasAnyUser)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO users").WillReturnRows(legacyRow().rows())
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.CreateUser(testContext(), models.User{Username: "Jane Doe", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestHasAnyUser(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "empty table", exists: false},
		{name: "table with rows", exists: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta(hasAnyUser)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			got, err := repo.HasAnyUser(testContext())
			require.NoError(t, err)
			assert.Equal(t, tt.exists, got)
		})
	}
}

func TestHasAnyUser_Error(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(hasAnyUser)).WillReturnError(errors.New("db down"))

	_, err := repo.HasAnyUser(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	deadline := time.Date(2026, 1, 2, 0, 0, 30, 0, time.UTC)
	row := legacyRow()
	row.migrationDeadline = deadline

	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).WithArgs("jane@x.com").WillReturnRows(row.rows())

	user, err := repo.FindUserByEmail(testContext(), "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, models.StatusActive, user.Status)
	assert.Nil(t, user.ExternalID)
	require.NotNil(t, user.MigrationDeadline)
	assert.True(t, deadline.Equal(*user.MigrationDeadline))
	assert.Nil(t, user.LastLogin)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).WithArgs("nobody@x.com").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(testContext(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).WithArgs(int64(2)).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).WithArgs(int64(2)).WillReturnRows(legacyRow().rows())

	user, err := repo.FindUserByID(testContext(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByID_DoesNotRetryPermanentError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).WithArgs(int64(2)).WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.FindUserByID(testContext(), 2)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByExternalIDOrEmail_Linked(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	query, _, err := buildFindByExternalIDOrEmailQuery("ext-1", "jane@x.com")
	require.NoError(t, err)

	row := legacyRow()
	row.externalID = "ext-1"
	row.migrationCompleted = true

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("ext-1", "jane@x.com", "Inactive", "ext-1").
		WillReturnRows(row.rows())

	user, err := repo.FindUserByExternalIDOrEmail(testContext(), "ext-1", "jane@x.com")
	require.NoError(t, err)
	require.NotNil(t, user.ExternalID)
	assert.Equal(t, "ext-1", *user.ExternalID)
	assert.False(t, user.IsLegacy())
	assert.True(t, user.MigrationCompleted)
}

func TestFindUserByExternalIDOrEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows(userColumnNames))

	_, err := repo.FindUserByExternalIDOrEmail(testContext(), "ext-1", "jane@x.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestListUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	query, _, err := buildListUsersQuery()
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows(userColumnNames).
		AddRow(2, "Jane Doe", "jane@x.com", "d", "user", "Active", nil, nil, false, nil, now).
		AddRow(1, "Root Admin", "root@x.com", "d", "admin", "Active", "ext-0", nil, true, now, now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	users, err := repo.ListUsers(testContext())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[0].ID)
	assert.Equal(t, models.RoleAdmin, users[1].Role)
	require.NotNil(t, users[1].LastLogin)
}

func TestListUsers_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.ListUsers(testContext())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestLinkExternalID(t *testing.T) {
	t.Run("links legacy row", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		row := legacyRow()
		row.externalID = "ext-1"

		mock.ExpectQuery(regexp.QuoteMeta(linkExternalID)).WithArgs(int64(2), "ext-1").WillReturnRows(row.rows())

		user, err := repo.LinkExternalID(testContext(), 2, "ext-1")
		require.NoError(t, err)
		require.NotNil(t, user.ExternalID)
		assert.Equal(t, "ext-1", *user.ExternalID)
	})

	t.Run("already linked row is not touched", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(linkExternalID)).WithArgs(int64(2), "ext-1").WillReturnRows(sqlmock.NewRows(userColumnNames))

		_, err := repo.LinkExternalID(testContext(), 2, "ext-1")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})
}

func TestSetMigrationDeadlineIfNull_ReturnsPersistedValue(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	first := time.Date(2026, 1, 2, 0, 0, 30, 0, time.UTC)
	second := first.Add(5 * time.Second)

	// the second caller loses: COALESCE keeps the first deadline
	mock.ExpectQuery(regexp.QuoteMeta(setMigrationDeadlineIfNull)).WithArgs(int64(2), first).
		WillReturnRows(sqlmock.NewRows([]string{"migration_deadline"}).AddRow(first))
	mock.ExpectQuery(regexp.QuoteMeta(setMigrationDeadlineIfNull)).WithArgs(int64(2), second).
		WillReturnRows(sqlmock.NewRows([]string{"migration_deadline"}).AddRow(first))

	got1, err := repo.SetMigrationDeadlineIfNull(testContext(), 2, first)
	require.NoError(t, err)
	got2, err := repo.SetMigrationDeadlineIfNull(testContext(), 2, second)
	require.NoError(t, err)

	assert.True(t, first.Equal(got1))
	assert.True(t, first.Equal(got2))
}

func TestSetMigrationDeadlineIfNull_MissingRow(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(setMigrationDeadlineIfNull)).WillReturnError(sql.ErrNoRows)

	_, err := repo.SetMigrationDeadlineIfNull(testContext(), 99, time.Now())
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUpdateLastLogin(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	row := legacyRow()
	row.lastLogin = at

	mock.ExpectQuery(regexp.QuoteMeta(updateLastLogin)).WithArgs(int64(2), at).WillReturnRows(row.rows())

	user, err := repo.UpdateLastLogin(testContext(), 2, at)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.True(t, at.Equal(*user.LastLogin))
}

func TestDeactivateUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	freed := "jane+deactivated-2-1767312030000@x.com"
	row := legacyRow()
	row.email = freed
	row.status = "Inactive"
	row.migrationCompleted = true

	mock.ExpectQuery(regexp.QuoteMeta(deactivateUser)).WithArgs(int64(2), freed).WillReturnRows(row.rows())

	user, err := repo.DeactivateUser(testContext(), 2, freed)
	require.NoError(t, err)
	assert.True(t, user.IsInactive())
	assert.True(t, user.MigrationCompleted)
	assert.Equal(t, freed, user.Email)
	assert.Nil(t, user.ExternalID)
}

func TestUpdateUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	name := "Jane Smith"
	update := models.UserUpdate{Username: &name}
	query, _, err := buildUpdateUserQuery(2, update)
	require.NoError(t, err)

	row := legacyRow()
	row.username = name
	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(name, int64(2)).WillReturnRows(row.rows())

	user, err := repo.UpdateUser(testContext(), 2, update)
	require.NoError(t, err)
	assert.Equal(t, name, user.Username)
}

func TestUpdateUser_EmailTaken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	email := "taken@x.com"
	mock.ExpectQuery("UPDATE users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(testContext(), 2, models.UserUpdate{Email: &email})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUpdateUser_Empty(t *testing.T) {
	repo, _ := newTestUserRepo(t)

	_, err := repo.UpdateUser(testContext(), 2, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestUpdatePassword(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updatePassword)).WithArgs(int64(2), "new-digest").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePassword(testContext(), 2, "new-digest"))
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updatePassword)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePassword(testContext(), 2, "new-digest"), ErrNoUserWasFound)
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updatePassword)).WillReturnError(errors.New("db down"))

		assert.ErrorIs(t, repo.UpdatePassword(testContext(), 2, "new-digest"), ErrExecutingStatement)
	})
}

func TestPromoteToAdmin(t *testing.T) {
	t.Run("user promoted", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(promoteToAdmin)).WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}).AddRow(2, "Jane Doe", "admin"))

		promoted, err := repo.PromoteToAdmin(testContext(), 2)
		require.NoError(t, err)
		assert.Equal(t, models.PromotedUser{ID: 2, Username: "Jane Doe", Role: models.RoleAdmin}, promoted)
	})

	t.Run("already admin", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(promoteToAdmin)).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "role"}))

		_, err := repo.PromoteToAdmin(testContext(), 1)
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(deleteUser)).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteUser(testContext(), 3))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(deleteUser)).WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteUser(testContext(), 3), ErrNoUserWasFound)
	})
}
