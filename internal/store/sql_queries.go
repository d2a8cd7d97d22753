package store

import (
	"fmt"

	"github.com/MKhiriev/population-dashboard/models"
	sq "github.com/Masterminds/squirrel"
)

// userColumns is the column order every user-returning query uses. It must
// match scanUser.
const userColumns = "id, username, email, password_hash, role, status, external_id, migration_deadline, migration_completed, last_login, created_at"

// usersInsertLockKey is the advisory lock that serializes inserts so the
// first-admin decision is made against a stable table.
const usersInsertLockKey int64 = 7_311_001

const (
	lockUsersInsert = `SELECT pg_advisory_xact_lock($1);`

	hasAnyUser = `SELECT EXISTS(SELECT 1 FROM users);`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;`

	linkExternalID = `UPDATE users
		SET external_id = $2
		WHERE id = $1 AND external_id IS NULL
		RETURNING ` + userColumns + `;`

	setMigrationDeadlineIfNull = `UPDATE users
		SET migration_deadline = COALESCE(migration_deadline, $2)
		WHERE id = $1
		RETURNING migration_deadline;`

	updateLastLogin = `UPDATE users
		SET last_login = $2
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	deactivateUser = `UPDATE users
		SET status = 'Inactive', migration_completed = TRUE, email = $2, external_id = NULL
		WHERE id = $1
		RETURNING ` + userColumns + `;`

	updatePassword = `UPDATE users
		SET password_hash = $2
		WHERE id = $1;`

	promoteToAdmin = `UPDATE users
		SET role = 'admin'
		WHERE id = $1 AND role = 'user'
		RETURNING id, username, role;`

	deleteUser = `DELETE FROM users
		WHERE id = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindByExternalIDOrEmailQuery selects the active row linked to
// externalID or, failing that, the active row owning email. A link by
// external id wins over an email coincidence.
func buildFindByExternalIDOrEmailQuery(externalID, email string) (string, []any, error) {
	query, args, err := psql.
		Select(userColumns).
		From(models.User{}.TableName()).
		Where(sq.Or{
			sq.Eq{"external_id": externalID},
			sq.Eq{"email": email},
		}).
		Where(sq.NotEq{"status": string(models.StatusInactive)}).
		OrderByClause("CASE WHEN external_id = ? THEN 0 ELSE 1 END", externalID).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertUserQuery builds the INSERT of a new row returning every column.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	status := user.Status
	if status == "" {
		status = models.StatusActive
	}

	query, args, err := psql.
		Insert(user.TableName()).
		Columns("username", "email", "password_hash", "role", "status", "external_id", "migration_completed").
		Values(user.Username, user.Email, user.PasswordHash, string(user.Role), string(status), user.ExternalID, user.MigrationCompleted).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE that only touches the fields
// present in update.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.User{}.TableName())

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Status != nil {
		builder = builder.Set("status", string(*update.Status))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListUsersQuery selects every row, newest first.
func buildListUsersQuery() (string, []any, error) {
	query, args, err := psql.
		Select(userColumns).
		From(models.User{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
