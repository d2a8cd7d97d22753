package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row in userColumns order.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user              models.User
		role, status      string
		externalID        sql.NullString
		migrationDeadline sql.NullTime
		lastLogin         sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&role,
		&status,
		&externalID,
		&migrationDeadline,
		&user.MigrationCompleted,
		&lastLogin,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	user.Status = models.UserStatus(status)
	if externalID.Valid {
		user.ExternalID = &externalID.String
	}
	if migrationDeadline.Valid {
		user.MigrationDeadline = &migrationDeadline.Time
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}

// mapRowError converts driver errors of single-row statements into the
// package sentinels.
func mapRowError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNoUserWasFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return ErrUserAlreadyExists
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// CreateUser inserts user inside a transaction that holds a
// transaction-scoped advisory lock. If the caller asks for the admin role
// but the table already has rows, the row is stored with the user role.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Transaction failures → [ErrBeginningTransaction] / [ErrCommitingTransaction].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockUsersInsert, usersInsertLockKey); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error acquiring insert lock")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var exists bool
	if err = tx.QueryRowContext(ctx, hasAnyUser).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error checking users table")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if exists && user.Role.IsAdmin() {
		log.Warn().Str("func", "*userRepository.CreateUser").Msg("table is not empty anymore, creating user with role user")
		user.Role = models.RoleUser
	}

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	created, err := scanUser(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, mapRowError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// HasAnyUser reports whether the users table has at least one row.
func (r *userRepository) HasAnyUser(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, hasAnyUser).Scan(&exists)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.HasAnyUser").Msg("error checking users table")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// FindUserByID returns the row with the given primary key regardless of its
// status.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// FindUserByEmail returns the row owning email regardless of its status.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByExternalIDOrEmail returns the active row linked to externalID or
// owning email. Inactive rows never match.
func (r *userRepository) FindUserByExternalIDOrEmail(ctx context.Context, externalID, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByExternalIDOrEmailQuery(externalID, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByExternalIDOrEmail").Msg("failed to create query")
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByExternalIDOrEmail", query, args...)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", funcName).Msg("no user was found")
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, mapRowError(err)
	}

	return user, nil
}

// ListUsers returns every row ordered by creation time, newest first.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create query")
		return nil, err
	}

	var users []models.User
	err = r.db.withRetry(ctx, func() error {
		users = make([]models.User, 0, 16)

		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			user, scanErr := scanUser(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			users = append(users, user)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// LinkExternalID claims a legacy row for externalID. A row that is already
// linked is reported as [ErrNoUserWasFound].
func (r *userRepository) LinkExternalID(ctx context.Context, id int64, externalID string) (models.User, error) {
	return r.updateOne(ctx, "*userRepository.LinkExternalID", linkExternalID, id, externalID)
}

// SetMigrationDeadlineIfNull stores deadline only when the row has none and
// returns the value that is persisted afterwards. Concurrent callers all see
// the deadline written by the first one.
func (r *userRepository) SetMigrationDeadlineIfNull(ctx context.Context, id int64, deadline time.Time) (time.Time, error) {
	log := logger.FromContext(ctx)

	var persisted time.Time
	if err := r.db.QueryRowContext(ctx, setMigrationDeadlineIfNull, id, deadline).Scan(&persisted); err != nil {
		log.Err(err).Str("func", "*userRepository.SetMigrationDeadlineIfNull").Int64("user_id", id).Msg("error setting migration deadline")
		return time.Time{}, mapRowError(err)
	}

	return persisted, nil
}

// UpdateLastLogin records a successful password sign-in.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) (models.User, error) {
	return r.updateOne(ctx, "*userRepository.UpdateLastLogin", updateLastLogin, id, at)
}

// DeactivateUser marks the row Inactive, completes its migration, replaces
// its email with freedEmail and clears external_id.
func (r *userRepository) DeactivateUser(ctx context.Context, id int64, freedEmail string) (models.User, error) {
	return r.updateOne(ctx, "*userRepository.DeactivateUser", deactivateUser, id, freedEmail)
}

// UpdateUser applies a partial update of username, email and status.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("failed to create query")
		return models.User{}, err
	}

	return r.updateOne(ctx, "*userRepository.UpdateUser", query, args...)
}

func (r *userRepository) updateOne(ctx context.Context, funcName, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapRowError(err)
		if errors.Is(mapped, ErrNoUserWasFound) {
			log.Debug().Str("func", funcName).Msg("no user was updated")
		} else {
			log.Err(err).Str("func", funcName).Msg("error updating user")
		}
		return models.User{}, mapped
	}

	return user, nil
}

// UpdatePassword replaces the stored password digest.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.execOne(ctx, "*userRepository.UpdatePassword", updatePassword, id, passwordHash)
}

// PromoteToAdmin switches the role of a user row to admin.
func (r *userRepository) PromoteToAdmin(ctx context.Context, id int64) (models.PromotedUser, error) {
	log := logger.FromContext(ctx)

	var (
		promoted models.PromotedUser
		role     string
	)
	err := r.db.QueryRowContext(ctx, promoteToAdmin, id).Scan(&promoted.ID, &promoted.Username, &role)
	if err != nil {
		mapped := mapRowError(err)
		if !errors.Is(mapped, ErrNoUserWasFound) {
			log.Err(err).Str("func", "*userRepository.PromoteToAdmin").Int64("user_id", id).Msg("error promoting user")
		}
		return models.PromotedUser{}, mapped
	}
	promoted.Role = models.Role(role)

	return promoted, nil
}

// DeleteUser removes the row permanently.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	return r.execOne(ctx, "*userRepository.DeleteUser", deleteUser, id)
}

// execOne runs a statement that must affect exactly one row.
func (r *userRepository) execOne(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
