package store

import (
	"time"

	"github.com/MKhiriev/go-chirpy/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	userColumns         = []string{"id", "created_at", "updated_at", "email", "hashed_password", "is_chirpy_red"}
	chirpColumns        = []string{"id", "created_at", "updated_at", "body", "user_id"}
	refreshTokenColumns = []string{"token", "created_at", "updated_at", "user_id", "expires_at", "revoked_at"}
)

// sqlQueries builds the statements of all repositories with the placeholder
// format of the connected driver.
type sqlQueries struct {
	sq.StatementBuilderType
}

func newSQLQueries(placeholder sq.PlaceholderFormat) sqlQueries {
	return sqlQueries{sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

// ── users ─────────────────────────────────────────────────────────────────────

func (q sqlQueries) createUser(user models.User) (string, []any, error) {
	return q.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID.String(), dbTime(user.CreatedAt), dbTime(user.UpdatedAt), user.Email, user.HashedPassword, user.IsChirpyRed).
		ToSql()
}

func (q sqlQueries) findUserByEmail(email string) (string, []any, error) {
	return q.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func (q sqlQueries) findUserByID(userID uuid.UUID) (string, []any, error) {
	return q.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID.String()}).
		ToSql()
}

func (q sqlQueries) updateUserCredentials(user models.User) (string, []any, error) {
	return q.Update(user.TableName()).
		Set("email", user.Email).
		Set("hashed_password", user.HashedPassword).
		Set("updated_at", dbTime(user.UpdatedAt)).
		Where(sq.Eq{"id": user.ID.String()}).
		ToSql()
}

func (q sqlQueries) upgradeToChirpyRed(userID uuid.UUID, now time.Time) (string, []any, error) {
	return q.Update(models.User{}.TableName()).
		Set("is_chirpy_red", true).
		Set("updated_at", dbTime(now)).
		Where(sq.Eq{"id": userID.String()}).
		ToSql()
}

func (q sqlQueries) deleteAllUsers() (string, []any, error) {
	return q.Delete(models.User{}.TableName()).ToSql()
}

// ── chirps ────────────────────────────────────────────────────────────────────

func (q sqlQueries) createChirp(chirp models.Chirp) (string, []any, error) {
	return q.Insert(chirp.TableName()).
		Columns(chirpColumns...).
		Values(chirp.ID.String(), dbTime(chirp.CreatedAt), dbTime(chirp.UpdatedAt), chirp.Body, chirp.UserID.String()).
		ToSql()
}

func (q sqlQueries) getChirp(chirpID uuid.UUID) (string, []any, error) {
	return q.Select(chirpColumns...).
		From(models.Chirp{}.TableName()).
		Where(sq.Eq{"id": chirpID.String()}).
		ToSql()
}

func (q sqlQueries) listChirps(filter models.ChirpFilter) (string, []any, error) {
	direction := "ASC"
	if filter.Sort == models.SortDesc {
		direction = "DESC"
	}

	builder := q.Select(chirpColumns...).
		From(models.Chirp{}.TableName()).
		OrderBy("created_at "+direction, "id "+direction)

	if filter.AuthorID != nil {
		builder = builder.Where(sq.Eq{"user_id": filter.AuthorID.String()})
	}

	return builder.ToSql()
}

func (q sqlQueries) deleteChirp(chirpID uuid.UUID) (string, []any, error) {
	return q.Delete(models.Chirp{}.TableName()).
		Where(sq.Eq{"id": chirpID.String()}).
		ToSql()
}

// ── refresh tokens ────────────────────────────────────────────────────────────

func (q sqlQueries) createRefreshToken(token models.RefreshToken) (string, []any, error) {
	return q.Insert(token.TableName()).
		Columns(refreshTokenColumns...).
		Values(token.Token, dbTime(token.CreatedAt), dbTime(token.UpdatedAt), token.UserID.String(), dbTime(token.ExpiresAt), nil).
		ToSql()
}

// findActiveRefreshToken selects the token only while it is not revoked and
// not expired at now, so the check and the read are one statement.
func (q sqlQueries) findActiveRefreshToken(token string, now time.Time) (string, []any, error) {
	return q.Select(refreshTokenColumns...).
		From(models.RefreshToken{}.TableName()).
		Where(sq.And{
			sq.Eq{"token": token},
			sq.Eq{"revoked_at": nil},
			sq.Gt{"expires_at": dbTime(now)},
		}).
		ToSql()
}

func (q sqlQueries) findRefreshToken(token string) (string, []any, error) {
	return q.Select(refreshTokenColumns...).
		From(models.RefreshToken{}.TableName()).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func (q sqlQueries) setRefreshTokenRevoked(token string, when time.Time) (string, []any, error) {
	return q.Update(models.RefreshToken{}.TableName()).
		Set("revoked_at", dbTime(when)).
		Set("updated_at", dbTime(when)).
		Where(sq.Eq{"token": token}).
		ToSql()
}
