package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
	"yatube/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{
	"user_id", "username", "email", "password_hash",
	"refresh_token", "refresh_token_expiry_time", "created_at",
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	email := "leo@example.com"
	password := "password123"

	user := &models.User{
		Username:     "leo",
		Email:        email,
		RefreshToken: "refresh_token",
	}

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock.ExpectExec(`
		INSERT INTO users (user_id, username, email, password_hash, refresh_token, refresh_token_expiry_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`).
			WithArgs(
				sqlmock.AnyArg(), // user_id генерируется в репозитории
				"leo",
				email,
				sqlmock.AnyArg(), // password_hash
				"refresh_token",
				time.Time{},
				sqlmock.AnyArg(), // created_at
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateUser(ctx, user, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.NotEqual(t, password, user.PasswordHash)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при дублировании email", func(t *testing.T) {
		user2 := &models.User{
			Username:     "leo2",
			Email:        email,
			RefreshToken: "refresh_token",
		}

		mock.ExpectExec(`
		INSERT INTO users (user_id, username, email, password_hash, refresh_token, refresh_token_expiry_time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`).
			WithArgs(
				sqlmock.AnyArg(),
				"leo2",
				email,
				sqlmock.AnyArg(),
				"refresh_token",
				time.Time{},
				sqlmock.AnyArg(),
			).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.CreateUser(ctx, user2, password)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании пользователя")
	})
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("Успешное получение по username", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow(userID, "leo", "leo@example.com", "hashed_password",
				"refresh_token", time.Now().Add(24*time.Hour), time.Now())

		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("leo").
			WillReturnRows(rows)

		user, err := repo.GetUserByUsername(ctx, "leo")

		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "leo", user.Username)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE username = $1`).
			WithArgs("nobody").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByUsername(ctx, "nobody")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "не найден")
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()
	password := "password123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("Верный пароль", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow(userID, "leo", "leo@example.com", string(hash),
				"refresh_token", time.Now().Add(24*time.Hour), time.Now())

		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs("leo@example.com").
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, "leo@example.com", password)

		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns).
			AddRow(userID, "leo", "leo@example.com", string(hash),
				"refresh_token", time.Now().Add(24*time.Hour), time.Now())

		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs("leo@example.com").
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, "leo@example.com", "wrong")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "неверный пароль")
	})
}

func TestUserRepository_UpdateRefreshToken(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()
	expiry := time.Now().Add(168 * time.Hour)

	t.Run("Токен обновлен", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET`).
			WithArgs("new-token", expiry, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRefreshToken(ctx, userID, "new-token", expiry)

		assert.NoError(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET`).
			WithArgs("new-token", expiry, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRefreshToken(ctx, userID, "new-token", expiry)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "пользователь не найден")
	})
}
