package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"yatube/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	user.UserID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (user_id, username, email, password_hash, refresh_token, refresh_token_expiry_time, created_at)
		VALUES (:user_id, :username, :email, :password_hash, :refresh_token, :refresh_token_expiry_time, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %s не найден", userID)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s не найден", username)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s не найден", email)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный пароль")
	}

	return user, nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE users SET
			refresh_token = $1,
			refresh_token_expiry_time = $2
		WHERE user_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении refresh token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("пользователь не найден")
	}

	return nil
}

func (r *userRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	var user models.User

	query := `
		SELECT * FROM users
		WHERE refresh_token = $1 AND refresh_token_expiry_time > $2
	`

	err := r.db.GetContext(ctx, &user, query, refreshToken, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("refresh token не найден или истек")
		}
		return nil, fmt.Errorf("ошибка при поиске refresh token: %w", err)
	}

	return &user, nil
}
