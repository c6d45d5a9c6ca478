package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/nida-ullah/finance-app/app/models"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// defaultCategories is seeded for every new user at signup.
var defaultCategories = []struct {
	Name  string
	Type  models.CategoryType
	Color string
}{
	{"Food", models.CategoryExpense, "#e74c3c"},
	{"Transport", models.CategoryExpense, "#3498db"},
	{"Utilities", models.CategoryExpense, "#f39c12"},
	{"Entertainment", models.CategoryExpense, "#9b59b6"},
	{"Shopping", models.CategoryExpense, "#e67e22"},
	{"Healthcare", models.CategoryExpense, "#1abc9c"},
	{"Other", models.CategoryExpense, "#95a5a6"},
	{"Salary", models.CategoryIncome, "#2ecc71"},
}

// CreateUser registers a user and provisions their main account and the
// default category set in one transaction. Returns ErrUserExists when the
// username or email is already taken.
func CreateUser(db *sql.DB, user *models.User) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO users (username, email, password)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`
	err = tx.QueryRow(query, user.Username, user.Email, hashed).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrUserExists
		}
		return fmt.Errorf("failed to insert user: %v", err)
	}
	user.Password = hashed

	_, err = tx.Exec(`INSERT INTO main_accounts (user_id, balance) VALUES ($1, 0.00)`, user.ID)
	if err != nil {
		return fmt.Errorf("failed to create main account: %v", err)
	}

	for _, c := range defaultCategories {
		_, err = tx.Exec(`INSERT INTO categories (user_id, name, type, color) VALUES ($1, $2, $3, $4)`,
			user.ID, c.Name, string(c.Type), c.Color)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %v", c.Name, err)
		}
	}

	return tx.Commit()
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password, created_at
			  FROM users WHERE username = $1`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, email, password, created_at
			  FROM users WHERE id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckPassword compares a plaintext password against the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GetMainAccountByUserID returns the user's main account.
func GetMainAccountByUserID(db *sql.DB, userID string) (*models.MainAccount, error) {
	account := &models.MainAccount{}
	query := `SELECT id, user_id, balance FROM main_accounts WHERE user_id = $1`

	err := db.QueryRow(query, userID).Scan(&account.ID, &account.UserID, &account.Balance)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}
