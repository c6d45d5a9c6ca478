package categories

import (
	"database/sql"

	"github.com/nida-ullah/finance-app/app/database"
	"github.com/nida-ullah/finance-app/app/models"
)

func GetCategoriesByUser(db *sql.DB, userID string) ([]*models.Category, error) {
	query := `SELECT id, user_id, name, type, color, description, created_at
			  FROM categories
			  WHERE user_id = $1
			  ORDER BY name`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		cat := &models.Category{}
		err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.Type, &cat.Color, &cat.Description, &cat.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func CreateCategory(db *sql.DB, cat *models.Category) error {
	query := `INSERT INTO categories (user_id, name, type, color, description)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at`
	return db.QueryRow(query, cat.UserID, cat.Name, cat.Type, cat.Color, cat.Description).
		Scan(&cat.ID, &cat.CreatedAt)
}

func UpdateCategory(db *sql.DB, cat *models.Category) error {
	query := `UPDATE categories
			  SET name = $1, type = $2, color = $3, description = $4
			  WHERE id = $5 AND user_id = $6`

	result, err := db.Exec(query, cat.Name, cat.Type, cat.Color, cat.Description, cat.ID, cat.UserID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrCategoryNotFound
	}
	return nil
}

func DeleteCategory(db *sql.DB, userID, categoryID string) error {
	result, err := db.Exec(`DELETE FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrCategoryNotFound
	}
	return nil
}
