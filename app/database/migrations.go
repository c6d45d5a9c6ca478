package database

import (
	"database/sql"
	"log"
)

// RunMigrations ensures all tables, indexes and constraints exist.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(150) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS main_accounts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			balance NUMERIC(15,2) NOT NULL DEFAULT 0.00
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			budget NUMERIC(15,2) NOT NULL DEFAULT 0.00,
			budget_limit NUMERIC(15,2),
			low_budget_threshold NUMERIC(15,2) NOT NULL DEFAULT 50.00,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (user_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			type VARCHAR(10) NOT NULL DEFAULT 'expense',
			color VARCHAR(7) NOT NULL DEFAULT '#3498db',
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
			from_project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
			to_project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
			type VARCHAR(10) NOT NULL,
			amount NUMERIC(15,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			reference_id VARCHAR(100) NOT NULL DEFAULT '',
			timestamp TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
			amount NUMERIC(15,2) NOT NULL,
			description TEXT NOT NULL,
			tags VARCHAR(255) NOT NULL DEFAULT '',
			receipt_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS budget_alerts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			alert_type VARCHAR(20) NOT NULL,
			message TEXT NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (user_id, project_id, alert_type)
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_projects_user_id ON projects(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_project_id ON expenses(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_category_id ON expenses(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_created_at ON expenses(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_budget_alerts_user_id ON budget_alerts(user_id)`,
	}

	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			log.Printf("Error creating index: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
