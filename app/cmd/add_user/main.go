package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nida-ullah/finance-app/app/config"
	"github.com/nida-ullah/finance-app/app/database"
	"github.com/nida-ullah/finance-app/app/models"
)

func main() {
	username := flag.String("username", "", "username for the new account")
	email := flag.String("email", "", "email for the new account")
	password := flag.String("password", "", "password for the new account")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		fmt.Println("Usage: add_user -username <name> -email <email> -password <password>")
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Username: *username,
		Email:    *email,
		Password: *password,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Username, user.Email)
}
