package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"tracker/api/internal/auth"
	"tracker/api/internal/config"
	"tracker/api/internal/store"
)

// create-admin provisions an administrator account from the terminal.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	reader := bufio.NewReader(os.Stdin)
	email := prompt(reader, "Email: ")
	firstName := prompt(reader, "First name: ")
	lastName := prompt(reader, "Last name: ")
	password := prompt(reader, "Password: ")
	if email == "" || firstName == "" || lastName == "" || password == "" {
		log.Fatal("all fields are required")
	}

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	dataStore := store.NewPostgresStore(db)
	user, err := dataStore.CreateUser(ctx, store.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: auth.HashPassword(cfg.AuthSecret, password, email),
		IsAdmin:      true,
	})
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	fmt.Printf("admin %s created (id %d)\n", user.Email, user.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
