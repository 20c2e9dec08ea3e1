package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/sparkwave/sparkwave-login/domain/entity"
	"github.com/sparkwave/sparkwave-login/infrastructure/config"
	"github.com/sparkwave/sparkwave-login/infrastructure/persistence/postgres"
	"github.com/sparkwave/sparkwave-login/infrastructure/service/password"
)

// Seeds the first ADMIN account. Usage:
//
//	createadmin [username] [email] [password] [full name]
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	username := "admin"
	email := "admin@sparkwave.com"
	userPassword := "admin123"
	fullName := "Administrador"

	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		email = os.Args[2]
	}
	if len(os.Args) > 3 {
		userPassword = os.Args[3]
	}
	if len(os.Args) > 4 {
		fullName = os.Args[4]
	}

	passwordService := password.NewBcryptPasswordService(10)
	hashed, err := passwordService.HashPassword(userPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := entity.NewUser(uuid.New().String(), username, email, hashed, fullName, []string{entity.RoleAdmin, entity.DefaultRole})

	userRepo := postgres.NewUserRepository(db)
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	fmt.Printf("admin user %q created (id %s)\n", admin.Username, admin.ID)
}
