package main

import (
	"fmt"
	"log"

	"drink-retail-manager/internal/config"
	"drink-retail-manager/internal/database"
	"drink-retail-manager/internal/models"
	"drink-retail-manager/internal/repositories"
	"drink-retail-manager/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := repositories.NewUserRepository(db.DB)

	existing, err := userRepo.GetByUsername(cfg.Admin.Username)
	if err == nil {
		fmt.Printf("Admin user already exists with ID: %d\n", existing.ID)
		return
	}

	passwordHash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.User{
		Username:     cfg.Admin.Username,
		PasswordHash: passwordHash,
		Email:        cfg.Admin.Email,
		Role:         models.RoleAdmin,
	}

	if err := userRepo.Create(admin); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Admin user created with ID: %d\n", admin.ID)
}
