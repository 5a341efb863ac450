package main

import (
	"context"
	"log"
	"os"

	"threadbare/internal/domain"
	"threadbare/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

var categories = []domain.Category{
	{Name: "Inventory", Color: "#3b82f6", Icon: "package"},
	{Name: "Restocking", Color: "#10b981", Icon: "refresh-cw"},
	{Name: "Display", Color: "#f59e0b", Icon: "layout"},
	{Name: "Seasonal", Color: "#8b5cf6", Icon: "calendar"},
	{Name: "Operations", Color: "#ef4444", Icon: "settings"},
	{Name: "Customer Service", Color: "#ec4899", Icon: "users"},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(db)

	log.Println("seeding database...")

	// Reset existing data; tasks go with their categories through the cascade.
	if err := categoryRepo.DeleteAll(ctx); err != nil {
		log.Fatalf("failed to reset categories: %v", err)
	}

	for i := range categories {
		if err := categoryRepo.Create(ctx, &categories[i]); err != nil {
			log.Fatalf("failed to create category %s: %v", categories[i].Name, err)
		}
		log.Printf("created category: %s", categories[i].Name)
	}

	log.Println("seed completed")
}
