package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"beerstock/internal/pkg/database"
	"beerstock/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Warning: .env file not found or failed to read. Loading configs from system environment only: %v", err)
	}

	var (
		migrationsDir string
		verbose       bool
	)
	flag.StringVar(&migrationsDir, "dir", "", "directory with migration files (default: embedded migrations)")
	flag.BoolVar(&verbose, "v", false, "verbose goose output")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("goose: DATABASE_URL must be set")
	}

	db, err := database.NewPostgresDB(databaseURL)
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v\n", err)
		}
	}()

	if !verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"} // Default to 'up' if no command is provided
	}

	command := arguments[0]
	args := arguments[1:]

	var migrationsFS fs.FS = migrations.FS
	if migrationsDir != "" {
		migrationsFS = os.DirFS(migrationsDir)
	}

	if err := database.Migrate(context.Background(), db, migrationsFS, command, args...); err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("goose %s success\n", command)
}
