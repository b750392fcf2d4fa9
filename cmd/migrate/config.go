package main

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultMigrationsDir = "db/migrations"

// loadDotenv layers .env then .env.local; values already present in the
// process environment (e.g. from the container runtime) win.
func loadDotenv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// migrationsDir resolves the goose migrations directory, overridable with
// MIGRATIONS_DIR for out-of-tree runs.
func migrationsDir() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return defaultMigrationsDir
}
