package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
)

const migrationsDir = "migrations"

type migrationFile struct {
	version int
	name    string
	path    string
}

func main() {
	mode := flag.String("mode", "up", "migration mode: up or down")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	if err := ensureSchemaMigrations(db); err != nil {
		log.Fatalf("failed to ensure schema_migrations: %v", err)
	}

	switch strings.ToLower(*mode) {
	case "up":
		if err := applyUp(db); err != nil {
			log.Fatalf("migration up failed: %v", err)
		}
	case "down":
		if err := applyDown(db); err != nil {
			log.Fatalf("migration down failed: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func ensureSchemaMigrations(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INT PRIMARY KEY)`)
	return err
}

func loadMigrationFiles(kind string) ([]migrationFile, error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return nil, err
	}

	var files []migrationFile
	suffix := "." + kind + ".sql"
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		parts := strings.SplitN(name, "_", 2)
		version, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid migration file name %q", name)
		}
		files = append(files, migrationFile{
			version: version,
			name:    strings.TrimSuffix(name, suffix),
			path:    filepath.Join(migrationsDir, name),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].version < files[j].version })
	return files, nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func applyUp(db *sql.DB) error {
	files, err := loadMigrationFiles("up")
	if err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, f := range files {
		if applied[f.version] {
			continue
		}
		if err := runMigration(db, f, `INSERT INTO schema_migrations (version) VALUES ($1)`); err != nil {
			return err
		}
		log.Printf("applied %s", f.name)
	}
	return nil
}

func applyDown(db *sql.DB) error {
	files, err := loadMigrationFiles("down")
	if err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	// Roll back from the highest applied version
	sort.Slice(files, func(i, j int) bool { return files[i].version > files[j].version })
	for _, f := range files {
		if !applied[f.version] {
			continue
		}
		if err := runMigration(db, f, `DELETE FROM schema_migrations WHERE version = $1`); err != nil {
			return err
		}
		log.Printf("reverted %s", f.name)
		return nil
	}
	return nil
}

func runMigration(db *sql.DB, f migrationFile, bookkeeping string) error {
	content, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", f.name, err)
	}
	if _, err := tx.Exec(bookkeeping, f.version); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
