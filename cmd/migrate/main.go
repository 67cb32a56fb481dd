package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var dbURL, migrationsDir string
	flagSet := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	flagSet.StringVar(&dbURL, "db-url", os.Getenv("DB_URL"), "postgres connection url (default: $DB_URL)")
	flagSet.StringVar(&migrationsDir, "path", "", "migrations directory (default: search upwards for ./migrations)")
	_ = flagSet.Parse(os.Args[1:])

	if dbURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}
	if migrationsDir == "" {
		migrationsDir = findMigrationsDir()
	}
	if migrationsDir == "" {
		log.Fatal("Migrations directory not found")
	}
	absMigrationsPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.New("file://"+absMigrationsPath, dbURL)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	args := flagSet.Args()
	cmd := "up"
	if len(args) > 0 {
		cmd = args[0]
	}

	if err := run(m, cmd, args[min(1, len(args)):]); err != nil {
		log.Fatal(err)
	}
}

func run(m *migrate.Migrate, cmd string, args []string) error {
	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Println("Migration up successful")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		log.Println("Migration down successful")
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("No migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		log.Printf("Version %d (dirty=%t)", version, dirty)
	case "force":
		if len(args) != 1 {
			return fmt.Errorf("force requires a version argument")
		}
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}
		if err := m.Force(version); err != nil {
			return err
		}
		log.Printf("Forced version %d", version)
	default:
		return fmt.Errorf("unknown command %q (want up, down, version, force)", cmd)
	}
	return nil
}

func findMigrationsDir() string {
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		current := cwd
		for i := 0; i < 6; i++ {
			candidates = append(candidates, filepath.Join(current, "migrations"))
			parent := filepath.Dir(current)
			if parent == current {
				break
			}
			current = parent
		}
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		candidates = append(candidates,
			filepath.Join(exeDir, "migrations"),
			filepath.Join(exeDir, "..", "migrations"),
		)
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}
