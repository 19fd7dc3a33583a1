package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/robfig/cron/v3"

	"pulsewave/app/config"
	"pulsewave/app/repositories"
	"pulsewave/app/routes"
	"pulsewave/app/services"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("pulsewave version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		seed()
	case "clean":
		clean()
	case "backup":
		backup()
	case "restore":
		if len(os.Args) < 3 {
			fmt.Println("Error: backup file path required for restore")
			os.Exit(1)
		}
		restore(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: pulsewave <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the feed service.
  seed                           Insert the fixed demo posts.
  clean                          Remove the database.
  backup                         Create a backup of the database.
  restore [file]                 Restore database from backup.
`
	fmt.Println(helpText)
}

// serve opens the store, wires the routes, and runs the HTTP server with a
// periodic value-log GC alongside it.
func serve() {
	cfg := config.Load()

	db, err := repositories.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 10m", func() {
		if err := repositories.RunGC(db); err != nil {
			log.Printf("value log GC: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule GC: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := routes.SetupRoutes(db, routes.Options{
		AuthConfig: cfg.AuthConfig(),
		BotSecret:  cfg.BotSecret,
	})

	log.Printf("Starting feed service on %s", cfg.Addr)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// seed inserts the fixed demo posts into the store.
func seed() {
	cfg := config.Load()

	db, err := repositories.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	service := services.NewPostService(repositories.NewBadgerPostRepository(db))
	n, err := service.SeedPosts()
	if err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}
	fmt.Printf("Seeded %d posts\n", n)
}

// clean removes the database
func clean() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	fmt.Print("Are you sure you want to clean the database? This cannot be undone. [y/N] ")
	var response string
	fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DBPath); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")
}

// backup creates a backup of the database
func backup() {
	cfg := config.Load()

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("No database exists to backup")
		return
	}

	backupDir := "data/backups"
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		log.Fatalf("Failed to create backup directory: %v", err)
	}

	db, err := repositories.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	backupFile := filepath.Join(backupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		log.Fatalf("Failed to create backup file: %v", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		log.Fatalf("Failed to backup database: %v", err)
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup
func restore(backupFile string) {
	cfg := config.Load()

	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return
	}

	if _, err := os.Stat(cfg.DBPath); err == nil {
		fmt.Print("Existing database found. Do you want to replace it? [y/N] ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Operation cancelled")
			return
		}
		if err := os.RemoveAll(cfg.DBPath); err != nil {
			log.Fatalf("Failed to remove existing database: %v", err)
		}
	}

	if err := os.MkdirAll(cfg.DBPath, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := badger.Open(badger.DefaultOptions(cfg.DBPath).WithLogger(nil))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		log.Fatalf("Failed to open backup file: %v", err)
	}
	defer f.Close()

	if err := db.Load(f, 4); err != nil {
		log.Fatalf("Failed to restore database: %v", err)
	}
	fmt.Println("Database restored successfully")
}
