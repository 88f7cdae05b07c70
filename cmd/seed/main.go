package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/frotadocs/frotadocs-backend/config"
	"github.com/frotadocs/frotadocs-backend/internal/app/service"
	"github.com/frotadocs/frotadocs-backend/internal/db"
	"github.com/frotadocs/frotadocs-backend/internal/ingest"
)

// Bulk-imports a carrier spreadsheet through the same reconciler the API
// uses. Handy for seeding a fresh environment from the fleet export.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run ./cmd/seed <spreadsheet: .csv|.xls|.xlsx>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Printf("Reading spreadsheet: %s\n", filePath)
	file, err := os.Open(filePath)
	if err != nil {
		log.Fatal("Failed to open file:", err)
	}
	defer file.Close()

	table, err := ingest.ReadTable(file, filepath.Base(filePath))
	if err != nil {
		log.Fatal("Failed to read spreadsheet:", err)
	}

	fmt.Printf("Rows to reconcile: %d\n", table.Len())

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	ingestService := service.NewIngestService(db.GetDB())
	report, err := ingestService.ImportCompanies(table)
	if err != nil {
		log.Fatal("Import failed:", err)
	}

	fmt.Printf("Created: %d\n", report.Created)
	if len(report.AlreadyExists) > 0 {
		fmt.Printf("Already registered: %s\n", strings.Join(report.AlreadyExists, ", "))
	}
	fmt.Println("Import completed.")
}
