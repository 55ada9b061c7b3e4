package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wbcassist/wbcmatch/internal/catalog"
	"github.com/wbcassist/wbcmatch/internal/config"
	"github.com/wbcassist/wbcmatch/internal/db"
	"github.com/wbcassist/wbcmatch/internal/handlers"
	"github.com/wbcassist/wbcmatch/internal/matchup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat, err := loadCatalog(ctx, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("[CATALOG] %d units across %d races", cat.Len(), len(cat.Races()))

	policy, err := loadPolicy(cfg.PolicyPath)
	if err != nil {
		log.Fatalf("Failed to load policy: %v", err)
	}

	engine := matchup.New(cat, policy, matchup.WithMaxEnemyRaces(cfg.MaxEnemyRaces))

	mux := http.NewServeMux()
	handlers.Register(mux, cat, engine)

	handler := handlers.RequestID(handlers.AccessLog(handlers.CORS(cfg.AllowedOrigins)(mux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("WBC matchup server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
}

// loadCatalog reads the SQLite catalog when one is configured, the embedded
// dataset otherwise.
func loadCatalog(ctx context.Context, sqlitePath string) (*catalog.Catalog, error) {
	if sqlitePath == "" {
		log.Println("[CATALOG] using embedded dataset")
		return catalog.Bundled()
	}

	sqlDB, err := db.ConnectSQLite(sqlitePath)
	if err != nil {
		return nil, err
	}
	defer sqlDB.Close()

	units, err := db.LoadUnits(ctx, sqlDB)
	if err != nil {
		return nil, err
	}
	log.Printf("[CATALOG] using %s", sqlitePath)
	return catalog.New(units)
}

func loadPolicy(path string) (matchup.Policy, error) {
	if path == "" {
		return matchup.DefaultPolicy()
	}
	log.Printf("[POLICY] using %s", path)
	return matchup.LoadPolicy(path)
}
