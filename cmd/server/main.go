package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	yamlcatalog "craftatlas/internal/adapter/catalog/yamlfile"
	httpadapter "craftatlas/internal/adapter/http"
	gormrepo "craftatlas/internal/adapter/repo/gorm"
	"craftatlas/internal/adapter/repo/memory"
	"craftatlas/internal/app/hints"
	"craftatlas/internal/app/layouts"
	"craftatlas/internal/app/notes"
	"craftatlas/internal/app/overrides"
	"craftatlas/internal/app/plans"
	"craftatlas/internal/app/portals"
	"craftatlas/internal/app/ports"
	"craftatlas/internal/domain/layout"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dataDir := strEnv("CRAFTATLAS_DATA_DIR", "./data")
	addr := strEnv("CRAFTATLAS_ADDR", ":8080")

	provider, err := yamlcatalog.Load(dataDir)
	if err != nil {
		log.Fatalf("load catalog from %s: %v", dataDir, err)
	}

	portalRepo, hintRepo, noteRepo, layoutRepo, overrideRepo := buildRepos()
	replayOverrides(provider, overrideRepo)

	cache := plans.NewCache()
	h := httpadapter.Handler{
		PlansUC:   plans.UseCase{Catalog: provider, Cache: cache},
		LayoutsUC: layouts.UseCase{Catalog: provider, Layouts: layoutRepo, Rand: layout.NewRand(time.Now().UnixNano())},
		NotesUC:   notes.UseCase{Notes: noteRepo},
		HintsUC:   hints.UseCase{Hints: hintRepo},
		PortalsUC: portals.UseCase{Portals: portalRepo},
		OverridesUC: overrides.UseCase{
			Catalog:   provider,
			Overrides: overrideRepo,
			Cache:     cache,
		},
		Catalog: provider,
	}

	s := server.Default(server.WithHostPorts(addr))
	s.Use(httpadapter.CORSMiddleware())
	h.RegisterRoutes(s)

	log.Printf("craftatlas server listening on %s (catalog: %s)", addr, dataDir)
	s.Spin()
}

func buildRepos() (ports.PortalRepository, ports.HintRepository, ports.NoteRepository, ports.LayoutRepository, ports.RecipeOverrideRepository) {
	dsn := strings.TrimSpace(os.Getenv("CRAFTATLAS_DB_DSN"))
	if dsn == "" {
		log.Println("CRAFTATLAS_DB_DSN not set, using in-memory repositories")
		store := memory.NewStore()
		return memory.NewPortalRepo(store), memory.NewHintRepo(store), memory.NewNoteRepo(store), memory.NewLayoutRepo(store), memory.NewRecipeOverrideRepo(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewPortalRepo(db), gormrepo.NewHintRepo(db), gormrepo.NewNoteRepo(db), gormrepo.NewLayoutRepo(db), gormrepo.NewRecipeOverrideRepo(db)
}

// replayOverrides re-applies persisted recipe patches so the live catalog
// matches its state before the last shutdown.
func replayOverrides(provider *yamlcatalog.Provider, repo ports.RecipeOverrideRepository) {
	records, err := repo.List(context.Background())
	if err != nil {
		log.Fatalf("load recipe overrides: %v", err)
	}
	for _, record := range records {
		if err := provider.ApplyOverride(context.Background(), record); err != nil {
			log.Printf("skip override for %s: %v", record.RecipeID, err)
		}
	}
	if len(records) > 0 {
		log.Printf("re-applied %d recipe overrides", len(records))
	}
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
