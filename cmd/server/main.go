package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	httpadapter "lootgrid/internal/adapter/http"
	metricsinmem "lootgrid/internal/adapter/metrics/inmemory"
	gormrepo "lootgrid/internal/adapter/repo/gorm"
	"lootgrid/internal/adapter/repo/memory"
	"lootgrid/internal/app/auth"
	"lootgrid/internal/app/explore"
	"lootgrid/internal/app/journal"
	"lootgrid/internal/app/ports"
	"lootgrid/internal/app/status"
	"lootgrid/internal/config"
	"lootgrid/internal/domain/expedition"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	grid, err := config.LoadGrid(os.Getenv("LOOTGRID_TUNING"))
	if err != nil {
		log.Fatalf("load grid tuning: %v", err)
	}

	statsRepo, eventRepo, credentialRepo, txManager := buildRepos()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		RegisterUC: auth.RegisterUseCase{Credentials: credentialRepo, Now: time.Now},
		AuthUC:     auth.VerifyUseCase{Credentials: credentialRepo},
		ExploreUC: explore.UseCase{
			TxManager: txManager,
			StatsRepo: statsRepo,
			EventRepo: eventRepo,
			Metrics:   kpiRecorder,
			Grid:      grid,
			Simulate:  expedition.SimulationService{},
			Now:       time.Now,
		},
		StatusUC:  status.UseCase{StatsRepo: statsRepo, Grid: grid, Now: time.Now},
		JournalUC: journal.UseCase{Events: eventRepo},
		KPI:       kpiRecorder,
	}

	addr := os.Getenv("LOOTGRID_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("lootgrid server listening on %s (grid %dx%d, cooldown %ds)",
		addr, grid.RowWidth(), grid.RowWidth(), grid.CooldownSeconds)
	s.Spin()
}

func buildRepos() (ports.PlayerStatsRepository, ports.EventRepository, ports.PlayerCredentialRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("LOOTGRID_DB_DSN"))
	if dsn == "" {
		log.Println("LOOTGRID_DB_DSN not set, using in-memory store")
		store := memory.NewStore()
		return memory.NewPlayerStatsRepo(store), memory.NewEventRepo(store), memory.NewPlayerCredentialRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if dir := strings.TrimSpace(os.Getenv("LOOTGRID_MIGRATIONS_DIR")); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	return gormrepo.NewPlayerStatsRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewPlayerCredentialRepo(db), gormrepo.NewTxManager(db)
}
