package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bestsellers/internal/cleaner"
	"bestsellers/internal/config"
	"bestsellers/internal/db"
	"bestsellers/internal/export"
	"bestsellers/internal/model"
	"bestsellers/internal/observability"
	"bestsellers/internal/repository"
)

func main() {
	cfg := config.Load()

	in := flag.String("in", filepath.Join(cfg.OutputDir, "raw_bestsellers.csv"), "CSV bruto gerado pelo crawler")
	run := flag.String("run", "", "ID da execução do crawler no Postgres (em vez do CSV)")
	out := flag.String("out", filepath.Join(cfg.OutputDir, "cleaned_bestsellers.csv"), "CSV limpo de saída")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	observability.SetupLogging(*verbose)

	raw, err := loadRaw(*in, *run, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao ler produtos brutos")
	}

	products := cleaner.Normalize(raw)
	log.Info().Int("products", len(products)).Msg("Limpeza concluída")

	if err := export.WriteProductsCSV(*out, products); err != nil {
		if errors.Is(err, export.ErrNoData) {
			log.Warn().Msg("Nenhum produto para salvar")
			return
		}
		log.Fatal().Err(err).Msg("Erro ao salvar CSV limpo")
	}

	if cfg.DatabaseURL == "" {
		return
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao conectar no Postgres (pgxpool)")
	}
	defer pool.Close()

	repo := &repository.ProductRepository{DB: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Erro ao criar tabela product_clean")
	}

	runID := uuid.New()
	if err := repo.SaveBatch(ctx, runID, products); err != nil {
		log.Fatal().Err(err).Msg("Erro ao salvar produtos limpos")
	}
	log.Info().Str("run", runID.String()).Msg("Produtos limpos salvos no Postgres")
}

func loadRaw(csvPath, run, databaseURL string) ([]model.RawProduct, error) {
	if run == "" {
		log.Info().Str("file", csvPath).Msg("Lendo arquivo bruto")
		return export.ReadRawCSV(csvPath)
	}

	runID, err := uuid.Parse(run)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", run, err)
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required to load run %s", runID)
	}

	dbConn, err := db.New(databaseURL)
	if err != nil {
		return nil, err
	}
	defer dbConn.Close()

	log.Info().Str("run", runID.String()).Msg("Lendo produtos brutos do Postgres")
	repo := &repository.RawRepository{DB: dbConn}
	return repo.ListRun(runID)
}
