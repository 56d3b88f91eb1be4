package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"bestsellers/internal/config"
	"bestsellers/internal/crawler"
	"bestsellers/internal/db"
	"bestsellers/internal/export"
	"bestsellers/internal/model"
	"bestsellers/internal/observability"
	"bestsellers/internal/repository"
)

// go run cmd/crawler/main.go -url="https://www.amazon.com/Best-Sellers-Computers-Accessories/zgbs/pc/"
// go run cmd/crawler/main.go -file=page.html
func main() {
	cfg := config.Load()

	urlsArg := flag.String("url", cfg.TargetURL, "URLs das páginas de listagem, separadas por vírgula")
	file := flag.String("file", "", "Arquivo HTML salvo para analisar em vez de buscar")
	out := flag.String("out", filepath.Join(cfg.OutputDir, "raw_bestsellers.csv"), "Arquivo CSV de saída")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	observability.SetupLogging(*verbose)
	observability.Start(cfg.MetricsPort)

	ctx := context.Background()
	runID := uuid.New()

	var rawRepo *repository.RawRepository
	if cfg.DatabaseURL != "" {
		dbConn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Erro ao conectar no Postgres")
		}
		defer dbConn.Close()
		rawRepo = &repository.RawRepository{DB: dbConn}
		if err := rawRepo.EnsureSchema(); err != nil {
			log.Fatal().Err(err).Msg("Erro ao criar tabela product_raw")
		}
	}

	var all []model.RawProduct
	handler := func(source string, products []model.RawProduct) {
		log.Info().Str("source", source).Int("products", len(products)).Msg("página analisada")
		all = append(all, products...)
		if rawRepo == nil || len(products) == 0 {
			return
		}
		if err := rawRepo.SaveBatch(runID, source, products); err != nil {
			log.Error().Err(err).Str("source", source).Msg("Erro ao salvar produtos brutos")
		}
	}

	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("Erro ao ler arquivo HTML")
		}
		handler(*file, crawler.ParseProducts(string(b), cfg.BaseURL))
	} else {
		fetcher := &crawler.Fetcher{
			Client:         &http.Client{Timeout: cfg.FetchTimeout},
			UserAgent:      cfg.UserAgent,
			AcceptLanguage: cfg.AcceptLanguage,
		}
		if cfg.RedisURL != "" {
			redisClient := redis.NewClient(&redis.Options{
				Addr: cfg.RedisURL,
			})
			defer redisClient.Close()
			fetcher.Cache = &crawler.PageCache{Client: redisClient, TTL: cfg.CacheTTL}
		}

		urls := strings.Split(*urlsArg, ",")
		for i := range urls {
			urls[i] = strings.TrimSpace(urls[i])
		}
		crawler.CrawlPages(ctx, fetcher, urls, cfg.BaseURL, handler)
	}

	if err := export.WriteRawCSV(*out, all); err != nil {
		if errors.Is(err, export.ErrNoData) {
			log.Warn().Msg("Nenhum produto para salvar")
			return
		}
		log.Fatal().Err(err).Msg("Erro ao salvar CSV")
	}

	log.Info().Str("run", runID.String()).Int("products", len(all)).Msg("Crawler finalizado")
}
