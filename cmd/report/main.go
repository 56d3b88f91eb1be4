package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bestsellers/internal/analysis"
	"bestsellers/internal/cleaner"
	"bestsellers/internal/config"
	"bestsellers/internal/db"
	"bestsellers/internal/export"
	"bestsellers/internal/model"
	"bestsellers/internal/observability"
	"bestsellers/internal/repository"
)

const titleWidth = 60

// go run cmd/report/main.go
// go run cmd/report/main.go -run=<uuid>
func main() {
	cfg := config.Load()

	in := flag.String("in", filepath.Join(cfg.OutputDir, "cleaned_bestsellers.csv"), "CSV limpo gerado pelo cleaner")
	run := flag.String("run", "", "ID da execução no Postgres (em vez do CSV)")
	top := flag.Int("top", 10, "Quantidade de produtos no ranking de avaliações")
	maxPrice := flag.Float64("max-price", 200, "Preço máximo para a tabela preço x avaliação")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	observability.SetupLogging(*verbose)

	products, err := load(*in, *run, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao carregar produtos")
	}

	s := analysis.Summarize(products)
	fmt.Printf("## Summary\n\nproducts: %d, priced: %d, rated: %d\n", s.Count, s.Priced, s.Rated)
	if s.Priced > 0 {
		fmt.Printf("price: min %.2f, max %.2f, mean %.2f\n", s.MinPrice, s.MaxPrice, s.MeanPrice)
	}
	if s.Rated > 0 {
		fmt.Printf("rating: mean %.2f\n", s.MeanRating)
	}

	fmt.Printf("\n## Top %d most reviewed\n\n", *top)
	printTable(analysis.TopByReviews(products, *top))

	fmt.Printf("\n## Price vs. rating (under $%.0f)\n\n", *maxPrice)
	printTable(analysis.Rated(analysis.UnderPrice(products, *maxPrice)))
}

func load(csvPath, run, databaseURL string) ([]model.Product, error) {
	if run == "" {
		// O CSV limpo é texto; normalizar de novo devolve os mesmos valores.
		raw, err := export.ReadRawCSV(csvPath)
		if err != nil {
			return nil, err
		}
		return cleaner.Normalize(raw), nil
	}

	runID, err := uuid.Parse(run)
	if err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", run, err)
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required to load run %s", runID)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	repo := &repository.ProductRepository{DB: pool}
	return repo.ListRun(ctx, runID)
}

func printTable(products []model.Product) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, p.Record())
	}
	fmt.Println(strings.Join(analysis.MarkdownTable(model.Columns, rows, titleWidth), "\n"))
}
