package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	ProductsExtracted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_extracted_total",
			Help: "Total de produtos extraídos das páginas de listagem",
		},
	)

	BlocksFound = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "product_blocks_found",
			Help: "Blocos de produto encontrados na última página analisada",
		},
	)

	BlocksSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_blocks_skipped_total",
			Help: "Blocos de produto descartados por estrutura inesperada",
		},
	)

	FieldsMissing = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_fields_missing_total",
			Help: "Campos sem seletor correspondente, por campo",
		},
		[]string{"field"},
	)

	NormalizeDefaults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normalize_defaults_total",
			Help: "Campos que caíram no valor padrão durante a normalização",
		},
		[]string{"field"},
	)

	PagesFetched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pages_fetched_total",
			Help: "Páginas buscadas, por resultado",
		},
		[]string{"status"},
	)
)

// Start registers the collectors and serves /metrics on port. An empty port
// leaves the metrics unexposed.
func Start(port string) {
	if port == "" {
		return
	}
	prometheus.MustRegister(
		ProductsExtracted,
		BlocksFound,
		BlocksSkipped,
		FieldsMissing,
		NormalizeDefaults,
		PagesFetched,
	)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			log.Warn().Err(err).Str("port", port).Msg("metrics server stopped")
		}
	}()
}
