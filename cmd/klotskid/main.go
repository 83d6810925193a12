// Command klotskid is an HTTP server exposing the solver over /v1/solve,
// with a LevelDB-backed cache of prior results and Prometheus metrics,
// mirroring the way cmd/katie-server wires its own API and metrics servers.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asig/klotski/internal/cache"
	"github.com/asig/klotski/internal/config"
	"github.com/asig/klotski/internal/metrics"
)

var configFile = flag.String("config", "", "location of the klotskid config file")

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.LUTC)
	flag.Parse()

	if *configFile == "" {
		log.Fatalf("no config file provided, see -help")
	}
	cfg, err := config.Read(*configFile)
	if err != nil {
		log.Fatalf("failed to load config file: %v", err)
	}

	c, err := cache.Open(cfg.CacheFile)
	if err != nil {
		log.Fatalf("failed to open cache: %v", err)
	}
	defer c.Close()

	metrics.Register()
	go serveMetrics(cfg.MetricsAddr)

	h := &Handler{maxDepth: cfg.DefaultMaxDepth, cache: c}
	r := mux.NewRouter()
	r.HandleFunc("/v1/solve", HandleAPI(h.Solve)).Methods(http.MethodPost)
	r.HandleFunc("/v1/health", HandleAPI(h.Health)).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,

		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	log.Printf("starting klotskid API server at: %v", cfg.ServerAddr)
	log.Fatal(srv.ListenAndServe())
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	log.Printf("starting klotskid metrics server at: %v", addr)
	log.Fatal(srv.ListenAndServe())
}
