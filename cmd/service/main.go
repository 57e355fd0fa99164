package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	downloader "youtube-downloader-service/internal/downloader"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	port := getenv("PORT", "8080")
	apiKey := getenv("API_KEY", "")
	if apiKey == "" {
		log.Fatal("API_KEY is required")
	}

	cfg := downloader.Config{
		APIKey:         apiKey,
		MaxDuration:    getenvInt("MAX_DURATION_SECONDS", downloader.DefaultMaxDuration),
		YtDlpPath:      getenv("YTDLP_PATH", downloader.DefaultYtDlpPath),
		ExtractTimeout: time.Duration(getenvInt("EXTRACT_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	extractor := downloader.NewYtDlpExtractor(cfg.YtDlpPath, cfg.ExtractTimeout)
	srv := downloader.NewServer(extractor, cfg)

	r := chi.NewRouter()
	r.Use(downloader.CORSMiddleware)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(downloader.RecoverJSON)
	r.Use(middleware.Timeout(90 * time.Second))

	r.Get("/", srv.HandleHome)
	r.Get("/health", srv.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(downloader.RequireAPIKey(cfg.APIKey))
		r.Get("/api/youtube-downloader", srv.HandleDownload)
		r.Get("/api/video-info", srv.HandleInfo)
	})

	r.NotFound(srv.HandleNotFound)

	log.Printf("youtube-downloader-service listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("youtube-downloader-service: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	raw := getenv(k, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
