package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okarpov/sitemap-kit/app/api"
	"github.com/okarpov/sitemap-kit/app/cfg"
	"github.com/okarpov/sitemap-kit/app/sitemap"
	"github.com/okarpov/sitemap-kit/app/source"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	doc, index, err := source.NewLoader(appCfg.PagesFile, appCfg.BaseUrl).Run()
	if err != nil {
		slog.Error("Failed to load page set", "path", appCfg.PagesFile, "error", err)
		os.Exit(1)
	}

	slog.Info("Page set loaded", "path", appCfg.PagesFile, "urls", doc.Count())
	if doc.ShouldSplit() {
		slog.Warn("Document exceeds the split threshold, consider multiple sitemaps and an index", "urls", doc.Count())
	}

	if appCfg.Print {
		out, err := renderDocument(doc, appCfg.Format)
		if err != nil {
			slog.Error("Rendering failed", "format", appCfg.Format, "error", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}

	handler := api.NewHandler(doc, index)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port, "version", appCfg.Version)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}

func renderDocument(doc *sitemap.Document, format string) (string, error) {
	if format == "txt" {
		return doc.ToPlainText(), nil
	}
	return doc.Render(format)
}
