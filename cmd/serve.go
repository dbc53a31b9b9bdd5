package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/customs-cli/internal/analyzer"
	"github.com/sells-group/customs-cli/internal/batch"
	"github.com/sells-group/customs-cli/internal/catalog"
	"github.com/sells-group/customs-cli/internal/runstore"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for analysis and enrichment requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		an := analyzer.New()
		orch := newOrchestrator(cfg)
		runs := runstore.New()
		processor := batch.NewProcessor(an, orch, time.Duration(cfg.Batch.ItemDelayMs)*time.Millisecond)

		r := chi.NewRouter()
		r.Use(cors.Handler(cors.Options{
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/analyze", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Description string `json:"description"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, an.Analyze(body.Description))
		})

		r.Post("/enhance", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Description string   `json:"description"`
				Missing     []string `json:"missing"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			if body.Description == "" {
				http.Error(w, `{"error":"description is required"}`, http.StatusBadRequest)
				return
			}

			missing := make([]catalog.Category, 0, len(body.Missing))
			for _, m := range body.Missing {
				missing = append(missing, catalog.Category(m))
			}
			if len(missing) == 0 {
				missing = an.Analyze(body.Description).Missing
			}

			writeJSON(w, http.StatusOK, orch.Enhance(req.Context(), body.Description, missing))
		})

		r.Post("/batch", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Records []batch.Record `json:"records"`
			}
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
			if len(body.Records) == 0 {
				http.Error(w, `{"error":"records are required"}`, http.StatusBadRequest)
				return
			}

			started := time.Now()
			results := processor.Process(req.Context(), body.Records)
			run := runs.Add(started, results)

			writeJSON(w, http.StatusOK, run)
		})

		r.Get("/runs", func(w http.ResponseWriter, _ *http.Request) {
			type runInfo struct {
				ID        string        `json:"id"`
				StartedAt time.Time     `json:"started_at"`
				Summary   batch.Summary `json:"summary"`
			}
			all := runs.List()
			infos := make([]runInfo, 0, len(all))
			for _, run := range all {
				infos = append(infos, runInfo{ID: run.ID, StartedAt: run.StartedAt, Summary: run.Summary})
			}
			writeJSON(w, http.StatusOK, infos)
		})

		r.Get("/runs/{id}", func(w http.ResponseWriter, req *http.Request) {
			run, ok := runs.Get(chi.URLParam(req, "id"))
			if !ok {
				http.Error(w, `{"error":"run not found"}`, http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, run)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("serve: listening", zap.Int("port", port))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return eris.Wrap(err, "serve: shutdown")
			}
			return nil
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "serve: listen")
			}
			return nil
		}
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("serve: encode response", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
