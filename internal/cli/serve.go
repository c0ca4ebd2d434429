package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/netlabtools/labviz/pkg/errors"
	"github.com/netlabtools/labviz/pkg/pipeline"
)

// indexPage embeds the diagram and refreshes it on reload, giving a
// live-edit loop against the lab file.
const indexPage = `<!DOCTYPE html>
<html>
<head><title>labviz preview</title></head>
<body style="margin:0">
  <img src="/diagram.svg" style="width:100%%;height:100vh;object-fit:contain" alt="%s">
</body>
</html>
`

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr   string  // listen address
	width  float64 // canvas width
	height float64 // canvas height
}

// newServeCmd creates the serve command: a small HTTP server that
// re-parses and re-renders the lab file on every request, so edits to
// the file show up on browser reload.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve <lab.conf>",
		Short: "Serve a live-updating preview of the lab diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().Float64VarP(&opts.width, "width", "w", 0, "canvas width (default 1000)")
	cmd.Flags().Float64VarP(&opts.height, "height", "H", 0, "canvas height (default 800)")

	return cmd
}

func runServe(cmd *cobra.Command, input string, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	// Fail fast on a bad path before binding the port.
	po := pipeline.Options{
		Width:   opts.width,
		Height:  opts.height,
		Formats: []string{pipeline.FormatSVG},
		Logger:  logger,
	}
	if _, err := pipeline.Run(ctx, input, po); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, indexPage, input)
	})

	r.Get("/diagram.svg", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		result, err := pipeline.Run(req.Context(), input, po)
		if err != nil {
			logger.Errorf("Render failed: %v", err)
			status := http.StatusInternalServerError
			if errors.Is(err, errors.ErrCodeFileNotFound) {
				status = http.StatusNotFound
			}
			http.Error(w, errors.UserMessage(err), status)
			return
		}
		logger.Debugf("Rendered %s in %s", input, time.Since(start).Round(time.Millisecond))
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(result.Artifacts[pipeline.FormatSVG])
	})

	server := &http.Server{Addr: opts.addr, Handler: r}
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	logger.Infof("Serving %s on http://localhost%s", input, opts.addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}
