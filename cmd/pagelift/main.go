// Command pagelift converts scanned page images into DOCX documents,
// either as a one-shot CLI or as an HTTP service.
//
// Usage:
//
//	pagelift -serve [-config config.yaml]
//	pagelift [-lang auto] [-o result.docx] page1.jpg page2.jpg
//	pagelift -text page.jpg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/config"
	"github.com/pagelift/pagelift/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML configuration file")
		serve      = flag.Bool("serve", false, "run the HTTP service")
		addr       = flag.String("addr", "", "listen address, overrides the config file")
		lang       = flag.String("lang", "", "recognition languages, e.g. \"eng+rus\" or \"auto\"")
		fast       = flag.Bool("fast", false, "skip expensive preprocessing for faster, lower quality results")
		asText     = flag.Bool("text", false, "print recognized text instead of writing a DOCX file")
		output     = flag.String("o", "result.docx", "output DOCX path")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *lang != "" {
		cfg.OCR.Languages = *lang
	}
	if *fast {
		cfg.Preprocess.FastMode = true
	}

	if *serve {
		if err := runServer(cfg, logger); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input images; pass image files or use -serve")
		flag.Usage()
		os.Exit(2)
	}

	if err := runConvert(cfg, logger, flag.Args(), *asText, *output); err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := server.New(cfg, logger).ListenAndServe(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func runConvert(cfg *config.Config, logger *slog.Logger, paths []string, asText bool, output string) error {
	conv := pagelift.Open(paths...).
		Language(cfg.OCR.Languages).
		WithLayout(cfg.LayoutEngineConfig())
	if cfg.Preprocess.FastMode {
		conv = conv.FastMode()
	}

	if asText {
		text, warnings, err := conv.Text()
		if err != nil {
			return err
		}
		logWarnings(logger, warnings)
		fmt.Println(text)
		return nil
	}

	warnings, err := conv.DocxFile(output)
	if err != nil {
		return err
	}
	logWarnings(logger, warnings)
	logger.Info("wrote document", "path", output, "pages", len(paths))
	return nil
}

func logWarnings(logger *slog.Logger, warnings []pagelift.Warning) {
	for _, w := range warnings {
		logger.Warn("page degraded", "detail", w.String())
	}
}
