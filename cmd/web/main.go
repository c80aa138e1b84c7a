// Command studydesk serves the studydesk web pages. It keeps an in-memory copy
// of the papers and words tables and reaches the remote store over gRPC.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/studydesk/internal/buildinfo"
	"github.com/dmitrijs2005/studydesk/internal/client/cache"
	"github.com/dmitrijs2005/studydesk/internal/client/client"
	"github.com/dmitrijs2005/studydesk/internal/client/config"
	"github.com/dmitrijs2005/studydesk/internal/client/web"
	"github.com/dmitrijs2005/studydesk/internal/domain"
	"github.com/dmitrijs2005/studydesk/internal/logging"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "studydesk:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("studydesk", pflag.ContinueOnError)
	config.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	buildinfo.PrintBuildData(os.Stdout)

	store, err := client.NewGRPCClient(cfg.StoreURL, cfg.StoreKey, client.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return err
	}
	defer store.Close()

	papers := cache.NewCollection[domain.Paper]("papers", client.Papers(store), logger)
	words := cache.NewCollection[domain.Word]("words", client.Words(store), logger)

	srv, err := web.NewServer(
		cache.NewMutator[domain.Paper, domain.PaperDraft, domain.PaperPatch](client.Papers(store), papers, logger),
		cache.NewMutator[domain.Word, domain.WordDraft, domain.WordPatch](client.Words(store), words, logger),
		store, loc, logger,
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// A failed initial load is retried by the first page view.
		if err := papers.Activate(ctx); err != nil {
			logger.Warn(ctx, "initial papers load failed", "error", err.Error())
		}
		if err := words.Activate(ctx); err != nil {
			logger.Warn(ctx, "initial words load failed", "error", err.Error())
		}
		return nil
	})
	g.Go(func() error { return srv.Run(ctx, cfg.Listen) })

	return g.Wait()
}
