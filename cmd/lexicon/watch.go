package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexicon/pkg/catalog"
	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch PATH",
		Short: "Print a translation and print it again whenever it changes",
		Long: `Keeps the document loaded and prints the value at PATH each time it changes.
Files are watched for writes; Redis and S3 documents are polled on --interval.
Runs until interrupted.`,
		Example: `  lexicon watch checkout.title --file translations.yaml --lang de
  lexicon watch greeting --redis-url redis://localhost:6379 --redis-key app:translations.json --interval "@every 30s"`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	cmd.Flags().StringP("lang", "l", "", "locale to look up (default: the default locale)")
	cmd.Flags().StringP("default", "d", "", "value printed when nothing is found")
	cmd.Flags().String("interval", "@every 1m", "cron schedule for polling remote sources")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	lang, _ := cmd.Flags().GetString("lang")
	def, _ := cmd.Flags().GetString("default")
	interval, _ := cmd.Flags().GetString("interval")

	p := &changePrinter{out: cmd.OutOrStdout()}
	s, err := openSession(cmd, catalog.WithOnReload(func(store *i18n.Store) {
		l := lang
		if l == "" {
			l = store.DefaultLocale()
		}
		p.print(i18n.TOr(store, args[0], l, def))
	}))
	if err != nil {
		return err
	}
	defer s.close()

	ctx := cmd.Context()

	if s.cfg.File != "" {
		w, err := catalog.NewWatcher(s.catalog, s.cfg.File, catalog.WithWatcherLogger(s.log))
		if err != nil {
			return err
		}
		w.Start(ctx)
		<-ctx.Done()
		return w.Stop()
	}

	sched, err := catalog.NewScheduler(s.catalog, interval, catalog.WithSchedulerLogger(s.log))
	if err != nil {
		return err
	}
	sched.Start()
	s.log.DebugContext(ctx, "polling translations", slog.String("schedule", interval))

	<-ctx.Done()
	return sched.Stop(context.WithoutCancel(ctx))
}

// changePrinter writes a line only when it differs from the previous one.
type changePrinter struct {
	mu   sync.Mutex
	out  io.Writer
	last *string
}

func (p *changePrinter) print(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last != nil && *p.last == line {
		return
	}
	p.last = &line
	_, _ = fmt.Fprintln(p.out, line)
}
