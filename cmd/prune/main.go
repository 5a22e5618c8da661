package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	cli "github.com/urfave/cli/v3"

	"frameview/internal/daemon"
	"frameview/internal/store"
)

func main() {
	app := &cli.Command{
		Name:  "frameview-prune",
		Usage: "Probe every cached frame and drop the ones the backend no longer serves",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the frames database file",
				Value:   "frames.db",
			},
			&cli.StringFlag{
				Name:    "backend-url",
				Aliases: []string{"b"},
				Usage:   "Base URL of the frame-extraction backend",
				Value:   "http://127.0.0.1:8000",
			},
			&cli.IntFlag{
				Name:  "probe-timeout",
				Usage: "Per-probe timeout in seconds",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:    "list-only",
				Aliases: []string{"n"},
				Usage:   "List cached records without probing or deleting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			probeTimeout := cmd.Int("probe-timeout")
			if probeTimeout <= 0 {
				return cli.Exit("probe-timeout must be greater than zero", 2)
			}

			logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      slog.LevelInfo,
				TimeFormat: "15:04:05",
			}))

			st := store.NewBoltStore(cmd.String("db"))
			defer st.Close()

			client := daemon.NewExtractorClient(cmd.String("backend-url"),
				time.Duration(probeTimeout)*time.Second,
				time.Duration(probeTimeout)*time.Second)

			if cmd.Bool("list-only") {
				records, err := st.ListAll(ctx)
				if err != nil {
					return fmt.Errorf("list cached frames: %w", err)
				}
				printRecords(records, client)
				return nil
			}

			kept, pruned, total, err := daemon.PruneStale(ctx, st, client, logger)
			if err != nil {
				return fmt.Errorf("prune cached frames: %w", err)
			}
			fmt.Printf("scanned %d record(s), pruned %d, kept %d\n", total, pruned, len(kept))
			printRecords(kept, client)
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printRecords(records []store.FrameRecord, client *daemon.ExtractorClient) {
	for _, rec := range records {
		fmt.Printf("%6d  %-24s  %s  %s\n", rec.ID, rec.Name, rec.UniqueID, client.ResolveURL(rec.URL))
	}
}
