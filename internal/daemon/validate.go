package daemon

import (
	"context"
	"log/slog"
	"sync"

	"frameview/internal/store"
)

// probeConcurrency bounds how many liveness probes run at once.
const probeConcurrency = 8

// PruneStale probes every cached record and deletes the ones whose backing
// image no longer resolves. Probes for distinct records run concurrently;
// each record's fate depends only on its own probe. Pruning is best-effort:
// a failed delete is logged and retried naturally on the next run. total is
// the number of records that existed before pruning.
func PruneStale(ctx context.Context, st store.FrameStore, client *ExtractorClient, log *slog.Logger) (kept []store.FrameRecord, pruned, total int, err error) {
	records, err := st.ListAll(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	total = len(records)

	alive := make([]bool, len(records))
	var wg sync.WaitGroup
	sem := make(chan struct{}, probeConcurrency)
	for i, rec := range records {
		wg.Add(1)
		go func(i int, rec store.FrameRecord) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if perr := client.Probe(ctx, client.ResolveURL(rec.URL)); perr != nil {
				log.Info("cached frame is stale", "id", rec.ID, "name", rec.Name, "error", perr)
				return
			}
			alive[i] = true
		}(i, rec)
	}
	wg.Wait()

	for i, rec := range records {
		if alive[i] {
			kept = append(kept, rec)
			continue
		}
		if derr := st.DeleteByID(ctx, rec.ID); derr != nil {
			log.Warn("failed to prune stale frame", "id", rec.ID, "error", derr)
			continue
		}
		pruned++
	}
	return kept, pruned, total, nil
}

// ValidateCache runs the startup liveness check and folds the outcome into
// the shell state.
func (s *Server) ValidateCache(ctx context.Context) error {
	kept, pruned, total, err := PruneStale(ctx, s.store, s.extractor, s.log)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = cacheValidated(s.state, total > 0)
	s.mu.Unlock()

	s.log.Info("cache validated", "kept", len(kept), "pruned", pruned)
	return nil
}
