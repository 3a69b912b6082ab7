package loft

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Details is used to present the result of a batch upload.
type Details struct {
	Keys     []string
	Bytes    int
	Duration time.Duration
}

func (d Details) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("uploaded %d objects (%d bytes) in %s", len(d.Keys), d.Bytes, d.Duration)
}

// UploadAll uploads entities concurrently with at most threads in flight. Each
// upload signs independently; a failure cancels the remaining work and the
// first error is returned.
func (l *Loft) UploadAll(ctx context.Context, entities []Entity, threads int) (*Details, error) {
	if l.backend == nil {
		return nil, fmt.Errorf("no storage backend configured")
	}

	if threads < 1 {
		threads = 1
	}

	start := time.Now()
	keys := make([]string, len(entities))
	pending := make(chan int)

	eg, ctx := errgroup.WithContext(ctx)

	for i := 0; i < threads; i++ {
		eg.Go(func() error {
			for idx := range pending {
				key, err := l.Upload(ctx, entities[idx])
				if err != nil {
					Logger.Error().Err(err).Msgf("upload failed for '%s'", entities[idx].Name)
					return err
				}
				keys[idx] = key
			}
			return nil
		})
	}

	eg.Go(func() error {
		defer close(pending)
		for i := range entities {
			select {
			case pending <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, e := range entities {
		total = total + len(e.Data)
	}

	return &Details{
		Keys:     keys,
		Bytes:    total,
		Duration: time.Since(start),
	}, nil
}
