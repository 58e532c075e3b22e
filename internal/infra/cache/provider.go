package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booknow/config"
	"booknow/internal/domain/constants"
	"booknow/internal/domain/service"
	"booknow/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/fileblob" // file:// snapshots
	_ "gocloud.dev/blob/memblob"  // mem:// snapshots
)

const snapshotInterval = 30 * time.Second

// Params defines the dependencies of the cache instances.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the four cache instances by name, plus the registry for diagnostics.
type Result struct {
	fx.Out

	User     service.Cache `name:"userCache"`
	Business service.Cache `name:"businessCache"`
	Search   service.Cache `name:"searchCache"`
	Stats    service.Cache `name:"statsCache"`
	Registry *Registry
}

// Registry holds every cache instance of the process.
type Registry struct {
	managers []*Manager
}

// Stats returns the counters of every cache.
func (r *Registry) Stats() []Stats {
	out := make([]Stats, 0, len(r.managers))
	for _, m := range r.managers {
		out = append(out, m.Stats())
	}

	return out
}

// New builds the user, business, search and stats caches. Instances are independent,
// so invalidating one never touches the others.
func New(params Params) (Result, error) {
	cfg := params.Config.Cache

	user := NewManager(constants.CacheUser, cfg.User.TTL, cfg.User.MaxSize, params.Logger)
	business := NewManager(constants.CacheBusiness, cfg.Business.TTL, cfg.Business.MaxSize, params.Logger)
	search := NewManager(constants.CacheSearch, cfg.Search.TTL, cfg.Search.MaxSize, params.Logger)
	stats := NewManager(constants.CacheStats, cfg.Stats.TTL, cfg.Stats.MaxSize, params.Logger)

	persisted := make([]*Manager, 0, 4)
	for _, pair := range []struct {
		m   *Manager
		cfg config.CacheInstanceConfig
	}{{user, cfg.User}, {business, cfg.Business}, {search, cfg.Search}, {stats, cfg.Stats}} {
		if pair.cfg.Persist {
			persisted = append(persisted, pair.m)
		}
	}

	if len(persisted) > 0 && cfg.BucketURL != "" {
		if err := attachPersistence(params, persisted); err != nil {
			return Result{}, err
		}
	}

	return Result{
		User:     user,
		Business: business,
		Search:   search,
		Stats:    stats,
		Registry: &Registry{managers: []*Manager{user, business, search, stats}},
	}, nil
}

func attachPersistence(params Params, managers []*Manager) error {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Cache.BucketURL)
	if err != nil {
		return errors.Wrap(err, "failed to open cache bucket")
	}

	persister := NewPersister(bucket, params.Logger)
	runCtx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, m := range managers {
				n, err := persister.Load(ctx, m)
				if err != nil {
					params.Logger.WarnContext(ctx, "Cache snapshot not restored",
						slog.String("cache", m.Name()), slog.Any("error", err))

					continue
				}
				params.Logger.InfoContext(ctx, "Cache snapshot restored",
					slog.String("cache", m.Name()), slog.Int("entries", n))
			}

			for _, m := range managers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					persister.Run(runCtx, m, snapshotInterval)
				}()
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()

			return errors.WithStack(bucket.Close())
		},
	})

	return nil
}
