// Package app implements the application layer for hoard.
package app

import (
	"context"
	"path/filepath"
	"sync"

	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/hoard/internal/core/ports"
	"go.trai.ch/hoard/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	resolver *resolver.Resolver
}

// New creates a new App instance.
func New(res *resolver.Resolver) *App {
	return &App{resolver: res}
}

// Resolve looks up every named component and returns the resolved paths per
// id. Independent ids are resolved concurrently; the per-tier locks still
// serialize access to each cache scope. With single set, every component
// must resolve to exactly one file.
func (a *App) Resolve(ctx context.Context, ids []string, single bool) (map[string][]string, error) {
	if len(ids) == 0 {
		return nil, domain.ErrNoComponentsSpecified
	}

	var mu sync.Mutex
	out := make(map[string][]string, len(ids))

	g, _ := errgroup.WithContext(ctx)
	for _, raw := range ids {
		id := domain.ComponentID(raw)
		g.Go(func() error {
			var files []string
			var err error
			if single {
				var file string
				file, err = a.resolver.File(id, domain.Fail)
				files = []string{file}
			} else {
				files, err = a.resolver.Files(id, domain.Fail)
			}
			if err != nil {
				return err
			}
			mu.Lock()
			out[id.String()] = files
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Define registers the given files as the local component id, replacing any
// prior mapping. Paths are absolutized so the cache stays valid when the
// working directory changes.
func (a *App) Define(id string, files []string) error {
	abs := make([]string, 0, len(files))
	for _, f := range files {
		p, err := filepath.Abs(f)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve file path"), "file", f)
		}
		abs = append(abs, p)
	}
	return a.resolver.Define(domain.ComponentID(id), abs)
}

// Publish pushes the unique local file for id to the global store.
func (a *App) Publish(id string) error {
	return a.resolver.Publish(domain.ComponentID(id))
}

// Clear removes id's artifact from the global store.
func (a *App) Clear(id string) error {
	return a.resolver.Clear(domain.ComponentID(id))
}

// Components contains all the initialized application components. It gives
// the CLI layer controlled access to what it needs.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
}
