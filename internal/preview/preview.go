// Package preview serves a built domain over HTTP while watching its source
// tree, rebuilding on changes. It is a convenience layer on top of the
// build pipeline; nothing in the pipeline depends on it.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces bursts of filesystem events (editors often fire
// several per save) into a single rebuild.
const debounceWindow = 300 * time.Millisecond

// Run builds once, then serves dstDomain on the given port and rebuilds
// whenever something under srcDomain changes. It blocks until ctx is
// cancelled and shuts the server down gracefully.
func Run(ctx context.Context, srcDomain, dstDomain string, port int, rebuild func() error) error {
	if st, err := os.Stat(srcDomain); err != nil || !st.IsDir() {
		return fmt.Errorf("source dir not found or not a directory: %s", srcDomain)
	}
	if err := rebuild(); err != nil {
		return fmt.Errorf("initial build: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := addDirsRecursive(watcher, srcDomain); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gziphandler.GzipHandler(http.FileServer(http.Dir(dstDomain))))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("server shutdown", "error", err)
		}
	}()
	go watchLoop(ctx, watcher, rebuild)

	slog.Info("preview listening", "port", port, "root", dstDomain, "url", fmt.Sprintf("http://localhost:%d/", port))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// watchLoop debounces watcher events and triggers rebuilds. New directories
// are added to the watch set as they appear.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, rebuild func() error) {
	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if shouldIgnoreEvent(ev.Name) {
				continue
			}
			if ev.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := addDirsRecursive(watcher, ev.Name); err != nil {
						slog.Warn("watch new dir", "path", ev.Name, "error", err)
					}
				}
			}
			debounce.Reset(debounceWindow)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("watch error", "error", err)
		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			slog.Info("source changed, rebuilding")
			if err := rebuild(); err != nil {
				slog.Error("rebuild failed", "error", err)
			}
		}
	}
}

// shouldIgnoreEvent filters out hidden files and editor temp files, which
// fire frequently during editing but never change the built site.
func shouldIgnoreEvent(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "#") {
		return true
	}
	switch filepath.Ext(name) {
	case ".swp", ".swx", ".tmp":
		return true
	}
	return false
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
