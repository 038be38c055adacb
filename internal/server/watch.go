package server

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/tuinmax/verandaplanner/pkg/config"
)

// watchProject reloads the configuration whenever the project's
// veranda.yaml changes on disk, so edits in an external editor show up
// live. The returned stop function closes the watcher.
func (s *Server) watchProject() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.settings.ProjectDir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != "veranda.yaml" {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}

				cfg, err := config.LoadProject(s.settings.ProjectDir)
				if err != nil {
					s.log.Warn().Err(err).Msg("project file changed but could not be reloaded")
					continue
				}
				s.log.Info().Str("file", ev.Name).Msg("project file reloaded")
				s.apply(config.Sanitize(*cfg))

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn().Err(err).Msg("project watcher error")
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
