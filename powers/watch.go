package powers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader recompiles one character whenever its on-disk spec or power script
// changes, so power edits show up in a running game without a restart.
// Recompiled characters arrive on Characters; a failed compile is logged and
// the previous power stays active.
type Reloader struct {
	name       string
	watcher    *fsnotify.Watcher
	Characters chan *Character
	closeCh    chan struct{}
	once       sync.Once
}

// NewReloader watches the powers/characters and powers/scripts directories
// for the named character. Both directories must exist on disk; an
// embedded-only install has nothing to watch.
func NewReloader(characterName string) (*Reloader, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("powers: watch: %w", err)
	}
	for _, dir := range []string{diskPath("characters"), diskPath("scripts")} {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("powers: watch %s: %w", dir, err)
		}
	}
	r := &Reloader{
		name:       characterName,
		watcher:    w,
		Characters: make(chan *Character, 1),
		closeCh:    make(chan struct{}),
	}
	go r.run()
	return r, nil
}

func (r *Reloader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.closeCh)
		err = r.watcher.Close()
	})
	return err
}

// Poll returns a recompiled character if one is pending, without blocking.
// The game calls this once per frame.
func (r *Reloader) Poll() *Character {
	if r == nil {
		return nil
	}
	select {
	case c := <-r.Characters:
		return c
	default:
		return nil
	}
}

func (r *Reloader) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !reloadableFile(event.Name) {
				continue
			}
			// Editors fire several events per save.
			if now := time.Now(); now.Sub(last) > 100*time.Millisecond {
				last = now
				r.reload()
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("powers: watch: %v", err)
		case <-r.closeCh:
			return
		}
	}
}

// reload recompiles the watched character from disk. The channel holds one
// pending character; a newer compile replaces an unconsumed older one.
func (r *Reloader) reload() {
	c, err := r.compile()
	if err != nil {
		log.Printf("powers: reload %s: %v", r.name, err)
		return
	}
	select {
	case <-r.Characters:
	default:
	}
	r.Characters <- c
}

// compile rebuilds the watched character. The spec loaders prefer on-disk
// copies over the embedded ones, so edits are picked up here.
func (r *Reloader) compile() (*Character, error) {
	names, err := CharacterFiles()
	if err != nil {
		return nil, err
	}
	for _, n := range names {
		spec, err := LoadCharacterSpec(n)
		if err != nil {
			return nil, err
		}
		if spec.Name != r.name {
			continue
		}
		c := &Character{Spec: spec, Power: NopPower{}}
		if spec.Script != "" {
			p, err := LoadPower(spec.Script)
			if err != nil {
				return nil, err
			}
			c.Power = p
		}
		return c, nil
	}
	return nil, fmt.Errorf("character %q not found", r.name)
}

func reloadableFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
