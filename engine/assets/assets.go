package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/spaghettifunk/kiln/engine/core"
)

// Asset is an indexed file below the asset directory. Handle stays the same
// for a path for the lifetime of the manager, across reloads.
type Asset struct {
	Handle     uuid.UUID
	Path       string
	Kind       Kind
	LastLoaded time.Time
}

// Changed reports that an asset file was created, written or removed.
type Changed struct {
	Handle  uuid.UUID
	Path    string
	Kind    Kind
	Removed bool
}

// Manager indexes the asset directory, loads assets by their path relative to
// it and, once Watch is called, tracks changes on disk.
type Manager struct {
	root    string
	assets  map[string]Asset
	handles map[string]uuid.UUID

	mutex sync.RWMutex

	fsnotify *fsnotify.Watcher
	pending  []Changed
	done     chan struct{}
	wg       sync.WaitGroup
	isClosed bool
}

func NewManager(dir string) (*Manager, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrAssetNotFound, dir)
	}

	m := &Manager{
		root:    filepath.Clean(dir),
		assets:  make(map[string]Asset),
		handles: make(map[string]uuid.UUID),
	}
	if err := m.index(m.root); err != nil {
		return nil, err
	}
	core.LogInfo("asset manager indexed %d assets in %s", len(m.assets), m.root)
	return m, nil
}

func (m *Manager) Root() string {
	return m.root
}

// Resolve returns the file system path of an asset name.
func (m *Manager) Resolve(name string) string {
	return filepath.Join(m.root, filepath.FromSlash(name))
}

func (m *Manager) Lookup(name string) (Asset, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	a, ok := m.assets[filepath.ToSlash(name)]
	return a, ok
}

func (m *Manager) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.assets)
}

// LoadShader reads a vertex and fragment shader pair.
func (m *Manager) LoadShader(vertex, fragment string) (*ShaderSource, error) {
	src, err := LoadShaderSource(m.Resolve(vertex), m.Resolve(fragment))
	if err != nil {
		return nil, err
	}
	m.touch(vertex)
	m.touch(fragment)
	return src, nil
}

// LoadTexture decodes an image asset into RGBA8 pixels.
func (m *Manager) LoadTexture(name string, flipY bool) (*Texture, error) {
	tex, err := LoadTexture(m.Resolve(name), flipY)
	if err != nil {
		return nil, err
	}
	m.touch(name)
	return tex, nil
}

func (m *Manager) touch(name string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := filepath.ToSlash(name)
	if a, ok := m.assets[key]; ok {
		a.LastLoaded = time.Now()
		m.assets[key] = a
	}
}

// Watch starts watching the asset directory and all sub-directories.
func (m *Manager) Watch() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.isClosed {
		return ErrManagerClosed
	}
	if m.fsnotify != nil {
		return nil
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.fsnotify = fsWatch
	m.done = make(chan struct{})
	if err := m.watchRecursive(m.root); err != nil {
		fsWatch.Close()
		m.fsnotify = nil
		return err
	}

	m.wg.Add(1)
	go m.start()
	core.LogDebug("watching %s for asset changes", m.root)
	return nil
}

// Changes returns the changes seen since the previous call. Repeated events
// for the same path are merged.
func (m *Manager) Changes() []Changed {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	out := m.pending
	m.pending = nil
	return out
}

// Close stops watching. The index stays readable.
func (m *Manager) Close() error {
	m.mutex.Lock()
	if m.isClosed {
		m.mutex.Unlock()
		return ErrManagerClosed
	}
	m.isClosed = true
	watching := m.fsnotify != nil
	m.mutex.Unlock()

	if watching {
		close(m.done)
		m.wg.Wait()
	}
	return nil
}

func (m *Manager) start() {
	defer m.wg.Done()
	for {
		select {
		case e, ok := <-m.fsnotify.Events:
			if !ok {
				return
			}
			m.handleEvent(e)

		case err, ok := <-m.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-m.done:
			m.fsnotify.Close()
			return
		}
	}
}

func (m *Manager) handleEvent(e fsnotify.Event) {
	if e.Op&fsnotify.Create != 0 {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			m.mutex.Lock()
			if err := m.watchRecursive(e.Name); err != nil {
				core.LogWarn("asset watcher: %s", err)
			}
			m.mutex.Unlock()
			return
		}
	}

	switch {
	case e.Op&(fsnotify.Create|fsnotify.Write) != 0:
		if a, ok := m.indexFile(e.Name); ok {
			m.notify(Changed{Handle: a.Handle, Path: a.Path, Kind: a.Kind})
		}
	case e.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		if a, ok := m.removeAsset(e.Name); ok {
			m.notify(Changed{Handle: a.Handle, Path: a.Path, Kind: a.Kind, Removed: true})
		}
	}
}

func (m *Manager) notify(c Changed) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for i := range m.pending {
		if m.pending[i].Path == c.Path {
			m.pending[i] = c
			return
		}
	}
	m.pending = append(m.pending, c)
}

// watchRecursive adds dir and every directory below it to the watch list and
// indexes the files found. Callers hold the mutex.
func (m *Manager) watchRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return m.fsnotify.Add(path)
		}
		m.indexLocked(path)
		return nil
	})
}

func (m *Manager) index(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			m.indexLocked(path)
		}
		return nil
	})
}

func (m *Manager) indexFile(path string) (Asset, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.indexLocked(path)
}

func (m *Manager) indexLocked(path string) (Asset, bool) {
	key, ok := m.key(path)
	if !ok {
		return Asset{}, false
	}
	kind := DetectKind(key)
	if kind == KindNone {
		return Asset{}, false
	}
	handle, ok := m.handles[key]
	if !ok {
		handle = uuid.New()
		m.handles[key] = handle
	}
	a := Asset{Handle: handle, Path: key, Kind: kind, LastLoaded: m.assets[key].LastLoaded}
	m.assets[key] = a
	return a, true
}

func (m *Manager) removeAsset(path string) (Asset, bool) {
	key, ok := m.key(path)
	if !ok {
		return Asset{}, false
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	a, ok := m.assets[key]
	delete(m.assets, key)
	return a, ok
}

// key turns a file system path into the slash separated asset name.
func (m *Manager) key(path string) (string, bool) {
	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
