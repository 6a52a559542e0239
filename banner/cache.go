package banner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// renderVersion prefixes every cache key. Bump it whenever rendering output
// changes for identical inputs; every prior entry then misses.
const renderVersion = "loved:banner:v1"

// CacheKey derives the content address of one banner: the render version,
// the raw background bytes and the resolved title.
func CacheKey(background []byte, title string) string {
	h := sha256.New()
	h.Write([]byte(renderVersion))
	h.Write([]byte{'\n'})
	h.Write(background)
	h.Write([]byte{0})
	h.Write([]byte(title))
	return hex.EncodeToString(h.Sum(nil))
}

// CacheStore remembers which banners have already been rendered. The index
// is a flat text file, one hex key per line. A missing or unreadable file is
// an empty cache, never an error.
type CacheStore interface {
	Has(key string) bool
	Record(key string) error
	Len() int
	Clear() error
	Path() string
}

type cacheStore struct {
	mu     sync.Mutex
	path   string
	keys   map[string]struct{}
	loaded bool
}

func NewCacheStore(path string) CacheStore {
	return &cacheStore{path: path, keys: make(map[string]struct{})}
}

// load is called with the mutex held.
func (cs *cacheStore) load() {
	if cs.loaded {
		return
	}
	cs.loaded = true

	data, err := os.ReadFile(cs.path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cs.keys[line] = struct{}{}
		}
	}
}

func (cs *cacheStore) Has(key string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.load()
	_, ok := cs.keys[key]
	return ok
}

// Record adds key to the index and rewrites the whole file. Writes are
// serialized by the store's mutex so concurrent renders cannot drop each
// other's keys.
func (cs *cacheStore) Record(key string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.load()

	if _, ok := cs.keys[key]; ok {
		return nil
	}
	cs.keys[key] = struct{}{}
	return cs.flush()
}

// flush is called with the mutex held.
func (cs *cacheStore) flush() error {
	keys := make([]string, 0, len(cs.keys))
	for key := range cs.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteByte('\n')
	}

	if dir := filepath.Dir(cs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: create cache directory %s: %v", ErrCacheIO, dir, err)
		}
	}
	if err := os.WriteFile(cs.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("%w: write cache index %s: %v", ErrCacheIO, cs.path, err)
	}
	return nil
}

func (cs *cacheStore) Len() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.load()
	return len(cs.keys)
}

func (cs *cacheStore) Clear() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.loaded = true
	cs.keys = make(map[string]struct{})
	if err := os.Remove(cs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove cache index %s: %v", ErrCacheIO, cs.path, err)
	}
	return nil
}

func (cs *cacheStore) Path() string {
	return cs.path
}
