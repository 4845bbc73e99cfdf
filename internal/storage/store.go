// Package storage persists zoom sessions: one directory per session
// holding numbered PNG frames and a JSON keyframe record alongside each.
package storage

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/keyframe"
)

// FrameMeta is the persisted keyframe record. Field names match the wire
// format the movie assembler consumes; pixel dimensions are not stored and
// are supplied by the caller at load time.
type FrameMeta struct {
	XCenter float64 `json:"x_center"`
	YCenter float64 `json:"y_center"`
	Scale   float64 `json:"scale"`
	MaxIter int     `json:"max_iter"`
	PX      int     `json:"px"`
	PY      int     `json:"py"`
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) sessionDir(prefix string) string {
	return filepath.Join(s.baseDir, prefix+"_frames")
}

// Session accumulates the numbered frames of one zoom run. Saves are safe
// to issue from concurrent goroutines; sequence numbers follow the order in
// which saves are admitted.
type Session struct {
	dir    string
	prefix string

	mu  sync.Mutex
	seq int
}

// OpenSession creates (or resets) the frame directory for a prefix. Any
// frames left over from an earlier run with the same prefix are removed so
// sequence numbers stay contiguous.
func (s *Store) OpenSession(prefix string) (*Session, error) {
	dir := s.sessionDir(prefix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	for _, pattern := range []string{prefix + "_*.png", prefix + "_*.json", prefix + ".gif"} {
		stale, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		for _, p := range stale {
			if err := os.Remove(p); err != nil {
				return nil, err
			}
		}
	}

	return &Session{dir: dir, prefix: prefix}, nil
}

// Dir returns the session's frame directory.
func (sess *Session) Dir() string { return sess.dir }

// SaveFrame writes the next numbered PNG plus its keyframe record and
// returns the PNG path.
func (sess *Session) SaveFrame(img image.Image, meta FrameMeta) (string, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	base := fmt.Sprintf("%s_%03d", sess.prefix, sess.seq)

	pngPath := filepath.Join(sess.dir, base+".png")
	f, err := os.Create(pngPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(sess.dir, base+".json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	sess.seq++
	return pngPath, nil
}

// LoadPath reads a session's keyframe records, in sequence order, into an
// interpolation path at the given pixel dimensions.
func (s *Store) LoadPath(prefix string, width, height int) (keyframe.Path, error) {
	files, err := filepath.Glob(filepath.Join(s.sessionDir(prefix), prefix+"_*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	path := make(keyframe.Path, 0, len(files))
	for _, p := range files {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		var meta FrameMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		path = append(path, keyframe.Keyframe{
			Viewport: fractal.Viewport{
				Width:   width,
				Height:  height,
				MaxIter: meta.MaxIter,
				XCenter: meta.XCenter,
				YCenter: meta.YCenter,
				Scale:   meta.Scale,
			},
			ClickPX: meta.PX,
			ClickPY: meta.PY,
		})
	}
	return path, nil
}

// ListSessions returns the prefixes that have a frame directory.
func (s *Store) ListSessions() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var prefixes []string
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), "_frames") {
			prefixes = append(prefixes, strings.TrimSuffix(e.Name(), "_frames"))
		}
	}
	sort.Strings(prefixes)
	return prefixes, nil
}
