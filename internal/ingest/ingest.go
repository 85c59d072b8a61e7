// Package ingest turns dropped files and folders into a playable track list.
//
// A drop is walked recursively on an afero filesystem. Every directory read
// and every file classification runs in its own goroutine; the walk counts
// pending operations and publishes the list only once all of them have
// settled, so deep or slow trees are never truncated.
//
// On the OS filesystem every entry is resolved to its real path first. A
// directory reached through several links is walked once and a file reached
// through several links is listed once under its real path. Filesystems
// without path resolution do not follow links to directories.
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gabriel-vasile/mimetype"
	zlog "github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/llehouerou/turntable/internal/track"
)

// DefaultContentTypes are the audio types the player can decode.
var DefaultContentTypes = []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}

const defaultWorkers = 8

// Options controls which entries are kept and how many reads run at once.
type Options struct {
	ContentTypes  []string // accepted MIME types (aliases match too)
	Workers       int      // max concurrent directory reads / file sniffs
	IncludeHidden bool     // walk dot-files and dot-directories
}

// Ingester walks dropped entries and builds track lists.
type Ingester struct {
	fs   afero.Fs
	opts Options
	// realPath resolves every symlink in a path; nil when fs cannot.
	realPath func(string) (string, error)
}

// errLinkedDir marks a link to a directory on a filesystem without realPath.
var errLinkedDir = errors.New("symlinked directory not followed")

// New creates an Ingester reading from fs.
func New(fs afero.Fs, opts Options) *Ingester {
	if len(opts.ContentTypes) == 0 {
		opts.ContentTypes = DefaultContentTypes
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	in := &Ingester{fs: fs, opts: opts}
	switch fs.(type) {
	case *afero.OsFs, afero.OsFs:
		in.realPath = filepath.EvalSymlinks
	}
	return in
}

// Ingest walks every root and returns the audio files found, sorted by name.
// Unreadable or unrecognized entries are skipped. The only error returned is
// the context's, when the walk is canceled.
func (in *Ingester) Ingest(ctx context.Context, roots []string) (track.List, error) {
	w := &walk{
		in:      in,
		ctx:     ctx,
		sem:     make(chan struct{}, in.opts.Workers),
		visited: make(map[string]struct{}),
	}

	for _, root := range roots {
		if root == "" {
			continue
		}
		if !filepath.IsAbs(root) {
			if abs, err := filepath.Abs(root); err == nil {
				root = abs
			}
		}
		w.visit(filepath.Clean(root), true)
	}

	w.pending.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "ingest canceled")
	}

	found := lo.UniqBy(w.found, func(t track.Track) string { return t.Handle })
	list := track.List(found).Sorted()

	zlog.Debug().
		Int("roots", len(roots)).
		Int("tracks", list.Len()).
		Msg("ingest complete")

	return list, nil
}

// walk is the state of one Ingest call.
type walk struct {
	in      *Ingester
	ctx     context.Context
	sem     chan struct{}
	pending sync.WaitGroup

	mu      sync.Mutex
	found   []track.Track
	visited map[string]struct{}
}

// visit schedules path for resolution. The pending counter is raised before
// the goroutine starts so Wait cannot return while work is still queued.
func (w *walk) visit(path string, root bool) {
	if !root && !w.in.opts.IncludeHidden && strings.HasPrefix(filepath.Base(path), ".") {
		return
	}
	w.pending.Add(1)
	go func() {
		defer w.pending.Done()
		if !w.acquire() {
			return
		}
		children := w.resolve(path, root)
		w.release()
		for _, child := range children {
			w.visit(child, false)
		}
	}()
}

func (w *walk) acquire() bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.sem <- struct{}{}:
		return true
	}
}

func (w *walk) release() { <-w.sem }

// resolve classifies one entry. Directories return their children; audio
// files are recorded; everything else contributes nothing.
func (w *walk) resolve(path string, root bool) []string {
	path, info, err := w.lookup(path, root)
	if err != nil {
		zlog.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
		return nil
	}

	switch {
	case info.IsDir():
		if !w.enter(path) {
			zlog.Debug().Str("path", path).Msg("skipping directory already walked")
			return nil
		}
		entries, err := afero.ReadDir(w.in.fs, path)
		if err != nil {
			zlog.Debug().Err(err).Str("path", path).Msg("skipping unreadable directory")
			return nil
		}
		return lo.Map(entries, func(e os.FileInfo, _ int) string {
			return filepath.Join(path, e.Name())
		})
	case info.Mode().IsRegular():
		if t, ok := w.classify(path, info); ok {
			w.mu.Lock()
			w.found = append(w.found, t)
			w.mu.Unlock()
		}
	default:
		zlog.Debug().Str("path", path).Str("mode", info.Mode().String()).Msg("skipping special file")
	}
	return nil
}

// lookup returns the path to read and its info. With realPath the result
// never names a link. Otherwise links to files are read through and links to
// directories below a root are refused.
func (w *walk) lookup(path string, root bool) (string, os.FileInfo, error) {
	if w.in.realPath != nil {
		resolved, err := w.in.realPath(path)
		if err != nil {
			return path, nil, err
		}
		info, err := w.in.fs.Stat(resolved)
		return resolved, info, err
	}

	info, err := lstat(w.in.fs, path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return path, info, err
	}
	target, err := w.in.fs.Stat(path)
	if err != nil {
		return path, nil, err
	}
	if target.IsDir() && !root {
		return path, nil, errLinkedDir
	}
	return path, target, nil
}

func lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

// enter marks dir as walked and reports whether it was new.
func (w *walk) enter(dir string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, seen := w.visited[dir]; seen {
		return false
	}
	w.visited[dir] = struct{}{}
	return true
}

func (w *walk) classify(path string, info os.FileInfo) (track.Track, bool) {
	f, err := w.in.fs.Open(path)
	if err != nil {
		zlog.Debug().Err(err).Str("path", path).Msg("skipping unopenable file")
		return track.Track{}, false
	}
	defer f.Close()

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		zlog.Debug().Err(err).Str("path", path).Msg("skipping unsniffable file")
		return track.Track{}, false
	}

	contentType, ok := w.in.accepts(mime)
	if !ok {
		return track.Track{}, false
	}

	return track.Track{
		Name:        info.Name(),
		Handle:      path,
		ContentType: contentType,
		Size:        info.Size(),
	}, true
}

// accepts returns the configured content type matched by mime.
func (in *Ingester) accepts(mime *mimetype.MIME) (string, bool) {
	for _, ct := range in.opts.ContentTypes {
		if mime.Is(ct) {
			return ct, true
		}
	}
	return "", false
}
