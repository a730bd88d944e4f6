package paths

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/arvheim/fkit/pkg/logger"
)

/* Structs */

type File struct {
	Path         string
	FileName     string
	Directory    string
	Size         int64
	ModifiedTime time.Time
}

/* Vars */

var (
	log = logger.GetLogger("paths")
)

/* Public */

// GetFilesInFolder returns every regular file beneath folder, recursively,
// together with the total byte size. Directories and irregular entries are
// excluded and symlinks are not followed. Results are sorted by path so the
// traversal order consumed by callers is stable for a given tree.
//
// Unreadable entries abort the walk with an error; nothing is silently
// omitted.
func GetFilesInFolder(folder string) ([]File, uint64, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, 0, fmt.Errorf("stat %q: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("%q is not a directory", folder)
	}

	var (
		files []File
		size  uint64
		mutex sync.Mutex
	)

	conf := fastwalk.Config{
		Follow: false,
	}

	err = fastwalk.Walk(&conf, folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %q: %w", path, err)
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			log.Tracef("Skipping irregular entry: %s", path)
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("file info %q: %w", path, err)
		}

		foundFile := File{
			Path:         path,
			FileName:     d.Name(),
			Directory:    filepath.Dir(path),
			Size:         fi.Size(),
			ModifiedTime: fi.ModTime(),
		}

		mutex.Lock()
		files = append(files, foundFile)
		size += uint64(fi.Size())
		mutex.Unlock()

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	// fastwalk visits in parallel, normalize to lexical order
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, size, nil
}
