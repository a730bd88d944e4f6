package renamer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scylladb/go-set/strset"

	"github.com/arvheim/fkit/pkg/expression"
	"github.com/arvheim/fkit/pkg/hasher"
	"github.com/arvheim/fkit/pkg/logger"
	"github.com/arvheim/fkit/pkg/paths"
)

// DefaultPrefixLength is the digest prefix length used when none is
// configured.
const DefaultPrefixLength = 10

func New(prefixLength int) (*Normalizer, error) {
	if prefixLength < 1 || prefixLength > hasher.HexLength {
		return nil, fmt.Errorf("prefix length %d out of range 1..%d", prefixLength, hasher.HexLength)
	}

	return &Normalizer{
		PrefixLength: prefixLength,
		log:          logger.GetLogger("renamer"),
	}, nil
}

// Normalize renames every file under root to the first PrefixLength hex
// characters of its content digest, preserving the extension and staying in
// the file's directory. Content is never modified. When two files resolve
// to the same name in the same directory, the later one is disambiguated
// with a numeric suffix instead of overwriting. Returns the number of files
// renamed; the first filesystem error aborts the run.
func (n *Normalizer) Normalize(ctx context.Context, root string) (int, error) {
	files, _, err := paths.GetFilesInFolder(root)
	if err != nil {
		return 0, err
	}

	files, err = expression.FilterFiles(files, n.Filters)
	if err != nil {
		return 0, err
	}

	// names taken per directory during this run, renamed or pre-existing
	claimed := make(map[string]*strset.Set)
	renamed := 0

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return renamed, err
		}

		prefix, err := hasher.HashFileN(f.Path, n.PrefixLength)
		if err != nil {
			return renamed, err
		}

		_, ext := paths.SplitExt(f.FileName)
		target := prefix + ext

		set, ok := claimed[f.Directory]
		if !ok {
			set = strset.New()
			claimed[f.Directory] = set
		}

		if target == f.FileName {
			n.log.Tracef("Already normalized: %s", f.Path)
			set.Add(target)
			continue
		}

		finalName := target
		for attempt := 1; n.nameTaken(set, f.Directory, finalName); attempt++ {
			finalName = fmt.Sprintf("%s_%d%s", prefix, attempt, ext)
		}

		if finalName != target {
			n.log.Warnf("Name collision in %s: %q taken, using %q", f.Directory, target, finalName)
		}

		newPath := filepath.Join(f.Directory, finalName)

		if n.DryRun {
			n.log.Infof("Would rename %s -> %s", f.Path, newPath)
		} else {
			if err := os.Rename(f.Path, newPath); err != nil {
				return renamed, fmt.Errorf("rename %q -> %q: %w", f.Path, newPath, err)
			}
			n.log.Debugf("Renamed %s -> %s", f.Path, newPath)
			renamed++
		}

		if n.OnRename != nil {
			n.OnRename(f.Path, finalName)
		}

		set.Add(finalName)
	}

	n.log.Infof("Renamed %d of %d files", renamed, len(files))

	return renamed, nil
}

func (n *Normalizer) nameTaken(set *strset.Set, dir string, name string) bool {
	if set.Has(name) {
		return true
	}

	_, err := os.Lstat(filepath.Join(dir, name))
	return err == nil
}
