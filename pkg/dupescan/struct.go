package dupescan

import (
	"github.com/sirupsen/logrus"

	"github.com/arvheim/fkit/pkg/expression"
)

// Record pairs a duplicate file with the first-seen file holding the same
// content digest.
type Record struct {
	Path     string
	Original string
	Size     int64
}

type Scanner struct {
	// Workers bounds the concurrent hashing goroutines. Digests are
	// independent per file; first-seen attribution is decided by a single
	// sequential pass over traversal order afterwards.
	Workers int

	// Filters restrict which files participate in the scan.
	Filters []expression.CompiledExpression

	// OnWalkComplete is called once the walk is done, before hashing.
	OnWalkComplete func(fileCount int, totalBytes uint64)

	// Progress is called with the size of each file as its digest completes.
	Progress func(bytesHashed int64)

	log *logrus.Entry
}
