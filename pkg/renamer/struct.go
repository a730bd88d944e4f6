package renamer

import (
	"github.com/sirupsen/logrus"

	"github.com/arvheim/fkit/pkg/expression"
)

type Normalizer struct {
	// PrefixLength is the number of leading hex characters of the content
	// digest used as the new file name.
	PrefixLength int

	// Filters restrict which files are renamed.
	Filters []expression.CompiledExpression

	// DryRun logs the renames that would happen without touching anything.
	DryRun bool

	// OnRename is called after each rename (or would-be rename in dry-run
	// mode) with the old path and the new name.
	OnRename func(oldPath string, newName string)

	log *logrus.Entry
}
