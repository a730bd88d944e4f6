package notification

import (
	"time"
)

type Action int

const (
	ActionDuplicate Action = iota + 1
	ActionRename
	ActionFetch
)

type Sender interface {
	CanSend() bool
	Send(title string, description string, runTime time.Duration, fields []Field, dryRun bool) error
	BuildField(action Action, options BuildOptions) Field
	Name() string
}

type Field struct {
	Name  string
	Value string
}

type BuildOptions struct {
	// duplicate scan
	DuplicatePath string
	OriginalPath  string
	Size          int64

	// rename
	OldName string
	NewName string

	// pdf fetch
	URL string
}
