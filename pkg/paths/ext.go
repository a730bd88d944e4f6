package paths

import (
	"strings"
)

// Ext returns the file's extension including the dot, or "" if it has none.
func (f File) Ext() string {
	_, ext := SplitExt(f.FileName)
	return ext
}

// SplitExt splits a file name into stem and extension, where the extension
// is the last dot-delimited suffix including its dot. A leading-dot name
// with no other dot (".bashrc") has no extension.
func SplitExt(name string) (stem string, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}

	return name[:idx], name[idx:]
}
