package news

import (
	"os"
	"strings"

	"github.com/aguichard/persosite/log"
)

// LoadInterests reads a newline-delimited topic list. Blank lines and
// #-prefixed comment lines are skipped; order is preserved. A missing or
// unreadable file yields an empty list, not an error.
func LoadInterests(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("failed to read interests file")
		}
		return nil
	}

	var interests []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		interests = append(interests, line)
	}

	return interests
}

// FileInterests reads topics from a plain-text file on every call,
// so edits are picked up by the next generation pass.
type FileInterests struct {
	Path string
}

func (f FileInterests) Interests() []string {
	return LoadInterests(f.Path)
}

// StaticInterests is a fixed in-memory topic list
type StaticInterests []string

func (s StaticInterests) Interests() []string {
	return s
}
