// Package repo reports whether a git working tree has uncommitted changes.
package repo

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/rotisserie/eris"
)

// Detector runs git against a working tree.
type Detector struct {
	gitPath string
}

// NewDetector returns a Detector using the git binary at gitPath. An empty
// gitPath resolves "git" from PATH.
func NewDetector(gitPath string) *Detector {
	if gitPath == "" {
		gitPath = "git"
	}
	return &Detector{gitPath: gitPath}
}

// Changed reports whether `git status -z` in dir prints anything, i.e.
// whether generated content differs from what is committed.
func (d *Detector) Changed(ctx context.Context, dir string) (bool, error) {
	cmd := exec.CommandContext(ctx, d.gitPath, "status", "-z")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return false, eris.Wrapf(err, "repo: git status in %s: %s", dir, bytes.TrimSpace(stderr.Bytes()))
	}
	return len(bytes.TrimSpace(out)) > 0, nil
}
