// Package gitinfo stamps identity reports with the revision they were
// produced from.
package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

const shortHashLen = 12

// HeadRevision returns the abbreviated HEAD commit hash of the repository
// containing dir. Callers treat an error as "not a git work tree" and move
// on; provenance is best effort.
func HeadRevision(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	return head.Hash().String()[:shortHashLen], nil
}
