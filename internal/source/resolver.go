package source

import (
	"os"
	"path/filepath"
)

// Resolver turns a path string as handed to load_file into a canonical,
// absolute location. Per spec.md §4.2, load_file resolves a relative path
// against (1) an explicit current-directory override when present, (2)
// configured include paths in order, (3) the process's current directory.
type Resolver interface {
	Resolve(path, currentDir string) (string, error)
}

// filesystemResolver resolves against real filesystem paths, probing each
// candidate directory in turn and preferring the first one where the file
// actually exists.
type filesystemResolver struct {
	includePaths []string
}

func newFilesystemResolver(includePaths []string) *filesystemResolver {
	return &filesystemResolver{includePaths: includePaths}
}

func (r *filesystemResolver) Resolve(path, currentDir string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	candidates := make([]string, 0, len(r.includePaths)+2)
	if currentDir != "" {
		candidates = append(candidates, filepath.Join(currentDir, path))
	}
	for _, inc := range r.includePaths {
		candidates = append(candidates, filepath.Join(inc, path))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, path))
	} else {
		candidates = append(candidates, filepath.Clean(path))
	}

	for _, cand := range candidates {
		if _, err := os.Stat(cand); err == nil {
			return filepath.Clean(cand), nil
		}
	}
	// Nothing on any candidate directory exists; resolve against the last
	// (process-cwd) candidate anyway so the caller's read produces a
	// normal FileNotFound-shaped error against a sensible path.
	return filepath.Clean(candidates[len(candidates)-1]), nil
}

// virtualResolver is the identity resolver load_from_string uses: a
// virtual file has no filesystem path to resolve, so its given name is
// its own canonical key.
type virtualResolver struct{}

func (virtualResolver) Resolve(name, _ string) (string, error) {
	return name, nil
}
