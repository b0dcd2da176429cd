package source

import (
	"os"

	"golang.org/x/exp/mmap"
)

// readFileBytes loads path's bytes, memory-mapping files at or above
// threshold (when threshold > 0) instead of reading them with one
// os.ReadFile call. Either way the caller gets back an owned heap copy:
// a memory-mapped file's bytes are copied into content before this
// function returns and the mapping is closed in the same call, so no OS
// mapping outlives load_file — matching spec.md §4.2's "mapping is
// released after copy" guarantee.
func readFileBytes(path string, threshold int64) (content []byte, mapped bool, err error) {
	if threshold <= 0 {
		// #nosec G304 -- path is provided by the caller
		content, err = os.ReadFile(path)
		return content, false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if info.Size() < threshold {
		// #nosec G304 -- path is provided by the caller
		content, err = os.ReadFile(path)
		return content, false, err
	}

	r, err := mmap.Open(path)
	if err != nil {
		return nil, false, &LoadError{Kind: LoadErrorMemoryMapFailed, Path: path, Err: err}
	}
	defer r.Close()

	content = make([]byte, r.Len())
	if _, err := r.ReadAt(content, 0); err != nil {
		return nil, false, &LoadError{Kind: LoadErrorMemoryMapFailed, Path: path, Err: err}
	}
	return content, true, nil
}
