package source

// Statistics summarizes a FileSet's loaded files, per spec.md §6's
// SourceManager::get_statistics().
type Statistics struct {
	TotalFiles  int
	TotalBytes  int64
	TotalLines  int
	MappedFiles int
}

// Statistics returns a snapshot of the FileSet's current totals.
func (fileSet *FileSet) Statistics() Statistics {
	stats := Statistics{TotalFiles: len(fileSet.files)}
	for i := range fileSet.files {
		f := &fileSet.files[i]
		stats.TotalBytes += int64(len(f.Content))
		stats.TotalLines += len(f.LineIdx) + 1
		if f.Flags&FileMemoryMapped != 0 {
			stats.MappedFiles++
		}
	}
	return stats
}
