package source

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and provides global byte offset resolution.
type FileSet struct {
	files     []File
	index     map[string]FileID // alias path -> id
	resolved  map[string]FileID // canonical resolved path -> id (load_file dedup)
	baseDir   string            // базовая директория для относительных путей
	lineCache *LineIndexCache
	limits    Limits
	resolver  *filesystemResolver
	totalSize int64
}

// EnableLineOffsetCache turns on the on-disk line-index cache backed by dir.
// Corresponds to spec.md §4.2's cache_line_offsets configuration option:
// once enabled, loading a file whose content hash is already cached skips
// recomputing its line-start index.
func (fileSet *FileSet) EnableLineOffsetCache(dir string) {
	fileSet.lineCache = NewLineIndexCache(dir)
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files:    make([]File, 0),
		index:    make(map[string]FileID),
		resolved: make(map[string]FileID),
		baseDir:  "", // будет установлен при первом Load() или явно
		limits:   DefaultLimits(),
		resolver: newFilesystemResolver(nil),
	}
}

// NewFileSetWithBase создаёт FileSet с заданной базовой директорией.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// SetLimits replaces the FileSet's size/count/mmap-threshold configuration.
func (fileSet *FileSet) SetLimits(limits Limits) {
	fileSet.limits = limits
}

// SetIncludePaths configures the ordered list of include directories
// load_file's resolution falls back to after an explicit current
// directory and before the process's own working directory.
func (fileSet *FileSet) SetIncludePaths(paths []string) {
	fileSet.resolver = newFilesystemResolver(paths)
}

// SetBaseDir устанавливает базовую директорию для относительных путей.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir возвращает текущую базовую директорию.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		// Если не установлена, используем текущую рабочую директорию
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := fileSet.lineIndexFor(hash, content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	// Всегда обновляем индекс на последнюю версию файла
	fileSet.index[normalizedPath] = id
	return id
}

// lineIndexFor returns the line-start index for content, consulting the
// line cache when one is configured and populating it on a miss.
func (fileSet *FileSet) lineIndexFor(hash [32]byte, content []byte) []uint32 {
	if fileSet.lineCache == nil {
		return buildLineIndex(content)
	}
	if cached, ok := fileSet.lineCache.Load(hash); ok {
		return cached
	}
	lineIdx := buildLineIndex(content)
	fileSet.lineCache.Store(hash, lineIdx)
	return lineIdx
}

// ValidateFileUTF8 runs the streaming UTF-8 validator over an already
// loaded file's content and records its detected Encoding. This backs the
// validate_utf8 configuration option (spec.md §4.2); callers that want
// load_file's InvalidUtf8 contract call this right after Load/Add.
func (fileSet *FileSet) ValidateFileUTF8(id FileID) error {
	f := &fileSet.files[id]
	enc, err := ValidateUTF8(f.Content, f.Flags&FileHadBOM != 0)
	if err != nil {
		return err
	}
	f.Encoding = enc
	return nil
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add. It does
// not resolve or deduplicate paths; callers that want load_file's full
// contract — resolution against a current directory/include paths, and
// reuse of an already-loaded FileID for the same resolved path — should
// use LoadFile instead. Load stays around because it is what Add's own
// "always creates a new FileID" semantics were built for: callers that
// intentionally reload a changed file to get a fresh version.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	content, mapped, err := readFileBytes(path, 0)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if mapped {
		flags |= FileMemoryMapped
	}
	return fileSet.Add(path, content, flags), nil
}

// LoadFile implements spec.md §4.2's load_file contract in full: path is
// resolved against currentDir (when non-empty), then the FileSet's
// configured include paths, then the process's own working directory; a
// path that resolves to an already-loaded file returns the existing
// FileID and registers path as an additional alias for it rather than
// loading the content again. Files at or above the configured
// memory-mapping threshold are read via a memory map whose bytes are
// copied out and whose mapping is released before this call returns.
func (fileSet *FileSet) LoadFile(path, currentDir string) (FileID, error) {
	resolvedPath, err := fileSet.resolver.Resolve(path, currentDir)
	if err != nil {
		return 0, &LoadError{Kind: LoadErrorFileNotFound, Path: path, Err: err}
	}
	canonical := normalizePath(resolvedPath)

	if id, ok := fileSet.resolved[canonical]; ok {
		fileSet.index[normalizePath(path)] = id
		return id, nil
	}

	if fileSet.limits.MaxFiles > 0 && len(fileSet.files) >= fileSet.limits.MaxFiles {
		return 0, &LoadError{Kind: LoadErrorTooManyFiles, Path: path}
	}

	info, statErr := os.Stat(resolvedPath)
	if statErr != nil {
		if os.IsPermission(statErr) {
			return 0, &LoadError{Kind: LoadErrorAccessDenied, Path: path, Err: statErr}
		}
		return 0, &LoadError{Kind: LoadErrorFileNotFound, Path: path, Err: statErr}
	}
	if fileSet.limits.MaxFileSize > 0 && info.Size() > fileSet.limits.MaxFileSize {
		return 0, &LoadError{Kind: LoadErrorFileTooLarge, Path: path}
	}

	content, mapped, err := readFileBytes(resolvedPath, fileSet.limits.MmapThreshold)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return 0, loadErr
		}
		if os.IsPermission(err) {
			return 0, &LoadError{Kind: LoadErrorAccessDenied, Path: path, Err: err}
		}
		return 0, &LoadError{Kind: LoadErrorFileNotFound, Path: path, Err: err}
	}

	if fileSet.limits.MaxTotalSize > 0 && fileSet.totalSize+int64(len(content)) > fileSet.limits.MaxTotalSize {
		return 0, &LoadError{Kind: LoadErrorFileTooLarge, Path: path}
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if mapped {
		flags |= FileMemoryMapped
	}

	id := fileSet.Add(path, content, flags)
	fileSet.totalSize += int64(len(content))
	fileSet.resolved[canonical] = id
	return id, nil
}

// LoadFromString registers a virtual file (no filesystem path), subject
// to the same size limits as LoadFile — spec.md §4.2's load_from_string.
func (fileSet *FileSet) LoadFromString(name string, content []byte) (FileID, error) {
	if fileSet.limits.MaxFiles > 0 && len(fileSet.files) >= fileSet.limits.MaxFiles {
		return 0, &LoadError{Kind: LoadErrorTooManyFiles, Path: name}
	}
	if fileSet.limits.MaxFileSize > 0 && int64(len(content)) > fileSet.limits.MaxFileSize {
		return 0, &LoadError{Kind: LoadErrorFileTooLarge, Path: name}
	}
	if fileSet.limits.MaxTotalSize > 0 && fileSet.totalSize+int64(len(content)) > fileSet.limits.MaxTotalSize {
		return 0, &LoadError{Kind: LoadErrorFileTooLarge, Path: name}
	}
	id := fileSet.AddVirtual(name, content)
	fileSet.totalSize += int64(len(content))
	return id, nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Clear drops all loaded files and resets ID allocation, per spec.md
// §4.2's clear(). Any FileID or Span issued before Clear is invalid
// afterwards.
func (fileSet *FileSet) Clear() {
	fileSet.files = fileSet.files[:0]
	fileSet.index = make(map[string]FileID)
	fileSet.resolved = make(map[string]FileID)
	fileSet.totalSize = 0
}

// Get returns the file metadata for the given ID.
func (fileSet *FileSet) Get(id FileID) *File {
	// TODO: optional bounds check in debug builds
	return &fileSet.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// GetByPath возвращает *File по пути, если был загружен в этот FileSet.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return &fileSet.files[id], true
	}
	return nil, false
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine возвращает строку с заданным номером (1-based) из файла.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	// Определяем начало и конец строки
	var start, end, lenLineIdx, lenContent uint32
	var err error
	lenLineIdx, err = safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err = safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}

	return string(f.Content[start:end])
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
// baseDir: базовая директория для относительных путей (игнорируется для других режимов)
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			// Если базовая директория не указана, используем текущую
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		// Auto: если путь короткий или относительный - как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
