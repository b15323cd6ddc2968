package model

// Path represents a file system path.
type Path string

// SourceFile holds the line coverage collected for a single source file.
type SourceFile struct {
	// Path is the absolute path reported by the coverage tool. It is the dedup key.
	Path Path
	// Name is the path relative to the parent of the matched root directory.
	Name string

	coverage []*int
}

// NewSourceFile creates an empty SourceFile.
func NewSourceFile(path Path, name string) *SourceFile {
	return &SourceFile{Path: path, Name: name}
}

// AddCoverage records count hits at the zero-based line index, replacing any
// previous value. The slice grows with nil slots for lines in between.
func (s *SourceFile) AddCoverage(index int, count int) {
	if index < 0 {
		return
	}

	for len(s.coverage) <= index {
		s.coverage = append(s.coverage, nil)
	}

	hits := count
	s.coverage[index] = &hits
}

// Coverage returns the per-line slots. A nil slot is not a statement line.
func (s *SourceFile) Coverage() []*int {
	return s.coverage
}

// Hits returns the hit count at index and whether the line is a statement.
func (s *SourceFile) Hits(index int) (int, bool) {
	if index < 0 || index >= len(s.coverage) || s.coverage[index] == nil {
		return 0, false
	}

	return *s.coverage[index], true
}

// Statements counts the statement lines recorded so far.
func (s *SourceFile) Statements() int {
	n := 0

	for _, slot := range s.coverage {
		if slot != nil {
			n++
		}
	}

	return n
}
