package model

// FileResult holds the outcome of processing a single candidate
type FileResult struct {
	Candidate Candidate
	Entries   int      // Number of ICON entries found
	Written   []string // Output files written
	Trashed   []string // Trash locations of files that were replaced
	Err       error    // First failure for this candidate, if any
}

// Summary holds the outcome of a whole run
type Summary struct {
	RunID      string
	Candidates int
	Icons      int
	Failed     int
	Trashed    int
	Results    []*FileResult
}

// Add accumulates a file result into the summary
func (s *Summary) Add(r *FileResult) {
	s.Candidates++
	s.Icons += len(r.Written)
	s.Trashed += len(r.Trashed)
	if r.Err != nil {
		s.Failed++
	}
	s.Results = append(s.Results, r)
}
