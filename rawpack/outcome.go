package rawpack

// Outcome is the terminal result for one candidate. Err is nil on success.
// Archive and Original are set as far as the candidate got: a MoveError
// outcome still names the archive that was written.
type Outcome struct {
	Candidate    string     `json:"candidate"`
	Archive      string     `json:"archive,omitempty"`
	Original     string     `json:"original,omitempty"`
	InputBytes   int64      `json:"input_bytes"`
	ArchiveBytes int64      `json:"archive_bytes"`
	Err          *FileError `json:"-"`
}

// OK reports whether every step completed.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Kind returns the failure kind, or 0 on success.
func (o Outcome) Kind() ErrorKind {
	if o.Err == nil {
		return 0
	}
	return o.Err.Kind
}

func (o Outcome) fail(kind ErrorKind, path string, err error) Outcome {
	o.Err = &FileError{Kind: kind, Path: path, Err: err}
	return o
}
