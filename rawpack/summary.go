package rawpack

import (
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/dendrascience/rawpack/version"
)

// Failure is the report form of a failed Outcome.
type Failure struct {
	Candidate string    `json:"candidate"`
	Kind      ErrorKind `json:"kind"`
	Path      string    `json:"path"`
	Error     string    `json:"error"`
}

// Summary aggregates the outcomes of one run. It is what --report writes.
type Summary struct {
	RunID        string    `json:"run_id"`
	Version      string    `json:"version"`
	Started      time.Time `json:"started"`
	Finished     time.Time `json:"finished"`
	OriginalsDir string    `json:"originals_dir"`
	Candidates   int       `json:"candidates"`
	Succeeded    int       `json:"succeeded"`
	Failed       int       `json:"failed"`
	InputBytes   int64     `json:"input_bytes"`
	ArchiveBytes int64     `json:"archive_bytes"`
	Archived     []Outcome `json:"archived"`
	Failures     []Failure `json:"failures"`

	errs []error
}

// Summarize folds outcomes into a Summary. Byte totals only count
// successful candidates.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{
		Version:    version.GetVersion(),
		Candidates: len(outcomes),
		Archived:   []Outcome{},
		Failures:   []Failure{},
	}
	for _, o := range outcomes {
		if o.OK() {
			s.Succeeded++
			s.InputBytes += o.InputBytes
			s.ArchiveBytes += o.ArchiveBytes
			s.Archived = append(s.Archived, o)
			continue
		}
		s.Failed++
		s.Failures = append(s.Failures, Failure{
			Candidate: o.Candidate,
			Kind:      o.Err.Kind,
			Path:      o.Err.Path,
			Error:     o.Err.Err.Error(),
		})
		s.errs = append(s.errs, o.Err)
	}
	return s
}

// Ratio is archive bytes over input bytes for successful candidates, or 0
// when nothing was archived.
func (s Summary) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.ArchiveBytes) / float64(s.InputBytes)
}

// Err combines every per-file failure, or returns nil.
func (s Summary) Err() error {
	var merr *multierror.Error
	for _, err := range s.errs {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}
