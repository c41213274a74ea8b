package rawpack

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dendrascience/rawpack/util"
)

// countingWriter tracks the bytes that reach the archive file.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// Process compresses candidate into an archive next to it and then renames
// the candidate into originalsDir. Each step must succeed before the next one
// runs; the first failure is returned as the Outcome and nothing is rolled
// back. A partially written archive stays on disk.
func Process(candidate, originalsDir string, r Reporter) Outcome {
	if r == nil {
		r = Discard
	}
	out := process(candidate, originalsDir, r)
	if out.OK() {
		r.Report(Event{Kind: EventDone, Source: candidate, Outcome: out})
	} else {
		r.Report(Event{Kind: EventFailed, Source: candidate, Outcome: out})
	}
	return out
}

// newEncoder wraps the archive file in the compression stream.
var newEncoder = func(w io.Writer) (io.WriteCloser, error) {
	return util.NewArchiveWriter(w)
}

func process(candidate, originalsDir string, r Reporter) Outcome {
	out := compress(candidate, r)
	if !out.OK() {
		return out
	}

	target := filepath.Join(originalsDir, filepath.Base(candidate))
	r.Report(Event{Kind: EventMove, Source: candidate, Dest: util.UniquePath(target)})
	// Candidates from different directories can share a base name, so the
	// final name is claimed atomically and may differ from the one reported.
	moved, err := util.MoveUnique(candidate, target)
	if err != nil {
		return out.fail(MoveError, candidate, err)
	}
	out.Original = moved
	return out
}

// compress writes the archive for candidate. The source is closed before it
// returns so the move never renames an open file.
func compress(candidate string, r Reporter) Outcome {
	out := Outcome{Candidate: candidate}

	dst := util.UniquePath(util.ArchiveName(candidate))
	r.Report(Event{Kind: EventCompress, Source: candidate, Dest: dst})

	src, err := os.Open(candidate)
	if err != nil {
		return out.fail(OpenError, candidate, err)
	}
	defer src.Close()

	f, err := util.CreateUnique(util.ArchiveName(candidate), 0o644)
	if err != nil {
		return out.fail(CreateError, dst, err)
	}
	out.Archive = f.Name()

	counter := &countingWriter{w: f}
	enc, err := newEncoder(counter)
	if err != nil {
		f.Close()
		return out.fail(CompressionError, out.Archive, err)
	}
	out.InputBytes, err = io.Copy(enc, src)
	if err != nil {
		enc.Close()
		f.Close()
		return out.fail(CompressionError, candidate, err)
	}

	if err := enc.Close(); err != nil {
		f.Close()
		return out.fail(FinalizeError, out.Archive, err)
	}
	if err := f.Close(); err != nil {
		return out.fail(FinalizeError, out.Archive, err)
	}
	out.ArchiveBytes = counter.n
	return out
}
