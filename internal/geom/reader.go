package geom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single input line. Road networks are often exported
// with one record per line, so lines of several megabytes are normal.
const maxLineSize = 64 << 20

// ErrUnterminatedRecord is returned when a new record starts before the
// current one was closed by a blank line.
var ErrUnterminatedRecord = errors.New("record not terminated by a blank line")

// LineClass is the lexical class of one trimmed input line.
type LineClass int

const (
	LineMalformed LineClass = iota
	LineBlank
	LineStart
	LineContinue
)

func (c LineClass) String() string {
	switch c {
	case LineBlank:
		return "blank"
	case LineStart:
		return "start"
	case LineContinue:
		return "continue"
	}
	return "malformed"
}

// recordKeywords are the geometry tags that open a record, longest first.
var recordKeywords = []string{"MULTILINESTRING", "LINESTRING"}

// Classify returns the class of an input line. Leading and trailing
// whitespace is ignored.
func Classify(line string) LineClass {
	s := strings.TrimSpace(line)
	if s == "" {
		return LineBlank
	}
	if keywordLen(s) > 0 {
		return LineStart
	}
	switch c := s[0]; {
	case c >= '0' && c <= '9':
		return LineContinue
	case strings.IndexByte("()-+.,", c) >= 0:
		return LineContinue
	}
	return LineMalformed
}

// keywordLen returns the byte length of the record keyword at the start of s,
// layout suffix included, or 0 when s does not open a record.
func keywordLen(s string) int {
	for _, kw := range recordKeywords {
		if len(s) < len(kw) || !strings.EqualFold(s[:len(kw)], kw) {
			continue
		}
		n := len(kw)
		rest := strings.ToUpper(s[n:])
		for _, suffix := range []string{"ZM", "Z", "M"} {
			if strings.HasPrefix(rest, suffix) {
				n += len(suffix)
				rest = rest[len(suffix):]
				break
			}
		}
		if rest == "" || rest[0] == '(' || rest[0] == ' ' || rest[0] == '\t' {
			return n
		}
	}
	return 0
}

// Record is one raw WKT record as assembled from the input.
type Record struct {
	Line int // 1-based input line the record starts on
	Text string
}

// MalformedFunc receives input lines that belong to no record.
type MalformedFunc func(line int, text string)

// RecordError attaches the starting input line to a record failure.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *RecordError) Unwrap() error { return e.Err }

type readerState int

const (
	stateIdle readerState = iota
	stateAccumulating
)

// Reader assembles raw records from line-oriented WKT input.
//
// In the idle state a keyword line opens a record; in the accumulating state
// continuation lines are appended verbatim and a blank line or end of input
// closes the record.
type Reader struct {
	sc          *bufio.Scanner
	onMalformed MalformedFunc

	state readerState
	buf   strings.Builder
	start int
	line  int
	err   error
}

type ReaderOption func(*Reader)

// WithMalformedFunc installs the handler for malformed lines.
func WithMalformedFunc(fn MalformedFunc) ReaderOption {
	return func(r *Reader) { r.onMalformed = fn }
}

func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	rd := &Reader{sc: sc}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Next returns the next complete record, or io.EOF once the input is
// exhausted. Errors are sticky.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		switch Classify(text) {
		case LineStart:
			if r.state == stateAccumulating {
				r.err = &RecordError{
					Line: r.start,
					Err:  fmt.Errorf("%w (next record at line %d)", ErrUnterminatedRecord, r.line),
				}
				return Record{}, r.err
			}
			r.open(text)
		case LineBlank:
			if r.state == stateAccumulating {
				return r.finalize(), nil
			}
		case LineContinue:
			if r.state == stateIdle {
				r.malformed(text)
				continue
			}
			r.buf.WriteString(text)
		default:
			r.malformed(text)
		}
	}
	if err := r.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = &RecordError{Line: r.line + 1, Err: err}
		}
		r.err = err
		return Record{}, err
	}
	if r.state == stateAccumulating {
		return r.finalize(), nil
	}
	r.err = io.EOF
	return Record{}, io.EOF
}

// open starts a record; the keyword is upper-cased so the decoder sees
// canonical tags.
func (r *Reader) open(text string) {
	n := keywordLen(text)
	r.buf.Reset()
	r.buf.WriteString(strings.ToUpper(text[:n]))
	r.buf.WriteString(text[n:])
	r.start = r.line
	r.state = stateAccumulating
}

func (r *Reader) finalize() Record {
	rec := Record{Line: r.start, Text: r.buf.String()}
	r.buf.Reset()
	r.state = stateIdle
	return rec
}

func (r *Reader) malformed(text string) {
	if r.onMalformed != nil {
		r.onMalformed(r.line, text)
	}
}
