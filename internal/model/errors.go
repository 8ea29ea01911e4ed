package model

// ErrorKind classifies a soft failure inside the ingestion pipeline.
type ErrorKind string

const (
	// ErrExtraction covers unreadable, corrupt, or OCR-failing documents.
	ErrExtraction ErrorKind = "extraction"
	// ErrTranslation covers failures of the external translation service.
	ErrTranslation ErrorKind = "translation"
	// ErrTransport covers mail connection and authentication failures.
	ErrTransport ErrorKind = "transport"
)

// Fault is a tagged soft failure. The pipeline renders faults into the text
// fields of its result (keeping the never-fail-outward contract) while the
// kind stays available for structured handling.
type Fault struct {
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
}

func (f *Fault) Error() string {
	return string(f.Kind) + ": " + f.Detail
}

// NewFault builds a Fault from any error.
func NewFault(kind ErrorKind, err error) *Fault {
	return &Fault{Kind: kind, Detail: err.Error()}
}
