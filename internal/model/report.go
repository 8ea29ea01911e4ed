package model

// SweepReport accumulates the outcome of one mailbox sweep. It is always
// returned to the caller, even when the sweep could not reach the mail
// source: transport failures become entries in Messages.
type SweepReport struct {
	Processed        int      `json:"processed"`
	UnsupportedFiles []string `json:"unsupported_files"`
	Messages         []string `json:"messages"`
}

// NewSweepReport returns an empty report with non-nil slices so the JSON
// encoding always carries arrays, never null.
func NewSweepReport() *SweepReport {
	return &SweepReport{
		UnsupportedFiles: []string{},
		Messages:         []string{},
	}
}

// AddMessage appends a human-readable status line.
func (r *SweepReport) AddMessage(msg string) {
	r.Messages = append(r.Messages, msg)
}

// AddUnsupported records an attachment that no extraction strategy accepts.
func (r *SweepReport) AddUnsupported(filename string) {
	r.UnsupportedFiles = append(r.UnsupportedFiles, filename)
}
