// Package mail retrieves documents from a mailbox and feeds their
// attachments through the ingestion pipeline.
package mail

import "context"

// SearchMode selects which messages a sweep considers.
type SearchMode string

// Search modes: unread messages only, or the most recent messages
// regardless of read state.
const (
	ModeUnseen SearchMode = "unseen"
	ModeAll    SearchMode = "all"
)

// Source is the capability surface the sweep needs from a mail server.
// An implementation owns one live, authenticated connection and must be
// released with Logout.
type Source interface {
	Select(ctx context.Context, mailbox string) error
	Search(ctx context.Context, mode SearchMode) ([]uint32, error)
	// Fetch returns the full raw RFC 822 message for a sequence number.
	Fetch(ctx context.Context, seqNum uint32) ([]byte, error)
	Logout() error
}

// Dialer opens an authenticated Source connection.
type Dialer interface {
	Dial(ctx context.Context) (Source, error)
}

// Attachment is one file carried by a message.
type Attachment struct {
	Filename string
	Data     []byte
}

// Message is the decoded slice of a fetched mail the sweep cares about.
type Message struct {
	Subject     string
	Attachments []Attachment
}
