package mail

import (
	"bytes"
	"fmt"
	"io"
	"mime"

	gomail "github.com/emersion/go-message/mail"

	// Registers decoders for non-UTF-8 message charsets.
	_ "github.com/emersion/go-message/charset"
)

// ParseMessage decodes the subject and collects attachments from a raw
// RFC 822 message. Attachment parts without a filename are skipped.
func ParseMessage(raw []byte) (*Message, error) {
	mr, err := gomail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse message: %w", err)
	}
	defer mr.Close()

	msg := &Message{Subject: decodeSubject(mr.Header)}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return msg, fmt.Errorf("walk parts: %w", err)
		}
		header, ok := part.Header.(*gomail.AttachmentHeader)
		if !ok {
			continue
		}
		filename, _ := header.Filename()
		if filename == "" {
			continue
		}
		data, err := io.ReadAll(part.Body)
		if err != nil {
			return msg, fmt.Errorf("read attachment %s: %w", filename, err)
		}
		msg.Attachments = append(msg.Attachments, Attachment{Filename: filename, Data: data})
	}
	return msg, nil
}

// decodeSubject handles RFC 2047 encoded subjects, falling back to the raw
// header value when the encoding is broken.
func decodeSubject(h gomail.Header) string {
	subject, err := h.Subject()
	if err == nil && subject != "" {
		return subject
	}
	raw := h.Get("Subject")
	if raw == "" {
		return "(no subject)"
	}
	dec := new(mime.WordDecoder)
	if s, err := dec.DecodeHeader(raw); err == nil {
		return s
	}
	return raw
}
