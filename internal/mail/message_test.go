package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"testing"
)

// buildRawMessage assembles a multipart/mixed message with the given
// attachments, the way typical mail clients send documents.
func buildRawMessage(subject string, attachments ...Attachment) []byte {
	var b bytes.Buffer
	w := func(s string) { b.WriteString(s); b.WriteString("\r\n") }

	w("From: sender@example.org")
	w("To: docs@example.org")
	w("Subject: " + subject)
	w("MIME-Version: 1.0")
	w(`Content-Type: multipart/mixed; boundary="frontier"`)
	w("")
	w("--frontier")
	w("Content-Type: text/plain; charset=utf-8")
	w("")
	w("Please find the documents attached.")
	for _, att := range attachments {
		w("--frontier")
		w("Content-Type: application/octet-stream")
		w(fmt.Sprintf("Content-Disposition: attachment; filename=%q", att.Filename))
		w("Content-Transfer-Encoding: base64")
		w("")
		w(base64.StdEncoding.EncodeToString(att.Data))
	}
	w("--frontier--")
	return b.Bytes()
}

func TestParseMessage(t *testing.T) {
	raw := buildRawMessage("Monthly report",
		Attachment{Filename: "report_tamil.pdf", Data: []byte("%PDF-1.4 fake")},
		Attachment{Filename: "notes.txt", Data: []byte("plain notes")},
	)

	msg, err := ParseMessage(raw)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if msg.Subject != "Monthly report" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if len(msg.Attachments) != 2 {
		t.Fatalf("attachments = %d, want 2", len(msg.Attachments))
	}
	if msg.Attachments[0].Filename != "report_tamil.pdf" {
		t.Errorf("first attachment = %q", msg.Attachments[0].Filename)
	}
	if string(msg.Attachments[0].Data) != "%PDF-1.4 fake" {
		t.Errorf("first attachment data = %q", msg.Attachments[0].Data)
	}
	if string(msg.Attachments[1].Data) != "plain notes" {
		t.Errorf("second attachment data = %q", msg.Attachments[1].Data)
	}
}

func TestParseMessage_EncodedSubject(t *testing.T) {
	// RFC 2047 B-encoded "தமிழ்".
	raw := buildRawMessage("=?UTF-8?B?4K6k4K6u4K6/4K604K+N?=",
		Attachment{Filename: "a.txt", Data: []byte("x")})

	msg, err := ParseMessage(raw)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if msg.Subject != "தமிழ்" {
		t.Errorf("Subject = %q, want decoded Tamil word", msg.Subject)
	}
}

func TestParseMessage_NoAttachments(t *testing.T) {
	raw := buildRawMessage("Just text")

	msg, err := ParseMessage(raw)
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if len(msg.Attachments) != 0 {
		t.Errorf("attachments = %d, want 0", len(msg.Attachments))
	}
}

func TestParseMessage_SkipsUnnamedAttachment(t *testing.T) {
	var b bytes.Buffer
	w := func(s string) { b.WriteString(s); b.WriteString("\r\n") }
	w("Subject: Odd part")
	w("MIME-Version: 1.0")
	w(`Content-Type: multipart/mixed; boundary="frontier"`)
	w("")
	w("--frontier")
	w("Content-Type: application/octet-stream")
	w("Content-Disposition: attachment")
	w("")
	w("anonymous bytes")
	w("--frontier--")

	msg, err := ParseMessage(b.Bytes())
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if len(msg.Attachments) != 0 {
		t.Errorf("attachments = %d, want 0 (no filename)", len(msg.Attachments))
	}
}
