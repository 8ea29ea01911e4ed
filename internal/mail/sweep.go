package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kmrl-docs/dochub/internal/artifact"
	"github.com/kmrl-docs/dochub/internal/engine"
	"github.com/kmrl-docs/dochub/internal/model"
	"github.com/kmrl-docs/dochub/internal/store"
)

// Ingestor runs the ingestion pipeline for one document.
type Ingestor interface {
	Ingest(ctx context.Context, data []byte, filename string) (engine.Result, error)
}

// Sweeper drains supported attachments from a mail source into the
// ingestion pipeline.
type Sweeper struct {
	dialer    Dialer
	pipeline  Ingestor
	artifacts *artifact.Store
	registry  store.DocumentWriter
	mailbox   string
	mode      SearchMode
	limit     int
}

// NewSweeper creates a sweeper. registry may be nil to skip record keeping.
func NewSweeper(dialer Dialer, pipeline Ingestor, artifacts *artifact.Store, registry store.DocumentWriter, mailbox string, mode SearchMode, limit int) *Sweeper {
	return &Sweeper{
		dialer:    dialer,
		pipeline:  pipeline,
		artifacts: artifacts,
		registry:  registry,
		mailbox:   mailbox,
		mode:      mode,
		limit:     limit,
	}
}

// Sweep fetches messages, ingests their supported attachments, and returns
// a report. It never fails outward: transport errors become report
// messages, and the mail connection is released on every path.
func (s *Sweeper) Sweep(ctx context.Context) *model.SweepReport {
	report := model.NewSweepReport()

	src, err := s.dialer.Dial(ctx)
	if err != nil {
		report.AddMessage("email fetch error: " + err.Error())
		return report
	}
	defer func() {
		if err := src.Logout(); err != nil {
			slog.Warn("mail logout failed", "error", err)
		}
	}()

	if err := src.Select(ctx, s.mailbox); err != nil {
		report.AddMessage("email fetch error: " + err.Error())
		return report
	}

	nums, err := src.Search(ctx, s.mode)
	if err != nil {
		report.AddMessage("email fetch error: " + err.Error())
		return report
	}
	if len(nums) == 0 {
		report.AddMessage("No new emails.")
		return report
	}

	// Newest messages first, capped at the sweep limit.
	if s.limit > 0 && len(nums) > s.limit {
		nums = nums[len(nums)-s.limit:]
	}
	for i := len(nums) - 1; i >= 0; i-- {
		if err := s.sweepMessage(ctx, src, nums[i], report); err != nil {
			report.AddMessage("email fetch error: " + err.Error())
			return report
		}
	}
	return report
}

func (s *Sweeper) sweepMessage(ctx context.Context, src Source, seqNum uint32, report *model.SweepReport) error {
	raw, err := src.Fetch(ctx, seqNum)
	if err != nil {
		return err
	}
	msg, err := ParseMessage(raw)
	if err != nil {
		if msg == nil {
			return err
		}
		// Partial parse: keep whatever attachments were collected.
		slog.Warn("partial message parse", "seq", seqNum, "error", err)
	}

	for _, att := range msg.Attachments {
		if _, err := s.artifacts.SaveUpload(att.Data, att.Filename); err != nil {
			return fmt.Errorf("save attachment %s: %w", att.Filename, err)
		}
		if !engine.Supported(att.Filename) {
			report.AddUnsupported(att.Filename)
			continue
		}
		res, err := s.pipeline.Ingest(ctx, att.Data, att.Filename)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", att.Filename, err)
		}
		s.record(ctx, att.Filename, res)
		report.Processed++
		report.AddMessage(fmt.Sprintf("%q processed: %s", msg.Subject, att.Filename))
	}
	return nil
}

func (s *Sweeper) record(ctx context.Context, filename string, res engine.Result) {
	if s.registry == nil {
		return
	}
	doc := res.Document(uuid.New().String(), filename, model.SourceMail)
	if err := s.registry.CreateDocument(ctx, doc); err != nil {
		slog.Error("record swept document", "filename", filename, "error", err)
	}
}
