package entitycheck

import (
	"context"

	"golang.org/x/sync/errgroup"

	"domainkit/internal/bootstrap"
	"domainkit/internal/customer/models"
	"domainkit/internal/platform/tracer"
	"domainkit/pkg/validation"
)

const (
	KindRegistration = "registration"
	KindCustomer     = "customer"
)

// Runner checks batch files concurrently. Each file is processed by one
// goroutine and owns the entities it builds.
type Runner struct {
	deps  *bootstrap.Container
	limit int
}

func NewRunner(deps *bootstrap.Container) *Runner {
	limit := deps.Config.Concurrency
	if limit < 1 {
		limit = 1
	}
	return &Runner{deps: deps, limit: limit}
}

// Run returns one report per file in argument order. A file that cannot be
// read or decoded is reported as invalid; only context cancellation fails
// the whole run.
func (r *Runner) Run(ctx context.Context, files []string) (Report, error) {
	reports := make([]FileReport, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = r.checkFile(ctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return newReport(reports), nil
}

func (r *Runner) checkFile(ctx context.Context, file string) (report FileReport) {
	ctx, span := r.deps.Tracer.Start(ctx, tracer.SpanBatch, tracer.String(tracer.AttrBatchFile, file))
	defer func() {
		span.SetAttributes(
			tracer.Int(tracer.AttrBatchRecords, len(report.Records)),
			tracer.Bool(tracer.AttrValid, report.Valid),
		)
		span.End(nil)
	}()

	report = FileReport{File: file, Valid: true, Records: []RecordReport{}}
	batch, err := LoadFile(file)
	if err != nil {
		r.deps.Logger.ErrorContext(ctx, "batch file rejected", "file", file, "error", err)
		report.Valid = false
		report.Error = err.Error()
		return report
	}

	for i, reg := range batch.Registrations {
		report.add(r.checkRegistration(ctx, i, reg))
	}
	for i, rec := range batch.Customers {
		report.add(r.checkStored(ctx, i, rec))
	}
	r.deps.Logger.InfoContext(ctx, "batch file checked",
		"file", file,
		"records", len(report.Records),
		"valid", report.Valid,
	)
	return report
}

func (f *FileReport) add(rec RecordReport) {
	if !rec.Valid {
		f.Valid = false
	}
	f.Records = append(f.Records, rec)
}

func (r *Runner) checkRegistration(ctx context.Context, index int, reg Registration) RecordReport {
	rec := RecordReport{Kind: KindRegistration, Index: index}
	in, err := reg.Input()
	if err != nil {
		rec.Error = err.Error()
		return rec
	}
	c, err := r.deps.Customers.Register(ctx, in)
	if err != nil {
		rec.Error = err.Error()
		return rec
	}
	return customerRecord(rec, c)
}

func (r *Runner) checkStored(ctx context.Context, index int, stored StoredRecord) RecordReport {
	_, span := r.deps.Tracer.Start(ctx, tracer.SpanRecord,
		tracer.String(tracer.AttrSubjectKind, KindCustomer),
		tracer.Int("record.index", index),
	)
	rec := RecordReport{Kind: KindCustomer, Index: index}
	c, err := stored.Customer(r.deps.Clock)
	if err != nil {
		rec.Error = err.Error()
		span.End(err)
		return rec
	}
	c.Validate(func() validation.Result { return r.deps.Customers.ValidateCustomer(c) })
	rec = customerRecord(rec, c)
	span.SetAttributes(tracer.Bool(tracer.AttrValid, rec.Valid), tracer.Int(tracer.AttrMessageCount, len(rec.Messages)))
	span.End(nil)
	return rec
}

func customerRecord(rec RecordReport, c *models.Customer) RecordReport {
	info := c.ValidationInfo()
	if c.IsRegistered() {
		rec.CustomerID = c.ID().String()
	}
	rec.Valid = info.IsValid()
	rec.Messages = messageReports(info.Messages())
	return rec
}
