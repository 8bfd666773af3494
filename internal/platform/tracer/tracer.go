// Package tracer is a small tracing abstraction so validation code can emit
// spans without importing OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer: tests
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks it as failed.
	// End must be called exactly once, typically via defer.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span; the returned context carries it.
	//
	//   ctx, span := t.Start(ctx, tracer.SpanRegisterCustomer,
	//       tracer.String(tracer.AttrTenantID, in.TenantID().String()),
	//   )
	//   defer span.End(nil)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashUser shortens an execution user to a stable digest so traces can be
// correlated without carrying the user name.
func HashUser(user string) string {
	if user == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(user))
	return hex.EncodeToString(hash[:8])
}

const (
	SpanBatch            = "entitycheck.batch"
	SpanRecord           = "entitycheck.record"
	SpanRegisterCustomer = "customer.register"
)

const (
	AttrBatchFile         = "batch.file"
	AttrBatchRecords      = "batch.records"
	AttrSubjectKind       = "subject.kind"
	AttrTenantID          = "tenant_id"
	AttrCorrelationID     = "correlation_id"
	AttrExecutionUserHash = "execution_user_hash"
	AttrValid             = "validation.valid"
	AttrMessageCount      = "validation.messages"
)

const (
	EventValidationFailed = "validation.failed"
)
