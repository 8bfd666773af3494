package entitycheck_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/suite"

	"domainkit/internal/bootstrap"
	"domainkit/internal/entitycheck"
	"domainkit/internal/platform/config"
	"domainkit/internal/platform/logger"
	"domainkit/internal/platform/tracer"
	"domainkit/pkg/entity"
)

type RunnerSuite struct {
	suite.Suite
	dir    string
	deps   *bootstrap.Container
	runner *entitycheck.Runner
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.deps = bootstrap.New(config.Config{
		LogLevel:    "info",
		Clock:       config.ClockFixed,
		FixedTime:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Concurrency: 2,
	},
		bootstrap.WithLogger(logger.Discard()),
		bootstrap.WithTracer(tracer.NewNoop()),
	)
	s.runner = entitycheck.NewRunner(s.deps)
}

func (s *RunnerSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *RunnerSuite) TestRun() {
	valid := s.write("valid.yaml", sampleBatch)
	invalid := s.write("invalid.yaml", `
registrations:
  - execution_user: marcelo.castelo
    source_platform: backoffice
    name: Ana
    email: not-an-email
customers:
  - tenant_id: 6f1c1f9e-4b55-4e43-9c4e-7a1d2c3b4a50
    name: Ana
    email: ana@example.com
    created_by: marcelo.castelo
    created_at: 2025-01-01T00:00:00Z
    last_source_platform: backoffice
    registry_version: 2025-01-01T00:00:00Z
`)
	broken := s.write("broken.yaml", "registrations: [")
	missing := filepath.Join(s.dir, "missing.yaml")

	report, err := s.runner.Run(context.Background(), []string{valid, invalid, broken, missing})
	s.Require().NoError(err)
	s.False(report.Valid)
	s.Require().Len(report.Files, 4)

	s.Run("valid file", func() {
		f := report.Files[0]
		s.Equal(valid, f.File)
		s.True(f.Valid)
		s.Require().Len(f.Records, 2)
		s.Equal(entitycheck.KindRegistration, f.Records[0].Kind)
		s.NotEmpty(f.Records[0].CustomerID)
		s.Equal(entitycheck.KindCustomer, f.Records[1].Kind)
		s.Equal("3d5e7f90-1a2b-4c3d-8e4f-5a6b7c8d9e0f", f.Records[1].CustomerID)
		s.Empty(f.Records[1].Messages)
	})

	s.Run("invalid records", func() {
		f := report.Files[1]
		s.False(f.Valid)
		s.Require().Len(f.Records, 2)

		reg := f.Records[0]
		s.False(reg.Valid)
		s.Empty(reg.CustomerID)
		s.Equal([]string{"InputBaseShouldHaveTenantId", "InputBaseShouldHaveCorrelationId", "CustomerShouldHaveValidEmail"}, codes(reg))

		stored := f.Records[1]
		s.False(stored.Valid)
		s.Equal([]string{
			entity.ShouldHaveID.Code,
			entity.ShouldHaveValidCreatedAt.Code,
			entity.ShouldHaveValidRegistryVersion.Code,
		}, codes(stored))
	})

	s.Run("unreadable files", func() {
		s.False(report.Files[2].Valid)
		s.NotEmpty(report.Files[2].Error)
		s.Empty(report.Files[2].Records)
		s.False(report.Files[3].Valid)
		s.NotEmpty(report.Files[3].Error)
	})

	s.Run("json output", func() {
		var buf bytes.Buffer
		s.Require().NoError(report.WriteJSON(&buf))

		var decoded entitycheck.Report
		s.Require().NoError(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(buf.Bytes(), &decoded))
		s.Equal(report, decoded)
	})
}

func (s *RunnerSuite) TestRunCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.runner.Run(ctx, []string{s.write("valid.yaml", sampleBatch)})
	s.ErrorIs(err, context.Canceled)
}

func codes(rec entitycheck.RecordReport) []string {
	out := make([]string, 0, len(rec.Messages))
	for _, m := range rec.Messages {
		out = append(out, m.Code)
	}
	return out
}
