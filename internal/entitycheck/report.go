package entitycheck

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"domainkit/pkg/validation"
)

type MessageReport struct {
	Severity    string `json:"severity"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type RecordReport struct {
	Kind       string          `json:"kind"`
	Index      int             `json:"index"`
	CustomerID string          `json:"customer_id,omitempty"`
	Valid      bool            `json:"valid"`
	Error      string          `json:"error,omitempty"`
	Messages   []MessageReport `json:"messages,omitempty"`
}

type FileReport struct {
	File    string         `json:"file"`
	Valid   bool           `json:"valid"`
	Error   string         `json:"error,omitempty"`
	Records []RecordReport `json:"records"`
}

// Report is the document printed by the CLI.
type Report struct {
	Valid bool         `json:"valid"`
	Files []FileReport `json:"files"`
}

func newReport(files []FileReport) Report {
	r := Report{Valid: true, Files: files}
	for _, f := range files {
		if !f.Valid {
			r.Valid = false
		}
	}
	return r
}

func messageReports(ms []validation.Message) []MessageReport {
	if len(ms) == 0 {
		return nil
	}
	out := make([]MessageReport, 0, len(ms))
	for _, m := range ms {
		out = append(out, MessageReport{
			Severity:    m.Severity().String(),
			Code:        m.Code(),
			Description: m.Description(),
		})
	}
	return out
}

func (r Report) WriteJSON(w io.Writer) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
