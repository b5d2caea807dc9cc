package domain_test

import (
	"testing"

	"github.com/go-pdg/jpdg/domain"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.AnalyzeRequest
		wantErr bool
	}{
		{
			name:    "no paths",
			req:     domain.AnalyzeRequest{},
			wantErr: true,
		},
		{
			name:    "default format is valid",
			req:     domain.AnalyzeRequest{Paths: []string{"Foo.java"}},
			wantErr: false,
		},
		{
			name:    "json format is valid",
			req:     domain.AnalyzeRequest{Paths: []string{"Foo.java"}, OutputFormat: domain.OutputFormatJSON},
			wantErr: false,
		},
		{
			name:    "dot format is valid",
			req:     domain.AnalyzeRequest{Paths: []string{"Foo.java"}, OutputFormat: domain.OutputFormatDOT},
			wantErr: false,
		},
		{
			name:    "unsupported format",
			req:     domain.AnalyzeRequest{Paths: []string{"Foo.java"}, OutputFormat: "csv"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummary_HasFailures(t *testing.T) {
	var s domain.Summary
	if s.HasFailures() {
		t.Error("HasFailures() = true for zero-value Summary")
	}
	s.FilesFailed = 1
	if !s.HasFailures() {
		t.Error("HasFailures() = false, want true when FilesFailed > 0")
	}
}
