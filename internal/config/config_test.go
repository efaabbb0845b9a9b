package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Output.Format != Text {
		t.Errorf("Output.Format = %v, want Text", cfg.Output.Format)
	}
	if !cfg.Output.SortMoves {
		t.Error("Output.SortMoves should be true by default")
	}
	if !cfg.Report.Status {
		t.Error("Report.Status should be true by default")
	}
	if cfg.Report.Moves || cfg.Report.PerftDepth != 0 || cfg.Report.Divide || cfg.Report.Verify {
		t.Errorf("Report = %+v, want status only", *cfg.Report)
	}
	if cfg.Filter.MatchesStatus() {
		t.Error("Filter should match every status by default")
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config Validate() = %v", err)
	}
}

// TestConfig_Validate verifies configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"perft with divide", func(c *Config) { c.Report.PerftDepth = 3; c.Report.Divide = true }, false},
		{"verify needs depth", func(c *Config) { c.Report.Verify = true }, true},
		{"divide needs depth", func(c *Config) { c.Report.Divide = true }, true},
		{"perft too deep", func(c *Config) { c.Report.PerftDepth = MaxPerftDepth + 1 }, true},
		{"negative perft", func(c *Config) { c.Report.PerftDepth = -1 }, true},
		{"negative workers", func(c *Config) { c.Workers = -2 }, true},
		{"negative stop-after", func(c *Config) { c.StopAfter = -1 }, true},
		{"stop-after", func(c *Config) { c.StopAfter = 3 }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"move bounds", func(c *Config) { c.Filter.MinMoves = 1; c.Filter.MaxMoves = 10 }, false},
		{"inverted move bounds", func(c *Config) { c.Filter.MinMoves = 10; c.Filter.MaxMoves = 1 }, true},
		{"negative move bound", func(c *Config) { c.Filter.MinMoves = -1 }, true},
		{"min only", func(c *Config) { c.Filter.MinMoves = 5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

// TestFilterConfig_MatchesStatus verifies status filter detection
func TestFilterConfig_MatchesStatus(t *testing.T) {
	tests := []struct {
		name string
		cfg  FilterConfig
		want bool
	}{
		{"none", FilterConfig{}, false},
		{"check", FilterConfig{MatchCheck: true}, true},
		{"checkmate", FilterConfig{MatchCheckmate: true}, true},
		{"stalemate", FilterConfig{MatchStalemate: true}, true},
		{"move bounds only", FilterConfig{MinMoves: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.MatchesStatus(); got != tt.want {
				t.Errorf("MatchesStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithJSONOutput(true).
		WithMoves(true).
		WithHash(true).
		WithPerft(3, true).
		WithVerify(true).
		WithDuplicateSuppression(true).
		WithCheckmateFilter(true).
		WithStalemateFilter(true).
		WithPlayMoves("e2e4", "e7e5").
		WithWorkers(4).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if !cfg.Output.JSONFormat() {
		t.Error("Output.JSONFormat() should be true")
	}
	if !cfg.Report.Moves || !cfg.Report.Hash {
		t.Error("Report.Moves and Report.Hash should be true")
	}
	if cfg.Report.PerftDepth != 3 || !cfg.Report.Divide || !cfg.Report.Verify {
		t.Errorf("Report = %+v, want perft 3 with divide and verify", *cfg.Report)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if !cfg.Filter.MatchCheckmate || !cfg.Filter.MatchStalemate {
		t.Error("checkmate and stalemate filters should be set")
	}
	if len(cfg.PlayMoves) != 2 || cfg.PlayMoves[1] != "e7e5" {
		t.Errorf("PlayMoves = %v", cfg.PlayMoves)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	if NewConfigBuilder().WithJSONOutput(false).Build().Output.JSONFormat() {
		t.Error("WithJSONOutput(false) should select text output")
	}
}
