package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != "8080" {
		t.Fatalf("unexpected address defaults: %s:%s", cfg.Host, cfg.Port)
	}
	if cfg.MinCandidateLen != 4 || cfg.SegmentationMode != 6 {
		t.Fatalf("unexpected heuristic defaults: %+v", cfg)
	}
	if len(cfg.Languages) != 2 || cfg.Languages[0] != "chi_sim" {
		t.Fatalf("unexpected languages: %+v", cfg.Languages)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headline.yaml")
	content := "port: \"9090\"\nmin_candidate_len: 8\nlanguages: [jpn, eng]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9090" || cfg.MinCandidateLen != 8 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Languages[0] != "jpn" {
		t.Fatalf("unexpected languages: %+v", cfg.Languages)
	}
	if cfg.Host != "127.0.0.1" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HEADLINE_PORT", "7070")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("env override not applied: %s", cfg.Port)
	}
}

func TestExtractorConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	ec := cfg.ExtractorConfig()
	if ec.MinCandidateLen != cfg.MinCandidateLen || ec.SegmentationMode != cfg.SegmentationMode {
		t.Fatalf("extractor config mismatch: %+v", ec)
	}
}
