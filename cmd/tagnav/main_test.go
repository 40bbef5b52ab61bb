package main

import "testing"

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantCmd string
		wantErr bool
	}{
		{"list", []string{"list", "a.txt"}, "list", false},
		{"strip stdin", []string{"strip", "-"}, "strip", false},
		{"with flags", []string{"-open", "[", "-close", "]", "view", "a.txt"}, "view", false},
		{"version no file", []string{"version"}, "version", false},
		{"no command", []string{}, "", true},
		{"missing file", []string{"list"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && opts.command != tt.wantCmd {
				t.Errorf("command = %q, want %q", opts.command, tt.wantCmd)
			}
		})
	}
}

func TestParseFlagsWrapTracking(t *testing.T) {
	opts, err := parseFlags([]string{"list", "a.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.wrapSet {
		t.Error("wrapSet should be false when -wrap not given")
	}

	opts, err = parseFlags([]string{"-wrap=false", "list", "a.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.wrapSet || opts.wrap {
		t.Errorf("wrapSet = %v, wrap = %v, want true/false", opts.wrapSet, opts.wrap)
	}
}

func TestResolveConfigFlagOverrides(t *testing.T) {
	cfg, err := resolveConfig(options{open: "[", close: "]"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tag.Open != "[" || cfg.Tag.Close != "]" {
		t.Errorf("delimiters = %q, %q", cfg.Tag.Open, cfg.Tag.Close)
	}
	if !cfg.Tag.Wrap {
		t.Error("wrap should default to true")
	}
}

func TestResolveConfigRejectsEqualDelimiters(t *testing.T) {
	if _, err := resolveConfig(options{open: "%%", close: "%%"}); err == nil {
		t.Error("expected validation error for identical delimiters")
	}
}
