package core

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"package.yaml": {Data: []byte(`name: get-shit-done-cc
version: "1.6.4"
description: A meta-prompting and spec-driven development system
author: TÂCHES
`)},
	}

	m, err := LoadManifest(fsys)
	if err != nil {
		t.Fatalf("LoadManifest() error: %v", err)
	}
	if m.Name != "get-shit-done-cc" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Version != "1.6.4" {
		t.Errorf("Version = %q", m.Version)
	}
	if m.Author != "TÂCHES" {
		t.Errorf("Author = %q", m.Author)
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{"missing file", fstest.MapFS{}, "reading manifest"},
		{"bad yaml", fstest.MapFS{"package.yaml": {Data: []byte("name: [unclosed")}}, "parsing manifest"},
		{"no name", fstest.MapFS{"package.yaml": {Data: []byte("version: 1.0.0\n")}}, "name is required"},
		{"no version", fstest.MapFS{"package.yaml": {Data: []byte("name: x\n")}}, "version is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadManifest(tt.fsys)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadManifest() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
