package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/iconex/pkg/domain/model"
)

func TestIsIcon(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		expected bool
	}{
		{name: "windows separator", entry: `.rsrc\ICON\1`, expected: true},
		{name: "posix separator", entry: ".rsrc/ICON/1.ico", expected: true},
		{name: "language folder", entry: `.rsrc\1033\ICON\3`, expected: true},
		{name: "folder itself", entry: `.rsrc\ICON`, expected: false},
		{name: "group icon", entry: `.rsrc\GROUP_ICON\1`, expected: false},
		{name: "similar folder name", entry: ".rsrc/ICONS/1", expected: false},
		{name: "lower case", entry: ".rsrc/icon/1", expected: false},
		{name: "section", entry: ".text", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.IsIcon(tt.entry); got != tt.expected {
				t.Errorf("IsIcon(%q) = %v, want %v", tt.entry, got, tt.expected)
			}
		})
	}
}

func TestIconEntry_BaseNameAndExt(t *testing.T) {
	tests := []struct {
		name string
		base string
		ext  string
	}{
		{name: `.rsrc\ICON\1`, base: "1", ext: ""},
		{name: ".rsrc/ICON/2.ico", base: "2.ico", ext: ".ico"},
		{name: `.rsrc\1033\ICON\3.png`, base: "3.png", ext: ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &model.IconEntry{Name: tt.name}
			if got := e.BaseName(); got != tt.base {
				t.Errorf("BaseName() = %q, want %q", got, tt.base)
			}
			if got := e.Ext(); got != tt.ext {
				t.Errorf("Ext() = %q, want %q", got, tt.ext)
			}
		})
	}
}

func TestSummary_Add(t *testing.T) {
	var s model.Summary
	s.Add(&model.FileResult{Written: []string{"a.png", "a (2).png"}, Trashed: []string{"/trash/a.png"}})
	s.Add(&model.FileResult{Err: errors.New("failed")})
	s.Add(&model.FileResult{})

	if s.Candidates != 3 || s.Icons != 2 || s.Failed != 1 || s.Trashed != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}
	if len(s.Results) != 3 {
		t.Errorf("Results has %d entries, want 3", len(s.Results))
	}
}
