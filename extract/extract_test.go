// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package extract

import (
	"strings"
	"testing"
)

func TestBodyText(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		html     string
		want     string
	}{
		{
			name:     "default selector",
			selector: "",
			html:     `<html><body><div id="articleBody"> 본문   내용입니다. </div></body></html>`,
			want:     "본문 내용입니다.",
		},
		{
			name:     "custom selector",
			selector: ".article-content",
			html:     `<html><body><div class="article-content">Custom body.</div></body></html>`,
			want:     "Custom body.",
		},
		{
			name:     "nested markup collapsed",
			selector: "",
			html:     `<div id="articleBody"><p>첫 문단.</p>  <p>둘째  문단.</p></div>`,
			want:     "첫 문단. 둘째 문단.",
		},
		{
			name:     "no body element",
			selector: "",
			html:     `<html><body><div id="sidebar">광고</div></body></html>`,
			want:     "",
		},
		{
			name:     "first match wins",
			selector: ".body",
			html:     `<div class="body">one</div><div class="body">two</div>`,
			want:     "one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.selector).BodyText(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("BodyText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BodyText() = %q, want %q", got, tt.want)
			}
		})
	}
}
