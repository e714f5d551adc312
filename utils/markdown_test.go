package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains []string
		absent   []string
	}{
		{"heading", "# Variables", []string{"<h1>Variables</h1>"}, nil},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<td>1</td>"}, nil},
		{"raw html dropped", "hi <script>alert(1)</script>", []string{"hi"}, []string{"<script>"}},
		{"code block highlighted", "```go\nfunc main() {}\n```", []string{"<pre", "class="}, nil},
		{"arabic text", "مرحبا **بالعالم**", []string{"<strong>بالعالم</strong>"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderMarkdown(tt.source)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, bad := range tt.absent {
				assert.NotContains(t, out, bad)
			}
		})
	}
}
