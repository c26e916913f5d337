package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/unifero/htmltomarkdown"
	"github.com/stretchr/testify/assert"
)

func TestPromoteHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "short label becomes heading",
			in:   "Installation\n\nRun the installer.",
			want: "## Installation\n\nRun the installer.",
		},
		{
			name: "multi-word label",
			in:   "Getting Started\n\ntext",
			want: "## Getting Started\n\ntext",
		},
		{
			name: "existing heading untouched",
			in:   "## Installation\n\ntext",
			want: "## Installation\n\ntext",
		},
		{
			name: "prose with punctuation untouched",
			in:   "Install the tool, then run it.\n",
			want: "Install the tool, then run it.\n",
		},
		{
			name: "lowercase start untouched",
			in:   "installation notes\n",
			want: "installation notes\n",
		},
		{
			name: "too many words untouched",
			in:   "One Two Three Four Five Six Seven\n",
			want: "One Two Three Four Five Six Seven\n",
		},
		{
			name: "fenced code untouched",
			in:   "```\nInstallation\n```\n",
			want: "```\nInstallation\n```\n",
		},
		{
			name: "too short untouched",
			in:   "Go\n",
			want: "Go\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmltomarkdown.PromoteHeadings(tt.in))
		})
	}
}
