package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yunfengsay/part-render/project"
)

func TestMergeDependencies(t *testing.T) {
	tests := []struct {
		name  string
		base  map[string]string
		extra map[string]string
		want  map[string]string
	}{
		{
			name:  "disjoint tables",
			base:  map[string]string{"react": "^18.2.0"},
			extra: map[string]string{"dayjs": "^1.11.0"},
			want:  map[string]string{"react": "^18.2.0", "dayjs": "^1.11.0"},
		},
		{
			name:  "higher version wins",
			base:  map[string]string{"react": "^17.0.2"},
			extra: map[string]string{"react": "^18.2.0"},
			want:  map[string]string{"react": "^18.2.0"},
		},
		{
			name:  "lower version loses",
			base:  map[string]string{"react": "18.2.0"},
			extra: map[string]string{"react": "16.8.0"},
			want:  map[string]string{"react": "18.2.0"},
		},
		{
			name:  "unparsable keeps base",
			base:  map[string]string{"lodash": "^4.17.21"},
			extra: map[string]string{"lodash": "workspace:*"},
			want:  map[string]string{"lodash": "^4.17.21"},
		},
		{
			name:  "tilde prefix compares",
			base:  map[string]string{"axios": "~1.4.0"},
			extra: map[string]string{"axios": "~1.6.2"},
			want:  map[string]string{"axios": "~1.6.2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, project.MergeDependencies(tt.base, tt.extra))
		})
	}
}

func TestDependencyNames(t *testing.T) {
	names := project.DependencyNames(map[string]string{
		"react":     "^18.2.0",
		"axios":     "^1.6.2",
		"clsx":      "^2.0.0",
		"@mui/core": "^5.0.0",
	})
	assert.Equal(t, []string{"@mui/core", "axios", "clsx", "react"}, names)
}
