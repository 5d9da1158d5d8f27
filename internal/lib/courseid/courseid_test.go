package courseid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *CourseKey
		wantErr bool
	}{
		{
			name: "new style course id",
			raw:  "course-v1:edX+DemoX+Demo_Course",
			want: &CourseKey{Org: "edX", Course: "DemoX", Run: "Demo_Course"},
		},
		{
			name: "deprecated slash style course id",
			raw:  "edX/DemoX/Demo_Course",
			want: &CourseKey{Org: "edX", Course: "DemoX", Run: "Demo_Course"},
		},
		{
			name:    "garbage string",
			raw:     "not-a-course-id",
			wantErr: true,
		},
		{
			name:    "missing run",
			raw:     "course-v1:edX+DemoX",
			wantErr: true,
		},
		{
			name:    "empty org",
			raw:     "/DemoX/Demo_Course",
			wantErr: true,
		},
		{
			name:    "too many parts",
			raw:     "edX/DemoX/Demo_Course/extra",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCourseKey_String(t *testing.T) {
	key, err := Parse("edX/DemoX/Demo_Course")
	require.NoError(t, err)
	assert.Equal(t, "course-v1:edX+DemoX+Demo_Course", key.String())
}
