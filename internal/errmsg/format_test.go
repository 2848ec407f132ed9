//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImageLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "image load",
			op:       OpImageLoad,
			err:      errors.New("unsupported image format"),
			expected: "Failed to load image: unsupported image format",
		},
		{
			name:     "config load",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 3: expected '='"),
			expected: "Failed to load config: toml: line 3: expected '='",
		},
		{
			name:     "render",
			op:       OpRender,
			err:      errors.New("broken pipe"),
			expected: "Failed to render image: broken pipe",
		},
		{
			name:     "viewport save",
			op:       OpViewportSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save viewport: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImageLoad,
			context:  "cat.png",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpStateOpen,
			context:  "",
			err:      errors.New("read-only file system"),
			expected: "Failed to open state database: read-only file system",
		},
		{
			name:     "includes quoted context",
			op:       OpImageLoad,
			context:  "/tmp/cat.png",
			err:      errors.New("no such file or directory"),
			expected: "Failed to load image '/tmp/cat.png': no such file or directory",
		},
		{
			name:     "restore with path",
			op:       OpViewportRestore,
			context:  "photo.jpg",
			err:      errors.New("no such table"),
			expected: "Failed to restore viewport 'photo.jpg': no such table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
