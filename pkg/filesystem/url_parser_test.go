//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dirstamp/pkg/filesystem"
)

// TestParsePath_Local tests ParsePath with local walk roots.
func TestParsePath_Local(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		wantPath string
	}{
		{"/local/path", "/local/path"},
		{"src", "src"},
		{".", "."},
		{"", "."},
	}

	for _, tt := range tests {
		result, err := filesystem.ParsePath(tt.input)
		if err != nil {
			t.Fatalf("ParsePath(%q): unexpected error: %v", tt.input, err)
		}

		if result.IsRemote {
			t.Errorf("ParsePath(%q): IsRemote should be false for local path", tt.input)
		}
		if result.LocalPath != tt.wantPath {
			t.Errorf("ParsePath(%q): LocalPath = %q, want %q", tt.input, result.LocalPath, tt.wantPath)
		}
		if result.String() != tt.wantPath {
			t.Errorf("ParsePath(%q): String() = %q, want %q", tt.input, result.String(), tt.wantPath)
		}
	}
}

// TestParsePath_SFTP tests ParsePath with valid and invalid SFTP URLs.
//
//nolint:funlen // Table-driven test with many SFTP URL parsing cases
func TestParsePath_SFTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantUser string
		wantHost string
		wantPort int
		wantPath string
	}{
		{
			name:     "relative to home",
			input:    "sftp://user@host/path",
			wantUser: "user",
			wantHost: "host",
			wantPort: filesystem.DefaultSFTPPort,
			wantPath: "path",
		},
		{
			name:     "custom port",
			input:    "sftp://admin@server.com:2222/home/data",
			wantUser: "admin",
			wantHost: "server.com",
			wantPort: 2222,
			wantPath: "home/data",
		},
		{
			name:     "absolute path",
			input:    "sftp://joe@host//var/log",
			wantUser: "joe",
			wantHost: "host",
			wantPort: filesystem.DefaultSFTPPort,
			wantPath: "/var/log",
		},
		{
			name:     "home directory",
			input:    "sftp://joe@host",
			wantUser: "joe",
			wantHost: "host",
			wantPort: filesystem.DefaultSFTPPort,
			wantPath: ".",
		},
		{
			name:    "missing username",
			input:   "sftp://host/path",
			wantErr: true,
		},
		{
			name:    "invalid port",
			input:   "sftp://joe@host:notaport/path",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			result, err := filesystem.ParsePath(tt.input)
			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
				return
			}

			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(result.IsRemote).To(BeTrue())
			g.Expect(result.User).To(Equal(tt.wantUser))
			g.Expect(result.Host).To(Equal(tt.wantHost))
			g.Expect(result.Port).To(Equal(tt.wantPort))
			g.Expect(result.Path).To(Equal(tt.wantPath))
		})
	}
}

func TestParsedPath_StringRemote(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result, err := filesystem.ParsePath("sftp://joe@host")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(result.String()).To(Equal("sftp://joe@host:22/"))

	result, err = filesystem.ParsePath("sftp://joe@host:2200/data")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(result.String()).To(Equal("sftp://joe@host:2200/data"))
}
