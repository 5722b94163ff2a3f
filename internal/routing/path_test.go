package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractGUID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantID  string
		wantErr bool
	}{
		{"bare collection path", "/guid", "", false},
		{"collection path with trailing slash", "/guid/", "", false},
		{"id segment", "/guid/7AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", "7AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", false},
		{"id segment not validated here", "/guid/xyz", "xyz", false},
		{"root path", "/", "", true},
		{"empty path", "", "", true},
		{"different resource", "/users/123", "", true},
		{"guid as prefix of another segment", "/guidfoo", "", true},
		{"nested too deep", "/guid/ABC/extra", "", true},
		{"missing leading slash", "guid/ABC", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ExtractGUID(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotGUIDPath)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
