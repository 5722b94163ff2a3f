package guid

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		guid    string
		wantErr error
	}{
		{"valid all digits", "12345678901234567890123456789012", nil},
		{"valid mixed hex", "9EC7500FF3E34C7C96BBCB376AE3F0C8", nil},
		{"too short", "ABC123", ErrBadLength},
		{"too long", "9EC7500FF3E34C7C96BBCB376AE3F0C8FF", ErrBadLength},
		{"empty", "", ErrBadLength},
		{"lowercase hex", "9ec7500ff3e34c7c96bbcb376ae3f0c8", ErrNotUpperHex},
		{"non-hex letter", "GGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGG", ErrNotUpperHex},
		{"embedded space", "9EC7500FF3E34C7C 6BBCB376AE3F0C8", ErrNotUpperHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.guid)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		g := New()
		require.NoError(t, Validate(g))
		assert.False(t, seen[g], "generated duplicate %s", g)
		seen[g] = true
	}
}

func TestNewWithPrefix(t *testing.T) {
	for _, prefix := range []byte{'0', '7', '8', '9', 'A', 'F'} {
		g, err := NewWithPrefix(prefix)
		require.NoError(t, err)
		require.NoError(t, Validate(g))
		assert.Equal(t, prefix, g[0])
	}

	_, err := NewWithPrefix('g')
	assert.Error(t, err)
	_, err = NewWithPrefix('z')
	assert.Error(t, err)
}

func TestValidateExpire(t *testing.T) {
	future := strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10)
	past := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)

	assert.NoError(t, ValidateExpire(future))
	assert.ErrorIs(t, ValidateExpire(past), ErrExpireNotFuture)

	err := ValidateExpire("not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "integer")
}

func TestRecordJSONKeys(t *testing.T) {
	rec := Record{GUID: strings.Repeat("A", Length), User: "foo", Expire: "1234123123123"}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"guid":"`+rec.GUID+`","user":"foo","expire":"1234123123123"}`, string(data))
}
