package mockapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGUID(first byte) string {
	return string(first) + strings.Repeat("A", 31)
}

func TestStatusForFirstCharacter(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantReason string
	}{
		{"nine injects server fault", testGUID('9'), http.StatusServiceUnavailable, "mock server error test"},
		{"eight injects client fault", testGUID('8'), http.StatusNotFound, "mock client error test"},
		{"seven succeeds", testGUID('7'), http.StatusOK, "OK"},
		{"zero succeeds", testGUID('0'), http.StatusOK, "OK"},
		{"letter succeeds", testGUID('F'), http.StatusOK, "OK"},
		{"only first character counts", "A9999999999999999999999999999999", http.StatusOK, "OK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reason := statusFor(tt.id)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

// The status mapping is shared by all operations, not just reads.
func TestStatusRuleAppliesToEveryOperation(t *testing.T) {
	ops := map[string]synthesizer{
		"read":          synthesizeRead,
		"create/update": synthesizeCreateUpdate,
		"delete":        synthesizeDelete,
	}

	for name, synth := range ops {
		t.Run(name, func(t *testing.T) {
			for first, want := range map[byte]int{
				'9': http.StatusServiceUnavailable,
				'8': http.StatusNotFound,
				'7': http.StatusOK,
				'C': http.StatusOK,
			} {
				resp, err := synth(testGUID(first), []byte(`{"user":"x"}`))
				require.NoError(t, err)
				assert.Equal(t, want, resp.status, "first char %q", string(first))
			}
		})
	}
}

func TestSynthesizeRead(t *testing.T) {
	id := testGUID('9')
	resp, err := synthesizeRead(id, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, resp.status)
	assert.Equal(t, "mock server error test", resp.reason)
	// Body stays well-formed JSON despite the fault status.
	assert.JSONEq(t, `{"guid":"`+id+`","expire":"1234123123123","user":"foo"}`, string(resp.body))
}

func TestSynthesizeReadRequiresGUID(t *testing.T) {
	_, err := synthesizeRead("", nil)
	assert.ErrorIs(t, err, ErrMissingGUID)
}

func TestSynthesizeCreateUpdate(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "create without id backfills everything",
			id:         "",
			body:       `{"user":"alice"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"guid":"77777777777777","user":"alice","expire":"999999999999"}`,
		},
		{
			name:       "update echoes expire and backfills user",
			id:         "7AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
			body:       `{"expire":"2000000000"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"guid":"7AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA","expire":"2000000000","user":"mock generated"}`,
		},
		{
			name:       "supplied fields are never dropped",
			id:         testGUID('1'),
			body:       `{"user":"bob","expire":"1900000000","note":"keep me"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"guid":"` + testGUID('1') + `","user":"bob","expire":"1900000000","note":"keep me"}`,
		},
		{
			name:       "path id overrides a guid field in the body",
			id:         testGUID('2'),
			body:       `{"guid":"ignored","user":"bob"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"guid":"` + testGUID('2') + `","user":"bob","expire":"999999999999"}`,
		},
		{
			name:       "empty body backfills everything",
			id:         testGUID('3'),
			body:       "",
			wantStatus: http.StatusOK,
			wantBody:   `{"guid":"` + testGUID('3') + `","user":"mock generated","expire":"999999999999"}`,
		},
		{
			name:       "fault id still echoes the body",
			id:         testGUID('8'),
			body:       `{"user":"carol"}`,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"guid":"` + testGUID('8') + `","user":"carol","expire":"999999999999"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := synthesizeCreateUpdate(tt.id, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.status)
			assert.JSONEq(t, tt.wantBody, string(resp.body))
		})
	}
}

func TestSynthesizeCreateUpdateRejectsMalformedBody(t *testing.T) {
	_, err := synthesizeCreateUpdate("", []byte(`{"user":`))
	assert.Error(t, err)

	_, err = synthesizeCreateUpdate("", []byte(`[1,2,3]`))
	assert.Error(t, err)
}

func TestSynthesizeDelete(t *testing.T) {
	for _, first := range []byte{'9', '8', '5'} {
		resp, err := synthesizeDelete(testGUID(first), nil)
		require.NoError(t, err)
		assert.Empty(t, resp.body, "delete body must be empty for status %d", resp.status)
	}

	_, err := synthesizeDelete("", nil)
	assert.ErrorIs(t, err, ErrMissingGUID)
}

// Synthesizers are pure: no hidden counters or timestamps.
func TestSynthesizersAreDeterministic(t *testing.T) {
	id := testGUID('4')
	body := []byte(`{"user":"alice","expire":"1900000000"}`)

	for name, synth := range map[string]synthesizer{
		"read":          synthesizeRead,
		"create/update": synthesizeCreateUpdate,
		"delete":        synthesizeDelete,
	} {
		t.Run(name, func(t *testing.T) {
			first, err := synth(id, body)
			require.NoError(t, err)
			second, err := synth(id, body)
			require.NoError(t, err)

			assert.Equal(t, first.status, second.status)
			assert.Equal(t, first.reason, second.reason)
			assert.Equal(t, first.body, second.body)
		})
	}
}
