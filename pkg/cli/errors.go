package cli

import (
	"errors"
	"fmt"

	"github.com/guidtrack/guidctl/pkg/client"
)

// ErrNoEndpoint is returned when neither the --url flag nor the
// configuration provides an endpoint to talk to.
var ErrNoEndpoint = errors.New("no endpoint configured - set one with: guidctl init, or pass --url")

// FormatConnectionError returns a user-friendly error message for errors
// that prevented a request from completing. HTTP-level failures already
// carry the server's answer and are passed through unchanged.
func FormatConnectionError(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return err.Error()
	}
	return fmt.Sprintf(`Error: %s

Suggestions:
  • Check the endpoint URL with: guidctl config
  • Verify the server is reachable from this machine
  • Use a mock:// endpoint to run against the built-in simulator`, err)
}
