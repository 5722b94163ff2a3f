package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/guidtrack/guidctl/internal/history"
	"github.com/guidtrack/guidctl/pkg/cli/internal/output"
	"github.com/guidtrack/guidctl/pkg/client"
	"github.com/guidtrack/guidctl/pkg/cliconfig"
	"github.com/guidtrack/guidctl/pkg/logging"
	"github.com/spf13/cobra"
)

// runResult is the JSON envelope printed by data-plane commands when
// --json is set.
type runResult struct {
	Operation string          `json:"operation"`
	URL       string          `json:"url"`
	GUID      string          `json:"guid,omitempty"`
	Status    int             `json:"status,omitempty"`
	Success   bool            `json:"success"`
	Response  json.RawMessage `json:"response,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// loadConfig resolves the configuration for this invocation, honoring
// the --config flag when set.
func loadConfig() (*cliconfig.Config, error) {
	if configPath != "" {
		return cliconfig.LoadFile(configPath)
	}
	return cliconfig.Load()
}

// loggerFor builds the logger for one invocation. The --verbose flag
// forces debug text output regardless of the configured level.
func loggerFor(cfg *cliconfig.Config) *slog.Logger {
	if verbose {
		return logging.Debug()
	}
	return logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
}

// resolveEndpoint picks the endpoint for this invocation. An explicit
// --url flag wins, then the configured endpoint, then the flag default.
func resolveEndpoint(cmd *cobra.Command, cfg *cliconfig.Config) (string, error) {
	if cmd.Flags().Changed("url") {
		return endpointURL, nil
	}
	if cfg.Endpoint != "" {
		return cfg.Endpoint, nil
	}
	if endpointURL != "" {
		return endpointURL, nil
	}
	return "", ErrNoEndpoint
}

// runOperation drives one data-plane operation end to end: resolve the
// endpoint, build the client, execute the request exactly once, report
// the outcome, and record the invocation in history.
//
// On HTTP and transport failures the details go to stderr (or into the
// JSON envelope) and the returned error carries only the operation name,
// so the failure is reported once and the process exits non-zero.
func runOperation(cmd *cobra.Command, operation, id string, fn func(ctx context.Context, c client.Client) (*client.Response, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := loggerFor(cfg)

	endpoint, err := resolveEndpoint(cmd, cfg)
	if err != nil {
		return err
	}

	c, err := client.New(endpoint, client.WithLogger(log))
	if err != nil {
		return err
	}

	resp, err := fn(ctx, c)

	result := runResult{Operation: operation, URL: endpoint, GUID: id}
	inv := history.Invocation{Operation: operation, URL: endpoint, GUID: id}

	var apiErr *client.APIError
	switch {
	case err == nil:
		result.Status = resp.StatusCode
		result.Success = true
		if len(resp.Body) > 0 {
			if json.Valid(resp.Body) {
				result.Response = resp.Body
			} else {
				quoted, _ := json.Marshal(string(resp.Body))
				result.Response = quoted
			}
		}
		inv.Status = resp.StatusCode
		inv.Outcome = history.OutcomeSuccess
		inv.Detail = string(resp.Body)
	case errors.As(err, &apiErr):
		result.Status = apiErr.StatusCode
		result.Error = err.Error()
		inv.Status = apiErr.StatusCode
		inv.Outcome = history.OutcomeHTTPError
		inv.Detail = err.Error()
	default:
		result.Error = err.Error()
		inv.Outcome = history.OutcomeTransportError
		inv.Detail = err.Error()
	}

	recordHistory(ctx, cfg, log, inv)

	if jsonOutput {
		if jerr := output.JSON(result); jerr != nil {
			return jerr
		}
		if err != nil {
			return fmt.Errorf("%s failed", operation)
		}
		return nil
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, FormatConnectionError(err))
		return fmt.Errorf("%s failed", operation)
	}

	output.Body(resp.Body)
	return nil
}

// recordHistory appends the invocation to the local history store.
// History is best-effort: failing to record never fails the command.
func recordHistory(ctx context.Context, cfg *cliconfig.Config, log *slog.Logger, inv history.Invocation) {
	if noHistory || !cfg.History.Enabled || cfg.History.Path == "" {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		log.Debug("history not recorded", "error", err)
		return
	}
	defer store.Close()
	if err := store.Record(ctx, &inv); err != nil {
		output.Warn("could not record history: %v", err)
	}
}
