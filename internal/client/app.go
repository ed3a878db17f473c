package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-secure-data/internal/adapter"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/workers"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
)

// App dispatches command-line commands to the gateway.
type App struct {
	gateway     adapter.GatewayClient
	out         io.Writer
	parallelism int
	logger      *logger.Logger
}

// NewApp constructs the client application.
func NewApp(gateway adapter.GatewayClient, out io.Writer, parallelism int, logger *logger.Logger) *App {
	return &App{gateway: gateway, out: out, parallelism: parallelism, logger: logger}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrInvalidArguments)
	}

	ctx = a.logger.WithContext(ctx)

	switch cmd, rest := args[0], args[1:]; cmd {
	case "version":
		return a.version(ctx)
	case "execute":
		return a.execute(ctx, rest)
	case "grant":
		return a.share(ctx, rest, a.gateway.GrantShare)
	case "revoke":
		return a.share(ctx, rest, a.gateway.RevokeShare)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) version(ctx context.Context) error {
	v, err := a.gateway.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) execute(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: execute needs at least one event file", ErrInvalidArguments)
	}

	results := make([]*models.PipelineEvent, len(files))
	jobs := make([]workers.Worker, len(files))
	for i, path := range files {
		jobs[i] = workers.WorkerFunc(func(ctx context.Context) error {
			event, err := readEvent(path)
			if err != nil {
				return err
			}

			results[i], err = a.gateway.Execute(ctx, event)
			if err != nil {
				a.logger.Err(err).
					Str("func", "*App.execute").
					Str("file", path).
					Msg("failed to execute pipeline event")
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	_, runErr := workers.New(a.parallelism, jobs...).Run(ctx)

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	for _, event := range results {
		if event == nil {
			continue
		}
		if err := enc.Encode(event); err != nil {
			return err
		}
	}

	return runErr
}

func (a *App) share(ctx context.Context, args []string, call func(ctx context.Context, secureDataID, userID uuid.UUID) error) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected SECUREDATA_ID USER_ID", ErrInvalidArguments)
	}

	secureDataID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: secure data id: %w", ErrInvalidArguments, err)
	}
	userID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("%w: user id: %w", ErrInvalidArguments, err)
	}

	return call(ctx, secureDataID, userID)
}

func readEvent(path string) (*models.PipelineEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event file: %w", err)
	}

	var event models.PipelineEvent
	if err = json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidArguments, path, err)
	}
	return &event, nil
}
