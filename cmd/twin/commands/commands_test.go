package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/twin/cmd/twin/commands"
	"go.trai.ch/twin/internal/app"
	"go.trai.ch/twin/internal/build"
	"go.trai.ch/twin/internal/core/domain"
)

type testLogger struct {
	jsonMode bool
}

func (l *testLogger) Info(string)         {}
func (l *testLogger) Warn(string)         {}
func (l *testLogger) Error(error)         {}
func (l *testLogger) SetOutput(io.Writer) {}

func (l *testLogger) SetJSON(enable bool) { l.jsonMode = enable }

type mockApp struct {
	scanFunc  func(ctx context.Context, opts app.ScanOptions) error
	applyFunc func(ctx context.Context, opts app.ApplyOptions) (domain.ApplyResult, error)
}

func (m *mockApp) Scan(ctx context.Context, opts app.ScanOptions) error {
	if m.scanFunc != nil {
		return m.scanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Apply(ctx context.Context, opts app.ApplyOptions) (domain.ApplyResult, error) {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, opts)
	}
	return domain.ApplyResult{}, nil
}

func TestCommands_Scan(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ScanOptions
		called := false

		mock := &mockApp{
			scanFunc: func(_ context.Context, opts app.ScanOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock, &testLogger{})
		cli.SetArgs([]string{
			"scan", "/photos", "/backup",
			"--recursive=false",
			"--pre-scan",
			"--min-size", "1024",
			"--ext", ".jpg,.png",
			"--ignore-dir", ".git",
			"--mode", "hash-verify",
			"--action", "delete",
			"--plan", "out.plan.json",
			"--progress-interval", "500",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"/photos", "/backup"}, capturedOpts.Paths)
		assert.False(t, capturedOpts.Recursive)
		assert.True(t, capturedOpts.UsePreScan)
		assert.Equal(t, int64(1024), capturedOpts.MinSizeBytes)
		assert.Equal(t, []string{".jpg", ".png"}, capturedOpts.SafeExtensions)
		assert.Equal(t, []string{".git"}, capturedOpts.IgnoredDirNames)
		assert.Equal(t, "hash-verify", capturedOpts.ExactMode)
		assert.Equal(t, "delete", capturedOpts.ActionKind)
		assert.Equal(t, "out.plan.json", capturedOpts.PlanPath)
		assert.Equal(t, 500, capturedOpts.ProgressInterval)
		assert.True(t, capturedOpts.CanonicalByLexicalPath, "lexical canonical selection is the default")
	})

	t.Run("defaults favor safety", func(t *testing.T) {
		var capturedOpts app.ScanOptions
		mock := &mockApp{
			scanFunc: func(_ context.Context, opts app.ScanOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock, &testLogger{})
		cli.SetArgs([]string{"scan", "/data"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedOpts.Recursive)
		assert.False(t, capturedOpts.UsePreScan)
		assert.Equal(t, domain.DefaultPlanFileName, capturedOpts.PlanPath)
	})

	t.Run("shows usage when no paths provided", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ app.ScanOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, &testLogger{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"scan"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("returns error on scan failure", func(t *testing.T) {
		mock := &mockApp{
			scanFunc: func(_ context.Context, _ app.ScanOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, &testLogger{})
		cli.SetArgs([]string{"scan", "/data"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Apply(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ApplyOptions
		mock := &mockApp{
			applyFunc: func(_ context.Context, opts app.ApplyOptions) (domain.ApplyResult, error) {
				capturedOpts = opts
				return domain.ApplyResult{Total: 1, Applied: 1}, nil
			},
		}

		cli := commands.New(mock, &testLogger{})
		cli.SetArgs([]string{
			"apply",
			"--plan", "custom.plan.json",
			"--dry-run=false",
			"--quarantine-dir", "/tmp/q",
			"--allow-delete",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "custom.plan.json", capturedOpts.PlanPath)
		assert.False(t, capturedOpts.DryRun)
		assert.Equal(t, "/tmp/q", capturedOpts.QuarantineDir)
		assert.True(t, capturedOpts.AllowDelete)
	})

	t.Run("dry-run is the default", func(t *testing.T) {
		var capturedOpts app.ApplyOptions
		mock := &mockApp{
			applyFunc: func(_ context.Context, opts app.ApplyOptions) (domain.ApplyResult, error) {
				capturedOpts = opts
				return domain.ApplyResult{DryRun: opts.DryRun}, nil
			},
		}

		cli := commands.New(mock, &testLogger{})
		cli.SetArgs([]string{"apply"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, capturedOpts.DryRun)
		assert.False(t, capturedOpts.AllowDelete)
	})

	t.Run("failed actions surface as an error", func(t *testing.T) {
		mock := &mockApp{
			applyFunc: func(_ context.Context, _ app.ApplyOptions) (domain.ApplyResult, error) {
				return domain.ApplyResult{Total: 2, Applied: 1, Failed: 1}, nil
			},
		}

		cli := commands.New(mock, &testLogger{})
		cli.SetArgs([]string{"apply"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		assert.ErrorIs(t, err, domain.ErrApplyFailed)
	})
}

func TestCommands_JSONFlag(t *testing.T) {
	t.Run("enables JSON logging", func(t *testing.T) {
		log := &testLogger{}
		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"scan", "/data", "--json"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, log.jsonMode)
	})

	t.Run("pretty output by default", func(t *testing.T) {
		log := &testLogger{}
		cli := commands.New(&mockApp{}, log)
		cli.SetArgs([]string{"scan", "/data"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, log.jsonMode)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock, &testLogger{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
