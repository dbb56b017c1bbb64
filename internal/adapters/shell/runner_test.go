package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/pinto/internal/adapters/shell"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/pinto/internal/core/ports/mocks"
)

func newQuietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRunner_CapturesOutputAndExitZero(t *testing.T) {
	script := writeScript(t, `echo out; echo err >&2`)

	runner := shell.NewRunner(newQuietLogger(t))
	result, err := runner.Run(context.Background(), ports.Invocation{Bin: script})
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode)
	require.Equal(t, "out\n", string(result.Stdout))
	require.Equal(t, "err\n", string(result.Stderr))
	require.False(t, result.TimedOut)
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	script := writeScript(t, `echo needs work; exit 1`)

	runner := shell.NewRunner(newQuietLogger(t))
	result, err := runner.Run(context.Background(), ports.Invocation{Bin: script})
	require.NoError(t, err)
	require.Equal(t, 1, result.ExitCode)
	require.Equal(t, "needs work\n", string(result.Stdout))
}

func TestRunner_RunsInRequestedDir(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, `pwd`)

	runner := shell.NewRunner(newQuietLogger(t))
	result, err := runner.Run(context.Background(), ports.Invocation{Bin: script, Dir: dir})
	require.NoError(t, err)

	got, evalErr := filepath.EvalSymlinks(string(result.Stdout[:len(result.Stdout)-1]))
	require.NoError(t, evalErr)
	want, evalErr := filepath.EvalSymlinks(dir)
	require.NoError(t, evalErr)
	require.Equal(t, want, got)
}

func TestRunner_Timeout(t *testing.T) {
	script := writeScript(t, `sleep 10`)

	runner := shell.NewRunner(newQuietLogger(t))
	start := time.Now()
	result, err := runner.Run(context.Background(), ports.Invocation{
		Bin:     script,
		Timeout: 100 * time.Millisecond,
	})
	require.ErrorIs(t, err, domain.ErrProcessTimeout)
	require.True(t, result.TimedOut)
	require.Less(t, time.Since(start), 8*time.Second)
}

func TestRunner_MissingBinary(t *testing.T) {
	runner := shell.NewRunner(newQuietLogger(t))
	_, err := runner.Run(context.Background(), ports.Invocation{
		Bin: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrProcessTimeout)
}
