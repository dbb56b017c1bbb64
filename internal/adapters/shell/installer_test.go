package shell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/pinto/internal/adapters/shell"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/pinto/internal/core/ports/mocks"
)

func TestComposerInstaller_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)
	root := t.TempDir()

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv ports.Invocation) (*ports.ExecResult, error) {
			require.Equal(t, "composer", inv.Bin)
			require.Equal(t, []string{"require", "laravel/pint", "--dev"}, inv.Args)
			require.Equal(t, root, inv.Dir)
			return &ports.ExecResult{ExitCode: 0}, nil
		})

	installer := shell.NewComposerInstaller(runner, newQuietLogger(t), "")
	require.NoError(t, installer.Install(context.Background(), root))
}

func TestComposerInstaller_CustomComposerBin(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv ports.Invocation) (*ports.ExecResult, error) {
			require.Equal(t, "/opt/php/composer.phar", inv.Bin)
			return &ports.ExecResult{ExitCode: 0}, nil
		})

	installer := shell.NewComposerInstaller(runner, newQuietLogger(t), "/opt/php/composer.phar")
	require.NoError(t, installer.Install(context.Background(), t.TempDir()))
}

func TestComposerInstaller_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(&ports.ExecResult{ExitCode: 2, Stderr: []byte("your requirements could not be resolved")}, nil)

	installer := shell.NewComposerInstaller(runner, newQuietLogger(t), "composer")
	err := installer.Install(context.Background(), t.TempDir())
	require.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestComposerInstaller_RunnerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockToolRunner(ctrl)

	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrProcessTimeout)

	installer := shell.NewComposerInstaller(runner, newQuietLogger(t), "composer")
	err := installer.Install(context.Background(), t.TempDir())
	require.ErrorIs(t, err, domain.ErrProcessTimeout)
}
