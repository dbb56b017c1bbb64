package ports

import "context"

// Consenter asks the user for permission before side effects.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Consenter interface {
	// Confirm displays the prompt and blocks until answered. It returns
	// false without error when the environment cannot ask (no terminal).
	Confirm(prompt string) (bool, error)
}

// Installer installs the pint package into a project.
type Installer interface {
	// Install runs the composer require command with root as the working
	// directory. A non-zero exit is reported as domain.ErrInstallFailed
	// carrying the captured stderr.
	Install(ctx context.Context, root string) error
}
