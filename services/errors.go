package services

import "errors"

var (
	// ErrNotWeddingProject is returned when a task operation targets a studio
	// or corporate project.
	ErrNotWeddingProject = errors.New("tasks can only be attached to wedding projects")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists is returned on registration with a taken email.
	ErrUserExists = errors.New("user already exists")

	// ErrSessionClosed is returned when stopping a work session twice.
	ErrSessionClosed = errors.New("work session already completed")
)
