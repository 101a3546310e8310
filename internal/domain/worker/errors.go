package worker

import "errors"

var (
	ErrWorkerNotFound         = errors.New("worker not found")
	ErrUsernameExists         = errors.New("username already in use")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
