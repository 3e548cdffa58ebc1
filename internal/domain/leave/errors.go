package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave not found")
	ErrLeaveAlreadyApproved = errors.New("leave already approved")
)
