package overload

import "errors"

var (
	ErrOverloadPayNotFound = errors.New("overload pay not found")
	ErrOverloadPayArchived = errors.New("overload pay already archived")
)
