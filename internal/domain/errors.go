package domain

import "errors"

var (
	// ErrNoData means a subgraph response carried no usable data payload.
	ErrNoData = errors.New("no data in response")
)
