package backend

import "errors"

var ErrInvalidRequest = errors.New("invalid compile request")
