package settings

import "errors"

var ErrInvalidRate = errors.New("default room rate must be a number")
