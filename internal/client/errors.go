package client

import "errors"

var ErrNoUI = errors.New("no user interface is provided")
