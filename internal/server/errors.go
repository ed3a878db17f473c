package server

import "errors"

var errNoHTTPHandler = errors.New("no http handler to serve")
