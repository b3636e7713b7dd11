package client

import "errors"

var errIncompleteApp = errors.New("client app needs services and a UI")
