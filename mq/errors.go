package mq

import "errors"

var ErrUnknownKind = errors.New("unknown notification kind")
