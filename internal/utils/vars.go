package utils

import "time"

const ToolUserAgent = "juice-mnist/0.1"

const (
	DefaultTimeout   = 3 * time.Minute
	DefaultKATimeout = 90 * time.Second
)

const DefaultBufferSize = 1024 * 256 // 256KB buffer
