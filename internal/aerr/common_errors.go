package aerr

//
// common_errors.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

const (
	InternalError      = "internal error"
	ValidationError    = "validation error"
	NetworkError       = "network error"
	ConfigurationError = "configuration error"
)

var (
	ErrValidation  = New("validation error").WithTag(ValidationError)
	ErrInvalidConf = New("invalid configuration").WithTag(ConfigurationError)
	ErrState       = New("state database error").WithTag(InternalError).WithUserMsg("local state error")
	ErrNetwork     = New("network error").WithTag(NetworkError).WithUserMsg("server request failed")
)
