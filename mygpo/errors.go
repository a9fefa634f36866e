package mygpo

//
// errors.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import "strconv"

// NetworkError is the single error kind surfaced by the library. It wraps
// connection failures, non-2xx HTTP statuses and response-decode failures
// alike; server error bodies are not interpreted. There is no retry or
// recovery - every failure is reported once, verbatim.
type NetworkError struct {
	Err        error
	URL        string
	StatusCode int
}

func (e *NetworkError) Error() string {
	msg := "request " + e.URL + " failed"
	if e.StatusCode != 0 {
		msg += " (status " + strconv.Itoa(e.StatusCode) + ")"
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
