package common

//
// Common application errors
//
// errors.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"

	"gitlab.com/kabes/go-mygpo/internal/aerr"
)

var (
	ErrNoAccount = aerr.New("no account configured").
			WithUserMsg("no account configured; run 'login' first")
	ErrNoDevice = aerr.New("no device configured").
			WithUserMsg("no device selected; use --device or 'device init'")
)

// Validation errors.
var (
	ErrEmptyUsername  = aerr.New("username can't be empty").WithTag(aerr.ValidationError)
	ErrInvalidDevice  = aerr.New("invalid device id").WithTag(aerr.ValidationError)
	ErrInvalidPodcast = aerr.New("invalid podcast url").WithTag(aerr.ValidationError)
	ErrInvalidEpisode = aerr.New("invalid episode url").WithTag(aerr.ValidationError)
)

var ErrNoData = errors.New("no result")
