package common

//
// logging.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

const (
	LogKeyUserName = "user_name"
	LogKeyDeviceID = "device_id"
	LogKeyServer   = "server"
)

const (
	LogKeyCommand = "command"
	LogKeyCursor  = "cursor"
)
