package mygpo

//
// device.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"
	"strings"
)

// DeviceType classify a device in the account's device registry.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceLaptop  DeviceType = "laptop"
	DeviceMobile  DeviceType = "mobile"
	DeviceServer  DeviceType = "server"
	DeviceOther   DeviceType = "other"
)

func (t DeviceType) Valid() bool {
	switch t {
	case DeviceDesktop, DeviceLaptop, DeviceMobile, DeviceServer, DeviceOther:
		return true
	}

	return false
}

func (t DeviceType) String() string {
	if t == "" {
		return ""
	}

	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Device identify one client application in the account. The id is chosen
// by the client, must match [\w.-]+ and should be unique within the
// account; a stale record with the same id refers to the same device no
// matter what the other fields say.
type Device struct {
	ID            string     `json:"id"`
	Caption       string     `json:"caption"`
	Type          DeviceType `json:"type"`
	Subscriptions int        `json:"subscriptions"`
}

// Equal compare devices by id only.
func (d Device) Equal(other Device) bool {
	return d.ID == other.ID
}

// Compare order devices by id only.
func (d Device) Compare(other Device) int {
	return strings.Compare(d.ID, other.ID)
}

func (d Device) String() string {
	return fmt.Sprintf("%s %s (id=%s)", d.Type, d.Caption, d.ID)
}

//---------------------------------------------------------------------

// ListDevices return the devices registered in the account.
func (c *AuthenticatedClient) ListDevices(ctx context.Context) ([]Device, error) {
	uri := fmt.Sprintf("%s/api/2/devices/%s.json", c.server, c.username)

	var devices []Device
	if err := c.getJSON(ctx, uri, nil, &devices); err != nil {
		return nil, err
	}

	return devices, nil
}

type deviceData struct {
	Caption string     `json:"caption,omitempty"`
	Type    DeviceType `json:"type,omitempty"`
}

// UpdateDeviceData set caption and/or type of this device; empty values
// are left out of the request, so the server keeps the current ones.
// The device record is created on first use of its id.
func (c *DeviceClient) UpdateDeviceData(ctx context.Context, caption string, devtype DeviceType) error {
	uri := fmt.Sprintf("%s/api/2/devices/%s/%s.json", c.server, c.username, c.deviceID)

	return c.postJSON(ctx, uri, nil, &deviceData{Caption: caption, Type: devtype}, nil)
}
