package mygpo

//
// timestamp.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// wireTimeFormat is the format the service expects for action timestamps:
// naive ISO 8601, no zone suffix, interpreted as UTC.
const wireTimeFormat = "2006-01-02T15:04:05"

// Formats accepted when decoding; real servers are not consistent here.
var dateFormats = []string{
	wireTimeFormat,
	time.RFC3339,
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
}

// Timestamp is a UTC wall-clock time with the service's wire encoding.
type Timestamp struct {
	time.Time
}

// NewTimestamp return t converted to UTC, ready for an action payload.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(wireTimeFormat)) //nolint:wrapcheck
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		ts, err := parseDate(str)
		if err != nil {
			return err
		}

		t.Time = ts

		return nil
	}

	// some servers send epoch seconds
	var epoch int64
	if err := json.Unmarshal(data, &epoch); err == nil {
		t.Time = time.Unix(epoch, 0).UTC()

		return nil
	}

	return fmt.Errorf("cant parse %s as timestamp", data)
}

func parseDate(str string) (time.Time, error) {
	for _, df := range dateFormats {
		ts, err := time.Parse(df, str)
		if err == nil {
			return ts.UTC(), nil
		}
	}

	val, err := strconv.ParseInt(str, 10, 64)
	if err == nil {
		return time.Unix(val, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("cant parse %q as date", str)
}
