// Package models defines shared data types
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Quantity is a numeric value paired with its units, as the feed encodes
// position and velocity components. The value is kept as published so that
// a malformed number surfaces where it is used, not where it is decoded.
type Quantity struct {
	Units string `xml:"units,attr" json:"@units,omitempty"`
	Text  string `xml:",chardata" json:"#text"`
}

// Float parses the quantity's numeric value
func (q Quantity) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(q.Text), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", q.Text, err)
	}
	return v, nil
}

// StateVector is one sample of the ISS trajectory
type StateVector struct {
	Epoch string   `xml:"EPOCH" json:"EPOCH"`
	X     Quantity `xml:"X" json:"X"`
	Y     Quantity `xml:"Y" json:"Y"`
	Z     Quantity `xml:"Z" json:"Z"`
	XDot  Quantity `xml:"X_DOT" json:"X_DOT"`
	YDot  Quantity `xml:"Y_DOT" json:"Y_DOT"`
	ZDot  Quantity `xml:"Z_DOT" json:"Z_DOT"`
}

// Header is the OEM header block
type Header struct {
	CreationDate string `xml:"CREATION_DATE" json:"CREATION_DATE"`
	Originator   string `xml:"ORIGINATOR" json:"ORIGINATOR"`
}

// Metadata is the OEM segment metadata block
type Metadata struct {
	ObjectName string `xml:"OBJECT_NAME" json:"OBJECT_NAME"`
	ObjectID   string `xml:"OBJECT_ID" json:"OBJECT_ID"`
	CenterName string `xml:"CENTER_NAME" json:"CENTER_NAME"`
	RefFrame   string `xml:"REF_FRAME" json:"REF_FRAME"`
	TimeSystem string `xml:"TIME_SYSTEM" json:"TIME_SYSTEM"`
	StartTime  string `xml:"START_TIME" json:"START_TIME"`
	StopTime   string `xml:"STOP_TIME" json:"STOP_TIME"`
}

// Ephemeris is one fetch of the feed: header, metadata, comments and the
// ordered state vectors
type Ephemeris struct {
	Header       Header        `json:"header"`
	Metadata     Metadata      `json:"metadata"`
	Comments     []string      `json:"comments"`
	StateVectors []StateVector `json:"stateVectors"`
}

// LocationFix is the geographic sub-point of the ISS at an epoch
type LocationFix struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Altitude    float64 `json:"altitude"`
	Geoposition string  `json:"geoposition"`
}

// WallClock is a civil date and time of day, to the second
type WallClock struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// WallClockFrom breaks t down into a WallClock in t's location
func WallClockFrom(t time.Time) WallClock {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return WallClock{
		Year:   year,
		Month:  int(month),
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}
