// Package events lets observers follow a running scan without
// consuming its result stream: each scan announces itself, every
// reported path, every per-node failure and its completion.
package events

import (
	"time"

	"github.com/google/uuid"
)

type Event interface {
	Timestamp() time.Time
}

/**/
type Start struct {
	ts time.Time

	ScanID   uuid.UUID
	RootPath string
}

func StartEvent(scanID uuid.UUID, rootPath string) Start {
	return Start{ts: time.Now(), ScanID: scanID, RootPath: rootPath}
}
func (e Start) Timestamp() time.Time {
	return e.ts
}

/**/
type Done struct {
	ts time.Time

	ScanID uuid.UUID
}

func DoneEvent(scanID uuid.UUID) Done {
	return Done{ts: time.Now(), ScanID: scanID}
}
func (e Done) Timestamp() time.Time {
	return e.ts
}

/**/
type Path struct {
	ts time.Time

	ScanID   uuid.UUID
	Pathname string
}

func PathEvent(scanID uuid.UUID, pathname string) Path {
	return Path{ts: time.Now(), ScanID: scanID, Pathname: pathname}
}
func (e Path) Timestamp() time.Time {
	return e.ts
}

/**/
type PathError struct {
	ts time.Time

	ScanID   uuid.UUID
	Pathname string
	Message  string
}

func PathErrorEvent(scanID uuid.UUID, pathname string, message string) PathError {
	return PathError{ts: time.Now(), ScanID: scanID, Pathname: pathname, Message: message}
}
func (e PathError) Timestamp() time.Time {
	return e.ts
}
