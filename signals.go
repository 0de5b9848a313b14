package serde

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serialization events.
var (
	SignalSerializeStart    = capitan.NewSignal("serde.serialize.start", "Serialization pass beginning")
	SignalSerializeComplete = capitan.NewSignal("serde.serialize.complete", "Serialization pass finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// EmitSerializeStart emits an event when a serialization pass begins.
// Backends call this from their entry points.
func EmitSerializeStart(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalSerializeStart,
		KeyContentType.Field(contentType),
	)
}

// EmitSerializeComplete emits an event when a serialization pass finishes.
func EmitSerializeComplete(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSerializeComplete, fields...)
	}
}
