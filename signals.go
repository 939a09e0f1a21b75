package moniker

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalIndexBuilt    = capitan.NewSignal("moniker.index.built", "Enumeration index constructed")
	SignalCodecCreated  = capitan.NewSignal("moniker.codec.created", "Codec bound to an index")
	SignalReadRejected  = capitan.NewSignal("moniker.read.rejected", "Token did not resolve to a value")
	SignalWriteRejected = capitan.NewSignal("moniker.write.rejected", "Value has no indexed record")
	SignalLoadFailed    = capitan.NewSignal("moniker.load.failed", "Member table could not be loaded")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyMemberCount = capitan.NewIntKey("member_count")
	KeyAliasCount  = capitan.NewIntKey("alias_count")
	KeyWriteMode   = capitan.NewStringKey("write_mode")
	KeyToken       = capitan.NewStringKey("token")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitIndexBuilt emits an event when an index is constructed.
func emitIndexBuilt(ctx context.Context, typeName string, members, aliases int, duration time.Duration) {
	capitan.Emit(ctx, SignalIndexBuilt,
		KeyTypeName.Field(typeName),
		KeyMemberCount.Field(members),
		KeyAliasCount.Field(aliases),
		KeyDuration.Field(duration),
	)
}

// emitCodecCreated emits an event when a codec is bound to an index.
func emitCodecCreated(ctx context.Context, typeName string, mode WriteMode) {
	capitan.Emit(ctx, SignalCodecCreated,
		KeyTypeName.Field(typeName),
		KeyWriteMode.Field(string(mode)),
	)
}

// emitReadRejected emits an event when a token has no mapping.
func emitReadRejected(ctx context.Context, typeName, token string, err error) {
	capitan.Error(ctx, SignalReadRejected,
		KeyTypeName.Field(typeName),
		KeyToken.Field(token),
		KeyError.Field(err),
	)
}

// emitWriteRejected emits an event when a value has no record.
func emitWriteRejected(ctx context.Context, typeName, value string, err error) {
	capitan.Error(ctx, SignalWriteRejected,
		KeyTypeName.Field(typeName),
		KeyToken.Field(value),
		KeyError.Field(err),
	)
}

// emitLoadFailed emits an event when a registry loader fails.
func emitLoadFailed(ctx context.Context, typeName string, err error) {
	capitan.Error(ctx, SignalLoadFailed,
		KeyTypeName.Field(typeName),
		KeyError.Field(err),
	)
}
