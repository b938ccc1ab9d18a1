package access

import (
	"github.com/krazyTry/cpamm-go/shared"
)

// Clock is the execution context's time reference. The host supplies it on
// every invocation; nothing here reads a wall clock.
type Clock struct {
	Slot      uint64
	Timestamp uint64
}

// CurrentPoint projects the clock onto a pool's activation axis.
func CurrentPoint(activationType shared.ActivationType, clock Clock) uint64 {
	if activationType == shared.ActivationTypeSlot {
		return clock.Slot
	}
	return clock.Timestamp
}

// Buffer is the pre-activation window the whitelisted vault may trade inside.
func Buffer(activationType shared.ActivationType) uint64 {
	if activationType == shared.ActivationTypeSlot {
		return shared.SlotBuffer
	}
	return shared.TimeBuffer
}

func MaxActivationDuration(activationType shared.ActivationType) uint64 {
	if activationType == shared.ActivationTypeSlot {
		return shared.MaxActivationSlotDuration
	}
	return shared.MaxActivationTimeDuration
}

func MaxVestingDuration(activationType shared.ActivationType) uint64 {
	if activationType == shared.ActivationTypeSlot {
		return shared.MaxVestingSlotDuration
	}
	return shared.MaxVestingTimeDuration
}

// ValidateActivationPoint bounds a requested activation point: never in the
// past, never further out than the maximum activation duration.
func ValidateActivationPoint(activationPoint, currentPoint uint64, activationType shared.ActivationType) error {
	if activationPoint < currentPoint {
		return shared.ErrInvalidParameters
	}
	if activationPoint-currentPoint > MaxActivationDuration(activationType) {
		return shared.ErrInvalidParameters
	}
	return nil
}
