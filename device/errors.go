package device

import "github.com/cockroachdb/errors"

var (
	// ErrNoGraphicsQueue is returned when the selected physical device has no graphics-capable queue family
	ErrNoGraphicsQueue = errors.New("no graphics queue family found")
	// ErrNoPresentQueue is returned when no queue family of the selected physical device can present to the surface
	ErrNoPresentQueue = errors.New("no queue family can present to the surface")
	// ErrNoSuitableDevice is returned when no physical device exposes every required device extension
	ErrNoSuitableDevice = errors.New("no physical device supports the required extensions")
)
