package device

import (
	"github.com/vkngwrapper/arsenal/vam"
	"github.com/vkngwrapper/core/v3/common"
)

// MemoryUsage indicates where a resource's memory should live. The allocator makes the final
// decision based on the memory types the physical device exposes.
type MemoryUsage uint32

const (
	// MemoryUsageAuto lets the allocator choose the best memory type for the resource's usage flags
	MemoryUsageAuto MemoryUsage = iota
	// MemoryUsagePreferDevice prefers device-local memory
	MemoryUsagePreferDevice
	// MemoryUsagePreferHost prefers host memory, usually for staging buffers and readback
	MemoryUsagePreferHost
)

var memoryUsageMapping = map[MemoryUsage]string{
	MemoryUsageAuto:         "MemoryUsageAuto",
	MemoryUsagePreferDevice: "MemoryUsagePreferDevice",
	MemoryUsagePreferHost:   "MemoryUsagePreferHost",
}

func (u MemoryUsage) String() string {
	str, ok := memoryUsageMapping[u]
	if !ok {
		return "unknown"
	}
	return str
}

func (u MemoryUsage) vamUsage() vam.MemoryUsage {
	switch u {
	case MemoryUsagePreferDevice:
		return vam.MemoryUsageAutoPreferDevice
	case MemoryUsagePreferHost:
		return vam.MemoryUsageAutoPreferHost
	default:
		return vam.MemoryUsageAuto
	}
}

// AllocationFlags describe how the CPU intends to access a resource's memory
type AllocationFlags int32

var allocationFlagsMapping = common.NewFlagStringMapping[AllocationFlags]()

func (f AllocationFlags) Register(str string) {
	allocationFlagsMapping.Register(f, str)
}
func (f AllocationFlags) String() string {
	return allocationFlagsMapping.FlagsToString(f)
}

const (
	// AllocationMapped keeps the allocation persistently mapped for its whole lifetime
	AllocationMapped AllocationFlags = 1 << iota
	// AllocationHostAccessSequentialWrite indicates the host will only write the memory
	// sequentially, e.g. with copy
	AllocationHostAccessSequentialWrite
	// AllocationHostAccessRandom indicates the host will read and write the memory in any order
	AllocationHostAccessRandom
)

func (f AllocationFlags) vamFlags() vam.AllocationCreateFlags {
	var flags vam.AllocationCreateFlags
	if f&AllocationMapped != 0 {
		flags |= vam.AllocationCreateMapped
	}
	if f&AllocationHostAccessSequentialWrite != 0 {
		flags |= vam.AllocationCreateHostAccessSequentialWrite
	}
	if f&AllocationHostAccessRandom != 0 {
		flags |= vam.AllocationCreateHostAccessRandom
	}
	return flags
}

// CreateFlags modify the behavior of New
type CreateFlags int32

var createFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	createFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return createFlagsMapping.FlagsToString(f)
}

const (
	// DeviceCreateExternallySynchronized indicates that the caller never submits to the device's
	// queues from more than one goroutine at a time. The internal queue mutex is disabled.
	DeviceCreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	AllocationMapped.Register("AllocationMapped")
	AllocationHostAccessSequentialWrite.Register("AllocationHostAccessSequentialWrite")
	AllocationHostAccessRandom.Register("AllocationHostAccessRandom")

	DeviceCreateExternallySynchronized.Register("DeviceCreateExternallySynchronized")
}

// QueueRole identifies one of the three queues the device exposes
type QueueRole int

const (
	QueueGraphics QueueRole = iota
	QueuePresent
	QueueTransfer

	queueRoleCount
)

var queueRoleMapping = map[QueueRole]string{
	QueueGraphics: "Graphics",
	QueuePresent:  "Present",
	QueueTransfer: "Transfer",
}

func (r QueueRole) String() string {
	str, ok := queueRoleMapping[r]
	if !ok {
		return "unknown"
	}
	return str
}
