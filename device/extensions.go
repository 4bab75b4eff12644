package device

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/vkext"
	"github.com/vkngwrapper/extensions/v3/ext_memory_budget"
	"github.com/vkngwrapper/extensions/v3/ext_memory_priority"
	"github.com/vkngwrapper/extensions/v3/khr_bind_memory2"
	"github.com/vkngwrapper/extensions/v3/khr_dedicated_allocation"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RequiredExtensions are the device extensions a physical device must expose to be selected
var RequiredExtensions = []string{
	khr_swapchain.ExtensionName,
	vkext.ShaderObjectExtensionName,
}

var optionalExtensions = []string{
	khr_dedicated_allocation.ExtensionName,
	khr_bind_memory2.ExtensionName,
	ext_memory_budget.ExtensionName,
	ext_memory_priority.ExtensionName,
	// Must be enabled whenever it is exposed
	khr_portability_subset.ExtensionName,
}

// ExtensionData records which device extensions were enabled on the logical device
type ExtensionData struct {
	Enabled []string

	DedicatedAllocations bool
	BindMemory2          bool
	UseMemoryBudget      bool
	UseMemoryPriority    bool
	PortabilitySubset    bool
}

// WriteJSON writes which allocator features the enabled extensions turn on
func (e *ExtensionData) WriteJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("DedicatedAllocations").Bool(e.DedicatedAllocations)
	obj.Name("BindMemory2").Bool(e.BindMemory2)
	obj.Name("MemoryBudget").Bool(e.UseMemoryBudget)
	obj.Name("MemoryPriority").Bool(e.UseMemoryPriority)
	obj.Name("PortabilitySubset").Bool(e.PortabilitySubset)
}

func missingExtensions(available map[string]*core1_0.ExtensionProperties) []string {
	var missing []string
	for _, name := range RequiredExtensions {
		if _, ok := available[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// NewExtensionData builds the enabled extension list for a physical device that exposes the
// extensions in available. Required extensions are always included, optional allocator
// extensions only when present.
func NewExtensionData(available map[string]*core1_0.ExtensionProperties) *ExtensionData {
	enabled := make(map[string]struct{}, len(RequiredExtensions)+len(optionalExtensions))
	for _, name := range RequiredExtensions {
		enabled[name] = struct{}{}
	}
	for _, name := range optionalExtensions {
		if _, ok := available[name]; ok {
			enabled[name] = struct{}{}
		}
	}

	data := &ExtensionData{
		Enabled: maps.Keys(enabled),
	}
	slices.Sort(data.Enabled)

	_, data.DedicatedAllocations = enabled[khr_dedicated_allocation.ExtensionName]
	_, data.BindMemory2 = enabled[khr_bind_memory2.ExtensionName]
	_, data.UseMemoryBudget = enabled[ext_memory_budget.ExtensionName]
	_, data.UseMemoryPriority = enabled[ext_memory_priority.ExtensionName]
	_, data.PortabilitySubset = enabled[khr_portability_subset.ExtensionName]

	return data
}
