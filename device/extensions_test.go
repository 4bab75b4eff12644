package device

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/vkext"
	"github.com/vkngwrapper/extensions/v3/ext_memory_budget"
	"github.com/vkngwrapper/extensions/v3/khr_dedicated_allocation"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

func extensionMap(names ...string) map[string]*core1_0.ExtensionProperties {
	extensions := make(map[string]*core1_0.ExtensionProperties, len(names))
	for _, name := range names {
		extensions[name] = &core1_0.ExtensionProperties{ExtensionName: name}
	}
	return extensions
}

func TestMissingExtensions(t *testing.T) {
	require.Equal(t, []string{vkext.ShaderObjectExtensionName}, missingExtensions(extensionMap(khr_swapchain.ExtensionName)))
	require.Empty(t, missingExtensions(extensionMap(khr_swapchain.ExtensionName, vkext.ShaderObjectExtensionName)))
}

func TestExtensionData_RequiredOnly(t *testing.T) {
	data := NewExtensionData(extensionMap(khr_swapchain.ExtensionName, vkext.ShaderObjectExtensionName, "VK_KHR_unrelated"))

	require.Equal(t, &ExtensionData{
		Enabled: []string{vkext.ShaderObjectExtensionName, khr_swapchain.ExtensionName},
	}, data)
}

func TestExtensionData_Optional(t *testing.T) {
	data := NewExtensionData(extensionMap(
		khr_swapchain.ExtensionName,
		vkext.ShaderObjectExtensionName,
		khr_dedicated_allocation.ExtensionName,
		ext_memory_budget.ExtensionName,
		khr_portability_subset.ExtensionName,
	))

	require.Equal(t, &ExtensionData{
		Enabled: []string{
			ext_memory_budget.ExtensionName,
			vkext.ShaderObjectExtensionName,
			khr_dedicated_allocation.ExtensionName,
			khr_portability_subset.ExtensionName,
			khr_swapchain.ExtensionName,
		},
		DedicatedAllocations: true,
		UseMemoryBudget:      true,
		PortabilitySubset:    true,
	}, data)
}
