package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/internal/devicetest"
	vkext_mocks "github.com/vkngwrapper/easel/vkext/mocks"
	"go.uber.org/mock/gomock"
)

func TestDestroy_ReleasesExtensionDriverBeforeDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})
	ext := vkext_mocks.NewMockDriver(ctrl)

	gomock.InOrder(
		rig.Driver.EXPECT().DeviceWaitIdle().Return(core1_0.VKSuccess, nil),
		ext.EXPECT().Destroy(),
		rig.Driver.EXPECT().DeviceWaitIdle().Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().DestroyCommandPool(rig.Pools[0], nil),
		rig.Driver.EXPECT().DestroyDevice(nil),
	)

	a := &app{logger: devicetest.Logger(), device: rig.Device, ext: ext}
	a.destroy()

	require.Nil(t, a.ext)
	require.True(t, rig.Allocator.Destroyed)
}
