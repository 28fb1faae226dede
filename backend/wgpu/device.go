//go:build !nogpu

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shapeplay"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend gputypes.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// gpuDevice owns a hal instance, adapter, device and queue.
type gpuDevice struct {
	instance hal.Instance
	adapter  hal.Adapter
	device   hal.Device
	queue    hal.Queue
	variant  gputypes.Backend
	info     GPUInfo
}

// openDevice creates an instance on api and opens the first adapter it
// exposes.
func openDevice(api hal.Backend) (*gpuDevice, error) {
	instance, err := api.CreateInstance(&hal.InstanceDescriptor{
		Backends: gputypes.BackendsAll,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", ErrNoGPU, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters on %s", ErrNoGPU, api.Variant())
	}
	exposed := adapters[0]

	open, err := exposed.Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		exposed.Adapter.Destroy()
		instance.Destroy()
		return nil, fmt.Errorf("%w: open device: %w", ErrNoGPU, err)
	}

	d := &gpuDevice{
		instance: instance,
		adapter:  exposed.Adapter,
		device:   open.Device,
		queue:    open.Queue,
		variant:  api.Variant(),
		info: GPUInfo{
			Name:       exposed.Info.Name,
			Vendor:     exposed.Info.Vendor,
			DeviceType: exposed.Info.DeviceType,
			Backend:    exposed.Info.Backend,
			Driver:     exposed.Info.Driver,
		},
	}
	shapeplay.Logger().Info("wgpu: device opened", "gpu", d.info.String(), "driver", d.info.Driver)
	return d, nil
}

// destroy releases the device, adapter and instance in reverse order.
func (d *gpuDevice) destroy() {
	if d.device != nil {
		_ = d.device.WaitIdle()
		d.device.Destroy()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Destroy()
		d.adapter = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
}
