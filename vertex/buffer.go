package vertex

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/device"
	"github.com/vkngwrapper/easel/vkext"
)

// Storage selects where a Buffer's vertices live
type Storage int

const (
	// StorageStatic keeps vertices in device-local memory. They are uploaded once through a
	// temporary staging buffer and cannot be updated.
	StorageStatic Storage = iota
	// StorageDynamic keeps vertices in persistently mapped host-visible memory that Update writes
	// directly
	StorageDynamic
)

var storageMapping = map[Storage]string{
	StorageStatic:  "StorageStatic",
	StorageDynamic: "StorageDynamic",
}

func (s Storage) String() string {
	str, ok := storageMapping[s]
	if !ok {
		return "unknown"
	}
	return str
}

// Buffer is a vertex buffer bound at binding 0 along with the vertex input state that describes it
type Buffer struct {
	logger *slog.Logger
	device *device.Device
	ext    vkext.Driver

	storage     Storage
	layout      Layout
	buffer      *device.RawBuffer
	vertexCount int
}

// New creates a vertex buffer holding vertices
func New[T any](logger *slog.Logger, dev *device.Device, ext vkext.Driver, storage Storage, layout Layout, vertices []T) (*Buffer, error) {
	data := Bytes(vertices)
	if len(data) == 0 {
		return nil, errors.New("vertex buffer requires at least one vertex")
	}
	if layout.Stride <= 0 || len(data)%layout.Stride != 0 {
		return nil, errors.Newf("vertex data of %d bytes is not a whole number of %d byte vertices", len(data), layout.Stride)
	}

	logger.Debug("VertexBuffer::New",
		slog.String("storage", storage.String()),
		slog.Int("vertices", len(vertices)),
		slog.Int("bytes", len(data)),
	)

	buffer := &Buffer{
		logger:      logger,
		device:      dev,
		ext:         ext,
		storage:     storage,
		layout:      layout,
		vertexCount: len(data) / layout.Stride,
	}

	var err error
	switch storage {
	case StorageStatic:
		buffer.buffer, err = createStatic(dev, data)
	case StorageDynamic:
		buffer.buffer, err = createDynamic(dev, data)
	default:
		err = errors.Newf("unknown vertex buffer storage %s", storage)
	}
	if err != nil {
		return nil, err
	}

	return buffer, nil
}

func createStatic(dev *device.Device, data []byte) (*device.RawBuffer, error) {
	staging, err := dev.CreateBuffer(len(data), core1_0.BufferUsageTransferSrc,
		device.MemoryUsagePreferHost, device.AllocationHostAccessSequentialWrite)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = staging.Destroy()
	}()

	err = staging.Write(data, 0)
	if err != nil {
		return nil, err
	}

	families := dev.QueueFamilies()
	buffer, err := dev.CreateBuffer(len(data), core1_0.BufferUsageVertexBuffer|core1_0.BufferUsageTransferDst,
		device.MemoryUsagePreferDevice, 0, families.Graphics, families.Transfer)
	if err != nil {
		return nil, err
	}

	err = dev.CopyBufferToBuffer(staging, buffer, len(data))
	if err != nil {
		return nil, errors.CombineErrors(err, buffer.Destroy())
	}

	return buffer, nil
}

func createDynamic(dev *device.Device, data []byte) (*device.RawBuffer, error) {
	buffer, err := dev.CreateBuffer(len(data),
		core1_0.BufferUsageVertexBuffer|core1_0.BufferUsageTransferSrc|core1_0.BufferUsageTransferDst,
		device.MemoryUsagePreferHost, device.AllocationHostAccessRandom|device.AllocationMapped)
	if err != nil {
		return nil, err
	}

	err = buffer.Write(data, 0)
	if err != nil {
		return nil, errors.CombineErrors(err, buffer.Destroy())
	}

	return buffer, nil
}

// Update overwrites the vertices of a dynamic buffer starting at vertex index first
func Update[T any](buffer *Buffer, first int, vertices []T) error {
	if buffer.storage != StorageDynamic {
		return errors.Newf("cannot update a vertex buffer with %s", buffer.storage)
	}

	return buffer.buffer.Write(Bytes(vertices), first*buffer.layout.Stride)
}

func (b *Buffer) Storage() Storage {
	return b.storage
}

func (b *Buffer) Layout() Layout {
	return b.layout
}

func (b *Buffer) VertexCount() int {
	return b.vertexCount
}

func (b *Buffer) Handle() core1_0.Buffer {
	return b.buffer.Handle()
}

// Bind binds the buffer at binding 0 and sets the vertex input state to match its layout
func (b *Buffer) Bind(cmd core1_0.CommandBuffer) {
	b.device.Driver().CmdBindVertexBuffers(cmd, 0, []core1_0.Buffer{b.buffer.Handle()}, []int{0})
	b.ext.CmdSetVertexInput(cmd, b.layout.bindings(), b.layout.attributes())
}

// Draw draws every vertex in the buffer once
func (b *Buffer) Draw(cmd core1_0.CommandBuffer) {
	b.device.Driver().CmdDraw(cmd, b.vertexCount, 1, 0, 0)
}

func (b *Buffer) Destroy() error {
	if b.buffer == nil {
		return nil
	}

	b.logger.Debug("VertexBuffer::Destroy")
	err := b.buffer.Destroy()
	b.buffer = nil
	return err
}
