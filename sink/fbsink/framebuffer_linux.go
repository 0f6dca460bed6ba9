// Copyright 2013 Konstantin Kulikov. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !android

package fbsink

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/oledface/internal/errors"
)

// DefaultDevice is the first framebuffer of the system.
const DefaultDevice = `/dev/fb0`

// ioctl requests from linux/fb.h
const (
	getVariableScreenInfo = 0x4600
	getFixedScreenInfo    = 0x4602
)

type bitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

type fixedScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

type variableScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          bitfield
	Green        bitfield
	Blue         bitfield
	Transp       bitfield
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// framebuffer is a memory mapped framebuffer device with 16 or 32 bits
// per pixel.
type framebuffer struct {
	dev   *os.File
	finfo fixedScreenInfo
	vinfo variableScreenInfo
	data  []byte
}

var _ draw.Image = (*framebuffer)(nil)

// Open maps a framebuffer device and returns a sink drawing on it.
func Open(dev string, opts ...Option) (*Sink, error) {
	if len(dev) == 0 {
		dev = DefaultDevice
	}
	fb, err := openFramebuffer(dev)
	if err != nil {
		return nil, err
	}
	s := New(fb, opts...)
	s.closer = fb
	return s, nil
}

func openFramebuffer(dev string) (*framebuffer, error) {
	var (
		fb  = new(framebuffer)
		err error
	)
	fb.dev, err = os.OpenFile(dev, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.New(err)
	}
	fail := func(err error) (*framebuffer, error) {
		_ = fb.dev.Close()
		return nil, errors.New(err)
	}
	if err := ioctl(fb.dev.Fd(), getFixedScreenInfo, unsafe.Pointer(&fb.finfo)); err != nil {
		return fail(err)
	}
	if err := ioctl(fb.dev.Fd(), getVariableScreenInfo, unsafe.Pointer(&fb.vinfo)); err != nil {
		return fail(err)
	}
	if bpp := fb.vinfo.BitsPerPixel; bpp != 16 && bpp != 32 {
		return fail(errors.Errorf(`unsupported pixel depth: %d bits`, bpp))
	}
	size := int(fb.finfo.SmemLen) + int(fb.finfo.SmemStart&uintptr(unix.Getpagesize()-1))
	fb.data, err = unix.Mmap(int(fb.dev.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fail(err)
	}
	return fb, nil
}

func (fb *framebuffer) Close() error {
	if fb == nil {
		return nil
	}
	return errors.Wrap(errors.Join(unix.Munmap(fb.data), fb.dev.Close()))
}

func (fb *framebuffer) ColorModel() color.Model { return color.NRGBAModel }

func (fb *framebuffer) Bounds() image.Rectangle {
	if fb == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, int(fb.vinfo.XRes), int(fb.vinfo.YRes))
}

func (fb *framebuffer) offset(x, y int) int {
	return (int(fb.vinfo.XOffset)+x)*(int(fb.vinfo.BitsPerPixel)/8) +
		(int(fb.vinfo.YOffset)+y)*int(fb.finfo.LineLength)
}

func (fb *framebuffer) At(x, y int) color.Color {
	if fb == nil || !(image.Point{x, y}.In(fb.Bounds())) {
		return color.NRGBA{}
	}
	o := fb.offset(x, y)
	if fb.vinfo.BitsPerPixel == 16 {
		// RGB565
		v := uint16(fb.data[o]) | uint16(fb.data[o+1])<<8
		return color.NRGBA{
			R: uint8(v>>11) << 3,
			G: uint8(v>>5&0x3f) << 2,
			B: uint8(v&0x1f) << 3,
			A: 255,
		}
	}
	return color.NRGBA{R: fb.data[o+2], G: fb.data[o+1], B: fb.data[o], A: 255}
}

func (fb *framebuffer) Set(x, y int, c color.Color) {
	if fb == nil || c == nil || !(image.Point{x, y}.In(fb.Bounds())) {
		return
	}
	o := fb.offset(x, y)
	r, g, b, a := c.RGBA()
	if fb.vinfo.BitsPerPixel == 16 {
		v := uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
		fb.data[o] = byte(v)
		fb.data[o+1] = byte(v >> 8)
		return
	}
	fb.data[o] = byte(b >> 8)
	fb.data[o+1] = byte(g >> 8)
	fb.data[o+2] = byte(r >> 8)
	fb.data[o+3] = byte(a >> 8)
}

func ioctl(fd uintptr, cmd uintptr, data unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(data))
	if errno != 0 {
		return errors.New(os.NewSyscallError(`IOCTL`, errno))
	}
	return nil
}
