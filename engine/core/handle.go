package core

import "strconv"

// Handles are opaque lookup keys into an owning table. The zero value of
// every handle kind is reserved and never names a live resource.

type OverlayHandle uint32

type ShaderHandle uint32

type MeshHandle uint32

const (
	NoOverlay OverlayHandle = 0
	NoShader  ShaderHandle  = 0
	NoMesh    MeshHandle    = 0
)

func (h OverlayHandle) IsNone() bool { return h == NoOverlay }
func (h ShaderHandle) IsNone() bool  { return h == NoShader }
func (h MeshHandle) IsNone() bool    { return h == NoMesh }

func (h OverlayHandle) String() string { return handleString("overlay", uint32(h)) }
func (h ShaderHandle) String() string  { return handleString("shader", uint32(h)) }
func (h MeshHandle) String() string    { return handleString("mesh", uint32(h)) }

func handleString(kind string, id uint32) string {
	if id == 0 {
		return kind + "(none)"
	}
	return kind + "#" + strconv.FormatUint(uint64(id), 10)
}
