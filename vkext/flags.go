package vkext

import "github.com/vkngwrapper/core/v3/common"

// ShaderCreateFlags control how CreateShaders builds each stage
type ShaderCreateFlags int32

var shaderCreateFlagsMapping = common.NewFlagStringMapping[ShaderCreateFlags]()

func (f ShaderCreateFlags) Register(str string) {
	shaderCreateFlagsMapping.Register(f, str)
}
func (f ShaderCreateFlags) String() string {
	return shaderCreateFlagsMapping.FlagsToString(f)
}

const (
	// ShaderCreateLinkStage indicates that every stage passed to the same CreateShaders call with
	// this flag is linked to the others. Linked stages must be bound together.
	ShaderCreateLinkStage ShaderCreateFlags = 1 << iota
)

func init() {
	ShaderCreateLinkStage.Register("ShaderCreateLinkStage")
}
