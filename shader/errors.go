package shader

import "github.com/cockroachdb/errors"

var ErrMissingStage = errors.New("missing required shader stage")
var ErrDuplicateStage = errors.New("only one shader is allowed per stage")
