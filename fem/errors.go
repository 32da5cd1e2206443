// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"

	"github.com/keithjlee/dsg-wbm/ele"
)

// error kinds returned by preprocessing and analysis. Use errors.Is to test them
var (
	ErrUnassociated = errors.New("unassociated element")
	ErrLoadDim      = errors.New("load dimension mismatch")
	ErrNoRotation   = errors.New("missing rotation matrix")
	ErrSingular     = errors.New("singular or indefinite reduced stiffness matrix (unstable structure)")
	ErrInvalidNode  = errors.New("invalid node")
	ErrUnknownKind  = ele.ErrUnknownKind
	ErrDegenerate   = ele.ErrDegenerate
	ErrInvalidProps = ele.ErrInvalidProps
)
