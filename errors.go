// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package prelude

import "errors"

// ErrEmptyStructure is returned by partial folds (Foldr1, Foldl1, Maximum,
// Minimum) when the structure yields no elements.
var ErrEmptyStructure = errors.New("prelude: structure has no elements")
