// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !wschandebug

package wschan

// debugAssertionsEnabled is false in ordinary builds; see debug.go.
const debugAssertionsEnabled = false
