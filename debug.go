// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build wschandebug

package wschan

// debugAssertionsEnabled gates the cheaply-detectable contract-violation
// checks spec §7 calls for (Clear preconditions). Off by default because
// they add a load/branch to otherwise wait-free or lock-free paths;
// enable with -tags wschandebug during development and in CI.
const debugAssertionsEnabled = true
