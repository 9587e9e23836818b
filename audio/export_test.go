// SPDX-License-Identifier: EPL-2.0

package audio

var CubicInterpolate = cubicInterpolate
