// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

// PrefixEnd appends to dst the smallest key that is greater than every key
// beginning with prefix, and returns the result along with true. Trailing
// 0xff bytes are dropped and the last remaining byte is incremented, treating
// the prefix as a big-endian integer.
//
// If no such key exists (prefix is empty or consists entirely of 0xff bytes)
// PrefixEnd returns dst unchanged and false: the keys with that prefix extend
// to the end of the key space.
func PrefixEnd(dst, prefix []byte) ([]byte, bool) {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			dst = append(dst, prefix[:i+1]...)
			dst[len(dst)-1]++
			return dst, true
		}
	}
	return dst, false
}
