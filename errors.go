// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyranges

import "github.com/cockroachdb/errors"

// ErrInvalidArgument marks errors caused by a caller passing a value that is
// not acceptable, such as a range whose lower bound sorts after its upper
// bound or malformed debug input. Test for it with errors.Is.
var ErrInvalidArgument = errors.New("keyranges: invalid argument")

// invalidArgumentf constructs an error marked with ErrInvalidArgument.
func invalidArgumentf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf("keyranges: "+format, args...), ErrInvalidArgument)
}

// markInvalidArgument marks err with ErrInvalidArgument.
func markInvalidArgument(err error) error {
	return errors.Mark(errors.Wrap(err, "keyranges"), ErrInvalidArgument)
}
