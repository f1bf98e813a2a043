// SPDX-License-Identifier: EPL-2.0

package clipfix

import "errors"

var (
	// ErrDecode indicates the input bytes could not be decoded as audio.
	ErrDecode = errors.New("decode failed")

	// ErrProcess indicates a failure during transform or encode.
	ErrProcess = errors.New("processing failed")

	// ErrUnknownFormat indicates the format key has no registered decoder.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrUnknownTool indicates the tool selector is not one of the four tools.
	ErrUnknownTool = errors.New("unknown tool")
)
