// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bigint

import (
	"bytes"
	"fmt"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 2+len(x.abs)*_S) // version + sign + magnitude
	i := x.abs.bytes(buf) - 2
	buf[i] = intGobVersion
	if x.neg {
		buf[i+1] = 1
	} else {
		buf[i+1] = 0
	}
	return buf[i:], nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return fmt.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return fmt.Errorf("Int.GobDecode: missing sign byte")
	}
	z.abs = z.abs.setBytes(buf[2:])
	z.neg = len(z.abs) > 0 && buf[1]&1 != 0 // 0 has no sign
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. z is left
// unchanged if text is not a decimal integer.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.parse(string(text)); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q into a *bigint.Int: %w", text, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is encoded
// as a JSON number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. A JSON null
// leaves z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	if bytes.Equal(text, []byte("null")) {
		return nil
	}
	return z.UnmarshalText(text)
}
