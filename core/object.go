package core

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Extra holds the members of a JSON object that did not land in a typed field, exactly as they were sent.
type Extra map[string]json.RawMessage

// Without returns a copy of x without keys, or nil when nothing is left.
func (x Extra) Without(keys ...string) Extra {
	if len(x) == 0 {
		return nil
	}
	cp := make(Extra, len(x))
	for k, v := range x {
		cp[k] = v
	}
	for _, k := range keys {
		delete(cp, k)
	}
	if len(cp) == 0 {
		return nil
	}
	return cp
}

// MergeObject applies the members of the JSON object data onto dst, a pointer to a struct
// whose json keys are listed in typed. A member that decodes into its field is set on dst.
// Any other member (unknown key, wrong type, null) is kept verbatim in the returned Extra,
// which starts as a copy of extra. Only data that is not a JSON object is an error.
func MergeObject(data []byte, dst interface{}, typed []string, extra Extra) (Extra, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return extra, NewValidationError(errors.Wrap(err, "decoding object"))
	}

	out := extra.Without()
	for key, raw := range members {
		if contains(typed, key) && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			member, err := json.Marshal(map[string]json.RawMessage{key: raw})
			if err == nil && json.Unmarshal(member, dst) == nil {
				delete(out, key)
				continue
			}
		}
		if out == nil {
			out = make(Extra)
		}
		out[key] = raw
	}
	return out.Without(), nil
}

// MarshalObject encodes v as a JSON object with the members of extra laid over it.
func MarshalObject(v interface{}, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var members map[string]json.RawMessage
	if err = json.Unmarshal(data, &members); err != nil {
		return nil, errors.Wrap(err, "expected a JSON object")
	}
	for k, raw := range extra {
		members[k] = raw
	}
	return json.Marshal(members)
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
