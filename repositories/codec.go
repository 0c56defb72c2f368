package repositories

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Storage rows are CBOR-encoded with deterministic encoding: the same row
// always produces identical bytes, which keeps Badger value comparisons and
// backups stable.
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	opts := cbor.CoreDetEncOptions()
	// Core deterministic options encode time at second precision, which
	// would desync rows from the nanosecond ordering keys.
	opts.Time = cbor.TimeRFC3339Nano
	encMode, err = opts.EncMode()
	if err != nil {
		panic("repositories: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		// Attrs maps decode into map[string]any, not map[any]any.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("repositories: CBOR decoder initialization failed: " + err.Error())
	}
}

func marshalRow(v any) ([]byte, error) { return encMode.Marshal(v) }

func unmarshalRow(data []byte, v any) error { return decMode.Unmarshal(data, v) }
