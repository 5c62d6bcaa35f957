package merge

import (
	"errors"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies a merged bag into out, which must be a pointer to a struct.
// Keys are matched against `mapstructure` tags. Unknown keys are an error.
func Decode(bag Bag, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			localTimeHook,
			mapstructure.StringToTimeHookFunc(time.DateOnly),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}
	if err := decoder.Decode(bag); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}

// Resolve merges user over defaults and decodes the result into a T.
func Resolve[T any](user, defaults Bag, strategy Strategy) (T, error) {
	var out T
	merged, err := DeepMerge(user, defaults, strategy)
	if err != nil {
		return out, err
	}
	if err := Decode(merged, &out); err != nil {
		return out, err
	}
	return out, nil
}

// localTime is implemented by calendar values without a zone, such as the
// LocalDate and LocalDateTime decoded from bare TOML dates.
type localTime interface {
	AsTime(zone *time.Location) time.Time
}

var timeType = reflect.TypeFor[time.Time]()

// localTimeHook turns a zoneless calendar value into a UTC time.Time.
func localTimeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}
	if lt, ok := data.(localTime); ok {
		return lt.AsTime(time.UTC), nil
	}
	return data, nil
}
