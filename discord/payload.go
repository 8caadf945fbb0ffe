package discord

import (
	"fmt"
	"reflect"

	"github.com/disgoorg/snowflake/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UnmarshalChannelData decodes a raw JSON channel payload.
func UnmarshalChannelData(raw []byte) (ChannelData, error) {
	var data ChannelData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ChannelData{}, fmt.Errorf("unmarshal channel payload: %w", err)
	}
	return data, nil
}

// ChannelDataFrom decodes an already-parsed untyped record, the form
// payloads arrive in from a generic transport decoder. Snowflakes come
// over the wire as strings; the decode hook restores them.
func ChannelDataFrom(record map[string]any) (ChannelData, error) {
	var data ChannelData
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       snowflakeDecodeHook,
		WeaklyTypedInput: true,
		Result:           &data,
	})
	if err != nil {
		return ChannelData{}, err
	}
	if err := decoder.Decode(record); err != nil {
		return ChannelData{}, fmt.Errorf("decode channel payload: %w", err)
	}
	return data, nil
}

var snowflakeType = reflect.TypeOf(snowflake.ID(0))

func snowflakeDecodeHook(from reflect.Type, to reflect.Type, value any) (any, error) {
	if to != snowflakeType {
		return value, nil
	}
	switch v := value.(type) {
	case string:
		id, err := snowflake.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("parse snowflake %q: %w", v, err)
		}
		return id, nil
	case float64:
		// A float64 mantissa holds 53 bits; a numeric ID beyond that
		// has already lost digits by the time it reaches the hook.
		if v < 0 || v >= maxExactFloatID {
			return nil, fmt.Errorf("numeric snowflake %v exceeds float64 precision, send it as a string", v)
		}
		return snowflake.ID(uint64(v)), nil
	}
	return value, nil
}

const maxExactFloatID = float64(1 << 53)
