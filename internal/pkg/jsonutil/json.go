package jsonutil

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Encode(value interface{}) string {
	data, _ := json.MarshalToString(value)
	return data
}

func Marshal(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

func MarshalIndent(value interface{}) ([]byte, error) {
	return json.MarshalIndent(value, "", "  ")
}

func Decode(data string, value interface{}) error {
	return json.UnmarshalFromString(data, value)
}
