package main

import "github.com/bytedance/sonic"

// fastJSONMarshal encodes v as indented JSON using the Sonic encoder,
// which keeps the CLI snappy even for large property dumps.
func fastJSONMarshal(v interface{}) ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(v, "", "  ")
}
