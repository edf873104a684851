package inscription

import "github.com/fxamacker/cbor/v2"

func encodeMetadataCBOR(metadata map[string]interface{}) ([]byte, error) {
	return cbor.Marshal(metadata)
}
