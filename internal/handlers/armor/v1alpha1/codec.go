package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// decode reads a Struct body into a request or response message
func decode(body *structpb.Struct, dst interface{}) error {
	if body == nil {
		body = &structpb.Struct{}
	}

	raw, err := json.Marshal(body.AsMap())
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}

// encode turns a message into a Struct body. Values go through JSON so typed maps and slices
// become the generic shapes structpb accepts.
func encode(src interface{}) (*structpb.Struct, error) {
	if src == nil {
		return &structpb.Struct{}, nil
	}

	raw, err := json.Marshal(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode body")
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, errors.Wrap(err, "failed to encode body")
	}

	body, err := structpb.NewStruct(generic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode body")
	}
	return body, nil
}
