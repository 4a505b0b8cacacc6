package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

func codeFromGRPC(gc codes.Code) Code {
	for c, g := range grpcCodes {
		if g == gc {
			return c
		}
	}
	return CodeInternal
}

// ToGRPCError converts an error to a gRPC status error. Metadata is attached as a
// structpb.Struct detail when it can be represented as JSON.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if details := metaStruct(customErr.Meta); details != nil {
		if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC status error back into an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{Code: codeFromGRPC(st.Code()), Message: st.Message()}
	for _, detail := range st.Details() {
		if s, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = s.AsMap()
			break
		}
	}
	return customErr
}

// metaStruct normalises metadata through JSON so typed slices and maps become the generic
// shapes structpb accepts
func metaStruct(meta map[string]interface{}) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil
	}

	s, err := structpb.NewStruct(generic)
	if err != nil {
		return nil
	}
	return s
}
