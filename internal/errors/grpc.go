package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const detailCodeKey = "code"

// ToGRPCError converts an error to a gRPC status error. Error metadata is
// attached as a structpb.Struct detail so it survives the wire.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		switch GetCode(err) {
		case CodeCanceled:
			return status.Error(codes.Canceled, err.Error())
		case CodeDeadlineExceeded:
			return status.Error(codes.DeadlineExceeded, err.Error())
		}
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if details := metaToStruct(customErr.Code, customErr.Meta); details != nil {
		if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		s, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		meta := s.AsMap()
		if code, ok := meta[detailCodeKey].(string); ok {
			customErr.Code = Code(code)
			delete(meta, detailCodeKey)
		}
		if len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// metaToStruct normalises meta through JSON so that typed values such as
// map[string][]string become structpb-compatible.
func metaToStruct(code Code, meta map[string]interface{}) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	normalised := make(map[string]interface{})
	if err := json.Unmarshal(raw, &normalised); err != nil {
		return nil
	}
	normalised[detailCodeKey] = string(code)

	s, err := structpb.NewStruct(normalised)
	if err != nil {
		return nil
	}
	return s
}
