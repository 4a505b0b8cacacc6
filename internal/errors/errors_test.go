package errors_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "draft not found",
			expected: "NOT_FOUND: draft not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "mass must be positive",
			expected: "INVALID_ARGUMENT: mass must be positive",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	s.Run("plain error becomes internal", func() {
		baseErr := fmt.Errorf("connection refused")
		wrapped := errors.Wrap(baseErr, "failed to load draft")

		s.Equal(errors.CodeInternal, wrapped.Code)
		s.Equal("failed to load draft", wrapped.Message)
		s.Equal(baseErr, wrapped.Unwrap())
	})

	s.Run("keeps code and meta", func() {
		base := errors.NotFound("draft not found").WithMeta("draft_id", "d1")
		wrapped := errors.Wrapf(base, "undo %s", "d1")

		s.True(errors.IsNotFound(wrapped))
		s.Equal("d1", errors.GetMeta(wrapped)["draft_id"])
		s.True(errors.Is(wrapped, errors.NotFound("")))
	})

	s.Run("replaces code", func() {
		wrapped := errors.WrapWithCode(errors.NotFound("x"), errors.CodeFailedPrecondition, "y")
		s.True(errors.IsFailedPrecondition(wrapped))
	})

	s.Run("nil stays nil", func() {
		s.Nil(errors.Wrap(nil, "nothing"))
		s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
	})
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
	s.Equal("boom", errors.GetMessage(fmt.Errorf("boom")))
	s.Equal("", errors.GetMessage(nil))
	s.Nil(errors.GetMeta(fmt.Errorf("boom")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.Run("empty builds nil", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "Atlas", vb)
		s.NoError(vb.Build())
	})

	s.Run("fields sorted in message", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "  ", vb)
		errors.ValidateRangeFloat("mass", 250, 0, 200, vb)
		errors.ValidateEnum("role", "Tank", []string{"Brawler", "Sniper"}, vb)

		err := vb.Build()
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal("validation failed: mass: must be between 0 and 200; name: is required; "+
			"role: must be one of: Brawler, Sniper", errors.GetMessage(err))

		fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Require().True(ok)
		s.Len(fields, 3)
	})

	s.Run("NaN is out of range", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRangeFloat("mass", math.NaN(), 0, 200, vb)

		err := vb.Build()
		s.Require().Error(err)
		s.Equal("validation failed: mass: must be between 0 and 200", errors.GetMessage(err))
	})
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.FailedPrecondition("allocation has errors").
		WithMeta("errors", []string{"Head: Armor (10) exceeds maximum (9)"})

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("allocation has errors", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsFailedPrecondition(back))
	s.Equal([]interface{}{"Head: Armor (10) exceeds maximum (9)"}, errors.GetMeta(back)["errors"])

	s.Run("plain error", func() {
		st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
		s.Require().True(ok)
		s.Equal(codes.Internal, st.Code())
	})

	s.Run("status passes through", func() {
		in := status.Error(codes.Unavailable, "down")
		s.Equal(in, errors.ToGRPCError(in))
		s.Equal(errors.CodeUnavailable, errors.GetCode(errors.FromGRPCError(in)))
	})
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
		{errors.Code("BOGUS"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
