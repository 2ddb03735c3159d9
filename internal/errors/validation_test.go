package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tabuleirodocaos/sheet-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func (s *ValidationTestSuite) TestEmptyBuilderBuildsNil() {
	vb := errors.NewValidationBuilder()
	s.Assert().NoError(vb.Build())
}

func (s *ValidationTestSuite) TestRequiredField() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name")
	s.Assert().Contains(err.Error(), "is required")
}

func (s *ValidationTestSuite) TestMultipleFields() {
	vb := errors.NewValidationBuilder()
	vb.Field("level", "must be non-negative")
	vb.Fieldf("mente", "value %d exceeds the maximum of %d", 9, 5)

	err := vb.Build()
	s.Require().Error(err)

	var customErr *errors.Error
	s.Require().True(errors.As(err, &customErr))
	fields, ok := customErr.Meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Len(fields, 2)
	s.Assert().Equal([]string{"must be non-negative"}, fields["level"])
}

func (s *ValidationTestSuite) TestValidateRequiredHelper() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", "  ", vb)
	errors.ValidateRequired("name", "Iara", vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "playerID")
	s.Assert().NotContains(err.Error(), "name:")
}

func (s *ValidationTestSuite) TestMessageOrdersFieldsByName() {
	ve := errors.NewValidationError()
	ve.AddFieldError("mente", "exceeds the creation cap")
	ve.AddFieldError("agilidade", "must be non-negative")
	ve.AddFieldError("corpo", "exceeds the creation cap")

	want := "validation failed: agilidade: must be non-negative; " +
		"corpo: exceeds the creation cap; mente: exceeds the creation cap"
	for i := 0; i < 10; i++ {
		s.Require().Equal(want, ve.Error())
	}
}

func (s *ValidationTestSuite) TestValidationErrorAccumulates() {
	ve := errors.NewValidationError()
	s.Assert().False(ve.HasErrors())
	s.Assert().Nil(ve.ToError())

	ve.AddFieldError("classes", "at most 3 allowed")
	ve.AddFieldErrorf("classes", "sum %d exceeds character level %d", 7, 5)

	s.Assert().True(ve.HasErrors())
	s.Assert().Len(ve.Fields["classes"], 2)
	s.Assert().True(errors.IsInvalidArgument(ve.ToError()))
}

func TestValidationTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}
