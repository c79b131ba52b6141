package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{"too short", "0x000", false},
		{"checksum", "0x939ae6A4C8dfDBB1f7085189574F0A938013952A", true},
		{"lower case", "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", true},
		{"not hex", "0xzz9ae6a4c8dfdbb1f7085189574f0a938013952b", false},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsUint256() {
	s.True(IsUint256("0"))
	s.True(IsUint256("42"))
	s.False(IsUint256("-1"))
	s.False(IsUint256("1.5"))
	s.False(IsUint256(""))
}

func (s *ValidatorTestSuite) TestCustomTags() {
	type payload struct {
		Contract string `validate:"required,address"`
		TokenId  string `validate:"required,uint256"`
	}
	v := NewCustomValidator(validator.New())

	s.NoError(v.Validate(&payload{Contract: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", TokenId: "1"}))
	s.Error(v.Validate(&payload{Contract: "0x01", TokenId: "1"}))
	s.Error(v.Validate(&payload{Contract: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", TokenId: "x"}))
}
