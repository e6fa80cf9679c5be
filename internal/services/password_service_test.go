package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService()
}

func TestPasswordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Valid() {
	validPasswords := []string{
		"SecureP@ssw0rd123",
		"MyStr0ng!Password",
		"C0mplex#Pass2024",
	}

	for _, password := range validPasswords {
		s.Run(password, func() {
			s.NoError(s.service.ValidatePassword(password))
		})
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Invalid() {
	testCases := []struct {
		name     string
		password string
		expected error
	}{
		{"empty", "", ErrPasswordEmpty},
		{"too short", "Sh0rt!pass", ErrPasswordTooShort},
		{"no uppercase", "lowercase0nly!pass", ErrPasswordNoUppercase},
		{"no lowercase", "UPPERCASE0NLY!PASS", ErrPasswordNoLowercase},
		{"no number", "NoNumbersHere!Pass", ErrPasswordNoNumber},
		{"no special", "NoSpecial0Password", ErrPasswordNoSpecial},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.service.ValidatePassword(tc.password)
			s.ErrorIs(err, tc.expected)
		})
	}
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooLong() {
	long := make([]byte, MaxPasswordLength+1)
	for i := range long {
		long[i] = 'a'
	}
	long[0] = 'A'
	long[1] = '1'
	long[2] = '!'

	err := s.service.ValidatePassword(string(long))
	s.ErrorIs(err, ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestHashPassword_Success() {
	password := "SecureP@ssw0rd123"

	hash, err := s.service.HashPassword(password)
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual(password, hash)

	// Salted hashing: the same password never hashes the same twice.
	hash2, err := s.service.HashPassword(password)
	s.NoError(err)
	s.NotEqual(hash, hash2)
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsWeakPassword() {
	hash, err := s.service.HashPassword("weak")
	s.Error(err)
	s.Empty(hash)
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestComparePassword() {
	password := "SecureP@ssw0rd123"

	hash, err := s.service.HashPassword(password)
	s.Require().NoError(err)

	s.True(s.service.ComparePassword(password, hash))
	s.False(s.service.ComparePassword("WrongP@ssw0rd123", hash))
	s.False(s.service.ComparePassword(password, "not-a-bcrypt-hash"))
}

func (s *PasswordServiceTestSuite) TestPasswordStrength() {
	s.Equal(0, s.service.PasswordStrength(""))

	weak := s.service.PasswordStrength("abc")
	strong := s.service.PasswordStrength("SecureP@ssw0rd123!xY")

	s.Less(weak, strong)
	s.GreaterOrEqual(strong, 80)
	s.LessOrEqual(strong, 100)
}

func (s *PasswordServiceTestSuite) TestPasswordStrength_ValidPasswordFloor() {
	// Anything that passes validation scores at least 80.
	s.GreaterOrEqual(s.service.PasswordStrength("MyStr0ng!Password"), 80)
}
