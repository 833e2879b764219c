package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
)

func TestMatch(t *testing.T) {
	testCases := []struct {
		header string
		want   language.Tag
	}{
		{"", language.English},
		{"it-IT,it;q=0.9,en;q=0.8", language.Italian},
		{"it", language.Italian},
		{"en-US", language.English},
		{"de-DE", language.English},
		{"fr;q=0.9, it;q=0.5", language.Italian},
		{";;;garbage", language.English},
	}

	for _, tc := range testCases {
		t.Run(tc.header, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.header))
		})
	}
}

func TestCatalogsAreComplete(t *testing.T) {
	for key := range messages[language.English] {
		assert.NotEmptyf(t, messages[language.Italian][key], "missing italian message %q", key)
	}
	for code := range errorMessages[language.English] {
		assert.NotEmptyf(t, errorMessages[language.Italian][code], "missing italian error message %d", code)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Non hai abbastanza punti.", ErrorMessage(language.Italian, errs.CodeInsufficientPoints))
	assert.Equal(t, "You do not have enough points.", ErrorMessage(language.English, errs.CodeInsufficientPoints))
	assert.Equal(t, ErrorMessage(language.English, errs.CodeInternalServer), ErrorMessage(language.English, 9999))
	assert.Equal(t, ErrorMessage(language.English, errs.CodeOTPExpired), ErrorMessage(language.German, errs.CodeOTPExpired))
	assert.NotEqual(t, ErrorMessage(language.English, errs.CodeInvalidEmail), ErrorMessage(language.English, errs.CodeInvalidPassword))
	assert.NotEqual(t, ErrorMessage(language.English, errs.CodeInternalServer), ErrorMessage(language.English, errs.CodeIdempotencyKeyReused))
}
