package container

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/happnhere-api/config"
	"github.com/oksasatya/happnhere-api/internal/application"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewPicksDefaults(t *testing.T) {
	c := New(&config.Config{
		TokenMode:       config.TokenModePlaceholder,
		PasswordHashing: config.PasswordPlain,
		JWTSecret:       "s",
		JWTTTL:          time.Hour,
	}, quietLogger(), Infra{})

	assert.IsType(t, application.PlainCredentials{}, c.UserService.Credentials)
	assert.IsType(t, application.PlaceholderTokens{}, c.UserService.Tokens)
	assert.Nil(t, c.UserService.Storage)
	assert.Nil(t, c.EventService.Index)
	assert.Nil(t, c.ClubService.Publisher)
}

func TestNewHonoursModes(t *testing.T) {
	c := New(&config.Config{
		TokenMode:       config.TokenModeJWT,
		PasswordHashing: config.PasswordBcrypt,
		JWTSecret:       "s",
		JWTTTL:          time.Hour,
	}, quietLogger(), Infra{})

	assert.IsType(t, application.BcryptCredentials{}, c.UserService.Credentials)
	tokens, ok := c.UserService.Tokens.(*application.JWTTokens)
	if assert.True(t, ok) {
		assert.Same(t, c.JWT, tokens.JWT)
		assert.Nil(t, tokens.Redis)
	}
}
