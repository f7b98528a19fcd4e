package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitDBDisabled(t *testing.T) {
	DB = nil
	Config.MongoDB.URI = ""

	InitDB()

	assert.Nil(t, DB)
}

func TestRandomString(t *testing.T) {
	a := randomString(32)
	b := randomString(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, "^[0-9A-Za-z]+$", a)
}
