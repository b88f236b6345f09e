// internal/models/user_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	user := &User{Username: "operator1"}

	require.NoError(t, user.SetPassword("TestPass123!"))
	assert.NotEqual(t, "TestPass123!", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("TestPass123!"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user := &User{Username: "operator1"}
	require.NoError(t, user.SetPassword("TestPass123!"))

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), user.PasswordHash)
	assert.NotContains(t, string(raw), "password")
}
