package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectForm_Address(t *testing.T) {
	addr, err := ConnectForm{Host: " example.org ", Port: "2137"}.Address()
	require.NoError(t, err)
	assert.Equal(t, "example.org:2137", addr)

	addr, err = ConnectForm{Port: "9000"}.Address()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", addr)

	addr, err = ConnectForm{Host: "::1", Port: "9000"}.Address()
	require.NoError(t, err)
	assert.Equal(t, "[::1]:9000", addr)

	for _, bad := range []string{"", "abc", "0", "70000"} {
		_, err := ConnectForm{Port: bad}.Address()
		assert.Error(t, err, bad)
	}
}

func TestConnectForm_Defaults(t *testing.T) {
	assert.Equal(t, "player", ConnectForm{Name: "  "}.PlayerName())
	assert.Equal(t, "ada", ConnectForm{Name: " ada "}.PlayerName())
	assert.Equal(t, 0, ConnectForm{Port: "x"}.PortNumber())
	assert.Equal(t, 2137, ConnectForm{Port: "2137"}.PortNumber())
}

func TestNextTank(t *testing.T) {
	tanks := []string{"heavy", "light", "medium"}
	assert.Equal(t, "light", NextTank(tanks, "heavy"))
	assert.Equal(t, "heavy", NextTank(tanks, "medium"))
	assert.Equal(t, "heavy", NextTank(tanks, "unknown"))
	assert.Equal(t, "x", NextTank(nil, "x"))
}
