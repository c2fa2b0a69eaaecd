package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignMessage(t *testing.T) {
	wallet := solana.NewWallet()

	signature, err := signMessage(wallet.PrivateKey.String(), "hello")
	require.NoError(t, err)

	decoded, err := solana.SignatureFromBase58(signature)
	require.NoError(t, err)
	assert.True(t, decoded.Verify(wallet.PublicKey(), []byte("hello")))

	_, err = signMessage("not-a-key", "hello")
	assert.Error(t, err)
	_, err = signMessage(wallet.PrivateKey.String(), "")
	assert.Error(t, err)
}

func TestKeygenCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"keygen"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	address := strings.TrimSpace(strings.TrimPrefix(lines[0], "address:"))
	key := strings.TrimSpace(strings.TrimPrefix(lines[1], "private key:"))

	privateKey, err := solana.PrivateKeyFromBase58(key)
	require.NoError(t, err)
	assert.Equal(t, address, privateKey.PublicKey().String())
}

func TestSignCommandRequiresFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"sign", "--message", "hi"})

	assert.Error(t, cmd.Execute())
}

func TestMigrateCommandRejectsUnknownDirection(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate", "sideways", "--database-url", "pgx5://localhost/none"})

	assert.Error(t, cmd.Execute())
}

func TestResolveMigrationURL(t *testing.T) {
	url, err := resolveMigrationURL("pgx5://flag")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://flag", url)

	t.Setenv(migrationURLEnv, "pgx5://env")
	url, err = resolveMigrationURL("")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://env", url)
}
