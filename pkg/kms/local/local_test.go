package local_test

import (
	"bytes"
	"context"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/kms/local"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newKMS(t *testing.T) *local.KMS {
	t.Helper()

	k, err := local.New(local.Options{RootKey: bytes.Repeat([]byte{0x42}, 32)})
	require.NoError(t, err)

	return k
}

func TestNew_KeySize(t *testing.T) {
	_, err := local.New(local.Options{RootKey: []byte("short")})
	require.Error(t, err)
}

func TestNewOptions(t *testing.T) {
	options, err := local.NewOptions("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	require.NoError(t, err)
	require.Len(t, options.RootKey, 32)
	require.Equal(t, byte(0x1f), options.RootKey[31])

	_, err = local.NewOptions("not hex")
	require.Error(t, err)
}

func TestKMS_RoundTrip(t *testing.T) {
	k := newKMS(t)
	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())
	plaintext := []byte("-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n")

	ciphertext, err := k.Encrypt(ctx, projectID, plaintext)
	require.NoError(t, err)
	require.NotContains(t, string(ciphertext), "BEGIN CERTIFICATE")

	again, err := k.Encrypt(ctx, projectID, plaintext)
	require.NoError(t, err)
	require.NotEqual(t, ciphertext, again, "nonces must differ")

	decrypted, err := k.Decrypt(ctx, projectID, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestKMS_ProjectIsolation(t *testing.T) {
	k := newKMS(t)
	ctx := context.Background()

	ciphertext, err := k.Encrypt(ctx, domain.ProjectID(uuid.New()), []byte("secret"))
	require.NoError(t, err)

	_, err = k.Decrypt(ctx, domain.ProjectID(uuid.New()), ciphertext)
	require.ErrorIs(t, err, local.ErrInvalidCiphertext)
}

func TestKMS_Tampered(t *testing.T) {
	k := newKMS(t)
	ctx := context.Background()
	projectID := domain.ProjectID(uuid.New())

	ciphertext, err := k.Encrypt(ctx, projectID, []byte("secret"))
	require.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0x01
	_, err = k.Decrypt(ctx, projectID, ciphertext)
	require.ErrorIs(t, err, local.ErrInvalidCiphertext)

	_, err = k.Decrypt(ctx, projectID, []byte{1, 2, 3})
	require.ErrorIs(t, err, local.ErrInvalidCiphertext)
}
