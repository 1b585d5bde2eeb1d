// Package local provides a kms.Encryptor backed by a root key held in process
// memory. Each project gets its own AES-256-GCM key derived from the root key
// with HKDF-SHA256, so ciphertexts of one project never decrypt under another.
package local

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"pkidiscovery/pkg/domain"
	"pkidiscovery/pkg/kms"

	"golang.org/x/crypto/hkdf"
)

const (
	keySize    = 32
	infoPrefix = "pkidiscovery/project/"
)

// ErrInvalidCiphertext is returned by Decrypt for truncated or tampered input.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Options configures the local KMS.
type Options struct {
	// RootKey is the 32 byte master key all project keys derive from.
	RootKey []byte
}

// NewOptions decodes a hex encoded root key.
func NewOptions(rootKey string) (Options, error) {
	key, err := hex.DecodeString(rootKey)
	if err != nil {
		return Options{}, fmt.Errorf("could not decode kms root key: %w", err)
	}

	return Options{RootKey: key}, nil
}

// KMS encrypts with per-project keys. It is safe for concurrent use.
type KMS struct {
	rootKey []byte
}

var _ kms.Encryptor = (*KMS)(nil)

// New returns a KMS using options.RootKey, which must be 32 bytes long.
func New(options Options) (*KMS, error) {
	if len(options.RootKey) != keySize {
		return nil, fmt.Errorf("kms root key must be %d bytes, got %d", keySize, len(options.RootKey))
	}

	return &KMS{rootKey: append([]byte(nil), options.RootKey...)}, nil
}

func (k *KMS) aead(projectID domain.ProjectID) (cipher.AEAD, error) {
	key := make([]byte, keySize)
	r := hkdf.New(sha256.New, k.rootKey, nil, []byte(infoPrefix+projectID.String()))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("could not derive project key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("could not create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("could not create gcm: %w", err)
	}

	return gcm, nil
}

// Encrypt seals plaintext and returns nonce||ciphertext. The project ID is
// bound as additional data.
func (k *KMS) Encrypt(_ context.Context, projectID domain.ProjectID, plaintext []byte) ([]byte, error) {
	gcm, err := k.aead(projectID)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize(), gcm.NonceSize()+len(plaintext)+gcm.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, projectID[:]), nil
}

// Decrypt opens a ciphertext produced by Encrypt for the same project.
func (k *KMS) Decrypt(_ context.Context, projectID domain.ProjectID, ciphertext []byte) ([]byte, error) {
	gcm, err := k.aead(projectID)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize()+gcm.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, projectID[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}

	return plaintext, nil
}
