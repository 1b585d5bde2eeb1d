// Package kms defines the key management abstraction used to encrypt
// certificate material before it is persisted.
package kms

import (
	"context"
	"pkidiscovery/pkg/domain"
)

// Encryptor encrypts data under a project scoped key.
//
//go:generate mockgen -package mockkms -source=interface.go -destination=mock/mockkms.go *
type Encryptor interface {
	// Encrypt returns the ciphertext of plaintext for the given project.
	Encrypt(ctx context.Context, projectID domain.ProjectID, plaintext []byte) ([]byte, error)
}
