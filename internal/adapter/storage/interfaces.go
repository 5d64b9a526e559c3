package storage

import (
	"context"

	"github.com/boardline/boardline-backend/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectStorage is the key-addressed blob store the media pipeline writes
// to. Delete is idempotent; deleting a missing key is not an error.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Resolve(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// VariantDeriver re-encodes one source image into the configured set of
// renditions. An unusable crop rectangle falls back to the uncropped
// source; undecodable source bytes fail the whole derivation.
type VariantDeriver interface {
	Derive(src []byte, crop *valueobject.CropRect, specs []valueobject.VariantSpec) ([]valueobject.DerivedVariant, error)
}
