package ports

import "github.com/reglet-dev/addin-sdk/go/domain/entities"

// ManifestCodec reads and writes manifest files.
type ManifestCodec interface {
	// Parse accepts a single manifest or a list of manifests.
	Parse(data []byte) ([]*entities.Manifest, error)
	// Render encodes manifests as a list.
	Render(ms []*entities.Manifest) ([]byte, error)
}
