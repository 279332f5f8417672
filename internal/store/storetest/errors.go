package storetest

import (
	"fmt"

	"github.com/MKhiriev/go-feed-client/internal/crypto"
)

// ErrNotSealed is returned by [KeyChain.Open] for foreign blobs.
var ErrNotSealed = fmt.Errorf("%w: not sealed by storetest", crypto.ErrCorruptedBlob)
