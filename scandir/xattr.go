package scandir

import (
	"github.com/pkg/xattr"
)

// getExtendedAttributes collects a node's extended attributes for
// extended entries. Attributes that cannot be listed or read are
// dropped rather than failing the node, the entry itself is the
// result a visited node owes.
func getExtendedAttributes(path string) map[string][]byte {
	attributes, err := xattr.LList(path)
	if err != nil || len(attributes) == 0 {
		return nil
	}

	attrs := make(map[string][]byte)
	for _, attr := range attributes {
		value, err := xattr.LGet(path, attr)
		if err != nil {
			continue
		}
		attrs[attr] = value
	}
	return attrs
}
