package hdkey

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses a derivation path like "m/1017'/0'/5'/0/3". Hardened
// components are marked with an apostrophe or an "h" suffix and hold a
// logical index below 2^31. The path "m" parses to an empty path.
func ParsePath(path string) ([]ChildIndex, error) {
	path = strings.TrimSpace(path)
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: path cannot be empty",
			ErrInvalidPath)
	}
	if path == "m" {
		return nil, nil
	}
	if !strings.HasPrefix(path, "m/") {
		return nil, fmt.Errorf("%w: path must start with m/",
			ErrInvalidPath)
	}

	parts := strings.Split(path, "/")
	indices := make([]ChildIndex, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		part := parts[i]
		mode := KeyModeNormal
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") ||
			strings.HasSuffix(part, "H") {

			mode = KeyModeHardened
			part = part[:len(part)-1]
		}

		parsed, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: could not parse part "+
				"\"%s\": %v", ErrInvalidPath, parts[i], err)
		}

		// A hardened component is written with its logical index, so
		// it has to be below the hardened offset as well.
		if parsed >= HardenedKeyStart {
			return nil, fmt.Errorf("%w: part \"%s\" exceeds %d",
				ErrIndexOutOfRange, parts[i],
				HardenedKeyStart-1)
		}

		indices[i-1], err = NormalizeIndex(mode, parsed)
		if err != nil {
			return nil, err
		}
	}

	return indices, nil
}

// FormatPath formats a path in the notation accepted by ParsePath.
func FormatPath(path []ChildIndex) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, index := range path {
		sb.WriteString("/")
		sb.WriteString(index.String())
	}
	return sb.String()
}

// DerivePrivatePath derives the private key at the end of the path. The
// intermediate keys are wiped once their child has been derived.
func DerivePrivatePath(key *ExtendedPrivateKey,
	path []ChildIndex) (*ChildPrivateKey, error) {

	if len(path) == 0 {
		return nil, fmt.Errorf("%w: path has no children",
			ErrInvalidPath)
	}

	log.Tracef("Deriving private path %v", spewPath(path))

	var (
		current = key
		child   *ChildPrivateKey
		err     error
	)
	for depth, index := range path {
		child, err = current.Child(index)
		if current != key {
			current.Zero()
		}
		if err != nil {
			return nil, fmt.Errorf("could not derive %v at depth "+
				"%d: %w", index, depth+1, err)
		}
		current = child.Key
	}

	return child, nil
}

// DerivePublicPath derives the public key at the end of the path. The path
// must only consist of normal indices.
func DerivePublicPath(key *ExtendedPublicKey,
	path []ChildIndex) (*ChildPublicKey, error) {

	if len(path) == 0 {
		return nil, fmt.Errorf("%w: path has no children",
			ErrInvalidPath)
	}

	log.Tracef("Deriving public path %v", spewPath(path))

	var (
		current = key
		child   *ChildPublicKey
		err     error
	)
	for depth, index := range path {
		child, err = current.Child(index)
		if err != nil {
			return nil, fmt.Errorf("could not derive %v at depth "+
				"%d: %w", index, depth+1, err)
		}
		current = child.Key
	}

	return child, nil
}
