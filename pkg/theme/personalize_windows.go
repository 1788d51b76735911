//go:build windows
// +build windows

package theme

import (
	"golang.org/x/sys/windows/registry"
)

func openPersonalizeKey(writable bool) (Key, error) {
	access := uint32(registry.QUERY_VALUE)
	if writable {
		access |= registry.SET_VALUE
	}

	// Older versions of Windows will not have this key
	k, err := registry.OpenKey(registry.CURRENT_USER, PersonalizeKeyPath, access)
	if err != nil {
		return nil, err
	}

	return k, nil
}
