// Package entity contains the core business objects of the project.
package entity

// RegistryKind identifies one of the two independent registries.
type RegistryKind string

const (
	// RegistryKindUser is the user registry.
	RegistryKindUser RegistryKind = "user"
	// RegistryKindVendor is the vendor registry.
	RegistryKindVendor RegistryKind = "vendor"
)

// String returns the string representation of the RegistryKind.
func (k RegistryKind) String() string {
	return string(k)
}

// IsValid checks if the RegistryKind is a valid value.
func (k RegistryKind) IsValid() bool {
	switch k {
	case RegistryKindUser, RegistryKindVendor:
		return true
	default:
		return false
	}
}

// ProfileSeed returns the prefix seed used when deriving profile addresses.
func (k RegistryKind) ProfileSeed() string {
	if k == RegistryKindVendor {
		return "vendor-profile"
	}

	return "user_profile"
}
