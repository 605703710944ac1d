// Package entity contains the core business objects of the project.
package entity

// ProviderType identifies where an authentication credential comes from.
type ProviderType string

const (
	// ProviderTypeLocal is an email/password credential kept in our own store.
	ProviderTypeLocal ProviderType = "local"
	// ProviderTypeGitHub is an identity delegated to GitHub OAuth.
	ProviderTypeGitHub ProviderType = "github"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a known value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeLocal, ProviderTypeGitHub:
		return true
	default:
		return false
	}
}
