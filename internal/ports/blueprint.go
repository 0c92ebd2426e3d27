package ports

// BlueprintRepository defines the storage operations for one blueprint file
type BlueprintRepository interface {
	// Path returns the resolved location of the blueprint
	Path() string

	// Exists reports whether the blueprint file is present
	Exists() bool

	// Read returns the full text of the blueprint
	Read() (string, error)

	// Write replaces the whole blueprint. Implementations must not leave a
	// partially written file behind when they fail.
	Write(content string) error
}
