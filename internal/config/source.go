package config

// SourceKind identifies the layer that satisfied a field.
type SourceKind int

const (
	SourceEnvironment SourceKind = iota + 1
	SourceFile
	SourceDefault
)

// Source records where a field's value came from. Path is set for
// SourceFile only.
type Source struct {
	Kind SourceKind
	Path string
}

func (s Source) String() string {
	switch s.Kind {
	case SourceEnvironment:
		return "environment"
	case SourceFile:
		return "file " + s.Path
	case SourceDefault:
		return "default"
	default:
		return "unset"
	}
}
