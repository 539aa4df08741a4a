package graph

// DataType is the capability a node catalog supplies so the engine can
// gate connections on type compatibility. The engine never inspects
// data types beyond these two calls.
type DataType interface {
	// Name identifies the type; it is also the key used by snapshot
	// restore to map stored type names back to live values.
	Name() string

	// CompatibleWith reports whether a value of this type may flow into
	// a port of type other. Compatibility is checked once, at connect
	// time, with the output's type on the receiver side.
	CompatibleWith(other DataType) bool
}

// DataTypeResolver maps a stored type name back to a live DataType
// during snapshot restore.
type DataTypeResolver func(name string) (DataType, bool)
