package table

// DType is the closed set of column types decided once during
// classification and never re-inspected from raw values downstream.
type DType int

const (
	DTypeUnknown DType = iota
	DTypeNumeric
	DTypeCategorical
	DTypeDatetime
)

// String returns the lowercase type name
func (d DType) String() string {
	switch d {
	case DTypeNumeric:
		return "numeric"
	case DTypeCategorical:
		return "categorical"
	case DTypeDatetime:
		return "datetime"
	default:
		return "unknown"
	}
}
