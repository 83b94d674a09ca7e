package app

import (
	"tabprof/domain/core"
	"tabprof/internal/errors"
)

// DescribeKind selects which statistic bundles an operation returns
type DescribeKind string

const (
	KindAll         DescribeKind = "all"
	KindNumeric     DescribeKind = "numeric"
	KindCategorical DescribeKind = "categorical"
	KindDate        DescribeKind = "date"
)

// ParseKind validates a kind selector. Anything outside the enumerated
// set is a configuration error carrying the invalid value.
func ParseKind(s string) (DescribeKind, error) {
	switch DescribeKind(s) {
	case KindAll, KindNumeric, KindCategorical, KindDate:
		return DescribeKind(s), nil
	default:
		return "", errors.WithCode(errors.CodeInvalidKind,
			core.NewInvalidKindError("parse_kind", s))
	}
}

func (k DescribeKind) valid() bool {
	switch k {
	case KindAll, KindNumeric, KindCategorical, KindDate:
		return true
	}
	return false
}
