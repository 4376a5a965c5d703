package metrics

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Opts names and describes a metric.
//
// The fully-qualified name is Namespace, Subsystem and Name joined by "_",
// with empty components omitted.
type Opts struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
}

// BuildFQName joins the non-empty components with "_". An empty name yields
// an empty result.
func BuildFQName(namespace, subsystem, name string) string {
	if name == "" {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{namespace, subsystem, name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_")
}

// desc holds the immutable description shared by every metric type.
type desc struct {
	name       string
	help       string
	labelNames []string
}

func newDesc(opts Opts, labelNames []string, reserved ...string) (desc, error) {
	name := BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
	if !ValidMetricName(name) {
		return desc{}, errors.Wrapf(ErrInvalidName, "%q", name)
	}

	seen := make(map[string]struct{}, len(labelNames))
	for _, ln := range labelNames {
		if !validLabelName(ln) {
			return desc{}, errors.Wrapf(ErrInvalidLabelName, "metric %s: %q", name, ln)
		}
		for _, r := range reserved {
			if ln == r {
				return desc{}, errors.Wrapf(ErrInvalidLabelName, "metric %s: %q is reserved", name, ln)
			}
		}
		if _, ok := seen[ln]; ok {
			return desc{}, errors.Wrapf(ErrInvalidLabelName, "metric %s: %q declared twice", name, ln)
		}
		seen[ln] = struct{}{}
	}

	return desc{
		name:       name,
		help:       opts.Help,
		labelNames: append([]string(nil), labelNames...),
	}, nil
}

func (d desc) checkLabelValues(values []string) error {
	if len(values) != len(d.labelNames) {
		return errors.Wrapf(ErrLabelArity, "metric %s: want %d label values, got %d",
			d.name, len(d.labelNames), len(values))
	}
	for i, v := range values {
		if !utf8.ValidString(v) {
			return errors.Wrapf(ErrInvalidLabelValue, "metric %s: label %s: %q", d.name, d.labelNames[i], v)
		}
	}
	return nil
}

// ValidMetricName reports whether name matches [a-zA-Z_:][a-zA-Z0-9_:]*.
func ValidMetricName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func validLabelName(name string) bool {
	if name == "" || strings.HasPrefix(name, "__") {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// labelsKey generates a map key for a tuple of label values. Each value is
// prefixed with its length so distinct tuples never share a key.
func labelsKey(values []string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}
