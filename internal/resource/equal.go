package resource

import "bytes"

// Equal reports whether a and b are the same variant with identical path
// and content.
func Equal(a, b Resource) bool {
	m := matcher{other: b}
	if err := a.Accept(&m); err != nil {
		return false
	}
	return m.equal
}

// matcher compares the visited resource against other.
type matcher struct {
	other Resource
	equal bool
}

func (m *matcher) VisitText(t Text) error {
	o, ok := m.other.(Text)
	m.equal = ok && t == o
	return nil
}

func (m *matcher) VisitBinary(b Binary) error {
	o, ok := m.other.(Binary)
	m.equal = ok && b.path == o.path && bytes.Equal(b.data, o.data)
	return nil
}

func (m *matcher) VisitDirectory(d Directory) error {
	o, ok := m.other.(Directory)
	m.equal = ok && d == o
	return nil
}

// EqualAll compares two sequences element by element.
func EqualAll(a, b []Resource) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Paths lists the paths of resources in order.
func Paths(resources []Resource) []string {
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = r.Path()
	}
	return out
}
