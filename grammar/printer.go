package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

func (c *Constraint) String() string {
	ranges := make([]string, 0, len(c.Ranges))
	for _, r := range c.Ranges {
		ranges = append(ranges, r.String())
	}
	return strings.Join(ranges, " || ")
}

func (r *Range) String() string {
	comparators := make([]string, 0, len(r.Comparators))
	for _, cmp := range r.Comparators {
		comparators = append(comparators, cmp.String())
	}
	return strings.Join(comparators, " ")
}

func (c *Comparator) String() string {
	return c.Op + c.Version.String()
}

func (v *Version) String() string {
	parts := make([]string, 0, len(v.Parts))
	for _, p := range v.Parts {
		parts = append(parts, strconv.Itoa(p))
	}
	return strings.Join(parts, ".")
}

func (s Semver) String() string {
	return fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
}
