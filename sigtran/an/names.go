// Package an contains assigned numbers of the SIGTRAN adaptation layers (M3UA, SUA) and iSNS.
package an

import (
	"sort"
	"strconv"
)

// Names maps assigned numbers to display names.
// Instances are package-level constants and must not be modified.
type Names map[uint64]string

// Lookup returns the display name of v.
func (n Names) Lookup(v uint64) (name string, ok bool) {
	name, ok = n[v]
	return
}

// String returns the display name of v, or its decimal representation if unassigned.
func (n Names) String(v uint64) string {
	if name, ok := n[v]; ok {
		return name
	}
	return strconv.FormatUint(v, 10)
}

// Values returns assigned numbers in ascending order.
func (n Names) Values() (list []uint64) {
	for v := range n {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}
