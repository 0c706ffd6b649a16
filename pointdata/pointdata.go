// Package pointdata stores named per-point attribute arrays of a mesh. One
// array may be marked as the active source of rational weights.
package pointdata

import (
	"fmt"
	"sort"
)

// RationalWeightsName is the default name of the rational weight array
const RationalWeightsName = "RationalWeights"

// Array is a named array of Components values per point, point major
type Array struct {
	Name       string
	Components int
	Values     []float64
}

func NewArray(name string, components int, values []float64) (a *Array, err error) {
	if components < 1 {
		return nil, fmt.Errorf("array %q: components must be >= 1, have %d", name, components)
	}
	if len(values)%components != 0 {
		return nil, fmt.Errorf("array %q: %d values is not a multiple of %d components",
			name, len(values), components)
	}
	a = &Array{Name: name, Components: components, Values: values}
	return
}

// NumberOfTuples is the number of points the array covers
func (a *Array) NumberOfTuples() int {
	return len(a.Values) / a.Components
}

// Tuple returns the components of point id, sharing storage with the array
func (a *Array) Tuple(id int) []float64 {
	return a.Values[id*a.Components : (id+1)*a.Components]
}

// Value returns component 0 of point id
func (a *Array) Value(id int) float64 {
	return a.Values[id*a.Components]
}

type PointData struct {
	arrays          map[string]*Array
	rationalWeights string
}

func NewPointData() *PointData {
	return &PointData{
		arrays:          make(map[string]*Array),
		rationalWeights: RationalWeightsName,
	}
}

// AddArray adds or replaces a named array
func (pd *PointData) AddArray(name string, components int, values []float64) (err error) {
	var a *Array
	if a, err = NewArray(name, components, values); err != nil {
		return
	}
	pd.arrays[name] = a
	return
}

func (pd *PointData) GetArray(name string) (a *Array, ok bool) {
	a, ok = pd.arrays[name]
	return
}

func (pd *PointData) RemoveArray(name string) {
	delete(pd.arrays, name)
}

// ArrayNames returns the array names in sorted order
func (pd *PointData) ArrayNames() (names []string) {
	for name := range pd.arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// SetActiveRationalWeights selects which array supplies rational weights. The
// array does not need to exist yet.
func (pd *PointData) SetActiveRationalWeights(name string) {
	pd.rationalWeights = name
}

func (pd *PointData) ActiveRationalWeights() string {
	return pd.rationalWeights
}

// GetRationalWeights returns the active rational weight array if it is present
func (pd *PointData) GetRationalWeights() (a *Array, ok bool) {
	if pd == nil {
		return
	}
	return pd.GetArray(pd.rationalWeights)
}

func (pd *PointData) Print() {
	for _, name := range pd.ArrayNames() {
		a := pd.arrays[name]
		active := ""
		if name == pd.rationalWeights {
			active = " (rational weights)"
		}
		fmt.Printf("[%s] = %d tuples x %d components%s\n", name, a.NumberOfTuples(), a.Components, active)
	}
}
