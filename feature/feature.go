/*
Package feature defines the categorical features a tree can ask about,
the criteria that constrain them and the samples that satisfy those
criteria.
*/
package feature

import "fmt"

/*
Feature represents a property that can be observed
*/
type Feature interface {
	Name() string
	Valid(string) (bool, error)
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given names and available values.

The order of the available values is kept: it is the order in which a tree
grows the branches of a node splitting on the feature.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

/*
Valid receives a string value and returns a boolean and an error. When the
value parameter is included in the available values of the feature, the method
returns true and nil. Otherwise it returns false and an error describing the
reason.
*/
func (df *DiscreteFeature) Valid(value string) (bool, error) {
	for _, av := range df.availableValues {
		if av == value {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete feature %s got unknown value %s", df.Name(), value)
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

func (df *DiscreteFeature) String() string {
	return df.name
}

/*
Names takes a slice of features and returns a slice with their names,
in the same order.
*/
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name()
	}
	return names
}

/*
Without takes a slice of features and a feature and returns a new slice
with every feature in the given one except those named like f. The given
slice is never modified.
*/
func Without(features []Feature, f Feature) []Feature {
	result := make([]Feature, 0, len(features))
	for _, cf := range features {
		if cf.Name() != f.Name() {
			result = append(result, cf)
		}
	}
	return result
}
