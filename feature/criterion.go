package feature

import "fmt"

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the given value satisfies the feature criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() Feature
	SatisfiedBy(sample Sample) bool
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the feature
passed as parameter and whether the sample defines one at all.
*/
type Sample interface {
	ValueFor(Feature) (string, bool)
}

/*
DiscreteCriterion represents a constraint on a discrete feature, a
value it may take.

Its Value method returns the value to which the feature is constrained as
a string.
*/
type DiscreteCriterion interface {
	Criterion
	Value() string
}

type discreteCriterion struct {
	feature Feature
	value   string
}

/*
NewDiscreteCriterion takes a feature and a value and returns a
DiscreteCriterion satisfied by samples whose value for the feature
equals the given one.
*/
func NewDiscreteCriterion(feature Feature, value string) DiscreteCriterion {
	return &discreteCriterion{feature, value}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (dfc *discreteCriterion) Feature() Feature {
	return dfc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion. Specifically, it returns false if the sample does
not define a value for the feature, true if the value equals the value on the
criterion; and false otherwise.
*/
func (dfc *discreteCriterion) SatisfiedBy(sample Sample) bool {
	val, ok := sample.ValueFor(dfc.feature)
	if !ok {
		return false
	}
	return dfc.value == val
}

func (dfc *discreteCriterion) Value() string {
	return dfc.value
}

func (dfc *discreteCriterion) String() string {
	return fmt.Sprintf("%s is %s", dfc.feature.Name(), dfc.value)
}
