package dataset

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

type sample struct {
	featureValues map[string]string
}

/*
NewSample takes a map of feature string names to values and returns
a feature.Sample. Features absent from the map are undefined for the
sample.
*/
func NewSample(featureValues map[string]string) feature.Sample {
	return &sample{featureValues}
}

func (s *sample) ValueFor(f feature.Feature) (string, bool) {
	v, ok := s.featureValues[f.Name()]
	return v, ok
}

func (s *sample) String() string {
	return fmt.Sprintf("[%v]", s.featureValues)
}
