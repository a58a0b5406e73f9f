/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value for this
should be an object with a property for each feature with its name and the list of
valid values for it. Features are returned in the order they appear in the document,
and so are their values.
Continuous features (declared with a string value such as 'continuous') are not
supported and make the parsing fail.
*/
func ReadFeatures(md []byte) ([]feature.Feature, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := []feature.Feature{}
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		switch values := item.Value.(type) {
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			features = append(features, feature.NewDiscreteFeature(fn, stringVs))
		case string:
			return nil, fmt.Errorf("feature %s declared as %q: only discrete features are supported", fn, values)
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", item.Value, fn)
		}
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}
