package id3

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

// DefaultLabel is the name given to the label of trees grown by a Classifier.
const DefaultLabel = "class"

// Classifier grows a decision tree from a training table and labels and uses
// it to classify the rows of other tables.
//
// A Classifier is not safe for concurrent use: callers must serialize calls
// to Fit and Predict.
type Classifier struct {
	tree     *tree.Tree
	features []feature.Feature
	classes  []string
	label    string
	logger   *zap.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger makes the classifier log the progress of its operations to the
// given logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) {
		c.logger = l
	}
}

// WithLabel sets the name of the label predicted by the trees the classifier
// grows.
func WithLabel(label string) Option {
	return func(c *Classifier) {
		c.label = label
	}
}

// New returns an unfitted Classifier configured with the given options.
func New(opts ...Option) *Classifier {
	c := &Classifier{label: DefaultLabel, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fit grows a tree from the given table and labels, one per row of the table,
// replacing any tree grown by previous calls.
//
// Features are taken from the table columns, in column order, with the
// distinct values of each column as their domain. The classes are the
// distinct labels, in order of first appearance, which is also the order
// used to break ties between equally common classes.
//
// A table without columns grows a single leaf predicting the most common
// label. Fit returns an error wrapping ErrInvalidInput if the table has no
// rows or the number of labels does not match the number of rows. On error
// the previously grown tree, if any, is kept.
func (c *Classifier) Fit(x *dataset.Table, y []string) error {
	if x == nil || x.Len() == 0 {
		return fmt.Errorf("fitting classifier: empty training table: %w", ErrInvalidInput)
	}
	if x.Len() != len(y) {
		return fmt.Errorf("fitting classifier: %d rows but %d labels: %w", x.Len(), len(y), ErrInvalidInput)
	}
	v, err := dataset.New(x, y)
	if err != nil {
		return fmt.Errorf("fitting classifier: %v: %w", err, ErrInvalidInput)
	}
	features := x.DiscreteFeatures()
	c.logger.Debug("growing tree",
		zap.Int("rows", v.Count()),
		zap.Strings("features", feature.Names(features)),
		zap.Strings("classes", v.Classes()),
	)
	root, err := Grow(v, features)
	if err != nil {
		return fmt.Errorf("fitting classifier: %w", err)
	}
	t := tree.New(root, c.label)
	c.tree, c.features, c.classes = t, features, v.Classes()
	c.logger.Debug("tree grown", zap.Int("depth", t.Depth()))
	return nil
}

// Predict returns the class predicted for every row of the given table, in
// row order.
//
// It returns ErrNotFitted if no tree has been grown yet, and an error
// wrapping ErrInvalidInput if the table lacks a column for a feature the
// classifier was fitted with. Rows that cannot be classified, because they
// hold a value the tree never saw at some node, are left as "" in the result
// and the returned error combines one error per such row, each wrapping
// tree.ErrUnseenCategory. Use multierr.Errors to get them apart.
func (c *Classifier) Predict(x *dataset.Table) ([]string, error) {
	if c.tree == nil {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, fmt.Errorf("predicting: nil table: %w", ErrInvalidInput)
	}
	for _, f := range c.features {
		if !x.HasFeature(f.Name()) {
			return nil, fmt.Errorf("predicting: table has no column for feature %s: %w", f.Name(), ErrInvalidInput)
		}
	}
	result := make([]string, x.Len())
	var errs error
	for i := range result {
		p, err := c.tree.Predict(x.Row(i))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		result[i] = p
	}
	if errs != nil {
		c.logger.Debug("rows could not be classified", zap.Int("failed", len(multierr.Errors(errs))), zap.Int("rows", x.Len()))
	}
	return result, errs
}

// PredictSample returns the class predicted for a single sample, or
// ErrNotFitted if no tree has been grown yet.
func (c *Classifier) PredictSample(s feature.Sample) (string, error) {
	if c.tree == nil {
		return "", ErrNotFitted
	}
	return c.tree.Predict(s)
}

// Tree returns the tree grown by the last successful call to Fit, or nil.
func (c *Classifier) Tree() *tree.Tree {
	return c.tree
}

// Features returns the features the classifier was fitted with.
func (c *Classifier) Features() []feature.Feature {
	return c.features
}

// Classes returns the classes the classifier was fitted with.
func (c *Classifier) Classes() []string {
	return c.classes
}
