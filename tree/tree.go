package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// Tree represents a decision tree. It is composed of its root
// node and the name of the label it is able to predict.
type Tree struct {
	Root  Node
	Label string
}

// New takes the root Node and the name of a label and returns a tree
// with the given root that predicts the given label.
func New(root Node, label string) *Tree {
	return &Tree{root, label}
}

// Predict takes a sample and returns the class the tree predicts for it or an
// error if the prediction could not be made.
//
// Starting at the root, every internal node reads the sample's value for its
// feature and moves on to the child of the branch with that value. Every step
// either moves one level down the tree or fails, so the walk ends at a leaf
// or with an error wrapping ErrMissingValue or ErrUnseenCategory.
func (t *Tree) Predict(s feature.Sample) (string, error) {
	if t == nil || t.Root == nil {
		return "", ErrEmptyTree
	}
	n := t.Root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Class(), nil
		case *Internal:
			value, ok := s.ValueFor(node.Feature)
			if !ok {
				return "", fmt.Errorf("predicting sample: feature %s: %w", node.Feature.Name(), ErrMissingValue)
			}
			child, ok := node.Branch(value)
			if !ok {
				return "", fmt.Errorf("predicting sample: feature %s value %q: %w", node.Feature.Name(), value, ErrUnseenCategory)
			}
			n = child
		default:
			return "", fmt.Errorf("predicting sample: unknown node type %T", n)
		}
	}
}

/*
Test takes a dataset view and returns three values:
 * the prediction success rate of the tree over the rows in the view
 * the number of rows the tree could not make a prediction for because of
   ErrUnseenCategory or ErrMissingValue errors
 * an error if a prediction could not be made for other reasons. If this is
   not nil, the other values will be 0.0 and 0 respectively
*/
func (t *Tree) Test(v *dataset.View) (float64, int, error) {
	if v.Count() == 0 {
		return 0.0, 0, dataset.ErrEmptyView
	}
	var result float64
	var errCount int
	for _, i := range v.Indices() {
		p, err := t.Predict(v.Table().Row(i))
		if err != nil {
			if !isSamplePredictionError(err) {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		if p == v.Label(i) {
			result += 1.0
		}
	}
	return result / float64(v.Count()), errCount, nil
}

// Traverse takes a bottomup boolean and an error-returning function that
// takes the path from the root to a node, as the criteria of the branches
// followed, and the node itself, and goes through the tree running the
// function on every node.
// Traverse will call the function with a parent node before calling it for
// its children if bottomup is false, and call it after its children if
// bottomup is true. If a call to the function returns an error, the
// traversing is aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func([]feature.DiscreteCriterion, Node) error) error {
	if t.Root == nil {
		return nil
	}
	return traverse(nil, t.Root, bottomup, f)
}

func traverse(path []feature.DiscreteCriterion, n Node, bottomup bool, f func([]feature.DiscreteCriterion, Node) error) error {
	if !bottomup {
		if err := f(path, n); err != nil {
			return err
		}
	}
	if in, ok := n.(*Internal); ok {
		for _, b := range in.Branches {
			err := traverse(append(path[:len(path):len(path)], b.Criterion), b.Node, bottomup, f)
			if err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(path, n)
	}
	return nil
}

// Depth returns the number of internal nodes on the longest path from the
// root to a leaf.
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(path []feature.DiscreteCriterion, _ Node) error {
		if len(path) > depth {
			depth = len(path)
		}
		return nil
	})
	return depth
}

func (t *Tree) String() string {
	if t.Root == nil {
		return "[]\n"
	}
	return subtreeString(t.Root, nil)
}

func subtreeString(n Node, criterion feature.Criterion) string {
	var result string
	if criterion != nil {
		result = fmt.Sprintf("{ %v }\n", criterion)
	}
	var branches []Branch
	switch node := n.(type) {
	case *Leaf:
		result = fmt.Sprintf("%s[%s] %v\n", result, node.Class(), node.Prediction)
	case *Internal:
		result = fmt.Sprintf("%s[%s?] (%d)\n|\n", result, node.Feature.Name(), node.Weight())
		branches = node.Branches
	}
	for i, b := range branches {
		for j, line := range strings.Split(subtreeString(b.Node, b.Criterion), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(branches)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}

func isSamplePredictionError(err error) bool {
	return errors.Is(err, ErrUnseenCategory) || errors.Is(err, ErrMissingValue)
}
