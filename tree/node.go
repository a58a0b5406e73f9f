package tree

import (
	"github.com/pbanos/id3/feature"
)

/*
Node is a node of the tree: either a *Leaf or an *Internal node.
Nodes are not modified once the tree they belong to has been grown.
*/
type Node interface {
	// Weight is the number of training samples that reached the node.
	Weight() int
	isNode()
}

/*
Leaf is a terminal node. It predicts the class of every sample that
reaches it.
*/
type Leaf struct {
	// The prediction made from the training samples that reached the leaf.
	Prediction *Prediction
}

/*
Internal is a node that splits samples on the value they have for its
feature, sending each one down the branch whose criterion it satisfies.
*/
type Internal struct {
	// The feature to ask about next on the sample being predicted.
	Feature feature.Feature
	// One branch per value of the feature among the training samples
	// that reached the node. Branch values are pairwise distinct.
	Branches []Branch
	weight   int
}

/*
Branch connects an internal node with one of its children.
*/
type Branch struct {
	// The constraint on the parent's feature that selects this branch.
	Criterion feature.DiscreteCriterion
	Node      Node
}

/*
NewLeaf takes a prediction and returns a leaf with it.
*/
func NewLeaf(p *Prediction) *Leaf {
	return &Leaf{p}
}

/*
NewInternal takes a feature, the number of training samples that reached the
node and its branches and returns an internal node with them.
*/
func NewInternal(f feature.Feature, weight int, branches []Branch) *Internal {
	return &Internal{f, branches, weight}
}

// Class returns the class predicted by the leaf.
func (l *Leaf) Class() string {
	v, _ := l.Prediction.PredictedValue()
	return v
}

func (l *Leaf) Weight() int {
	return l.Prediction.Weight()
}

func (n *Internal) Weight() int {
	return n.weight
}

/*
Branch takes a value for the node's feature and returns the child node of the
branch for that value and true, or nil and false if no branch has that value.
*/
func (n *Internal) Branch(value string) (Node, bool) {
	for _, b := range n.Branches {
		if b.Criterion.Value() == value {
			return b.Node, true
		}
	}
	return nil, false
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}
