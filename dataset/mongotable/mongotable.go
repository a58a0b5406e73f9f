/*
Package mongotable reads dataset tables from MongoDB collections.

Every document of the collection is a row and every requested field a
categorical column, with values rendered as strings.
*/
package mongotable

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DefaultCollectionName is the collection read when none is given.
const DefaultCollectionName = "samples"

/*
IsDataSource takes a path or URL and returns whether it is a MongoDB
connection URL.
*/
func IsDataSource(url string) bool {
	return strings.HasPrefix(url, "mongodb://")
}

/*
Dial takes a MongoDB connection URL and returns a session on it or an error
if it cannot be established.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB at %s: %v", url, err)
	}
	return session, nil
}

/*
ReadTable takes a context, a MongoDB session, the name of a collection on the
session's default database, a slice of field names and the name of a label
field and returns a dataset.Table with the values of the given fields for
every document in the collection and a slice with their values for the label
field, or an error.

An empty collection name reads DefaultCollectionName. An empty label returns
nil labels. Documents lacking any of the fields make the reading fail.
*/
func ReadTable(ctx context.Context, session *mgo.Session, collection string, features []string, label string) (*dataset.Table, []string, error) {
	if collection == "" {
		collection = DefaultCollectionName
	}
	if len(features) == 0 {
		return nil, nil, fmt.Errorf("reading collection %s: no fields to read", collection)
	}
	fields := features
	if label != "" {
		fields = append(append([]string(nil), features...), label)
	}
	projection := bson.M{"_id": 0}
	for _, f := range fields {
		projection[f] = 1
	}
	s := session.Copy()
	defer s.Close()
	iter := s.DB("").C(collection).Find(nil).Select(projection).Iter()
	var rows [][]string
	var labels []string
	var doc bson.M
	for n := 0; iter.Next(&doc); n++ {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, nil, err
		}
		row, err := documentRow(doc, fields)
		if err != nil {
			iter.Close()
			return nil, nil, fmt.Errorf("reading document %d from %s: %v", n, collection, err)
		}
		if label != "" {
			labels = append(labels, row[len(row)-1])
			row = row[:len(row)-1]
		}
		rows = append(rows, row)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	t, err := dataset.NewTable(features, rows)
	if err != nil {
		return nil, nil, err
	}
	return t, labels, nil
}

func documentRow(doc bson.M, fields []string) ([]string, error) {
	row := make([]string, len(fields))
	for i, f := range fields {
		v, ok := doc[f]
		if !ok || v == nil {
			return nil, fmt.Errorf("no value for field %s", f)
		}
		vString, ok := v.(string)
		if !ok {
			vString = fmt.Sprintf("%v", v)
		}
		row[i] = vString
	}
	return row, nil
}
